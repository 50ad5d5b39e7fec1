// Package verification contains the EmailVerificationCode entity: a
// short-lived, one-time 6-digit numeric token bound to exactly one account,
// issued on signup or explicit resend and consumed at most once.
//
// Codes are never deleted; the history of issued codes is retained as an
// audit trail. Issuing a new code does not invalidate older ones: each code
// stays individually acceptable until it is used or expires.
package verification

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"senderplus/internal/core/domain/model/kernel"
	"senderplus/internal/pkg/errs"
)

const (
	// DefaultTTL is the validity window of a freshly issued code.
	DefaultTTL = 10 * time.Minute

	// codeLength is the fixed number of digits in a code.
	codeLength = 6

	// codeSpace is the size of the uniform draw, [0, 999999].
	codeSpace = 1_000_000
)

var (
	// ErrCodeIsNotConstructed is returned when a Code was not created through
	// NewCode or RestoreCode.
	ErrCodeIsNotConstructed = errors.New("Code must be created via NewCode constructor")

	// ErrCodeAlreadyUsed is returned when marking an already consumed code.
	ErrCodeAlreadyUsed = errors.New("verification code is already used")
)

// Code is a one-time email verification token.
//
// Lifecycle: created unused with expiresAt = createdAt + TTL, then mutated
// exactly once from unused to used on successful verification. Expiry and
// the used flag are the only things that invalidate a code.
type Code struct {
	id        kernel.UUID
	accountID kernel.UUID
	value     string
	createdAt time.Time
	expiresAt time.Time
	used      bool

	isConstructed bool
}

// GenerateValue draws a uniform random number over [0, 999999] and
// zero-pads it to 6 digits. Collisions across outstanding codes are
// permitted; validation disambiguates by account, value, and recency.
func GenerateValue() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpace))
	if err != nil {
		return "", fmt.Errorf("generating verification code: %w", err)
	}
	return fmt.Sprintf("%0*d", codeLength, n.Int64()), nil
}

// NewCode issues a fresh unused code for the given account. A non-positive
// ttl falls back to DefaultTTL.
func NewCode(id, accountID kernel.UUID, now time.Time, ttl time.Duration) (*Code, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	value, err := GenerateValue()
	if err != nil {
		return nil, err
	}

	c := &Code{
		value:         value,
		createdAt:     now,
		expiresAt:     now.Add(ttl),
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setAccountID(accountID),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCode reconstructs a code record from persistence.
func RestoreCode(
	id, accountID kernel.UUID,
	value string,
	createdAt, expiresAt time.Time,
	used bool,
) (*Code, error) {
	c := &Code{
		createdAt:     createdAt,
		expiresAt:     expiresAt,
		used:          used,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setAccountID(accountID),
		c.setValue(value),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the code was built through a constructor.
func (c *Code) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCodeIsNotConstructed
	}
	return nil
}

// ID returns the code record's unique identifier.
func (c *Code) ID() kernel.UUID {
	return c.id
}

// AccountID returns the identifier of the account the code is bound to.
func (c *Code) AccountID() kernel.UUID {
	return c.accountID
}

// Value returns the 6-digit zero-padded code string.
func (c *Code) Value() string {
	return c.value
}

// CreatedAt returns the issuance timestamp.
func (c *Code) CreatedAt() time.Time {
	return c.createdAt
}

// ExpiresAt returns the moment the code stops being acceptable.
func (c *Code) ExpiresAt() time.Time {
	return c.expiresAt
}

// IsUsed reports whether the code has been consumed.
func (c *Code) IsUsed() bool {
	return c.used
}

// IsValidAt reports whether the code is acceptable at the given instant:
// not yet used and not past its expiry.
func (c *Code) IsValidAt(now time.Time) bool {
	return !c.used && !c.expiresAt.Before(now)
}

// MarkUsed consumes the code. The unused-to-used transition happens exactly
// once; a second attempt returns ErrCodeAlreadyUsed.
func (c *Code) MarkUsed() error {
	if c.used {
		return ErrCodeAlreadyUsed
	}
	c.used = true
	return nil
}

func (c *Code) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Code) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}
	c.accountID = accountID
	return nil
}

func (c *Code) setValue(value string) error {
	if len(value) != codeLength {
		return errs.NewValueIsInvalidErrorWithCause("code",
			fmt.Errorf("%q is not %d digits", value, codeLength))
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return errs.NewValueIsInvalidErrorWithCause("code",
				fmt.Errorf("%q contains a non-digit character", value))
		}
	}
	c.value = value
	return nil
}
