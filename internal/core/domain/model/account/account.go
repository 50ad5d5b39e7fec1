// Package account contains the Account aggregate: an email-keyed user
// identity holding a hashed password credential and a staff capability flag.
package account

import (
	"errors"
	"strings"
	"time"

	"senderplus/internal/core/domain/model/kernel"
	"senderplus/internal/pkg/errs"
)

// ErrAccountIsNotConstructed is returned when an Account instance was not
// created through NewAccount or RestoreAccount.
var ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")

// Account is the aggregate root for a user identity.
//
// Invariants:
//   - email is non-empty, contains "@", and is stored lower-cased so that
//     uniqueness is case-insensitive
//   - the password hash is never empty and never exposed in views
//   - the staff flag is the only capability that permits advancing a
//     parcel's delivery status
type Account struct {
	id           kernel.UUID
	email        string
	passwordHash string
	firstName    string
	lastName     string
	staff        bool
	createdAt    time.Time

	isConstructed bool
}

// NewAccount creates a regular (non-staff) account. The email is normalized
// to lower case; first and last name are optional.
func NewAccount(id kernel.UUID, email, passwordHash, firstName, lastName string, now time.Time) (*Account, error) {
	return newAccount(id, email, passwordHash, firstName, lastName, false, now)
}

// RestoreAccount reconstructs an account from persistence, including its
// staff flag and original creation time.
func RestoreAccount(
	id kernel.UUID,
	email, passwordHash, firstName, lastName string,
	staff bool,
	createdAt time.Time,
) (*Account, error) {
	return newAccount(id, email, passwordHash, firstName, lastName, staff, createdAt)
}

func newAccount(
	id kernel.UUID,
	email, passwordHash, firstName, lastName string,
	staff bool,
	createdAt time.Time,
) (*Account, error) {
	a := &Account{
		firstName:     strings.TrimSpace(firstName),
		lastName:      strings.TrimSpace(lastName),
		staff:         staff,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setEmail(email),
		a.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the account was built through a constructor.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// IsEqual compares accounts by identifier.
func (a *Account) IsEqual(other *Account) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the account's unique identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// Email returns the normalized (lower-cased) email address.
func (a *Account) Email() string {
	return a.email
}

// PasswordHash returns the stored credential hash. Adapters use it for
// credential comparison and persistence; it must never appear in responses.
func (a *Account) PasswordHash() string {
	return a.passwordHash
}

// FirstName returns the optional first name.
func (a *Account) FirstName() string {
	return a.firstName
}

// LastName returns the optional last name.
func (a *Account) LastName() string {
	return a.lastName
}

// IsStaff reports whether the account carries the privileged staff role.
func (a *Account) IsStaff() bool {
	return a.staff
}

// CanAdvanceParcelStatus is the capability test gating the status-advance
// operation. Modeled as a method rather than a field check so callers depend
// on the capability, not on how it is stored.
func (a *Account) CanAdvanceParcelStatus() bool {
	return a.staff
}

// CreatedAt returns the account creation timestamp.
func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	a.email = email
	return nil
}

func (a *Account) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	a.passwordHash = hash
	return nil
}
