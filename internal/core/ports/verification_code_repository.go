package ports

import (
	"context"
	"errors"

	"senderplus/internal/core/domain/model/kernel"
	"senderplus/internal/core/domain/model/verification"
)

// ErrCodeAlreadyUsed is returned by VerificationCodeRepository.Update when
// the stored record is no longer unused, which happens when a concurrent
// verification consumed the same code first.
var ErrCodeAlreadyUsed = errors.New("verification code is already used")

// VerificationCodeRepository defines the persistence contract for email
// verification codes. Records are append-then-update-once: codes are never
// deleted, and the only mutation is the unused-to-used transition.
type VerificationCodeRepository interface {
	// Add persists a freshly issued code record.
	Add(ctx context.Context, code *verification.Code) error

	// Update marks an existing code record as used. The store enforces the
	// unused-to-used transition: a record that is missing or already used
	// yields ErrCodeAlreadyUsed.
	Update(ctx context.Context, code *verification.Code) error

	// GetLatestMatch retrieves, among all codes belonging to the account
	// with the given value, the one with the most recent creation time.
	// Returns an errs.ObjectNotFoundError when no such record exists.
	GetLatestMatch(ctx context.Context, accountID kernel.UUID, value string) (*verification.Code, error)
}
