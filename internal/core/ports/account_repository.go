package ports

import (
	"context"
	"errors"

	"senderplus/internal/core/domain/model/account"
	"senderplus/internal/core/domain/model/kernel"
)

// ErrEmailTaken is returned by AccountRepository.Add when an account with
// the same email already exists. Emails are unique case-insensitively.
var ErrEmailTaken = errors.New("email is already registered")

// AccountRepository defines the persistence contract for account aggregates.
// Lookup by email is case-insensitive: the domain normalizes emails to lower
// case and the store enforces uniqueness on the normalized value.
type AccountRepository interface {
	// Add persists a new account aggregate. Returns ErrEmailTaken on a
	// duplicate email.
	Add(ctx context.Context, aggregate *account.Account) error

	// GetByID retrieves an account by its unique identifier.
	GetByID(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetByEmail retrieves an account by email, matching case-insensitively.
	GetByEmail(ctx context.Context, email string) (*account.Account, error)
}
