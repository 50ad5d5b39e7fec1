// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence, with side effects (mail) applied
// best-effort after commit.
package commands

import (
	"context"

	"senderplus/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Handlers depend on the narrowest composition they need.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// AccountRepoFactory provides access to the account repository within a transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// CodeRepoFactory provides access to the verification-code repository within a transaction.
	CodeRepoFactory interface {
		VerificationCodeRepository() ports.VerificationCodeRepository
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// AuthUoW manages transactions for the auth flow, which touches the
	// account and verification-code aggregates together.
	AuthUoW interface {
		TxManager
		AccountRepoFactory
		CodeRepoFactory
	}

	// AuthUoWFactory creates new auth unit of work instances.
	AuthUoWFactory interface {
		Create() AuthUoW
	}

	// ParcelUoW manages transactions for parcel-only operations.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
	}

	// ParcelUoWFactory creates new parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}
)

// Actor is the capability view of the caller attempting a guarded
// operation. The status-advance command depends on this capability test
// rather than on any concrete account field.
type Actor interface {
	CanAdvanceParcelStatus() bool
}
