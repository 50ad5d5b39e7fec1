package ports

import (
	"senderplus/internal/core/domain/model/kernel"
)

// TokenSigner issues and verifies session tokens. A token carries the
// account identifier; the HTTP layer resolves it back to an account to
// establish the current actor.
type TokenSigner interface {
	// Sign issues a session token for the given account.
	Sign(accountID kernel.UUID) (string, error)

	// Parse verifies a token and extracts the account identifier.
	Parse(token string) (kernel.UUID, error)
}
