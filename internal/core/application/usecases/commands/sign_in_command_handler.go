package commands

import (
	"context"
	"errors"

	"senderplus/internal/core/ports"
	"senderplus/internal/pkg/errs"
)

// SignInCommandHandler verifies credentials and issues a session token.
// Unknown email and wrong password both map to ErrInvalidCredentials so the
// response leaks nothing about which accounts exist.
type SignInCommandHandler struct {
	uowFactory AuthUoWFactory
	hasher     ports.PasswordHasher
	signer     ports.TokenSigner
}

// NewSignInCommandHandler creates a handler for credential sign-in.
func NewSignInCommandHandler(
	uowFactory AuthUoWFactory,
	hasher ports.PasswordHasher,
	signer ports.TokenSigner,
) SignInCommandHandler {
	return SignInCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		signer:     signer,
	}
}

// Handle processes the sign-in command and returns a signed session token.
// Sign-in performs no writes, so no transaction is started; the repository
// reads through the unit of work's base connection.
func (h *SignInCommandHandler) Handle(ctx context.Context, cmd SignInCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()

	acc, err := uow.AccountRepository().GetByEmail(ctx, cmd.Email())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err = h.hasher.Compare(acc.PasswordHash(), cmd.Password()); err != nil {
		return "", ErrInvalidCredentials
	}

	return h.signer.Sign(acc.ID())
}
