package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"senderplus/internal/core/domain/model/account"
	"senderplus/internal/core/domain/model/kernel"
	"senderplus/internal/core/domain/model/verification"
	"senderplus/internal/core/ports"
	"senderplus/internal/pkg/errs"
)

// verificationMailSubject and verificationMailBody are the fixed texts of
// the code email.
const (
	verificationMailSubject = "Sender+ verification code"
	verificationMailBody    = "Your Sender+ verification code is %s."
)

// SignUpCommandHandler creates a new account, issues its first verification
// code, and emails the code to the registered address.
//
// The mail send happens after the transaction commits and is best-effort:
// a delivery failure is logged but never fails the signup.
type SignUpCommandHandler struct {
	uowFactory AuthUoWFactory
	hasher     ports.PasswordHasher
	mailer     ports.Mailer
	logger     *slog.Logger
}

// NewSignUpCommandHandler creates a handler for account signup.
func NewSignUpCommandHandler(
	uowFactory AuthUoWFactory,
	hasher ports.PasswordHasher,
	mailer ports.Mailer,
	logger *slog.Logger,
) SignUpCommandHandler {
	return SignUpCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		mailer:     mailer,
		logger:     logger,
	}
}

// Handle processes the signup command.
// Fails with ErrEmailAlreadyRegistered when an account with the same email
// exists (case-insensitive). On success exactly one unused verification
// code is outstanding for the new account.
func (h *SignUpCommandHandler) Handle(ctx context.Context, cmd SignUpCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	now := time.Now()

	acc, err := account.NewAccount(kernel.NewUUID(), cmd.Email(), hash, cmd.FirstName(), cmd.LastName(), now)
	if err != nil {
		return err
	}

	code, err := verification.NewCode(kernel.NewUUID(), acc.ID(), now, verification.DefaultTTL)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()
	if _, err = accountRepo.GetByEmail(ctx, cmd.Email()); err == nil {
		return ErrEmailAlreadyRegistered
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if err = accountRepo.Add(ctx, acc); err != nil {
		if errors.Is(err, ports.ErrEmailTaken) {
			return ErrEmailAlreadyRegistered
		}
		return err
	}

	if err = uow.VerificationCodeRepository().Add(ctx, code); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if mailErr := h.mailer.Send(acc.Email(), verificationMailSubject,
		fmt.Sprintf(verificationMailBody, code.Value())); mailErr != nil {
		h.logger.WarnContext(ctx, "Verification mail delivery failed",
			"email", acc.Email(), "error", mailErr)
	}

	return nil
}
