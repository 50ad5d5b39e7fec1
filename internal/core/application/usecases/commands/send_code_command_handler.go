package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"senderplus/internal/core/domain/model/kernel"
	"senderplus/internal/core/domain/model/verification"
	"senderplus/internal/core/ports"
)

// SendCodeCommandHandler issues a new verification code for an existing
// account and emails it. Previously issued codes are left untouched; they
// expire or get consumed on their own.
type SendCodeCommandHandler struct {
	uowFactory AuthUoWFactory
	mailer     ports.Mailer
	logger     *slog.Logger
}

// NewSendCodeCommandHandler creates a handler for code resend requests.
func NewSendCodeCommandHandler(
	uowFactory AuthUoWFactory,
	mailer ports.Mailer,
	logger *slog.Logger,
) SendCodeCommandHandler {
	return SendCodeCommandHandler{
		uowFactory: uowFactory,
		mailer:     mailer,
		logger:     logger,
	}
}

// Handle processes the resend command. Fails with an
// errs.ObjectNotFoundError when no account matches the email. Mail delivery
// is best-effort after commit.
func (h *SendCodeCommandHandler) Handle(ctx context.Context, cmd SendCodeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	acc, err := uow.AccountRepository().GetByEmail(ctx, cmd.Email())
	if err != nil {
		return err
	}

	code, err := verification.NewCode(kernel.NewUUID(), acc.ID(), time.Now(), verification.DefaultTTL)
	if err != nil {
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
