package commands

import (
	"context"
	"errors"
	"time"

	"senderplus/internal/core/ports"
	"senderplus/internal/pkg/errs"
)

// VerifyCodeCommandHandler validates a submitted verification code and
// consumes it.
//
// Matching rule: among all codes belonging to the account with the exact
// submitted value, the most recently created one is selected. A correctly
// guessed older code therefore remains acceptable until it individually
// expires or is used; issuing a newer code does not revoke it. That
// looseness is inherited deliberately and documented rather than fixed.
type VerifyCodeCommandHandler struct {
	uowFactory AuthUoWFactory
}

// NewVerifyCodeCommandHandler creates a handler for code verification.
func NewVerifyCodeCommandHandler(uowFactory AuthUoWFactory) VerifyCodeCommandHandler {
	return VerifyCodeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the verification command. Fails with an
// errs.ObjectNotFoundError for an unknown account and with
// ErrCodeInvalidOrExpired when no matching code exists or the selected code
// is used or expired. On success the code's unused-to-used transition is
// persisted in the same transaction, exactly once.
func (h *VerifyCodeCommandHandler) Handle(ctx context.Context, cmd VerifyCodeCommand) error {
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

	codeRepo := uow.VerificationCodeRepository()
	code, err := codeRepo.GetLatestMatch(ctx, acc.ID(), cmd.Code())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrCodeInvalidOrExpired
		}
		return err
	}

	if !code.IsValidAt(time.Now()) {
		return ErrCodeInvalidOrExpired
	}

	if err = code.MarkUsed(); err != nil {
		return ErrCodeInvalidOrExpired
	}

	if err = codeRepo.Update(ctx, code); err != nil {
		// Losing the exactly-once race to a concurrent verification is
		// indistinguishable from presenting a used code.
		if errors.Is(err, ports.ErrCodeAlreadyUsed) {
			return ErrCodeInvalidOrExpired
		}
		return err
	}

	return uow.Commit(ctx)
}
