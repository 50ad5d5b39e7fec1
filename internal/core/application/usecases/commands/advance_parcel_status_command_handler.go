package commands

import (
	"context"
	"time"
)

// AdvanceParcelStatusCommandHandler moves a parcel one stage forward in its
// lifecycle. The capability check runs before any lookup, so an
// unprivileged caller learns nothing about which tracking IDs exist.
//
// Concurrent advances against the same parcel are not serialized beyond the
// single-row update: two racers reading the same stage both write the same
// next stage, so the lost update is benign.
type AdvanceParcelStatusCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewAdvanceParcelStatusCommandHandler creates a handler for the guarded
// status-advance operation.
func NewAdvanceParcelStatusCommandHandler(uowFactory ParcelUoWFactory) AdvanceParcelStatusCommandHandler {
	return AdvanceParcelStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the advance command.
// Fails with ErrActorNotAllowed when the actor lacks the privileged
// capability, and with an errs.ObjectNotFoundError for an unknown tracking
// ID. Advancing a delivered parcel is a persisted no-op.
func (h *AdvanceParcelStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceParcelStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().CanAdvanceParcelStatus() {
		return ErrActorNotAllowed
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ParcelRepository()

	p, err := repo.GetByTrackingID(ctx, cmd.TrackingID())
	if err != nil {
		return err
	}

	p.AdvanceStatus(time.Now())

	if err = repo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
