package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"senderplus/internal/core/domain/model/kernel"
	"senderplus/internal/core/domain/model/parcel"
	"senderplus/internal/core/ports"
)

// maxTrackingIDAttempts bounds the regeneration loop on the vanishingly
// rare tracking-ID collision.
const maxTrackingIDAttempts = 3

// SubmitParcelCommandHandler creates a parcel record in the initial
// lifecycle stage, stores the optional photo, and assigns a fresh unique
// tracking ID. The store's uniqueness constraint backstops the generator:
// a duplicate-key conflict triggers regeneration with a new ID.
type SubmitParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	photos     ports.PhotoStorage
}

// NewSubmitParcelCommandHandler creates a handler for package submission.
func NewSubmitParcelCommandHandler(uowFactory ParcelUoWFactory, photos ports.PhotoStorage) SubmitParcelCommandHandler {
	return SubmitParcelCommandHandler{
		uowFactory: uowFactory,
		photos:     photos,
	}
}

// Handle processes the submission and returns the assigned tracking ID.
func (h *SubmitParcelCommandHandler) Handle(ctx context.Context, cmd SubmitParcelCommand) (parcel.TrackingID, error) {
	if err := cmd.Validate(); err != nil {
		return parcel.TrackingID{}, err
	}

	fields := cmd.Fields()

	sender, err := parcel.NewContact(fields.SenderName, fields.SenderPhone, fields.SenderEmail, fields.SenderAddress)
	if err != nil {
		return parcel.TrackingID{}, err
	}

	recipient, err := parcel.NewContact(
		fields.RecipientName, fields.RecipientPhone, fields.RecipientEmail, fields.RecipientAddress)
	if err != nil {
		return parcel.TrackingID{}, err
	}

	photoURL := ""
	if photo := cmd.Photo(); photo != nil {
		path := fmt.Sprintf("package_photos/%s%s", kernel.NewUUID(), filepath.Ext(photo.Filename))
		photoURL, err = h.photos.Store(photo, path)
		if err != nil {
			return parcel.TrackingID{}, err
		}
	}

	uow := h.uowFactory.Create()

	// Each insert attempt runs in its own transaction: a unique violation
	// aborts the surrounding Postgres transaction, so retrying the insert
	// inside it would fail regardless of the fresh tracking ID.
	var stored *parcel.Parcel
	for attempt := 0; attempt < maxTrackingIDAttempts; attempt++ {
		p, buildErr := parcel.NewParcel(
			parcel.NewTrackingID(),
			sender,
			recipient,
			fields.PackageName,
			fields.PackageType,
			cmd.Weight(),
			cmd.Value(),
			fields.Description,
			time.Now(),
		)
		if buildErr != nil {
			return parcel.TrackingID{}, buildErr
		}

		if photoURL != "" {
			p.AttachPhoto(photoURL)
		}

		if err = uow.Begin(ctx); err != nil {
			return parcel.TrackingID{}, err
		}

		if err = uow.ParcelRepository().Add(ctx, p); err != nil {
			_ = uow.Rollback(ctx)
			if errors.Is(err, ports.ErrTrackingIDTaken) {
				continue
			}
			return parcel.TrackingID{}, err
		}

		if err = uow.Commit(ctx); err != nil {
			return parcel.TrackingID{}, err
		}

		stored = p
		break
	}
	if stored == nil {
		return parcel.TrackingID{}, err
	}

	return stored.TrackingID(), nil
}
