package ports

import (
	"context"
	"errors"

	"senderplus/internal/core/domain/model/parcel"
)

// ErrTrackingIDTaken is returned by ParcelRepository.Add when the generated
// tracking ID collides with an existing row. Callers regenerate and retry.
var ErrTrackingIDTaken = errors.New("tracking ID is already taken")

// ParcelRepository defines the persistence contract for parcel aggregates,
// keyed by tracking ID. The implementation must enforce tracking-ID
// uniqueness regardless of generator quality; Add reports a duplicate with
// ErrTrackingIDTaken so callers can regenerate and retry.
type ParcelRepository interface {
	// Add persists a new parcel aggregate. Returns ErrTrackingIDTaken when
	// the tracking ID already exists.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// GetByTrackingID retrieves a parcel by its public tracking identifier.
	GetByTrackingID(ctx context.Context, id parcel.TrackingID) (*parcel.Parcel, error)
}
