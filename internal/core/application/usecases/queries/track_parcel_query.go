// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain aggregates and read projections straight
// from the database, returning plain response structs.
package queries

import (
	"errors"

	"senderplus/internal/core/domain/model/parcel"
	"senderplus/internal/pkg/guard"
)

// ErrTrackParcelQueryIsNotConstructed is returned when a TrackParcelQuery
// was not created via NewTrackParcelQuery.
var ErrTrackParcelQueryIsNotConstructed = errors.New(
	"TrackParcelQuery must be created via NewTrackParcelQuery constructor")

// TrackParcelQuery represents a public lookup of one parcel by tracking ID.
type TrackParcelQuery struct { //nolint:recvcheck //using for validation
	trackingID parcel.TrackingID

	guard guard.ConstructorGuard
}

// NewTrackParcelQuery creates a validated tracking lookup.
func NewTrackParcelQuery(trackingID parcel.TrackingID) (TrackParcelQuery, error) {
	if err := trackingID.Validate(); err != nil {
		return TrackParcelQuery{}, err
	}

	return TrackParcelQuery{
		trackingID: trackingID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackParcelQuery) Validate() error {
	return q.guard.Validate(ErrTrackParcelQueryIsNotConstructed)
}

// TrackingID returns the identifier being looked up.
func (q TrackParcelQuery) TrackingID() parcel.TrackingID {
	return q.trackingID
}
