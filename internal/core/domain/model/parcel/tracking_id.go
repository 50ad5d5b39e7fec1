package parcel

import (
	"fmt"

	"senderplus/internal/pkg/errs"

	"github.com/google/uuid"
)

// trackingIDLength is the fixed length of a parcel tracking identifier.
const trackingIDLength = 8

// ErrTrackingIDIsNotConstructed indicates a zero-value TrackingID.
var ErrTrackingIDIsNotConstructed = errs.NewValueIsRequiredError(
	"TrackingID must be created via NewTrackingID or TrackingIDFromString")

// TrackingID is the opaque public identifier of a parcel. It is an
// 8-character string derived from a random 128-bit UUID, assigned once at
// creation and never supplied by callers. Collision probability is
// negligible; the persistence layer still enforces uniqueness and callers
// of the store are expected to regenerate on the vanishingly rare conflict.
type TrackingID struct {
	value string
}

// NewTrackingID generates a fresh tracking identifier from the first
// 8 hex characters of a random UUIDv4.
func NewTrackingID() TrackingID {
	return TrackingID{value: uuid.NewString()[:trackingIDLength]}
}

// TrackingIDFromString reconstructs a TrackingID from its string form,
// typically when parsing a lookup request or loading from persistence.
func TrackingIDFromString(s string) (TrackingID, error) {
	if s == "" {
		return TrackingID{}, errs.NewValueIsRequiredError("trackingID")
	}
	if len(s) != trackingIDLength {
		return TrackingID{}, errs.NewValueIsInvalidErrorWithCause("trackingID",
			fmt.Errorf("%q is not %d characters long", s, trackingIDLength))
	}
	return TrackingID{value: s}, nil
}

// String returns the raw 8-character identifier.
func (t TrackingID) String() string {
	return t.value
}

// IsEqual reports whether two tracking IDs identify the same parcel.
func (t TrackingID) IsEqual(other TrackingID) bool {
	return t.value == other.value
}

// Validate returns ErrTrackingIDIsNotConstructed for the zero value.
func (t TrackingID) Validate() error {
	if t.value == "" {
		return ErrTrackingIDIsNotConstructed
	}
	return nil
}
