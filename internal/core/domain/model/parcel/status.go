package parcel

import (
	"fmt"

	"senderplus/internal/pkg/errs"
)

// Status represents one stage in the parcel delivery lifecycle. It is a
// string-backed value object so the raw key is what gets persisted and
// serialized, while DisplayName provides the human-readable label.
//
// Stage sequence:
//
//	waiting_bus ──> en_route_campus ──> at_campus_hub ──> delivered
//
// The sequence is strictly linear: no backward transitions, no skipping,
// no branching. Delivered is terminal.
type Status string

const (
	// WaitingBus is the initial stage assigned to every submitted parcel.
	WaitingBus Status = "waiting_bus"

	// EnRouteCampus indicates the parcel is in the van heading to campus.
	EnRouteCampus Status = "en_route_campus"

	// AtCampusHub indicates the parcel arrived at the campus hub.
	AtCampusHub Status = "at_campus_hub"

	// Delivered is the terminal stage; no further transitions are allowed.
	Delivered Status = "delivered"
)

// statusSequence returns the ordered stage list that drives Next.
func statusSequence() []Status {
	return []Status{WaitingBus, EnRouteCampus, AtCampusHub, Delivered}
}

// statusDisplayNames returns the human-readable label for each stage.
func statusDisplayNames() map[Status]string {
	return map[Status]string{
		WaitingBus:    "Waiting for package to reach bus station",
		EnRouteCampus: "Package in our van en route to campus",
		AtCampusHub:   "Package at our campus hub",
		Delivered:     "Package delivered to recipient",
	}
}

// Validate checks that the status is a member of the fixed stage set.
func (s Status) Validate() error {
	if _, ok := statusDisplayNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the raw stage key. Implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// DisplayName returns the human-readable label for the stage.
// For unrecognized values it falls back to the raw key.
func (s Status) DisplayName() string {
	if label, ok := statusDisplayNames()[s]; ok {
		return label
	}
	return string(s)
}

// IsTerminal reports whether the stage has no successor.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// Next returns the stage immediately following s in the sequence. The
// terminal stage returns itself; a value outside the sequence is returned
// unchanged.
func (s Status) Next() Status {
	seq := statusSequence()
	for i, stage := range seq {
		if stage == s {
			if i == len(seq)-1 {
				return s
			}
			return seq[i+1]
		}
	}
	return s
}
