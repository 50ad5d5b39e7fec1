package commands

import (
	"errors"

	"senderplus/internal/core/domain/model/parcel"
	"senderplus/internal/pkg/errs"
	"senderplus/internal/pkg/guard"
)

// ErrAdvanceParcelStatusCommandIsNotConstructed is returned when an
// AdvanceParcelStatusCommand was not created via its constructor.
var ErrAdvanceParcelStatusCommandIsNotConstructed = errors.New(
	"AdvanceParcelStatusCommand must be created via NewAdvanceParcelStatusCommand constructor")

// AdvanceParcelStatusCommand represents a request to move a parcel to the
// next lifecycle stage, on behalf of an authenticated actor.
type AdvanceParcelStatusCommand struct { //nolint:recvcheck //using for validation
	trackingID parcel.TrackingID
	actor      Actor

	guard guard.ConstructorGuard
}

// NewAdvanceParcelStatusCommand creates a validated advance request.
func NewAdvanceParcelStatusCommand(trackingID parcel.TrackingID, actor Actor) (AdvanceParcelStatusCommand, error) {
	cmd := AdvanceParcelStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTrackingID(trackingID),
		cmd.setActor(actor),
	); err != nil {
		return AdvanceParcelStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceParcelStatusCommandIsNotConstructed)
}

// TrackingID returns the target parcel's identifier.
func (c AdvanceParcelStatusCommand) TrackingID() parcel.TrackingID {
	return c.trackingID
}

// Actor returns the caller whose capability gates the operation.
func (c AdvanceParcelStatusCommand) Actor() Actor {
	return c.actor
}

func (c *AdvanceParcelStatusCommand) setTrackingID(trackingID parcel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	c.trackingID = trackingID
	return nil
}

func (c *AdvanceParcelStatusCommand) setActor(actor Actor) error {
	if actor == nil {
		return errs.NewValueIsRequiredError("actor")
	}
	c.actor = actor
	return nil
}
