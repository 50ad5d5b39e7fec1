package parcel

import (
	"errors"
	"strings"
	"time"

	"senderplus/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrParcelIsNotConstructed is returned when a Parcel instance was not
// created through NewParcel or RestoreParcel.
var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

// Parcel is the aggregate root for a campus delivery record.
//
// Invariants:
//   - tracking ID is valid, immutable, and assigned at creation
//   - sender and recipient contact blocks are valid
//   - package name and type are non-empty
//   - weight is strictly positive, declared value (when present) non-negative
//   - status moves only forward through the fixed stage sequence
//   - updatedAt never precedes createdAt
type Parcel struct {
	trackingID  TrackingID
	sender      Contact
	recipient   Contact
	packageName string
	packageType string
	weight      decimal.Decimal
	value       *decimal.Decimal
	description string
	photoURL    string
	status      Status
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewParcel creates a parcel in the initial lifecycle stage. The caller
// supplies a freshly generated tracking ID; value and description are
// optional (nil / empty).
func NewParcel(
	trackingID TrackingID,
	sender Contact,
	recipient Contact,
	packageName string,
	packageType string,
	weight decimal.Decimal,
	value *decimal.Decimal,
	description string,
	now time.Time,
) (*Parcel, error) {
	p := &Parcel{
		status:        WaitingBus,
		description:   strings.TrimSpace(description),
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setTrackingID(trackingID),
		p.setSender(sender),
		p.setRecipient(recipient),
		p.setPackageName(packageName),
		p.setPackageType(packageType),
		p.setWeight(weight),
		p.setValue(value),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a parcel from persistence. Unlike NewParcel it
// accepts the stored status and timestamps verbatim; a status value outside
// the known sequence is tolerated and treated as already-terminal by
// AdvanceStatus.
func RestoreParcel(
	trackingID TrackingID,
	sender Contact,
	recipient Contact,
	packageName string,
	packageType string,
	weight decimal.Decimal,
	value *decimal.Decimal,
	description string,
	photoURL string,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Parcel, error) {
	p := &Parcel{
		description:   description,
		photoURL:      photoURL,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setTrackingID(trackingID),
		p.setSender(sender),
		p.setRecipient(recipient),
		p.setPackageName(packageName),
		p.setPackageType(packageType),
		p.setWeight(weight),
		p.setValue(value),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the parcel was built through a constructor.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares parcels by tracking ID.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.trackingID.IsEqual(other.trackingID)
}

// AdvanceStatus moves the parcel to the next lifecycle stage and touches
// updatedAt. Advancing a delivered parcel, or one whose stored status is
// not recognized, is a no-op: the state is left untouched and no error is
// raised. The operation is therefore idempotent once terminal.
func (p *Parcel) AdvanceStatus(now time.Time) {
	next := p.status.Next()
	if next == p.status {
		return
	}
	p.status = next
	p.updatedAt = now
}

// AttachPhoto records the retrievable URL of the stored parcel photo.
// Called during submission, before the parcel is first persisted.
func (p *Parcel) AttachPhoto(url string) {
	p.photoURL = url
}

// TrackingID returns the parcel's public identifier.
func (p *Parcel) TrackingID() TrackingID {
	return p.trackingID
}

// Sender returns the sender contact block.
func (p *Parcel) Sender() Contact {
	return p.sender
}

// Recipient returns the recipient contact block.
func (p *Parcel) Recipient() Contact {
	return p.recipient
}

// PackageName returns the declared content name.
func (p *Parcel) PackageName() string {
	return p.packageName
}

// PackageType returns the declared content category.
func (p *Parcel) PackageType() string {
	return p.packageType
}

// Weight returns the parcel weight.
func (p *Parcel) Weight() decimal.Decimal {
	return p.weight
}

// Value returns the optional declared value; nil when not provided.
func (p *Parcel) Value() *decimal.Decimal {
	return p.value
}

// Description returns the optional free-text description.
func (p *Parcel) Description() string {
	return p.description
}

// PhotoURL returns the stored photo URL; empty when no photo was attached.
func (p *Parcel) PhotoURL() string {
	return p.photoURL
}

// Status returns the current lifecycle stage.
func (p *Parcel) Status() Status {
	return p.status
}

// CreatedAt returns the submission timestamp.
func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (p *Parcel) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Parcel) setTrackingID(trackingID TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	p.trackingID = trackingID
	return nil
}

func (p *Parcel) setSender(sender Contact) error {
	if err := sender.Validate(); err != nil {
		return err
	}
	p.sender = sender
	return nil
}

func (p *Parcel) setRecipient(recipient Contact) error {
	if err := recipient.Validate(); err != nil {
		return err
	}
	p.recipient = recipient
	return nil
}

func (p *Parcel) setPackageName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("package_name")
	}
	p.packageName = name
	return nil
}

func (p *Parcel) setPackageType(packageType string) error {
	packageType = strings.TrimSpace(packageType)
	if packageType == "" {
		return errs.NewValueIsRequiredError("package_type")
	}
	p.packageType = packageType
	return nil
}

func (p *Parcel) setWeight(weight decimal.Decimal) error {
	if !weight.IsPositive() {
		return errs.NewValueIsInvalidError("weight")
	}
	p.weight = weight
	return nil
}

func (p *Parcel) setValue(value *decimal.Decimal) error {
	if value != nil && value.IsNegative() {
		return errs.NewValueIsInvalidError("value")
	}
	p.value = value
	return nil
}
