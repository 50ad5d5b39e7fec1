// Package parcelrepo provides data transfer objects and mapping functions for
// parcel persistence. It implements the repository pattern for the parcel
// aggregate, converting between domain entities and database rows.
package parcelrepo

import (
	"time"

	"senderplus/internal/core/domain/model/parcel"

	"github.com/shopspring/decimal"
)

// ParcelDTO represents the database structure for persisting parcel
// aggregates. The public tracking identifier is the primary key, so the
// uniqueness required for collision retries comes from the table itself.
type ParcelDTO struct {
	TrackingID  string              `gorm:"type:varchar(8);primaryKey"`
	Sender      ContactDTO          `gorm:"embedded;embeddedPrefix:sender_"`
	Recipient   ContactDTO          `gorm:"embedded;embeddedPrefix:recipient_"`
	PackageName string              `gorm:"not null"`
	PackageType string              `gorm:"not null"`
	Weight      decimal.Decimal     `gorm:"type:numeric(10,2)"`
	Value       decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	Description string
	PhotoURL    string
	Status      string    `gorm:"type:varchar(32);index"`
	CreatedAt   time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// ContactDTO represents the embedded sender or recipient contact columns
// within the parcel table.
type ContactDTO struct {
	Name    string `gorm:"not null"`
	Phone   string `gorm:"not null"`
	Email   string
	Address string `gorm:"not null"`
}

// fromDomain converts a parcel domain aggregate to its database representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	var value decimal.NullDecimal
	if v := aggregate.Value(); v != nil {
		value = decimal.NewNullDecimal(*v)
	}

	return ParcelDTO{
		TrackingID:  aggregate.TrackingID().String(),
		Sender:      contactFromDomain(aggregate.Sender()),
		Recipient:   contactFromDomain(aggregate.Recipient()),
		PackageName: aggregate.PackageName(),
		PackageType: aggregate.PackageType(),
		Weight:      aggregate.Weight(),
		Value:       value,
		Description: aggregate.Description(),
		PhotoURL:    aggregate.PhotoURL(),
		Status:      string(aggregate.Status()),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

func contactFromDomain(c parcel.Contact) ContactDTO {
	return ContactDTO{
		Name:    c.Name(),
		Phone:   c.Phone(),
		Email:   c.Email(),
		Address: c.Address(),
	}
}

// toDomain converts a database DTO to a parcel domain aggregate using
// RestoreParcel, preserving the stored status and timestamps verbatim.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	trackingID, err := parcel.TrackingIDFromString(dto.TrackingID)
	if err != nil {
		return nil, err
	}

	sender, err := contactToDomain(dto.Sender)
	if err != nil {
		return nil, err
	}

	recipient, err := contactToDomain(dto.Recipient)
	if err != nil {
		return nil, err
	}

	var value *decimal.Decimal
	if dto.Value.Valid {
		value = &dto.Value.Decimal
	}

	return parcel.RestoreParcel(
		trackingID,
		sender,
		recipient,
		dto.PackageName,
		dto.PackageType,
		dto.Weight,
		value,
		dto.Description,
		dto.PhotoURL,
		parcel.Status(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func contactToDomain(dto ContactDTO) (parcel.Contact, error) {
	return parcel.NewContact(dto.Name, dto.Phone, dto.Email, dto.Address)
}
