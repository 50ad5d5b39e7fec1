package parcel

import (
	"strings"

	"senderplus/internal/pkg/errs"
	"senderplus/internal/pkg/guard"
)

// ErrContactIsNotConstructed is returned when a Contact was not created
// through the NewContact factory.
var ErrContactIsNotConstructed = errs.NewValueIsRequiredError(
	"Contact must be created via NewContact constructor")

// Contact is a value object holding one party's contact block on a parcel.
// Name, phone, and address are required; email is optional.
type Contact struct {
	name    string
	phone   string
	email   string
	address string

	guard guard.ConstructorGuard
}

// NewContact creates a validated contact block. Required fields are trimmed
// and must be non-empty; email may be blank.
func NewContact(name, phone, email, address string) (Contact, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	email = strings.TrimSpace(email)
	address = strings.TrimSpace(address)

	if name == "" {
		return Contact{}, errs.NewValueIsRequiredError("name")
	}
	if phone == "" {
		return Contact{}, errs.NewValueIsRequiredError("phone")
	}
	if address == "" {
		return Contact{}, errs.NewValueIsRequiredError("address")
	}

	return Contact{
		name:    name,
		phone:   phone,
		email:   email,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the contact was created through the constructor.
func (c Contact) Validate() error {
	return c.guard.Validate(ErrContactIsNotConstructed)
}

// Name returns the contact person's name.
func (c Contact) Name() string {
	return c.name
}

// Phone returns the contact phone number.
func (c Contact) Phone() string {
	return c.phone
}

// Email returns the optional contact email; empty when not provided.
func (c Contact) Email() string {
	return c.email
}

// Address returns the contact address.
func (c Contact) Address() string {
	return c.address
}
