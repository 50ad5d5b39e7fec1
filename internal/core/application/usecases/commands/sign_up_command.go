package commands

import (
	"errors"
	"strings"

	"senderplus/internal/pkg/errs"
	"senderplus/internal/pkg/guard"
)

// minPasswordLength is the weakest password the signup flow accepts.
const minPasswordLength = 8

// ErrSignUpCommandIsNotConstructed is returned when a SignUpCommand was not
// created via NewSignUpCommand.
var ErrSignUpCommandIsNotConstructed = errors.New(
	"SignUpCommand must be created via NewSignUpCommand constructor")

// SignUpCommand represents a request to create a new account. First and
// last name are optional; the email is normalized to lower case so that
// duplicate detection is case-insensitive.
type SignUpCommand struct { //nolint:recvcheck //using for validation
	email     string
	password  string
	firstName string
	lastName  string

	guard guard.ConstructorGuard
}

// NewSignUpCommand creates a validated signup request. The email must look
// like an address and the password must meet the minimum length.
func NewSignUpCommand(email, password, firstName, lastName string) (SignUpCommand, error) {
	cmd := SignUpCommand{
		firstName: strings.TrimSpace(firstName),
		lastName:  strings.TrimSpace(lastName),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setPassword(password),
	); err != nil {
		return SignUpCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SignUpCommand) Validate() error {
	return c.guard.Validate(ErrSignUpCommandIsNotConstructed)
}

// Email returns the normalized email address.
func (c SignUpCommand) Email() string {
	return c.email
}

// Password returns the plaintext password; it is hashed before storage and
// never persisted.
func (c SignUpCommand) Password() string {
	return c.password
}

// FirstName returns the optional first name.
func (c SignUpCommand) FirstName() string {
	return c.firstName
}

// LastName returns the optional last name.
func (c SignUpCommand) LastName() string {
	return c.lastName
}

func (c *SignUpCommand) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	c.email = email
	return nil
}

func (c *SignUpCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if len(password) < minPasswordLength {
		return ErrPasswordTooWeak
	}
	c.password = password
	return nil
}
