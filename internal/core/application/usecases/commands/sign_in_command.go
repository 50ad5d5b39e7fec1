package commands

import (
	"errors"
	"strings"

	"senderplus/internal/pkg/errs"
	"senderplus/internal/pkg/guard"
)

// ErrSignInCommandIsNotConstructed is returned when a SignInCommand was not
// created via NewSignInCommand.
var ErrSignInCommandIsNotConstructed = errors.New(
	"SignInCommand must be created via NewSignInCommand constructor")

// SignInCommand represents a request to establish a session with email and
// password credentials. Sign-in is deliberately not gated on email
// verification; a freshly signed-up account can sign in immediately.
type SignInCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewSignInCommand creates a validated sign-in request.
func NewSignInCommand(email, password string) (SignInCommand, error) {
	cmd := SignInCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setPassword(password),
	); err != nil {
		return SignInCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SignInCommand) Validate() error {
	return c.guard.Validate(ErrSignInCommandIsNotConstructed)
}

// Email returns the normalized email address.
func (c SignInCommand) Email() string {
	return c.email
}

// Password returns the plaintext password to compare against the stored hash.
func (c SignInCommand) Password() string {
	return c.password
}

func (c *SignInCommand) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *SignInCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	c.password = password
	return nil
}
