package commands

import (
	"errors"
	"strings"

	"senderplus/internal/pkg/errs"
	"senderplus/internal/pkg/guard"
)

// ErrSendCodeCommandIsNotConstructed is returned when a SendCodeCommand was
// not created via NewSendCodeCommand.
var ErrSendCodeCommandIsNotConstructed = errors.New(
	"SendCodeCommand must be created via NewSendCodeCommand constructor")

// SendCodeCommand represents a request to issue and email a fresh
// verification code, independent of any previously issued codes.
type SendCodeCommand struct { //nolint:recvcheck //using for validation
	email string

	guard guard.ConstructorGuard
}

// NewSendCodeCommand creates a validated resend request.
func NewSendCodeCommand(email string) (SendCodeCommand, error) {
	cmd := SendCodeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setEmail(email); err != nil {
		return SendCodeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SendCodeCommand) Validate() error {
	return c.guard.Validate(ErrSendCodeCommandIsNotConstructed)
}

// Email returns the normalized email address.
func (c SendCodeCommand) Email() string {
	return c.email
}

func (c *SendCodeCommand) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}
