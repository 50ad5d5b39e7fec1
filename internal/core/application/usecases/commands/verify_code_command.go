package commands

import (
	"errors"
	"fmt"
	"strings"

	"senderplus/internal/pkg/errs"
	"senderplus/internal/pkg/guard"
)

// ErrVerifyCodeCommandIsNotConstructed is returned when a VerifyCodeCommand
// was not created via NewVerifyCodeCommand.
var ErrVerifyCodeCommandIsNotConstructed = errors.New(
	"VerifyCodeCommand must be created via NewVerifyCodeCommand constructor")

// VerifyCodeCommand represents a request to prove email ownership by
// submitting a previously issued 6-digit code.
type VerifyCodeCommand struct { //nolint:recvcheck //using for validation
	email string
	code  string

	guard guard.ConstructorGuard
}

// NewVerifyCodeCommand creates a validated verification request. The code
// must be exactly 6 digits.
func NewVerifyCodeCommand(email, code string) (VerifyCodeCommand, error) {
	cmd := VerifyCodeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setCode(code),
	); err != nil {
		return VerifyCodeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyCodeCommand) Validate() error {
	return c.guard.Validate(ErrVerifyCodeCommandIsNotConstructed)
}

// Email returns the normalized email address.
func (c VerifyCodeCommand) Email() string {
	return c.email
}

// Code returns the submitted 6-digit code.
func (c VerifyCodeCommand) Code() string {
	return c.code
}

func (c *VerifyCodeCommand) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *VerifyCodeCommand) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	if len(code) != 6 {
		return errs.NewValueIsInvalidErrorWithCause("code",
			fmt.Errorf("%q is not 6 characters long", code))
	}
	c.code = code
	return nil
}
