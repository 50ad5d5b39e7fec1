package commands_test

import (
	"testing"

	"senderplus/internal/core/application/usecases/commands"
	"senderplus/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVerifyCodeCommand(t *testing.T) {
	t.Run("valid command", func(t *testing.T) {
		cmd, err := commands.NewVerifyCodeCommand("Alice@Campus.edu", " 042137 ")
		require.NoError(t, err)
		assert.Equal(t, "alice@campus.edu", cmd.Email())
		assert.Equal(t, "042137", cmd.Code())
	})

	t.Run("code with wrong length", func(t *testing.T) {
		_, err := commands.NewVerifyCodeCommand("alice@campus.edu", "1234")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("empty code", func(t *testing.T) {
		_, err := commands.NewVerifyCodeCommand("alice@campus.edu", "")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("empty email", func(t *testing.T) {
		_, err := commands.NewVerifyCodeCommand("", "042137")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewSendCodeCommand(t *testing.T) {
	t.Run("valid command normalizes email", func(t *testing.T) {
		cmd, err := commands.NewSendCodeCommand(" Bob@Campus.EDU ")
		require.NoError(t, err)
		assert.Equal(t, "bob@campus.edu", cmd.Email())
	})

	t.Run("empty email", func(t *testing.T) {
		_, err := commands.NewSendCodeCommand("  ")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewSignInCommand(t *testing.T) {
	t.Run("valid command", func(t *testing.T) {
		cmd, err := commands.NewSignInCommand("Alice@Campus.edu", "whatever")
		require.NoError(t, err)
		assert.Equal(t, "alice@campus.edu", cmd.Email())
		assert.Equal(t, "whatever", cmd.Password())
	})

	t.Run("empty credentials", func(t *testing.T) {
		_, err := commands.NewSignInCommand("", "")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
