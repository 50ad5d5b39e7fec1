package token

import (
	"testing"
	"time"

	"senderplus/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParse_RoundTrip(t *testing.T) {
	signer := NewJWTSigner("test-secret", time.Hour)
	accountID := kernel.NewUUID()

	tokenString, err := signer.Sign(accountID)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	parsed, err := signer.Parse(tokenString)
	require.NoError(t, err)
	assert.True(t, accountID.IsEqual(parsed))
}

func TestParse_WrongSecret(t *testing.T) {
	signer := NewJWTSigner("test-secret", time.Hour)
	other := NewJWTSigner("another-secret", time.Hour)

	tokenString, err := signer.Sign(kernel.NewUUID())
	require.NoError(t, err)

	_, err = other.Parse(tokenString)
	assert.Error(t, err)
}

func TestParse_ExpiredToken(t *testing.T) {
	signer := NewJWTSigner("test-secret", -time.Minute)

	tokenString, err := signer.Sign(kernel.NewUUID())
	require.NoError(t, err)

	_, err = signer.Parse(tokenString)
	assert.Error(t, err)
}

func TestParse_Garbage(t *testing.T) {
	signer := NewJWTSigner("test-secret", time.Hour)

	_, err := signer.Parse("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
