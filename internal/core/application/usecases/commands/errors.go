package commands

import (
	"errors"
	"fmt"
	"strings"
)

// Request-level failure modes shared by the auth and parcel flows. The HTTP
// adapter maps these onto 400/403-class responses.
var (
	// ErrEmailAlreadyRegistered rejects a signup for an existing email
	// (matched case-insensitively).
	ErrEmailAlreadyRegistered = errors.New("an account with this email already exists")

	// ErrPasswordTooWeak rejects passwords below the minimum length.
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters long")

	// ErrInvalidCredentials rejects a sign-in with an unknown email or a
	// wrong password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrCodeInvalidOrExpired rejects a verification attempt when no
	// matching code exists, or the matched code is used or past expiry.
	ErrCodeInvalidOrExpired = errors.New("invalid or expired verification code")

	// ErrActorNotAllowed rejects a status advance by a caller without the
	// privileged capability.
	ErrActorNotAllowed = errors.New("actor is not allowed to advance parcel status")

	// ErrWeightIsInvalid rejects a submission whose weight does not parse
	// as a positive decimal number.
	ErrWeightIsInvalid = errors.New("weight must be a valid positive number")

	// ErrDeclaredValueIsInvalid rejects a submission whose optional value
	// field is present but does not parse as a non-negative decimal number.
	ErrDeclaredValueIsInvalid = errors.New("value must be a valid non-negative number if provided")
)

// MissingFieldsError reports every required submission field that was empty
// after trimming, not just the first one found.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}
