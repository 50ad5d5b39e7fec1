package commands

import (
	"errors"
	"mime/multipart"
	"strings"

	"senderplus/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrSubmitParcelCommandIsNotConstructed is returned when a
// SubmitParcelCommand was not created via NewSubmitParcelCommand.
var ErrSubmitParcelCommandIsNotConstructed = errors.New(
	"SubmitParcelCommand must be created via NewSubmitParcelCommand constructor")

// SubmitParcelFields carries the raw form values of a package submission,
// exactly as received from the multipart form. Emails, value, and
// description are optional; everything else is required.
type SubmitParcelFields struct {
	SenderName       string
	SenderPhone      string
	SenderEmail      string
	SenderAddress    string
	RecipientName    string
	RecipientPhone   string
	RecipientEmail   string
	RecipientAddress string
	PackageName      string
	PackageType      string
	Weight           string
	Value            string
	Description      string
}

// SubmitParcelCommand represents a validated request to submit a package
// for delivery. Construction trims every field, reports ALL missing
// required fields at once, and parses the numeric fields strictly.
type SubmitParcelCommand struct { //nolint:recvcheck //using for validation
	fields SubmitParcelFields
	weight decimal.Decimal
	value  *decimal.Decimal
	photo  *multipart.FileHeader

	guard guard.ConstructorGuard
}

// NewSubmitParcelCommand creates a validated submission request.
//
// Failure modes:
//   - *MissingFieldsError naming every required field that is empty after
//     trimming (not just the first)
//   - ErrWeightIsInvalid when weight does not parse as a positive decimal
//   - ErrDeclaredValueIsInvalid when value is present but does not parse
//     as a non-negative decimal
func NewSubmitParcelCommand(fields SubmitParcelFields, photo *multipart.FileHeader) (SubmitParcelCommand, error) {
	fields = trimSubmitParcelFields(fields)

	required := []struct {
		name  string
		value string
	}{
		{"sender_name", fields.SenderName},
		{"sender_phone", fields.SenderPhone},
		{"sender_address", fields.SenderAddress},
		{"recipient_name", fields.RecipientName},
		{"recipient_phone", fields.RecipientPhone},
		{"recipient_address", fields.RecipientAddress},
		{"package_name", fields.PackageName},
		{"package_type", fields.PackageType},
		{"weight", fields.Weight},
	}

	var missing []string
	for _, f := range required {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return SubmitParcelCommand{}, &MissingFieldsError{Fields: missing}
	}

	weight, err := decimal.NewFromString(fields.Weight)
	if err != nil || !weight.IsPositive() {
		return SubmitParcelCommand{}, ErrWeightIsInvalid
	}

	var value *decimal.Decimal
	if fields.Value != "" {
		parsed, valueErr := decimal.NewFromString(fields.Value)
		if valueErr != nil || parsed.IsNegative() {
			return SubmitParcelCommand{}, ErrDeclaredValueIsInvalid
		}
		value = &parsed
	}

	return SubmitParcelCommand{
		fields: fields,
		weight: weight,
		value:  value,
		photo:  photo,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func trimSubmitParcelFields(f SubmitParcelFields) SubmitParcelFields {
	f.SenderName = strings.TrimSpace(f.SenderName)
	f.SenderPhone = strings.TrimSpace(f.SenderPhone)
	f.SenderEmail = strings.TrimSpace(f.SenderEmail)
	f.SenderAddress = strings.TrimSpace(f.SenderAddress)
	f.RecipientName = strings.TrimSpace(f.RecipientName)
	f.RecipientPhone = strings.TrimSpace(f.RecipientPhone)
	f.RecipientEmail = strings.TrimSpace(f.RecipientEmail)
	f.RecipientAddress = strings.TrimSpace(f.RecipientAddress)
	f.PackageName = strings.TrimSpace(f.PackageName)
	f.PackageType = strings.TrimSpace(f.PackageType)
	f.Weight = strings.TrimSpace(f.Weight)
	f.Value = strings.TrimSpace(f.Value)
	f.Description = strings.TrimSpace(f.Description)
	return f
}

// Validate ensures the command was created through the constructor.
func (c SubmitParcelCommand) Validate() error {
	return c.guard.Validate(ErrSubmitParcelCommandIsNotConstructed)
}

// Fields returns the trimmed raw form values.
func (c SubmitParcelCommand) Fields() SubmitParcelFields {
	return c.fields
}

// Weight returns the parsed parcel weight.
func (c SubmitParcelCommand) Weight() decimal.Decimal {
	return c.weight
}

// Value returns the parsed optional declared value; nil when absent.
func (c SubmitParcelCommand) Value() *decimal.Decimal {
	return c.value
}

// Photo returns the optional uploaded photo; nil when absent.
func (c SubmitParcelCommand) Photo() *multipart.FileHeader {
	return c.photo
}
