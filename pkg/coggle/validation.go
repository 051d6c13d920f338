package coggle

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// MaxTextLength is the maximum node text length, counted in runes. The
// service may count bytes instead, so text near the limit made of multi-byte
// characters can pass this check and still be rejected by the server.
const MaxTextLength = 3000

var orgNamePattern = regexp.MustCompile(`^[a-z]+[a-z0-9-]{2,}$`)

// ValidateText returns a *ValidationError wrapping ErrTextTooLong when text
// exceeds MaxTextLength characters.
func ValidateText(text string) error {
	if err := validation.Validate(text, validation.RuneLength(0, MaxTextLength)); err != nil {
		return &ValidationError{Field: "text", Err: ErrTextTooLong, Reason: err}
	}
	return nil
}

// ValidateOrganizationName returns a *ValidationError wrapping
// ErrInvalidOrganizationName unless name is lowercase letters followed by at
// least two lowercase letters, digits or hyphens.
func ValidateOrganizationName(name string) error {
	if err := validation.Validate(name,
		validation.Required,
		validation.Match(orgNamePattern),
	); err != nil {
		return &ValidationError{Field: "organization", Err: ErrInvalidOrganizationName, Reason: err}
	}
	return nil
}
