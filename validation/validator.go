package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Field failure kinds. Each FieldError carries one so callers can branch on
// a single field's failure without parsing its message.
const (
	FieldRequired    = "required"
	FieldInvalidUUID = "invalid-uuid"
	FieldTooLong     = "too-long"
	FieldTooShort    = "too-short"
	FieldOutOfRange  = "out-of-range"
	FieldBadFormat   = "bad-format"
	FieldNotAllowed  = "not-allowed"
	FieldInvalid     = "invalid"
)

// Validator collects field failures and reports them as one *Error.
//
//	v := validation.New()
//	v.Required("body", body).MaxLength("body", body, 2000)
//	if verr := v.Validate(); verr != nil {
//	    return verr
//	}
type Validator struct {
	failures []FieldError
}

// New creates an empty Validator.
func New() *Validator {
	return &Validator{}
}

// Add records a failure of the given field kind.
func (v *Validator) Add(field, kind, message string) *Validator {
	v.failures = append(v.failures, FieldError{Field: field, Kind: kind, Message: message})
	return v
}

// AddError records a failure of kind FieldInvalid.
func (v *Validator) AddError(field, message string) {
	v.Add(field, FieldInvalid, message)
}

// HasErrors reports whether any failure was recorded.
func (v *Validator) HasErrors() bool {
	return len(v.failures) > 0
}

// Errors returns the recorded failures.
func (v *Validator) Errors() []FieldError {
	return v.failures
}

// Validate returns the recorded failures as an *Error, or nil when there are
// none. Later checks on v do not change a returned *Error.
func (v *Validator) Validate() *Error {
	if !v.HasErrors() {
		return nil
	}
	collected := make([]FieldError, len(v.failures))
	copy(collected, v.failures)
	return newError(collected)
}

// Required fails when value is empty or whitespace.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.Add(field, FieldRequired, "is required")
	}
	return v
}

// RequiredUUID fails when value is empty, not a UUID, or the nil UUID.
func (v *Validator) RequiredUUID(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		return v.Add(field, FieldRequired, "is required")
	}
	parsed, err := uuid.Parse(value)
	switch {
	case err != nil:
		v.Add(field, FieldInvalidUUID, "must be a valid UUID")
	case parsed == uuid.Nil:
		v.Add(field, FieldRequired, "must not be empty")
	}
	return v
}

// OptionalUUID fails when value is non-empty and not a UUID.
func (v *Validator) OptionalUUID(field, value string) *Validator {
	if value == "" {
		return v
	}
	if _, err := uuid.Parse(value); err != nil {
		v.Add(field, FieldInvalidUUID, "must be a valid UUID")
	}
	return v
}

// MaxLength fails when value is longer than maxLen bytes.
func (v *Validator) MaxLength(field, value string, maxLen int) *Validator {
	if len(value) > maxLen {
		v.Add(field, FieldTooLong, fmt.Sprintf("must be %d characters or less", maxLen))
	}
	return v
}

// MinLength fails when value is shorter than minLen bytes.
func (v *Validator) MinLength(field, value string, minLen int) *Validator {
	if len(value) < minLen {
		v.Add(field, FieldTooShort, fmt.Sprintf("must be at least %d characters", minLen))
	}
	return v
}

// Range fails when value is outside [minVal, maxVal].
func (v *Validator) Range(field string, value, minVal, maxVal int) *Validator {
	if value < minVal || value > maxVal {
		v.Add(field, FieldOutOfRange, fmt.Sprintf("must be between %d and %d", minVal, maxVal))
	}
	return v
}

// Pattern fails when a non-empty value does not match pattern. An invalid
// pattern fails every non-empty value.
func (v *Validator) Pattern(field, value, pattern string) *Validator {
	if value == "" {
		return v
	}
	if matched, err := regexp.MatchString(pattern, value); err != nil || !matched {
		v.Add(field, FieldBadFormat, "does not match required format")
	}
	return v
}

// OneOf fails when a non-empty value is not in allowed.
func (v *Validator) OneOf(field, value string, allowed []string) *Validator {
	if value == "" {
		return v
	}
	for _, a := range allowed {
		if value == a {
			return v
		}
	}
	return v.Add(field, FieldNotAllowed, "must be one of: "+strings.Join(allowed, ", "))
}

// Custom records message under FieldInvalid when condition is false.
func (v *Validator) Custom(condition bool, field, message string) *Validator {
	if !condition {
		v.AddError(field, message)
	}
	return v
}

// Required validates a single required field.
func Required(field, value string) error {
	if verr := New().Required(field, value).Validate(); verr != nil {
		return verr
	}
	return nil
}

// ValidateUUID validates and parses a required UUID.
func ValidateUUID(field, value string) (uuid.UUID, error) {
	if verr := New().RequiredUUID(field, value).Validate(); verr != nil {
		return uuid.Nil, verr
	}
	return uuid.MustParse(value), nil
}
