package validation

import (
	stderrors "errors"
	"strings"

	"github.com/veho-technologies/veho-error/errors"
)

// KindValidationFailed is the kind carried by every validation failure.
const KindValidationFailed = "validation-failed"

// ErrorType is the discriminant of validation failures.
var ErrorType = errors.MakeType("ValidationError")

// FieldError is the failure of a single field.
type FieldError struct {
	Field   string `json:"field"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Error is a validation failure. It embeds the structured base so kind,
// reason, details and message behave as for any other structured error.
//
// The reason lists "<field>: <message>" pairs separated by "; ". The details
// hold one "field=<f>;kind=<k>;message=<m>" entry per failure, joined by "|".
type Error struct {
	*errors.VehoError
	FieldErrors []FieldError
}

func newError(fieldErrors []FieldError) *Error {
	reasons := make([]string, len(fieldErrors))
	details := make([]string, len(fieldErrors))
	for i, fe := range fieldErrors {
		reasons[i] = fe.Field + ": " + fe.Message
		details[i] = "field=" + fe.Field + ";kind=" + fe.Kind + ";message=" + fe.Message
	}
	return &Error{
		VehoError:   ErrorType.New(KindValidationFailed, strings.Join(reasons, "; "), strings.Join(details, "|")),
		FieldErrors: fieldErrors,
	}
}

// Error returns the message of the failure; a nil *Error reports "<nil>".
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.VehoError.Error()
}

// Field returns the first failure recorded for field.
func (e *Error) Field(field string) (FieldError, bool) {
	if e == nil {
		return FieldError{}, false
	}
	for _, fe := range e.FieldErrors {
		if fe.Field == field {
			return fe, true
		}
	}
	return FieldError{}, false
}

// HasFieldKind reports whether field failed with the given field kind.
func (e *Error) HasFieldKind(field, kind string) bool {
	if e == nil {
		return false
	}
	for _, fe := range e.FieldErrors {
		if fe.Field == field && fe.Kind == kind {
			return true
		}
	}
	return false
}

// AsError returns the validation failure in err's chain, if any.
func AsError(err error) (*Error, bool) {
	var verr *Error
	if stderrors.As(err, &verr) && verr != nil {
		return verr, true
	}
	return nil, false
}
