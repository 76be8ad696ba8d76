// Package validation provides input validation that reports failures as
// structured errors.
//
// Failures are returned as *Error, a refinement of errors.VehoError with kind
// "validation-failed" and discriminant "ValidationError". The reason lists
// each failing field; the details carry one
// "field=<name>;kind=<field kind>;message=<text>" entry per failure,
// separated by "|". Field kinds (FieldRequired, FieldTooLong, ...) are also
// available on each FieldError and through HasFieldKind.
//
// # Struct Tag Validation
//
//	type CreateUserCmd struct {
//	    Name  string `json:"name" validate:"required,min=2"`
//	    Email string `json:"email" validate:"required,email"`
//	}
//	err := validation.Validate(cmd)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("name", name).MaxLength("name", name, 64)
//	if verr := v.Validate(); verr != nil {
//	    return verr
//	}
package validation
