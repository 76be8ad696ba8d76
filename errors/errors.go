package errors

import (
	stderrors "errors"
)

// BaseTypeName is the discriminant carried by errors built with New.
const BaseTypeName = "Error"

// ErrEmptyKind is returned by FromFields, and used as the panic value of New,
// when no kind is supplied.
var ErrEmptyKind = stderrors.New("errors: kind is required")

// VehoError is a structured, machine-identifiable failure.
//
// All fields are set once at construction and read through accessors.
type VehoError struct {
	// kind uniquely identifies why the operation failed.
	kind string
	// reason is an optional short summary for developers ("Not Found").
	reason string
	// details is optional diagnostic payload, never meant for end users.
	details string
	// message is derived from kind and reason at construction.
	message string
	// errorType is the self-describing discriminant ("Error" or a refinement name).
	errorType string
	stack     Stack
}

// New creates a structured error. Empty reason and details mean "absent".
//
// kind must be non-empty; New panics with ErrEmptyKind otherwise. Use
// FromFields for data that arrives from outside the process.
func New(kind, reason, details string) *VehoError {
	return BaseType.build(1, kind, reason, details)
}

// Error returns the top-line message, satisfying the error interface.
func (e *VehoError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.message
}

// Kind returns the machine-readable failure identifier.
func (e *VehoError) Kind() string {
	if e == nil {
		return ""
	}
	return e.kind
}

// Reason returns the human-readable summary, or "" when absent.
func (e *VehoError) Reason() string {
	if e == nil {
		return ""
	}
	return e.reason
}

// Details returns the diagnostic payload, or "" when absent.
func (e *VehoError) Details() string {
	if e == nil {
		return ""
	}
	return e.details
}

// Message returns the message computed at construction.
func (e *VehoError) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

// ErrorType returns the discriminant: BaseTypeName or a refinement's name.
func (e *VehoError) ErrorType() string {
	if e == nil {
		return ""
	}
	return e.errorType
}

// HasReason reports whether a reason was supplied.
func (e *VehoError) HasReason() bool { return e.Reason() != "" }

// HasDetails reports whether details were supplied.
func (e *VehoError) HasDetails() bool { return e.Details() != "" }

// StackTrace returns the call stack captured at construction, or nil when
// capture was disabled or unavailable.
func (e *VehoError) StackTrace() Stack {
	if e == nil {
		return nil
	}
	return e.stack
}

// Is reports whether target is a structured error with the same kind and
// discriminant. It lets a prototype value act as a sentinel for errors.Is.
func (e *VehoError) Is(target error) bool {
	if e == nil {
		return false
	}
	t := baseOf(target)
	return t != nil && t.kind == e.kind && t.errorType == e.errorType
}

func (e *VehoError) base() *VehoError { return e }

func formatMessage(kind, reason string) string {
	if reason != "" {
		return reason + " [" + kind + "]"
	}
	return "[" + kind + "]"
}
