package errors

import "fmt"

// Type is the discriminant of a refinement of the base error shape.
//
// A refinement shares the three fields, the message rule and the stack
// capture of the base; only the value reported by ErrorType differs. The
// zero Type behaves as BaseType.
type Type struct {
	name string
}

// BaseType builds plain structured errors; New is BaseType.New.
var BaseType = Type{name: BaseTypeName}

// MakeType defines a refinement. name must be non-empty and must not be
// BaseTypeName.
func MakeType(name string) Type {
	if name == "" {
		panic("errors: refinement name is required")
	}
	if name == BaseTypeName {
		panic(fmt.Sprintf("errors: refinement name %q is reserved", BaseTypeName))
	}
	return Type{name: name}
}

// Name returns the discriminant reported by ErrorType.
func (t Type) Name() string {
	if t.name == "" {
		return BaseTypeName
	}
	return t.name
}

// New creates an error of this type. It panics with ErrEmptyKind when kind
// is empty, like the package-level New.
func (t Type) New(kind, reason, details string) *VehoError {
	return t.build(1, kind, reason, details)
}

// FromFields rebuilds an error of this type from a field record. The
// record's ErrorType is ignored.
func (t Type) FromFields(f Fields) (*VehoError, error) {
	if f.Error == "" {
		return nil, ErrEmptyKind
	}
	return t.build(1, f.Error, f.Reason, f.Details), nil
}

// Is reports whether err, or any error it wraps, is a structured error
// carrying this discriminant.
func (t Type) Is(err error) bool {
	name := t.Name()
	return find(err, func(e *VehoError) bool { return e.errorType == name }) != nil
}

// String implements fmt.Stringer.
func (t Type) String() string { return t.Name() }

// build constructs the value. skip counts the frames between the caller of
// interest and build.
func (t Type) build(skip int, kind, reason, details string) *VehoError {
	if kind == "" {
		panic(ErrEmptyKind)
	}
	return &VehoError{
		kind:      kind,
		reason:    reason,
		details:   details,
		message:   formatMessage(kind, reason),
		errorType: t.Name(),
		stack:     callers(skip + 1),
	}
}
