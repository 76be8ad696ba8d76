package errors

import "reflect"

// Structured is satisfied by *VehoError and by any type that embeds *VehoError.
// The unexported method keeps unrelated error types from satisfying it.
type Structured interface {
	error
	Kind() string
	Reason() string
	Details() string
	ErrorType() string
	base() *VehoError
}

var _ Structured = (*VehoError)(nil)

// IsStructured reports whether err, or any error it wraps, is a structured error.
func IsStructured(err error) bool {
	_, ok := As(err)
	return ok
}

// As returns the first structured error found in err's chain. Refinements
// are returned as their embedded base value.
func As(err error) (*VehoError, bool) {
	e := find(err, func(*VehoError) bool { return true })
	return e, e != nil
}

// KindOf returns the kind of the first structured error in err's chain.
func KindOf(err error) (string, bool) {
	e, ok := As(err)
	if !ok {
		return "", false
	}
	return e.kind, true
}

// HasKind reports whether err's chain contains a structured error of the given kind.
func HasKind(err error, kind string) bool {
	return find(err, func(e *VehoError) bool { return e.kind == kind }) != nil
}

// find walks err's chain depth-first, following both single and joined
// Unwrap methods, and returns the first structured error accepted by match.
func find(err error, match func(*VehoError) bool) *VehoError {
	for err != nil {
		if e := baseOf(err); e != nil && match(e) {
			return e
		}
		switch u := err.(type) {
		case interface{ Unwrap() error }:
			err = u.Unwrap()
		case interface{ Unwrap() []error }:
			for _, inner := range u.Unwrap() {
				if e := find(inner, match); e != nil {
					return e
				}
			}
			return nil
		default:
			return nil
		}
	}
	return nil
}

// baseOf returns the base value of a structured err, or nil. A typed nil
// refinement yields nil instead of dereferencing through its embedded field.
func baseOf(err error) *VehoError {
	s, ok := err.(Structured)
	if !ok {
		return nil
	}
	if v := reflect.ValueOf(s); v.Kind() == reflect.Ptr && v.IsNil() {
		return nil
	}
	return s.base()
}
