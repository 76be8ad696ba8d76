package errors

// Fields is the plain field record of a structured error, shaped for any
// text or structured-data serializer. The message is not carried since it
// is derived from Error and Reason.
type Fields struct {
	Error     string `json:"error" yaml:"error" mapstructure:"error"`
	Reason    string `json:"reason,omitempty" yaml:"reason,omitempty" mapstructure:"reason"`
	Details   string `json:"details,omitempty" yaml:"details,omitempty" mapstructure:"details"`
	ErrorType string `json:"errorType,omitempty" yaml:"errorType,omitempty" mapstructure:"errorType"`
}

// Fields returns the field record of e.
func (e *VehoError) Fields() Fields {
	if e == nil {
		return Fields{}
	}
	return Fields{
		Error:     e.kind,
		Reason:    e.reason,
		Details:   e.details,
		ErrorType: e.errorType,
	}
}

// FromFields rebuilds a structured error on the receiving side. The stack,
// when captured, is that of the caller of FromFields. An empty or base
// ErrorType yields a base error; any other value is kept as the discriminant.
func FromFields(f Fields) (*VehoError, error) {
	if f.Error == "" {
		return nil, ErrEmptyKind
	}
	t := BaseType
	if f.ErrorType != "" {
		t = Type{name: f.ErrorType}
	}
	return t.build(1, f.Error, f.Reason, f.Details), nil
}
