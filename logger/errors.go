package logger

import (
	"github.com/rs/zerolog"

	"github.com/veho-technologies/veho-error/errors"
)

// errorObject writes a structured error as a nested log object.
type errorObject struct {
	err        *errors.VehoError
	stacktrace bool
}

func (o errorObject) MarshalZerologObject(e *zerolog.Event) {
	e.Str("type", o.err.ErrorType()).Str("kind", o.err.Kind())
	if o.err.HasReason() {
		e.Str("reason", o.err.Reason())
	}
	if o.err.HasDetails() {
		e.Str("details", o.err.Details())
	}
	e.Str("message", o.err.Message())
	if o.stacktrace {
		if frames := o.err.StackTrace().Frames(); len(frames) > 0 {
			stack := make([]string, len(frames))
			for i, fr := range frames {
				stack[i] = fr.String()
			}
			e.Strs("stack", stack)
		}
	}
}

// ErrorObject returns a zerolog object marshaler for the first structured
// error in err's chain, or nil when there is none.
//
//	log.GetLogger().Error().Object("error_detail", logger.ErrorObject(err)).Msg("failed")
func ErrorObject(err error) zerolog.LogObjectMarshaler {
	e, ok := errors.As(err)
	if !ok {
		return nil
	}
	return errorObject{err: e}
}

// withStructuredError adds the structured fields of err to a logger context.
func withStructuredError(zc zerolog.Context, err error, stacktrace bool) zerolog.Context {
	e, ok := errors.As(err)
	if !ok {
		return zc
	}
	return zc.
		Str(FieldErrorKind, e.Kind()).
		Object(FieldErrorDetail, errorObject{err: e, stacktrace: stacktrace})
}
