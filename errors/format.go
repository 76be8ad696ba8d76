package errors

import (
	"fmt"
	"io"
)

// Format implements fmt.Formatter.
//
//	%s, %v  message
//	%q      quoted message
//	%+v     type, kind, reason, details and stack on separate lines
func (e *VehoError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			e.formatVerbose(s)
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}

func (e *VehoError) formatVerbose(w io.Writer) {
	if e == nil {
		_, _ = io.WriteString(w, "<nil>")
		return
	}
	_, _ = fmt.Fprintf(w, "type=%s kind=%s", e.errorType, e.kind)
	if e.reason != "" {
		_, _ = fmt.Fprintf(w, " reason=%q", e.reason)
	}
	if e.details != "" {
		_, _ = fmt.Fprintf(w, "\ndetails: %s", e.details)
	}
	if frames := e.stack.Frames(); len(frames) > 0 {
		_, _ = io.WriteString(w, "\nstack:")
		for _, fr := range frames {
			_, _ = fmt.Fprintf(w, "\n  %s", fr)
		}
	}
}
