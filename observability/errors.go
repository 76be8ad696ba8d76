package observability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/veho-technologies/veho-error/errors"
)

// Attribute keys written for structured errors.
const (
	AttrErrorKind    = "error.kind"
	AttrErrorType    = "error.type"
	AttrErrorReason  = "error.reason"
	AttrErrorDetails = "error.details"
	AttrComponent    = "component"
)

// OtherErrorType is the error.type value used for errors that are not structured.
const OtherErrorType = "_OTHER"

type recordConfig struct {
	includeDetails bool
}

// RecordOption configures RecordError.
type RecordOption func(*recordConfig)

// WithDetails adds the error's details to the recorded attributes.
func WithDetails() RecordOption {
	return func(c *recordConfig) { c.includeDetails = true }
}

// ErrorAttributes returns the span/metric attributes describing err.
func ErrorAttributes(err error, includeDetails bool) []attribute.KeyValue {
	attrs := classAttributes(err)
	e, ok := errors.As(err)
	if !ok {
		return attrs
	}
	if e.HasReason() {
		attrs = append(attrs, attribute.String(AttrErrorReason, e.Reason()))
	}
	if includeDetails && e.HasDetails() {
		attrs = append(attrs, attribute.String(AttrErrorDetails, e.Details()))
	}
	return attrs
}

// RecordError records err as a span event carrying its structured fields
// and marks the span as failed with the error message.
func RecordError(span trace.Span, err error, opts ...RecordOption) {
	if err == nil || span == nil || !span.IsRecording() {
		return
	}
	var cfg recordConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	span.RecordError(err, trace.WithAttributes(ErrorAttributes(err, cfg.includeDetails)...))
	span.SetStatus(codes.Error, err.Error())
}

// SetSpanError records err on the current span in context.
func SetSpanError(ctx context.Context, err error, opts ...RecordOption) {
	RecordError(SpanFromContext(ctx), err, opts...)
}

// classAttributes returns the low-cardinality attributes of err: its kind
// and discriminant.
func classAttributes(err error) []attribute.KeyValue {
	e, ok := errors.As(err)
	if !ok {
		return []attribute.KeyValue{attribute.String(AttrErrorType, OtherErrorType)}
	}
	return []attribute.KeyValue{
		attribute.String(AttrErrorKind, e.Kind()),
		attribute.String(AttrErrorType, e.ErrorType()),
	}
}
