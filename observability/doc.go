// Package observability records structured errors in OpenTelemetry traces
// and metrics.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("my-service"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, "comment.post")
//	defer span.End()
//	if err := post(ctx); err != nil {
//	    observability.RecordError(span, err)
//	}
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("my-service"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewErrorMetrics(observability.Meter("my-service"))
//	metrics.Record(ctx, err, "comments")
package observability
