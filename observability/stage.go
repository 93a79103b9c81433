package observability

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/sdkpipe/sdkpipe/httpsdk"
	"github.com/sdkpipe/sdkpipe/pipe"
)

// Traced wraps a stage in a span. The span records the stage name, the error
// and its kind on failure, and sets span status accordingly.
func Traced[A, B any](name string, s pipe.Stage[A, B]) pipe.Stage[A, B] {
	return func(ctx context.Context, in A) (B, error) {
		ctx, span := StartSpan(ctx, name, trace.WithAttributes(
			attribute.String(AttrStageName, name),
		))
		defer span.End()

		out, err := s(ctx, in)
		if err != nil {
			SetSpanError(ctx, err)
			span.SetAttributes(attribute.String(AttrErrorKind, errorKind(err)))
			span.SetStatus(codes.Error, err.Error())
			return out, err
		}
		span.SetStatus(codes.Ok, "")
		return out, nil
	}
}

// Measured wraps a stage with metric recording. A nil Metrics passes the
// stage through unchanged.
func Measured[A, B any](m *Metrics, name string, s pipe.Stage[A, B]) pipe.Stage[A, B] {
	if m == nil {
		return s
	}
	return func(ctx context.Context, in A) (B, error) {
		start := time.Now()
		out, err := s(ctx, in)
		m.RecordStage(ctx, name, time.Since(start), err)
		return out, err
	}
}

func errorKind(err error) string {
	var sdkErr *httpsdk.Error
	if errors.As(err, &sdkErr) {
		return sdkErr.Kind.String()
	}
	return "unknown"
}
