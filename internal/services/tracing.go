package services

import (
	"time"

	"social-webbase/internal/apperror"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("social-webbase/services")

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, apperror.Message(err))
	}
	span.End()
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	return apperror.KindOf(err).String()
}

// now is the store timestamp; Mongo keeps millisecond precision.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
