package otel

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestAddSpanUsesInjectedTracer(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	defer tp.Shutdown(context.Background())

	ctx := InjectTracing(context.Background(), tp.Tracer("test"))
	if id := GetTraceID(ctx); id != "" {
		t.Fatalf("expected no trace id before a span, got %q", id)
	}

	ctx, span := AddSpan(ctx, "board.submit", attribute.String("customer", "Christy"))
	id := GetTraceID(ctx)
	span.End()

	if len(id) != 32 {
		t.Fatalf("expected 32 hex trace id, got %q", id)
	}
	ended := rec.Ended()
	if len(ended) != 1 || ended[0].Name() != "board.submit" {
		t.Fatalf("unexpected spans: %v", ended)
	}
	attrs := ended[0].Attributes()
	if len(attrs) != 1 || attrs[0].Value.AsString() != "Christy" {
		t.Fatalf("unexpected attributes: %v", attrs)
	}
	if ended[0].SpanContext().TraceID().String() != id {
		t.Fatal("trace id does not match recorded span")
	}
}

func TestAddSpanWithoutTracer(t *testing.T) {
	ctx, span := AddSpan(context.Background(), "noop")
	defer span.End()
	if ctx == nil {
		t.Fatal("expected a context")
	}
}
