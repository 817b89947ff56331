package telemetry

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSetupWithoutDestinationIsNoop(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if Enabled() {
		t.Fatal("Enabled() = true without headers")
	}
	shutdown, err := Setup(context.Background())
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown() error = %v", err)
	}

	_, span := Tracer("test").Start(context.Background(), "test.span")
	defer span.End()
	if span.IsRecording() {
		t.Error("span is recording without a configured provider")
	}
}

func TestFailMarksSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer tp.Shutdown(context.Background())

	_, span := tp.Tracer("test").Start(context.Background(), "dungeon.generate")
	Fail(span, errors.New("boom"))
	span.End()

	ended := recorder.Ended()
	if len(ended) != 1 {
		t.Fatalf("ended spans = %d, want 1", len(ended))
	}
	if got := ended[0].Status(); got.Code != codes.Error || got.Description != "boom" {
		t.Errorf("status = %+v, want error \"boom\"", got)
	}
	if len(ended[0].Events()) == 0 {
		t.Error("error was not recorded as an event")
	}
}
