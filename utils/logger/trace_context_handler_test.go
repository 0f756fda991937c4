package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newTestTracerProvider(t *testing.T) *sdktrace.TracerProvider {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })
	return provider
}

func TestTraceContextHandler_AddsTraceIDsWhenSpanPresent(t *testing.T) {
	newTestTracerProvider(t)

	var buf bytes.Buffer
	handler := NewTraceContextHandler(slog.NewJSONHandler(&buf, nil))
	log := slog.New(handler)

	tracer := otel.Tracer("test")
	ctx, span := tracer.Start(context.Background(), "test-span")
	defer span.End()

	log.InfoContext(ctx, "message inside span")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse JSON log output: %v", err)
	}

	traceID, ok := entry["trace_id"].(string)
	if !ok || traceID == "" {
		t.Error("expected trace_id to be present and non-empty")
	}
	spanID, ok := entry["span_id"].(string)
	if !ok || spanID == "" {
		t.Error("expected span_id to be present and non-empty")
	}
}

func TestTraceContextHandler_NoSpanNoTraceFields(t *testing.T) {
	var buf bytes.Buffer
	handler := NewTraceContextHandler(slog.NewJSONHandler(&buf, nil))
	log := slog.New(handler)

	log.InfoContext(context.Background(), "message without span")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse JSON log output: %v", err)
	}

	if _, present := entry["trace_id"]; present {
		t.Error("expected no trace_id without an active span")
	}
}

func TestInitLogger_SetsPackageLogger(t *testing.T) {
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "debug")

	log := InitLogger()
	if log == nil {
		t.Fatal("InitLogger() returned nil")
	}
	if Logger != log {
		t.Error("InitLogger() did not set the package-level Logger")
	}
	if !log.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("expected debug level to be enabled with LOG_LEVEL=debug")
	}
}
