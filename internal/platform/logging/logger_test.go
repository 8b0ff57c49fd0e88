package logging

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func spanContext(t *testing.T) context.Context {
	t.Helper()

	traceID, err := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
	if err != nil {
		t.Fatalf("trace id: %v", err)
	}
	spanID, err := trace.SpanIDFromHex("0102030405060708")
	if err != nil {
		t.Fatalf("span id: %v", err)
	}

	return trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))
}

func TestInfoContext_StampsTraceIDs(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := FromZap(zap.New(core))

	logger.InfoContext(spanContext(t), "account created", "account_id", "id-001")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["account_id"] != "id-001" {
		t.Errorf("account_id = %v", fields["account_id"])
	}
	if fields["trace_id"] != "0102030405060708090a0b0c0d0e0f10" {
		t.Errorf("trace_id = %v", fields["trace_id"])
	}
	if fields["span_id"] != "0102030405060708" {
		t.Errorf("span_id = %v", fields["span_id"])
	}
}

func TestInfoContext_NoSpanNoTraceFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := FromZap(zap.New(core))

	logger.InfoContext(context.Background(), "contact link replaced", "link_id", "id-002")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if _, ok := fields["trace_id"]; ok {
		t.Error("trace_id stamped without an active span")
	}
}

func TestWith_CarriesFieldsForward(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := FromZap(zap.New(core)).With("component", "usecase")

	logger.Info("account deleted", "account_id", "id-003")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["component"] != "usecase" {
		t.Errorf("component = %v", fields["component"])
	}
	if fields["account_id"] != "id-003" {
		t.Errorf("account_id = %v", fields["account_id"])
	}
}
