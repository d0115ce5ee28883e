package log

import (
	"context"
	"testing"
)

func TestLog_Basic(t *testing.T) {
	Info("info %s", "message")
	Warn("warn %s", "message")
	Error("error %s", "message")
}

func TestLog_RequestIDPropagation(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")
	if got := getRequestID(ctx); got != "req-123" {
		t.Fatalf("expected request id to round-trip, got %q", got)
	}
	if got := getRequestID(context.Background()); got != "" {
		t.Fatalf("expected empty request id on bare context, got %q", got)
	}
}

func TestLog_FormatLog(t *testing.T) {
	if got := formatLog("INFO", "abc", "n=%d", 1); got != "[INFO] [req_id=abc] n=1" {
		t.Fatalf("unexpected format: %q", got)
	}
	if got := formatLog("WARN", "", "plain"); got != "[WARN] plain" {
		t.Fatalf("unexpected format: %q", got)
	}
}
