package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewWithWriterUsesJSONOutsideDevelopment(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("production", &buf)

	log.CheckoutIntent("sess-1", "evt-1", 2, true)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "checkout_intent" {
		t.Fatalf("expected msg checkout_intent, got %v", entry["msg"])
	}
	if entry["session_id"] != "sess-1" || entry["event_id"] != "evt-1" {
		t.Fatalf("expected session and event ids, got %v", entry)
	}
	if _, ok := entry["email"]; ok {
		t.Fatalf("expected no email attribute, got %v", entry["email"])
	}
}

func TestDevelopmentLoggerEmitsDebug(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("development", &buf)

	log.CartMutation("sess-1", "add", "p1", 1, true)

	if !strings.Contains(buf.String(), "cart_mutation") {
		t.Fatalf("expected debug cart_mutation line, got %q", buf.String())
	}
}

func TestWithContextAddsSessionID(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("production", &buf)
	ctx := context.WithValue(context.Background(), SessionIDKey, "sess-42")

	log.WithContext(ctx).Info("hello")

	if !strings.Contains(buf.String(), `"session_id":"sess-42"`) {
		t.Fatalf("expected session_id attribute, got %q", buf.String())
	}
}
