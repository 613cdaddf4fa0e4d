package email

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestHTTPClientSend(t *testing.T) {
	var received payload
	var apiKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey = r.Header.Get("api-key")
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatalf("bad payload: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, "key-123", "no-reply@audifyx.app", discardLogger())
	if err := client.Send(context.Background(), "maya@audifyx.app", "Payout", "<p>approved</p>"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if apiKey != "key-123" {
		t.Fatalf("unexpected api key: %s", apiKey)
	}
	if received.Subject != "Payout" || received.To[0]["email"] != "maya@audifyx.app" {
		t.Fatalf("unexpected payload: %+v", received)
	}
	if received.Sender["email"] != "no-reply@audifyx.app" {
		t.Fatalf("unexpected sender: %+v", received.Sender)
	}
}

func TestHTTPClientSendFailureStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, "bad-key", "no-reply@audifyx.app", discardLogger())
	if err := client.Send(context.Background(), "maya@audifyx.app", "Payout", "body"); err == nil {
		t.Fatal("expected error")
	}
}

func TestHTTPClientSendConnectionError(t *testing.T) {
	client := NewHTTPClient("http://127.0.0.1:1", "key", "no-reply@audifyx.app", discardLogger())
	if err := client.Send(context.Background(), "maya@audifyx.app", "Payout", "body"); err == nil {
		t.Fatal("expected error")
	}
}

func TestNoopClientSend(t *testing.T) {
	client := NewNoopClient(discardLogger())
	if err := client.Send(context.Background(), "maya@audifyx.app", "Payout", "body"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
