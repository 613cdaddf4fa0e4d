package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Parallaxx203/audifyx-backend/internal/domain/model"
	testhelpers "github.com/Parallaxx203/audifyx-backend/internal/test"
)

func TestNewDispatcherDefaults(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	disp := NewDispatcher(&testhelpers.OutboxFacadeStub{}, time.Second, 0, 0, logger)
	if disp.batchSize != 1 {
		t.Fatalf("expected batch size default to 1, got %d", disp.batchSize)
	}
	if disp.workers != 1 {
		t.Fatalf("expected workers default to 1, got %d", disp.workers)
	}
}

func TestDispatcherDeliversNotifications(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := &testhelpers.OutboxFacadeStub{Batches: [][]model.Notification{{
		{ID: 1, Kind: "payout_requested", RecipientEmail: "maya@mail.test"},
		{ID: 2, Kind: "payout_resolved", RecipientEmail: "maya@mail.test"},
	}}}
	disp := NewDispatcher(facade, 10*time.Millisecond, 2, 2, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	disp.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for {
		facade.Lock()
		delivered := len(facade.Sent) >= 2
		facade.Unlock()
		if delivered {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timeout waiting for notification dispatch")
		case <-time.After(10 * time.Millisecond):
		}
	}

	disp.Stop()
	facade.Lock()
	defer facade.Unlock()
	if len(facade.Failed) != 0 {
		t.Fatalf("expected no failures, got %+v", facade.Failed)
	}
}

func TestDispatcherMarksFailures(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := &testhelpers.OutboxFacadeStub{
		Batches: [][]model.Notification{{
			{ID: 1, Attempts: 1},
			{ID: 2, Attempts: maxAttempts},
		}},
		DeliverFn: func(context.Context, model.Notification) error {
			return errors.New("smtp down")
		},
	}
	disp := NewDispatcher(facade, 10*time.Millisecond, 2, 1, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	disp.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for {
		facade.Lock()
		failed := len(facade.Failed) >= 2
		facade.Unlock()
		if failed {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timeout waiting for failure marking")
		case <-time.After(10 * time.Millisecond):
		}
	}

	disp.Stop()
	facade.Lock()
	defer facade.Unlock()
	for _, call := range facade.Failed {
		switch call.ID {
		case 1:
			if call.Terminal {
				t.Fatal("expected retryable failure for first attempt")
			}
		case 2:
			if !call.Terminal {
				t.Fatal("expected terminal failure after max attempts")
			}
		default:
			t.Fatalf("unexpected notification id %d", call.ID)
		}
	}
}
