package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Parallaxx203/audifyx-backend/internal/domain/model"
)

// maxAttempts bounds delivery retries before a notification is parked as failed.
const maxAttempts = 3

// OutboxFacade exposes the subset of application functionality required by the dispatcher.
type OutboxFacade interface {
	NotificationsForDispatch(ctx context.Context, limit int) ([]model.Notification, error)
	DeliverNotification(ctx context.Context, n model.Notification) error
	MarkNotificationSent(ctx context.Context, id int64) error
	MarkNotificationFailed(ctx context.Context, id int64, terminal bool) error
}

// Dispatcher polls the notification outbox and delivers email concurrently.
type Dispatcher struct {
	facade       OutboxFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Notification
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewDispatcher constructs the outbox worker pool.
func NewDispatcher(facade OutboxFacade, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *Dispatcher {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &Dispatcher{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Notification, batchSize*workers),
	}
}

// Start launches background dispatching.
func (d *Dispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}

	d.wg.Add(1)
	go d.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *Dispatcher) dispatch(ctx context.Context) {
	defer d.wg.Done()
	defer close(d.jobs)
	ticker := time.NewTicker(d.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.fetchAndDispatch(ctx)
		}
	}
}

func (d *Dispatcher) fetchAndDispatch(ctx context.Context) {
	notifications, err := d.facade.NotificationsForDispatch(ctx, d.batchSize)
	if err != nil {
		d.logger.Error("fetch notifications for dispatch failed", slog.String("error", err.Error()))
		return
	}
	for _, n := range notifications {
		select {
		case <-ctx.Done():
			return
		case d.jobs <- n:
		}
	}
}

func (d *Dispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-d.jobs:
			if !ok {
				return
			}
			d.handleNotification(ctx, n)
		}
	}
}

func (d *Dispatcher) handleNotification(ctx context.Context, n model.Notification) {
	if err := d.facade.DeliverNotification(ctx, n); err != nil {
		terminal := n.Attempts >= maxAttempts
		d.logger.Error("notification delivery failed",
			slog.Int64("id", n.ID),
			slog.Int("attempts", n.Attempts),
			slog.Bool("terminal", terminal),
			slog.String("error", err.Error()))
		if err := d.facade.MarkNotificationFailed(ctx, n.ID, terminal); err != nil {
			d.logger.Error("mark notification failed", slog.Int64("id", n.ID), slog.String("error", err.Error()))
		}
		return
	}

	if err := d.facade.MarkNotificationSent(ctx, n.ID); err != nil {
		d.logger.Error("mark notification sent failed", slog.Int64("id", n.ID), slog.String("error", err.Error()))
	}
}
