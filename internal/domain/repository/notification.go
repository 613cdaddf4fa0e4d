package repository

import (
	"context"

	"github.com/Parallaxx203/audifyx-backend/internal/domain/model"
)

// NotificationRepository is the email outbox. SelectBatchForDispatch locks
// pending rows so concurrent dispatchers never pick the same notification.
type NotificationRepository interface {
	Enqueue(ctx context.Context, n *model.Notification) error
	SelectBatchForDispatch(ctx context.Context, limit int) ([]model.Notification, error)
	MarkSent(ctx context.Context, id int64) error
	MarkFailed(ctx context.Context, id int64, terminal bool) error
}
