package repository

import (
	"context"

	"github.com/Parallaxx203/audifyx-backend/internal/domain/model"
)

// CreatePayoutParams carries everything the storage layer needs to deduct
// points, record the request, and queue the notification in one transaction.
type CreatePayoutParams struct {
	UserID               int64
	PointsAmount         int64
	USDAmount            float64
	WalletAddress        string
	VerificationImageURL string
	RecipientEmail       string
}

// PayoutRepository manages withdrawal requests and their resolution.
type PayoutRepository interface {
	Create(ctx context.Context, params CreatePayoutParams) (*model.PayoutRequest, error)
	GetByID(ctx context.Context, id int64) (*model.PayoutRequest, error)
	ListByUser(ctx context.Context, userID int64) ([]model.PayoutRequest, error)
	ListByStatus(ctx context.Context, status model.PayoutStatus) ([]model.PayoutRequest, error)
	Resolve(ctx context.Context, id int64, status model.PayoutStatus) (*model.PayoutRequest, error)
}
