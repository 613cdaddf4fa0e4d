package repository

import (
	"context"

	"github.com/Parallaxx203/audifyx-backend/internal/domain/model"
)

// PointsRepository manages the append-only ledger and the derived balance.
// Award writes the transaction row and the balance increment atomically.
type PointsRepository interface {
	Award(ctx context.Context, userID int64, reason model.AwardReason, amount int64) error
	Balance(ctx context.Context, userID int64) (*model.PointBalance, error)
	Transactions(ctx context.Context, userID int64) ([]model.PointTransaction, error)
	TransactionSum(ctx context.Context, userID int64) (int64, error)
}
