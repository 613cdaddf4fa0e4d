package usecase

import (
	"context"
	"fmt"
	"time"

	domainErrors "github.com/Parallaxx203/audifyx-backend/internal/domain/errors"
	"github.com/Parallaxx203/audifyx-backend/internal/domain/model"
	"github.com/Parallaxx203/audifyx-backend/internal/domain/repository"
	"github.com/Parallaxx203/audifyx-backend/internal/storage/dedup"
)

// awardTTL returns how long a reference key suppresses repeat awards.
// Daily and stream keys carry a date or session suffix and only need to
// outlive their window. One-time engagement keys never expire, re-liking
// the same post a year later still pays nothing.
func awardTTL(reason model.AwardReason) time.Duration {
	switch reason {
	case model.ReasonDailyLogin, model.ReasonStreamStart, model.ReasonStreamMinute:
		return 24 * time.Hour
	default:
		return 0
	}
}

// PointsUseCase manages the earning ledger.
type PointsUseCase struct {
	points repository.PointsRepository
	guard  dedup.Guard
	now    func() time.Time
}

// NewPointsUseCase constructs PointsUseCase.
func NewPointsUseCase(points repository.PointsRepository, guard dedup.Guard) *PointsUseCase {
	return &PointsUseCase{points: points, guard: guard, now: time.Now}
}

// AwardEvent credits a client reported engagement event. The dedup key is
// derived here, never taken from the caller: daily logins key on the UTC
// date, every other reason requires a ref naming the subject of the event
// (the liked post, the started stream) and keys on reason, user and ref.
func (u *PointsUseCase) AwardEvent(ctx context.Context, userID int64, reason model.AwardReason, ref string) (int64, error) {
	if _, ok := model.AwardValue(reason); !ok {
		return 0, domainErrors.ErrUnknownAwardReason
	}

	var refKey string
	switch reason {
	case model.ReasonDailyLogin:
		refKey = fmt.Sprintf("%s:%d:%s", reason, userID, u.now().UTC().Format("2006-01-02"))
	default:
		if ref == "" {
			return 0, domainErrors.ErrMissingEventRef
		}
		refKey = fmt.Sprintf("%s:%d:%s", reason, userID, ref)
	}
	return u.Award(ctx, userID, reason, refKey)
}

// Award credits the fixed value for reason to the user. A non-empty refKey
// makes the award idempotent: repeat calls with the same key credit nothing
// and return zero. The awarded amount is returned otherwise.
func (u *PointsUseCase) Award(ctx context.Context, userID int64, reason model.AwardReason, refKey string) (int64, error) {
	amount, ok := model.AwardValue(reason)
	if !ok {
		return 0, domainErrors.ErrUnknownAwardReason
	}

	if refKey != "" {
		acquired, err := u.guard.Acquire(ctx, refKey, awardTTL(reason))
		if err != nil {
			return 0, err
		}
		if !acquired {
			return 0, nil
		}
	}

	if err := u.points.Award(ctx, userID, reason, amount); err != nil {
		// Return the key so a retry of the same event can still credit.
		// A failed release leaves the key claimed, the caller's error
		// already signals the award must be retried or investigated.
		if refKey != "" {
			_ = u.guard.Release(ctx, refKey)
		}
		return 0, err
	}
	return amount, nil
}

// Balance returns the current point balance.
func (u *PointsUseCase) Balance(ctx context.Context, userID int64) (*model.PointBalance, error) {
	return u.points.Balance(ctx, userID)
}

// Earnings converts the current balance to its USD value.
func (u *PointsUseCase) Earnings(ctx context.Context, userID int64) (*model.PointBalance, float64, error) {
	balance, err := u.points.Balance(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return balance, model.EarningsUSD(balance.Points), nil
}

// History returns ledger transactions sorted by time.
func (u *PointsUseCase) History(ctx context.Context, userID int64) ([]model.PointTransaction, error) {
	return u.points.Transactions(ctx, userID)
}

// Reconcile verifies the ledger invariant: the transaction sum must equal
// the stored balance. It returns both values so callers can report drift.
func (u *PointsUseCase) Reconcile(ctx context.Context, userID int64) (balance, sum int64, err error) {
	current, err := u.points.Balance(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	sum, err = u.points.TransactionSum(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	return current.Points, sum, nil
}
