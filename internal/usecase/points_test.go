package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/Parallaxx203/audifyx-backend/internal/domain/errors"
	"github.com/Parallaxx203/audifyx-backend/internal/domain/model"
	testhelpers "github.com/Parallaxx203/audifyx-backend/internal/test"
)

func TestPointsUseCaseAward(t *testing.T) {
	var awarded []int64
	points := &testhelpers.PointsRepositoryStub{
		AwardFn: func(_ context.Context, userID int64, reason model.AwardReason, amount int64) error {
			awarded = append(awarded, amount)
			if reason != model.ReasonPostCreated {
				t.Fatalf("unexpected reason: %s", reason)
			}
			return nil
		},
	}
	guard := &testhelpers.GuardStub{}
	uc := NewPointsUseCase(points, guard)

	amount, err := uc.Award(context.Background(), 1, model.ReasonPostCreated, "post:1")
	if err != nil || amount != 10 {
		t.Fatalf("unexpected result: amount=%d err=%v", amount, err)
	}
	if len(guard.Keys) != 1 || guard.Keys[0] != "post:1" {
		t.Fatalf("unexpected guard keys: %v", guard.Keys)
	}
	if len(awarded) != 1 {
		t.Fatalf("expected one ledger write, got %d", len(awarded))
	}
}

func TestPointsUseCaseAwardDuplicateSuppressed(t *testing.T) {
	points := &testhelpers.PointsRepositoryStub{
		AwardFn: func(context.Context, int64, model.AwardReason, int64) error {
			t.Fatal("ledger must not be touched for duplicate awards")
			return nil
		},
	}
	guard := &testhelpers.GuardStub{
		AcquireFn: func(context.Context, string, time.Duration) (bool, error) { return false, nil },
	}
	uc := NewPointsUseCase(points, guard)

	amount, err := uc.Award(context.Background(), 1, model.ReasonFollow, "follow:1:2")
	if err != nil || amount != 0 {
		t.Fatalf("expected suppressed award, got amount=%d err=%v", amount, err)
	}
}

func TestPointsUseCaseAwardWithoutRefKeySkipsGuard(t *testing.T) {
	guard := &testhelpers.GuardStub{
		AcquireFn: func(context.Context, string, time.Duration) (bool, error) {
			t.Fatal("guard must not be consulted without a ref key")
			return false, nil
		},
	}
	uc := NewPointsUseCase(&testhelpers.PointsRepositoryStub{}, guard)

	if _, err := uc.Award(context.Background(), 1, model.ReasonStreamMinute, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPointsUseCaseAwardErrors(t *testing.T) {
	uc := NewPointsUseCase(&testhelpers.PointsRepositoryStub{}, &testhelpers.GuardStub{})
	if _, err := uc.Award(context.Background(), 1, model.AwardReason("bribe"), ""); !errors.Is(err, domainErrors.ErrUnknownAwardReason) {
		t.Fatalf("expected unknown reason, got %v", err)
	}

	uc = NewPointsUseCase(&testhelpers.PointsRepositoryStub{}, &testhelpers.GuardStub{
		AcquireFn: func(context.Context, string, time.Duration) (bool, error) {
			return false, errors.New("redis down")
		},
	})
	if _, err := uc.Award(context.Background(), 1, model.ReasonFollow, "follow:1:2"); err == nil {
		t.Fatal("expected guard error")
	}

	uc = NewPointsUseCase(&testhelpers.PointsRepositoryStub{
		AwardFn: func(context.Context, int64, model.AwardReason, int64) error {
			return errors.New("db down")
		},
	}, &testhelpers.GuardStub{})
	if _, err := uc.Award(context.Background(), 1, model.ReasonFollow, ""); err == nil {
		t.Fatal("expected ledger error")
	}
}

func TestPointsUseCaseAwardEvent(t *testing.T) {
	var awarded int
	points := &testhelpers.PointsRepositoryStub{
		AwardFn: func(context.Context, int64, model.AwardReason, int64) error {
			awarded++
			return nil
		},
	}
	guard := &testhelpers.GuardStub{}
	uc := NewPointsUseCase(points, guard)
	uc.now = func() time.Time { return time.Date(2026, 9, 1, 23, 59, 0, 0, time.UTC) }

	amount, err := uc.AwardEvent(context.Background(), 1, model.ReasonLike, "42")
	if err != nil || amount != 2 {
		t.Fatalf("unexpected result: amount=%d err=%v", amount, err)
	}
	if guard.Keys[0] != "like:1:42" {
		t.Fatalf("unexpected derived key: %q", guard.Keys[0])
	}
	if guard.TTLs[0] != 0 {
		t.Fatalf("one-time engagement keys must not expire, got ttl %v", guard.TTLs[0])
	}

	amount, err = uc.AwardEvent(context.Background(), 1, model.ReasonDailyLogin, "")
	if err != nil || amount != 5 {
		t.Fatalf("unexpected result: amount=%d err=%v", amount, err)
	}
	if guard.Keys[1] != "daily_login:1:2026-09-01" {
		t.Fatalf("unexpected derived key: %q", guard.Keys[1])
	}
	if guard.TTLs[1] != 24*time.Hour {
		t.Fatalf("unexpected daily login ttl %v", guard.TTLs[1])
	}
	if awarded != 2 {
		t.Fatalf("expected two ledger writes, got %d", awarded)
	}
}

func TestPointsUseCaseAwardEventRequiresRef(t *testing.T) {
	guard := &testhelpers.GuardStub{
		AcquireFn: func(context.Context, string, time.Duration) (bool, error) {
			t.Fatal("guard must not be consulted for an unidentifiable event")
			return false, nil
		},
	}
	uc := NewPointsUseCase(&testhelpers.PointsRepositoryStub{}, guard)

	for _, reason := range []model.AwardReason{model.ReasonLike, model.ReasonStreamStart, model.ReasonShare} {
		if _, err := uc.AwardEvent(context.Background(), 1, reason, ""); !errors.Is(err, domainErrors.ErrMissingEventRef) {
			t.Fatalf("expected missing ref for %s, got %v", reason, err)
		}
	}
	if _, err := uc.AwardEvent(context.Background(), 1, model.AwardReason("bribe"), "x"); !errors.Is(err, domainErrors.ErrUnknownAwardReason) {
		t.Fatalf("expected unknown reason, got %v", err)
	}
}

func TestPointsUseCaseAwardReleasesKeyOnLedgerFailure(t *testing.T) {
	failures := 1
	points := &testhelpers.PointsRepositoryStub{
		AwardFn: func(context.Context, int64, model.AwardReason, int64) error {
			if failures > 0 {
				failures--
				return errors.New("db down")
			}
			return nil
		},
	}
	claimed := map[string]bool{}
	guard := &testhelpers.GuardStub{
		AcquireFn: func(_ context.Context, key string, _ time.Duration) (bool, error) {
			if claimed[key] {
				return false, nil
			}
			claimed[key] = true
			return true, nil
		},
		ReleaseFn: func(_ context.Context, key string) error {
			delete(claimed, key)
			return nil
		},
	}
	uc := NewPointsUseCase(points, guard)

	if _, err := uc.AwardEvent(context.Background(), 1, model.ReasonLike, "42"); err == nil {
		t.Fatal("expected ledger error")
	}
	if len(guard.Released) != 1 || guard.Released[0] != "like:1:42" {
		t.Fatalf("expected the key released after the failed write, got %v", guard.Released)
	}

	amount, err := uc.AwardEvent(context.Background(), 1, model.ReasonLike, "42")
	if err != nil {
		t.Fatalf("retry returned error: %v", err)
	}
	if amount != 2 {
		t.Fatalf("retry of a never-credited event must still pay, got %d", amount)
	}

	amount, err = uc.AwardEvent(context.Background(), 1, model.ReasonLike, "42")
	if err != nil || amount != 0 {
		t.Fatalf("expected suppressed duplicate after the credit, got amount=%d err=%v", amount, err)
	}
}

func TestPointsUseCaseEarnings(t *testing.T) {
	uc := NewPointsUseCase(&testhelpers.PointsRepositoryStub{
		BalanceFn: func(_ context.Context, userID int64) (*model.PointBalance, error) {
			return &model.PointBalance{UserID: userID, Points: 4500}, nil
		},
	}, &testhelpers.GuardStub{})

	balance, usd, err := uc.Earnings(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if balance.Points != 4500 || usd != 45 {
		t.Fatalf("unexpected earnings: points=%d usd=%f", balance.Points, usd)
	}
}

func TestPointsUseCaseReconcile(t *testing.T) {
	uc := NewPointsUseCase(&testhelpers.PointsRepositoryStub{
		BalanceFn: func(_ context.Context, userID int64) (*model.PointBalance, error) {
			return &model.PointBalance{UserID: userID, Points: 120}, nil
		},
		TransactionSumFn: func(context.Context, int64) (int64, error) {
			return 120, nil
		},
	}, &testhelpers.GuardStub{})

	balance, sum, err := uc.Reconcile(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if balance != sum {
		t.Fatalf("ledger drift: balance=%d sum=%d", balance, sum)
	}
}
