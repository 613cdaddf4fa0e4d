package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/Parallaxx203/audifyx-backend/internal/domain/errors"
	"github.com/Parallaxx203/audifyx-backend/internal/domain/model"
	"github.com/Parallaxx203/audifyx-backend/internal/domain/repository"
	testhelpers "github.com/Parallaxx203/audifyx-backend/internal/test"
)

func payoutProfiles(t *testing.T) *testhelpers.ProfileRepositoryStub {
	t.Helper()
	profiles := testhelpers.NewProfileRepositoryStub()
	if _, err := profiles.Create(context.Background(), "maya", "maya@audifyx.app", "hash", model.RoleCreator); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := profiles.Create(context.Background(), "root", "root@audifyx.app", "hash", model.RoleAdmin); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return profiles
}

func TestPayoutUseCaseRequest(t *testing.T) {
	profiles := payoutProfiles(t)
	var captured repository.CreatePayoutParams
	payouts := &testhelpers.PayoutRepositoryStub{
		CreateFn: func(_ context.Context, params repository.CreatePayoutParams) (*model.PayoutRequest, error) {
			captured = params
			return &model.PayoutRequest{ID: 7, UserID: params.UserID, PointsAmount: params.PointsAmount, USDAmount: params.USDAmount, Status: model.PayoutStatusPending}, nil
		},
	}
	uc := NewPayoutUseCase(payouts, profiles, &testhelpers.NotificationRepositoryStub{})

	request, err := uc.Request(context.Background(), 1, 45, "0xabc1234567", "https://cdn/verify.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if request.Status != model.PayoutStatusPending {
		t.Fatalf("unexpected status: %s", request.Status)
	}
	if captured.PointsAmount != 4500 {
		t.Fatalf("expected 4500 points for $45, got %d", captured.PointsAmount)
	}
	if captured.RecipientEmail != "maya@audifyx.app" {
		t.Fatalf("unexpected recipient: %s", captured.RecipientEmail)
	}
}

func TestPayoutUseCaseRequestFloorsFractionalCents(t *testing.T) {
	profiles := payoutProfiles(t)
	var captured repository.CreatePayoutParams
	payouts := &testhelpers.PayoutRepositoryStub{
		CreateFn: func(_ context.Context, params repository.CreatePayoutParams) (*model.PayoutRequest, error) {
			captured = params
			return &model.PayoutRequest{ID: 7, Status: model.PayoutStatusPending}, nil
		},
	}
	uc := NewPayoutUseCase(payouts, profiles, &testhelpers.NotificationRepositoryStub{})

	// A balance of exactly floor(usd*100) points must always be enough.
	cases := []struct {
		usd    float64
		points int64
	}{
		{40.995, 4099},
		{45.999, 4599},
		{40, 4000},
	}
	for _, tc := range cases {
		if _, err := uc.Request(context.Background(), 1, tc.usd, "0xabc1234567", "img"); err != nil {
			t.Fatalf("unexpected error for $%v: %v", tc.usd, err)
		}
		if captured.PointsAmount != tc.points {
			t.Fatalf("expected %d points for $%v, got %d", tc.points, tc.usd, captured.PointsAmount)
		}
	}
}

func TestPayoutUseCaseRequestValidation(t *testing.T) {
	profiles := payoutProfiles(t)
	uc := NewPayoutUseCase(&testhelpers.PayoutRepositoryStub{
		CreateFn: func(context.Context, repository.CreatePayoutParams) (*model.PayoutRequest, error) {
			t.Fatal("create should not be called on validation errors")
			return nil, nil
		},
	}, profiles, &testhelpers.NotificationRepositoryStub{})

	if _, err := uc.Request(context.Background(), 1, 0, "0xabc1234567", "img"); !errors.Is(err, domainErrors.ErrInvalidAmount) {
		t.Fatalf("expected invalid amount, got %v", err)
	}
	if _, err := uc.Request(context.Background(), 1, 39.99, "0xabc1234567", "img"); !errors.Is(err, domainErrors.ErrBelowMinimumPayout) {
		t.Fatalf("expected below minimum, got %v", err)
	}
	if _, err := uc.Request(context.Background(), 1, 45, "   ", "img"); !errors.Is(err, domainErrors.ErrInvalidWallet) {
		t.Fatalf("expected wallet rejection, got %v", err)
	}
	if _, err := uc.Request(context.Background(), 1, 45, "0xabc1234567", ""); !errors.Is(err, domainErrors.ErrInvalidUpload) {
		t.Fatalf("expected invalid upload, got %v", err)
	}
}

func TestPayoutUseCaseRequestPropagatesInsufficientPoints(t *testing.T) {
	profiles := payoutProfiles(t)
	uc := NewPayoutUseCase(&testhelpers.PayoutRepositoryStub{
		CreateFn: func(context.Context, repository.CreatePayoutParams) (*model.PayoutRequest, error) {
			return nil, domainErrors.ErrInsufficientPoints
		},
	}, profiles, &testhelpers.NotificationRepositoryStub{})

	if _, err := uc.Request(context.Background(), 1, 40, "0xabc1234567", "img"); !errors.Is(err, domainErrors.ErrInsufficientPoints) {
		t.Fatalf("expected insufficient points, got %v", err)
	}
}

func TestPayoutUseCaseResolve(t *testing.T) {
	profiles := payoutProfiles(t)

	var enqueued []model.Notification
	notifications := &testhelpers.NotificationRepositoryStub{
		EnqueueFn: func(_ context.Context, n *model.Notification) error {
			enqueued = append(enqueued, *n)
			return nil
		},
	}
	payouts := &testhelpers.PayoutRepositoryStub{
		ResolveFn: func(_ context.Context, id int64, status model.PayoutStatus) (*model.PayoutRequest, error) {
			return &model.PayoutRequest{ID: id, UserID: 1, PointsAmount: 4500, USDAmount: 45, Status: status}, nil
		},
	}
	uc := NewPayoutUseCase(payouts, profiles, notifications)

	resolved, err := uc.Resolve(context.Background(), 2, 7, true)
	if err != nil || resolved.Status != model.PayoutStatusApproved {
		t.Fatalf("unexpected result: %+v err=%v", resolved, err)
	}

	resolved, err = uc.Resolve(context.Background(), 2, 8, false)
	if err != nil || resolved.Status != model.PayoutStatusDenied {
		t.Fatalf("unexpected result: %+v err=%v", resolved, err)
	}

	if len(enqueued) != 2 {
		t.Fatalf("expected two notifications, got %d", len(enqueued))
	}
	if enqueued[0].RecipientEmail != "maya@audifyx.app" {
		t.Fatalf("unexpected recipient: %s", enqueued[0].RecipientEmail)
	}
}

func TestPayoutUseCaseResolveRequiresAdmin(t *testing.T) {
	profiles := payoutProfiles(t)
	uc := NewPayoutUseCase(&testhelpers.PayoutRepositoryStub{
		ResolveFn: func(context.Context, int64, model.PayoutStatus) (*model.PayoutRequest, error) {
			t.Fatal("resolve should not be reached without admin role")
			return nil, nil
		},
	}, profiles, &testhelpers.NotificationRepositoryStub{})

	if _, err := uc.Resolve(context.Background(), 1, 7, true); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if _, err := uc.ListByStatus(context.Background(), 1, model.PayoutStatusPending); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestPayoutUseCaseResolvePropagatesTerminalState(t *testing.T) {
	profiles := payoutProfiles(t)
	uc := NewPayoutUseCase(&testhelpers.PayoutRepositoryStub{
		ResolveFn: func(context.Context, int64, model.PayoutStatus) (*model.PayoutRequest, error) {
			return nil, domainErrors.ErrAlreadyResolved
		},
	}, profiles, &testhelpers.NotificationRepositoryStub{})

	if _, err := uc.Resolve(context.Background(), 2, 7, false); !errors.Is(err, domainErrors.ErrAlreadyResolved) {
		t.Fatalf("expected already resolved, got %v", err)
	}
}

func TestPayoutUseCaseListByStatus(t *testing.T) {
	profiles := payoutProfiles(t)
	uc := NewPayoutUseCase(&testhelpers.PayoutRepositoryStub{
		ListByStatusFn: func(_ context.Context, status model.PayoutStatus) ([]model.PayoutRequest, error) {
			return []model.PayoutRequest{{ID: 7, Status: status}}, nil
		},
	}, profiles, &testhelpers.NotificationRepositoryStub{})

	requests, err := uc.ListByStatus(context.Background(), 2, model.PayoutStatusPending)
	if err != nil || len(requests) != 1 {
		t.Fatalf("unexpected result: %v err=%v", requests, err)
	}
}
