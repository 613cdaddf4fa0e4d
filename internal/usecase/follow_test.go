package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/Parallaxx203/audifyx-backend/internal/domain/errors"
	"github.com/Parallaxx203/audifyx-backend/internal/domain/model"
	testhelpers "github.com/Parallaxx203/audifyx-backend/internal/test"
)

type awarderStub struct {
	calls []string
	err   error
}

func (a *awarderStub) Award(_ context.Context, userID int64, reason model.AwardReason, refKey string) (int64, error) {
	a.calls = append(a.calls, refKey)
	if a.err != nil {
		return 0, a.err
	}
	amount, _ := model.AwardValue(reason)
	return amount, nil
}

func followProfiles(t *testing.T) *testhelpers.ProfileRepositoryStub {
	t.Helper()
	profiles := testhelpers.NewProfileRepositoryStub()
	for _, username := range []string{"maya", "leo"} {
		if _, err := profiles.Create(context.Background(), username, username+"@audifyx.app", "hash", model.RoleListener); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	return profiles
}

func TestFollowUseCaseFollowAwardsOnce(t *testing.T) {
	awarder := &awarderStub{}
	first := true
	follows := &testhelpers.FollowRepositoryStub{
		FollowFn: func(context.Context, int64, int64) (bool, error) {
			created := first
			first = false
			return created, nil
		},
	}
	uc := NewFollowUseCase(follows, followProfiles(t), awarder)

	if err := uc.Follow(context.Background(), 1, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.Follow(context.Background(), 1, 2); err != nil {
		t.Fatalf("repeat follow must be a noop, got %v", err)
	}

	if len(awarder.calls) != 1 || awarder.calls[0] != "follow:1:2" {
		t.Fatalf("unexpected award calls: %v", awarder.calls)
	}
}

func TestFollowUseCaseFollowValidation(t *testing.T) {
	uc := NewFollowUseCase(&testhelpers.FollowRepositoryStub{}, followProfiles(t), &awarderStub{})

	if err := uc.Follow(context.Background(), 1, 1); !errors.Is(err, domainErrors.ErrSelfFollow) {
		t.Fatalf("expected self follow error, got %v", err)
	}
	if err := uc.Follow(context.Background(), 1, 99); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for missing target, got %v", err)
	}
	if err := uc.Unfollow(context.Background(), 1, 1); !errors.Is(err, domainErrors.ErrSelfFollow) {
		t.Fatalf("expected self follow error, got %v", err)
	}
}

func TestFollowUseCaseFollowPropagatesAwardError(t *testing.T) {
	awarder := &awarderStub{err: errors.New("guard down")}
	uc := NewFollowUseCase(&testhelpers.FollowRepositoryStub{}, followProfiles(t), awarder)

	if err := uc.Follow(context.Background(), 1, 2); err == nil {
		t.Fatal("expected award error")
	}
}

func TestFollowUseCaseQueries(t *testing.T) {
	follows := &testhelpers.FollowRepositoryStub{
		IsFollowingFn: func(context.Context, int64, int64) (bool, error) { return true, nil },
		CountsFn: func(context.Context, int64) (*model.FollowCounts, error) {
			return &model.FollowCounts{Followers: 3, Following: 5}, nil
		},
		FollowersFn: func(context.Context, int64) ([]int64, error) { return []int64{2, 3}, nil },
		FollowingFn: func(context.Context, int64) ([]int64, error) { return []int64{4}, nil },
	}
	uc := NewFollowUseCase(follows, followProfiles(t), &awarderStub{})

	if following, err := uc.IsFollowing(context.Background(), 1, 2); err != nil || !following {
		t.Fatalf("unexpected result: %v err=%v", following, err)
	}
	counts, err := uc.Counts(context.Background(), 1)
	if err != nil || counts.Followers != 3 || counts.Following != 5 {
		t.Fatalf("unexpected counts: %+v err=%v", counts, err)
	}
	if followers, err := uc.Followers(context.Background(), 1); err != nil || len(followers) != 2 {
		t.Fatalf("unexpected followers: %v err=%v", followers, err)
	}
	if following, err := uc.Following(context.Background(), 1); err != nil || len(following) != 1 {
		t.Fatalf("unexpected following: %v err=%v", following, err)
	}
}
