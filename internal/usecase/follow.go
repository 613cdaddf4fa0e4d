package usecase

import (
	"context"
	"fmt"

	domainErrors "github.com/Parallaxx203/audifyx-backend/internal/domain/errors"
	"github.com/Parallaxx203/audifyx-backend/internal/domain/model"
	"github.com/Parallaxx203/audifyx-backend/internal/domain/repository"
)

// Awarder credits points for engagement actions.
type Awarder interface {
	Award(ctx context.Context, userID int64, reason model.AwardReason, refKey string) (int64, error)
}

// FollowUseCase manages the follow graph.
type FollowUseCase struct {
	follows  repository.FollowRepository
	profiles repository.ProfileRepository
	awarder  Awarder
}

// NewFollowUseCase constructs FollowUseCase.
func NewFollowUseCase(follows repository.FollowRepository, profiles repository.ProfileRepository, awarder Awarder) *FollowUseCase {
	return &FollowUseCase{follows: follows, profiles: profiles, awarder: awarder}
}

// Follow creates the edge if absent. A fresh edge earns the follower points
// once per pair, repeat follows change nothing.
func (u *FollowUseCase) Follow(ctx context.Context, followerID, followingID int64) error {
	if followerID == followingID {
		return domainErrors.ErrSelfFollow
	}
	if _, err := u.profiles.GetByID(ctx, followingID); err != nil {
		return err
	}

	created, err := u.follows.Follow(ctx, followerID, followingID)
	if err != nil {
		return err
	}
	if !created {
		return nil
	}

	refKey := fmt.Sprintf("follow:%d:%d", followerID, followingID)
	if _, err := u.awarder.Award(ctx, followerID, model.ReasonFollow, refKey); err != nil {
		return err
	}
	return nil
}

// Unfollow removes the edge. Removing an absent edge is a noop.
func (u *FollowUseCase) Unfollow(ctx context.Context, followerID, followingID int64) error {
	if followerID == followingID {
		return domainErrors.ErrSelfFollow
	}
	return u.follows.Unfollow(ctx, followerID, followingID)
}

// IsFollowing reports whether the directed edge exists.
func (u *FollowUseCase) IsFollowing(ctx context.Context, followerID, followingID int64) (bool, error) {
	return u.follows.IsFollowing(ctx, followerID, followingID)
}

// Counts returns follower and following totals.
func (u *FollowUseCase) Counts(ctx context.Context, userID int64) (*model.FollowCounts, error) {
	return u.follows.Counts(ctx, userID)
}

// Followers lists users following userID.
func (u *FollowUseCase) Followers(ctx context.Context, userID int64) ([]int64, error) {
	return u.follows.Followers(ctx, userID)
}

// Following lists users userID follows.
func (u *FollowUseCase) Following(ctx context.Context, userID int64) ([]int64, error) {
	return u.follows.Following(ctx, userID)
}
