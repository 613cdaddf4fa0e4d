package repository

import (
	"context"

	"github.com/Parallaxx203/audifyx-backend/internal/domain/model"
)

// FollowRepository manages directed follow edges. Follow reports whether a
// new edge was actually created so callers can award points exactly once.
type FollowRepository interface {
	Follow(ctx context.Context, followerID, followingID int64) (bool, error)
	Unfollow(ctx context.Context, followerID, followingID int64) error
	IsFollowing(ctx context.Context, followerID, followingID int64) (bool, error)
	Counts(ctx context.Context, userID int64) (*model.FollowCounts, error)
	Followers(ctx context.Context, userID int64) ([]int64, error)
	Following(ctx context.Context, userID int64) ([]int64, error)
}
