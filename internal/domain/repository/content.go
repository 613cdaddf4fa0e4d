package repository

import (
	"context"

	"github.com/Parallaxx203/audifyx-backend/internal/domain/model"
)

// ContentRepository manages tracks, posts and creator stats.
type ContentRepository interface {
	CreateTrack(ctx context.Context, track *model.Track) error
	TrackByID(ctx context.Context, id int64) (*model.Track, error)
	ListTracksByCreator(ctx context.Context, creatorID int64) ([]model.Track, error)
	IncrementPlayCount(ctx context.Context, trackID int64) error

	CreatePost(ctx context.Context, post *model.Post) error
	Feed(ctx context.Context, userID int64, limit int) ([]model.Post, error)

	IncrementCreatorStat(ctx context.Context, creatorID int64, statType string, delta int64) error
	CreatorStats(ctx context.Context, creatorID int64) ([]model.CreatorStat, error)
}
