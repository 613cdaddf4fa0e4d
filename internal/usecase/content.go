package usecase

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/Parallaxx203/audifyx-backend/internal/domain/errors"
	"github.com/Parallaxx203/audifyx-backend/internal/domain/model"
	"github.com/Parallaxx203/audifyx-backend/internal/domain/repository"
)

const defaultFeedLimit = 20

// ContentUseCase manages tracks, posts and creator statistics.
type ContentUseCase struct {
	content repository.ContentRepository
	awarder Awarder
}

// NewContentUseCase constructs ContentUseCase.
func NewContentUseCase(content repository.ContentRepository, awarder Awarder) *ContentUseCase {
	return &ContentUseCase{content: content, awarder: awarder}
}

// PublishTrack stores a new track and bumps the creator's upload stat.
func (u *ContentUseCase) PublishTrack(ctx context.Context, creatorID int64, title, audioURL, coverURL string) (*model.Track, error) {
	if strings.TrimSpace(title) == "" {
		return nil, domainErrors.ErrEmptyContent
	}
	if audioURL == "" {
		return nil, domainErrors.ErrInvalidUpload
	}

	track := &model.Track{CreatorID: creatorID, Title: title, AudioURL: audioURL, CoverURL: coverURL}
	if err := u.content.CreateTrack(ctx, track); err != nil {
		return nil, err
	}

	if err := u.content.IncrementCreatorStat(ctx, creatorID, "tracks", 1); err != nil {
		return nil, err
	}
	return track, nil
}

// Track fetches a single track.
func (u *ContentUseCase) Track(ctx context.Context, id int64) (*model.Track, error) {
	return u.content.TrackByID(ctx, id)
}

// TracksByCreator lists a creator's tracks, newest first.
func (u *ContentUseCase) TracksByCreator(ctx context.Context, creatorID int64) ([]model.Track, error) {
	return u.content.ListTracksByCreator(ctx, creatorID)
}

// RecordPlay bumps the play counter of the track and the creator's play stat.
func (u *ContentUseCase) RecordPlay(ctx context.Context, trackID int64) error {
	track, err := u.content.TrackByID(ctx, trackID)
	if err != nil {
		return err
	}
	if err := u.content.IncrementPlayCount(ctx, trackID); err != nil {
		return err
	}
	return u.content.IncrementCreatorStat(ctx, track.CreatorID, "plays", 1)
}

// CreatePost stores a feed post and credits the author once per post.
func (u *ContentUseCase) CreatePost(ctx context.Context, authorID int64, content, mediaURL string) (*model.Post, error) {
	if strings.TrimSpace(content) == "" && mediaURL == "" {
		return nil, domainErrors.ErrEmptyContent
	}

	post := &model.Post{AuthorID: authorID, Content: content, MediaURL: mediaURL}
	if err := u.content.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	refKey := fmt.Sprintf("post:%d", post.ID)
	if _, err := u.awarder.Award(ctx, authorID, model.ReasonPostCreated, refKey); err != nil {
		return nil, err
	}
	return post, nil
}

// Feed returns recent posts from the user and everyone they follow.
func (u *ContentUseCase) Feed(ctx context.Context, userID int64, limit int) ([]model.Post, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	return u.content.Feed(ctx, userID, limit)
}

// CreatorStats returns aggregated statistics for a creator.
func (u *ContentUseCase) CreatorStats(ctx context.Context, creatorID int64) ([]model.CreatorStat, error) {
	return u.content.CreatorStats(ctx, creatorID)
}
