package handlers

import (
	"context"
	"io"

	"github.com/Parallaxx203/audifyx-backend/internal/domain/model"
)

// AuthFacade describes account capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, username, email, password string, role model.Role) (string, error)
	Authenticate(ctx context.Context, username, password string) (string, error)
	ParseToken(token string) (int64, error)
	Profile(ctx context.Context, id int64) (*model.Profile, error)
	UpdateAvatar(ctx context.Context, id int64, avatarURL string) error
	UpdateBio(ctx context.Context, id int64, bio string) error
}

// PointsFacade provides ledger operations exposed via HTTP.
type PointsFacade interface {
	Earnings(ctx context.Context, userID int64) (*model.PointBalance, float64, error)
	PointHistory(ctx context.Context, userID int64) ([]model.PointTransaction, error)
	Award(ctx context.Context, userID int64, reason model.AwardReason, ref string) (int64, error)
}

// PayoutFacade provides withdrawal operations.
type PayoutFacade interface {
	RequestPayout(ctx context.Context, userID int64, usdAmount float64, walletAddress, verificationImageURL string) (*model.PayoutRequest, error)
	Payouts(ctx context.Context, userID int64) ([]model.PayoutRequest, error)
	PayoutsByStatus(ctx context.Context, adminID int64, status model.PayoutStatus) ([]model.PayoutRequest, error)
	ResolvePayout(ctx context.Context, adminID, requestID int64, approve bool) (*model.PayoutRequest, error)
}

// FollowFacade provides follow graph operations.
type FollowFacade interface {
	Follow(ctx context.Context, followerID, followingID int64) error
	Unfollow(ctx context.Context, followerID, followingID int64) error
	IsFollowing(ctx context.Context, followerID, followingID int64) (bool, error)
	FollowCounts(ctx context.Context, userID int64) (*model.FollowCounts, error)
	Followers(ctx context.Context, userID int64) ([]int64, error)
	Following(ctx context.Context, userID int64) ([]int64, error)
}

// MessageFacade provides direct and group messaging operations.
type MessageFacade interface {
	SendDirect(ctx context.Context, senderID, recipientID int64, content string) (*model.Message, error)
	DirectHistory(ctx context.Context, userID, partnerID int64, limit int) ([]model.Message, error)
	Partners(ctx context.Context, userID int64) ([]int64, error)
	DeleteDirect(ctx context.Context, messageID string, callerID int64) error
	CreateGroup(ctx context.Context, name string, creatorID int64, memberIDs []int64) (*model.GroupChat, error)
	Groups(ctx context.Context, userID int64) ([]model.GroupChat, error)
	SendGroup(ctx context.Context, groupID, senderID int64, content string) (*model.GroupMessage, error)
	GroupHistory(ctx context.Context, groupID, callerID int64, limit int) ([]model.GroupMessage, error)
	DeleteGroupMessage(ctx context.Context, messageID string, callerID int64) error
	CanSubscribe(ctx context.Context, userID int64, topic string) bool
}

// ContentFacade provides track and feed operations.
type ContentFacade interface {
	PublishTrack(ctx context.Context, creatorID int64, title, audioURL, coverURL string) (*model.Track, error)
	Track(ctx context.Context, id int64) (*model.Track, error)
	TracksByCreator(ctx context.Context, creatorID int64) ([]model.Track, error)
	RecordPlay(ctx context.Context, trackID int64) error
	CreatePost(ctx context.Context, authorID int64, content, mediaURL string) (*model.Post, error)
	Feed(ctx context.Context, userID int64, limit int) ([]model.Post, error)
	CreatorStats(ctx context.Context, creatorID int64) ([]model.CreatorStat, error)
}

// MediaFacade stores uploaded files.
type MediaFacade interface {
	UploadMedia(ctx context.Context, bucket string, userID int64, filename string, file io.Reader) (string, error)
}

// AudifyxFacade aggregates the full set of operations used across handlers.
type AudifyxFacade interface {
	AuthFacade
	PointsFacade
	PayoutFacade
	FollowFacade
	MessageFacade
	ContentFacade
	MediaFacade
}
