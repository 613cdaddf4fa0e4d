package app

import (
	"context"
	"errors"
	"io"

	"github.com/Parallaxx203/audifyx-backend/internal/adapter/email"
	"github.com/Parallaxx203/audifyx-backend/internal/adapter/media"
	domainErrors "github.com/Parallaxx203/audifyx-backend/internal/domain/errors"
	"github.com/Parallaxx203/audifyx-backend/internal/domain/model"
	"github.com/Parallaxx203/audifyx-backend/internal/domain/repository"
	"github.com/Parallaxx203/audifyx-backend/internal/usecase"
)

// AudifyxFacade aggregates use cases behind the narrow interfaces the HTTP
// handlers and background workers consume.
type AudifyxFacade struct {
	auth          *usecase.AuthUseCase
	points        *usecase.PointsUseCase
	payouts       *usecase.PayoutUseCase
	follows       *usecase.FollowUseCase
	messaging     *usecase.MessagingUseCase
	content       *usecase.ContentUseCase
	media         media.Store
	notifications repository.NotificationRepository
	mailer        email.Client
}

// NewAudifyxFacade constructs the facade.
func NewAudifyxFacade(
	auth *usecase.AuthUseCase,
	points *usecase.PointsUseCase,
	payouts *usecase.PayoutUseCase,
	follows *usecase.FollowUseCase,
	messaging *usecase.MessagingUseCase,
	content *usecase.ContentUseCase,
	mediaStore media.Store,
	notifications repository.NotificationRepository,
	mailer email.Client,
) *AudifyxFacade {
	return &AudifyxFacade{
		auth:          auth,
		points:        points,
		payouts:       payouts,
		follows:       follows,
		messaging:     messaging,
		content:       content,
		media:         mediaStore,
		notifications: notifications,
		mailer:        mailer,
	}
}

// --- auth ---

func (f *AudifyxFacade) Register(ctx context.Context, username, email, password string, role model.Role) (string, error) {
	_, token, err := f.auth.Register(ctx, username, email, password, role)
	return token, err
}

func (f *AudifyxFacade) Authenticate(ctx context.Context, username, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, username, password)
	return token, err
}

func (f *AudifyxFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *AudifyxFacade) Profile(ctx context.Context, id int64) (*model.Profile, error) {
	return f.auth.GetByID(ctx, id)
}

func (f *AudifyxFacade) UpdateAvatar(ctx context.Context, id int64, avatarURL string) error {
	return f.auth.UpdateAvatar(ctx, id, avatarURL)
}

func (f *AudifyxFacade) UpdateBio(ctx context.Context, id int64, bio string) error {
	return f.auth.UpdateBio(ctx, id, bio)
}

// --- points ---

func (f *AudifyxFacade) Earnings(ctx context.Context, userID int64) (*model.PointBalance, float64, error) {
	return f.points.Earnings(ctx, userID)
}

func (f *AudifyxFacade) PointHistory(ctx context.Context, userID int64) ([]model.PointTransaction, error) {
	return f.points.History(ctx, userID)
}

func (f *AudifyxFacade) Award(ctx context.Context, userID int64, reason model.AwardReason, ref string) (int64, error) {
	return f.points.AwardEvent(ctx, userID, reason, ref)
}

// --- payouts ---

func (f *AudifyxFacade) RequestPayout(ctx context.Context, userID int64, usdAmount float64, walletAddress, verificationImageURL string) (*model.PayoutRequest, error) {
	return f.payouts.Request(ctx, userID, usdAmount, walletAddress, verificationImageURL)
}

func (f *AudifyxFacade) Payouts(ctx context.Context, userID int64) ([]model.PayoutRequest, error) {
	return f.payouts.History(ctx, userID)
}

func (f *AudifyxFacade) PayoutsByStatus(ctx context.Context, adminID int64, status model.PayoutStatus) ([]model.PayoutRequest, error) {
	return f.payouts.ListByStatus(ctx, adminID, status)
}

func (f *AudifyxFacade) ResolvePayout(ctx context.Context, adminID, requestID int64, approve bool) (*model.PayoutRequest, error) {
	return f.payouts.Resolve(ctx, adminID, requestID, approve)
}

// --- follow graph ---

func (f *AudifyxFacade) Follow(ctx context.Context, followerID, followingID int64) error {
	return f.follows.Follow(ctx, followerID, followingID)
}

func (f *AudifyxFacade) Unfollow(ctx context.Context, followerID, followingID int64) error {
	return f.follows.Unfollow(ctx, followerID, followingID)
}

func (f *AudifyxFacade) IsFollowing(ctx context.Context, followerID, followingID int64) (bool, error) {
	return f.follows.IsFollowing(ctx, followerID, followingID)
}

func (f *AudifyxFacade) FollowCounts(ctx context.Context, userID int64) (*model.FollowCounts, error) {
	return f.follows.Counts(ctx, userID)
}

func (f *AudifyxFacade) Followers(ctx context.Context, userID int64) ([]int64, error) {
	return f.follows.Followers(ctx, userID)
}

func (f *AudifyxFacade) Following(ctx context.Context, userID int64) ([]int64, error) {
	return f.follows.Following(ctx, userID)
}

// --- messaging ---

func (f *AudifyxFacade) SendDirect(ctx context.Context, senderID, recipientID int64, content string) (*model.Message, error) {
	return f.messaging.SendDirect(ctx, senderID, recipientID, content)
}

func (f *AudifyxFacade) DirectHistory(ctx context.Context, userID, partnerID int64, limit int) ([]model.Message, error) {
	return f.messaging.DirectHistory(ctx, userID, partnerID, limit)
}

func (f *AudifyxFacade) Partners(ctx context.Context, userID int64) ([]int64, error) {
	return f.messaging.Partners(ctx, userID)
}

func (f *AudifyxFacade) DeleteDirect(ctx context.Context, messageID string, callerID int64) error {
	return f.messaging.DeleteDirect(ctx, messageID, callerID)
}

func (f *AudifyxFacade) CreateGroup(ctx context.Context, name string, creatorID int64, memberIDs []int64) (*model.GroupChat, error) {
	return f.messaging.CreateGroup(ctx, name, creatorID, memberIDs)
}

func (f *AudifyxFacade) Groups(ctx context.Context, userID int64) ([]model.GroupChat, error) {
	return f.messaging.Groups(ctx, userID)
}

func (f *AudifyxFacade) SendGroup(ctx context.Context, groupID, senderID int64, content string) (*model.GroupMessage, error) {
	return f.messaging.SendGroup(ctx, groupID, senderID, content)
}

func (f *AudifyxFacade) GroupHistory(ctx context.Context, groupID, callerID int64, limit int) ([]model.GroupMessage, error) {
	return f.messaging.GroupHistory(ctx, groupID, callerID, limit)
}

func (f *AudifyxFacade) DeleteGroupMessage(ctx context.Context, messageID string, callerID int64) error {
	return f.messaging.DeleteGroupMessage(ctx, messageID, callerID)
}

func (f *AudifyxFacade) CanSubscribe(ctx context.Context, userID int64, topic string) bool {
	return f.messaging.CanSubscribe(ctx, userID, topic)
}

// --- content ---

func (f *AudifyxFacade) PublishTrack(ctx context.Context, creatorID int64, title, audioURL, coverURL string) (*model.Track, error) {
	return f.content.PublishTrack(ctx, creatorID, title, audioURL, coverURL)
}

func (f *AudifyxFacade) Track(ctx context.Context, id int64) (*model.Track, error) {
	return f.content.Track(ctx, id)
}

func (f *AudifyxFacade) TracksByCreator(ctx context.Context, creatorID int64) ([]model.Track, error) {
	return f.content.TracksByCreator(ctx, creatorID)
}

func (f *AudifyxFacade) RecordPlay(ctx context.Context, trackID int64) error {
	return f.content.RecordPlay(ctx, trackID)
}

func (f *AudifyxFacade) CreatePost(ctx context.Context, authorID int64, content, mediaURL string) (*model.Post, error) {
	return f.content.CreatePost(ctx, authorID, content, mediaURL)
}

func (f *AudifyxFacade) Feed(ctx context.Context, userID int64, limit int) ([]model.Post, error) {
	return f.content.Feed(ctx, userID, limit)
}

func (f *AudifyxFacade) CreatorStats(ctx context.Context, creatorID int64) ([]model.CreatorStat, error) {
	return f.content.CreatorStats(ctx, creatorID)
}

// --- media ---

func (f *AudifyxFacade) UploadMedia(ctx context.Context, bucket string, userID int64, filename string, file io.Reader) (string, error) {
	url, err := f.media.Upload(ctx, bucket, userID, filename, file)
	if err != nil {
		if errors.Is(err, media.ErrUnknownBucket) || errors.Is(err, media.ErrEmptyFilename) || errors.Is(err, media.ErrUnsupportedType) {
			return "", domainErrors.ErrInvalidUpload
		}
		return "", err
	}
	return url, nil
}

// --- notification outbox ---

func (f *AudifyxFacade) NotificationsForDispatch(ctx context.Context, limit int) ([]model.Notification, error) {
	return f.notifications.SelectBatchForDispatch(ctx, limit)
}

func (f *AudifyxFacade) DeliverNotification(ctx context.Context, n model.Notification) error {
	return f.mailer.Send(ctx, n.RecipientEmail, n.Subject, n.Body)
}

func (f *AudifyxFacade) MarkNotificationSent(ctx context.Context, id int64) error {
	return f.notifications.MarkSent(ctx, id)
}

func (f *AudifyxFacade) MarkNotificationFailed(ctx context.Context, id int64, terminal bool) error {
	return f.notifications.MarkFailed(ctx, id, terminal)
}
