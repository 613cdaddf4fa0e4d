package test

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/Parallaxx203/audifyx-backend/internal/domain/model"
)

// PointsFacadeStub provides controllable behaviour for ledger endpoints.
type PointsFacadeStub struct {
	EarningsFn func(context.Context, int64) (*model.PointBalance, float64, error)
	HistoryFn  func(context.Context, int64) ([]model.PointTransaction, error)
	AwardFn    func(context.Context, int64, model.AwardReason, string) (int64, error)
}

// Earnings returns stored balance or default data.
func (s PointsFacadeStub) Earnings(ctx context.Context, userID int64) (*model.PointBalance, float64, error) {
	if s.EarningsFn != nil {
		return s.EarningsFn(ctx, userID)
	}
	return &model.PointBalance{UserID: userID, Points: 500, LastUpdated: time.Unix(0, 0)}, 5, nil
}

// PointHistory returns preconfigured ledger entries.
func (s PointsFacadeStub) PointHistory(ctx context.Context, userID int64) ([]model.PointTransaction, error) {
	if s.HistoryFn != nil {
		return s.HistoryFn(ctx, userID)
	}
	return []model.PointTransaction{{ID: 1, UserID: userID, Reason: model.ReasonPostCreated, Amount: 10, CreatedAt: time.Unix(0, 0)}}, nil
}

// Award executes configured award handler.
func (s PointsFacadeStub) Award(ctx context.Context, userID int64, reason model.AwardReason, refKey string) (int64, error) {
	if s.AwardFn != nil {
		return s.AwardFn(ctx, userID, reason, refKey)
	}
	v, _ := model.AwardValue(reason)
	return v, nil
}

// PayoutFacadeStub simulates withdrawal operations.
type PayoutFacadeStub struct {
	RequestFn func(context.Context, int64, float64, string, string) (*model.PayoutRequest, error)
	ListFn    func(context.Context, int64) ([]model.PayoutRequest, error)
	ByStatus  func(context.Context, int64, model.PayoutStatus) ([]model.PayoutRequest, error)
	ResolveFn func(context.Context, int64, int64, bool) (*model.PayoutRequest, error)
}

// RequestPayout returns stored payout or pending default.
func (s PayoutFacadeStub) RequestPayout(ctx context.Context, userID int64, usdAmount float64, walletAddress, verificationImageURL string) (*model.PayoutRequest, error) {
	if s.RequestFn != nil {
		return s.RequestFn(ctx, userID, usdAmount, walletAddress, verificationImageURL)
	}
	return &model.PayoutRequest{ID: 1, UserID: userID, USDAmount: usdAmount, PointsAmount: int64(usdAmount * model.PointsPerDollar), WalletAddress: walletAddress, Status: model.PayoutStatusPending, CreatedAt: time.Unix(0, 0)}, nil
}

// Payouts returns preconfigured history.
func (s PayoutFacadeStub) Payouts(ctx context.Context, userID int64) ([]model.PayoutRequest, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	return []model.PayoutRequest{{ID: 1, UserID: userID, Status: model.PayoutStatusPending, CreatedAt: time.Unix(0, 0)}}, nil
}

// PayoutsByStatus returns the admin review queue.
func (s PayoutFacadeStub) PayoutsByStatus(ctx context.Context, adminID int64, status model.PayoutStatus) ([]model.PayoutRequest, error) {
	if s.ByStatus != nil {
		return s.ByStatus(ctx, adminID, status)
	}
	return []model.PayoutRequest{{ID: 1, Status: status, CreatedAt: time.Unix(0, 0)}}, nil
}

// ResolvePayout executes configured resolution handler.
func (s PayoutFacadeStub) ResolvePayout(ctx context.Context, adminID, requestID int64, approve bool) (*model.PayoutRequest, error) {
	if s.ResolveFn != nil {
		return s.ResolveFn(ctx, adminID, requestID, approve)
	}
	status := model.PayoutStatusDenied
	if approve {
		status = model.PayoutStatusApproved
	}
	return &model.PayoutRequest{ID: requestID, Status: status, CreatedAt: time.Unix(0, 0)}, nil
}

// FollowFacadeStub simulates follow graph operations.
type FollowFacadeStub struct {
	FollowFn      func(context.Context, int64, int64) error
	UnfollowFn    func(context.Context, int64, int64) error
	IsFollowingFn func(context.Context, int64, int64) (bool, error)
	CountsFn      func(context.Context, int64) (*model.FollowCounts, error)
	FollowersFn   func(context.Context, int64) ([]int64, error)
	FollowingFn   func(context.Context, int64) ([]int64, error)
}

// Follow executes configured handler.
func (s FollowFacadeStub) Follow(ctx context.Context, followerID, followingID int64) error {
	if s.FollowFn != nil {
		return s.FollowFn(ctx, followerID, followingID)
	}
	return nil
}

// Unfollow executes configured handler.
func (s FollowFacadeStub) Unfollow(ctx context.Context, followerID, followingID int64) error {
	if s.UnfollowFn != nil {
		return s.UnfollowFn(ctx, followerID, followingID)
	}
	return nil
}

// IsFollowing reports configured edge state.
func (s FollowFacadeStub) IsFollowing(ctx context.Context, followerID, followingID int64) (bool, error) {
	if s.IsFollowingFn != nil {
		return s.IsFollowingFn(ctx, followerID, followingID)
	}
	return true, nil
}

// FollowCounts returns configured totals.
func (s FollowFacadeStub) FollowCounts(ctx context.Context, userID int64) (*model.FollowCounts, error) {
	if s.CountsFn != nil {
		return s.CountsFn(ctx, userID)
	}
	return &model.FollowCounts{Followers: 2, Following: 1}, nil
}

// Followers returns configured follower identifiers.
func (s FollowFacadeStub) Followers(ctx context.Context, userID int64) ([]int64, error) {
	if s.FollowersFn != nil {
		return s.FollowersFn(ctx, userID)
	}
	return []int64{2, 3}, nil
}

// Following returns configured following identifiers.
func (s FollowFacadeStub) Following(ctx context.Context, userID int64) ([]int64, error) {
	if s.FollowingFn != nil {
		return s.FollowingFn(ctx, userID)
	}
	return []int64{2}, nil
}

// MessageFacadeStub simulates direct and group messaging.
type MessageFacadeStub struct {
	SendDirectFn         func(context.Context, int64, int64, string) (*model.Message, error)
	DirectHistoryFn      func(context.Context, int64, int64, int) ([]model.Message, error)
	PartnersFn           func(context.Context, int64) ([]int64, error)
	DeleteDirectFn       func(context.Context, string, int64) error
	CreateGroupFn        func(context.Context, string, int64, []int64) (*model.GroupChat, error)
	GroupsFn             func(context.Context, int64) ([]model.GroupChat, error)
	SendGroupFn          func(context.Context, int64, int64, string) (*model.GroupMessage, error)
	GroupHistoryFn       func(context.Context, int64, int64, int) ([]model.GroupMessage, error)
	DeleteGroupMessageFn func(context.Context, string, int64) error
	CanSubscribeFn       func(context.Context, int64, string) bool
}

// SendDirect returns configured message or a deterministic default.
func (s MessageFacadeStub) SendDirect(ctx context.Context, senderID, recipientID int64, content string) (*model.Message, error) {
	if s.SendDirectFn != nil {
		return s.SendDirectFn(ctx, senderID, recipientID, content)
	}
	return &model.Message{ID: "m-1", SenderID: senderID, RecipientID: recipientID, Content: content, CreatedAt: time.Unix(0, 0)}, nil
}

// DirectHistory returns preconfigured conversation history.
func (s MessageFacadeStub) DirectHistory(ctx context.Context, userID, partnerID int64, limit int) ([]model.Message, error) {
	if s.DirectHistoryFn != nil {
		return s.DirectHistoryFn(ctx, userID, partnerID, limit)
	}
	return []model.Message{{ID: "m-1", SenderID: userID, RecipientID: partnerID, Content: "hi", CreatedAt: time.Unix(0, 0)}}, nil
}

// Partners returns configured conversation partners.
func (s MessageFacadeStub) Partners(ctx context.Context, userID int64) ([]int64, error) {
	if s.PartnersFn != nil {
		return s.PartnersFn(ctx, userID)
	}
	return []int64{2}, nil
}

// DeleteDirect executes configured handler.
func (s MessageFacadeStub) DeleteDirect(ctx context.Context, messageID string, callerID int64) error {
	if s.DeleteDirectFn != nil {
		return s.DeleteDirectFn(ctx, messageID, callerID)
	}
	return nil
}

// CreateGroup returns configured group or a default one.
func (s MessageFacadeStub) CreateGroup(ctx context.Context, name string, creatorID int64, memberIDs []int64) (*model.GroupChat, error) {
	if s.CreateGroupFn != nil {
		return s.CreateGroupFn(ctx, name, creatorID, memberIDs)
	}
	return &model.GroupChat{ID: 1, Name: name, CreatorID: creatorID, MemberIDs: memberIDs, CreatedAt: time.Unix(0, 0)}, nil
}

// Groups returns configured memberships.
func (s MessageFacadeStub) Groups(ctx context.Context, userID int64) ([]model.GroupChat, error) {
	if s.GroupsFn != nil {
		return s.GroupsFn(ctx, userID)
	}
	return []model.GroupChat{{ID: 1, Name: "crew", CreatorID: userID, CreatedAt: time.Unix(0, 0)}}, nil
}

// SendGroup returns configured group message or a default one.
func (s MessageFacadeStub) SendGroup(ctx context.Context, groupID, senderID int64, content string) (*model.GroupMessage, error) {
	if s.SendGroupFn != nil {
		return s.SendGroupFn(ctx, groupID, senderID, content)
	}
	return &model.GroupMessage{ID: "g-1", GroupID: groupID, SenderID: senderID, Content: content, CreatedAt: time.Unix(0, 0)}, nil
}

// GroupHistory returns preconfigured group history.
func (s MessageFacadeStub) GroupHistory(ctx context.Context, groupID, callerID int64, limit int) ([]model.GroupMessage, error) {
	if s.GroupHistoryFn != nil {
		return s.GroupHistoryFn(ctx, groupID, callerID, limit)
	}
	return []model.GroupMessage{{ID: "g-1", GroupID: groupID, SenderID: callerID, Content: "hi", CreatedAt: time.Unix(0, 0)}}, nil
}

// DeleteGroupMessage executes configured handler.
func (s MessageFacadeStub) DeleteGroupMessage(ctx context.Context, messageID string, callerID int64) error {
	if s.DeleteGroupMessageFn != nil {
		return s.DeleteGroupMessageFn(ctx, messageID, callerID)
	}
	return nil
}

// CanSubscribe reports configured topic access, allowing all by default.
func (s MessageFacadeStub) CanSubscribe(ctx context.Context, userID int64, topic string) bool {
	if s.CanSubscribeFn != nil {
		return s.CanSubscribeFn(ctx, userID, topic)
	}
	return true
}

// ContentFacadeStub simulates track and feed operations.
type ContentFacadeStub struct {
	PublishTrackFn func(context.Context, int64, string, string, string) (*model.Track, error)
	TrackFn        func(context.Context, int64) (*model.Track, error)
	ByCreatorFn    func(context.Context, int64) ([]model.Track, error)
	RecordPlayFn   func(context.Context, int64) error
	CreatePostFn   func(context.Context, int64, string, string) (*model.Post, error)
	FeedFn         func(context.Context, int64, int) ([]model.Post, error)
	StatsFn        func(context.Context, int64) ([]model.CreatorStat, error)
}

// PublishTrack returns configured track or a default one.
func (s ContentFacadeStub) PublishTrack(ctx context.Context, creatorID int64, title, audioURL, coverURL string) (*model.Track, error) {
	if s.PublishTrackFn != nil {
		return s.PublishTrackFn(ctx, creatorID, title, audioURL, coverURL)
	}
	return &model.Track{ID: 1, CreatorID: creatorID, Title: title, AudioURL: audioURL, CoverURL: coverURL, CreatedAt: time.Unix(0, 0)}, nil
}

// Track returns configured track.
func (s ContentFacadeStub) Track(ctx context.Context, id int64) (*model.Track, error) {
	if s.TrackFn != nil {
		return s.TrackFn(ctx, id)
	}
	return &model.Track{ID: id, CreatorID: 1, Title: "track", AudioURL: "https://cdn/a.mp3", CreatedAt: time.Unix(0, 0)}, nil
}

// TracksByCreator returns configured catalogue.
func (s ContentFacadeStub) TracksByCreator(ctx context.Context, creatorID int64) ([]model.Track, error) {
	if s.ByCreatorFn != nil {
		return s.ByCreatorFn(ctx, creatorID)
	}
	return []model.Track{{ID: 1, CreatorID: creatorID, Title: "track", CreatedAt: time.Unix(0, 0)}}, nil
}

// RecordPlay executes configured handler.
func (s ContentFacadeStub) RecordPlay(ctx context.Context, trackID int64) error {
	if s.RecordPlayFn != nil {
		return s.RecordPlayFn(ctx, trackID)
	}
	return nil
}

// CreatePost returns configured post or a default one.
func (s ContentFacadeStub) CreatePost(ctx context.Context, authorID int64, content, mediaURL string) (*model.Post, error) {
	if s.CreatePostFn != nil {
		return s.CreatePostFn(ctx, authorID, content, mediaURL)
	}
	return &model.Post{ID: 1, AuthorID: authorID, Content: content, MediaURL: mediaURL, CreatedAt: time.Unix(0, 0)}, nil
}

// Feed returns preconfigured feed entries.
func (s ContentFacadeStub) Feed(ctx context.Context, userID int64, limit int) ([]model.Post, error) {
	if s.FeedFn != nil {
		return s.FeedFn(ctx, userID, limit)
	}
	return []model.Post{{ID: 1, AuthorID: 2, Content: "hello", CreatedAt: time.Unix(0, 0)}}, nil
}

// CreatorStats returns configured counters.
func (s ContentFacadeStub) CreatorStats(ctx context.Context, creatorID int64) ([]model.CreatorStat, error) {
	if s.StatsFn != nil {
		return s.StatsFn(ctx, creatorID)
	}
	return []model.CreatorStat{{CreatorID: creatorID, StatType: "plays", Value: 3}}, nil
}

// MediaFacadeStub simulates media storage.
type MediaFacadeStub struct {
	UploadFn func(context.Context, string, int64, string, io.Reader) (string, error)
}

// UploadMedia returns configured URL or a deterministic default.
func (s MediaFacadeStub) UploadMedia(ctx context.Context, bucket string, userID int64, filename string, file io.Reader) (string, error) {
	if s.UploadFn != nil {
		return s.UploadFn(ctx, bucket, userID, filename, file)
	}
	return "https://cdn/" + bucket + "/" + filename, nil
}

// AudifyxFacadeStub aggregates facade dependencies for HTTP layer tests.
type AudifyxFacadeStub struct {
	AuthFacadeStub
	PointsFacadeStub
	PayoutFacadeStub
	FollowFacadeStub
	MessageFacadeStub
	ContentFacadeStub
	MediaFacadeStub
}

// NotificationDeliveryCall records one dispatcher delivery attempt.
type NotificationDeliveryCall struct {
	ID       int64
	Terminal bool
}

// OutboxFacadeStub mimics dispatcher interactions with the outbox.
type OutboxFacadeStub struct {
	Batches   [][]model.Notification
	BatchesFn func(context.Context, int) ([]model.Notification, error)
	DeliverFn func(context.Context, model.Notification) error
	Sent      []int64
	Failed    []NotificationDeliveryCall
	mu        sync.Mutex
	batchCall int
}

// Lock exposes internal mutex for external synchronization.
func (s *OutboxFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *OutboxFacadeStub) Unlock() { s.mu.Unlock() }

// NotificationsForDispatch returns batches from the configured queue.
func (s *OutboxFacadeStub) NotificationsForDispatch(ctx context.Context, limit int) ([]model.Notification, error) {
	if s.BatchesFn != nil {
		return s.BatchesFn(ctx, limit)
	}
	s.mu.Lock()
	call := s.batchCall
	s.batchCall++
	s.mu.Unlock()
	if call < len(s.Batches) {
		return s.Batches[call], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}

// DeliverNotification executes the configured delivery handler.
func (s *OutboxFacadeStub) DeliverNotification(ctx context.Context, n model.Notification) error {
	if s.DeliverFn != nil {
		return s.DeliverFn(ctx, n)
	}
	return nil
}

// MarkNotificationSent records successful deliveries.
func (s *OutboxFacadeStub) MarkNotificationSent(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Sent = append(s.Sent, id)
	return nil
}

// MarkNotificationFailed records failed deliveries.
func (s *OutboxFacadeStub) MarkNotificationFailed(ctx context.Context, id int64, terminal bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Failed = append(s.Failed, NotificationDeliveryCall{ID: id, Terminal: terminal})
	return nil
}
