package test

import (
	"context"
	"time"

	domainErrors "github.com/Parallaxx203/audifyx-backend/internal/domain/errors"
	"github.com/Parallaxx203/audifyx-backend/internal/domain/model"
	"github.com/Parallaxx203/audifyx-backend/internal/domain/repository"
)

// ProfileRepositoryStub stores profiles in-memory for tests.
type ProfileRepositoryStub struct {
	ByUsername map[string]*model.Profile
	ByID       map[int64]*model.Profile
	Next       int64
	Err        error
}

// NewProfileRepositoryStub constructs stub repository with initialized maps.
func NewProfileRepositoryStub() *ProfileRepositoryStub {
	return &ProfileRepositoryStub{
		ByUsername: make(map[string]*model.Profile),
		ByID:       make(map[int64]*model.Profile),
		Next:       1,
	}
}

// Create registers profile unless username is taken or stub has explicit error.
func (s *ProfileRepositoryStub) Create(ctx context.Context, username, email, passwordHash string, role model.Role) (*model.Profile, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.ByUsername == nil {
		s.ByUsername = make(map[string]*model.Profile)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.Profile)
	}
	if _, exists := s.ByUsername[username]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	profile := &model.Profile{ID: s.Next, Username: username, Email: email, PasswordHash: passwordHash, Role: role, CreatedAt: time.Now()}
	s.Next++
	s.ByUsername[username] = profile
	s.ByID[profile.ID] = profile
	return profile, nil
}

// GetByUsername fetches profile by username or returns not found.
func (s *ProfileRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.Profile, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if profile, ok := s.ByUsername[username]; ok {
		return profile, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches profile by identifier or returns not found.
func (s *ProfileRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Profile, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if profile, ok := s.ByID[id]; ok {
		return profile, nil
	}
	return nil, domainErrors.ErrNotFound
}

// UpdateAvatar replaces avatar URL for stored profile.
func (s *ProfileRepositoryStub) UpdateAvatar(ctx context.Context, id int64, avatarURL string) error {
	if s.Err != nil {
		return s.Err
	}
	profile, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	profile.AvatarURL = avatarURL
	return nil
}

// UpdateBio replaces bio for stored profile.
func (s *ProfileRepositoryStub) UpdateBio(ctx context.Context, id int64, bio string) error {
	if s.Err != nil {
		return s.Err
	}
	profile, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	profile.Bio = bio
	return nil
}

// PointsRepositoryStub allows tests to customize behaviour.
type PointsRepositoryStub struct {
	AwardFn          func(context.Context, int64, model.AwardReason, int64) error
	BalanceFn        func(context.Context, int64) (*model.PointBalance, error)
	TransactionsFn   func(context.Context, int64) ([]model.PointTransaction, error)
	TransactionSumFn func(context.Context, int64) (int64, error)
}

func (s *PointsRepositoryStub) Award(ctx context.Context, userID int64, reason model.AwardReason, amount int64) error {
	if s.AwardFn != nil {
		return s.AwardFn(ctx, userID, reason, amount)
	}
	return nil
}

func (s *PointsRepositoryStub) Balance(ctx context.Context, userID int64) (*model.PointBalance, error) {
	if s.BalanceFn != nil {
		return s.BalanceFn(ctx, userID)
	}
	return &model.PointBalance{UserID: userID}, nil
}

func (s *PointsRepositoryStub) Transactions(ctx context.Context, userID int64) ([]model.PointTransaction, error) {
	if s.TransactionsFn != nil {
		return s.TransactionsFn(ctx, userID)
	}
	return nil, nil
}

func (s *PointsRepositoryStub) TransactionSum(ctx context.Context, userID int64) (int64, error) {
	if s.TransactionSumFn != nil {
		return s.TransactionSumFn(ctx, userID)
	}
	return 0, nil
}

// PayoutRepositoryStub allows tests to customize behaviour.
type PayoutRepositoryStub struct {
	CreateFn       func(context.Context, repository.CreatePayoutParams) (*model.PayoutRequest, error)
	GetByIDFn      func(context.Context, int64) (*model.PayoutRequest, error)
	ListByUserFn   func(context.Context, int64) ([]model.PayoutRequest, error)
	ListByStatusFn func(context.Context, model.PayoutStatus) ([]model.PayoutRequest, error)
	ResolveFn      func(context.Context, int64, model.PayoutStatus) (*model.PayoutRequest, error)
}

func (s *PayoutRepositoryStub) Create(ctx context.Context, params repository.CreatePayoutParams) (*model.PayoutRequest, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, params)
	}
	return &model.PayoutRequest{Status: model.PayoutStatusPending}, nil
}

func (s *PayoutRepositoryStub) GetByID(ctx context.Context, id int64) (*model.PayoutRequest, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *PayoutRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.PayoutRequest, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	return nil, nil
}

func (s *PayoutRepositoryStub) ListByStatus(ctx context.Context, status model.PayoutStatus) ([]model.PayoutRequest, error) {
	if s.ListByStatusFn != nil {
		return s.ListByStatusFn(ctx, status)
	}
	return nil, nil
}

func (s *PayoutRepositoryStub) Resolve(ctx context.Context, id int64, status model.PayoutStatus) (*model.PayoutRequest, error) {
	if s.ResolveFn != nil {
		return s.ResolveFn(ctx, id, status)
	}
	return nil, domainErrors.ErrNotFound
}

// FollowRepositoryStub allows tests to customize behaviour.
type FollowRepositoryStub struct {
	FollowFn      func(context.Context, int64, int64) (bool, error)
	UnfollowFn    func(context.Context, int64, int64) error
	IsFollowingFn func(context.Context, int64, int64) (bool, error)
	CountsFn      func(context.Context, int64) (*model.FollowCounts, error)
	FollowersFn   func(context.Context, int64) ([]int64, error)
	FollowingFn   func(context.Context, int64) ([]int64, error)
}

func (s *FollowRepositoryStub) Follow(ctx context.Context, followerID, followingID int64) (bool, error) {
	if s.FollowFn != nil {
		return s.FollowFn(ctx, followerID, followingID)
	}
	return true, nil
}

func (s *FollowRepositoryStub) Unfollow(ctx context.Context, followerID, followingID int64) error {
	if s.UnfollowFn != nil {
		return s.UnfollowFn(ctx, followerID, followingID)
	}
	return nil
}

func (s *FollowRepositoryStub) IsFollowing(ctx context.Context, followerID, followingID int64) (bool, error) {
	if s.IsFollowingFn != nil {
		return s.IsFollowingFn(ctx, followerID, followingID)
	}
	return false, nil
}

func (s *FollowRepositoryStub) Counts(ctx context.Context, userID int64) (*model.FollowCounts, error) {
	if s.CountsFn != nil {
		return s.CountsFn(ctx, userID)
	}
	return &model.FollowCounts{}, nil
}

func (s *FollowRepositoryStub) Followers(ctx context.Context, userID int64) ([]int64, error) {
	if s.FollowersFn != nil {
		return s.FollowersFn(ctx, userID)
	}
	return nil, nil
}

func (s *FollowRepositoryStub) Following(ctx context.Context, userID int64) ([]int64, error) {
	if s.FollowingFn != nil {
		return s.FollowingFn(ctx, userID)
	}
	return nil, nil
}

// MessageRepositoryStub allows tests to customize behaviour.
type MessageRepositoryStub struct {
	CreateDirectFn       func(context.Context, *model.Message) error
	ListDirectFn         func(context.Context, int64, int64, int) ([]model.Message, error)
	DirectPartnersFn     func(context.Context, int64) ([]int64, error)
	DeleteDirectFn       func(context.Context, string, int64) error
	CreateGroupFn        func(context.Context, string, int64, []int64) (*model.GroupChat, error)
	GroupByIDFn          func(context.Context, int64) (*model.GroupChat, error)
	GroupsByUserFn       func(context.Context, int64) ([]model.GroupChat, error)
	IsGroupMemberFn      func(context.Context, int64, int64) (bool, error)
	CreateGroupMessageFn func(context.Context, *model.GroupMessage) error
	ListGroupMessagesFn  func(context.Context, int64, int) ([]model.GroupMessage, error)
	DeleteGroupMessageFn func(context.Context, string, int64) error
}

func (s *MessageRepositoryStub) CreateDirect(ctx context.Context, msg *model.Message) error {
	if s.CreateDirectFn != nil {
		return s.CreateDirectFn(ctx, msg)
	}
	msg.CreatedAt = time.Now()
	return nil
}

func (s *MessageRepositoryStub) ListDirect(ctx context.Context, userA, userB int64, limit int) ([]model.Message, error) {
	if s.ListDirectFn != nil {
		return s.ListDirectFn(ctx, userA, userB, limit)
	}
	return nil, nil
}

func (s *MessageRepositoryStub) DirectPartners(ctx context.Context, userID int64) ([]int64, error) {
	if s.DirectPartnersFn != nil {
		return s.DirectPartnersFn(ctx, userID)
	}
	return nil, nil
}

func (s *MessageRepositoryStub) DeleteDirect(ctx context.Context, messageID string, senderID int64) error {
	if s.DeleteDirectFn != nil {
		return s.DeleteDirectFn(ctx, messageID, senderID)
	}
	return nil
}

func (s *MessageRepositoryStub) CreateGroup(ctx context.Context, name string, creatorID int64, memberIDs []int64) (*model.GroupChat, error) {
	if s.CreateGroupFn != nil {
		return s.CreateGroupFn(ctx, name, creatorID, memberIDs)
	}
	return &model.GroupChat{ID: 1, Name: name, CreatorID: creatorID, MemberIDs: append([]int64{creatorID}, memberIDs...)}, nil
}

func (s *MessageRepositoryStub) GroupByID(ctx context.Context, groupID int64) (*model.GroupChat, error) {
	if s.GroupByIDFn != nil {
		return s.GroupByIDFn(ctx, groupID)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *MessageRepositoryStub) GroupsByUser(ctx context.Context, userID int64) ([]model.GroupChat, error) {
	if s.GroupsByUserFn != nil {
		return s.GroupsByUserFn(ctx, userID)
	}
	return nil, nil
}

func (s *MessageRepositoryStub) IsGroupMember(ctx context.Context, groupID, userID int64) (bool, error) {
	if s.IsGroupMemberFn != nil {
		return s.IsGroupMemberFn(ctx, groupID, userID)
	}
	return true, nil
}

func (s *MessageRepositoryStub) CreateGroupMessage(ctx context.Context, msg *model.GroupMessage) error {
	if s.CreateGroupMessageFn != nil {
		return s.CreateGroupMessageFn(ctx, msg)
	}
	msg.CreatedAt = time.Now()
	return nil
}

func (s *MessageRepositoryStub) ListGroupMessages(ctx context.Context, groupID int64, limit int) ([]model.GroupMessage, error) {
	if s.ListGroupMessagesFn != nil {
		return s.ListGroupMessagesFn(ctx, groupID, limit)
	}
	return nil, nil
}

func (s *MessageRepositoryStub) DeleteGroupMessage(ctx context.Context, messageID string, callerID int64) error {
	if s.DeleteGroupMessageFn != nil {
		return s.DeleteGroupMessageFn(ctx, messageID, callerID)
	}
	return nil
}

// ContentRepositoryStub allows tests to customize behaviour.
type ContentRepositoryStub struct {
	CreateTrackFn          func(context.Context, *model.Track) error
	TrackByIDFn            func(context.Context, int64) (*model.Track, error)
	ListTracksByCreatorFn  func(context.Context, int64) ([]model.Track, error)
	IncrementPlayCountFn   func(context.Context, int64) error
	CreatePostFn           func(context.Context, *model.Post) error
	FeedFn                 func(context.Context, int64, int) ([]model.Post, error)
	IncrementCreatorStatFn func(context.Context, int64, string, int64) error
	CreatorStatsFn         func(context.Context, int64) ([]model.CreatorStat, error)
}

func (s *ContentRepositoryStub) CreateTrack(ctx context.Context, track *model.Track) error {
	if s.CreateTrackFn != nil {
		return s.CreateTrackFn(ctx, track)
	}
	track.ID = 1
	track.CreatedAt = time.Now()
	return nil
}

func (s *ContentRepositoryStub) TrackByID(ctx context.Context, id int64) (*model.Track, error) {
	if s.TrackByIDFn != nil {
		return s.TrackByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ContentRepositoryStub) ListTracksByCreator(ctx context.Context, creatorID int64) ([]model.Track, error) {
	if s.ListTracksByCreatorFn != nil {
		return s.ListTracksByCreatorFn(ctx, creatorID)
	}
	return nil, nil
}

func (s *ContentRepositoryStub) IncrementPlayCount(ctx context.Context, trackID int64) error {
	if s.IncrementPlayCountFn != nil {
		return s.IncrementPlayCountFn(ctx, trackID)
	}
	return nil
}

func (s *ContentRepositoryStub) CreatePost(ctx context.Context, post *model.Post) error {
	if s.CreatePostFn != nil {
		return s.CreatePostFn(ctx, post)
	}
	post.ID = 1
	post.CreatedAt = time.Now()
	return nil
}

func (s *ContentRepositoryStub) Feed(ctx context.Context, userID int64, limit int) ([]model.Post, error) {
	if s.FeedFn != nil {
		return s.FeedFn(ctx, userID, limit)
	}
	return nil, nil
}

func (s *ContentRepositoryStub) IncrementCreatorStat(ctx context.Context, creatorID int64, statType string, delta int64) error {
	if s.IncrementCreatorStatFn != nil {
		return s.IncrementCreatorStatFn(ctx, creatorID, statType, delta)
	}
	return nil
}

func (s *ContentRepositoryStub) CreatorStats(ctx context.Context, creatorID int64) ([]model.CreatorStat, error) {
	if s.CreatorStatsFn != nil {
		return s.CreatorStatsFn(ctx, creatorID)
	}
	return nil, nil
}

// NotificationRepositoryStub allows tests to customize behaviour.
type NotificationRepositoryStub struct {
	EnqueueFn                func(context.Context, *model.Notification) error
	SelectBatchForDispatchFn func(context.Context, int) ([]model.Notification, error)
	MarkSentFn               func(context.Context, int64) error
	MarkFailedFn             func(context.Context, int64, bool) error
}

func (s *NotificationRepositoryStub) Enqueue(ctx context.Context, n *model.Notification) error {
	if s.EnqueueFn != nil {
		return s.EnqueueFn(ctx, n)
	}
	n.ID = 1
	n.Status = model.NotificationStatusPending
	return nil
}

func (s *NotificationRepositoryStub) SelectBatchForDispatch(ctx context.Context, limit int) ([]model.Notification, error) {
	if s.SelectBatchForDispatchFn != nil {
		return s.SelectBatchForDispatchFn(ctx, limit)
	}
	return nil, nil
}

func (s *NotificationRepositoryStub) MarkSent(ctx context.Context, id int64) error {
	if s.MarkSentFn != nil {
		return s.MarkSentFn(ctx, id)
	}
	return nil
}

func (s *NotificationRepositoryStub) MarkFailed(ctx context.Context, id int64, terminal bool) error {
	if s.MarkFailedFn != nil {
		return s.MarkFailedFn(ctx, id, terminal)
	}
	return nil
}

// GuardStub controls dedup decisions in tests.
type GuardStub struct {
	AcquireFn func(context.Context, string, time.Duration) (bool, error)
	ReleaseFn func(context.Context, string) error
	Keys      []string
	TTLs      []time.Duration
	Released  []string
}

func (s *GuardStub) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	s.Keys = append(s.Keys, key)
	s.TTLs = append(s.TTLs, ttl)
	if s.AcquireFn != nil {
		return s.AcquireFn(ctx, key, ttl)
	}
	return true, nil
}

func (s *GuardStub) Release(ctx context.Context, key string) error {
	s.Released = append(s.Released, key)
	if s.ReleaseFn != nil {
		return s.ReleaseFn(ctx, key)
	}
	return nil
}
