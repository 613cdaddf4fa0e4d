package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	domainErrors "github.com/Parallaxx203/audifyx-backend/internal/domain/errors"
	"github.com/Parallaxx203/audifyx-backend/internal/domain/model"
	"github.com/Parallaxx203/audifyx-backend/internal/domain/repository"
)

const defaultHistoryLimit = 50

// Publisher pushes events to realtime subscribers. Delivery is best effort,
// persisted state is the source of truth.
type Publisher interface {
	Publish(topic string, payload any)
}

// DirectTopic keys a DM conversation so both participants land on the same
// channel regardless of who initiated it.
func DirectTopic(userA, userB int64) string {
	if userA > userB {
		userA, userB = userB, userA
	}
	return fmt.Sprintf("dm:%d:%d", userA, userB)
}

// GroupTopic keys a group chat channel.
func GroupTopic(groupID int64) string {
	return fmt.Sprintf("group:%d", groupID)
}

// MessagingUseCase manages direct and group conversations.
type MessagingUseCase struct {
	messages  repository.MessageRepository
	profiles  repository.ProfileRepository
	publisher Publisher
}

// NewMessagingUseCase constructs MessagingUseCase.
func NewMessagingUseCase(messages repository.MessageRepository, profiles repository.ProfileRepository, publisher Publisher) *MessagingUseCase {
	return &MessagingUseCase{messages: messages, profiles: profiles, publisher: publisher}
}

// SendDirect persists a DM and fans it out to the conversation channel.
func (u *MessagingUseCase) SendDirect(ctx context.Context, senderID, recipientID int64, content string) (*model.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domainErrors.ErrEmptyContent
	}
	if _, err := u.profiles.GetByID(ctx, recipientID); err != nil {
		return nil, err
	}

	msg := &model.Message{
		ID:          uuid.NewString(),
		SenderID:    senderID,
		RecipientID: recipientID,
		Content:     content,
	}
	if err := u.messages.CreateDirect(ctx, msg); err != nil {
		return nil, err
	}

	u.publisher.Publish(DirectTopic(senderID, recipientID), msg)
	return msg, nil
}

// DirectHistory returns the latest messages between two users.
func (u *MessagingUseCase) DirectHistory(ctx context.Context, userID, partnerID int64, limit int) ([]model.Message, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return u.messages.ListDirect(ctx, userID, partnerID, limit)
}

// Partners lists everyone the user has exchanged DMs with.
func (u *MessagingUseCase) Partners(ctx context.Context, userID int64) ([]int64, error) {
	return u.messages.DirectPartners(ctx, userID)
}

// DeleteDirect removes a DM. Only the sender may delete it.
func (u *MessagingUseCase) DeleteDirect(ctx context.Context, messageID string, callerID int64) error {
	return u.messages.DeleteDirect(ctx, messageID, callerID)
}

// CreateGroup starts a group chat with the creator as first member.
func (u *MessagingUseCase) CreateGroup(ctx context.Context, name string, creatorID int64, memberIDs []int64) (*model.GroupChat, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domainErrors.ErrEmptyContent
	}
	return u.messages.CreateGroup(ctx, name, creatorID, memberIDs)
}

// Groups lists group chats the user belongs to.
func (u *MessagingUseCase) Groups(ctx context.Context, userID int64) ([]model.GroupChat, error) {
	return u.messages.GroupsByUser(ctx, userID)
}

// SendGroup persists a group message and fans it out to the group channel.
// Non-members are rejected.
func (u *MessagingUseCase) SendGroup(ctx context.Context, groupID, senderID int64, content string) (*model.GroupMessage, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domainErrors.ErrEmptyContent
	}

	member, err := u.messages.IsGroupMember(ctx, groupID, senderID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, domainErrors.ErrForbidden
	}

	msg := &model.GroupMessage{
		ID:       uuid.NewString(),
		GroupID:  groupID,
		SenderID: senderID,
		Content:  content,
	}
	if err := u.messages.CreateGroupMessage(ctx, msg); err != nil {
		return nil, err
	}

	u.publisher.Publish(GroupTopic(groupID), msg)
	return msg, nil
}

// GroupHistory returns the latest messages in a group. Non-members are rejected.
func (u *MessagingUseCase) GroupHistory(ctx context.Context, groupID, callerID int64, limit int) ([]model.GroupMessage, error) {
	member, err := u.messages.IsGroupMember(ctx, groupID, callerID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, domainErrors.ErrForbidden
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return u.messages.ListGroupMessages(ctx, groupID, limit)
}

// DeleteGroupMessage removes a group message. The sender or the group creator
// may delete it.
func (u *MessagingUseCase) DeleteGroupMessage(ctx context.Context, messageID string, callerID int64) error {
	return u.messages.DeleteGroupMessage(ctx, messageID, callerID)
}

// CanSubscribe reports whether the user may join a realtime topic. DM topics
// are limited to the two participants, group topics to members, stream topics
// are open to everyone.
func (u *MessagingUseCase) CanSubscribe(ctx context.Context, userID int64, topic string) bool {
	switch {
	case strings.HasPrefix(topic, "dm:"):
		var a, b int64
		if _, err := fmt.Sscanf(topic, "dm:%d:%d", &a, &b); err != nil {
			return false
		}
		return userID == a || userID == b
	case strings.HasPrefix(topic, "group:"):
		var groupID int64
		if _, err := fmt.Sscanf(topic, "group:%d", &groupID); err != nil {
			return false
		}
		member, err := u.messages.IsGroupMember(ctx, groupID, userID)
		return err == nil && member
	case strings.HasPrefix(topic, "stream:"):
		return true
	default:
		return false
	}
}
