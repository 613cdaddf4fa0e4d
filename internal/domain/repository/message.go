package repository

import (
	"context"

	"github.com/Parallaxx203/audifyx-backend/internal/domain/model"
)

// MessageRepository covers direct and group messaging persistence.
type MessageRepository interface {
	CreateDirect(ctx context.Context, msg *model.Message) error
	ListDirect(ctx context.Context, userA, userB int64, limit int) ([]model.Message, error)
	DirectPartners(ctx context.Context, userID int64) ([]int64, error)
	DeleteDirect(ctx context.Context, messageID string, senderID int64) error

	CreateGroup(ctx context.Context, name string, creatorID int64, memberIDs []int64) (*model.GroupChat, error)
	GroupByID(ctx context.Context, groupID int64) (*model.GroupChat, error)
	GroupsByUser(ctx context.Context, userID int64) ([]model.GroupChat, error)
	IsGroupMember(ctx context.Context, groupID, userID int64) (bool, error)
	CreateGroupMessage(ctx context.Context, msg *model.GroupMessage) error
	ListGroupMessages(ctx context.Context, groupID int64, limit int) ([]model.GroupMessage, error)
	DeleteGroupMessage(ctx context.Context, messageID string, callerID int64) error
}
