package dto

import "time"

// SendMessageRequest describes a direct message payload.
type SendMessageRequest struct {
	RecipientID int64  `json:"recipient_id"`
	Content     string `json:"content"`
}

// MessageResponse describes one direct message.
type MessageResponse struct {
	ID          string    `json:"id"`
	SenderID    int64     `json:"sender_id"`
	RecipientID int64     `json:"recipient_id"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateGroupRequest describes a new group chat payload.
type CreateGroupRequest struct {
	Name      string  `json:"name"`
	MemberIDs []int64 `json:"member_ids"`
}

// GroupResponse describes a group chat.
type GroupResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatorID int64     `json:"creator_id"`
	MemberIDs []int64   `json:"member_ids,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SendGroupMessageRequest describes a group message payload.
type SendGroupMessageRequest struct {
	Content string `json:"content"`
}

// GroupMessageResponse describes one group message.
type GroupMessageResponse struct {
	ID        string    `json:"id"`
	GroupID   int64     `json:"group_id"`
	SenderID  int64     `json:"sender_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
