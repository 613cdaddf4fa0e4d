package model

import "time"

// Message is a direct message between two users. The UUID lets realtime
// subscribers dedup events against history fetches.
type Message struct {
	ID          string
	SenderID    int64
	RecipientID int64
	Content     string
	CreatedAt   time.Time
}

// GroupChat is a named chat owned by its creator.
type GroupChat struct {
	ID        int64
	Name      string
	CreatorID int64
	MemberIDs []int64
	CreatedAt time.Time
}

// GroupMessage is a message inside a group chat.
type GroupMessage struct {
	ID        string
	GroupID   int64
	SenderID  int64
	Content   string
	CreatedAt time.Time
}
