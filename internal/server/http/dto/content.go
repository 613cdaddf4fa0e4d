package dto

import "time"

// PublishTrackRequest describes a new track payload.
type PublishTrackRequest struct {
	Title    string `json:"title"`
	AudioURL string `json:"audio_url"`
	CoverURL string `json:"cover_url"`
}

// TrackResponse describes a track.
type TrackResponse struct {
	ID        int64     `json:"id"`
	CreatorID int64     `json:"creator_id"`
	Title     string    `json:"title"`
	AudioURL  string    `json:"audio_url"`
	CoverURL  string    `json:"cover_url,omitempty"`
	PlayCount int64     `json:"play_count"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatePostRequest describes a new feed post payload.
type CreatePostRequest struct {
	Content  string `json:"content"`
	MediaURL string `json:"media_url"`
}

// PostResponse describes a feed post.
type PostResponse struct {
	ID        int64     `json:"id"`
	AuthorID  int64     `json:"author_id"`
	Content   string    `json:"content"`
	MediaURL  string    `json:"media_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatorStatResponse describes one aggregated creator metric.
type CreatorStatResponse struct {
	StatType string `json:"stat_type"`
	Value    int64  `json:"value"`
}
