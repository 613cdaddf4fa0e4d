package model

import "time"

// Track is an uploaded audio item owned by a creator.
type Track struct {
	ID        int64
	CreatorID int64
	Title     string
	AudioURL  string
	CoverURL  string
	PlayCount int64
	CreatedAt time.Time
}

// Post is a feed entry, optionally referencing uploaded media.
type Post struct {
	ID        int64
	AuthorID  int64
	Content   string
	MediaURL  string
	CreatedAt time.Time
}

// CreatorStat is one named counter on a creator profile, incremented
// atomically server-side.
type CreatorStat struct {
	CreatorID int64
	StatType  string
	Value     int64
}
