package model

import "time"

// FollowEdge is a directed follow relation, unique per ordered pair.
type FollowEdge struct {
	FollowerID  int64
	FollowingID int64
	CreatedAt   time.Time
}

// FollowCounts aggregates follower/following totals for one profile.
type FollowCounts struct {
	Followers int64
	Following int64
}
