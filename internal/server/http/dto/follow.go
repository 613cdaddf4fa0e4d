package dto

// FollowCountsResponse reports follower and following totals.
type FollowCountsResponse struct {
	Followers int64 `json:"followers"`
	Following int64 `json:"following"`
}

// FollowStatusResponse reports whether the caller follows the user.
type FollowStatusResponse struct {
	Following bool `json:"following"`
}

// UserIDsResponse lists user identifiers.
type UserIDsResponse struct {
	UserIDs []int64 `json:"user_ids"`
}
