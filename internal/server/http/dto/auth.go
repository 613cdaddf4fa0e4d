package dto

import "time"

// RegisterRequest describes the signup payload.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest describes username/password payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ProfileResponse is the public view of a profile.
type ProfileResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdateProfileRequest carries optional profile changes.
type UpdateProfileRequest struct {
	AvatarURL *string `json:"avatar_url,omitempty"`
	Bio       *string `json:"bio,omitempty"`
}
