package model

import "time"

// Role describes what a profile can do on the platform.
type Role string

const (
	RoleListener Role = "listener"
	RoleCreator  Role = "creator"
	RoleBrand    Role = "brand"
	RoleAdmin    Role = "admin"
)

// Valid reports whether the role is one of the known platform roles.
func (r Role) Valid() bool {
	switch r {
	case RoleListener, RoleCreator, RoleBrand, RoleAdmin:
		return true
	}
	return false
}

// Profile represents a registered platform account.
type Profile struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	AvatarURL    string
	Bio          string
	CreatedAt    time.Time
}
