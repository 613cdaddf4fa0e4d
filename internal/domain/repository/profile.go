package repository

import (
	"context"

	"github.com/Parallaxx203/audifyx-backend/internal/domain/model"
)

// ProfileRepository describes persistence operations for platform accounts.
type ProfileRepository interface {
	Create(ctx context.Context, username, email, passwordHash string, role model.Role) (*model.Profile, error)
	GetByUsername(ctx context.Context, username string) (*model.Profile, error)
	GetByID(ctx context.Context, id int64) (*model.Profile, error)
	UpdateAvatar(ctx context.Context, id int64, avatarURL string) error
	UpdateBio(ctx context.Context, id int64, bio string) error
}
