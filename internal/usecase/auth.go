package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/Parallaxx203/audifyx-backend/internal/domain/errors"
	"github.com/Parallaxx203/audifyx-backend/internal/domain/model"
	"github.com/Parallaxx203/audifyx-backend/internal/domain/repository"
	pkgAuth "github.com/Parallaxx203/audifyx-backend/internal/pkg/auth"
)

// AuthUseCase handles profile lifecycle and token management.
type AuthUseCase struct {
	profiles repository.ProfileRepository
	hasher   pkgAuth.PasswordHasher
	tokens   pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(profiles repository.ProfileRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{profiles: profiles, hasher: hasher, tokens: strategy}
}

// Register creates a new profile and returns auth token.
func (u *AuthUseCase) Register(ctx context.Context, username, email, password string, role model.Role) (*model.Profile, string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if !ValidateUsername(username) || !ValidateEmail(email) || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}
	if role == "" {
		role = model.RoleListener
	}
	if !role.Valid() || role == model.RoleAdmin {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	profile, err := u.profiles.Create(ctx, username, email, hash, role)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, "", domainErrors.ErrAlreadyExists
		}
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(profile.ID)
	if err != nil {
		return nil, "", err
	}

	return profile, token, nil
}

// Authenticate validates credentials and returns auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, username, password string) (*model.Profile, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	profile, err := u.profiles.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(profile.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(profile.ID)
	if err != nil {
		return nil, "", err
	}

	return profile, token, nil
}

// ParseToken extracts user ID from provided token.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches profile by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.Profile, error) {
	return u.profiles.GetByID(ctx, id)
}

// UpdateAvatar stores a new avatar URL on the profile.
func (u *AuthUseCase) UpdateAvatar(ctx context.Context, id int64, avatarURL string) error {
	if strings.TrimSpace(avatarURL) == "" {
		return domainErrors.ErrInvalidUpload
	}
	return u.profiles.UpdateAvatar(ctx, id, avatarURL)
}

// UpdateBio stores a new bio on the profile.
func (u *AuthUseCase) UpdateBio(ctx context.Context, id int64, bio string) error {
	return u.profiles.UpdateBio(ctx, id, bio)
}
