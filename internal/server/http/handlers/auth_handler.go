package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/Parallaxx203/audifyx-backend/internal/domain/errors"
	"github.com/Parallaxx203/audifyx-backend/internal/domain/model"
	"github.com/Parallaxx203/audifyx-backend/internal/server/http/dto"
	"github.com/Parallaxx203/audifyx-backend/internal/server/http/middleware"
)

// AuthHandler processes registration, login and profile management.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/user/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	token, err := h.facade.Register(c.Request.Context(), req.Username, req.Email, req.Password, model.Role(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	c.Status(http.StatusOK)
}

// Login handles POST /api/user/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	token, err := h.facade.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.Status(http.StatusUnauthorized)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	c.Status(http.StatusOK)
}

// Me handles GET /api/user/me.
func (h *AuthHandler) Me(c *gin.Context) {
	profile, err := h.facade.Profile(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, toProfileResponse(profile))
}

// GetProfile handles GET /api/users/:id.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	profile, err := h.facade.Profile(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, toProfileResponse(profile))
}

// UpdateProfile handles PATCH /api/user/me.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if req.AvatarURL == nil && req.Bio == nil {
		c.Status(http.StatusBadRequest)
		return
	}

	userID := CurrentUserID(c)
	if req.AvatarURL != nil {
		if err := h.facade.UpdateAvatar(c.Request.Context(), userID, *req.AvatarURL); err != nil {
			writeProfileUpdateError(c, err)
			return
		}
	}
	if req.Bio != nil {
		if err := h.facade.UpdateBio(c.Request.Context(), userID, *req.Bio); err != nil {
			writeProfileUpdateError(c, err)
			return
		}
	}

	c.Status(http.StatusOK)
}

func writeProfileUpdateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidUpload):
		c.Status(http.StatusBadRequest)
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	default:
		c.Status(http.StatusInternalServerError)
	}
}

func toProfileResponse(p *model.Profile) dto.ProfileResponse {
	return dto.ProfileResponse{
		ID:        p.ID,
		Username:  p.Username,
		Role:      string(p.Role),
		AvatarURL: p.AvatarURL,
		Bio:       p.Bio,
		CreatedAt: p.CreatedAt,
	}
}
