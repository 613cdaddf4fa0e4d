package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/Parallaxx203/audifyx-backend/internal/domain/errors"
	"github.com/Parallaxx203/audifyx-backend/internal/server/http/dto"
)

// FollowHandler exposes the follow graph.
type FollowHandler struct {
	facade FollowFacade
}

// NewFollowHandler creates FollowHandler instance.
func NewFollowHandler(facade FollowFacade) *FollowHandler {
	return &FollowHandler{facade: facade}
}

// Follow handles POST /api/users/:id/follow.
func (h *FollowHandler) Follow(c *gin.Context) {
	targetID, ok := pathID(c, "id")
	if !ok {
		return
	}

	err := h.facade.Follow(c.Request.Context(), CurrentUserID(c), targetID)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrSelfFollow):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusOK)
}

// Unfollow handles DELETE /api/users/:id/follow.
func (h *FollowHandler) Unfollow(c *gin.Context) {
	targetID, ok := pathID(c, "id")
	if !ok {
		return
	}

	err := h.facade.Unfollow(c.Request.Context(), CurrentUserID(c), targetID)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrSelfFollow):
			c.Status(http.StatusBadRequest)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusOK)
}

// Status handles GET /api/users/:id/follow.
func (h *FollowHandler) Status(c *gin.Context) {
	targetID, ok := pathID(c, "id")
	if !ok {
		return
	}

	following, err := h.facade.IsFollowing(c.Request.Context(), CurrentUserID(c), targetID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.FollowStatusResponse{Following: following})
}

// Counts handles GET /api/users/:id/follow-counts.
func (h *FollowHandler) Counts(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	counts, err := h.facade.FollowCounts(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.FollowCountsResponse{
		Followers: counts.Followers,
		Following: counts.Following,
	})
}

// Followers handles GET /api/users/:id/followers.
func (h *FollowHandler) Followers(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	ids, err := h.facade.Followers(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.UserIDsResponse{UserIDs: ids})
}

// Following handles GET /api/users/:id/following.
func (h *FollowHandler) Following(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	ids, err := h.facade.Following(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.UserIDsResponse{UserIDs: ids})
}
