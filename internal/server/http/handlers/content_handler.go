package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/Parallaxx203/audifyx-backend/internal/domain/errors"
	"github.com/Parallaxx203/audifyx-backend/internal/domain/model"
	"github.com/Parallaxx203/audifyx-backend/internal/server/http/dto"
)

// ContentHandler exposes tracks, posts and the feed.
type ContentHandler struct {
	facade ContentFacade
}

// NewContentHandler creates ContentHandler instance.
func NewContentHandler(facade ContentFacade) *ContentHandler {
	return &ContentHandler{facade: facade}
}

// PublishTrack handles POST /api/tracks.
func (h *ContentHandler) PublishTrack(c *gin.Context) {
	var req dto.PublishTrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	track, err := h.facade.PublishTrack(c.Request.Context(), CurrentUserID(c), req.Title, req.AudioURL, req.CoverURL)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrEmptyContent), errors.Is(err, domainErrors.ErrInvalidUpload):
			c.Status(http.StatusBadRequest)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toTrackResponse(track))
}

// GetTrack handles GET /api/tracks/:id.
func (h *ContentHandler) GetTrack(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	track, err := h.facade.Track(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, toTrackResponse(track))
}

// CreatorTracks handles GET /api/users/:id/tracks.
func (h *ContentHandler) CreatorTracks(c *gin.Context) {
	creatorID, ok := pathID(c, "id")
	if !ok {
		return
	}

	tracks, err := h.facade.TracksByCreator(c.Request.Context(), creatorID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := make([]dto.TrackResponse, 0, len(tracks))
	for i := range tracks {
		resp = append(resp, toTrackResponse(&tracks[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Play handles POST /api/tracks/:id/play.
func (h *ContentHandler) Play(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.facade.RecordPlay(c.Request.Context(), id); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusOK)
}

// CreatePost handles POST /api/posts.
func (h *ContentHandler) CreatePost(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	post, err := h.facade.CreatePost(c.Request.Context(), CurrentUserID(c), req.Content, req.MediaURL)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrEmptyContent):
			c.Status(http.StatusBadRequest)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toPostResponse(post))
}

// Feed handles GET /api/feed.
func (h *ContentHandler) Feed(c *gin.Context) {
	posts, err := h.facade.Feed(c.Request.Context(), CurrentUserID(c), queryLimit(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := make([]dto.PostResponse, 0, len(posts))
	for i := range posts {
		resp = append(resp, toPostResponse(&posts[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// CreatorStats handles GET /api/users/:id/stats.
func (h *ContentHandler) CreatorStats(c *gin.Context) {
	creatorID, ok := pathID(c, "id")
	if !ok {
		return
	}

	stats, err := h.facade.CreatorStats(c.Request.Context(), creatorID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := make([]dto.CreatorStatResponse, 0, len(stats))
	for _, s := range stats {
		resp = append(resp, dto.CreatorStatResponse{StatType: s.StatType, Value: s.Value})
	}
	c.JSON(http.StatusOK, resp)
}

func toTrackResponse(t *model.Track) dto.TrackResponse {
	return dto.TrackResponse{
		ID:        t.ID,
		CreatorID: t.CreatorID,
		Title:     t.Title,
		AudioURL:  t.AudioURL,
		CoverURL:  t.CoverURL,
		PlayCount: t.PlayCount,
		CreatedAt: t.CreatedAt,
	}
}

func toPostResponse(p *model.Post) dto.PostResponse {
	return dto.PostResponse{
		ID:        p.ID,
		AuthorID:  p.AuthorID,
		Content:   p.Content,
		MediaURL:  p.MediaURL,
		CreatedAt: p.CreatedAt,
	}
}
