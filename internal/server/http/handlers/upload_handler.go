package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/Parallaxx203/audifyx-backend/internal/domain/errors"
	"github.com/Parallaxx203/audifyx-backend/internal/server/http/dto"
)

// maxUploadBytes caps a single multipart upload at 50 MB.
const maxUploadBytes = 50 << 20

// UploadHandler streams multipart uploads into media storage.
type UploadHandler struct {
	facade MediaFacade
}

// NewUploadHandler creates UploadHandler instance.
func NewUploadHandler(facade MediaFacade) *UploadHandler {
	return &UploadHandler{facade: facade}
}

// Upload handles POST /api/uploads/:bucket.
func (h *UploadHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	defer file.Close()

	url, err := h.facade.UploadMedia(c.Request.Context(), c.Param("bucket"), CurrentUserID(c), fileHeader.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidUpload):
			c.Status(http.StatusBadRequest)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.UploadResponse{URL: url})
}
