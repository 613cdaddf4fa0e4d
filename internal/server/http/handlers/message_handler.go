package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/Parallaxx203/audifyx-backend/internal/domain/errors"
	"github.com/Parallaxx203/audifyx-backend/internal/domain/model"
	"github.com/Parallaxx203/audifyx-backend/internal/server/http/dto"
)

// MessageHandler exposes direct and group messaging.
type MessageHandler struct {
	facade MessageFacade
}

// NewMessageHandler creates MessageHandler instance.
func NewMessageHandler(facade MessageFacade) *MessageHandler {
	return &MessageHandler{facade: facade}
}

// Send handles POST /api/messages.
func (h *MessageHandler) Send(c *gin.Context) {
	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	msg, err := h.facade.SendDirect(c.Request.Context(), CurrentUserID(c), req.RecipientID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrEmptyContent):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toMessageResponse(msg))
}

// History handles GET /api/messages/:partnerID.
func (h *MessageHandler) History(c *gin.Context) {
	partnerID, ok := pathID(c, "partnerID")
	if !ok {
		return
	}

	messages, err := h.facade.DirectHistory(c.Request.Context(), CurrentUserID(c), partnerID, queryLimit(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := make([]dto.MessageResponse, 0, len(messages))
	for i := range messages {
		resp = append(resp, toMessageResponse(&messages[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Partners handles GET /api/messages.
func (h *MessageHandler) Partners(c *gin.Context) {
	ids, err := h.facade.Partners(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.UserIDsResponse{UserIDs: ids})
}

// Delete handles DELETE /api/messages/:messageID.
func (h *MessageHandler) Delete(c *gin.Context) {
	err := h.facade.DeleteDirect(c.Request.Context(), c.Param("messageID"), CurrentUserID(c))
	if err != nil {
		writeMessageDeleteError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateGroup handles POST /api/groups.
func (h *MessageHandler) CreateGroup(c *gin.Context) {
	var req dto.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	group, err := h.facade.CreateGroup(c.Request.Context(), req.Name, CurrentUserID(c), req.MemberIDs)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrEmptyContent):
			c.Status(http.StatusBadRequest)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toGroupResponse(group))
}

// Groups handles GET /api/groups.
func (h *MessageHandler) Groups(c *gin.Context) {
	groups, err := h.facade.Groups(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := make([]dto.GroupResponse, 0, len(groups))
	for i := range groups {
		resp = append(resp, toGroupResponse(&groups[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// SendGroupMessage handles POST /api/groups/:id/messages.
func (h *MessageHandler) SendGroupMessage(c *gin.Context) {
	groupID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.SendGroupMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	msg, err := h.facade.SendGroup(c.Request.Context(), groupID, CurrentUserID(c), req.Content)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrEmptyContent):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrForbidden):
			c.Status(http.StatusForbidden)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toGroupMessageResponse(msg))
}

// GroupHistory handles GET /api/groups/:id/messages.
func (h *MessageHandler) GroupHistory(c *gin.Context) {
	groupID, ok := pathID(c, "id")
	if !ok {
		return
	}

	messages, err := h.facade.GroupHistory(c.Request.Context(), groupID, CurrentUserID(c), queryLimit(c))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrForbidden):
			c.Status(http.StatusForbidden)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	resp := make([]dto.GroupMessageResponse, 0, len(messages))
	for i := range messages {
		resp = append(resp, toGroupMessageResponse(&messages[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteGroupMessage handles DELETE /api/groups/messages/:messageID.
func (h *MessageHandler) DeleteGroupMessage(c *gin.Context) {
	err := h.facade.DeleteGroupMessage(c.Request.Context(), c.Param("messageID"), CurrentUserID(c))
	if err != nil {
		writeMessageDeleteError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func writeMessageDeleteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrForbidden):
		c.Status(http.StatusForbidden)
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	default:
		c.Status(http.StatusInternalServerError)
	}
}

func queryLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

func toMessageResponse(m *model.Message) dto.MessageResponse {
	return dto.MessageResponse{
		ID:          m.ID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		Content:     m.Content,
		CreatedAt:   m.CreatedAt,
	}
}

func toGroupResponse(g *model.GroupChat) dto.GroupResponse {
	return dto.GroupResponse{
		ID:        g.ID,
		Name:      g.Name,
		CreatorID: g.CreatorID,
		MemberIDs: g.MemberIDs,
		CreatedAt: g.CreatedAt,
	}
}

func toGroupMessageResponse(m *model.GroupMessage) dto.GroupMessageResponse {
	return dto.GroupMessageResponse{
		ID:        m.ID,
		GroupID:   m.GroupID,
		SenderID:  m.SenderID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}
