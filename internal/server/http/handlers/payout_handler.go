package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/Parallaxx203/audifyx-backend/internal/domain/errors"
	"github.com/Parallaxx203/audifyx-backend/internal/domain/model"
	"github.com/Parallaxx203/audifyx-backend/internal/server/http/dto"
)

// PayoutHandler exposes withdrawal requests and their admin review.
type PayoutHandler struct {
	facade PayoutFacade
}

// NewPayoutHandler creates PayoutHandler instance.
func NewPayoutHandler(facade PayoutFacade) *PayoutHandler {
	return &PayoutHandler{facade: facade}
}

// Create handles POST /api/payouts.
func (h *PayoutHandler) Create(c *gin.Context) {
	var req dto.PayoutRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	payout, err := h.facade.RequestPayout(c.Request.Context(), CurrentUserID(c), req.AmountUSD, req.WalletAddress, req.VerificationImageURL)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidAmount),
			errors.Is(err, domainErrors.ErrBelowMinimumPayout),
			errors.Is(err, domainErrors.ErrInvalidWallet),
			errors.Is(err, domainErrors.ErrInvalidUpload):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrInsufficientPoints):
			c.Status(http.StatusPaymentRequired)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toPayoutResponse(payout))
}

// List handles GET /api/payouts.
func (h *PayoutHandler) List(c *gin.Context) {
	payouts, err := h.facade.Payouts(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(payouts) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, toPayoutResponses(payouts))
}

// AdminList handles GET /api/admin/payouts.
func (h *PayoutHandler) AdminList(c *gin.Context) {
	status := model.PayoutStatus(c.DefaultQuery("status", string(model.PayoutStatusPending)))

	payouts, err := h.facade.PayoutsByStatus(c.Request.Context(), CurrentUserID(c), status)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrForbidden):
			c.Status(http.StatusForbidden)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, toPayoutResponses(payouts))
}

// Resolve handles POST /api/admin/payouts/:id/resolve.
func (h *PayoutHandler) Resolve(c *gin.Context) {
	requestID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.ResolvePayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var approve bool
	switch req.Action {
	case "approve":
		approve = true
	case "deny":
		approve = false
	default:
		c.Status(http.StatusBadRequest)
		return
	}

	payout, err := h.facade.ResolvePayout(c.Request.Context(), CurrentUserID(c), requestID, approve)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrForbidden):
			c.Status(http.StatusForbidden)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrAlreadyResolved):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, toPayoutResponse(payout))
}

func toPayoutResponse(p *model.PayoutRequest) dto.PayoutResponse {
	return dto.PayoutResponse{
		ID:            p.ID,
		PointsAmount:  p.PointsAmount,
		AmountUSD:     p.USDAmount,
		WalletAddress: p.WalletAddress,
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt,
		ResolvedAt:    p.ResolvedAt,
	}
}

func toPayoutResponses(payouts []model.PayoutRequest) []dto.PayoutResponse {
	resp := make([]dto.PayoutResponse, 0, len(payouts))
	for i := range payouts {
		resp = append(resp, toPayoutResponse(&payouts[i]))
	}
	return resp
}
