package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/Parallaxx203/audifyx-backend/internal/domain/errors"
	"github.com/Parallaxx203/audifyx-backend/internal/domain/model"
	"github.com/Parallaxx203/audifyx-backend/internal/server/http/dto"
)

// PointsHandler exposes the engagement points ledger.
type PointsHandler struct {
	facade PointsFacade
}

// NewPointsHandler creates PointsHandler instance.
func NewPointsHandler(facade PointsFacade) *PointsHandler {
	return &PointsHandler{facade: facade}
}

// Balance handles GET /api/points.
func (h *PointsHandler) Balance(c *gin.Context) {
	balance, usd, err := h.facade.Earnings(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.PointsResponse{
		Points:      balance.Points,
		EarningsUSD: usd,
		LastUpdated: balance.LastUpdated,
	})
}

// Transactions handles GET /api/points/transactions.
func (h *PointsHandler) Transactions(c *gin.Context) {
	transactions, err := h.facade.PointHistory(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(transactions) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	resp := make([]dto.TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		resp = append(resp, dto.TransactionResponse{
			ID:        tx.ID,
			Reason:    string(tx.Reason),
			Amount:    tx.Amount,
			CreatedAt: tx.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, resp)
}

// Award handles POST /api/points/award.
func (h *PointsHandler) Award(c *gin.Context) {
	var req dto.AwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	awarded, err := h.facade.Award(c.Request.Context(), CurrentUserID(c), model.AwardReason(req.Reason), req.Ref)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrUnknownAwardReason),
			errors.Is(err, domainErrors.ErrMissingEventRef):
			c.Status(http.StatusBadRequest)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.AwardResponse{Awarded: awarded})
}
