package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-payout-service/internal/models"
	"github.com/jeffleon2/draftea-payout-service/internal/models/dto"
	"github.com/shopspring/decimal"
)

type PayoutService interface {
	Stats(ctx context.Context, vendorID uint) (*models.PayoutStats, error)
	History(ctx context.Context, vendorID uint, status models.CashOutStatus, page models.PageRequest) ([]models.CashOutRequest, models.Pagination, error)
	CreateVendorRequest(ctx context.Context, vendorID uint, amount decimal.Decimal, reason string) (*models.CashOutRequest, error)
	UpdateStatus(ctx context.Context, payoutID uint, status models.CashOutStatus, reason *string) (*models.CashOutDecision, error)
}

// PayoutHandler serves the vendor payout routes and the admin status update.
type PayoutHandler struct {
	Service PayoutService
}

func NewPayoutHandler(s PayoutService) *PayoutHandler {
	return &PayoutHandler{Service: s}
}

// GET /payout/vendor/:vendor_id/stats
func (h *PayoutHandler) Stats(c *gin.Context) {
	vendorID, ok := parseID(c, "vendor_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vendor id"})
		return
	}

	stats, err := h.Service.Stats(c.Request.Context(), vendorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GET /payout/vendor/:vendor_id/history
func (h *PayoutHandler) History(c *gin.Context) {
	vendorID, ok := parseID(c, "vendor_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vendor id"})
		return
	}

	items, pagination, err := h.Service.History(c.Request.Context(), vendorID, statusFilter(c), pageRequest(c, defaultPayoutsLimit))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, paginated("payouts", items, pagination))
}

// POST /payout/vendor/:vendor_id/request
func (h *PayoutHandler) CreateRequest(c *gin.Context) {
	vendorID, ok := parseID(c, "vendor_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vendor id"})
		return
	}

	var body dto.CashOut
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	body.Sanitize()

	req, err := h.Service.CreateVendorRequest(c.Request.Context(), vendorID, body.Amount, body.Reason)
	if err != nil {
		respondCreateError(c, err)
		return
	}

	c.JSON(http.StatusCreated, req)
}

// PATCH /payout/:payout_id/status
func (h *PayoutHandler) UpdateStatus(c *gin.Context) {
	payoutID, ok := parseID(c, "payout_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payout id"})
		return
	}

	var body dto.Decision
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	body.Sanitize()

	decision, err := h.Service.UpdateStatus(c.Request.Context(), payoutID, body.CashOutStatus(), body.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, decision)
}
