package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-payout-service/internal/models"
	"github.com/jeffleon2/draftea-payout-service/internal/models/dto"
	"github.com/shopspring/decimal"
)

type CashOutService interface {
	CreateRequest(ctx context.Context, userID uint, amount decimal.Decimal, reason string) (*models.CashOutRequest, error)
	ApproveRequest(ctx context.Context, requestID uint) (*models.CashOutDecision, error)
	RejectRequest(ctx context.Context, requestID uint, reason *string) (*models.CashOutRequest, error)
	GetRequest(ctx context.Context, requestID uint) (*models.CashOutRequest, error)
	ListRequests(ctx context.Context, filter models.CashOutFilter, page models.PageRequest) ([]models.CashOutRequest, models.Pagination, error)
}

type CashOutHandler struct {
	Service CashOutService
}

func NewCashOutHandler(s CashOutService) *CashOutHandler {
	return &CashOutHandler{Service: s}
}

// POST /cashout-requests/:userId
func (h *CashOutHandler) CreateRequest(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	var body dto.CashOut
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	body.Sanitize()

	req, err := h.Service.CreateRequest(c.Request.Context(), userID, body.Amount, body.Reason)
	if err != nil {
		respondCreateError(c, err)
		return
	}

	c.JSON(http.StatusCreated, req)
}

// GET /cashout-requests
func (h *CashOutHandler) ListRequests(c *gin.Context) {
	h.list(c, models.CashOutFilter{Status: statusFilter(c)})
}

// GET /cashout-requests/user/:userId
func (h *CashOutHandler) ListUserRequests(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}
	h.list(c, models.CashOutFilter{UserID: &userID, Status: statusFilter(c)})
}

// GET /cashout-requests/:requestId
func (h *CashOutHandler) GetRequest(c *gin.Context) {
	requestID, ok := parseID(c, "requestId")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request id"})
		return
	}

	req, err := h.Service.GetRequest(c.Request.Context(), requestID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, req)
}

// PATCH /cashout-requests/:requestId/approve
func (h *CashOutHandler) ApproveRequest(c *gin.Context) {
	requestID, ok := parseID(c, "requestId")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request id"})
		return
	}

	decision, err := h.Service.ApproveRequest(c.Request.Context(), requestID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, decision)
}

// PATCH /cashout-requests/:requestId/reject
func (h *CashOutHandler) RejectRequest(c *gin.Context) {
	requestID, ok := parseID(c, "requestId")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request id"})
		return
	}

	// the body is optional
	var body dto.Decision
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	body.Sanitize()

	req, err := h.Service.RejectRequest(c.Request.Context(), requestID, body.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, req)
}

func (h *CashOutHandler) list(c *gin.Context, filter models.CashOutFilter) {
	items, pagination, err := h.Service.ListRequests(c.Request.Context(), filter, pageRequest(c, defaultPageLimit))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, paginated("cashout_requests", items, pagination))
}
