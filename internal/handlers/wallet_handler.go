package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-payout-service/internal/models"
)

type WalletService interface {
	GetByUser(ctx context.Context, userID uint) (*models.Wallet, error)
	Transactions(ctx context.Context, userID uint, page models.PageRequest) ([]models.Transaction, models.Pagination, error)
}

type WalletHandler struct {
	Service WalletService
}

func NewWalletHandler(s WalletService) *WalletHandler {
	return &WalletHandler{Service: s}
}

// GET /wallets/user/:userId
func (h *WalletHandler) GetByUser(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	wallet, err := h.Service.GetByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, wallet)
}

// GET /wallets/user/:userId/transactions
func (h *WalletHandler) Transactions(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	entries, pagination, err := h.Service.Transactions(c.Request.Context(), userID, pageRequest(c, defaultPageLimit))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, paginated("transactions", entries, pagination))
}
