package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-payout-service/internal/service"
	"github.com/sirupsen/logrus"
)

// respondError writes the client-facing body for err. Anything outside the
// service error taxonomy is logged and hidden behind a generic 500.
func respondError(c *gin.Context, err error) {
	var balanceErr *service.InsufficientBalanceError
	var stateErr *service.StateTransitionError

	switch {
	case errors.As(err, &balanceErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":            "Insufficient balance",
			"current_balance":  balanceErr.Balance,
			"requested_amount": balanceErr.Requested,
		})
	case errors.As(err, &stateErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Cashout request cannot be %s. Current status: %s", stateErr.Target, stateErr.Current),
		})
	case errors.Is(err, service.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be a positive value with at most two decimals"})
	case errors.Is(err, service.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be either approved or rejected"})
	case errors.Is(err, service.ErrDuplicatePendingRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": "You already have a pending payout request"})
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, service.ErrVendorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
	case errors.Is(err, service.ErrWalletNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Wallet not found"})
	case errors.Is(err, service.ErrCashOutNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Cashout request not found"})
	default:
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
		}).Error("Unexpected error handling request")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// respondCreateError is respondError for the create routes, where a missing
// wallet is a bad request rather than a missing resource.
func respondCreateError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrWalletNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Wallet not found for this user"})
		return
	}
	respondError(c, err)
}
