package models_test

import (
	"testing"

	"github.com/jeffleon2/draftea-payout-service/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestWalletCanCover(t *testing.T) {
	w := &models.Wallet{Balance: decimal.RequireFromString("100.00")}

	assert.True(t, w.CanCover(decimal.RequireFromString("99.99")))
	assert.True(t, w.CanCover(decimal.RequireFromString("100")), "exact balance is covered")
	assert.False(t, w.CanCover(decimal.RequireFromString("100.01")))
}

func TestNewCashOutEvent(t *testing.T) {
	vendorID := uint(9)
	req := &models.CashOutRequest{
		ID:       12,
		UserID:   5,
		VendorID: &vendorID,
		Amount:   decimal.RequireFromString("60.00"),
		Status:   models.CashOutStatusPending,
		Reason:   "rent",
	}

	evt := models.NewCashOutEvent(req)

	assert.NotEmpty(t, evt.ID)
	assert.NotEmpty(t, evt.TraceID)
	assert.NotEqual(t, evt.ID, evt.TraceID)
	assert.Equal(t, uint(12), evt.RequestID)
	assert.Equal(t, &vendorID, evt.VendorID)
	assert.True(t, evt.Amount.Equal(req.Amount))
	assert.Equal(t, "12", evt.MessageKey())
	assert.False(t, evt.OccurredAt.IsZero())
}
