package handlers_test

import (
	"net/http"
	"testing"

	"github.com/jeffleon2/draftea-payout-service/internal/models"
	"github.com/jeffleon2/draftea-payout-service/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetWalletByUser(t *testing.T) {
	a := newAPI(t)

	a.wallets.EXPECT().
		GetByUser(mock.Anything, uint(5)).
		Return(&models.Wallet{ID: 3, UserID: 5, Balance: decimal.RequireFromString("42.10"), Status: models.WalletStatusActive}, nil).
		Once()
	a.wallets.EXPECT().GetByUser(mock.Anything, uint(6)).Return(nil, service.ErrWalletNotFound).Once()

	rec, body := a.do(t, http.MethodGet, "/wallets/user/5", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 42.1, body["balance"])

	rec, body = a.do(t, http.MethodGet, "/wallets/user/6", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Wallet not found", body["error"])
}

func TestWalletTransactions(t *testing.T) {
	a := newAPI(t)

	a.wallets.EXPECT().
		Transactions(mock.Anything, uint(5), models.PageRequest{Page: 3, Limit: 1}).
		Return(
			[]models.Transaction{{ID: 10, Type: models.TransactionTypeDebit, Amount: decimal.RequireFromString("5"), WalletID: 3}},
			models.Pagination{Page: 3, Limit: 1, Total: 4, Pages: 4},
			nil,
		).
		Once()

	rec, body := a.do(t, http.MethodGet, "/wallets/user/5/transactions?page=3&limit=1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["transactions"], 1)
	assert.Equal(t, float64(4), body["pagination"].(map[string]interface{})["pages"])
}
