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

func TestPayoutStats(t *testing.T) {
	a := newAPI(t)

	a.payouts.EXPECT().
		Stats(mock.Anything, uint(9)).
		Return(&models.PayoutStats{
			VendorID:          9,
			AvailableBalance:  decimal.RequireFromString("120.50"),
			TotalEarnings:     decimal.RequireFromString("900"),
			TotalWithdrawn:    decimal.RequireFromString("300"),
			PendingPayouts:    decimal.RequireFromString("60"),
			RequestsThisMonth: 2,
		}, nil).
		Once()

	rec, body := a.do(t, http.MethodGet, "/payout/vendor/9/stats", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 120.5, body["available_balance"])
	assert.Equal(t, float64(900), body["total_earnings"])
	assert.Equal(t, float64(300), body["total_withdrawn"])
	assert.Equal(t, float64(60), body["pending_payouts"])
	assert.Equal(t, float64(2), body["requests_this_month"])
}

func TestPayoutStats_NotFound(t *testing.T) {
	a := newAPI(t)

	a.payouts.EXPECT().Stats(mock.Anything, uint(9)).Return(nil, service.ErrVendorNotFound).Once()
	a.payouts.EXPECT().Stats(mock.Anything, uint(10)).Return(nil, service.ErrWalletNotFound).Once()

	rec, body := a.do(t, http.MethodGet, "/payout/vendor/9/stats", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Vendor not found", body["error"])

	rec, body = a.do(t, http.MethodGet, "/payout/vendor/10/stats", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Wallet not found", body["error"])
}

func TestPayoutHistory_DefaultLimit(t *testing.T) {
	a := newAPI(t)

	a.payouts.EXPECT().
		History(mock.Anything, uint(9), models.CashOutStatusApproved, models.PageRequest{Page: 1, Limit: 20}).
		Return([]models.CashOutRequest{{ID: 4}}, models.Pagination{Page: 1, Limit: 20, Total: 1, Pages: 1}, nil).
		Once()

	rec, body := a.do(t, http.MethodGet, "/payout/vendor/9/history?status=approved", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["payouts"], 1)
	assert.Equal(t, float64(20), body["pagination"].(map[string]interface{})["limit"])
}

func TestCreateVendorPayout(t *testing.T) {
	a := newAPI(t)
	vendorID := uint(9)

	a.payouts.EXPECT().
		CreateVendorRequest(mock.Anything, uint(9), amountOf("75.25"), "weekly").
		Return(&models.CashOutRequest{ID: 31, UserID: 5, VendorID: &vendorID, Status: models.CashOutStatusPending}, nil).
		Once()

	rec, body := a.do(t, http.MethodPost, "/payout/vendor/9/request", `{"amount": 75.25, "reason": "weekly"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, float64(9), body["vendor_id"])
}

func TestCreateVendorPayout_Failures(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"duplicate pending", service.ErrDuplicatePendingRequest, http.StatusBadRequest, "You already have a pending payout request"},
		{"vendor missing", service.ErrVendorNotFound, http.StatusNotFound, "Vendor not found"},
		{"owner wallet missing", service.ErrWalletNotFound, http.StatusBadRequest, "Wallet not found for this user"},
		{
			"insufficient",
			&service.InsufficientBalanceError{Balance: decimal.RequireFromString("10"), Requested: decimal.RequireFromString("20")},
			http.StatusBadRequest,
			"Insufficient balance",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := newAPI(t)
			a.payouts.EXPECT().CreateVendorRequest(mock.Anything, uint(9), mock.Anything, "").Return(nil, tc.err).Once()

			rec, body := a.do(t, http.MethodPost, "/payout/vendor/9/request", `{"amount": 20}`)

			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, tc.message, body["error"])
		})
	}
}

func TestUpdatePayoutStatus(t *testing.T) {
	a := newAPI(t)

	a.payouts.EXPECT().
		UpdateStatus(mock.Anything, uint(4), models.CashOutStatusRejected, reasonOf("missing documents")).
		Return(&models.CashOutDecision{Request: &models.CashOutRequest{ID: 4, Status: models.CashOutStatusRejected}}, nil).
		Once()

	rec, body := a.do(t, http.MethodPatch, "/payout/4/status", `{"status": " Rejected ", "reason": "missing documents"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "rejected", body["request"].(map[string]interface{})["status"])
	assert.NotContains(t, body, "wallet")
	assert.NotContains(t, body, "transaction")
}

func TestUpdatePayoutStatus_InvalidStatus(t *testing.T) {
	a := newAPI(t)

	a.payouts.EXPECT().
		UpdateStatus(mock.Anything, uint(4), models.CashOutStatus("paid"), noReason).
		Return(nil, service.ErrInvalidStatus).
		Once()

	rec, body := a.do(t, http.MethodPatch, "/payout/4/status", `{"status": "paid"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Status must be either approved or rejected", body["error"])

	rec, body = a.do(t, http.MethodPatch, "/payout/abc/status", `{"status": "approved"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid payout id", body["error"])
}
