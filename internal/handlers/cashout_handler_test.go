package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jeffleon2/draftea-payout-service/internal/models"
	"github.com/jeffleon2/draftea-payout-service/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateCashOutRequest(t *testing.T) {
	a := newAPI(t)

	a.cashOuts.EXPECT().
		CreateRequest(mock.Anything, uint(5), amountOf("50.00"), "rent").
		Return(&models.CashOutRequest{
			ID:     1,
			UserID: 5,
			Amount: decimal.RequireFromString("50.00"),
			Reason: "rent",
			Status: models.CashOutStatusPending,
			User:   &models.UserSummary{ID: 5, Name: "Alice"},
		}, nil).
		Once()

	rec, body := a.do(t, http.MethodPost, "/cashout-requests/5", `{"amount": 50.00, "reason": "  rent  "}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "pending", body["status"])
	assert.Equal(t, float64(50), body["amount"])
	assert.Equal(t, "Alice", body["user"].(map[string]interface{})["name"])
}

func TestCreateCashOutRequest_InvalidInput(t *testing.T) {
	a := newAPI(t)

	rec, body := a.do(t, http.MethodPost, "/cashout-requests/abc", `{"amount": 10}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid user id", body["error"])

	rec, body = a.do(t, http.MethodPost, "/cashout-requests/0", `{"amount": 10}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid user id", body["error"])

	rec, body = a.do(t, http.MethodPost, "/cashout-requests/5", `{"amount": "ten"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", body["error"])
}

func TestCreateCashOutRequest_ServiceErrors(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"invalid amount", service.ErrInvalidAmount, http.StatusBadRequest, "Amount must be a positive value with at most two decimals"},
		{"user not found", service.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{"wallet missing", service.ErrWalletNotFound, http.StatusBadRequest, "Wallet not found for this user"},
		{"unexpected", errors.New("connection reset by peer"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := newAPI(t)
			a.cashOuts.EXPECT().
				CreateRequest(mock.Anything, uint(5), mock.Anything, "").
				Return(nil, tc.err).
				Once()

			rec, body := a.do(t, http.MethodPost, "/cashout-requests/5", `{"amount": 0}`)

			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, tc.message, body["error"])
		})
	}
}

func TestCreateCashOutRequest_InsufficientBalance(t *testing.T) {
	a := newAPI(t)

	a.cashOuts.EXPECT().
		CreateRequest(mock.Anything, uint(5), amountOf("50"), "").
		Return(nil, &service.InsufficientBalanceError{
			Balance:   decimal.RequireFromString("30.00"),
			Requested: decimal.RequireFromString("50.00"),
		}).
		Once()

	rec, body := a.do(t, http.MethodPost, "/cashout-requests/5", `{"amount": "50.00"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Insufficient balance", body["error"])
	assert.Equal(t, float64(30), body["current_balance"])
	assert.Equal(t, float64(50), body["requested_amount"])
}

func TestListCashOutRequests(t *testing.T) {
	a := newAPI(t)

	a.cashOuts.EXPECT().
		ListRequests(mock.Anything, models.CashOutFilter{Status: models.CashOutStatusPending}, models.PageRequest{Page: 2, Limit: 100}).
		Return([]models.CashOutRequest{{ID: 3}, {ID: 2}}, models.Pagination{Page: 2, Limit: 100, Total: 102, Pages: 2}, nil).
		Once()

	rec, body := a.do(t, http.MethodGet, "/cashout-requests?status=pending&page=2&limit=500", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["cashout_requests"], 2)
	pagination := body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(2), pagination["page"])
	assert.Equal(t, float64(100), pagination["limit"])
	assert.Equal(t, float64(102), pagination["total"])
	assert.Equal(t, float64(2), pagination["pages"])
}

func TestListCashOutRequests_DefaultsAndClamping(t *testing.T) {
	a := newAPI(t)

	a.cashOuts.EXPECT().
		ListRequests(mock.Anything, models.CashOutFilter{}, models.PageRequest{Page: 1, Limit: 10}).
		Return([]models.CashOutRequest{}, models.Pagination{Page: 1, Limit: 10}, nil).
		Once()

	rec, body := a.do(t, http.MethodGet, "/cashout-requests?page=-3&limit=abc", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []interface{}{}, body["cashout_requests"])
}

func TestListUserCashOutRequests(t *testing.T) {
	a := newAPI(t)
	userID := uint(5)

	a.cashOuts.EXPECT().
		ListRequests(mock.Anything, models.CashOutFilter{UserID: &userID}, models.PageRequest{Page: 1, Limit: 10}).
		Return([]models.CashOutRequest{{ID: 1, UserID: 5}}, models.Pagination{Page: 1, Limit: 10, Total: 1, Pages: 1}, nil).
		Once()

	rec, body := a.do(t, http.MethodGet, "/cashout-requests/user/5", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["cashout_requests"], 1)

	rec, _ = a.do(t, http.MethodGet, "/cashout-requests/user/x", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCashOutRequest(t *testing.T) {
	a := newAPI(t)

	a.cashOuts.EXPECT().GetRequest(mock.Anything, uint(1)).Return(&models.CashOutRequest{ID: 1, Status: models.CashOutStatusPending}, nil).Once()
	a.cashOuts.EXPECT().GetRequest(mock.Anything, uint(2)).Return(nil, service.ErrCashOutNotFound).Once()

	rec, body := a.do(t, http.MethodGet, "/cashout-requests/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["id"])

	rec, body = a.do(t, http.MethodGet, "/cashout-requests/2", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Cashout request not found", body["error"])
}

func TestApproveCashOutRequest(t *testing.T) {
	a := newAPI(t)

	a.cashOuts.EXPECT().
		ApproveRequest(mock.Anything, uint(1)).
		Return(&models.CashOutDecision{
			Request:     &models.CashOutRequest{ID: 1, Status: models.CashOutStatusApproved, Amount: decimal.RequireFromString("50")},
			Wallet:      &models.Wallet{ID: 3, Balance: decimal.RequireFromString("50")},
			Transaction: &models.Transaction{ID: 77, Type: models.TransactionTypeDebit, Amount: decimal.RequireFromString("50"), WalletID: 3},
		}, nil).
		Once()

	rec, body := a.do(t, http.MethodPatch, "/cashout-requests/1/approve", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "approved", body["request"].(map[string]interface{})["status"])
	assert.Equal(t, float64(50), body["wallet"].(map[string]interface{})["balance"])
	assert.Equal(t, "debit", body["transaction"].(map[string]interface{})["type"])
}

func TestApproveCashOutRequest_Failures(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"not found", service.ErrCashOutNotFound, http.StatusNotFound, "Cashout request not found"},
		{"wallet missing", service.ErrWalletNotFound, http.StatusNotFound, "Wallet not found"},
		{
			"not pending",
			&service.StateTransitionError{RequestID: 1, Target: models.CashOutStatusApproved, Current: models.CashOutStatusRejected},
			http.StatusBadRequest,
			"Cashout request cannot be approved. Current status: rejected",
		},
		{
			"balance dropped",
			&service.InsufficientBalanceError{Balance: decimal.RequireFromString("40"), Requested: decimal.RequireFromString("60")},
			http.StatusBadRequest,
			"Insufficient balance",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := newAPI(t)
			a.cashOuts.EXPECT().ApproveRequest(mock.Anything, uint(1)).Return(nil, tc.err).Once()

			rec, body := a.do(t, http.MethodPatch, "/cashout-requests/1/approve", "")

			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, tc.message, body["error"])
		})
	}
}

func TestRejectCashOutRequest(t *testing.T) {
	a := newAPI(t)

	a.cashOuts.EXPECT().
		RejectRequest(mock.Anything, uint(1), reasonOf("bank account closed")).
		Return(&models.CashOutRequest{ID: 1, Status: models.CashOutStatusRejected, Reason: "bank account closed"}, nil).
		Once()

	rec, body := a.do(t, http.MethodPatch, "/cashout-requests/1/reject", `{"reason": " bank account closed "}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "rejected", body["status"])
	assert.Equal(t, "bank account closed", body["reason"])
}

func TestRejectCashOutRequest_WithoutReason(t *testing.T) {
	a := newAPI(t)

	a.cashOuts.EXPECT().
		RejectRequest(mock.Anything, uint(1), noReason).
		Return(&models.CashOutRequest{ID: 1, Status: models.CashOutStatusRejected}, nil).
		Twice()

	rec, _ := a.do(t, http.MethodPatch, "/cashout-requests/1/reject", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = a.do(t, http.MethodPatch, "/cashout-requests/1/reject", `{"reason": "   "}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRejectCashOutRequest_AlreadyApproved(t *testing.T) {
	a := newAPI(t)

	a.cashOuts.EXPECT().
		RejectRequest(mock.Anything, uint(1), noReason).
		Return(nil, &service.StateTransitionError{RequestID: 1, Target: models.CashOutStatusRejected, Current: models.CashOutStatusApproved}).
		Once()

	rec, body := a.do(t, http.MethodPatch, "/cashout-requests/1/reject", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Cashout request cannot be rejected. Current status: approved", body["error"])
}
