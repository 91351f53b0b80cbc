package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-payout-service/internal/models"
	"github.com/jeffleon2/draftea-payout-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPayouts(t *testing.T) (*service.PayoutService, *engineMocks) {
	engine, m := newEngine(t)
	payouts := service.NewPayoutService(engine.Repos, engine)
	payouts.Clock = func() time.Time {
		return time.Date(2026, time.October, 15, 13, 30, 0, 0, time.UTC)
	}
	return payouts, m
}

func byVendorAndStatus(vendorID uint, status models.CashOutStatus) interface{} {
	return mock.MatchedBy(func(f models.CashOutFilter) bool {
		return f.VendorID != nil && *f.VendorID == vendorID && f.Status == status && f.UserID == nil
	})
}

func TestPayoutStats(t *testing.T) {
	payouts, m := newPayouts(t)
	ctx := context.Background()

	m.vendors.EXPECT().GetByID(ctx, uint(9)).Return(&models.Vendor{ID: 9, OwnerID: 5}, nil).Once()
	m.wallets.EXPECT().GetByUserID(ctx, uint(5)).Return(&models.Wallet{ID: 3, UserID: 5, Balance: money("120.50")}, nil).Once()
	m.orders.EXPECT().SumCompletedTotal(ctx, uint(9)).Return(money("900.00"), nil).Once()
	m.cashOuts.EXPECT().SumAmount(ctx, byVendorAndStatus(9, models.CashOutStatusApproved)).Return(money("300.00"), nil).Once()
	m.cashOuts.EXPECT().SumAmount(ctx, byVendorAndStatus(9, models.CashOutStatusPending)).Return(money("60.00"), nil).Once()
	m.cashOuts.EXPECT().
		Count(ctx, mock.MatchedBy(func(f models.CashOutFilter) bool {
			return f.VendorID != nil && *f.VendorID == 9 &&
				f.Status == "" &&
				f.CreatedSince != nil &&
				f.CreatedSince.Equal(time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC))
		})).
		Return(int64(2), nil).
		Once()

	stats, err := payouts.Stats(ctx, 9)

	require.NoError(t, err)
	assert.Equal(t, uint(9), stats.VendorID)
	assert.True(t, stats.AvailableBalance.Equal(money("120.50")))
	assert.True(t, stats.TotalEarnings.Equal(money("900")))
	assert.True(t, stats.TotalWithdrawn.Equal(money("300")))
	assert.True(t, stats.PendingPayouts.Equal(money("60")))
	assert.Equal(t, int64(2), stats.RequestsThisMonth)
}

func TestPayoutStats_VendorNotFound(t *testing.T) {
	payouts, m := newPayouts(t)
	ctx := context.Background()

	m.vendors.EXPECT().GetByID(ctx, uint(404)).Return(nil, gorm.ErrRecordNotFound).Once()

	stats, err := payouts.Stats(ctx, 404)

	assert.Nil(t, stats)
	assert.ErrorIs(t, err, service.ErrVendorNotFound)
}

func TestPayoutStats_OwnerWalletNotFound(t *testing.T) {
	payouts, m := newPayouts(t)
	ctx := context.Background()

	m.vendors.EXPECT().GetByID(ctx, uint(9)).Return(&models.Vendor{ID: 9, OwnerID: 5}, nil).Once()
	m.wallets.EXPECT().GetByUserID(ctx, uint(5)).Return(nil, gorm.ErrRecordNotFound).Once()

	_, err := payouts.Stats(ctx, 9)

	assert.ErrorIs(t, err, service.ErrWalletNotFound)
	m.orders.AssertNotCalled(t, "SumCompletedTotal", mock.Anything, mock.Anything)
}

func TestPayoutHistory_FiltersByVendor(t *testing.T) {
	payouts, m := newPayouts(t)
	ctx := context.Background()
	page := models.PageRequest{Page: 1, Limit: 20}
	vendorID := uint(9)

	m.cashOuts.EXPECT().
		List(ctx, models.CashOutFilter{VendorID: &vendorID, Status: models.CashOutStatusApproved}, page).
		Return([]models.CashOutRequest{{ID: 4, VendorID: &vendorID, Status: models.CashOutStatusApproved}}, int64(1), nil).
		Once()

	items, pagination, err := payouts.History(ctx, 9, models.CashOutStatusApproved, page)

	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, int64(1), pagination.Pages)
}

func TestCreateVendorRequest(t *testing.T) {
	payouts, m := newPayouts(t)
	ctx := context.Background()
	amount := money("75.25")

	m.vendors.EXPECT().GetByID(ctx, uint(9)).Return(&models.Vendor{ID: 9, OwnerID: 5}, nil).Once()
	m.wallets.EXPECT().GetByUserID(ctx, uint(5)).Return(&models.Wallet{ID: 3, UserID: 5, Balance: money("100")}, nil).Once()
	m.cashOuts.EXPECT().Count(ctx, byVendorAndStatus(9, models.CashOutStatusPending)).Return(int64(0), nil).Once()
	m.users.EXPECT().GetByID(ctx, uint(5)).Return(&models.User{ID: 5, Name: "Bob", Type: models.UserTypeVendorOwner}, nil).Once()
	m.cashOuts.EXPECT().
		Create(ctx, mock.MatchedBy(func(r *models.CashOutRequest) bool {
			return r.UserID == 5 &&
				r.VendorID != nil && *r.VendorID == 9 &&
				r.Amount.Equal(amount) &&
				r.Reason == "weekly" &&
				r.Status == models.CashOutStatusPending
		})).
		Run(func(ctx context.Context, r *models.CashOutRequest) { r.ID = 31 }).
		Return(nil).
		Once()
	m.publisher.EXPECT().
		Publish(ctx, models.CashOutRequestedTopic, mock.MatchedBy(func(evt models.CashOutEvent) bool {
			return evt.RequestID == 31 && evt.VendorID != nil && *evt.VendorID == 9
		})).
		Return(nil).
		Once()

	req, err := payouts.CreateVendorRequest(ctx, 9, amount, "weekly")

	require.NoError(t, err)
	assert.Equal(t, uint(31), req.ID)
	assert.Equal(t, models.CashOutStatusPending, req.Status)
	require.NotNil(t, req.User)
	assert.Equal(t, uint(5), req.User.ID)
	assert.Equal(t, "Bob", req.User.Name)
}

func TestCreateVendorRequest_DuplicatePending(t *testing.T) {
	payouts, m := newPayouts(t)
	ctx := context.Background()

	m.vendors.EXPECT().GetByID(ctx, uint(9)).Return(&models.Vendor{ID: 9, OwnerID: 5}, nil).Once()
	m.wallets.EXPECT().GetByUserID(ctx, uint(5)).Return(&models.Wallet{ID: 3, UserID: 5, Balance: money("100")}, nil).Once()
	m.cashOuts.EXPECT().Count(ctx, byVendorAndStatus(9, models.CashOutStatusPending)).Return(int64(1), nil).Once()

	req, err := payouts.CreateVendorRequest(ctx, 9, money("10"), "")

	assert.Nil(t, req)
	assert.ErrorIs(t, err, service.ErrDuplicatePendingRequest)
	m.cashOuts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateVendorRequest_InsufficientBalance(t *testing.T) {
	payouts, m := newPayouts(t)
	ctx := context.Background()

	m.vendors.EXPECT().GetByID(ctx, uint(9)).Return(&models.Vendor{ID: 9, OwnerID: 5}, nil).Once()
	m.wallets.EXPECT().GetByUserID(ctx, uint(5)).Return(&models.Wallet{ID: 3, UserID: 5, Balance: money("10")}, nil).Once()
	m.cashOuts.EXPECT().Count(ctx, mock.Anything).Return(int64(0), nil).Once()

	_, err := payouts.CreateVendorRequest(ctx, 9, money("10.01"), "")

	var balanceErr *service.InsufficientBalanceError
	require.ErrorAs(t, err, &balanceErr)
	assert.True(t, balanceErr.Balance.Equal(money("10")))
}

func TestCreateVendorRequest_InvalidAmountAndMissingVendor(t *testing.T) {
	payouts, m := newPayouts(t)
	ctx := context.Background()

	for _, amount := range []string{"0", "0.004", "10000000000"} {
		_, err := payouts.CreateVendorRequest(ctx, 9, money(amount), "")
		assert.ErrorIs(t, err, service.ErrInvalidAmount, amount)
	}

	m.vendors.EXPECT().GetByID(ctx, uint(9)).Return(nil, gorm.ErrRecordNotFound).Once()

	_, err := payouts.CreateVendorRequest(ctx, 9, money("1"), "")
	assert.ErrorIs(t, err, service.ErrVendorNotFound)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	payouts, _ := newPayouts(t)

	for _, status := range []models.CashOutStatus{"", "pending", "paid"} {
		decision, err := payouts.UpdateStatus(context.Background(), 1, status, nil)

		assert.Nil(t, decision)
		assert.ErrorIs(t, err, service.ErrInvalidStatus, string(status))
	}
}

func TestUpdateStatus_RejectedDelegatesToEngine(t *testing.T) {
	payouts, m := newPayouts(t)
	ctx := context.Background()
	reason := "missing documents"

	m.cashOuts.EXPECT().GetByID(ctx, uint(4)).Return(pendingRequest(4, 5, money("10"), ""), nil).Once()
	m.cashOuts.EXPECT().UpdateStatus(ctx, uint(4), models.CashOutStatusPending, models.CashOutStatusRejected, &reason).Return(true, nil).Once()
	m.publisher.EXPECT().Publish(ctx, models.CashOutRejectedTopic, mock.Anything).Return(nil).Once()

	decision, err := payouts.UpdateStatus(ctx, 4, models.CashOutStatusRejected, &reason)

	require.NoError(t, err)
	assert.Equal(t, models.CashOutStatusRejected, decision.Request.Status)
	assert.Nil(t, decision.Wallet)
	assert.Nil(t, decision.Transaction)
}

func TestUpdateStatus_ApprovedDelegatesToEngine(t *testing.T) {
	payouts, m := newPayouts(t)
	ctx := context.Background()

	m.expectTransactions(1)
	m.txCashOuts.EXPECT().GetForUpdate(ctx, uint(4)).Return(nil, gorm.ErrRecordNotFound).Once()

	_, err := payouts.UpdateStatus(ctx, 4, models.CashOutStatusApproved, nil)

	assert.ErrorIs(t, err, service.ErrCashOutNotFound)
}

func TestPayoutStats_RepoErrorIsWrapped(t *testing.T) {
	payouts, m := newPayouts(t)
	ctx := context.Background()
	expectedError := errors.New("query timeout")

	m.vendors.EXPECT().GetByID(ctx, uint(9)).Return(&models.Vendor{ID: 9, OwnerID: 5}, nil).Once()
	m.wallets.EXPECT().GetByUserID(ctx, uint(5)).Return(&models.Wallet{ID: 3, UserID: 5}, nil).Once()
	m.orders.EXPECT().SumCompletedTotal(ctx, uint(9)).Return(money("0"), expectedError).Once()

	_, err := payouts.Stats(ctx, 9)

	assert.ErrorIs(t, err, expectedError)
}
