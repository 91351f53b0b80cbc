package service_test

import (
	"context"
	"testing"

	"github.com/jeffleon2/draftea-payout-service/internal/models"
	"github.com/jeffleon2/draftea-payout-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestWalletService_GetByUser(t *testing.T) {
	engine, m := newEngine(t)
	wallets := service.NewWalletService(engine.Repos)
	ctx := context.Background()

	m.wallets.EXPECT().GetByUserID(ctx, uint(5)).Return(&models.Wallet{ID: 3, UserID: 5, Balance: money("42.10")}, nil).Once()
	m.wallets.EXPECT().GetByUserID(ctx, uint(6)).Return(nil, gorm.ErrRecordNotFound).Once()

	wallet, err := wallets.GetByUser(ctx, 5)
	require.NoError(t, err)
	assert.True(t, wallet.Balance.Equal(money("42.10")))

	_, err = wallets.GetByUser(ctx, 6)
	assert.ErrorIs(t, err, service.ErrWalletNotFound)
}

func TestWalletService_Transactions(t *testing.T) {
	engine, m := newEngine(t)
	wallets := service.NewWalletService(engine.Repos)
	ctx := context.Background()
	page := models.PageRequest{Page: 2, Limit: 5}

	m.wallets.EXPECT().GetByUserID(ctx, uint(5)).Return(&models.Wallet{ID: 3, UserID: 5}, nil).Once()
	m.ledger.EXPECT().
		ListByWallet(ctx, uint(3), page).
		Return([]models.Transaction{{ID: 10, Type: models.TransactionTypeDebit, WalletID: 3}}, int64(6), nil).
		Once()

	entries, pagination, err := wallets.Transactions(ctx, 5, page)

	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, models.Pagination{Page: 2, Limit: 5, Total: 6, Pages: 2}, pagination)
}

func TestWalletService_TransactionsWithoutWallet(t *testing.T) {
	engine, m := newEngine(t)
	wallets := service.NewWalletService(engine.Repos)
	ctx := context.Background()

	m.wallets.EXPECT().GetByUserID(ctx, uint(5)).Return(nil, gorm.ErrRecordNotFound).Once()

	entries, _, err := wallets.Transactions(ctx, 5, models.PageRequest{Page: 1, Limit: 10})

	assert.Nil(t, entries)
	assert.ErrorIs(t, err, service.ErrWalletNotFound)
}
