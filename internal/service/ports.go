package service

import (
	"context"

	"github.com/jeffleon2/draftea-payout-service/internal/models"
	"github.com/shopspring/decimal"
)

type UserRepo interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
}

type VendorRepo interface {
	GetByID(ctx context.Context, id uint) (*models.Vendor, error)
	GetByOwnerID(ctx context.Context, ownerID uint) (*models.Vendor, error)
}

// WalletRepo reads wallets and applies guarded debits. Debit reports false
// when the wallet no longer covers the amount.
type WalletRepo interface {
	GetByUserID(ctx context.Context, userID uint) (*models.Wallet, error)
	GetByUserIDForUpdate(ctx context.Context, userID uint) (*models.Wallet, error)
	Debit(ctx context.Context, walletID uint, amount decimal.Decimal) (bool, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, entry *models.Transaction) error
	ListByWallet(ctx context.Context, walletID uint, page models.PageRequest) ([]models.Transaction, int64, error)
}

// CashOutRepo persists cash-out requests. UpdateStatus only touches rows still in
// the from status and reports whether a row changed.
type CashOutRepo interface {
	Create(ctx context.Context, req *models.CashOutRequest) error
	GetByID(ctx context.Context, id uint) (*models.CashOutRequest, error)
	GetForUpdate(ctx context.Context, id uint) (*models.CashOutRequest, error)
	List(ctx context.Context, filter models.CashOutFilter, page models.PageRequest) ([]models.CashOutRequest, int64, error)
	Count(ctx context.Context, filter models.CashOutFilter) (int64, error)
	SumAmount(ctx context.Context, filter models.CashOutFilter) (decimal.Decimal, error)
	UpdateStatus(ctx context.Context, id uint, from, to models.CashOutStatus, reason *string) (bool, error)
}

type OrderRepo interface {
	SumCompletedTotal(ctx context.Context, vendorID uint) (decimal.Decimal, error)
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// TxRepos are the repositories bound to a single database transaction.
type TxRepos struct {
	CashOuts     CashOutRepo
	Wallets      WalletRepo
	Transactions TransactionRepo
}

// Transactor runs fn as one atomic unit of work: every write made through the
// repos handed to fn commits together, or none do when fn returns an error.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(repos TxRepos) error) error
}

// Repositories groups the non-transactional repositories the services read from.
type Repositories struct {
	Users        UserRepo
	Vendors      VendorRepo
	Wallets      WalletRepo
	Transactions TransactionRepo
	CashOuts     CashOutRepo
	Orders       OrderRepo
}
