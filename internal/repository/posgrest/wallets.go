package posgrest

import (
	"context"

	"github.com/jeffleon2/draftea-payout-service/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type WalletRepository struct {
	*repository[models.Wallet]
}

func NewWalletRepository(db *gorm.DB) *WalletRepository {
	return &WalletRepository{New[models.Wallet](db)}
}

func (r *WalletRepository) GetByUserID(ctx context.Context, userID uint) (*models.Wallet, error) {
	return r.FirstBy(ctx, "user_id = ?", userID)
}

func (r *WalletRepository) GetByUserIDForUpdate(ctx context.Context, userID uint) (*models.Wallet, error) {
	return r.FirstByForUpdate(ctx, "user_id = ?", userID)
}

// Debit subtracts amount in a single statement guarded on the balance, so the
// balance can not go negative even if the caller's snapshot is stale.
func (r *WalletRepository) Debit(ctx context.Context, walletID uint, amount decimal.Decimal) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Wallet{}).
		Where("id = ? AND balance >= ?", walletID, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// TransactionRepository is the append-only ledger: entries are created and listed, never changed.
type TransactionRepository struct {
	*repository[models.Transaction]
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{New[models.Transaction](db)}
}

func (r *TransactionRepository) ListByWallet(ctx context.Context, walletID uint, page models.PageRequest) ([]models.Transaction, int64, error) {
	query := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&models.Transaction{}).Where("wallet_id = ?", walletID)
	}

	var total int64
	if err := query().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []models.Transaction
	err := query().
		Order("created_at DESC, id DESC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
