package service

import (
	"context"
	"fmt"

	"github.com/jeffleon2/draftea-payout-service/internal/models"
)

// WalletService serves read-only wallet and ledger views.
type WalletService struct {
	Repos Repositories
}

func NewWalletService(repos Repositories) *WalletService {
	return &WalletService{Repos: repos}
}

func (s *WalletService) GetByUser(ctx context.Context, userID uint) (*models.Wallet, error) {
	wallet, err := s.Repos.Wallets.GetByUserID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("error loading wallet of user %d: %w", userID, err)
	}
	return wallet, nil
}

// Transactions lists the ledger entries of a user's wallet, newest first.
func (s *WalletService) Transactions(ctx context.Context, userID uint, page models.PageRequest) ([]models.Transaction, models.Pagination, error) {
	wallet, err := s.GetByUser(ctx, userID)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	entries, total, err := s.Repos.Transactions.ListByWallet(ctx, wallet.ID, page)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("error listing transactions of wallet %d: %w", wallet.ID, err)
	}
	if entries == nil {
		entries = []models.Transaction{}
	}
	return entries, models.NewPagination(page, total), nil
}
