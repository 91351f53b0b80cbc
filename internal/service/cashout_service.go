package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jeffleon2/draftea-payout-service/internal/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CashOutService is the payout request engine. It admits withdrawal requests
// against a wallet balance and applies admin decisions on them.
//
// Admission is optimistic: creating a request only checks the balance, it does not
// hold funds, so several pending requests may together exceed the wallet. The
// binding check happens again on approval, inside the same database transaction
// that flips the status, debits the wallet and writes the ledger entry.
type CashOutService struct {
	Repos      Repositories
	Transactor Transactor
	Publisher  Publisher
}

// NewCashOutService creates a CashOutService backed by the given repositories.
// The transactor scopes the approval writes; the publisher receives lifecycle events.
func NewCashOutService(repos Repositories, transactor Transactor, publisher Publisher) *CashOutService {
	return &CashOutService{
		Repos:      repos,
		Transactor: transactor,
		Publisher:  publisher,
	}
}

// CreateRequest admits a pending cash-out request for userID.
//
// Requests from vendor owners are attributed to their vendor. No wallet mutation
// happens here.
func (s *CashOutService) CreateRequest(ctx context.Context, userID uint, amount decimal.Decimal, reason string) (*models.CashOutRequest, error) {
	if !validAmount(amount) {
		return nil, ErrInvalidAmount
	}

	user, err := s.Repos.Users.GetByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error loading user %d: %w", userID, err)
	}

	wallet, err := s.walletOf(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	if !wallet.CanCover(amount) {
		return nil, &InsufficientBalanceError{Balance: wallet.Balance, Requested: amount}
	}

	var vendorID *uint
	if user.Type == models.UserTypeVendorOwner {
		vendor, err := s.Repos.Vendors.GetByOwnerID(ctx, user.ID)
		switch {
		case err == nil:
			vendorID = &vendor.ID
		case isNotFound(err):
			logrus.Warnf("vendor owner %d has no vendor record, request left unattributed", user.ID)
		default:
			return nil, fmt.Errorf("error loading vendor of user %d: %w", user.ID, err)
		}
	}

	req, err := s.admit(ctx, user.ID, vendorID, amount, reason)
	if err != nil {
		return nil, err
	}
	req.User = user.Summary()

	return req, nil
}

// ApproveRequest approves a pending request and debits the requester's wallet.
//
// The status flip, the wallet debit and the ledger insert commit together. When
// any of them fails nothing is written, so the request stays pending and the call
// can be retried.
func (s *CashOutService) ApproveRequest(ctx context.Context, requestID uint) (*models.CashOutDecision, error) {
	var decision *models.CashOutDecision

	err := s.Transactor.WithinTransaction(ctx, func(tx TxRepos) error {
		req, err := tx.CashOuts.GetForUpdate(ctx, requestID)
		if err != nil {
			if isNotFound(err) {
				return ErrCashOutNotFound
			}
			return fmt.Errorf("error loading cashout request %d: %w", requestID, err)
		}

		if req.Status.IsTerminal() {
			return &StateTransitionError{RequestID: req.ID, Target: models.CashOutStatusApproved, Current: req.Status}
		}

		wallet, err := tx.Wallets.GetByUserIDForUpdate(ctx, req.UserID)
		if err != nil {
			if isNotFound(err) {
				return ErrWalletNotFound
			}
			return fmt.Errorf("error loading wallet of user %d: %w", req.UserID, err)
		}

		if !wallet.CanCover(req.Amount) {
			return &InsufficientBalanceError{Balance: wallet.Balance, Requested: req.Amount}
		}

		updated, err := tx.CashOuts.UpdateStatus(ctx, req.ID, models.CashOutStatusPending, models.CashOutStatusApproved, nil)
		if err != nil {
			return fmt.Errorf("error approving cashout request %d: %w", req.ID, err)
		}
		if !updated {
			current, err := tx.CashOuts.GetByID(ctx, req.ID)
			if err != nil {
				return fmt.Errorf("error reloading cashout request %d: %w", req.ID, err)
			}
			return &StateTransitionError{RequestID: req.ID, Target: models.CashOutStatusApproved, Current: current.Status}
		}

		debited, err := tx.Wallets.Debit(ctx, wallet.ID, req.Amount)
		if err != nil {
			return fmt.Errorf("error debiting wallet %d: %w", wallet.ID, err)
		}
		if !debited {
			return &InsufficientBalanceError{Balance: wallet.Balance, Requested: req.Amount}
		}

		entry := &models.Transaction{
			Type:     models.TransactionTypeDebit,
			Amount:   req.Amount,
			Reason:   approvalReason(req),
			Status:   models.TransactionStatusCompleted,
			WalletID: wallet.ID,
		}
		if err := tx.Transactions.Create(ctx, entry); err != nil {
			return fmt.Errorf("error recording ledger entry for cashout request %d: %w", req.ID, err)
		}

		req.Status = models.CashOutStatusApproved
		wallet.Balance = wallet.Balance.Sub(req.Amount)

		decision = &models.CashOutDecision{
			Request:     req,
			Wallet:      wallet,
			Transaction: entry,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	event := models.NewCashOutEvent(decision.Request)
	event.WalletID = decision.Wallet.ID
	event.TransactionID = decision.Transaction.ID
	s.publish(ctx, models.CashOutApprovedTopic, event)

	return decision, nil
}

// RejectRequest rejects a pending request. A non-nil reason replaces the stored one.
// Rejection never touches the wallet or the ledger.
func (s *CashOutService) RejectRequest(ctx context.Context, requestID uint, reason *string) (*models.CashOutRequest, error) {
	req, err := s.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if req.Status.IsTerminal() {
		return nil, &StateTransitionError{RequestID: req.ID, Target: models.CashOutStatusRejected, Current: req.Status}
	}

	updated, err := s.Repos.CashOuts.UpdateStatus(ctx, req.ID, models.CashOutStatusPending, models.CashOutStatusRejected, reason)
	if err != nil {
		return nil, fmt.Errorf("error rejecting cashout request %d: %w", req.ID, err)
	}
	if !updated {
		// decided concurrently, report what won
		current, err := s.GetRequest(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		return nil, &StateTransitionError{RequestID: req.ID, Target: models.CashOutStatusRejected, Current: current.Status}
	}

	req.Status = models.CashOutStatusRejected
	if reason != nil {
		req.Reason = *reason
	}

	s.publish(ctx, models.CashOutRejectedTopic, models.NewCashOutEvent(req))

	return req, nil
}

// GetRequest returns a request with its requester summary.
func (s *CashOutService) GetRequest(ctx context.Context, requestID uint) (*models.CashOutRequest, error) {
	req, err := s.Repos.CashOuts.GetByID(ctx, requestID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrCashOutNotFound
		}
		return nil, fmt.Errorf("error loading cashout request %d: %w", requestID, err)
	}
	return req, nil
}

// ListRequests returns one page of requests matching filter, newest first.
func (s *CashOutService) ListRequests(ctx context.Context, filter models.CashOutFilter, page models.PageRequest) ([]models.CashOutRequest, models.Pagination, error) {
	items, total, err := s.Repos.CashOuts.List(ctx, filter, page)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("error listing cashout requests: %w", err)
	}
	if items == nil {
		items = []models.CashOutRequest{}
	}
	return items, models.NewPagination(page, total), nil
}

func (s *CashOutService) admit(ctx context.Context, userID uint, vendorID *uint, amount decimal.Decimal, reason string) (*models.CashOutRequest, error) {
	req := &models.CashOutRequest{
		UserID:   userID,
		VendorID: vendorID,
		Amount:   amount,
		Reason:   reason,
		Status:   models.CashOutStatusPending,
	}

	if err := s.Repos.CashOuts.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("error creating cashout request: %w", err)
	}

	s.publish(ctx, models.CashOutRequestedTopic, models.NewCashOutEvent(req))

	return req, nil
}

func (s *CashOutService) walletOf(ctx context.Context, userID uint) (*models.Wallet, error) {
	wallet, err := s.Repos.Wallets.GetByUserID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("error loading wallet of user %d: %w", userID, err)
	}
	return wallet, nil
}

// publish runs after the state change is committed, so a failure is logged and not returned.
func (s *CashOutService) publish(ctx context.Context, topic string, event models.CashOutEvent) {
	if err := s.Publisher.Publish(ctx, topic, event); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"topic":      topic,
			"request_id": event.RequestID,
		}).Error("Error publishing cashout event")
	}
}

func approvalReason(req *models.CashOutRequest) string {
	if req.Reason == "" {
		return fmt.Sprintf("Cash out approved: request #%d", req.ID)
	}
	return fmt.Sprintf("Cash out approved: %s", req.Reason)
}

// maxAmount is the exclusive bound of the numeric(12,2) money columns.
var maxAmount = decimal.New(1, 10)

// validAmount accepts positive amounts in whole cents that fit the money columns.
func validAmount(amount decimal.Decimal) bool {
	return amount.IsPositive() &&
		amount.Equal(amount.Truncate(2)) &&
		amount.LessThan(maxAmount)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
