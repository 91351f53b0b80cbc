package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jeffleon2/draftea-payout-service/internal/models"
	"github.com/shopspring/decimal"
)

// PayoutService exposes the vendor view of cash-out requests: statistics, history,
// vendor-initiated requests and admin status updates.
type PayoutService struct {
	Repos   Repositories
	CashOut *CashOutService
	Clock   func() time.Time
}

// NewPayoutService creates a PayoutService that delegates decisions to the cash-out engine.
func NewPayoutService(repos Repositories, cashOut *CashOutService) *PayoutService {
	return &PayoutService{
		Repos:   repos,
		CashOut: cashOut,
		Clock:   time.Now,
	}
}

// Stats aggregates the payout figures of a vendor. It is a point-in-time read.
func (s *PayoutService) Stats(ctx context.Context, vendorID uint) (*models.PayoutStats, error) {
	vendor, err := s.vendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	wallet, err := s.CashOut.walletOf(ctx, vendor.OwnerID)
	if err != nil {
		return nil, err
	}

	earnings, err := s.Repos.Orders.SumCompletedTotal(ctx, vendor.ID)
	if err != nil {
		return nil, fmt.Errorf("error summing earnings of vendor %d: %w", vendor.ID, err)
	}

	withdrawn, err := s.Repos.CashOuts.SumAmount(ctx, models.CashOutFilter{VendorID: &vendor.ID, Status: models.CashOutStatusApproved})
	if err != nil {
		return nil, fmt.Errorf("error summing approved payouts of vendor %d: %w", vendor.ID, err)
	}

	pending, err := s.Repos.CashOuts.SumAmount(ctx, models.CashOutFilter{VendorID: &vendor.ID, Status: models.CashOutStatusPending})
	if err != nil {
		return nil, fmt.Errorf("error summing pending payouts of vendor %d: %w", vendor.ID, err)
	}

	monthStart := startOfMonth(s.Clock())
	thisMonth, err := s.Repos.CashOuts.Count(ctx, models.CashOutFilter{VendorID: &vendor.ID, CreatedSince: &monthStart})
	if err != nil {
		return nil, fmt.Errorf("error counting payouts of vendor %d: %w", vendor.ID, err)
	}

	return &models.PayoutStats{
		VendorID:          vendor.ID,
		AvailableBalance:  wallet.Balance,
		TotalEarnings:     earnings,
		TotalWithdrawn:    withdrawn,
		PendingPayouts:    pending,
		RequestsThisMonth: thisMonth,
	}, nil
}

// History lists the payout requests attributed to a vendor.
func (s *PayoutService) History(ctx context.Context, vendorID uint, status models.CashOutStatus, page models.PageRequest) ([]models.CashOutRequest, models.Pagination, error) {
	return s.CashOut.ListRequests(ctx, models.CashOutFilter{VendorID: &vendorID, Status: status}, page)
}

// CreateVendorRequest opens a payout request on behalf of a vendor. The request belongs
// to the vendor owner and is rejected while another one of the vendor is pending.
func (s *PayoutService) CreateVendorRequest(ctx context.Context, vendorID uint, amount decimal.Decimal, reason string) (*models.CashOutRequest, error) {
	if !validAmount(amount) {
		return nil, ErrInvalidAmount
	}

	vendor, err := s.vendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	wallet, err := s.CashOut.walletOf(ctx, vendor.OwnerID)
	if err != nil {
		return nil, err
	}

	pending, err := s.Repos.CashOuts.Count(ctx, models.CashOutFilter{VendorID: &vendor.ID, Status: models.CashOutStatusPending})
	if err != nil {
		return nil, fmt.Errorf("error counting pending payouts of vendor %d: %w", vendor.ID, err)
	}
	if pending > 0 {
		return nil, ErrDuplicatePendingRequest
	}

	if !wallet.CanCover(amount) {
		return nil, &InsufficientBalanceError{Balance: wallet.Balance, Requested: amount}
	}

	owner, err := s.Repos.Users.GetByID(ctx, vendor.OwnerID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error loading owner of vendor %d: %w", vendor.ID, err)
	}

	req, err := s.CashOut.admit(ctx, owner.ID, &vendor.ID, amount, reason)
	if err != nil {
		return nil, err
	}
	req.User = owner.Summary()

	return req, nil
}

// UpdateStatus applies an admin decision to a payout request.
func (s *PayoutService) UpdateStatus(ctx context.Context, payoutID uint, status models.CashOutStatus, reason *string) (*models.CashOutDecision, error) {
	switch status {
	case models.CashOutStatusApproved:
		return s.CashOut.ApproveRequest(ctx, payoutID)
	case models.CashOutStatusRejected:
		req, err := s.CashOut.RejectRequest(ctx, payoutID, reason)
		if err != nil {
			return nil, err
		}
		return &models.CashOutDecision{Request: req}, nil
	default:
		return nil, ErrInvalidStatus
	}
}

func (s *PayoutService) vendor(ctx context.Context, vendorID uint) (*models.Vendor, error) {
	vendor, err := s.Repos.Vendors.GetByID(ctx, vendorID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrVendorNotFound
		}
		return nil, fmt.Errorf("error loading vendor %d: %w", vendorID, err)
	}
	return vendor, nil
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
