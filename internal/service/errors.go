package service

import (
	"errors"
	"fmt"

	"github.com/jeffleon2/draftea-payout-service/internal/models"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount           = errors.New("amount must be positive with at most two decimals")
	ErrInvalidStatus           = errors.New("status must be approved or rejected")
	ErrUserNotFound            = errors.New("user not found")
	ErrVendorNotFound          = errors.New("vendor not found")
	ErrWalletNotFound          = errors.New("wallet not found")
	ErrCashOutNotFound         = errors.New("cashout request not found")
	ErrDuplicatePendingRequest = errors.New("a pending payout request already exists")
	ErrInsufficientBalance     = errors.New("insufficient balance")
	ErrInvalidStateTransition  = errors.New("invalid state transition")
)

// InsufficientBalanceError carries the figures shown to the client.
type InsufficientBalanceError struct {
	Balance   decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: current %s, requested %s", e.Balance.StringFixed(2), e.Requested.StringFixed(2))
}

func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// StateTransitionError is returned when a decision targets a request that is no longer pending.
type StateTransitionError struct {
	RequestID uint
	Target    models.CashOutStatus
	Current   models.CashOutStatus
}

func (e *StateTransitionError) Error() string {
	return fmt.Sprintf("cashout request %d cannot be %s: current status %s", e.RequestID, e.Target, e.Current)
}

func (e *StateTransitionError) Is(target error) bool {
	return target == ErrInvalidStateTransition
}
