package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CashOutStatus string

const (
	CashOutStatusPending  CashOutStatus = "pending"
	CashOutStatusApproved CashOutStatus = "approved"
	CashOutStatusRejected CashOutStatus = "rejected"
)

// IsTerminal reports whether no further transition is allowed from s.
// Anything other than pending is terminal.
func (s CashOutStatus) IsTerminal() bool {
	return s != CashOutStatusPending
}

type CashOutRequest struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	UserID    uint            `gorm:"not null;index" json:"user_id"`
	VendorID  *uint           `gorm:"index" json:"vendor_id"`
	Amount    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Reason    string          `gorm:"type:text" json:"reason"`
	Status    CashOutStatus   `gorm:"size:20;not null;default:'pending';index" json:"status"`
	CreatedAt time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	User *UserSummary `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (CashOutRequest) TableName() string {
	return "cash_out_requests"
}

// CashOutFilter narrows request listings and aggregates. Zero fields are ignored.
type CashOutFilter struct {
	UserID       *uint
	VendorID     *uint
	Status       CashOutStatus
	CreatedSince *time.Time
}

// CashOutDecision is the outcome of an admin decision on a request.
// Wallet and Transaction are only set on approval.
type CashOutDecision struct {
	Request     *CashOutRequest `json:"request"`
	Wallet      *Wallet         `json:"wallet,omitempty"`
	Transaction *Transaction    `json:"transaction,omitempty"`
}

type PayoutStats struct {
	VendorID          uint            `json:"vendor_id"`
	AvailableBalance  decimal.Decimal `json:"available_balance"`
	TotalEarnings     decimal.Decimal `json:"total_earnings"`
	TotalWithdrawn    decimal.Decimal `json:"total_withdrawn"`
	PendingPayouts    decimal.Decimal `json:"pending_payouts"`
	RequestsThisMonth int64           `json:"requests_this_month"`
}
