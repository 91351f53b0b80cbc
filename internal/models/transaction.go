package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string
type TransactionStatus string

const (
	TransactionTypeCredit TransactionType = "credit"
	TransactionTypeDebit  TransactionType = "debit"

	TransactionStatusCompleted TransactionStatus = "completed"
)

// Transaction is a ledger entry. Rows are inserted once and never updated.
type Transaction struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	Type      TransactionType   `gorm:"size:10;not null" json:"type"`
	Amount    decimal.Decimal   `gorm:"type:numeric(12,2);not null" json:"amount"`
	Reason    string            `gorm:"type:text" json:"reason"`
	Status    TransactionStatus `gorm:"size:20;not null" json:"status"`
	WalletID  uint              `gorm:"not null;index" json:"wallet_id"`
	CreatedAt time.Time         `json:"created_at"`
}
