package models

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	CashOutRequestedTopic = "cashout.requested"
	CashOutApprovedTopic  = "cashout.approved"
	CashOutRejectedTopic  = "cashout.rejected"
	CashOutDLQTopic       = "cashout.dlq"
)

type CashOutEvent struct {
	ID            string          `json:"id"`
	RequestID     uint            `json:"request_id"`
	UserID        uint            `json:"user_id"`
	VendorID      *uint           `json:"vendor_id,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Status        CashOutStatus   `json:"status"`
	Reason        string          `json:"reason,omitempty"`
	WalletID      uint            `json:"wallet_id,omitempty"`
	TransactionID uint            `json:"transaction_id,omitempty"`
	TraceID       string          `json:"trace_id"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

func NewCashOutEvent(req *CashOutRequest) CashOutEvent {
	return CashOutEvent{
		ID:         uuid.New().String(),
		RequestID:  req.ID,
		UserID:     req.UserID,
		VendorID:   req.VendorID,
		Amount:     req.Amount,
		Status:     req.Status,
		Reason:     req.Reason,
		TraceID:    uuid.New().String(),
		OccurredAt: time.Now().UTC(),
	}
}

// MessageKey partitions events by request.
func (e CashOutEvent) MessageKey() string {
	return strconv.FormatUint(uint64(e.RequestID), 10)
}

type DLQMessage struct {
	OriginalTopic string    `json:"original_topic"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Timestamp     time.Time `json:"timestamp"`
	Attempts      int       `json:"attempts"`
}

func (m DLQMessage) MessageKey() string {
	return m.Key
}
