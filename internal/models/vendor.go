package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Vendor struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OwnerID   uint      `gorm:"uniqueIndex;not null" json:"owner_id"`
	Name      string    `gorm:"size:160;not null" json:"name"`
	Status    string    `gorm:"size:20;not null;default:'active'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is only read here, to aggregate vendor earnings.
type Order struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	VendorID    uint            `gorm:"not null;index" json:"vendor_id"`
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_amount"`
	Status      OrderStatus     `gorm:"size:20;not null;index" json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}
