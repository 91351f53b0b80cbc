package posgrest

import (
	"context"

	"github.com/jeffleon2/draftea-payout-service/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type UserRepository struct {
	*repository[models.User]
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{New[models.User](db)}
}

type VendorRepository struct {
	*repository[models.Vendor]
}

func NewVendorRepository(db *gorm.DB) *VendorRepository {
	return &VendorRepository{New[models.Vendor](db)}
}

func (r *VendorRepository) GetByOwnerID(ctx context.Context, ownerID uint) (*models.Vendor, error) {
	return r.FirstBy(ctx, "owner_id = ?", ownerID)
}

type OrderRepository struct {
	*repository[models.Order]
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{New[models.Order](db)}
}

// SumCompletedTotal adds up total_amount over the vendor's completed orders.
func (r *OrderRepository) SumCompletedTotal(ctx context.Context, vendorID uint) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("vendor_id = ? AND status = ?", vendorID, models.OrderStatusCompleted).
		Row().
		Scan(&total)
	return total, err
}
