package posgrest

import (
	"context"

	"github.com/jeffleon2/draftea-payout-service/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var userSummaryColumns = []string{"id", "name", "email", "phone", "type"}

type CashOutRepository struct {
	*repository[models.CashOutRequest]
}

func NewCashOutRepository(db *gorm.DB) *CashOutRepository {
	return &CashOutRepository{New[models.CashOutRequest](db)}
}

// GetByID loads a request with its requester summary.
func (r *CashOutRepository) GetByID(ctx context.Context, id uint) (*models.CashOutRequest, error) {
	var req models.CashOutRequest
	err := r.db.WithContext(ctx).
		Preload("User", withUserSummary).
		Where("id = ?", id).
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// GetForUpdate loads a request and locks its row for the surrounding transaction.
func (r *CashOutRepository) GetForUpdate(ctx context.Context, id uint) (*models.CashOutRequest, error) {
	return r.FirstByForUpdate(ctx, "id = ?", id)
}

func (r *CashOutRepository) List(ctx context.Context, filter models.CashOutFilter, page models.PageRequest) ([]models.CashOutRequest, int64, error) {
	query := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&models.CashOutRequest{}).Scopes(filtered(filter))
	}

	var total int64
	if err := query().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.CashOutRequest
	err := query().
		Preload("User", withUserSummary).
		Order("created_at DESC, id DESC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *CashOutRepository) Count(ctx context.Context, filter models.CashOutFilter) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.CashOutRequest{}).
		Scopes(filtered(filter)).
		Count(&total).Error
	return total, err
}

func (r *CashOutRepository) SumAmount(ctx context.Context, filter models.CashOutFilter) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&models.CashOutRequest{}).
		Scopes(filtered(filter)).
		Select("COALESCE(SUM(amount), 0)").
		Row().
		Scan(&total)
	return total, err
}

// UpdateStatus moves a request from one status to another. The status guard in the
// WHERE clause makes concurrent decisions on the same request mutually exclusive.
func (r *CashOutRepository) UpdateStatus(ctx context.Context, id uint, from, to models.CashOutStatus, reason *string) (bool, error) {
	updates := map[string]interface{}{"status": to}
	if reason != nil {
		updates["reason"] = *reason
	}

	res := r.db.WithContext(ctx).
		Model(&models.CashOutRequest{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func filtered(filter models.CashOutFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.UserID != nil {
			db = db.Where("user_id = ?", *filter.UserID)
		}
		if filter.VendorID != nil {
			db = db.Where("vendor_id = ?", *filter.VendorID)
		}
		if filter.Status != "" {
			db = db.Where("status = ?", filter.Status)
		}
		if filter.CreatedSince != nil {
			db = db.Where("created_at >= ?", *filter.CreatedSince)
		}
		return db
	}
}

func withUserSummary(db *gorm.DB) *gorm.DB {
	return db.Select(userSummaryColumns)
}
