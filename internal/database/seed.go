package database

import (
	"fmt"

	"github.com/jeffleon2/draftea-payout-service/internal/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Seed loads a small marketplace for local runs: a client, a driver and a vendor
// owner with their wallets, plus completed orders so vendor stats have earnings.
// It is idempotent.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		users := []models.User{
			{Name: "Alice Client", Email: "alice@example.com", Phone: "+251911000001", Type: models.UserTypeClient},
			{Name: "Bob Vendor", Email: "bob@example.com", Phone: "+251911000002", Type: models.UserTypeVendorOwner},
			{Name: "Carol Driver", Email: "carol@example.com", Phone: "+251911000003", Type: models.UserTypeDriver},
		}
		balances := []string{"100.00", "2500.00", "320.00"}

		for i := range users {
			if err := tx.Where(models.User{Email: users[i].Email}).FirstOrCreate(&users[i]).Error; err != nil {
				return fmt.Errorf("seeding user %s: %w", users[i].Email, err)
			}

			wallet := models.Wallet{
				UserID:  users[i].ID,
				Balance: decimal.RequireFromString(balances[i]),
				Status:  models.WalletStatusActive,
			}
			if err := tx.Where(models.Wallet{UserID: users[i].ID}).FirstOrCreate(&wallet).Error; err != nil {
				return fmt.Errorf("seeding wallet of %s: %w", users[i].Email, err)
			}
		}

		owner := users[1]
		vendor := models.Vendor{OwnerID: owner.ID, Name: "Bob's Kitchen", Status: "active"}
		if err := tx.Where(models.Vendor{OwnerID: owner.ID}).FirstOrCreate(&vendor).Error; err != nil {
			return fmt.Errorf("seeding vendor: %w", err)
		}

		var orders int64
		if err := tx.Model(&models.Order{}).Where("vendor_id = ?", vendor.ID).Count(&orders).Error; err != nil {
			return fmt.Errorf("counting seeded orders: %w", err)
		}
		if orders == 0 {
			seeded := []models.Order{
				{VendorID: vendor.ID, UserID: users[0].ID, TotalAmount: decimal.RequireFromString("1800.00"), Status: models.OrderStatusCompleted},
				{VendorID: vendor.ID, UserID: users[0].ID, TotalAmount: decimal.RequireFromString("700.00"), Status: models.OrderStatusCompleted},
				{VendorID: vendor.ID, UserID: users[0].ID, TotalAmount: decimal.RequireFromString("45.50"), Status: models.OrderStatusPending},
			}
			if err := tx.Create(&seeded).Error; err != nil {
				return fmt.Errorf("seeding orders: %w", err)
			}
		}

		logrus.Infof("Seeded %d users, vendor %d and their wallets", len(users), vendor.ID)
		return nil
	})
}
