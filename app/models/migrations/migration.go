package migrations

import (
	"github.com/shopmind/go-storefront/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.PurchaseHeader{},
		&models.PurchaseDetail{},
		&models.Feedback{},
	)
}
