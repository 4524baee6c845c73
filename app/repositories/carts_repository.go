package repositories

import (
	"context"
	"errors"

	"github.com/shopmind/go-storefront/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartRepositoryImpl interface {
	GetOrCreateByCustomerID(ctx context.Context, tx *gorm.DB, customerID string) (*models.Cart, error)
	GetByCustomerIDWithItems(ctx context.Context, tx *gorm.DB, customerID string) (*models.Cart, error)
	UpdateTotals(ctx context.Context, tx *gorm.DB, cartID string, total, discount decimal.Decimal) error
	GetCartItemCount(ctx context.Context, cartID string) (int, error)
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepositoryImpl {
	return &cartRepository{db}
}

// GetOrCreateByCustomerID is a single upsert: the unique index on
// customer_id keeps two concurrent requests from ending up with two
// carts for the same customer.
func (r *cartRepository) GetOrCreateByCustomerID(ctx context.Context, tx *gorm.DB, customerID string) (*models.Cart, error) {
	var cart models.Cart
	err := tx.WithContext(ctx).
		Where(models.Cart{CustomerID: customerID}).
		FirstOrCreate(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) GetByCustomerIDWithItems(ctx context.Context, tx *gorm.DB, customerID string) (*models.Cart, error) {
	var cart models.Cart
	err := tx.WithContext(ctx).
		Preload("CartItems.Product").
		Preload("CartItems").
		First(&cart, "customer_id = ?", customerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// UpdateTotals writes via a map so zero totals (after checkout) are not
// skipped by gorm's zero-value handling.
func (r *cartRepository) UpdateTotals(ctx context.Context, tx *gorm.DB, cartID string, total, discount decimal.Decimal) error {
	return tx.WithContext(ctx).
		Model(&models.Cart{}).
		Where("id = ?", cartID).
		Updates(map[string]interface{}{
			"total":    total,
			"discount": discount,
		}).Error
}

func (r *cartRepository) GetCartItemCount(ctx context.Context, cartID string) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("cart_items").
		Where("cart_id = ?", cartID).
		Count(&count).Error

	return int(count), err
}
