package repositories

import (
	"context"
	"errors"

	"github.com/shopmind/go-storefront/app/models"
	"gorm.io/gorm"
)

type CartItemRepositoryImpl interface {
	Save(ctx context.Context, tx *gorm.DB, item *models.CartItem) error
	Delete(ctx context.Context, tx *gorm.DB, id string) error
	GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.CartItem, error)
	GetByCartAndProduct(ctx context.Context, tx *gorm.DB, cartID, productID string) (*models.CartItem, error)
	ListByCartID(ctx context.Context, tx *gorm.DB, cartID string) ([]models.CartItem, error)
	ClearByCartID(ctx context.Context, tx *gorm.DB, cartID string) error
}

type cartItemRepository struct {
	db *gorm.DB
}

func NewCartItemRepository(db *gorm.DB) CartItemRepositoryImpl {
	return &cartItemRepository{db}
}

func (r *cartItemRepository) Save(ctx context.Context, tx *gorm.DB, item *models.CartItem) error {
	return tx.WithContext(ctx).Save(item).Error
}

func (r *cartItemRepository) Delete(ctx context.Context, tx *gorm.DB, id string) error {
	return tx.WithContext(ctx).Delete(&models.CartItem{}, "id = ?", id).Error
}

func (r *cartItemRepository) GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.CartItem, error) {
	var item models.CartItem
	err := tx.WithContext(ctx).Preload("Cart").First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *cartItemRepository) GetByCartAndProduct(ctx context.Context, tx *gorm.DB, cartID, productID string) (*models.CartItem, error) {
	var item models.CartItem
	err := tx.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *cartItemRepository) ListByCartID(ctx context.Context, tx *gorm.DB, cartID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := tx.WithContext(ctx).Where("cart_id = ?", cartID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *cartItemRepository) ClearByCartID(ctx context.Context, tx *gorm.DB, cartID string) error {
	return tx.WithContext(ctx).Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}
