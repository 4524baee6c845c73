package repositories

import (
	"context"
	"errors"

	"github.com/shopmind/go-storefront/app/models"
	"gorm.io/gorm"
)

type PurchaseRepositoryImpl interface {
	CreateHeader(ctx context.Context, tx *gorm.DB, header *models.PurchaseHeader) error
	BulkCreateDetails(ctx context.Context, tx *gorm.DB, details []models.PurchaseDetail) error
	FindByCustomerID(ctx context.Context, customerID string) ([]models.PurchaseHeader, error)
	GetByID(ctx context.Context, id string) (*models.PurchaseHeader, error)
}

type purchaseRepository struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) PurchaseRepositoryImpl {
	return &purchaseRepository{db}
}

func (r *purchaseRepository) CreateHeader(ctx context.Context, tx *gorm.DB, header *models.PurchaseHeader) error {
	return tx.WithContext(ctx).Create(header).Error
}

func (r *purchaseRepository) BulkCreateDetails(ctx context.Context, tx *gorm.DB, details []models.PurchaseDetail) error {
	return tx.WithContext(ctx).Create(&details).Error
}

func (r *purchaseRepository) FindByCustomerID(ctx context.Context, customerID string) ([]models.PurchaseHeader, error) {
	var headers []models.PurchaseHeader
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("purchase_date DESC").
		Find(&headers).Error
	if err != nil {
		return nil, err
	}
	return headers, nil
}

func (r *purchaseRepository) GetByID(ctx context.Context, id string) (*models.PurchaseHeader, error) {
	var header models.PurchaseHeader
	err := r.db.WithContext(ctx).
		Preload("Details").
		First(&header, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &header, nil
}
