package repositories

import (
	"context"
	"errors"

	"github.com/shopmind/go-storefront/app/models"
	"gorm.io/gorm"
)

type CustomerRepositoryImpl interface {
	Create(ctx context.Context, tx *gorm.DB, customer *models.Customer) error
	FindByID(ctx context.Context, id string) (*models.Customer, error)
	FindByUserID(ctx context.Context, userID string) (*models.Customer, error)
	GetAll(ctx context.Context) ([]models.Customer, error)
	UpdateContactAndAddress(ctx context.Context, customerID, contact, address string) error
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepositoryImpl {
	return &customerRepository{db}
}

func (r *customerRepository) Create(ctx context.Context, tx *gorm.DB, customer *models.Customer) error {
	return tx.WithContext(ctx).Create(customer).Error
}

func (r *customerRepository) FindByID(ctx context.Context, id string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) FindByUserID(ctx context.Context, userID string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).First(&customer, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) GetAll(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.db.WithContext(ctx).Preload("User").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *customerRepository) UpdateContactAndAddress(ctx context.Context, customerID, contact, address string) error {
	return r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("id = ?", customerID).
		Updates(map[string]interface{}{
			"contact": contact,
			"address": address,
		}).Error
}
