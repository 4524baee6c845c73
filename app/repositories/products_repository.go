package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/shopmind/go-storefront/app/models"
	"gorm.io/gorm"
)

type ProductRepositoryImpl interface {
	GetProducts(ctx context.Context, limit int) ([]models.Product, error)
	SearchByDescription(ctx context.Context, keyword string) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetByIDTx(ctx context.Context, tx *gorm.DB, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func (p *productRepository) GetProducts(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	q := p.db.WithContext(ctx).Model(&models.Product{}).Order("created_at")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (p *productRepository) SearchByDescription(ctx context.Context, keyword string) ([]models.Product, error) {
	var products []models.Product
	searchKeyword := "%" + strings.ToLower(keyword) + "%"

	err := p.db.WithContext(ctx).
		Where("LOWER(description) LIKE ?", searchKeyword).
		Order("created_at").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (p *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	return p.GetByIDTx(ctx, p.db, id)
}

func (p *productRepository) GetByIDTx(ctx context.Context, tx *gorm.DB, id string) (*models.Product, error) {
	var product models.Product
	err := tx.WithContext(ctx).First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) Create(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Create(product).Error
}

func (p *productRepository) Update(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Save(product).Error
}

func (p *productRepository) Delete(ctx context.Context, id string) error {
	return p.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id).Error
}
