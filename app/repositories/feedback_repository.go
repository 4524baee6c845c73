package repositories

import (
	"context"
	"errors"

	"github.com/shopmind/go-storefront/app/models"
	"gorm.io/gorm"
)

type FeedbackRepositoryImpl interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	FindByCustomerAndProduct(ctx context.Context, customerID, productID string) (*models.Feedback, error)
	ListByProduct(ctx context.Context, productID string) ([]models.Feedback, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepositoryImpl {
	return &feedbackRepository{db}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *feedbackRepository) FindByCustomerAndProduct(ctx context.Context, customerID, productID string) (*models.Feedback, error) {
	var feedback models.Feedback
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND product_id = ?", customerID, productID).
		First(&feedback).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &feedback, nil
}

func (r *feedbackRepository) ListByProduct(ctx context.Context, productID string) ([]models.Feedback, error) {
	var feedbacks []models.Feedback
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&feedbacks).Error
	if err != nil {
		return nil, err
	}
	return feedbacks, nil
}
