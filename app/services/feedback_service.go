package services

import (
	"context"
	"fmt"
	"log"

	"github.com/shopmind/go-storefront/app/apperrors"
	"github.com/shopmind/go-storefront/app/models"
	"github.com/shopmind/go-storefront/app/repositories"
)

type FeedbackService struct {
	feedbackRepo repositories.FeedbackRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
	classifier   SentimentClassifier
}

func NewFeedbackService(
	feedbackRepo repositories.FeedbackRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	classifier SentimentClassifier,
) *FeedbackService {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		productRepo:  productRepo,
		classifier:   classifier,
	}
}

// Submit records one feedback row per (customer, product). On a
// duplicate it returns the existing row together with a Conflict error
// so the caller can echo the previous comments and sentiment. The
// existence check is best-effort; the unique index is what actually
// enforces the rule, so a racing insert is re-read and reported the
// same way.
func (s *FeedbackService) Submit(ctx context.Context, customerID, productID, comments string) (*models.Feedback, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product %s: %w", productID, err)
	}
	if product == nil {
		return nil, apperrors.NotFound("Product not found.")
	}

	existing, err := s.feedbackRepo.FindByCustomerAndProduct(ctx, customerID, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing feedback: %w", err)
	}
	if existing != nil {
		return existing, apperrors.Conflict("You have already submitted feedback for this product. You can update your existing feedback.")
	}

	score, label := s.classify(comments)

	feedback := &models.Feedback{
		CustomerID:     customerID,
		ProductID:      productID,
		Comments:       comments,
		Sentiment:      label,
		SentimentScore: score,
	}

	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		// A concurrent submission may have slipped past the existence
		// check and tripped the unique index.
		existing, findErr := s.feedbackRepo.FindByCustomerAndProduct(ctx, customerID, productID)
		if findErr == nil && existing != nil {
			return existing, apperrors.Conflict("You have already submitted feedback for this product. You can update your existing feedback.")
		}
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}

	return feedback, nil
}

// ListForProduct returns a product's feedback, newest first.
func (s *FeedbackService) ListForProduct(ctx context.Context, productID string) ([]models.Feedback, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product %s: %w", productID, err)
	}
	if product == nil {
		return nil, apperrors.NotFound("Product not found.")
	}
	return s.feedbackRepo.ListByProduct(ctx, productID)
}

// classify degrades to Neutral/0 on classifier failure; a broken
// sentiment backend must never block a submission.
func (s *FeedbackService) classify(comments string) (float64, string) {
	score, label, err := s.classifier.Classify(comments)
	if err != nil {
		log.Printf("FeedbackService: sentiment classification failed, defaulting to neutral: %v", err)
		return 0, models.SentimentNeutral
	}
	return score, label
}
