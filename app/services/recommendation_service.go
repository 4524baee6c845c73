package services

import (
	"context"
	"log"

	"github.com/shopmind/go-storefront/app/models"
	"github.com/shopmind/go-storefront/app/repositories"
)

// MaxRecommendations bounds the list length the provider may return.
const MaxRecommendations = 3

// RecommendationProvider suggests products for a customer. No failure
// is fatal: implementations return an empty list instead of an error.
type RecommendationProvider interface {
	Recommend(ctx context.Context, customerID string) []models.Product
}

// CatalogRecommendationService is the current placeholder ranking: the
// first MaxRecommendations catalog entries in insertion order.
type CatalogRecommendationService struct {
	productRepo repositories.ProductRepositoryImpl
}

func NewCatalogRecommendationService(productRepo repositories.ProductRepositoryImpl) *CatalogRecommendationService {
	return &CatalogRecommendationService{productRepo: productRepo}
}

func (s *CatalogRecommendationService) Recommend(ctx context.Context, customerID string) []models.Product {
	products, err := s.productRepo.GetProducts(ctx, MaxRecommendations)
	if err != nil {
		log.Printf("CatalogRecommendationService: failed to load products for customer %s: %v", customerID, err)
		return []models.Product{}
	}
	if products == nil {
		return []models.Product{}
	}
	return products
}
