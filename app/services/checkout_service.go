package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopmind/go-storefront/app/apperrors"
	"github.com/shopmind/go-storefront/app/models"
	"github.com/shopmind/go-storefront/app/repositories"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CheckoutService struct {
	db           *gorm.DB
	cartRepo     repositories.CartRepositoryImpl
	cartItemRepo repositories.CartItemRepositoryImpl
	purchaseRepo repositories.PurchaseRepositoryImpl
}

func NewCheckoutService(
	db *gorm.DB,
	cartRepo repositories.CartRepositoryImpl,
	cartItemRepo repositories.CartItemRepositoryImpl,
	purchaseRepo repositories.PurchaseRepositoryImpl,
) *CheckoutService {
	return &CheckoutService{
		db:           db,
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		purchaseRepo: purchaseRepo,
	}
}

// Checkout turns the customer's cart into an immutable purchase record
// and empties the cart, all inside one transaction. The purchase detail
// values are the cart's last-known-good values copied verbatim; nothing
// is recomputed. Any failure rolls the whole sequence back.
func (s *CheckoutService) Checkout(ctx context.Context, customerID string) (*models.PurchaseHeader, error) {
	var header *models.PurchaseHeader

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart, err := s.cartRepo.GetByCustomerIDWithItems(ctx, tx, customerID)
		if err != nil {
			return fmt.Errorf("failed to load cart: %w", err)
		}
		if cart == nil || len(cart.CartItems) == 0 {
			return apperrors.Validation("Your cart is empty!")
		}

		h := &models.PurchaseHeader{
			CustomerID:   customerID,
			PurchaseDate: time.Now(),
			Total:        cart.Total,
			Discount:     cart.Discount,
		}
		if err := s.purchaseRepo.CreateHeader(ctx, tx, h); err != nil {
			return fmt.Errorf("failed to create purchase header: %w", err)
		}

		details := make([]models.PurchaseDetail, 0, len(cart.CartItems))
		for _, item := range cart.CartItems {
			description := ""
			if item.Product != nil {
				description = item.Product.Description
			}
			details = append(details, models.PurchaseDetail{
				PurchaseHeaderID: h.ID,
				ProductID:        item.ProductID,
				Description:      description,
				Qty:              item.Qty,
				Price:            item.Price,
				Discount:         item.Discount,
				LineTotal:        item.LineTotal,
			})
		}
		if err := s.purchaseRepo.BulkCreateDetails(ctx, tx, details); err != nil {
			return fmt.Errorf("failed to create purchase details: %w", err)
		}

		if err := s.cartItemRepo.ClearByCartID(ctx, tx, cart.ID); err != nil {
			return fmt.Errorf("failed to clear cart items: %w", err)
		}
		if err := s.cartRepo.UpdateTotals(ctx, tx, cart.ID, decimal.Zero, decimal.Zero); err != nil {
			return fmt.Errorf("failed to reset cart totals: %w", err)
		}

		header = h
		return nil
	})
	if err != nil {
		return nil, err
	}

	return header, nil
}

// History lists the customer's purchase headers, newest first.
func (s *CheckoutService) History(ctx context.Context, customerID string) ([]models.PurchaseHeader, error) {
	return s.purchaseRepo.FindByCustomerID(ctx, customerID)
}

// PurchaseDetails returns one purchase with its frozen line items.
// Only the owning customer may read it.
func (s *CheckoutService) PurchaseDetails(ctx context.Context, customerID, purchaseID string) (*models.PurchaseHeader, error) {
	header, err := s.purchaseRepo.GetByID(ctx, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load purchase: %w", err)
	}
	if header == nil {
		return nil, apperrors.NotFound("Purchase not found.")
	}
	if header.CustomerID != customerID {
		return nil, apperrors.Unauthorized("Purchase does not belong to you.")
	}
	return header, nil
}
