package services

import (
	"context"
	"fmt"

	"github.com/shopmind/go-storefront/app/apperrors"
	"github.com/shopmind/go-storefront/app/models"
	"github.com/shopmind/go-storefront/app/repositories"
	"github.com/shopmind/go-storefront/app/utils/calc"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartService owns the cart ledger: every item mutation runs inside one
// transaction and ends with a full re-derivation of the cart totals via
// calc.CartTotals. No entry point may skip that step.
type CartService struct {
	db           *gorm.DB
	cartRepo     repositories.CartRepositoryImpl
	cartItemRepo repositories.CartItemRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
}

func NewCartService(
	db *gorm.DB,
	cartRepo repositories.CartRepositoryImpl,
	cartItemRepo repositories.CartItemRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
) *CartService {
	return &CartService{
		db:           db,
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
	}
}

// AddItem puts one unit of the product into the customer's cart. A new
// line starts at qty=1 with the current catalog price as its permanent
// snapshot; an existing line is incremented. The increment is validated
// against available stock the same way explicit edits are.
func (s *CartService) AddItem(ctx context.Context, customerID, productID string) (*models.Cart, error) {
	var cart *models.Cart

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		product, err := s.productRepo.GetByIDTx(ctx, tx, productID)
		if err != nil {
			return fmt.Errorf("failed to load product %s: %w", productID, err)
		}
		if product == nil {
			return apperrors.NotFound("Product not found.")
		}

		c, err := s.cartRepo.GetOrCreateByCustomerID(ctx, tx, customerID)
		if err != nil {
			return fmt.Errorf("failed to get or create cart: %w", err)
		}

		item, err := s.cartItemRepo.GetByCartAndProduct(ctx, tx, c.ID, productID)
		if err != nil {
			return fmt.Errorf("failed to check existing cart item: %w", err)
		}

		if item == nil {
			item = &models.CartItem{
				CartID:    c.ID,
				ProductID: productID,
				Qty:       1,
				Price:     product.Price,
				Discount:  decimal.Zero,
			}
		} else {
			item.Qty++
		}

		if item.Qty > product.Qty {
			return apperrors.Validationf("Only %d units left in stock.", product.Qty)
		}

		item.LineTotal = calc.LineTotal(item.Price, item.Qty, item.Discount)

		if err := s.cartItemRepo.Save(ctx, tx, item); err != nil {
			return fmt.Errorf("failed to save cart item: %w", err)
		}

		if err := s.recomputeCart(ctx, tx, c); err != nil {
			return err
		}

		cart = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	return cart, nil
}

// UpdateItem sets a new quantity and/or discount on a cart line owned
// by the customer. Validation is strict: qty within [1, stock],
// discount non-negative.
func (s *CartService) UpdateItem(ctx context.Context, customerID, cartItemID string, newQty *int, newDiscount *decimal.Decimal) (*models.CartItem, *models.Cart, error) {
	var (
		item *models.CartItem
		cart *models.Cart
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		item, err = s.getOwnedItem(ctx, tx, customerID, cartItemID)
		if err != nil {
			return err
		}

		product, err := s.productRepo.GetByIDTx(ctx, tx, item.ProductID)
		if err != nil {
			return fmt.Errorf("failed to load product %s: %w", item.ProductID, err)
		}
		if product == nil {
			return apperrors.NotFound("Product for cart item not found.")
		}

		if newQty != nil {
			if *newQty < 1 {
				return apperrors.Validation("Quantity must be at least 1.")
			}
			if *newQty > product.Qty {
				return apperrors.Validationf("Only %d units left in stock.", product.Qty)
			}
			item.Qty = *newQty
		}
		if newDiscount != nil {
			if newDiscount.IsNegative() {
				return apperrors.Validation("Discount cannot be negative.")
			}
			item.Discount = *newDiscount
		}

		item.LineTotal = calc.LineTotal(item.Price, item.Qty, item.Discount)

		if err := s.cartItemRepo.Save(ctx, tx, item); err != nil {
			return fmt.Errorf("failed to update cart item: %w", err)
		}

		cart = item.Cart
		return s.recomputeCart(ctx, tx, cart)
	})
	if err != nil {
		return nil, nil, err
	}

	return item, cart, nil
}

// RemoveItem deletes a cart line owned by the customer and re-derives
// the cart totals from what remains.
func (s *CartService) RemoveItem(ctx context.Context, customerID, cartItemID string) (*models.Cart, error) {
	var cart *models.Cart

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := s.getOwnedItem(ctx, tx, customerID, cartItemID)
		if err != nil {
			return err
		}

		if err := s.cartItemRepo.Delete(ctx, tx, item.ID); err != nil {
			return fmt.Errorf("failed to remove item from cart: %w", err)
		}

		cart = item.Cart
		return s.recomputeCart(ctx, tx, cart)
	})
	if err != nil {
		return nil, err
	}

	return cart, nil
}

// GetCart returns the customer's cart with items, creating an empty one
// lazily on first access.
func (s *CartService) GetCart(ctx context.Context, customerID string) (*models.Cart, error) {
	var cart *models.Cart

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.cartRepo.GetOrCreateByCustomerID(ctx, tx, customerID); err != nil {
			return fmt.Errorf("failed to get or create cart: %w", err)
		}

		c, err := s.cartRepo.GetByCustomerIDWithItems(ctx, tx, customerID)
		if err != nil {
			return fmt.Errorf("failed to load cart with items: %w", err)
		}
		cart = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	return cart, nil
}

func (s *CartService) getOwnedItem(ctx context.Context, tx *gorm.DB, customerID, cartItemID string) (*models.CartItem, error) {
	item, err := s.cartItemRepo.GetByID(ctx, tx, cartItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart item: %w", err)
	}
	if item == nil {
		return nil, apperrors.NotFound("Cart item not found.")
	}
	if item.Cart == nil || item.Cart.CustomerID != customerID {
		return nil, apperrors.Unauthorized("Cart item does not belong to you.")
	}
	return item, nil
}

// ItemCount reports how many lines the customer's cart holds, for the
// cart badge. A customer without a cart yet simply has zero items.
func (s *CartService) ItemCount(ctx context.Context, customerID string) (int, error) {
	cart, err := s.cartRepo.GetByCustomerIDWithItems(ctx, s.db, customerID)
	if err != nil {
		return 0, fmt.Errorf("failed to load cart: %w", err)
	}
	if cart == nil {
		return 0, nil
	}
	return s.cartRepo.GetCartItemCount(ctx, cart.ID)
}

// recomputeCart re-sums all lines into the parent cart and writes the
// result, keeping the denormalized totals consistent with the items.
func (s *CartService) recomputeCart(ctx context.Context, tx *gorm.DB, cart *models.Cart) error {
	items, err := s.cartItemRepo.ListByCartID(ctx, tx, cart.ID)
	if err != nil {
		return fmt.Errorf("failed to list cart items: %w", err)
	}

	total, discount := calc.CartTotals(items)
	if err := s.cartRepo.UpdateTotals(ctx, tx, cart.ID, total, discount); err != nil {
		return fmt.Errorf("failed to update cart totals: %w", err)
	}

	cart.Total = total
	cart.Discount = discount
	cart.CartItems = items
	return nil
}
