package services

import (
	"context"
	"testing"

	"github.com/shopmind/go-storefront/app/apperrors"
	"github.com/shopmind/go-storefront/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItemNewLine(t *testing.T) {
	db := setupTestDB(t)
	svc := newCartService(db)
	ctx := context.Background()

	customer := seedCustomer(t, db)
	product := seedProduct(t, db, "Coffee Beans", "10.00", 5)

	cart, err := svc.AddItem(ctx, customer.ID, product.ID)
	require.NoError(t, err)

	require.Len(t, cart.CartItems, 1)
	item := cart.CartItems[0]
	assert.Equal(t, 1, item.Qty)
	assert.True(t, item.Price.Equal(dec("10.00")))
	assert.True(t, item.LineTotal.Equal(dec("10.00")))
	assert.True(t, cart.Total.Equal(dec("10.00")))
	assert.True(t, cart.Discount.IsZero())

	requireCartConsistent(t, db, cart.ID)
}

func TestAddItemIncrementsExistingLine(t *testing.T) {
	db := setupTestDB(t)
	svc := newCartService(db)
	ctx := context.Background()

	customer := seedCustomer(t, db)
	product := seedProduct(t, db, "Coffee Beans", "10.00", 5)

	_, err := svc.AddItem(ctx, customer.ID, product.ID)
	require.NoError(t, err)
	cart, err := svc.AddItem(ctx, customer.ID, product.ID)
	require.NoError(t, err)

	require.Len(t, cart.CartItems, 1, "same product must merge into one line")
	assert.Equal(t, 2, cart.CartItems[0].Qty)
	assert.True(t, cart.Total.Equal(dec("20.00")))

	requireCartConsistent(t, db, cart.ID)
}

func TestAddItemPriceSnapshotSurvivesCatalogChange(t *testing.T) {
	db := setupTestDB(t)
	svc := newCartService(db)
	ctx := context.Background()

	customer := seedCustomer(t, db)
	product := seedProduct(t, db, "Coffee Beans", "10.00", 5)

	_, err := svc.AddItem(ctx, customer.ID, product.ID)
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Product{}).
		Where("id = ?", product.ID).
		Update("price", dec("99.00")).Error)

	cart, err := svc.AddItem(ctx, customer.ID, product.ID)
	require.NoError(t, err)

	assert.True(t, cart.CartItems[0].Price.Equal(dec("10.00")), "line keeps its original price")
	assert.True(t, cart.Total.Equal(dec("20.00")))
}

func TestAddItemUnknownProduct(t *testing.T) {
	db := setupTestDB(t)
	svc := newCartService(db)

	customer := seedCustomer(t, db)

	_, err := svc.AddItem(context.Background(), customer.ID, "no-such-product")
	appErr, ok := apperrors.Is(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestAddItemRespectsStock(t *testing.T) {
	db := setupTestDB(t)
	svc := newCartService(db)
	ctx := context.Background()

	customer := seedCustomer(t, db)
	product := seedProduct(t, db, "Rare Vinyl", "25.00", 1)

	_, err := svc.AddItem(ctx, customer.ID, product.ID)
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, customer.ID, product.ID)
	appErr, ok := apperrors.Is(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidation, appErr.Code)
	assert.Contains(t, appErr.Message, "1 units left in stock")

	// The failed increment must not have leaked into the cart.
	cart, err := svc.GetCart(ctx, customer.ID)
	require.NoError(t, err)
	require.Len(t, cart.CartItems, 1)
	assert.Equal(t, 1, cart.CartItems[0].Qty)
	requireCartConsistent(t, db, cart.ID)
}

func TestUpdateItemQtyAndDiscount(t *testing.T) {
	db := setupTestDB(t)
	svc := newCartService(db)
	ctx := context.Background()

	customer := seedCustomer(t, db)
	product := seedProduct(t, db, "Coffee Beans", "10.00", 10)

	cart, err := svc.AddItem(ctx, customer.ID, product.ID)
	require.NoError(t, err)
	itemID := cart.CartItems[0].ID

	qty := 3
	discount := dec("5.00")
	item, cart, err := svc.UpdateItem(ctx, customer.ID, itemID, &qty, &discount)
	require.NoError(t, err)

	assert.Equal(t, 3, item.Qty)
	assert.True(t, item.LineTotal.Equal(dec("25.00")), "10*3 - 5")
	assert.True(t, cart.Total.Equal(dec("25.00")))
	assert.True(t, cart.Discount.Equal(dec("5.00")))

	requireCartConsistent(t, db, cart.ID)
}

func TestUpdateItemValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newCartService(db)
	ctx := context.Background()

	customer := seedCustomer(t, db)
	product := seedProduct(t, db, "Coffee Beans", "10.00", 5)

	cart, err := svc.AddItem(ctx, customer.ID, product.ID)
	require.NoError(t, err)
	itemID := cart.CartItems[0].ID

	zero := 0
	_, _, err = svc.UpdateItem(ctx, customer.ID, itemID, &zero, nil)
	appErr, ok := apperrors.Is(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidation, appErr.Code)

	tooMany := 6
	_, _, err = svc.UpdateItem(ctx, customer.ID, itemID, &tooMany, nil)
	appErr, ok = apperrors.Is(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidation, appErr.Code)

	negative := dec("-1.00")
	_, _, err = svc.UpdateItem(ctx, customer.ID, itemID, nil, &negative)
	appErr, ok = apperrors.Is(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidation, appErr.Code)
}

func TestUpdateItemOwnership(t *testing.T) {
	db := setupTestDB(t)
	svc := newCartService(db)
	ctx := context.Background()

	owner := seedCustomer(t, db)
	intruder := seedCustomer(t, db)
	product := seedProduct(t, db, "Coffee Beans", "10.00", 5)

	cart, err := svc.AddItem(ctx, owner.ID, product.ID)
	require.NoError(t, err)
	itemID := cart.CartItems[0].ID

	qty := 2
	_, _, err = svc.UpdateItem(ctx, intruder.ID, itemID, &qty, nil)
	appErr, ok := apperrors.Is(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeUnauthorized, appErr.Code)
}

func TestRemoveItem(t *testing.T) {
	db := setupTestDB(t)
	svc := newCartService(db)
	ctx := context.Background()

	customer := seedCustomer(t, db)
	coffee := seedProduct(t, db, "Coffee Beans", "10.00", 5)
	tea := seedProduct(t, db, "Green Tea", "4.00", 5)

	_, err := svc.AddItem(ctx, customer.ID, coffee.ID)
	require.NoError(t, err)
	cart, err := svc.AddItem(ctx, customer.ID, tea.ID)
	require.NoError(t, err)

	var coffeeItemID string
	for _, item := range cart.CartItems {
		if item.ProductID == coffee.ID {
			coffeeItemID = item.ID
		}
	}
	require.NotEmpty(t, coffeeItemID)

	cart, err = svc.RemoveItem(ctx, customer.ID, coffeeItemID)
	require.NoError(t, err)

	require.Len(t, cart.CartItems, 1)
	assert.Equal(t, tea.ID, cart.CartItems[0].ProductID)
	assert.True(t, cart.Total.Equal(dec("4.00")))
	requireCartConsistent(t, db, cart.ID)
}

func TestGetCartCreatesLazily(t *testing.T) {
	db := setupTestDB(t)
	svc := newCartService(db)

	customer := seedCustomer(t, db)

	cart, err := svc.GetCart(context.Background(), customer.ID)
	require.NoError(t, err)
	require.NotNil(t, cart)
	assert.Equal(t, customer.ID, cart.CustomerID)
	assert.Empty(t, cart.CartItems)
	assert.True(t, cart.Total.IsZero())

	again, err := svc.GetCart(context.Background(), customer.ID)
	require.NoError(t, err)
	assert.Equal(t, cart.ID, again.ID, "repeat access must reuse the same cart")
}
