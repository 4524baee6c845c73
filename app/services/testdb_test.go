package services

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopmind/go-storefront/app/models"
	"github.com/shopmind/go-storefront/app/models/migrations"
	"github.com/shopmind/go-storefront/app/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func seedCustomer(t *testing.T, db *gorm.DB) *models.Customer {
	t.Helper()

	suffix := uuid.New().String()[:8]
	user := &models.User{
		Username: "shopper-" + suffix,
		Email:    fmt.Sprintf("shopper-%s@example.com", suffix),
		Password: "irrelevant",
	}
	require.NoError(t, db.Create(user).Error)

	customer := &models.Customer{
		UserID: user.ID,
		Name:   user.Username,
		Email:  user.Email,
	}
	require.NoError(t, db.Create(customer).Error)
	return customer
}

func seedProduct(t *testing.T, db *gorm.DB, title, price string, qty int) *models.Product {
	t.Helper()

	product := &models.Product{
		Code:        "sku-" + uuid.New().String()[:8],
		Title:       title,
		Description: title + " description",
		Price:       dec(price),
		Qty:         qty,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(
		db,
		repositories.NewCartRepository(db),
		repositories.NewCartItemRepository(db),
		repositories.NewProductRepository(db),
	)
}

func newCheckoutService(db *gorm.DB) *CheckoutService {
	return NewCheckoutService(
		db,
		repositories.NewCartRepository(db),
		repositories.NewCartItemRepository(db),
		repositories.NewPurchaseRepository(db),
	)
}

// requireCartConsistent asserts the denormalized cart totals match the
// sums over the stored items.
func requireCartConsistent(t *testing.T, db *gorm.DB, cartID string) {
	t.Helper()

	var cart models.Cart
	require.NoError(t, db.Preload("CartItems").First(&cart, "id = ?", cartID).Error)

	wantTotal := decimal.Zero
	wantDiscount := decimal.Zero
	for _, item := range cart.CartItems {
		wantTotal = wantTotal.Add(item.LineTotal)
		wantDiscount = wantDiscount.Add(item.Discount)
	}

	require.True(t, cart.Total.Equal(wantTotal), "cart total %s, items sum %s", cart.Total, wantTotal)
	require.True(t, cart.Discount.Equal(wantDiscount), "cart discount %s, items sum %s", cart.Discount, wantDiscount)
}
