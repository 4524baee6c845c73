package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopmind/go-storefront/app/helpers"
	"github.com/shopmind/go-storefront/app/models"
	"github.com/shopmind/go-storefront/app/models/migrations"
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

func seedCustomer(t *testing.T, db *gorm.DB) (*models.User, *models.Customer) {
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
	return user, customer
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

// asUser injects the session-resolved user ID the way the session
// middleware does.
func asUser(r *http.Request, userID string) *http.Request {
	return r.WithContext(helpers.ContextWithUserID(r.Context(), userID))
}
