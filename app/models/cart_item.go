package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartItem is one product line in a cart. At most one row exists per
// (cart, product). Price is a snapshot taken when the line was created
// and is never re-read from the catalog. LineTotal is derived:
// price*qty - discount, recomputed on every write.
type CartItem struct {
	ID        string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	CartID    string          `gorm:"size:36;not null;uniqueIndex:idx_cart_items_cart_product" json:"cart_id"`
	Cart      *Cart           `gorm:"foreignKey:CartID" json:"-"`
	ProductID string          `gorm:"size:36;not null;uniqueIndex:idx_cart_items_cart_product" json:"product_id"`
	Product   *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Qty       int             `gorm:"not null" json:"qty"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Discount  decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"discount"`
	LineTotal decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"line_total"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) (err error) {
	if ci.ID == "" {
		ci.ID = uuid.New().String()
	}
	return
}
