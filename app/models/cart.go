package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Cart is the per-customer basket. Total and Discount are denormalized
// sums over CartItems and must be re-derived after every item mutation.
type Cart struct {
	ID         string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	CustomerID string          `gorm:"size:36;not null;uniqueIndex" json:"customer_id"`
	Customer   Customer        `gorm:"foreignKey:CustomerID"`
	CartItems  []CartItem      `gorm:"constraint:OnDelete:CASCADE" json:"items"`
	Total      decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"total"`
	Discount   decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"discount"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func (c *Cart) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}
