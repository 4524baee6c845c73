package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PurchaseHeader is the immutable record of a completed checkout. Total
// and Discount are copied from the cart at checkout time and never
// recomputed afterwards.
type PurchaseHeader struct {
	ID           string           `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	CustomerID   string           `gorm:"size:36;not null;index" json:"customer_id"`
	Customer     Customer         `gorm:"foreignKey:CustomerID" json:"-"`
	PurchaseDate time.Time        `gorm:"not null" json:"purchase_date"`
	Discount     decimal.Decimal  `gorm:"type:decimal(10,2);default:0" json:"discount"`
	Total        decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"total"`
	Details      []PurchaseDetail `gorm:"foreignKey:PurchaseHeaderID;constraint:OnDelete:CASCADE" json:"details"`
	CreatedAt    time.Time        `json:"created_at"`
}

func (p *PurchaseHeader) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

// PurchaseDetail mirrors a cart item at checkout time. The values are a
// frozen copy of the cart line, including the product description as it
// read at that moment.
type PurchaseDetail struct {
	ID               string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	PurchaseHeaderID string          `gorm:"size:36;not null;index" json:"purchase_header_id"`
	ProductID        string          `gorm:"size:36;not null;index" json:"product_id"`
	Product          Product         `gorm:"foreignKey:ProductID" json:"-"`
	Description      string          `gorm:"type:text" json:"description"`
	Qty              int             `gorm:"not null" json:"qty"`
	Price            decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Discount         decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"discount"`
	LineTotal        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"line_total"`
	CreatedAt        time.Time       `json:"created_at"`
}

func (d *PurchaseDetail) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return
}
