package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SentimentPositive = "Positive"
	SentimentNeutral  = "Neutral"
	SentimentNegative = "Negative"
)

// Feedback holds one review per (customer, product). The composite
// unique index is the source of truth for that rule; application-level
// existence checks are a UX shortcut only.
type Feedback struct {
	ID             string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	CustomerID     string    `gorm:"size:36;not null;uniqueIndex:idx_feedbacks_customer_product" json:"customer_id"`
	Customer       Customer  `gorm:"foreignKey:CustomerID" json:"-"`
	ProductID      string    `gorm:"size:36;not null;uniqueIndex:idx_feedbacks_customer_product" json:"product_id"`
	Product        Product   `gorm:"foreignKey:ProductID" json:"-"`
	Comments       string    `gorm:"type:text;not null" json:"comments"`
	Sentiment      string    `gorm:"size:50" json:"sentiment"`
	SentimentScore float64   `gorm:"default:0" json:"sentiment_score"`
	CreatedAt      time.Time `json:"created_at"`
}

func (f *Feedback) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return
}
