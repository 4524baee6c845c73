package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is the storefront profile linked 1:1 to a login User. Cart,
// purchase and feedback rows all hang off the customer, not the user.
type Customer struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	UserID    string `gorm:"size:36;not null;uniqueIndex" json:"user_id"`
	User      User   `gorm:"foreignKey:UserID"`
	Name      string `gorm:"size:255" json:"name"`
	Email     string `gorm:"size:100" json:"email"`
	Contact   string `gorm:"size:15" json:"contact"`
	Address   string `gorm:"type:text" json:"address"`
	Status    string `gorm:"size:50" json:"status"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}
