package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Username  string `gorm:"size:150;not null;uniqueIndex" json:"username"`
	Email     string `gorm:"size:100" json:"email"`
	Password  string `gorm:"size:255;not null" json:"-"`
	Superuser bool   `gorm:"default:false" json:"-"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}
