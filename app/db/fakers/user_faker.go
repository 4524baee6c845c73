package fakers

import (
	"log"

	"github.com/go-faker/faker/v4"
	"github.com/shopmind/go-storefront/app/models"
	"golang.org/x/crypto/bcrypt"
)

func UserFaker(password string) *models.User {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash faker password: %v", err)
	}

	return &models.User{
		Username: faker.Username(),
		Email:    faker.Email(),
		Password: string(hashed),
	}
}
