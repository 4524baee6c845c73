package seeders

import (
	"log"

	"github.com/shopmind/go-storefront/app/db/fakers"
	"github.com/shopmind/go-storefront/app/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Seeder struct {
	Seeder interface{}
}

func SeedersRegister() []Seeder {
	seeders := []Seeder{
		{Seeder: fakers.UserFaker("password123")},
	}
	for i := 0; i < 10; i++ {
		seeders = append(seeders, Seeder{Seeder: fakers.ProductFaker()})
	}
	return seeders
}

// DBSeed populates a development database with an admin account, a
// sample shopper and a small catalog.
func DBSeed(db *gorm.DB) error {
	if err := seedAdmin(db); err != nil {
		return err
	}

	for _, seeder := range SeedersRegister() {
		if err := db.Create(seeder.Seeder).Error; err != nil {
			return err
		}

		if user, ok := seeder.Seeder.(*models.User); ok {
			customer := &models.Customer{
				UserID: user.ID,
				Name:   user.Username,
				Email:  user.Email,
			}
			if err := db.Create(customer).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func seedAdmin(db *gorm.DB) error {
	var existing models.User
	err := db.First(&existing, "username = ?", "admin").Error
	if err == nil {
		log.Println("Admin user already exists, skipping.")
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username:  "admin",
		Email:     "admin@example.com",
		Password:  string(hashed),
		Superuser: true,
	}
	return db.Create(admin).Error
}
