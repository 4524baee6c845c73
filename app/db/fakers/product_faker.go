package fakers

import (
	"fmt"
	"math/rand"

	"github.com/go-faker/faker/v4"
	"github.com/gosimple/slug"
	"github.com/shopmind/go-storefront/app/models"
	"github.com/shopspring/decimal"
)

func ProductFaker() *models.Product {
	title := faker.Word() + " " + faker.Word()

	return &models.Product{
		Code:        slug.Make(title) + "-" + fmt.Sprintf("%04d", rand.Intn(10000)),
		Title:       title,
		Description: faker.Paragraph(),
		Price:       decimal.NewFromFloat(float64(rand.Intn(99000)+1000) / 100),
		Qty:         rand.Intn(50) + 1,
		ImagePath:   "img/products/" + slug.Make(title) + ".jpg",
	}
}
