package fakers

import (
	"math/rand"
	"time"

	"github.com/andikanugraha/go-multistore/app/models"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

func ProductFaker(store *models.Store, category *models.Category, subCategory *models.SubCategory) *models.Product {
	name := faker.Name()
	productID := uuid.New().String()
	slugText := slug.Make(name + "-" + uuid.NewString()[:6])

	variant := models.ProductVariant{
		ID:        uuid.New().String(),
		ProductID: productID,
		Name:      "Default",
		Sku:       uuid.NewString()[:8],
		Price:     decimal.NewFromInt(int64(rand.Intn(990) + 10)),
		Stock:     rand.Intn(100) + 1,
		Weight:    decimal.NewFromFloat(0.5),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	subCategoryID := ""
	if subCategory != nil {
		subCategoryID = subCategory.ID
	}

	return &models.Product{
		ID:            productID,
		StoreID:       store.ID,
		CategoryID:    category.ID,
		SubCategoryID: subCategoryID,
		Name:          name,
		Slug:          slugText,
		Description:   faker.Paragraph(),
		Brand:         faker.Word(),
		Variants:      []models.ProductVariant{variant},
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}
