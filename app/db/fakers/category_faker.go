package fakers

import (
	"time"

	"github.com/andikanugraha/go-multistore/app/models"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

func CategoryFaker() *models.Category {
	name := faker.Word() + " " + uuid.NewString()[:6]

	return &models.Category{
		ID:        uuid.New().String(),
		Name:      name,
		Slug:      slug.Make(name),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func SubCategoryFaker(category *models.Category) *models.SubCategory {
	name := faker.Word() + " " + uuid.NewString()[:6]

	return &models.SubCategory{
		ID:         uuid.New().String(),
		Name:       name,
		Slug:       slug.Make(name),
		CategoryID: category.ID,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
}
