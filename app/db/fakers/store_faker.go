package fakers

import (
	"time"

	"github.com/andikanugraha/go-multistore/app/models"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

func StoreFaker(owner *models.User) *models.Store {
	name := faker.Name() + " Store"

	return &models.Store{
		ID:          uuid.New().String(),
		UserID:      owner.ID,
		Name:        name,
		Slug:        slug.Make(name),
		Email:       faker.Email(),
		Phone:       faker.Phonenumber(),
		Description: faker.Paragraph(),
		Status:      models.StoreStatusActive,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}
