package fakers

import (
	"time"

	"github.com/andikanugraha/go-multistore/app/helpers"
	"github.com/andikanugraha/go-multistore/app/models"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
)

func UserFaker(role string) *models.User {
	return &models.User{
		ID:        uuid.New().String(),
		FirstName: faker.FirstName(),
		LastName:  faker.LastName(),
		Email:     faker.Email(),
		Phone:     faker.Phonenumber(),
		Password:  helpers.HashPassword("password"),
		Role:      role,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}
