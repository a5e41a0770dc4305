package services_test

import (
	"fmt"
	"testing"

	"github.com/andikanugraha/go-multistore/app/models"
	"github.com/andikanugraha/go-multistore/app/models/migrations"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var memDBCounter int

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	memDBCounter++
	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", memDBCounter)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

func newAdmin() *models.User {
	return &models.User{
		ID:        uuid.New().String(),
		FirstName: "Ada",
		LastName:  "Admin",
		Email:     "ada.admin@example.com",
		Role:      models.RoleAdmin,
	}
}

func newSeller(email string) *models.User {
	return &models.User{
		ID:        uuid.New().String(),
		FirstName: "Sam",
		LastName:  "Seller",
		Email:     email,
		Role:      models.RoleSeller,
	}
}

func newCustomer() *models.User {
	return &models.User{
		ID:        uuid.New().String(),
		FirstName: "Cleo",
		LastName:  "Customer",
		Email:     "cleo@example.com",
		Role:      models.RoleCustomer,
	}
}
