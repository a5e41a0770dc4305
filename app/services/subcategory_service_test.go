package services_test

import (
	"context"
	"testing"

	"github.com/andikanugraha/go-multistore/app/repositories"
	"github.com/andikanugraha/go-multistore/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSubCategoryService(t *testing.T) (*services.SubCategoryService, *services.CategoryService) {
	t.Helper()
	db := newTestDB(t)
	categoryRepo := repositories.NewCategoryRepository(db)
	subCategoryRepo := repositories.NewSubCategoryRepository(db)
	validate := validator.New()
	return services.NewSubCategoryService(subCategoryRepo, categoryRepo, validate),
		services.NewCategoryService(categoryRepo, validate)
}

func TestSubCategoryUpsertRequiresExistingCategory(t *testing.T) {
	subSvc, _ := newSubCategoryService(t)

	input := &services.SubCategoryInput{
		ID:         uuid.New().String(),
		Name:       "Sneakers",
		CategoryID: uuid.New().String(),
	}
	_, err := subSvc.Upsert(context.Background(), newAdmin(), input)

	var notFound *services.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "category", notFound.Resource)
}

func TestSubCategoryUpsertCreateAndConflict(t *testing.T) {
	subSvc, categorySvc := newSubCategoryService(t)
	admin := newAdmin()

	parent := &services.CategoryInput{
		ID:   uuid.New().String(),
		Name: "Shoes",
	}
	_, err := categorySvc.Upsert(context.Background(), admin, parent)
	require.NoError(t, err)

	input := &services.SubCategoryInput{
		ID:         uuid.New().String(),
		Name:       "Sneakers",
		CategoryID: parent.ID,
	}
	subCategory, err := subSvc.Upsert(context.Background(), admin, input)
	require.NoError(t, err)
	assert.Equal(t, "sneakers", subCategory.Slug)

	duplicate := &services.SubCategoryInput{
		ID:         uuid.New().String(),
		Name:       "Sneakers",
		Slug:       "trainers",
		CategoryID: parent.ID,
	}
	_, err = subSvc.Upsert(context.Background(), admin, duplicate)

	var conflict *services.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "name", conflict.Field)
}

func TestSubCategoryUpsertRequiresAdmin(t *testing.T) {
	subSvc, _ := newSubCategoryService(t)

	input := &services.SubCategoryInput{
		ID:         uuid.New().String(),
		Name:       "Sneakers",
		CategoryID: uuid.New().String(),
	}
	_, err := subSvc.Upsert(context.Background(), newSeller("sam@example.com"), input)

	var authz *services.AuthorizationError
	require.ErrorAs(t, err, &authz)
}
