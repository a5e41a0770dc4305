package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/andikanugraha/go-multistore/app/models"
	"github.com/andikanugraha/go-multistore/app/repositories"
	"github.com/andikanugraha/go-multistore/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productFixture struct {
	svc         *services.ProductService
	productRepo repositories.ProductRepositoryImpl
	seller      *models.User
	store       *models.Store
	category    *models.Category
}

func newProductFixture(t *testing.T) *productFixture {
	t.Helper()
	db := newTestDB(t)
	validate := validator.New()

	productRepo := repositories.NewProductRepository(db)
	storeRepo := repositories.NewStoreRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)

	seller := newSeller("sam@example.com")

	store := &models.Store{
		ID:     uuid.New().String(),
		UserID: seller.ID,
		Name:   "Northwind Traders",
		Slug:   "northwind-traders",
		Email:  "hello@northwind.example.com",
		Phone:  "+1-202-555-0104",
		Status: models.StoreStatusActive,
	}
	require.NoError(t, storeRepo.Create(context.Background(), store))

	category := &models.Category{
		ID:   uuid.New().String(),
		Name: "Gadgets",
		Slug: "gadgets",
	}
	require.NoError(t, categoryRepo.Create(context.Background(), category))

	return &productFixture{
		svc:         services.NewProductService(productRepo, storeRepo, categoryRepo, validate),
		productRepo: productRepo,
		seller:      seller,
		store:       store,
		category:    category,
	}
}

func (f *productFixture) input(name string) *services.ProductInput {
	return &services.ProductInput{
		ID:          uuid.New().String(),
		VariantID:   uuid.New().String(),
		StoreID:     f.store.ID,
		CategoryID:  f.category.ID,
		Name:        name,
		Description: "A fine gadget",
		VariantName: "Default",
		Sku:         "SKU-001",
		Price:       decimal.NewFromInt(49),
		Stock:       10,
	}
}

func TestProductUpsertCreatesProductWithVariant(t *testing.T) {
	f := newProductFixture(t)

	input := f.input("Pocket Widget")
	product, err := f.svc.Upsert(context.Background(), f.seller, input)
	require.NoError(t, err)

	assert.Equal(t, "pocket-widget", product.Slug)
	require.Len(t, product.Variants, 1)
	assert.Equal(t, input.VariantID, product.Variants[0].ID)

	persisted, err := f.productRepo.GetByID(context.Background(), input.ID)
	require.NoError(t, err)
	require.NotNil(t, persisted)
	require.Len(t, persisted.Variants, 1)
	assert.True(t, persisted.Variants[0].Price.Equal(decimal.NewFromInt(49)))
}

func TestProductUpsertGeneratesSuffixedSlugs(t *testing.T) {
	f := newProductFixture(t)

	first, err := f.svc.Upsert(context.Background(), f.seller, f.input("Pocket Widget"))
	require.NoError(t, err)
	second, err := f.svc.Upsert(context.Background(), f.seller, f.input("Pocket Widget"))
	require.NoError(t, err)
	third, err := f.svc.Upsert(context.Background(), f.seller, f.input("Pocket Widget"))
	require.NoError(t, err)

	assert.Equal(t, "pocket-widget", first.Slug)
	assert.Equal(t, "pocket-widget-1", second.Slug)
	assert.Equal(t, "pocket-widget-2", third.Slug)
}

func TestProductUpsertUpdatePath(t *testing.T) {
	f := newProductFixture(t)

	input := f.input("Pocket Widget")
	_, err := f.svc.Upsert(context.Background(), f.seller, input)
	require.NoError(t, err)

	input.Description = "An even finer gadget"
	input.Price = decimal.NewFromInt(59)
	updated, err := f.svc.Upsert(context.Background(), f.seller, input)
	require.NoError(t, err)

	// Name unchanged, slug kept.
	assert.Equal(t, "pocket-widget", updated.Slug)
	assert.Equal(t, "An even finer gadget", updated.Description)

	persisted, err := f.productRepo.GetByID(context.Background(), input.ID)
	require.NoError(t, err)
	require.Len(t, persisted.Variants, 1)
	assert.True(t, persisted.Variants[0].Price.Equal(decimal.NewFromInt(59)))

	_, total, err := f.productRepo.GetPaginated(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestProductUpsertCreateGeneratesVariantID(t *testing.T) {
	f := newProductFixture(t)

	input := f.input("Pocket Widget")
	input.VariantID = ""
	product, err := f.svc.Upsert(context.Background(), f.seller, input)
	require.NoError(t, err)

	require.Len(t, product.Variants, 1)
	assert.NotEmpty(t, product.Variants[0].ID)
}

func TestProductUpsertUpdateKeepsExistingVariant(t *testing.T) {
	f := newProductFixture(t)

	input := f.input("Pocket Widget")
	created, err := f.svc.Upsert(context.Background(), f.seller, input)
	require.NoError(t, err)
	require.Len(t, created.Variants, 1)
	originalVariantID := created.Variants[0].ID
	originalCreatedAt := created.Variants[0].CreatedAt

	// Updating without a variant id must rewrite the variant the
	// product already has, not insert a second one.
	input.VariantID = ""
	input.Stock = 3
	updated, err := f.svc.Upsert(context.Background(), f.seller, input)
	require.NoError(t, err)
	require.Len(t, updated.Variants, 1)
	assert.Equal(t, originalVariantID, updated.Variants[0].ID)

	persisted, err := f.productRepo.GetByID(context.Background(), input.ID)
	require.NoError(t, err)
	require.Len(t, persisted.Variants, 1)
	assert.Equal(t, originalVariantID, persisted.Variants[0].ID)
	assert.Equal(t, 3, persisted.Variants[0].Stock)
	assert.WithinDuration(t, originalCreatedAt, persisted.Variants[0].CreatedAt, time.Second)
	assert.False(t, persisted.Variants[0].CreatedAt.IsZero())

	// A variant id that does not belong to the product is treated the
	// same way.
	input.VariantID = uuid.New().String()
	input.Stock = 7
	_, err = f.svc.Upsert(context.Background(), f.seller, input)
	require.NoError(t, err)

	persisted, err = f.productRepo.GetByID(context.Background(), input.ID)
	require.NoError(t, err)
	require.Len(t, persisted.Variants, 1)
	assert.Equal(t, originalVariantID, persisted.Variants[0].ID)
	assert.Equal(t, 7, persisted.Variants[0].Stock)
}

func TestProductUpsertRequiresSellerRole(t *testing.T) {
	f := newProductFixture(t)

	_, err := f.svc.Upsert(context.Background(), nil, f.input("Pocket Widget"))
	var authn *services.AuthenticationError
	require.ErrorAs(t, err, &authn)

	_, err = f.svc.Upsert(context.Background(), newCustomer(), f.input("Pocket Widget"))
	var authz *services.AuthorizationError
	require.ErrorAs(t, err, &authz)
	assert.Equal(t, models.RoleSeller, authz.RequiredRole)
}

func TestProductUpsertRequiresStoreOwnership(t *testing.T) {
	f := newProductFixture(t)

	other := newSeller("other@example.com")
	_, err := f.svc.Upsert(context.Background(), other, f.input("Pocket Widget"))

	var authz *services.AuthorizationError
	require.ErrorAs(t, err, &authz)
	assert.Contains(t, authz.Error(), "owner")
}

func TestProductUpsertRejectsUnknownCategory(t *testing.T) {
	f := newProductFixture(t)

	input := f.input("Pocket Widget")
	input.CategoryID = uuid.New().String()
	_, err := f.svc.Upsert(context.Background(), f.seller, input)

	var notFound *services.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "category", notFound.Resource)
}

func TestProductDelete(t *testing.T) {
	f := newProductFixture(t)

	input := f.input("Pocket Widget")
	_, err := f.svc.Upsert(context.Background(), f.seller, input)
	require.NoError(t, err)

	err = f.svc.Delete(context.Background(), newSeller("other@example.com"), input.ID)
	var authz *services.AuthorizationError
	require.ErrorAs(t, err, &authz)

	require.NoError(t, f.svc.Delete(context.Background(), f.seller, input.ID))

	product, err := f.productRepo.GetByID(context.Background(), input.ID)
	require.NoError(t, err)
	assert.Nil(t, product)
}
