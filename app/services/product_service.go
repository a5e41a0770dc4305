package services

import (
	"context"
	"time"

	"github.com/andikanugraha/go-multistore/app/helpers"
	"github.com/andikanugraha/go-multistore/app/models"
	"github.com/andikanugraha/go-multistore/app/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductInput struct {
	ID            string `validate:"required,uuid4"`
	VariantID     string `validate:"omitempty,uuid4"`
	StoreID       string `validate:"required,uuid4"`
	CategoryID    string `validate:"required,uuid4"`
	SubCategoryID string `validate:"omitempty,uuid4"`
	Name          string `validate:"required,min=2,max=255"`
	Description   string
	Brand         string          `validate:"max=100"`
	VariantName   string          `validate:"max=100"`
	Sku           string          `validate:"max=100"`
	Price         decimal.Decimal `validate:"required"`
	Stock         int             `validate:"min=0"`
	Weight        decimal.Decimal
	Image         string
}

type ProductService struct {
	productRepo  repositories.ProductRepositoryImpl
	storeRepo    repositories.StoreRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	validator    *validator.Validate
}

func NewProductService(productRepo repositories.ProductRepositoryImpl, storeRepo repositories.StoreRepositoryImpl, categoryRepo repositories.CategoryRepositoryImpl, validator *validator.Validate) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		storeRepo:    storeRepo,
		categoryRepo: categoryRepo,
		validator:    validator,
	}
}

// Upsert writes a product together with its variant. The create path
// derives a unique slug from the product name; the update path keeps the
// stored slug unless the name changed.
func (s *ProductService) Upsert(ctx context.Context, actor *models.User, input *ProductInput) (*models.Product, error) {
	if actor == nil {
		return nil, &AuthenticationError{}
	}
	if actor.Role != models.RoleSeller {
		return nil, &AuthorizationError{RequiredRole: models.RoleSeller}
	}
	if input == nil {
		return nil, &ValidationError{Message: "product payload is required"}
	}

	if err := s.validator.Struct(input); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		return nil, &ValidationError{
			Message: "product payload is invalid",
			Fields:  helpers.FormatValidationErrors(validationErrors),
		}
	}

	store, err := s.storeRepo.GetByID(ctx, input.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, &NotFoundError{Resource: "store", ID: input.StoreID}
	}
	if store.UserID != actor.ID {
		return nil, &AuthorizationError{
			RequiredRole: models.RoleSeller,
			Message:      "unauthorized: only the store owner can manage its products",
		}
	}

	category, err := s.categoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, &NotFoundError{Resource: "category", ID: input.CategoryID}
	}

	existing, err := s.productRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		productSlug, err := GenerateUniqueSlug(ctx, helpers.GenerateSlug(input.Name), DefaultSlugSeparator, s.productRepo)
		if err != nil {
			return nil, err
		}

		if input.VariantID == "" {
			input.VariantID = uuid.New().String()
		}

		product := &models.Product{
			ID:            input.ID,
			StoreID:       input.StoreID,
			CategoryID:    input.CategoryID,
			SubCategoryID: input.SubCategoryID,
			Name:          input.Name,
			Slug:          productSlug,
			Description:   input.Description,
			Brand:         input.Brand,
			CreatedAt:     time.Now(),
			UpdatedAt:     time.Now(),
		}
		variant := &models.ProductVariant{
			ID:        input.VariantID,
			ProductID: input.ID,
			Name:      input.VariantName,
			Sku:       input.Sku,
			Price:     input.Price,
			Stock:     input.Stock,
			Weight:    input.Weight,
			Image:     input.Image,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := s.productRepo.CreateWithVariant(ctx, product, variant); err != nil {
			return nil, err
		}
		product.Variants = []models.ProductVariant{*variant}
		return product, nil
	}

	if existing.StoreID != input.StoreID {
		return nil, &AuthorizationError{
			RequiredRole: models.RoleSeller,
			Message:      "unauthorized: this product belongs to another store",
		}
	}

	if existing.Name != input.Name {
		productSlug, err := GenerateUniqueSlug(ctx, helpers.GenerateSlug(input.Name), DefaultSlugSeparator, s.productRepo)
		if err != nil {
			return nil, err
		}
		existing.Slug = productSlug
	}

	existing.CategoryID = input.CategoryID
	existing.SubCategoryID = input.SubCategoryID
	existing.Name = input.Name
	existing.Description = input.Description
	existing.Brand = input.Brand
	existing.UpdatedAt = time.Now()

	// A product carries a single initial variant; an omitted or unknown
	// variant id means "update the variant the product already has", not
	// "insert a second one". The persisted variant keeps its identity
	// and created_at.
	var variant models.ProductVariant
	switch {
	case len(existing.Variants) > 0:
		variant = existing.Variants[0]
		for _, v := range existing.Variants {
			if v.ID == input.VariantID {
				variant = v
				break
			}
		}
	case input.VariantID != "":
		variant = models.ProductVariant{
			ID:        input.VariantID,
			ProductID: existing.ID,
			CreatedAt: time.Now(),
		}
	default:
		variant = models.ProductVariant{
			ID:        uuid.New().String(),
			ProductID: existing.ID,
			CreatedAt: time.Now(),
		}
	}

	variant.Name = input.VariantName
	variant.Sku = input.Sku
	variant.Price = input.Price
	variant.Stock = input.Stock
	variant.Weight = input.Weight
	variant.Image = input.Image
	variant.UpdatedAt = time.Now()

	existing.Variants = nil
	if err := s.productRepo.UpdateWithVariant(ctx, existing, &variant); err != nil {
		return nil, err
	}
	existing.Variants = []models.ProductVariant{variant}
	return existing, nil
}

func (s *ProductService) Delete(ctx context.Context, actor *models.User, id string) error {
	if actor == nil {
		return &AuthenticationError{}
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return &NotFoundError{Resource: "product", ID: id}
	}

	if actor.Role != models.RoleAdmin {
		store, err := s.storeRepo.GetByID(ctx, product.StoreID)
		if err != nil {
			return err
		}
		if store == nil || store.UserID != actor.ID {
			return &AuthorizationError{
				RequiredRole: models.RoleSeller,
				Message:      "unauthorized: only the store owner can delete its products",
			}
		}
	}

	return s.productRepo.Delete(ctx, id)
}
