package services

import (
	"context"
	"time"

	"github.com/andikanugraha/go-multistore/app/helpers"
	"github.com/andikanugraha/go-multistore/app/models"
	"github.com/andikanugraha/go-multistore/app/repositories"
	"github.com/go-playground/validator/v10"
)

type SubCategoryInput struct {
	ID         string `validate:"required,uuid4"`
	Name       string `validate:"required,min=2,max=100"`
	Slug       string `validate:"max=100"`
	CategoryID string `validate:"required,uuid4"`
	Image      string
	Featured   bool
}

type SubCategoryService struct {
	subCategoryRepo repositories.SubCategoryRepositoryImpl
	categoryRepo    repositories.CategoryRepositoryImpl
	validator       *validator.Validate
}

func NewSubCategoryService(subCategoryRepo repositories.SubCategoryRepositoryImpl, categoryRepo repositories.CategoryRepositoryImpl, validator *validator.Validate) *SubCategoryService {
	return &SubCategoryService{
		subCategoryRepo: subCategoryRepo,
		categoryRepo:    categoryRepo,
		validator:       validator,
	}
}

func (s *SubCategoryService) Upsert(ctx context.Context, actor *models.User, input *SubCategoryInput) (*models.SubCategory, error) {
	if actor == nil {
		return nil, &AuthenticationError{}
	}
	if actor.Role != models.RoleAdmin {
		return nil, &AuthorizationError{RequiredRole: models.RoleAdmin}
	}
	if input == nil {
		return nil, &ValidationError{Message: "subcategory payload is required"}
	}

	if input.Slug == "" {
		input.Slug = helpers.GenerateSlug(input.Name)
	}

	if err := s.validator.Struct(input); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		return nil, &ValidationError{
			Message: "subcategory payload is invalid",
			Fields:  helpers.FormatValidationErrors(validationErrors),
		}
	}

	parent, err := s.categoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, &NotFoundError{Resource: "category", ID: input.CategoryID}
	}

	candidate := &models.SubCategory{
		ID:   input.ID,
		Name: input.Name,
		Slug: input.Slug,
	}
	conflicting, err := s.subCategoryRepo.FindConflicting(ctx, candidate)
	if err != nil {
		return nil, err
	}
	if conflicting != nil {
		if conflicting.Name == candidate.Name {
			return nil, &ConflictError{
				Field:   "name",
				Message: "a subcategory with the same name already exists",
			}
		}
		return nil, &ConflictError{
			Field:   "slug",
			Message: "a subcategory with the same slug already exists",
		}
	}

	existing, err := s.subCategoryRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		subCategory := &models.SubCategory{
			ID:         input.ID,
			Name:       input.Name,
			Slug:       input.Slug,
			CategoryID: input.CategoryID,
			Image:      input.Image,
			Featured:   input.Featured,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}
		if err := s.subCategoryRepo.Create(ctx, subCategory); err != nil {
			return nil, err
		}
		return subCategory, nil
	}

	existing.Name = input.Name
	existing.Slug = input.Slug
	existing.CategoryID = input.CategoryID
	existing.Image = input.Image
	existing.Featured = input.Featured
	existing.UpdatedAt = time.Now()

	if err := s.subCategoryRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *SubCategoryService) Delete(ctx context.Context, actor *models.User, id string) error {
	if actor == nil {
		return &AuthenticationError{}
	}
	if actor.Role != models.RoleAdmin {
		return &AuthorizationError{RequiredRole: models.RoleAdmin}
	}

	subCategory, err := s.subCategoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if subCategory == nil {
		return &NotFoundError{Resource: "subcategory", ID: id}
	}
	return s.subCategoryRepo.Delete(ctx, id)
}
