package services

import (
	"context"
	"time"

	"github.com/andikanugraha/go-multistore/app/helpers"
	"github.com/andikanugraha/go-multistore/app/models"
	"github.com/andikanugraha/go-multistore/app/repositories"
	"github.com/go-playground/validator/v10"
)

type CategoryInput struct {
	ID       string `validate:"required,uuid4"`
	Name     string `validate:"required,min=2,max=100"`
	Slug     string `validate:"max=100"`
	Image    string
	Featured bool
}

type CategoryService struct {
	categoryRepo repositories.CategoryRepositoryImpl
	validator    *validator.Validate
}

func NewCategoryService(categoryRepo repositories.CategoryRepositoryImpl, validator *validator.Validate) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		validator:    validator,
	}
}

func (s *CategoryService) Upsert(ctx context.Context, actor *models.User, input *CategoryInput) (*models.Category, error) {
	if actor == nil {
		return nil, &AuthenticationError{}
	}
	if actor.Role != models.RoleAdmin {
		return nil, &AuthorizationError{RequiredRole: models.RoleAdmin}
	}
	if input == nil {
		return nil, &ValidationError{Message: "category payload is required"}
	}

	if input.Slug == "" {
		input.Slug = helpers.GenerateSlug(input.Name)
	}

	if err := s.validator.Struct(input); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		return nil, &ValidationError{
			Message: "category payload is invalid",
			Fields:  helpers.FormatValidationErrors(validationErrors),
		}
	}

	candidate := &models.Category{
		ID:   input.ID,
		Name: input.Name,
		Slug: input.Slug,
	}
	conflicting, err := s.categoryRepo.FindConflicting(ctx, candidate)
	if err != nil {
		return nil, err
	}
	if conflicting != nil {
		if conflicting.Name == candidate.Name {
			return nil, &ConflictError{
				Field:   "name",
				Message: "a category with the same name already exists",
			}
		}
		return nil, &ConflictError{
			Field:   "slug",
			Message: "a category with the same slug already exists",
		}
	}

	existing, err := s.categoryRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		category := &models.Category{
			ID:        input.ID,
			Name:      input.Name,
			Slug:      input.Slug,
			Image:     input.Image,
			Featured:  input.Featured,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := s.categoryRepo.Create(ctx, category); err != nil {
			return nil, err
		}
		return category, nil
	}

	existing.Name = input.Name
	existing.Slug = input.Slug
	existing.Image = input.Image
	existing.Featured = input.Featured
	existing.UpdatedAt = time.Now()

	if err := s.categoryRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *CategoryService) Delete(ctx context.Context, actor *models.User, id string) error {
	if actor == nil {
		return &AuthenticationError{}
	}
	if actor.Role != models.RoleAdmin {
		return &AuthorizationError{RequiredRole: models.RoleAdmin}
	}

	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return &NotFoundError{Resource: "category", ID: id}
	}
	return s.categoryRepo.Delete(ctx, id)
}
