package services

import (
	"context"
	"time"

	"github.com/andikanugraha/go-multistore/app/helpers"
	"github.com/andikanugraha/go-multistore/app/models"
	"github.com/andikanugraha/go-multistore/app/repositories"
	"github.com/go-playground/validator/v10"
)

type StoreInput struct {
	ID          string `validate:"required,uuid4"`
	Name        string `validate:"required,min=2,max=100"`
	Slug        string `validate:"max=100"`
	Email       string `validate:"required,email"`
	Phone       string `validate:"required,min=6,max=20"`
	Description string
	Logo        string
	Cover       string
	Status      string `validate:"omitempty,oneof=pending active banned disabled"`
	Featured    bool
}

type StoreService struct {
	storeRepo repositories.StoreRepositoryImpl
	validator *validator.Validate
}

func NewStoreService(storeRepo repositories.StoreRepositoryImpl, validator *validator.Validate) *StoreService {
	return &StoreService{
		storeRepo: storeRepo,
		validator: validator,
	}
}

// Upsert creates the store when no record with input.ID exists, otherwise
// replaces the existing record's fields. Authorization and the uniqueness
// check run before any write.
func (s *StoreService) Upsert(ctx context.Context, actor *models.User, input *StoreInput) (*models.Store, error) {
	if actor == nil {
		return nil, &AuthenticationError{}
	}
	if actor.Role != models.RoleSeller {
		return nil, &AuthorizationError{RequiredRole: models.RoleSeller}
	}
	if input == nil {
		return nil, &ValidationError{Message: "store payload is required"}
	}

	if input.Slug == "" {
		input.Slug = helpers.GenerateSlug(input.Name)
	}

	if err := s.validator.Struct(input); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		return nil, &ValidationError{
			Message: "store payload is invalid",
			Fields:  helpers.FormatValidationErrors(validationErrors),
		}
	}

	candidate := &models.Store{
		ID:    input.ID,
		Name:  input.Name,
		Slug:  input.Slug,
		Email: input.Email,
		Phone: input.Phone,
	}
	conflicting, err := s.storeRepo.FindConflicting(ctx, candidate)
	if err != nil {
		return nil, err
	}
	if conflicting != nil {
		return nil, storeConflict(candidate, conflicting)
	}

	existing, err := s.storeRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		store := &models.Store{
			ID:          input.ID,
			UserID:      actor.ID,
			Name:        input.Name,
			Slug:        input.Slug,
			Email:       input.Email,
			Phone:       input.Phone,
			Description: input.Description,
			Logo:        input.Logo,
			Cover:       input.Cover,
			Status:      models.StoreStatusPending,
			Featured:    input.Featured,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}
		if err := s.storeRepo.Create(ctx, store); err != nil {
			return nil, err
		}
		return store, nil
	}

	if existing.UserID != actor.ID {
		return nil, &AuthorizationError{
			RequiredRole: models.RoleSeller,
			Message:      "unauthorized: only the store owner can update this store",
		}
	}

	existing.Name = input.Name
	existing.Slug = input.Slug
	existing.Email = input.Email
	existing.Phone = input.Phone
	existing.Description = input.Description
	existing.Logo = input.Logo
	existing.Cover = input.Cover
	existing.Featured = input.Featured
	if input.Status != "" {
		existing.Status = input.Status
	}
	existing.UpdatedAt = time.Now()

	if err := s.storeRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *StoreService) Delete(ctx context.Context, actor *models.User, id string) error {
	if actor == nil {
		return &AuthenticationError{}
	}
	if actor.Role != models.RoleAdmin {
		return &AuthorizationError{RequiredRole: models.RoleAdmin}
	}

	store, err := s.storeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if store == nil {
		return &NotFoundError{Resource: "store", ID: id}
	}
	return s.storeRepo.Delete(ctx, id)
}

// storeConflict reports the highest-priority colliding field:
// name before email before phone before slug.
func storeConflict(candidate, conflicting *models.Store) *ConflictError {
	switch {
	case conflicting.Name == candidate.Name:
		return &ConflictError{
			Field:   "name",
			Message: "a store with the same name already exists",
		}
	case conflicting.Email == candidate.Email:
		return &ConflictError{
			Field:   "email",
			Message: "a store with the same email already exists",
		}
	case conflicting.Phone == candidate.Phone:
		return &ConflictError{
			Field:   "phone",
			Message: "a store with the same phone number already exists",
		}
	default:
		return &ConflictError{
			Field:   "slug",
			Message: "a store with the same slug already exists",
		}
	}
}
