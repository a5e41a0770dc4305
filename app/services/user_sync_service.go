package services

import (
	"context"
	"log"
	"time"

	"github.com/andikanugraha/go-multistore/app/models"
	"github.com/andikanugraha/go-multistore/app/repositories"
	"github.com/google/uuid"
)

// Events emitted by the identity provider webhook.
const (
	IdentityEventUserCreated = "user.created"
	IdentityEventUserUpdated = "user.updated"
	IdentityEventUserDeleted = "user.deleted"
)

type IdentityUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Picture   string `json:"picture"`
	Role      string `json:"role"`
}

type IdentityEvent struct {
	Type string       `json:"type"`
	Data IdentityUser `json:"data"`
}

// UserSyncService mirrors identity-provider users into the local users
// table so the rest of the application can join against them.
type UserSyncService struct {
	userRepo repositories.UserRepositoryImpl
}

func NewUserSyncService(userRepo repositories.UserRepositoryImpl) *UserSyncService {
	return &UserSyncService{userRepo: userRepo}
}

func (s *UserSyncService) HandleEvent(ctx context.Context, event *IdentityEvent) (*models.User, error) {
	if event == nil {
		return nil, &ValidationError{Message: "identity event payload is required"}
	}

	switch event.Type {
	case IdentityEventUserCreated, IdentityEventUserUpdated:
		return s.upsertUser(ctx, &event.Data)
	case IdentityEventUserDeleted:
		if event.Data.ID == "" {
			return nil, &ValidationError{Message: "identity event is missing the user id"}
		}
		return nil, s.userRepo.DeleteByExternalID(ctx, event.Data.ID)
	default:
		return nil, &ValidationError{Message: "unsupported identity event type: " + event.Type}
	}
}

func (s *UserSyncService) upsertUser(ctx context.Context, data *IdentityUser) (*models.User, error) {
	if data.ID == "" || data.Email == "" {
		return nil, &ValidationError{Message: "identity event is missing the user id or email"}
	}

	user, err := s.userRepo.FindByExternalID(ctx, data.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// The user may have registered locally before the provider sent
		// its first event. Link by email instead of duplicating the row.
		user, err = s.userRepo.FindByEmail(ctx, data.Email)
		if err != nil {
			return nil, err
		}
	}

	role := data.Role
	if role == "" {
		role = models.RoleCustomer
	}

	if user == nil {
		externalID := data.ID
		user = &models.User{
			ID:         uuid.New().String(),
			ExternalID: &externalID,
			FirstName:  data.FirstName,
			LastName:   data.LastName,
			Email:      data.Email,
			Picture:    data.Picture,
			Role:       role,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
		log.Printf("UserSyncService: created user %s from identity event", user.ID)
		return user, nil
	}

	externalID := data.ID
	user.ExternalID = &externalID
	user.FirstName = data.FirstName
	user.LastName = data.LastName
	user.Email = data.Email
	user.Picture = data.Picture
	user.Role = role
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
