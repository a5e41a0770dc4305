package services_test

import (
	"context"
	"testing"

	"github.com/andikanugraha/go-multistore/app/models"
	"github.com/andikanugraha/go-multistore/app/repositories"
	"github.com/andikanugraha/go-multistore/app/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserSyncService(t *testing.T) (*services.UserSyncService, repositories.UserRepositoryImpl) {
	t.Helper()
	db := newTestDB(t)
	userRepo := repositories.NewUserRepository(db)
	return services.NewUserSyncService(userRepo), userRepo
}

func TestUserSyncCreatesUser(t *testing.T) {
	svc, repo := newUserSyncService(t)

	event := &services.IdentityEvent{
		Type: services.IdentityEventUserCreated,
		Data: services.IdentityUser{
			ID:        "idp_123",
			Email:     "new@example.com",
			FirstName: "New",
			LastName:  "User",
		},
	}
	user, err := svc.HandleEvent(context.Background(), event)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, models.RoleCustomer, user.Role)
	require.NotNil(t, user.ExternalID)
	assert.Equal(t, "idp_123", *user.ExternalID)

	found, err := repo.FindByExternalID(context.Background(), "idp_123")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "new@example.com", found.Email)
}

func TestUserSyncUpdatesExistingUser(t *testing.T) {
	svc, repo := newUserSyncService(t)

	_, err := svc.HandleEvent(context.Background(), &services.IdentityEvent{
		Type: services.IdentityEventUserCreated,
		Data: services.IdentityUser{ID: "idp_123", Email: "new@example.com", FirstName: "New"},
	})
	require.NoError(t, err)

	user, err := svc.HandleEvent(context.Background(), &services.IdentityEvent{
		Type: services.IdentityEventUserUpdated,
		Data: services.IdentityUser{ID: "idp_123", Email: "renamed@example.com", FirstName: "Renamed", Role: models.RoleSeller},
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed@example.com", user.Email)
	assert.Equal(t, models.RoleSeller, user.Role)

	found, err := repo.FindByExternalID(context.Background(), "idp_123")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Renamed", found.FirstName)
}

func TestUserSyncLinksLocalUserByEmail(t *testing.T) {
	svc, repo := newUserSyncService(t)

	local := &models.User{
		ID:        uuid.New().String(),
		FirstName: "Local",
		Email:     "local@example.com",
		Role:      models.RoleCustomer,
	}
	require.NoError(t, repo.Create(context.Background(), local))

	user, err := svc.HandleEvent(context.Background(), &services.IdentityEvent{
		Type: services.IdentityEventUserUpdated,
		Data: services.IdentityUser{ID: "idp_456", Email: "local@example.com", FirstName: "Local"},
	})
	require.NoError(t, err)
	assert.Equal(t, local.ID, user.ID)
	require.NotNil(t, user.ExternalID)
	assert.Equal(t, "idp_456", *user.ExternalID)
}

func TestUserSyncDeletesUser(t *testing.T) {
	svc, repo := newUserSyncService(t)

	_, err := svc.HandleEvent(context.Background(), &services.IdentityEvent{
		Type: services.IdentityEventUserCreated,
		Data: services.IdentityUser{ID: "idp_123", Email: "new@example.com"},
	})
	require.NoError(t, err)

	_, err = svc.HandleEvent(context.Background(), &services.IdentityEvent{
		Type: services.IdentityEventUserDeleted,
		Data: services.IdentityUser{ID: "idp_123"},
	})
	require.NoError(t, err)

	found, err := repo.FindByExternalID(context.Background(), "idp_123")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestUserSyncRejectsBadEvents(t *testing.T) {
	svc, _ := newUserSyncService(t)

	var validation *services.ValidationError

	_, err := svc.HandleEvent(context.Background(), nil)
	require.ErrorAs(t, err, &validation)

	_, err = svc.HandleEvent(context.Background(), &services.IdentityEvent{Type: "user.archived"})
	require.ErrorAs(t, err, &validation)

	_, err = svc.HandleEvent(context.Background(), &services.IdentityEvent{
		Type: services.IdentityEventUserCreated,
		Data: services.IdentityUser{Email: "missing-id@example.com"},
	})
	require.ErrorAs(t, err, &validation)
}
