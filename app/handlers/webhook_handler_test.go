package handlers_test

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andikanugraha/go-multistore/app/handlers"
	"github.com/andikanugraha/go-multistore/app/models"
	"github.com/andikanugraha/go-multistore/app/models/migrations"
	"github.com/andikanugraha/go-multistore/app/repositories"
	"github.com/andikanugraha/go-multistore/app/services"
	"github.com/andikanugraha/go-multistore/app/utils/renderer"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testWebhookSecret = "whsec_test"

var webhookDBCounter int

func newWebhookHandler(t *testing.T) (*handlers.Handler, repositories.UserRepositoryImpl) {
	t.Helper()

	webhookDBCounter++
	dsn := fmt.Sprintf("file:webhook_test_%d?mode=memory&cache=shared", webhookDBCounter)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, migrations.AutoMigrate(db))

	userRepo := repositories.NewUserRepository(db)
	h := handlers.NewHandler(
		renderer.New(),
		nil,
		testWebhookSecret,
		userRepo,
		nil, nil, nil, nil,
		nil, nil, nil, nil,
		services.NewUserSyncService(userRepo),
	)
	return h, userRepo
}

func signBody(body []byte) string {
	mac := hmac.New(sha256.New, []byte(testWebhookSecret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func postWebhook(h *handlers.Handler, body []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/identity", bytes.NewReader(body))
	if signature != "" {
		req.Header.Set("X-Identity-Signature", signature)
	}
	rec := httptest.NewRecorder()
	h.IdentityWebhook(rec, req)
	return rec
}

func TestIdentityWebhookCreatesUser(t *testing.T) {
	h, userRepo := newWebhookHandler(t)

	body, err := json.Marshal(services.IdentityEvent{
		Type: services.IdentityEventUserCreated,
		Data: services.IdentityUser{
			ID:        "idp_123",
			Email:     "hook@example.com",
			FirstName: "Hook",
		},
	})
	require.NoError(t, err)

	rec := postWebhook(h, body, signBody(body))
	assert.Equal(t, http.StatusOK, rec.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "hook@example.com", user.Email)

	found, err := userRepo.FindByExternalID(context.Background(), "idp_123")
	require.NoError(t, err)
	require.NotNil(t, found)
}

func TestIdentityWebhookRejectsBadSignature(t *testing.T) {
	h, _ := newWebhookHandler(t)

	body := []byte(`{"type":"user.created","data":{"id":"idp_123","email":"hook@example.com"}}`)

	rec := postWebhook(h, body, "deadbeef")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = postWebhook(h, body, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestIdentityWebhookRejectsUnknownEventType(t *testing.T) {
	h, _ := newWebhookHandler(t)

	body := []byte(`{"type":"user.archived","data":{"id":"idp_123","email":"hook@example.com"}}`)

	rec := postWebhook(h, body, signBody(body))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIdentityWebhookRejectsMalformedBody(t *testing.T) {
	h, _ := newWebhookHandler(t)

	body := []byte(`{not json`)

	rec := postWebhook(h, body, signBody(body))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
