package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/andikanugraha/go-multistore/app/helpers"
	"github.com/andikanugraha/go-multistore/app/models"
	"github.com/andikanugraha/go-multistore/app/repositories"
	"github.com/andikanugraha/go-multistore/app/services"
	"github.com/andikanugraha/go-multistore/app/utils/sessions"
	"github.com/unrolled/render"
)

type Handler struct {
	render          *render.Render
	sessionStore    sessions.SessionStore
	webhookSecret   string
	userRepo        repositories.UserRepositoryImpl
	storeRepo       repositories.StoreRepositoryImpl
	categoryRepo    repositories.CategoryRepositoryImpl
	subCategoryRepo repositories.SubCategoryRepositoryImpl
	productRepo     repositories.ProductRepositoryImpl
	storeSvc        *services.StoreService
	categorySvc     *services.CategoryService
	subCategorySvc  *services.SubCategoryService
	productSvc      *services.ProductService
	userSyncSvc     *services.UserSyncService
}

func NewHandler(
	render *render.Render,
	sessionStore sessions.SessionStore,
	webhookSecret string,
	userRepo repositories.UserRepositoryImpl,
	storeRepo repositories.StoreRepositoryImpl,
	categoryRepo repositories.CategoryRepositoryImpl,
	subCategoryRepo repositories.SubCategoryRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	storeSvc *services.StoreService,
	categorySvc *services.CategoryService,
	subCategorySvc *services.SubCategoryService,
	productSvc *services.ProductService,
	userSyncSvc *services.UserSyncService,
) *Handler {
	return &Handler{
		render:          render,
		sessionStore:    sessionStore,
		webhookSecret:   webhookSecret,
		userRepo:        userRepo,
		storeRepo:       storeRepo,
		categoryRepo:    categoryRepo,
		subCategoryRepo: subCategoryRepo,
		productRepo:     productRepo,
		storeSvc:        storeSvc,
		categorySvc:     categorySvc,
		subCategorySvc:  subCategorySvc,
		productSvc:      productSvc,
		userSyncSvc:     userSyncSvc,
	}
}

func (h *Handler) currentUser(r *http.Request) *models.User {
	user, ok := r.Context().Value(helpers.ContextKeyUser).(*models.User)
	if !ok {
		return nil
	}
	return user
}

type errorResponse struct {
	Error  string            `json:"error"`
	Field  string            `json:"field,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

// renderServiceError maps the service error taxonomy onto HTTP statuses.
func (h *Handler) renderServiceError(w http.ResponseWriter, err error) {
	var authnErr *services.AuthenticationError
	var authzErr *services.AuthorizationError
	var validationErr *services.ValidationError
	var conflictErr *services.ConflictError
	var notFoundErr *services.NotFoundError
	var generationErr *services.GenerationError

	switch {
	case errors.As(err, &authnErr):
		h.render.JSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case errors.As(err, &authzErr):
		h.render.JSON(w, http.StatusForbidden, errorResponse{Error: err.Error()})
	case errors.As(err, &validationErr):
		h.render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Fields: validationErr.Fields})
	case errors.As(err, &conflictErr):
		h.render.JSON(w, http.StatusConflict, errorResponse{Error: err.Error(), Field: conflictErr.Field})
	case errors.As(err, &notFoundErr):
		h.render.JSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.As(err, &generationErr):
		h.render.JSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	default:
		log.Printf("renderServiceError: unexpected error: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
