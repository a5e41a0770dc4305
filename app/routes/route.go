package routes

import (
	"log"
	"net/http"

	"github.com/andikanugraha/go-multistore/app/configs"
	"github.com/andikanugraha/go-multistore/app/handlers"
	"github.com/andikanugraha/go-multistore/app/middlewares"
	"github.com/andikanugraha/go-multistore/app/models"
	"github.com/andikanugraha/go-multistore/app/repositories"
	"github.com/andikanugraha/go-multistore/app/services"
	"github.com/andikanugraha/go-multistore/app/utils/renderer"
	"github.com/andikanugraha/go-multistore/app/utils/sessions"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB) *mux.Router {
	env := configs.LoadENV

	sessionKeys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		log.Fatalf("NewRouter: failed to load session keys: %v", err)
	}
	sessionStore := sessions.NewCookieSessionStore(sessionKeys.AuthKey, sessionKeys.EncKey)

	render := renderer.New()
	validate := validator.New()

	userRepo := repositories.NewUserRepository(db)
	storeRepo := repositories.NewStoreRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	subCategoryRepo := repositories.NewSubCategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)

	storeSvc := services.NewStoreService(storeRepo, validate)
	categorySvc := services.NewCategoryService(categoryRepo, validate)
	subCategorySvc := services.NewSubCategoryService(subCategoryRepo, categoryRepo, validate)
	productSvc := services.NewProductService(productRepo, storeRepo, categoryRepo, validate)
	userSyncSvc := services.NewUserSyncService(userRepo)

	h := handlers.NewHandler(
		render,
		sessionStore,
		env.WebhookSecret,
		userRepo,
		storeRepo,
		categoryRepo,
		subCategoryRepo,
		productRepo,
		storeSvc,
		categorySvc,
		subCategorySvc,
		productSvc,
		userSyncSvc,
	)

	router := mux.NewRouter()
	router.Use(middlewares.AuthMiddleware(sessionStore, userRepo))

	// The identity provider cannot send a CSRF token; its requests are
	// authenticated by the HMAC signature instead.
	router.HandleFunc("/webhooks/identity", h.IdentityWebhook).Methods("POST")

	api := router.PathPrefix("/api").Subrouter()
	csrfMiddleware := csrf.Protect(
		sessionKeys.AuthKey,
		csrf.Path("/"),
		csrf.Secure(env.AppEnv == "production"),
	)
	api.Use(csrfMiddleware)

	api.HandleFunc("/csrf", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-CSRF-Token", csrf.Token(r))
		w.WriteHeader(http.StatusNoContent)
	}).Methods("GET")

	api.HandleFunc("/login", h.Login).Methods("POST")
	api.HandleFunc("/logout", h.Logout).Methods("POST")
	api.HandleFunc("/me", h.Me).Methods("GET")

	api.HandleFunc("/stores", h.GetStores).Methods("GET")
	api.HandleFunc("/stores", h.UpsertStore).Methods("POST")
	api.HandleFunc("/stores/mine", h.GetMyStores).Methods("GET")
	api.HandleFunc("/stores/{slug}", h.GetStoreBySlug).Methods("GET")
	api.HandleFunc("/stores/{id}/products", h.GetStoreProducts).Methods("GET")

	api.HandleFunc("/categories", h.GetCategories).Methods("GET")
	api.HandleFunc("/categories/{slug}", h.GetCategoryBySlug).Methods("GET")
	api.HandleFunc("/subcategories", h.GetSubCategories).Methods("GET")

	api.HandleFunc("/products", h.GetProducts).Methods("GET")
	api.HandleFunc("/products", h.UpsertProduct).Methods("POST")
	api.HandleFunc("/products/{slug}", h.GetProductBySlug).Methods("GET")
	api.HandleFunc("/products/{id}", h.DeleteProduct).Methods("DELETE")

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middlewares.RequireRole(models.RoleAdmin))
	admin.HandleFunc("/categories", h.UpsertCategory).Methods("POST")
	admin.HandleFunc("/categories/{id}", h.DeleteCategory).Methods("DELETE")
	admin.HandleFunc("/subcategories", h.UpsertSubCategory).Methods("POST")
	admin.HandleFunc("/subcategories/{id}", h.DeleteSubCategory).Methods("DELETE")
	admin.HandleFunc("/stores/{id}", h.DeleteStore).Methods("DELETE")

	return router
}
