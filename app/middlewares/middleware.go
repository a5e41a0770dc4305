package middlewares

import (
	"context"
	"log"
	"net/http"

	"github.com/andikanugraha/go-multistore/app/helpers"
	"github.com/andikanugraha/go-multistore/app/repositories"
	"github.com/andikanugraha/go-multistore/app/utils/sessions"
)

// AuthMiddleware resolves the session's user and stores it in the request
// context. It never rejects: services make their own authn/authz decisions.
func AuthMiddleware(sessionStore sessions.SessionStore, userRepo repositories.UserRepositoryImpl) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := sessionStore.GetUserID(r)
			if userID == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil || user == nil {
				log.Printf("AuthMiddleware: error finding user %s: %v", userID, err)
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), helpers.ContextKeyUserID, user.ID)
			ctx = context.WithValue(ctx, helpers.ContextKeyUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
