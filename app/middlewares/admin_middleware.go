package middlewares

import (
	"log"
	"net/http"

	"github.com/andikanugraha/go-multistore/app/helpers"
	"github.com/andikanugraha/go-multistore/app/models"
)

// RequireRole rejects requests whose context user does not carry the given
// role. Services still re-check; this keeps obvious failures off the
// service layer and out of the logs.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := r.Context().Value(helpers.ContextKeyUser).(*models.User)
			if !ok || user == nil {
				http.Error(w, `{"error":"unauthenticated: sign in to continue"}`, http.StatusUnauthorized)
				return
			}

			if user.Role != role {
				log.Printf("RequireRole: user %s (%s) attempted an action requiring the %s role", user.ID, user.Email, role)
				http.Error(w, `{"error":"unauthorized: `+role+` role required"}`, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
