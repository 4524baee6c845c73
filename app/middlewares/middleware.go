package middlewares

import (
	"net/http"

	"github.com/shopmind/go-storefront/app/helpers"
	"github.com/shopmind/go-storefront/app/repositories"
	"github.com/shopmind/go-storefront/app/utils/sessions"
	"github.com/unrolled/render"
)

// SessionUserMiddleware resolves the session's user ID into the request
// context. It never rejects; gating is LoginRequired's job.
func SessionUserMiddleware(sessionStore sessions.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if userID := sessionStore.GetUserID(r); userID != "" {
				r = r.WithContext(helpers.ContextWithUserID(r.Context(), userID))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func LoginRequired(rnd *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if helpers.UserIDFromContext(r.Context()) == "" {
				_ = rnd.JSON(w, http.StatusUnauthorized, map[string]interface{}{
					"error": "Login required.",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func SuperuserRequired(rnd *render.Render, userRepo repositories.UserRepositoryImpl) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := helpers.UserIDFromContext(r.Context())
			if userID == "" {
				_ = rnd.JSON(w, http.StatusUnauthorized, map[string]interface{}{
					"error": "Login required.",
				})
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil || user == nil || !user.Superuser {
				_ = rnd.JSON(w, http.StatusForbidden, map[string]interface{}{
					"error": "You do not have permission to perform this action.",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
