package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/espresso-tracker/internal/logger"
	"github.com/sbilibin2017/espresso-tracker/internal/models"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

// Tokener extracts the bearer token from a request.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// IdentityResolver maps a token to the user it was issued to.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, token string) (*models.User, error)
}

type userContextKey struct{}

// WithUser returns a copy of ctx carrying the acting user.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// UserFromContext returns the user stored by AuthMiddleware.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userContextKey{}).(*models.User)
	return user, ok && user != nil
}

// AuthMiddleware resolves the bearer token to the acting user and stores it
// in the request context. Requests without a valid token get 401.
func AuthMiddleware(tokener Tokener, resolver IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Infow("authorization failed", "error", err)
				writeUnauthorized(w, "Not authenticated")
				return
			}

			user, err := resolver.ResolveIdentity(ctx, tokenString)
			if err != nil {
				logger.Log.Infow("authorization failed", "error", err)
				writeUnauthorized(w, "Could not validate credentials")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(ctx, user)))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
