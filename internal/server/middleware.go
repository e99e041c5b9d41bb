package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/mestakip/tiretrack/internal/user/domain"
	"github.com/mestakip/tiretrack/pkg/auth"
	"github.com/mestakip/tiretrack/pkg/authz"
)

type contextKey string

const (
	UserIDKey      contextKey = "user_id"
	UsernameKey    contextKey = "username"
	RoleKey        contextKey = "role"
	IsSuperuserKey contextKey = "is_superuser"
)

// AuthMiddleware validates the bearer JWT and stores identity in the context
func AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			RespondError(w, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			RespondError(w, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		claims, err := auth.ValidateToken(parts[1])
		if err != nil {
			RespondError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, UsernameKey, claims.Username)
		ctx = context.WithValue(ctx, RoleKey, claims.Role)
		ctx = context.WithValue(ctx, IsSuperuserKey, claims.IsSuperuser)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// Auth is the router-level form of AuthMiddleware for use with mux.Use
func Auth(next http.Handler) http.Handler {
	return AuthMiddleware(next.ServeHTTP)
}

// AdminMiddleware requires an authenticated admin
func AdminMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		if !ScopeFromContext(r.Context()).Admin {
			RespondError(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ScopeFromContext builds the visibility scope for the authenticated user
func ScopeFromContext(ctx context.Context) authz.Scope {
	scope := authz.Scope{}
	if id, ok := ctx.Value(UserIDKey).(uint); ok {
		scope.UserID = id
	}
	role, _ := ctx.Value(RoleKey).(string)
	superuser, _ := ctx.Value(IsSuperuserKey).(bool)
	scope.Admin = superuser || role == domain.RoleAdmin
	return scope
}
