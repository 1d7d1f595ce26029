package middleware

import (
	"context"
	"net/http"
	"strings"

	"go-kanban-board/internal/model"
	"go-kanban-board/internal/token"
)

type tokenValidator interface {
	ValidateToken(raw string) (token.Claims, error)
}

type contextKey string

const authClaimsContextKey contextKey = "auth_claims"

// AuthMiddleware gates requests on a bearer token. It only checks structure
// and signature; an expired but validly signed token is still admitted, so
// expiry is enforced by token lifetime alone.
type AuthMiddleware struct {
	validator tokenValidator
}

func NewAuthMiddleware(validator tokenValidator) *AuthMiddleware {
	return &AuthMiddleware{validator: validator}
}

func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The token is the second whitespace-delimited field; the scheme
		// word itself is not validated.
		fields := strings.Fields(r.Header.Get("Authorization"))
		if len(fields) < 2 {
			writeMessage(w, http.StatusUnauthorized, "Access denied. No token provided.")
			return
		}

		claims, err := m.validator.ValidateToken(fields[1])
		if err != nil {
			writeMessage(w, http.StatusForbidden, "Invalid token.")
			return
		}

		ctx := context.WithValue(r.Context(), authClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFromContext returns the authenticated claims attached by RequireAuth.
func ClaimsFromContext(ctx context.Context) (token.Claims, bool) {
	claims, ok := ctx.Value(authClaimsContextKey).(token.Claims)
	return claims, ok
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = jsonEncode(w, model.MessageResponse{Message: message})
}
