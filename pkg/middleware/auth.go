package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/creator-platform-api/internal/usecases/authenticating"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// isPublicPath indica rotas que dispensam autenticação: login, registro,
// healthcheck, o redirecionamento público de links de afiliado e os webhooks
// dos provedores externos
func isPublicPath(path string) bool {
	switch path {
	case "/v1/login", "/v1/register", "/healthcheck",
		"/v1/webhooks/mailer", "/v1/webhooks/payment":
		return true
	}

	return strings.HasPrefix(path, "/r/")
}

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				http.Error(w, "Bearer token is required", http.StatusUnauthorized)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
