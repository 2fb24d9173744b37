package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/vfg2006/shopify-discount-api/internal/config"
	"github.com/vfg2006/shopify-discount-api/internal/domain"
	"github.com/vfg2006/shopify-discount-api/internal/usecases/authenticating"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// AuthMiddleware autentica as requisições. Além do JWT de usuário, aceita o
// header X-Cron-Secret para que o agendador externo dispare o ciclo sem
// credenciais de usuário; o segredo injeta claims de administrador de sistema.
func AuthMiddleware(authService authenticating.Authenticator, cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/v1/login" || r.URL.Path == "/healthcheck" {
				next.ServeHTTP(w, r)
				return
			}

			if cronSecret := r.Header.Get("X-Cron-Secret"); cronSecret != "" {
				if cfg.CronSecret == "" ||
					subtle.ConstantTimeCompare([]byte(cronSecret), []byte(cfg.CronSecret)) != 1 {
					http.Error(w, "Invalid cron secret", http.StatusUnauthorized)
					return
				}

				claims := &domain.Claims{
					UserName:   "scheduler",
					UserActive: true,
					UserRoleID: RoleAdmin,
				}

				ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
				next.ServeHTTP(w, r.WithContext(ctx))
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
