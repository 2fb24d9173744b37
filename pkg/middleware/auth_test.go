package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/shopify-discount-api/internal/config"
	"github.com/vfg2006/shopify-discount-api/internal/domain"
	"github.com/vfg2006/shopify-discount-api/internal/usecases/authenticating"
)

type stubAuthenticator struct {
	claims *domain.Claims
	err    error
}

func (s *stubAuthenticator) LoginUser(email, password string) (string, error) {
	return "", nil
}

func (s *stubAuthenticator) GetUserProfile(userID int) (*domain.User, error) {
	return nil, nil
}

func (s *stubAuthenticator) ValidateToken(tokenString string) (*domain.Claims, error) {
	return s.claims, s.err
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &config.Config{CronSecret: "segredo-da-cron"}

	tests := []struct {
		name           string
		path           string
		headers        map[string]string
		authenticator  authenticating.Authenticator
		expectedStatus int
		expectedClaims *domain.Claims
	}{
		{
			name:           "Rota pública passa sem credenciais",
			path:           "/healthcheck",
			authenticator:  &stubAuthenticator{},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Login passa sem credenciais",
			path:           "/v1/login",
			authenticator:  &stubAuthenticator{},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Sem header de autorização é rejeitado",
			path:           "/v1/cron/status",
			authenticator:  &stubAuthenticator{},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "Segredo da cron válido injeta claims de administrador",
			path: "/v1/cron/auto-discount/run",
			headers: map[string]string{
				"X-Cron-Secret": "segredo-da-cron",
			},
			authenticator:  &stubAuthenticator{},
			expectedStatus: http.StatusOK,
			expectedClaims: &domain.Claims{UserName: "scheduler", UserActive: true, UserRoleID: RoleAdmin},
		},
		{
			name: "Segredo da cron inválido é rejeitado",
			path: "/v1/cron/auto-discount/run",
			headers: map[string]string{
				"X-Cron-Secret": "errado",
			},
			authenticator:  &stubAuthenticator{},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "Token JWT válido injeta as claims do usuário",
			path: "/v1/me",
			headers: map[string]string{
				"Authorization": "Bearer token-valido",
			},
			authenticator: &stubAuthenticator{
				claims: &domain.Claims{UserID: 7, UserRoleID: RoleSupervisor},
			},
			expectedStatus: http.StatusOK,
			expectedClaims: &domain.Claims{UserID: 7, UserRoleID: RoleSupervisor},
		},
		{
			name: "Token JWT inválido é rejeitado",
			path: "/v1/me",
			headers: map[string]string{
				"Authorization": "Bearer token-invalido",
			},
			authenticator:  &stubAuthenticator{err: assert.AnError},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "Header sem prefixo Bearer é rejeitado",
			path: "/v1/me",
			headers: map[string]string{
				"Authorization": "token-sem-prefixo",
			},
			authenticator:  &stubAuthenticator{},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotClaims *domain.Claims
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if claims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims); ok {
					gotClaims = claims
				}
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(tt.authenticator, cfg)(next)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			for key, value := range tt.headers {
				req.Header.Set(key, value)
			}

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, req)

			assert.Equal(t, tt.expectedStatus, recorder.Code)

			if tt.expectedClaims != nil {
				assert.Equal(t, tt.expectedClaims, gotClaims)
			}
		})
	}
}

func TestAuthMiddleware_SegredoNaoConfigurado(t *testing.T) {
	// Sem CRON_SECRET configurado, o header nunca autentica
	cfg := &config.Config{CronSecret: ""}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := AuthMiddleware(&stubAuthenticator{}, cfg)(next)

	req := httptest.NewRequest(http.MethodPost, "/v1/cron/auto-discount/run", nil)
	req.Header.Set("X-Cron-Secret", "qualquer")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
