package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/planillapa/planilla-backend-go/internal/domain/user"
	"github.com/planillapa/planilla-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter(t *testing.T) (*chi.Mux, jwt.Service) {
	t.Helper()
	svc := jwt.NewJWTService("test-secret-key-for-jwt", "1h")

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(svc.JWTAuth()))
		r.Use(AuthRequired(svc.JWTAuth()))

		r.Get("/open", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		r.Group(func(r chi.Router) {
			r.Use(RequireAdmin)
			r.Get("/admin", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
		})
		r.Group(func(r chi.Router) {
			r.Use(RequireAccountant)
			r.Get("/write", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
		})
	})
	return r, svc
}

func doRequest(t *testing.T, r http.Handler, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired(t *testing.T) {
	r, svc := testRouter(t)

	t.Run("missing token", func(t *testing.T) {
		rec := doRequest(t, r, "/open", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := doRequest(t, r, "/open", "not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token, _, err := svc.GenerateAccessToken("user-1", "company-1", user.RoleViewer)
		require.NoError(t, err)

		rec := doRequest(t, r, "/open", token)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRoleMiddleware(t *testing.T) {
	r, svc := testRouter(t)

	tokenFor := func(role user.Role) string {
		token, _, err := svc.GenerateAccessToken("user-1", "company-1", role)
		require.NoError(t, err)
		return token
	}

	tests := []struct {
		name string
		path string
		role user.Role
		want int
	}{
		{"admin hits admin route", "/admin", user.RoleAdmin, http.StatusOK},
		{"accountant blocked from admin route", "/admin", user.RoleAccountant, http.StatusForbidden},
		{"viewer blocked from admin route", "/admin", user.RoleViewer, http.StatusForbidden},
		{"admin hits write route", "/write", user.RoleAdmin, http.StatusOK},
		{"accountant hits write route", "/write", user.RoleAccountant, http.StatusOK},
		{"viewer blocked from write route", "/write", user.RoleViewer, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, r, tt.path, tokenFor(tt.role))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
