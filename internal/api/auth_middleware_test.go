package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"orioncatalog/internal/auth"
	"orioncatalog/internal/config"
	"orioncatalog/internal/entity"
	"orioncatalog/internal/model"
)

const testJWTSecret = "middleware-test-secret"

func newTestHandler(t *testing.T) (*HTTPHandler, model.Repository) {
	t.Helper()
	cfg := config.Config{
		DBType:    model.DBTypeSQLite,
		DBPath:    filepath.Join(t.TempDir(), "catalog.db"),
		JWTSecret: testJWTSecret,
	}
	repo, err := model.InitRepository(&cfg)
	if err != nil {
		t.Fatalf("failed to initialise repository: %v", err)
	}
	handler, err := NewHTTPHandler(cfg, repo, nil)
	if err != nil {
		t.Fatalf("failed to create handler: %v", err)
	}
	return handler, repo
}

func seedTestAccount(t *testing.T, repo model.Repository, email string, role entity.Role, active bool) *entity.DbAccount {
	t.Helper()
	account := &entity.DbAccount{
		Email:        email,
		PasswordHash: "not-a-real-hash",
		Name:         "Middleware Test",
		Role:         role,
		IsActive:     active,
	}
	if err := repo.CreateAccount(context.Background(), account); err != nil {
		t.Fatalf("failed to seed account: %v", err)
	}
	if !active {
		if err := repo.UpdateAccount(context.Background(), account.ID, map[string]interface{}{"is_active": false}); err != nil {
			t.Fatalf("failed to deactivate account: %v", err)
		}
	}
	return account
}

func tokenFor(t *testing.T, account *entity.DbAccount) string {
	t.Helper()
	mgr, err := auth.NewManager(testJWTSecret, "orion-catalog", time.Hour)
	if err != nil {
		t.Fatalf("failed to create token manager: %v", err)
	}
	token, _, err := mgr.GenerateToken(account)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return token
}

func newTestRouter(handler *HTTPHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", handler.AuthMiddleware(), func(c *gin.Context) {
		RespondOK(c, "ok", nil)
	})
	r.GET("/elevated", handler.AuthMiddleware(), handler.RequireElevated(), func(c *gin.Context) {
		RespondOK(c, "ok", nil)
	})
	return r
}

func TestAuthMiddlewareRejectsMissingAndBadTokens(t *testing.T) {
	handler, _ := newTestHandler(t)
	router := newTestRouter(handler)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "wrong scheme", header: "Basic abc123"},
		{name: "empty bearer", header: "Bearer   "},
		{name: "garbage token", header: "Bearer not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected status 401, got %d", w.Code)
			}
		})
	}
}

func TestAuthMiddlewareRejectsUnknownAccount(t *testing.T) {
	handler, _ := newTestHandler(t)
	router := newTestRouter(handler)

	ghost := &entity.DbAccount{ID: 777, Email: "ghost@orionos.example", Role: entity.RoleMember}
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, ghost))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for deleted account, got %d", w.Code)
	}
}

func TestAuthMiddlewareRejectsDisabledAccount(t *testing.T) {
	handler, repo := newTestHandler(t)
	router := newTestRouter(handler)

	disabled := seedTestAccount(t, repo, "disabled@orionos.example", entity.RoleMember, false)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, disabled))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status 403 for disabled account, got %d", w.Code)
	}
}

func TestRequireElevatedSplitsByRole(t *testing.T) {
	handler, repo := newTestHandler(t)
	router := newTestRouter(handler)

	tests := []struct {
		name           string
		role           entity.Role
		email          string
		expectedStatus int
	}{
		{name: "admin passes", role: entity.RoleAdmin, email: "admin@orionos.example", expectedStatus: http.StatusOK},
		{name: "founder passes", role: entity.RoleFounder, email: "founder@orionos.example", expectedStatus: http.StatusOK},
		{name: "co-founder passes", role: entity.RoleCoFounder, email: "cofounder@orionos.example", expectedStatus: http.StatusOK},
		{name: "core developer rejected", role: entity.RoleCoreDeveloper, email: "dev@orionos.example", expectedStatus: http.StatusForbidden},
		{name: "member rejected", role: entity.RoleMember, email: "member@orionos.example", expectedStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := seedTestAccount(t, repo, tt.email, tt.role, true)
			req := httptest.NewRequest(http.MethodGet, "/elevated", nil)
			req.Header.Set("Authorization", "Bearer "+tokenFor(t, account))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}
