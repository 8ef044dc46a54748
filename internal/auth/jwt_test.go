package auth

import (
	"strings"
	"testing"
	"time"

	"orioncatalog/internal/entity"
)

func TestNewManagerAndTokenLifecycle(t *testing.T) {
	mgr, err := NewManager("test-secret", "orion-catalog", 30*time.Minute)
	if err != nil {
		t.Fatalf("unexpected error creating manager: %v", err)
	}

	account := &entity.DbAccount{ID: 42, Email: "dev@orionos.example", Role: entity.RoleCoreDeveloper}
	token, expiresAt, err := mgr.GenerateToken(account)
	if err != nil {
		t.Fatalf("unexpected error generating token: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	if expiresAt.Before(time.Now()) {
		t.Fatal("expected future expiry time")
	}

	claims, err := mgr.ParseToken(token)
	if err != nil {
		t.Fatalf("unexpected error parsing token: %v", err)
	}
	if claims.UserID != account.ID {
		t.Fatalf("expected account id %d, got %d", account.ID, claims.UserID)
	}
	if !strings.EqualFold(claims.Email, account.Email) {
		t.Fatalf("expected email %s, got %s", account.Email, claims.Email)
	}
	if claims.Role != account.Role {
		t.Fatalf("expected role %s, got %s", account.Role, claims.Role)
	}
}

func TestNewManagerRequiresSecret(t *testing.T) {
	if _, err := NewManager("   ", "", time.Hour); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	mgr, err := NewManager("secret-a", "orion-catalog", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	other, err := NewManager("secret-b", "orion-catalog", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, _, err := mgr.GenerateToken(&entity.DbAccount{ID: 1, Email: "a@b.c", Role: entity.RoleMember})
	if err != nil {
		t.Fatalf("unexpected error generating token: %v", err)
	}

	if _, err := other.ParseToken(token); err == nil {
		t.Fatal("expected parse to fail with a different secret")
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	mgr, err := NewManager("test-secret", "orion-catalog", time.Nanosecond)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, _, err := mgr.GenerateToken(&entity.DbAccount{ID: 7, Email: "x@y.z", Role: entity.RoleMember})
	if err != nil {
		t.Fatalf("unexpected error generating token: %v", err)
	}

	time.Sleep(5 * time.Millisecond)
	if _, err := mgr.ParseToken(token); err == nil {
		t.Fatal("expected parse to fail for expired token")
	}
}
