package service

import (
	"context"
	"testing"

	"orioncatalog/internal/entity"
)

func TestRegisterCreatesMemberAccount(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewAccountService(repo)
	ctx := context.Background()

	account, err := svc.Register(ctx, &entity.AuthRegisterRequest{
		Email:    "New.User@Example.COM",
		Password: "password123",
		Name:     "New User",
	})
	if err != nil {
		t.Fatalf("unexpected error registering: %v", err)
	}
	if account.Role != entity.RoleMember {
		t.Fatalf("expected role %s, got %s", entity.RoleMember, account.Role)
	}
	if account.Email != "new.user@example.com" {
		t.Fatalf("expected lowercased email, got %s", account.Email)
	}
	if !account.IsActive {
		t.Fatal("expected new account to be active")
	}

	authenticated, err := svc.Authenticate(ctx, "new.user@example.com", "password123")
	if err != nil {
		t.Fatalf("expected registered credentials to authenticate: %v", err)
	}
	if authenticated.ID != account.ID {
		t.Fatalf("expected account %d, got %d", account.ID, authenticated.ID)
	}
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewAccountService(repo)
	ctx := context.Background()

	req := &entity.AuthRegisterRequest{Email: "dup@orionos.example", Password: "password123", Name: "First"}
	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := svc.Register(ctx, &entity.AuthRegisterRequest{Email: "DUP@orionos.example", Password: "password456", Name: "Second"})
	wantKind(t, err, KindConflict)
}

func TestAuthenticateFailures(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewAccountService(repo)
	ctx := context.Background()

	account, err := svc.Register(ctx, &entity.AuthRegisterRequest{
		Email: "member@orionos.example", Password: "password123", Name: "Member",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.Authenticate(ctx, "unknown@orionos.example", "password123")
	wantKind(t, err, KindUnauthorized)

	_, err = svc.Authenticate(ctx, "member@orionos.example", "wrong-password")
	wantKind(t, err, KindUnauthorized)

	inactive := false
	if _, err := svc.Update(ctx, account.ID, &entity.AccountUpdateRequest{IsActive: &inactive}); err != nil {
		t.Fatalf("unexpected error disabling account: %v", err)
	}
	_, err = svc.Authenticate(ctx, "member@orionos.example", "password123")
	wantKind(t, err, KindForbidden)
}

func TestAccountUpdateRejectsUnknownRole(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewAccountService(repo)
	ctx := context.Background()

	account := seedAccount(t, repo, "role@orionos.example", entity.RoleMember)

	badRole := "SUPERUSER"
	_, err := svc.Update(ctx, account.ID, &entity.AccountUpdateRequest{Role: &badRole})
	wantKind(t, err, KindValidation)

	goodRole := "core_developer"
	updated, err := svc.Update(ctx, account.ID, &entity.AccountUpdateRequest{Role: &goodRole})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Role != entity.RoleCoreDeveloper {
		t.Fatalf("expected role %s, got %s", entity.RoleCoreDeveloper, updated.Role)
	}
}

func TestAccountDeleteRules(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewAccountService(repo)
	ctx := context.Background()

	admin := seedAccount(t, repo, "admin@orionos.example", entity.RoleAdmin)
	member := seedAccount(t, repo, "member@orionos.example", entity.RoleMember)

	err := svc.Delete(ctx, callerFor(admin), admin.ID)
	wantKind(t, err, KindValidation)

	if err := svc.Delete(ctx, callerFor(admin), member.ID); err != nil {
		t.Fatalf("unexpected error deleting member: %v", err)
	}

	err = svc.Delete(ctx, callerFor(admin), member.ID)
	wantKind(t, err, KindNotFound)
}

func TestListByRoleValidatesRole(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewAccountService(repo)
	ctx := context.Background()

	seedAccount(t, repo, "dev@orionos.example", entity.RoleCoreDeveloper)
	seedAccount(t, repo, "member@orionos.example", entity.RoleMember)

	_, err := svc.ListByRole(ctx, "wizard")
	wantKind(t, err, KindValidation)

	devs, err := svc.ListByRole(ctx, "core_developer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(devs) != 1 || devs[0].Role != entity.RoleCoreDeveloper {
		t.Fatalf("expected one core developer, got %d", len(devs))
	}
}
