package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"orioncatalog/internal/config"
	"orioncatalog/internal/entity"
	"orioncatalog/internal/model"
)

func newTestRepo(t *testing.T) model.Repository {
	t.Helper()
	cfg := &config.Config{
		DBType: model.DBTypeSQLite,
		DBPath: filepath.Join(t.TempDir(), "catalog.db"),
	}
	repo, err := model.InitRepository(cfg)
	if err != nil {
		t.Fatalf("failed to initialise test repository: %v", err)
	}
	return repo
}

func seedAccount(t *testing.T, repo model.Repository, email string, role entity.Role) *entity.DbAccount {
	t.Helper()
	account := &entity.DbAccount{
		Email:        email,
		PasswordHash: "not-a-real-hash",
		Name:         "Test Account",
		Role:         role,
		IsActive:     true,
	}
	if err := repo.CreateAccount(context.Background(), account); err != nil {
		t.Fatalf("failed to seed account %s: %v", email, err)
	}
	return account
}

func seedDevice(t *testing.T, repo model.Repository, codename string, maintainerID uint) *entity.DbDevice {
	t.Helper()
	device := &entity.DbDevice{
		Name:         "Device " + codename,
		Codename:     codename,
		Status:       entity.DeviceStatusActive,
		MaintainerID: maintainerID,
	}
	if err := repo.CreateDevice(context.Background(), device); err != nil {
		t.Fatalf("failed to seed device %s: %v", codename, err)
	}
	return device
}

func seedSourceRelease(t *testing.T, repo model.Repository, version string, releaseDate time.Time) *entity.DbSourceRelease {
	t.Helper()
	release := &entity.DbSourceRelease{
		Version:         version,
		CodenameVersion: "nova",
		ReleaseDate:     releaseDate,
	}
	if err := repo.CreateSourceRelease(context.Background(), release); err != nil {
		t.Fatalf("failed to seed source release %s: %v", version, err)
	}
	return release
}

func callerFor(account *entity.DbAccount) *entity.Caller {
	return &entity.Caller{ID: account.ID, Email: account.Email, Role: account.Role}
}

func wantKind(t *testing.T, err error, kind Kind) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	svcErr, ok := AsError(err)
	if !ok {
		t.Fatalf("expected a service error, got %T: %v", err, err)
	}
	if svcErr.Kind != kind {
		t.Fatalf("expected error kind %d, got %d (%s)", kind, svcErr.Kind, svcErr.Message)
	}
}
