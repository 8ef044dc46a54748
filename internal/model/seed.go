package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"orioncatalog/internal/auth"
	"orioncatalog/internal/config"
	"orioncatalog/internal/entity"
)

// SeedAdminAccount creates the bootstrap ADMIN account from configuration
// when the accounts table is empty. Without it a fresh deployment has no
// way to reach the elevated endpoints.
func SeedAdminAccount(ctx context.Context, repo Repository, cfg config.Config) error {
	if repo == nil {
		return fmt.Errorf("repository is nil")
	}

	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))
	password := strings.TrimSpace(cfg.AdminPassword)
	if email == "" || password == "" {
		logrus.Debug("admin seed skipped: ADMIN_EMAIL/ADMIN_PASSWORD not set")
		return nil
	}

	count, err := repo.CountAccounts(ctx)
	if err != nil {
		return fmt.Errorf("count accounts: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &entity.DbAccount{
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(cfg.AdminName),
		Role:         entity.RoleAdmin,
		IsActive:     true,
	}
	if err := repo.CreateAccount(ctx, admin); err != nil {
		return fmt.Errorf("create admin account: %w", err)
	}

	logrus.WithField("email", email).Info("seeded bootstrap admin account")
	return nil
}
