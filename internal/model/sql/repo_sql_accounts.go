package sql

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"orioncatalog/internal/entity"
)

// CreateAccount persists a new account record.
func (r *GormRepository) CreateAccount(ctx context.Context, account *entity.DbAccount) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if account == nil {
		return fmt.Errorf("account is nil")
	}
	return r.db.WithContext(ctx).Create(account).Error
}

// UpdateAccount applies partial updates to an existing account.
func (r *GormRepository) UpdateAccount(ctx context.Context, id uint, updates map[string]interface{}) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid account id")
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&entity.DbAccount{}).Where("id = ?", id).Updates(updates).Error
}

// GetAccountByEmail loads an account by email, case-insensitively.
func (r *GormRepository) GetAccountByEmail(ctx context.Context, email string) (*entity.DbAccount, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return nil, fmt.Errorf("email is empty")
	}

	var account entity.DbAccount
	if err := r.db.WithContext(ctx).Where("LOWER(email) = ?", strings.ToLower(trimmed)).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// GetAccountByID loads an account with its maintained devices.
func (r *GormRepository) GetAccountByID(ctx context.Context, id uint) (*entity.DbAccount, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return nil, fmt.Errorf("invalid account id")
	}
	var account entity.DbAccount
	if err := r.db.WithContext(ctx).Preload("MaintainedDevices").First(&account, id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// ListAccounts returns all accounts, newest first.
func (r *GormRepository) ListAccounts(ctx context.Context) ([]entity.DbAccount, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	var accounts []entity.DbAccount
	if err := r.db.WithContext(ctx).Preload("MaintainedDevices").Order("created_at DESC").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// ListAccountsByRole returns active accounts holding the given role,
// ordered by name.
func (r *GormRepository) ListAccountsByRole(ctx context.Context, role entity.Role) ([]entity.DbAccount, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	var accounts []entity.DbAccount
	err := r.db.WithContext(ctx).
		Preload("MaintainedDevices").
		Where("role = ? AND is_active = ?", role, true).
		Order("name ASC").
		Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// DeleteAccount removes an account by ID.
func (r *GormRepository) DeleteAccount(ctx context.Context, id uint) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid account id")
	}
	result := r.db.WithContext(ctx).Delete(&entity.DbAccount{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountAccounts returns the total account count.
func (r *GormRepository) CountAccounts(ctx context.Context) (int64, error) {
	if r == nil || r.db == nil {
		return 0, fmt.Errorf("repository not initialised")
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.DbAccount{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
