package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"orioncatalog/internal/auth"
	"orioncatalog/internal/entity"
	"orioncatalog/internal/model"
)

// AccountService owns registration, credential checks and account
// administration.
type AccountService struct {
	repo model.Repository
}

// NewAccountService creates an account service backed by the repository.
func NewAccountService(repo model.Repository) *AccountService {
	return &AccountService{repo: repo}
}

// Register creates a new MEMBER account. Roles are never taken from the
// registration payload; promotion goes through the elevated update path.
func (s *AccountService) Register(ctx context.Context, req *entity.AuthRegisterRequest) (*entity.DbAccount, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	password := strings.TrimSpace(req.Password)
	if email == "" || password == "" {
		return nil, validationErr("email and password are required")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, internalErr("failed to hash password", err)
	}

	account := &entity.DbAccount{
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(req.Name),
		ProfileImage: strings.TrimSpace(req.ProfileImage),
		Role:         entity.RoleMember,
		IsActive:     true,
		SocialLinks:  req.SocialLinks,
	}

	if err := s.repo.CreateAccount(ctx, account); err != nil {
		return nil, classifyRepoErr(err, "account not found", "email already registered")
	}
	return account, nil
}

// Authenticate verifies email/password and returns the matching active
// account. Unknown email and wrong password fail identically.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*entity.DbAccount, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return nil, validationErr("email and password are required")
	}

	account, err := s.repo.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, unauthorizedErr("invalid email or password")
		}
		return nil, internalErr("failed to load account", err)
	}

	if !account.IsActive {
		return nil, forbiddenErr("account is disabled")
	}

	if err := auth.VerifyPassword(account.PasswordHash, password); err != nil {
		return nil, unauthorizedErr("invalid email or password")
	}
	return account, nil
}

// Get loads an account with its maintained devices.
func (s *AccountService) Get(ctx context.Context, id uint) (*entity.DbAccount, error) {
	account, err := s.repo.GetAccountByID(ctx, id)
	if err != nil {
		return nil, classifyRepoErr(err, "account not found", "")
	}
	return account, nil
}

// ListAll returns every account, newest first.
func (s *AccountService) ListAll(ctx context.Context) ([]entity.DbAccount, error) {
	accounts, err := s.repo.ListAccounts(ctx)
	if err != nil {
		return nil, internalErr("failed to list accounts", err)
	}
	return accounts, nil
}

// ListByRole returns active accounts holding a role.
func (s *AccountService) ListByRole(ctx context.Context, rawRole string) ([]entity.DbAccount, error) {
	role, ok := entity.ParseRole(rawRole)
	if !ok {
		return nil, validationErr("invalid role")
	}
	accounts, err := s.repo.ListAccountsByRole(ctx, role)
	if err != nil {
		return nil, internalErr("failed to list accounts", err)
	}
	return accounts, nil
}

// Update applies a partial update to an account and returns the fresh row.
func (s *AccountService) Update(ctx context.Context, id uint, req *entity.AccountUpdateRequest) (*entity.DbAccount, error) {
	existing, err := s.repo.GetAccountByID(ctx, id)
	if err != nil {
		return nil, classifyRepoErr(err, "account not found", "")
	}

	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.ProfileImage != nil {
		updates["profile_image"] = strings.TrimSpace(*req.ProfileImage)
	}
	if req.Password != nil {
		password := strings.TrimSpace(*req.Password)
		if password == "" {
			return nil, validationErr("password must not be empty")
		}
		hash, err := auth.HashPassword(password)
		if err != nil {
			return nil, internalErr("failed to hash password", err)
		}
		updates["password_hash"] = hash
	}
	if req.Role != nil {
		role, ok := entity.ParseRole(*req.Role)
		if !ok {
			return nil, validationErr("invalid role")
		}
		updates["role"] = role
	}
	if req.SocialLinks != nil {
		updates["social_links"] = *req.SocialLinks
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) == 0 {
		return existing, nil
	}

	if err := s.repo.UpdateAccount(ctx, existing.ID, updates); err != nil {
		return nil, classifyRepoErr(err, "account not found", "email already registered")
	}

	updated, err := s.repo.GetAccountByID(ctx, existing.ID)
	if err != nil {
		return nil, internalErr("failed to reload account", err)
	}
	return updated, nil
}

// Delete removes an account. Callers cannot delete themselves.
func (s *AccountService) Delete(ctx context.Context, caller *entity.Caller, id uint) error {
	if caller != nil && caller.ID == id {
		return validationErr("cannot delete current account")
	}
	if _, err := s.repo.GetAccountByID(ctx, id); err != nil {
		return classifyRepoErr(err, "account not found", "")
	}
	if err := s.repo.DeleteAccount(ctx, id); err != nil {
		return classifyRepoErr(err, "account not found", "")
	}
	return nil
}
