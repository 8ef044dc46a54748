package sql

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"orioncatalog/internal/entity"
)

// CreateSourceRelease persists a new source release record.
func (r *GormRepository) CreateSourceRelease(ctx context.Context, release *entity.DbSourceRelease) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if release == nil {
		return fmt.Errorf("source release is nil")
	}
	return r.db.WithContext(ctx).Create(release).Error
}

// UpdateSourceRelease applies partial updates to an existing source release.
func (r *GormRepository) UpdateSourceRelease(ctx context.Context, id uint, updates map[string]interface{}) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid source release id")
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&entity.DbSourceRelease{}).Where("id = ?", id).Updates(updates).Error
}

// GetSourceReleaseByID loads a source release by ID.
func (r *GormRepository) GetSourceReleaseByID(ctx context.Context, id uint) (*entity.DbSourceRelease, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return nil, fmt.Errorf("invalid source release id")
	}
	var release entity.DbSourceRelease
	if err := r.db.WithContext(ctx).First(&release, id).Error; err != nil {
		return nil, err
	}
	return &release, nil
}

// GetSourceReleaseByVersion loads a source release by its unique version.
func (r *GormRepository) GetSourceReleaseByVersion(ctx context.Context, version string) (*entity.DbSourceRelease, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	trimmed := strings.TrimSpace(version)
	if trimmed == "" {
		return nil, fmt.Errorf("version is empty")
	}
	var release entity.DbSourceRelease
	if err := r.db.WithContext(ctx).Where("version = ?", trimmed).First(&release).Error; err != nil {
		return nil, err
	}
	return &release, nil
}

// ListSourceReleases returns all source releases, newest release date first.
func (r *GormRepository) ListSourceReleases(ctx context.Context) ([]entity.DbSourceRelease, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	var releases []entity.DbSourceRelease
	if err := r.db.WithContext(ctx).Order("release_date DESC, id DESC").Find(&releases).Error; err != nil {
		return nil, err
	}
	return releases, nil
}

// ListSourceReleasesByCodename returns releases for a codename track.
func (r *GormRepository) ListSourceReleasesByCodename(ctx context.Context, codenameVersion string) ([]entity.DbSourceRelease, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	var releases []entity.DbSourceRelease
	err := r.db.WithContext(ctx).
		Where("codename_version = ?", strings.TrimSpace(codenameVersion)).
		Order("release_date DESC, id DESC").
		Find(&releases).Error
	if err != nil {
		return nil, err
	}
	return releases, nil
}

// LatestSourceRelease returns the single newest release by release date.
func (r *GormRepository) LatestSourceRelease(ctx context.Context) (*entity.DbSourceRelease, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	var release entity.DbSourceRelease
	if err := r.db.WithContext(ctx).Order("release_date DESC, id DESC").First(&release).Error; err != nil {
		return nil, err
	}
	return &release, nil
}

// DeleteSourceRelease removes a source release by ID.
func (r *GormRepository) DeleteSourceRelease(ctx context.Context, id uint) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid source release id")
	}
	result := r.db.WithContext(ctx).Delete(&entity.DbSourceRelease{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
