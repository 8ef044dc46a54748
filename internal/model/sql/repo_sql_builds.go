package sql

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"orioncatalog/internal/entity"
)

func buildScope(db *gorm.DB) *gorm.DB {
	return db.Preload("Device").Preload("Device.Maintainer")
}

// CreateBuildRelease persists a new build release record.
func (r *GormRepository) CreateBuildRelease(ctx context.Context, build *entity.DbBuildRelease) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if build == nil {
		return fmt.Errorf("build release is nil")
	}
	return r.db.WithContext(ctx).Create(build).Error
}

// UpdateBuildRelease applies partial updates to an existing build release.
func (r *GormRepository) UpdateBuildRelease(ctx context.Context, id uint, updates map[string]interface{}) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid build release id")
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&entity.DbBuildRelease{}).Where("id = ?", id).Updates(updates).Error
}

// GetBuildReleaseByID loads a build with its device and the device's
// maintainer attached.
func (r *GormRepository) GetBuildReleaseByID(ctx context.Context, id uint) (*entity.DbBuildRelease, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return nil, fmt.Errorf("invalid build release id")
	}
	var build entity.DbBuildRelease
	if err := buildScope(r.db.WithContext(ctx)).First(&build, id).Error; err != nil {
		return nil, err
	}
	return &build, nil
}

// ListBuildReleases returns all builds, newest first.
func (r *GormRepository) ListBuildReleases(ctx context.Context) ([]entity.DbBuildRelease, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	var builds []entity.DbBuildRelease
	if err := buildScope(r.db.WithContext(ctx)).Order("created_at DESC, id DESC").Find(&builds).Error; err != nil {
		return nil, err
	}
	return builds, nil
}

// ListLatestBuildReleases returns at most limit builds, newest first.
func (r *GormRepository) ListLatestBuildReleases(ctx context.Context, limit int) ([]entity.DbBuildRelease, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	var builds []entity.DbBuildRelease
	err := buildScope(r.db.WithContext(ctx)).
		Order("created_at DESC, id DESC").
		Limit(clampLimit(limit)).
		Find(&builds).Error
	if err != nil {
		return nil, err
	}
	return builds, nil
}

// ListBuildReleasesByVersion returns builds tagged with a version string.
func (r *GormRepository) ListBuildReleasesByVersion(ctx context.Context, version string) ([]entity.DbBuildRelease, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	var builds []entity.DbBuildRelease
	err := buildScope(r.db.WithContext(ctx)).
		Where("version = ?", strings.TrimSpace(version)).
		Order("created_at DESC, id DESC").
		Find(&builds).Error
	if err != nil {
		return nil, err
	}
	return builds, nil
}

// ListBuildReleasesByDeviceID returns builds for one device, newest first.
func (r *GormRepository) ListBuildReleasesByDeviceID(ctx context.Context, deviceID uint) ([]entity.DbBuildRelease, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if deviceID == 0 {
		return nil, fmt.Errorf("invalid device id")
	}
	var builds []entity.DbBuildRelease
	err := buildScope(r.db.WithContext(ctx)).
		Where("device_id = ?", deviceID).
		Order("created_at DESC, id DESC").
		Find(&builds).Error
	if err != nil {
		return nil, err
	}
	return builds, nil
}

// ListBuildReleasesByMaintainer returns builds for all devices the given
// account maintains.
func (r *GormRepository) ListBuildReleasesByMaintainer(ctx context.Context, accountID uint) ([]entity.DbBuildRelease, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if accountID == 0 {
		return nil, fmt.Errorf("invalid account id")
	}
	var builds []entity.DbBuildRelease
	err := buildScope(r.db.WithContext(ctx)).
		Joins("JOIN devices ON devices.id = build_releases.device_id").
		Where("devices.maintainer_id = ?", accountID).
		Order("build_releases.created_at DESC, build_releases.id DESC").
		Find(&builds).Error
	if err != nil {
		return nil, err
	}
	return builds, nil
}

// DeleteBuildRelease removes a build release by ID.
func (r *GormRepository) DeleteBuildRelease(ctx context.Context, id uint) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid build release id")
	}
	result := r.db.WithContext(ctx).Delete(&entity.DbBuildRelease{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
