package sql

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"orioncatalog/internal/entity"
)

// deviceScope attaches the eager relations every device read returns:
// the maintainer and the device's builds, newest first.
func deviceScope(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Maintainer").
		Preload("Builds", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at DESC")
		})
}

// CreateDevice persists a new device record.
func (r *GormRepository) CreateDevice(ctx context.Context, device *entity.DbDevice) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if device == nil {
		return fmt.Errorf("device is nil")
	}
	return r.db.WithContext(ctx).Create(device).Error
}

// UpdateDevice applies partial updates to an existing device.
func (r *GormRepository) UpdateDevice(ctx context.Context, id uint, updates map[string]interface{}) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid device id")
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&entity.DbDevice{}).Where("id = ?", id).Updates(updates).Error
}

// GetDeviceByID loads a device with maintainer and builds.
func (r *GormRepository) GetDeviceByID(ctx context.Context, id uint) (*entity.DbDevice, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return nil, fmt.Errorf("invalid device id")
	}
	var device entity.DbDevice
	if err := deviceScope(r.db.WithContext(ctx)).First(&device, id).Error; err != nil {
		return nil, err
	}
	return &device, nil
}

// GetDeviceByCodename loads a device by its unique codename.
func (r *GormRepository) GetDeviceByCodename(ctx context.Context, codename string) (*entity.DbDevice, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	trimmed := strings.TrimSpace(codename)
	if trimmed == "" {
		return nil, fmt.Errorf("codename is empty")
	}
	var device entity.DbDevice
	if err := deviceScope(r.db.WithContext(ctx)).Where("codename = ?", trimmed).First(&device).Error; err != nil {
		return nil, err
	}
	return &device, nil
}

// ListDevices returns devices ordered by name, optionally only active ones.
func (r *GormRepository) ListDevices(ctx context.Context, activeOnly bool) ([]entity.DbDevice, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	query := deviceScope(r.db.WithContext(ctx))
	if activeOnly {
		query = query.Where("status = ?", entity.DeviceStatusActive)
	}
	var devices []entity.DbDevice
	if err := query.Order("name ASC").Find(&devices).Error; err != nil {
		return nil, err
	}
	return devices, nil
}

// SearchDevices performs a case-insensitive substring match over device
// name and codename.
func (r *GormRepository) SearchDevices(ctx context.Context, query string) ([]entity.DbDevice, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	keyword := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	var devices []entity.DbDevice
	err := deviceScope(r.db.WithContext(ctx)).
		Where("LOWER(name) LIKE ? OR LOWER(codename) LIKE ?", keyword, keyword).
		Order("name ASC").
		Find(&devices).Error
	if err != nil {
		return nil, err
	}
	return devices, nil
}

// DeleteDevice removes a device by ID. Referential cleanup of builds and
// announcements is left to the storage layer's own constraints.
func (r *GormRepository) DeleteDevice(ctx context.Context, id uint) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid device id")
	}
	result := r.db.WithContext(ctx).Delete(&entity.DbDevice{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
