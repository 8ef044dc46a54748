package sql

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"orioncatalog/internal/entity"
)

func announcementScope(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Developer").
		Preload("SourceRelease").
		Preload("Device").
		Preload("Device.Maintainer")
}

// CreateAnnouncement persists a new announcement record.
func (r *GormRepository) CreateAnnouncement(ctx context.Context, announcement *entity.DbAnnouncement) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if announcement == nil {
		return fmt.Errorf("announcement is nil")
	}
	return r.db.WithContext(ctx).Create(announcement).Error
}

// UpdateAnnouncement applies partial updates to an existing announcement.
func (r *GormRepository) UpdateAnnouncement(ctx context.Context, id uint, updates map[string]interface{}) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid announcement id")
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&entity.DbAnnouncement{}).Where("id = ?", id).Updates(updates).Error
}

// GetAnnouncementByID loads an announcement with all three relations.
func (r *GormRepository) GetAnnouncementByID(ctx context.Context, id uint) (*entity.DbAnnouncement, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return nil, fmt.Errorf("invalid announcement id")
	}
	var announcement entity.DbAnnouncement
	if err := announcementScope(r.db.WithContext(ctx)).First(&announcement, id).Error; err != nil {
		return nil, err
	}
	return &announcement, nil
}

// ListAnnouncements returns all announcements, newest first.
func (r *GormRepository) ListAnnouncements(ctx context.Context) ([]entity.DbAnnouncement, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	var announcements []entity.DbAnnouncement
	if err := announcementScope(r.db.WithContext(ctx)).Order("created_at DESC, id DESC").Find(&announcements).Error; err != nil {
		return nil, err
	}
	return announcements, nil
}

// ListLatestAnnouncements returns at most limit announcements, newest first.
func (r *GormRepository) ListLatestAnnouncements(ctx context.Context, limit int) ([]entity.DbAnnouncement, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	var announcements []entity.DbAnnouncement
	err := announcementScope(r.db.WithContext(ctx)).
		Order("created_at DESC, id DESC").
		Limit(clampLimit(limit)).
		Find(&announcements).Error
	if err != nil {
		return nil, err
	}
	return announcements, nil
}

// ListAnnouncementsByDeviceID returns announcements for one device.
func (r *GormRepository) ListAnnouncementsByDeviceID(ctx context.Context, deviceID uint) ([]entity.DbAnnouncement, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if deviceID == 0 {
		return nil, fmt.Errorf("invalid device id")
	}
	var announcements []entity.DbAnnouncement
	err := announcementScope(r.db.WithContext(ctx)).
		Where("device_id = ?", deviceID).
		Order("created_at DESC, id DESC").
		Find(&announcements).Error
	if err != nil {
		return nil, err
	}
	return announcements, nil
}

// ListAnnouncementsByMaintainer returns announcements for all devices the
// given account maintains.
func (r *GormRepository) ListAnnouncementsByMaintainer(ctx context.Context, accountID uint) ([]entity.DbAnnouncement, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if accountID == 0 {
		return nil, fmt.Errorf("invalid account id")
	}
	var announcements []entity.DbAnnouncement
	err := announcementScope(r.db.WithContext(ctx)).
		Joins("JOIN devices ON devices.id = announcements.device_id").
		Where("devices.maintainer_id = ?", accountID).
		Order("announcements.created_at DESC, announcements.id DESC").
		Find(&announcements).Error
	if err != nil {
		return nil, err
	}
	return announcements, nil
}

// DeleteAnnouncement removes an announcement by ID.
func (r *GormRepository) DeleteAnnouncement(ctx context.Context, id uint) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid announcement id")
	}
	result := r.db.WithContext(ctx).Delete(&entity.DbAnnouncement{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
