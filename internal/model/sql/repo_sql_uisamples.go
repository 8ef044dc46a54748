package sql

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"orioncatalog/internal/entity"
)

// CreateUISample persists a new UI sample record.
func (r *GormRepository) CreateUISample(ctx context.Context, sample *entity.DbUISample) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if sample == nil {
		return fmt.Errorf("ui sample is nil")
	}
	return r.db.WithContext(ctx).Create(sample).Error
}

// UpdateUISample applies partial updates to an existing UI sample.
func (r *GormRepository) UpdateUISample(ctx context.Context, id uint, updates map[string]interface{}) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid ui sample id")
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&entity.DbUISample{}).Where("id = ?", id).Updates(updates).Error
}

// GetUISampleByID loads a UI sample by ID.
func (r *GormRepository) GetUISampleByID(ctx context.Context, id uint) (*entity.DbUISample, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return nil, fmt.Errorf("invalid ui sample id")
	}
	var sample entity.DbUISample
	if err := r.db.WithContext(ctx).First(&sample, id).Error; err != nil {
		return nil, err
	}
	return &sample, nil
}

// GetUISampleByURL loads a UI sample by its exact URL.
func (r *GormRepository) GetUISampleByURL(ctx context.Context, url string) (*entity.DbUISample, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	trimmed := strings.TrimSpace(url)
	if trimmed == "" {
		return nil, fmt.Errorf("url is empty")
	}
	var sample entity.DbUISample
	if err := r.db.WithContext(ctx).Where("url = ?", trimmed).First(&sample).Error; err != nil {
		return nil, err
	}
	return &sample, nil
}

// ListUISamples returns all UI samples, newest first.
func (r *GormRepository) ListUISamples(ctx context.Context) ([]entity.DbUISample, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	var samples []entity.DbUISample
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&samples).Error; err != nil {
		return nil, err
	}
	return samples, nil
}

// DeleteUISample removes a UI sample by ID.
func (r *GormRepository) DeleteUISample(ctx context.Context, id uint) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid ui sample id")
	}
	result := r.db.WithContext(ctx).Delete(&entity.DbUISample{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
