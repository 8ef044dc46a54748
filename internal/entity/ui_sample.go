package entity

import "time"

// DbUISample holds a single showcase URL. The URL is unique after
// trimming; comparison is case-sensitive.
type DbUISample struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	URL       string    `gorm:"column:url;type:varchar(2048);uniqueIndex;not null" json:"url"`
}

// TableName overrides default pluralised name.
func (DbUISample) TableName() string {
	return "ui_samples"
}

type UISampleCreateRequest struct {
	URL string `json:"url" binding:"required"`
}

type UISampleUpdateRequest struct {
	URL *string `json:"url,omitempty"`
}
