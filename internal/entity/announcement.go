package entity

import "time"

// DbAnnouncement ties together an author account, a source release and a
// device. All three references must exist when the row is written.
type DbAnnouncement struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Title           string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Content         string    `gorm:"column:content;type:text" json:"content,omitempty"`
	DeveloperID     uint      `gorm:"column:developer_id;index;not null" json:"developer_id"`
	SourceReleaseID uint      `gorm:"column:source_release_id;index;not null" json:"source_release_id"`
	DeviceID        uint      `gorm:"column:device_id;index;not null" json:"device_id"`

	Developer     *DbAccount       `gorm:"foreignKey:DeveloperID" json:"developer,omitempty"`
	SourceRelease *DbSourceRelease `gorm:"foreignKey:SourceReleaseID" json:"source_release,omitempty"`
	Device        *DbDevice        `gorm:"foreignKey:DeviceID" json:"device,omitempty"`
}

// TableName overrides default pluralised name.
func (DbAnnouncement) TableName() string {
	return "announcements"
}

type AnnouncementCreateRequest struct {
	Title           string `json:"title" binding:"required"`
	Content         string `json:"content"`
	DeveloperID     uint   `json:"developer_id" binding:"required"`
	SourceReleaseID uint   `json:"source_release_id" binding:"required"`
	DeviceID        uint   `json:"device_id" binding:"required"`
}

type AnnouncementUpdateRequest struct {
	Title           *string `json:"title,omitempty"`
	Content         *string `json:"content,omitempty"`
	DeveloperID     *uint   `json:"developer_id,omitempty"`
	SourceReleaseID *uint   `json:"source_release_id,omitempty"`
	DeviceID        *uint   `json:"device_id,omitempty"`
}
