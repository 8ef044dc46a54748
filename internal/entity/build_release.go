package entity

import (
	"strings"
	"time"
)

// BuildType distinguishes artifact flavours for a device.
type BuildType string

const (
	BuildTypeGapps   BuildType = "GAPPS"
	BuildTypeVanilla BuildType = "VANILLA"
)

// ParseBuildType normalises a raw build type string.
func ParseBuildType(value string) (BuildType, bool) {
	buildType := BuildType(strings.ToUpper(strings.TrimSpace(value)))
	switch buildType {
	case BuildTypeGapps, BuildTypeVanilla:
		return buildType, true
	default:
		return "", false
	}
}

// DbBuildRelease represents a downloadable artifact for exactly one device.
type DbBuildRelease struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Type         BuildType `gorm:"column:type;type:varchar(32);not null" json:"type"`
	DownloadURL  string    `gorm:"column:download_url;type:text;not null" json:"download_url"`
	Version      string    `gorm:"column:version;type:varchar(128);index;not null" json:"version"`
	FileSize     string    `gorm:"column:file_size;type:varchar(64)" json:"file_size,omitempty"`
	ChangelogURL string    `gorm:"column:changelog_url;type:text" json:"changelog_url,omitempty"`
	DeviceID     uint      `gorm:"column:device_id;index;not null" json:"device_id"`

	Device *DbDevice `gorm:"foreignKey:DeviceID" json:"device,omitempty"`
}

// TableName overrides default pluralised name.
func (DbBuildRelease) TableName() string {
	return "build_releases"
}

type BuildReleaseCreateRequest struct {
	Type         string `json:"type" binding:"required"`
	DownloadURL  string `json:"download_url" binding:"required"`
	Version      string `json:"version" binding:"required"`
	FileSize     string `json:"file_size"`
	ChangelogURL string `json:"changelog_url"`
	DeviceID     uint   `json:"device_id" binding:"required"`
}

type BuildReleaseUpdateRequest struct {
	Type         *string `json:"type,omitempty"`
	DownloadURL  *string `json:"download_url,omitempty"`
	Version      *string `json:"version,omitempty"`
	FileSize     *string `json:"file_size,omitempty"`
	ChangelogURL *string `json:"changelog_url,omitempty"`
	DeviceID     *uint   `json:"device_id,omitempty"`
}
