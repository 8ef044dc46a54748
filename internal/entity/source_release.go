package entity

import "time"

// DbSourceRelease represents a named distribution version. It is
// independent of any device.
type DbSourceRelease struct {
	ID              uint        `gorm:"primarykey" json:"id"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
	Version         string      `gorm:"column:version;type:varchar(128);uniqueIndex;not null" json:"version"`
	CodenameVersion string      `gorm:"column:codename_version;type:varchar(128);index;not null" json:"codename_version"`
	Banner          string      `gorm:"column:banner;type:text" json:"banner,omitempty"`
	ReleaseDate     time.Time   `gorm:"column:release_date;index" json:"release_date"`
	Description     string      `gorm:"column:description;type:text" json:"description,omitempty"`
	Changelog       StringArray `gorm:"column:changelog;type:json" json:"changelog"`
	Screenshots     StringArray `gorm:"column:screenshots;type:json" json:"screenshots"`
}

// TableName overrides default pluralised name.
func (DbSourceRelease) TableName() string {
	return "source_releases"
}

type SourceReleaseCreateRequest struct {
	Version         string      `json:"version" binding:"required"`
	CodenameVersion string      `json:"codename_version" binding:"required"`
	Banner          string      `json:"banner"`
	ReleaseDate     time.Time   `json:"release_date" binding:"required"`
	Description     string      `json:"description"`
	Changelog       StringArray `json:"changelog"`
	Screenshots     StringArray `json:"screenshots"`
}

type SourceReleaseUpdateRequest struct {
	Version         *string      `json:"version,omitempty"`
	CodenameVersion *string      `json:"codename_version,omitempty"`
	Banner          *string      `json:"banner,omitempty"`
	ReleaseDate     *time.Time   `json:"release_date,omitempty"`
	Description     *string      `json:"description,omitempty"`
	Changelog       *StringArray `json:"changelog,omitempty"`
	Screenshots     *StringArray `json:"screenshots,omitempty"`
}
