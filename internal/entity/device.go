package entity

import (
	"strings"
	"time"
)

// DeviceStatus is the lifecycle state of a maintained hardware target.
type DeviceStatus string

const (
	DeviceStatusActive   DeviceStatus = "ACTIVE"
	DeviceStatusInactive DeviceStatus = "INACTIVE"
)

// ParseDeviceStatus normalises a raw status string.
func ParseDeviceStatus(value string) (DeviceStatus, bool) {
	status := DeviceStatus(strings.ToUpper(strings.TrimSpace(value)))
	switch status {
	case DeviceStatusActive, DeviceStatusInactive:
		return status, true
	default:
		return "", false
	}
}

// DbDevice represents a maintained hardware target. Each device has
// exactly one maintaining account; ownership of builds and announcements
// is derived from it.
type DbDevice struct {
	ID               uint         `gorm:"primarykey" json:"id"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
	Name             string       `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Codename         string       `gorm:"column:codename;type:varchar(128);uniqueIndex;not null" json:"codename"`
	Image            string       `gorm:"column:image;type:text" json:"image,omitempty"`
	Status           DeviceStatus `gorm:"column:status;type:varchar(32);index;not null;default:ACTIVE" json:"status"`
	MaintainerID     uint         `gorm:"column:maintainer_id;index;not null" json:"maintainer_id"`
	FlashInstruction string       `gorm:"column:flash_instruction;type:text" json:"flash_instruction,omitempty"`

	Maintainer *DbAccount       `gorm:"foreignKey:MaintainerID" json:"maintainer,omitempty"`
	Builds     []DbBuildRelease `gorm:"foreignKey:DeviceID" json:"builds,omitempty"`
}

// TableName overrides default pluralised name.
func (DbDevice) TableName() string {
	return "devices"
}

type DeviceCreateRequest struct {
	Name             string `json:"name" binding:"required"`
	Codename         string `json:"codename" binding:"required"`
	Image            string `json:"image"`
	Status           string `json:"status"`
	MaintainerID     uint   `json:"maintainer_id" binding:"required"`
	FlashInstruction string `json:"flash_instruction"`
}

type DeviceUpdateRequest struct {
	Name             *string `json:"name,omitempty"`
	Codename         *string `json:"codename,omitempty"`
	Image            *string `json:"image,omitempty"`
	Status           *string `json:"status,omitempty"`
	MaintainerID     *uint   `json:"maintainer_id,omitempty"`
	FlashInstruction *string `json:"flash_instruction,omitempty"`
}
