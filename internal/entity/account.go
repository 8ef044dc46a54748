package entity

import (
	"strings"
	"time"
)

// Role is the closed set of account roles. Membership checks go through
// the methods below so a new role cannot silently fall through an
// ad-hoc string comparison.
type Role string

const (
	RoleAdmin         Role = "ADMIN"
	RoleFounder       Role = "FOUNDER"
	RoleCoFounder     Role = "CO_FOUNDER"
	RoleCoreDeveloper Role = "CORE_DEVELOPER"
	RoleMember        Role = "MEMBER"
)

// ParseRole normalises a raw role string into the enumeration.
func ParseRole(value string) (Role, bool) {
	role := Role(strings.ToUpper(strings.TrimSpace(value)))
	if role.Valid() {
		return role, true
	}
	return "", false
}

// Valid reports whether the role belongs to the enumeration.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleFounder, RoleCoFounder, RoleCoreDeveloper, RoleMember:
		return true
	default:
		return false
	}
}

// Elevated reports whether the role bypasses ownership checks.
func (r Role) Elevated() bool {
	switch r {
	case RoleAdmin, RoleFounder, RoleCoFounder:
		return true
	default:
		return false
	}
}

// DbAccount represents a persisted community account.
type DbAccount struct {
	ID           uint        `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
	Email        string      `gorm:"column:email;type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string      `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	Name         string      `gorm:"column:name;type:varchar(255)" json:"name"`
	ProfileImage string      `gorm:"column:profile_image;type:text" json:"profile_image,omitempty"`
	Role         Role        `gorm:"column:role;type:varchar(50);index;not null" json:"role"`
	IsActive     bool        `gorm:"column:is_active;not null;default:true" json:"is_active"`
	SocialLinks  SocialLinks `gorm:"column:social_links;type:json" json:"social_links"`

	MaintainedDevices []DbDevice `gorm:"foreignKey:MaintainerID" json:"maintained_devices,omitempty"`
}

// TableName overrides default pluralised name.
func (DbAccount) TableName() string {
	return "accounts"
}

type AuthLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthRegisterRequest struct {
	Email        string      `json:"email" binding:"required,email"`
	Password     string      `json:"password" binding:"required,min=8"`
	Name         string      `json:"name" binding:"required"`
	ProfileImage string      `json:"profile_image"`
	SocialLinks  SocialLinks `json:"social_links"`
}

type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      DbAccount `json:"user"`
}

type AccountUpdateRequest struct {
	Name         *string      `json:"name,omitempty"`
	ProfileImage *string      `json:"profile_image,omitempty"`
	Role         *string      `json:"role,omitempty"`
	Password     *string      `json:"password,omitempty"`
	SocialLinks  *SocialLinks `json:"social_links,omitempty"`
	IsActive     *bool        `json:"is_active,omitempty"`
}
