package model

import (
	"context"

	"orioncatalog/internal/entity"
)

// Repository defines the persistence operations used by the services.
type Repository interface {
	// Accounts
	CreateAccount(ctx context.Context, account *entity.DbAccount) error
	UpdateAccount(ctx context.Context, id uint, updates map[string]interface{}) error
	GetAccountByEmail(ctx context.Context, email string) (*entity.DbAccount, error)
	GetAccountByID(ctx context.Context, id uint) (*entity.DbAccount, error)
	ListAccounts(ctx context.Context) ([]entity.DbAccount, error)
	ListAccountsByRole(ctx context.Context, role entity.Role) ([]entity.DbAccount, error)
	DeleteAccount(ctx context.Context, id uint) error
	CountAccounts(ctx context.Context) (int64, error)

	// Devices
	CreateDevice(ctx context.Context, device *entity.DbDevice) error
	UpdateDevice(ctx context.Context, id uint, updates map[string]interface{}) error
	GetDeviceByID(ctx context.Context, id uint) (*entity.DbDevice, error)
	GetDeviceByCodename(ctx context.Context, codename string) (*entity.DbDevice, error)
	ListDevices(ctx context.Context, activeOnly bool) ([]entity.DbDevice, error)
	SearchDevices(ctx context.Context, query string) ([]entity.DbDevice, error)
	DeleteDevice(ctx context.Context, id uint) error

	// Source releases
	CreateSourceRelease(ctx context.Context, release *entity.DbSourceRelease) error
	UpdateSourceRelease(ctx context.Context, id uint, updates map[string]interface{}) error
	GetSourceReleaseByID(ctx context.Context, id uint) (*entity.DbSourceRelease, error)
	GetSourceReleaseByVersion(ctx context.Context, version string) (*entity.DbSourceRelease, error)
	ListSourceReleases(ctx context.Context) ([]entity.DbSourceRelease, error)
	ListSourceReleasesByCodename(ctx context.Context, codenameVersion string) ([]entity.DbSourceRelease, error)
	LatestSourceRelease(ctx context.Context) (*entity.DbSourceRelease, error)
	DeleteSourceRelease(ctx context.Context, id uint) error

	// Build releases
	CreateBuildRelease(ctx context.Context, build *entity.DbBuildRelease) error
	UpdateBuildRelease(ctx context.Context, id uint, updates map[string]interface{}) error
	GetBuildReleaseByID(ctx context.Context, id uint) (*entity.DbBuildRelease, error)
	ListBuildReleases(ctx context.Context) ([]entity.DbBuildRelease, error)
	ListLatestBuildReleases(ctx context.Context, limit int) ([]entity.DbBuildRelease, error)
	ListBuildReleasesByVersion(ctx context.Context, version string) ([]entity.DbBuildRelease, error)
	ListBuildReleasesByDeviceID(ctx context.Context, deviceID uint) ([]entity.DbBuildRelease, error)
	ListBuildReleasesByMaintainer(ctx context.Context, accountID uint) ([]entity.DbBuildRelease, error)
	DeleteBuildRelease(ctx context.Context, id uint) error

	// Announcements
	CreateAnnouncement(ctx context.Context, announcement *entity.DbAnnouncement) error
	UpdateAnnouncement(ctx context.Context, id uint, updates map[string]interface{}) error
	GetAnnouncementByID(ctx context.Context, id uint) (*entity.DbAnnouncement, error)
	ListAnnouncements(ctx context.Context) ([]entity.DbAnnouncement, error)
	ListLatestAnnouncements(ctx context.Context, limit int) ([]entity.DbAnnouncement, error)
	ListAnnouncementsByDeviceID(ctx context.Context, deviceID uint) ([]entity.DbAnnouncement, error)
	ListAnnouncementsByMaintainer(ctx context.Context, accountID uint) ([]entity.DbAnnouncement, error)
	DeleteAnnouncement(ctx context.Context, id uint) error

	// UI samples
	CreateUISample(ctx context.Context, sample *entity.DbUISample) error
	UpdateUISample(ctx context.Context, id uint, updates map[string]interface{}) error
	GetUISampleByID(ctx context.Context, id uint) (*entity.DbUISample, error)
	GetUISampleByURL(ctx context.Context, url string) (*entity.DbUISample, error)
	ListUISamples(ctx context.Context) ([]entity.DbUISample, error)
	DeleteUISample(ctx context.Context, id uint) error
}
