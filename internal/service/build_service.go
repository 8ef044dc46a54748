package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"orioncatalog/internal/entity"
	"orioncatalog/internal/model"
)

// BuildReleaseService manages downloadable artifacts. Ownership derives
// from the device a build belongs to.
type BuildReleaseService struct {
	repo model.Repository
}

// NewBuildReleaseService creates a build release service.
func NewBuildReleaseService(repo model.Repository) *BuildReleaseService {
	return &BuildReleaseService{repo: repo}
}

// ListAll returns all builds, newest first.
func (s *BuildReleaseService) ListAll(ctx context.Context) ([]entity.DbBuildRelease, error) {
	builds, err := s.repo.ListBuildReleases(ctx)
	if err != nil {
		return nil, internalErr("failed to list builds", err)
	}
	return builds, nil
}

// ListLatest returns at most limit builds, newest first.
func (s *BuildReleaseService) ListLatest(ctx context.Context, limit int) ([]entity.DbBuildRelease, error) {
	builds, err := s.repo.ListLatestBuildReleases(ctx, limit)
	if err != nil {
		return nil, internalErr("failed to list builds", err)
	}
	return builds, nil
}

// ListByVersion returns builds tagged with a version string.
func (s *BuildReleaseService) ListByVersion(ctx context.Context, version string) ([]entity.DbBuildRelease, error) {
	builds, err := s.repo.ListBuildReleasesByVersion(ctx, version)
	if err != nil {
		return nil, internalErr("failed to list builds", err)
	}
	return builds, nil
}

// ListByDeviceCodename resolves the device first, then returns its builds.
func (s *BuildReleaseService) ListByDeviceCodename(ctx context.Context, codename string) ([]entity.DbBuildRelease, error) {
	device, err := s.repo.GetDeviceByCodename(ctx, codename)
	if err != nil {
		return nil, classifyRepoErr(err, "device not found", "")
	}
	builds, err := s.repo.ListBuildReleasesByDeviceID(ctx, device.ID)
	if err != nil {
		return nil, internalErr("failed to list builds", err)
	}
	return builds, nil
}

// ListMine returns builds for every device the caller maintains.
func (s *BuildReleaseService) ListMine(ctx context.Context, caller *entity.Caller) ([]entity.DbBuildRelease, error) {
	if caller == nil {
		return nil, unauthorizedErr("authentication required")
	}
	builds, err := s.repo.ListBuildReleasesByMaintainer(ctx, caller.ID)
	if err != nil {
		return nil, internalErr("failed to list builds", err)
	}
	return builds, nil
}

// Get loads a build with its device attached.
func (s *BuildReleaseService) Get(ctx context.Context, id uint) (*entity.DbBuildRelease, error) {
	build, err := s.repo.GetBuildReleaseByID(ctx, id)
	if err != nil {
		return nil, classifyRepoErr(err, "build release not found", "")
	}
	return build, nil
}

// Create publishes a build after resolving its device and applying the
// ownership predicate. Nothing is written when a check fails.
func (s *BuildReleaseService) Create(ctx context.Context, caller *entity.Caller, req *entity.BuildReleaseCreateRequest) (*entity.DbBuildRelease, error) {
	buildType, ok := entity.ParseBuildType(req.Type)
	if !ok {
		return nil, validationErr("invalid build type")
	}
	downloadURL := strings.TrimSpace(req.DownloadURL)
	version := strings.TrimSpace(req.Version)
	if downloadURL == "" || version == "" {
		return nil, validationErr("download_url and version are required")
	}

	device, err := s.repo.GetDeviceByID(ctx, req.DeviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("device not found")
		}
		return nil, internalErr("failed to verify device", err)
	}
	if err := requireMaintainer(caller, device); err != nil {
		return nil, err
	}

	build := &entity.DbBuildRelease{
		Type:         buildType,
		DownloadURL:  downloadURL,
		Version:      version,
		FileSize:     strings.TrimSpace(req.FileSize),
		ChangelogURL: strings.TrimSpace(req.ChangelogURL),
		DeviceID:     device.ID,
	}
	if err := s.repo.CreateBuildRelease(ctx, build); err != nil {
		return nil, classifyRepoErr(err, "build release not found", "build already exists")
	}
	return s.Get(ctx, build.ID)
}

// Update applies a partial update. The ownership predicate runs against
// the build's current device and, when the build is being moved, against
// the new device as well.
func (s *BuildReleaseService) Update(ctx context.Context, caller *entity.Caller, id uint, req *entity.BuildReleaseUpdateRequest) (*entity.DbBuildRelease, error) {
	existing, err := s.repo.GetBuildReleaseByID(ctx, id)
	if err != nil {
		return nil, classifyRepoErr(err, "build release not found", "")
	}
	if err := requireMaintainer(caller, existing.Device); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})

	if req.Type != nil {
		buildType, ok := entity.ParseBuildType(*req.Type)
		if !ok {
			return nil, validationErr("invalid build type")
		}
		updates["type"] = buildType
	}
	if req.DownloadURL != nil {
		downloadURL := strings.TrimSpace(*req.DownloadURL)
		if downloadURL == "" {
			return nil, validationErr("download_url must not be empty")
		}
		updates["download_url"] = downloadURL
	}
	if req.Version != nil {
		version := strings.TrimSpace(*req.Version)
		if version == "" {
			return nil, validationErr("version must not be empty")
		}
		updates["version"] = version
	}
	if req.FileSize != nil {
		updates["file_size"] = strings.TrimSpace(*req.FileSize)
	}
	if req.ChangelogURL != nil {
		updates["changelog_url"] = strings.TrimSpace(*req.ChangelogURL)
	}
	if req.DeviceID != nil && *req.DeviceID != existing.DeviceID {
		newDevice, err := s.repo.GetDeviceByID(ctx, *req.DeviceID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, notFoundErr("device not found")
			}
			return nil, internalErr("failed to verify device", err)
		}
		if err := requireMaintainer(caller, newDevice); err != nil {
			return nil, err
		}
		updates["device_id"] = newDevice.ID
	}

	if len(updates) == 0 {
		return existing, nil
	}

	if err := s.repo.UpdateBuildRelease(ctx, existing.ID, updates); err != nil {
		return nil, classifyRepoErr(err, "build release not found", "build already exists")
	}
	return s.Get(ctx, existing.ID)
}

// Delete removes a build after the ownership check.
func (s *BuildReleaseService) Delete(ctx context.Context, caller *entity.Caller, id uint) error {
	existing, err := s.repo.GetBuildReleaseByID(ctx, id)
	if err != nil {
		return classifyRepoErr(err, "build release not found", "")
	}
	if err := requireMaintainer(caller, existing.Device); err != nil {
		return err
	}
	if err := s.repo.DeleteBuildRelease(ctx, id); err != nil {
		return classifyRepoErr(err, "build release not found", "")
	}
	return nil
}
