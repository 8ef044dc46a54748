package service

import (
	"context"
	"strings"

	"orioncatalog/internal/entity"
	"orioncatalog/internal/model"
)

// SourceReleaseService manages distribution versions. Source releases are
// not device-owned, so mutations carry no ownership predicate; the
// routing layer gates them to elevated roles.
type SourceReleaseService struct {
	repo model.Repository
}

// NewSourceReleaseService creates a source release service.
func NewSourceReleaseService(repo model.Repository) *SourceReleaseService {
	return &SourceReleaseService{repo: repo}
}

// ListAll returns all source releases, newest release date first.
func (s *SourceReleaseService) ListAll(ctx context.Context) ([]entity.DbSourceRelease, error) {
	releases, err := s.repo.ListSourceReleases(ctx)
	if err != nil {
		return nil, internalErr("failed to list source releases", err)
	}
	return releases, nil
}

// ListByCodename returns releases on a codename track.
func (s *SourceReleaseService) ListByCodename(ctx context.Context, codenameVersion string) ([]entity.DbSourceRelease, error) {
	releases, err := s.repo.ListSourceReleasesByCodename(ctx, codenameVersion)
	if err != nil {
		return nil, internalErr("failed to list source releases", err)
	}
	return releases, nil
}

// Latest returns the newest release by release date.
func (s *SourceReleaseService) Latest(ctx context.Context) (*entity.DbSourceRelease, error) {
	release, err := s.repo.LatestSourceRelease(ctx)
	if err != nil {
		return nil, classifyRepoErr(err, "no source releases published", "")
	}
	return release, nil
}

// Get loads a source release by ID.
func (s *SourceReleaseService) Get(ctx context.Context, id uint) (*entity.DbSourceRelease, error) {
	release, err := s.repo.GetSourceReleaseByID(ctx, id)
	if err != nil {
		return nil, classifyRepoErr(err, "source release not found", "")
	}
	return release, nil
}

// GetByVersion loads a source release by its unique version string.
func (s *SourceReleaseService) GetByVersion(ctx context.Context, version string) (*entity.DbSourceRelease, error) {
	release, err := s.repo.GetSourceReleaseByVersion(ctx, version)
	if err != nil {
		return nil, classifyRepoErr(err, "source release not found", "")
	}
	return release, nil
}

// Create publishes a new source release.
func (s *SourceReleaseService) Create(ctx context.Context, req *entity.SourceReleaseCreateRequest) (*entity.DbSourceRelease, error) {
	version := strings.TrimSpace(req.Version)
	if version == "" {
		return nil, validationErr("version is required")
	}

	release := &entity.DbSourceRelease{
		Version:         version,
		CodenameVersion: strings.TrimSpace(req.CodenameVersion),
		Banner:          strings.TrimSpace(req.Banner),
		ReleaseDate:     req.ReleaseDate,
		Description:     req.Description,
		Changelog:       req.Changelog,
		Screenshots:     req.Screenshots,
	}
	if err := s.repo.CreateSourceRelease(ctx, release); err != nil {
		return nil, classifyRepoErr(err, "source release not found", "version already published")
	}
	return release, nil
}

// Update applies a partial update to an existing source release.
func (s *SourceReleaseService) Update(ctx context.Context, id uint, req *entity.SourceReleaseUpdateRequest) (*entity.DbSourceRelease, error) {
	existing, err := s.repo.GetSourceReleaseByID(ctx, id)
	if err != nil {
		return nil, classifyRepoErr(err, "source release not found", "")
	}

	updates := make(map[string]interface{})

	if req.Version != nil {
		version := strings.TrimSpace(*req.Version)
		if version == "" {
			return nil, validationErr("version must not be empty")
		}
		updates["version"] = version
	}
	if req.CodenameVersion != nil {
		updates["codename_version"] = strings.TrimSpace(*req.CodenameVersion)
	}
	if req.Banner != nil {
		updates["banner"] = strings.TrimSpace(*req.Banner)
	}
	if req.ReleaseDate != nil {
		updates["release_date"] = *req.ReleaseDate
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Changelog != nil {
		updates["changelog"] = *req.Changelog
	}
	if req.Screenshots != nil {
		updates["screenshots"] = *req.Screenshots
	}

	if len(updates) == 0 {
		return existing, nil
	}

	if err := s.repo.UpdateSourceRelease(ctx, existing.ID, updates); err != nil {
		return nil, classifyRepoErr(err, "source release not found", "version already published")
	}
	return s.Get(ctx, existing.ID)
}

// Delete removes a source release.
func (s *SourceReleaseService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.GetSourceReleaseByID(ctx, id); err != nil {
		return classifyRepoErr(err, "source release not found", "")
	}
	if err := s.repo.DeleteSourceRelease(ctx, id); err != nil {
		return classifyRepoErr(err, "source release not found", "")
	}
	return nil
}
