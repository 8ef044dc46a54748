package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"orioncatalog/internal/entity"
	"orioncatalog/internal/model"
)

// UISampleService manages showcase URLs. URLs are trimmed before any
// comparison; duplicates are rejected case-sensitively.
type UISampleService struct {
	repo model.Repository
}

// NewUISampleService creates a UI sample service.
func NewUISampleService(repo model.Repository) *UISampleService {
	return &UISampleService{repo: repo}
}

// ListAll returns all samples, newest first.
func (s *UISampleService) ListAll(ctx context.Context) ([]entity.DbUISample, error) {
	samples, err := s.repo.ListUISamples(ctx)
	if err != nil {
		return nil, internalErr("failed to list samples", err)
	}
	return samples, nil
}

// Get loads a sample by ID.
func (s *UISampleService) Get(ctx context.Context, id uint) (*entity.DbUISample, error) {
	sample, err := s.repo.GetUISampleByID(ctx, id)
	if err != nil {
		return nil, classifyRepoErr(err, "sample not found", "")
	}
	return sample, nil
}

// Create adds a sample, rejecting empty-after-trim and duplicate URLs.
func (s *UISampleService) Create(ctx context.Context, req *entity.UISampleCreateRequest) (*entity.DbUISample, error) {
	url := strings.TrimSpace(req.URL)
	if url == "" {
		return nil, validationErr("url is required")
	}

	if _, err := s.repo.GetUISampleByURL(ctx, url); err == nil {
		return nil, conflictErr("url already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, internalErr("failed to check url", err)
	}

	sample := &entity.DbUISample{URL: url}
	if err := s.repo.CreateUISample(ctx, sample); err != nil {
		return nil, classifyRepoErr(err, "sample not found", "url already exists")
	}
	return sample, nil
}

// Update changes a sample's URL. Re-submitting the sample's own current
// URL succeeds; a URL held by a different sample conflicts.
func (s *UISampleService) Update(ctx context.Context, id uint, req *entity.UISampleUpdateRequest) (*entity.DbUISample, error) {
	existing, err := s.repo.GetUISampleByID(ctx, id)
	if err != nil {
		return nil, classifyRepoErr(err, "sample not found", "")
	}

	if req.URL == nil {
		return existing, nil
	}

	url := strings.TrimSpace(*req.URL)
	if url == "" {
		return nil, validationErr("url must not be empty")
	}

	if duplicate, err := s.repo.GetUISampleByURL(ctx, url); err == nil {
		if duplicate.ID != existing.ID {
			return nil, conflictErr("url already used by another sample")
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, internalErr("failed to check url", err)
	}

	if err := s.repo.UpdateUISample(ctx, existing.ID, map[string]interface{}{"url": url}); err != nil {
		return nil, classifyRepoErr(err, "sample not found", "url already used by another sample")
	}
	return s.Get(ctx, existing.ID)
}

// Delete removes a sample.
func (s *UISampleService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.GetUISampleByID(ctx, id); err != nil {
		return classifyRepoErr(err, "sample not found", "")
	}
	if err := s.repo.DeleteUISample(ctx, id); err != nil {
		return classifyRepoErr(err, "sample not found", "")
	}
	return nil
}
