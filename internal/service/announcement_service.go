package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"orioncatalog/internal/entity"
	"orioncatalog/internal/model"
)

// AnnouncementService manages messages linking an author, a source
// release and a device. Ownership derives from the device.
type AnnouncementService struct {
	repo model.Repository
}

// NewAnnouncementService creates an announcement service.
func NewAnnouncementService(repo model.Repository) *AnnouncementService {
	return &AnnouncementService{repo: repo}
}

// ListAll returns all announcements, newest first.
func (s *AnnouncementService) ListAll(ctx context.Context) ([]entity.DbAnnouncement, error) {
	announcements, err := s.repo.ListAnnouncements(ctx)
	if err != nil {
		return nil, internalErr("failed to list announcements", err)
	}
	return announcements, nil
}

// ListLatest returns at most limit announcements, newest first.
func (s *AnnouncementService) ListLatest(ctx context.Context, limit int) ([]entity.DbAnnouncement, error) {
	announcements, err := s.repo.ListLatestAnnouncements(ctx, limit)
	if err != nil {
		return nil, internalErr("failed to list announcements", err)
	}
	return announcements, nil
}

// ListByDeviceCodename resolves the device first, then returns its
// announcements.
func (s *AnnouncementService) ListByDeviceCodename(ctx context.Context, codename string) ([]entity.DbAnnouncement, error) {
	device, err := s.repo.GetDeviceByCodename(ctx, codename)
	if err != nil {
		return nil, classifyRepoErr(err, "device not found", "")
	}
	announcements, err := s.repo.ListAnnouncementsByDeviceID(ctx, device.ID)
	if err != nil {
		return nil, internalErr("failed to list announcements", err)
	}
	return announcements, nil
}

// ListMine returns announcements for every device the caller maintains.
func (s *AnnouncementService) ListMine(ctx context.Context, caller *entity.Caller) ([]entity.DbAnnouncement, error) {
	if caller == nil {
		return nil, unauthorizedErr("authentication required")
	}
	announcements, err := s.repo.ListAnnouncementsByMaintainer(ctx, caller.ID)
	if err != nil {
		return nil, internalErr("failed to list announcements", err)
	}
	return announcements, nil
}

// Get loads an announcement with all relations.
func (s *AnnouncementService) Get(ctx context.Context, id uint) (*entity.DbAnnouncement, error) {
	announcement, err := s.repo.GetAnnouncementByID(ctx, id)
	if err != nil {
		return nil, classifyRepoErr(err, "announcement not found", "")
	}
	return announcement, nil
}

// resolveReferences checks developer and source release references.
func (s *AnnouncementService) resolveReferences(ctx context.Context, developerID, sourceReleaseID *uint) *Error {
	if developerID != nil {
		if _, err := s.repo.GetAccountByID(ctx, *developerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundErr("developer not found")
			}
			return internalErr("failed to verify developer", err)
		}
	}
	if sourceReleaseID != nil {
		if _, err := s.repo.GetSourceReleaseByID(ctx, *sourceReleaseID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundErr("source release not found")
			}
			return internalErr("failed to verify source release", err)
		}
	}
	return nil
}

// Create publishes an announcement after all three references resolve and
// the ownership predicate passes. Nothing is written on failure.
func (s *AnnouncementService) Create(ctx context.Context, caller *entity.Caller, req *entity.AnnouncementCreateRequest) (*entity.DbAnnouncement, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, validationErr("title is required")
	}

	if err := s.resolveReferences(ctx, &req.DeveloperID, &req.SourceReleaseID); err != nil {
		return nil, err
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

	announcement := &entity.DbAnnouncement{
		Title:           title,
		Content:         req.Content,
		DeveloperID:     req.DeveloperID,
		SourceReleaseID: req.SourceReleaseID,
		DeviceID:        device.ID,
	}
	if err := s.repo.CreateAnnouncement(ctx, announcement); err != nil {
		return nil, classifyRepoErr(err, "announcement not found", "announcement already exists")
	}
	return s.Get(ctx, announcement.ID)
}

// Update applies a partial update, re-resolving any supplied references
// and re-running the ownership predicate against the existing device and
// any newly referenced one.
func (s *AnnouncementService) Update(ctx context.Context, caller *entity.Caller, id uint, req *entity.AnnouncementUpdateRequest) (*entity.DbAnnouncement, error) {
	existing, err := s.repo.GetAnnouncementByID(ctx, id)
	if err != nil {
		return nil, classifyRepoErr(err, "announcement not found", "")
	}
	if err := requireMaintainer(caller, existing.Device); err != nil {
		return nil, err
	}

	if err := s.resolveReferences(ctx, req.DeveloperID, req.SourceReleaseID); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, validationErr("title must not be empty")
		}
		updates["title"] = title
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.DeveloperID != nil {
		updates["developer_id"] = *req.DeveloperID
	}
	if req.SourceReleaseID != nil {
		updates["source_release_id"] = *req.SourceReleaseID
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

	if err := s.repo.UpdateAnnouncement(ctx, existing.ID, updates); err != nil {
		return nil, classifyRepoErr(err, "announcement not found", "announcement already exists")
	}
	return s.Get(ctx, existing.ID)
}

// Delete removes an announcement after the ownership check.
func (s *AnnouncementService) Delete(ctx context.Context, caller *entity.Caller, id uint) error {
	existing, err := s.repo.GetAnnouncementByID(ctx, id)
	if err != nil {
		return classifyRepoErr(err, "announcement not found", "")
	}
	if err := requireMaintainer(caller, existing.Device); err != nil {
		return err
	}
	if err := s.repo.DeleteAnnouncement(ctx, id); err != nil {
		return classifyRepoErr(err, "announcement not found", "")
	}
	return nil
}
