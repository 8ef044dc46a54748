package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"orioncatalog/internal/entity"
	"orioncatalog/internal/model"
)

// DeviceService manages maintained hardware targets.
type DeviceService struct {
	repo model.Repository
}

// NewDeviceService creates a device service backed by the repository.
func NewDeviceService(repo model.Repository) *DeviceService {
	return &DeviceService{repo: repo}
}

// requireMaintainer is the ownership predicate shared by device-governed
// mutations: elevated callers pass, otherwise the caller must be the
// maintainer of the device.
func requireMaintainer(caller *entity.Caller, device *entity.DbDevice) *Error {
	if caller == nil {
		return unauthorizedErr("authentication required")
	}
	if caller.Elevated() {
		return nil
	}
	if device == nil || device.MaintainerID != caller.ID {
		return forbiddenErr("only the device maintainer may perform this action")
	}
	return nil
}

// ListAll returns all devices ordered by name.
func (s *DeviceService) ListAll(ctx context.Context) ([]entity.DbDevice, error) {
	devices, err := s.repo.ListDevices(ctx, false)
	if err != nil {
		return nil, internalErr("failed to list devices", err)
	}
	return devices, nil
}

// ListActive returns devices whose status is ACTIVE.
func (s *DeviceService) ListActive(ctx context.Context) ([]entity.DbDevice, error) {
	devices, err := s.repo.ListDevices(ctx, true)
	if err != nil {
		return nil, internalErr("failed to list devices", err)
	}
	return devices, nil
}

// Search matches devices by name or codename substring.
func (s *DeviceService) Search(ctx context.Context, query string) ([]entity.DbDevice, error) {
	if strings.TrimSpace(query) == "" {
		return nil, validationErr("search query is required")
	}
	devices, err := s.repo.SearchDevices(ctx, query)
	if err != nil {
		return nil, internalErr("failed to search devices", err)
	}
	return devices, nil
}

// Get loads a device by ID.
func (s *DeviceService) Get(ctx context.Context, id uint) (*entity.DbDevice, error) {
	device, err := s.repo.GetDeviceByID(ctx, id)
	if err != nil {
		return nil, classifyRepoErr(err, "device not found", "")
	}
	return device, nil
}

// GetByCodename loads a device by its unique codename.
func (s *DeviceService) GetByCodename(ctx context.Context, codename string) (*entity.DbDevice, error) {
	device, err := s.repo.GetDeviceByCodename(ctx, codename)
	if err != nil {
		return nil, classifyRepoErr(err, "device not found", "")
	}
	return device, nil
}

// Create adds a new device after resolving its maintainer reference.
func (s *DeviceService) Create(ctx context.Context, req *entity.DeviceCreateRequest) (*entity.DbDevice, error) {
	codename := strings.TrimSpace(req.Codename)
	name := strings.TrimSpace(req.Name)
	if codename == "" || name == "" {
		return nil, validationErr("name and codename are required")
	}

	status := entity.DeviceStatusActive
	if strings.TrimSpace(req.Status) != "" {
		parsed, ok := entity.ParseDeviceStatus(req.Status)
		if !ok {
			return nil, validationErr("invalid device status")
		}
		status = parsed
	}

	if _, err := s.repo.GetAccountByID(ctx, req.MaintainerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("maintainer not found")
		}
		return nil, internalErr("failed to verify maintainer", err)
	}

	device := &entity.DbDevice{
		Name:             name,
		Codename:         codename,
		Image:            strings.TrimSpace(req.Image),
		Status:           status,
		MaintainerID:     req.MaintainerID,
		FlashInstruction: strings.TrimSpace(req.FlashInstruction),
	}
	if err := s.repo.CreateDevice(ctx, device); err != nil {
		return nil, classifyRepoErr(err, "device not found", "codename already in use")
	}

	return s.Get(ctx, device.ID)
}

// Update applies a partial update. The ownership check runs against the
// existing row; a maintainer reassignment additionally verifies the new
// maintainer exists.
func (s *DeviceService) Update(ctx context.Context, caller *entity.Caller, id uint, req *entity.DeviceUpdateRequest) (*entity.DbDevice, error) {
	existing, err := s.repo.GetDeviceByID(ctx, id)
	if err != nil {
		return nil, classifyRepoErr(err, "device not found", "")
	}
	if err := requireMaintainer(caller, existing); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, validationErr("name must not be empty")
		}
		updates["name"] = name
	}
	if req.Codename != nil {
		codename := strings.TrimSpace(*req.Codename)
		if codename == "" {
			return nil, validationErr("codename must not be empty")
		}
		updates["codename"] = codename
	}
	if req.Image != nil {
		updates["image"] = strings.TrimSpace(*req.Image)
	}
	if req.Status != nil {
		status, ok := entity.ParseDeviceStatus(*req.Status)
		if !ok {
			return nil, validationErr("invalid device status")
		}
		updates["status"] = status
	}
	if req.MaintainerID != nil {
		if _, err := s.repo.GetAccountByID(ctx, *req.MaintainerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, notFoundErr("maintainer not found")
			}
			return nil, internalErr("failed to verify maintainer", err)
		}
		updates["maintainer_id"] = *req.MaintainerID
	}
	if req.FlashInstruction != nil {
		updates["flash_instruction"] = strings.TrimSpace(*req.FlashInstruction)
	}

	if len(updates) == 0 {
		return existing, nil
	}

	if err := s.repo.UpdateDevice(ctx, existing.ID, updates); err != nil {
		return nil, classifyRepoErr(err, "device not found", "codename already in use")
	}
	return s.Get(ctx, existing.ID)
}

// Delete removes a device after the ownership check.
func (s *DeviceService) Delete(ctx context.Context, caller *entity.Caller, id uint) error {
	existing, err := s.repo.GetDeviceByID(ctx, id)
	if err != nil {
		return classifyRepoErr(err, "device not found", "")
	}
	if err := requireMaintainer(caller, existing); err != nil {
		return err
	}
	if err := s.repo.DeleteDevice(ctx, id); err != nil {
		return classifyRepoErr(err, "device not found", "")
	}
	return nil
}
