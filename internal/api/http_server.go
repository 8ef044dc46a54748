package api

import (
	"fmt"
	"strings"
	"time"

	"orioncatalog/internal/auth"
	"orioncatalog/internal/config"
	"orioncatalog/internal/model"
	"orioncatalog/internal/service"
	"orioncatalog/internal/storage"
)

// HTTPHandler wires the service layer to gin routes.
type HTTPHandler struct {
	cfg               config.Config
	repo              model.Repository
	storage           storage.Storage
	storagePublicBase string
	authManager       *auth.Manager

	accounts      *service.AccountService
	devices       *service.DeviceService
	sources       *service.SourceReleaseService
	builds        *service.BuildReleaseService
	announcements *service.AnnouncementService
	uiSamples     *service.UISampleService
}

// NewHTTPHandler creates the handler and its service instances.
func NewHTTPHandler(cfg config.Config, repo model.Repository, store storage.Storage) (*HTTPHandler, error) {
	expiry := time.Duration(cfg.JWTExpirationHours) * time.Hour
	authManager, err := auth.NewManager(cfg.JWTSecret, cfg.JWTIssuer, expiry)
	if err != nil {
		return nil, err
	}

	return &HTTPHandler{
		cfg:               cfg,
		repo:              repo,
		storage:           store,
		storagePublicBase: normalisePublicBase(cfg.StoragePublicBaseURL),
		authManager:       authManager,
		accounts:          service.NewAccountService(repo),
		devices:           service.NewDeviceService(repo),
		sources:           service.NewSourceReleaseService(repo),
		builds:            service.NewBuildReleaseService(repo),
		announcements:     service.NewAnnouncementService(repo),
		uiSamples:         service.NewUISampleService(repo),
	}, nil
}

func normalisePublicBase(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		trimmed = "/files"
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return strings.TrimRight(trimmed, "/")
	}
	if !strings.HasPrefix(trimmed, "/") {
		trimmed = "/" + trimmed
	}
	return strings.TrimRight(trimmed, "/")
}

// publicURL turns a storage key into the URL clients can fetch it from.
// Absolute URLs pass through untouched.
func (h *HTTPHandler) publicURL(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return trimmed
	}
	return fmt.Sprintf("%s/%s", h.storagePublicBase, strings.TrimLeft(trimmed, "/"))
}
