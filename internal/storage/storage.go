package storage

import (
	"context"
	"fmt"
	"mime"
	"path"
	"strings"
	"time"

	"orioncatalog/internal/config"
)

const (
	// TypeLocal stores uploads on the local filesystem.
	TypeLocal = "local"
	// TypeS3 stores uploads in Amazon S3 or an S3-compatible bucket.
	TypeS3 = "s3"
	// TypeR2 stores uploads in Cloudflare R2 through the S3 client.
	TypeR2 = "r2"
)

// Upload categories accepted by the catalog. Anything else is rejected
// before touching a backend.
const (
	CategoryAvatars     = "avatars"
	CategoryDevices     = "devices"
	CategoryScreenshots = "screenshots"
	CategoryBanners     = "banners"
)

// ValidCategory reports whether the category is one the catalog serves.
func ValidCategory(category string) bool {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case CategoryAvatars, CategoryDevices, CategoryScreenshots, CategoryBanners:
		return true
	default:
		return false
	}
}

// SaveOptions controls how a backend persists an upload. Category picks
// the top-level folder, BaseName seeds the object name (a device codename
// for device shots), Extension hints the file extension without the dot.
type SaveOptions struct {
	Category  string
	BaseName  string
	Extension string
}

// Storage persists binary uploads and returns a backend-specific key
// (a relative path for the local backend, an object key for S3/R2).
type Storage interface {
	Save(ctx context.Context, data []byte, opts SaveOptions) (string, error)
}

// LocalBaseDirProvider is implemented by backends whose files can be
// served directly over HTTP from a local directory.
type LocalBaseDirProvider interface {
	LocalBaseDir() string
}

// NewStorage instantiates the configured upload backend.
func NewStorage(cfg config.Config) (Storage, error) {
	typeName := strings.ToLower(strings.TrimSpace(cfg.StorageType))
	switch typeName {
	case "", TypeLocal:
		return NewLocalStorage(cfg.StorageLocalDir)
	case TypeS3:
		return NewS3Storage(cfg)
	case TypeR2:
		return NewR2Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.StorageType)
	}
}

func sanitizeSegment(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	builder := strings.Builder{}
	builder.Grow(len(value))
	for i := 0; i < len(value); i++ {
		ch := value[i]
		switch {
		case ch >= 'a' && ch <= 'z', ch >= '0' && ch <= '9':
			builder.WriteByte(ch)
		case ch >= 'A' && ch <= 'Z':
			builder.WriteByte(ch + 32)
		case ch == '-', ch == '_':
			builder.WriteByte(ch)
		}
	}
	return builder.String()
}

func normalizeExtension(ext string) string {
	trimmed := strings.TrimPrefix(strings.TrimSpace(ext), ".")
	if trimmed == "" {
		return "bin"
	}
	return sanitizeSegment(trimmed)
}

// buildObjectKey lays uploads out as category/yyyy/mm/dd/name.ext with a
// nanosecond fallback name when no base name was supplied.
func buildObjectKey(opts SaveOptions) string {
	now := time.Now().UTC()
	category := sanitizeSegment(opts.Category)
	if category == "" {
		category = "misc"
	}
	base := strings.Trim(sanitizeSegment(strings.ReplaceAll(opts.BaseName, " ", "-")), "-_")
	if base == "" {
		base = fmt.Sprintf("%d", now.UnixNano())
	} else {
		base = fmt.Sprintf("%s-%d", base, now.UnixNano())
	}
	datedir := fmt.Sprintf("%04d/%02d/%02d", now.Year(), now.Month(), now.Day())
	return path.Join(category, datedir, fmt.Sprintf("%s.%s", base, normalizeExtension(opts.Extension)))
}

func detectContentType(ext string) string {
	typeName := mime.TypeByExtension("." + normalizeExtension(ext))
	if typeName == "" {
		return "application/octet-stream"
	}
	return typeName
}

func trimPrefix(prefix string) string {
	return strings.Trim(strings.TrimSpace(prefix), "/")
}

func joinPrefix(prefix, key string) string {
	cleanPrefix := strings.Trim(strings.TrimSpace(prefix), "/")
	if cleanPrefix == "" {
		return strings.TrimLeft(key, "/")
	}
	return path.Join(cleanPrefix, strings.TrimLeft(key, "/"))
}
