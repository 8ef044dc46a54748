package api

import (
	"context"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"orioncatalog/internal/storage"
)

// Uploads cap at 10 MiB, enough for device shots and banners.
const maxUploadBytes = 10 << 20

var allowedUploadExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"webp": true,
	"gif":  true,
	"svg":  true,
}

// UploadImage accepts a multipart image and stores it in the configured
// backend. The form carries the file under "file" and a "category"
// choosing the target folder.
func (h *HTTPHandler) UploadImage(c *gin.Context) {
	if h.storage == nil {
		RespondError(c, http.StatusServiceUnavailable, "upload storage not configured", nil)
		return
	}

	category := c.PostForm("category")
	if !storage.ValidCategory(category) {
		RespondError(c, http.StatusBadRequest, "invalid upload category", nil)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "missing file field", nil)
		return
	}
	if fileHeader.Size > maxUploadBytes {
		RespondError(c, http.StatusRequestEntityTooLarge, "file exceeds upload limit", nil)
		return
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileHeader.Filename), "."))
	if !allowedUploadExtensions[ext] {
		RespondError(c, http.StatusBadRequest, "unsupported image type", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logrus.WithError(err).Error("failed to open uploaded file")
		RespondError(c, http.StatusInternalServerError, "failed to read upload", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		logrus.WithError(err).Error("failed to read uploaded file")
		RespondError(c, http.StatusInternalServerError, "failed to read upload", nil)
		return
	}
	if len(data) > maxUploadBytes {
		RespondError(c, http.StatusRequestEntityTooLarge, "file exceeds upload limit", nil)
		return
	}

	baseName := strings.TrimSuffix(filepath.Base(fileHeader.Filename), filepath.Ext(fileHeader.Filename))

	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	key, err := h.storage.Save(ctx, data, storage.SaveOptions{
		Category:  category,
		BaseName:  baseName,
		Extension: ext,
	})
	if err != nil {
		logrus.WithError(err).WithField("category", category).Error("failed to store upload")
		RespondError(c, http.StatusInternalServerError, "failed to store upload", nil)
		return
	}

	RespondCreated(c, "image uploaded", gin.H{
		"key": key,
		"url": h.publicURL(key),
	})
}
