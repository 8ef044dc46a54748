package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"orioncatalog/internal/entity"
)

// parseLimitQuery reads the optional ?limit= parameter. Zero means the
// service default.
func parseLimitQuery(c *gin.Context) (int, bool) {
	raw := strings.TrimSpace(c.Query("limit"))
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		RespondError(c, http.StatusBadRequest, "invalid limit parameter", nil)
		return 0, false
	}
	return limit, true
}

func (h *HTTPHandler) ListBuildReleases(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	builds, err := h.builds.ListAll(ctx)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, "build releases loaded", builds)
}

func (h *HTTPHandler) ListLatestBuildReleases(c *gin.Context) {
	limit, ok := parseLimitQuery(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	builds, err := h.builds.ListLatest(ctx, limit)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, "build releases loaded", builds)
}

func (h *HTTPHandler) ListBuildReleasesByVersion(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	builds, err := h.builds.ListByVersion(ctx, c.Param("version"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, "build releases loaded", builds)
}

func (h *HTTPHandler) ListBuildReleasesByDevice(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	builds, err := h.builds.ListByDeviceCodename(ctx, c.Param("codename"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, "build releases loaded", builds)
}

func (h *HTTPHandler) ListMyBuildReleases(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	builds, err := h.builds.ListMine(ctx, CurrentCaller(c))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, "build releases loaded", builds)
}

func (h *HTTPHandler) GetBuildRelease(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	build, err := h.builds.Get(ctx, id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, "build release loaded", build)
}

func (h *HTTPHandler) CreateBuildRelease(c *gin.Context) {
	var req entity.BuildReleaseCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBindingError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	build, err := h.builds.Create(ctx, CurrentCaller(c), &req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, "build release created", build)
}

func (h *HTTPHandler) UpdateBuildRelease(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req entity.BuildReleaseUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBindingError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	build, err := h.builds.Update(ctx, CurrentCaller(c), id, &req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, "build release updated", build)
}

func (h *HTTPHandler) DeleteBuildRelease(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	if err := h.builds.Delete(ctx, CurrentCaller(c), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, "build release deleted", nil)
}
