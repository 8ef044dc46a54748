package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"orioncatalog/internal/entity"
)

func (h *HTTPHandler) ListSourceReleases(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	releases, err := h.sources.ListAll(ctx)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, "source releases loaded", releases)
}

func (h *HTTPHandler) LatestSourceRelease(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	release, err := h.sources.Latest(ctx)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, "source release loaded", release)
}

func (h *HTTPHandler) ListSourceReleasesByCodename(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	releases, err := h.sources.ListByCodename(ctx, c.Param("codename"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, "source releases loaded", releases)
}

func (h *HTTPHandler) GetSourceReleaseByVersion(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	release, err := h.sources.GetByVersion(ctx, c.Param("version"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, "source release loaded", release)
}

func (h *HTTPHandler) GetSourceRelease(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	release, err := h.sources.Get(ctx, id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, "source release loaded", release)
}

func (h *HTTPHandler) CreateSourceRelease(c *gin.Context) {
	var req entity.SourceReleaseCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBindingError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	release, err := h.sources.Create(ctx, &req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, "source release created", release)
}

func (h *HTTPHandler) UpdateSourceRelease(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req entity.SourceReleaseUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBindingError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	release, err := h.sources.Update(ctx, id, &req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, "source release updated", release)
}

func (h *HTTPHandler) DeleteSourceRelease(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	if err := h.sources.Delete(ctx, id); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, "source release deleted", nil)
}
