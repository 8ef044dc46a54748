package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"orioncatalog/internal/entity"
)

func (h *HTTPHandler) ListUISamples(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	samples, err := h.uiSamples.ListAll(ctx)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, "ui samples loaded", samples)
}

func (h *HTTPHandler) GetUISample(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	sample, err := h.uiSamples.Get(ctx, id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, "ui sample loaded", sample)
}

func (h *HTTPHandler) CreateUISample(c *gin.Context) {
	var req entity.UISampleCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBindingError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	sample, err := h.uiSamples.Create(ctx, &req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, "ui sample created", sample)
}

func (h *HTTPHandler) UpdateUISample(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req entity.UISampleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBindingError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	sample, err := h.uiSamples.Update(ctx, id, &req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, "ui sample updated", sample)
}

func (h *HTTPHandler) DeleteUISample(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	if err := h.uiSamples.Delete(ctx, id); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, "ui sample deleted", nil)
}
