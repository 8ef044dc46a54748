package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"orioncatalog/internal/entity"
)

func (h *HTTPHandler) ListAnnouncements(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	announcements, err := h.announcements.ListAll(ctx)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, "announcements loaded", announcements)
}

func (h *HTTPHandler) ListLatestAnnouncements(c *gin.Context) {
	limit, ok := parseLimitQuery(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	announcements, err := h.announcements.ListLatest(ctx, limit)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, "announcements loaded", announcements)
}

func (h *HTTPHandler) ListAnnouncementsByDevice(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	announcements, err := h.announcements.ListByDeviceCodename(ctx, c.Param("codename"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, "announcements loaded", announcements)
}

func (h *HTTPHandler) ListMyAnnouncements(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	announcements, err := h.announcements.ListMine(ctx, CurrentCaller(c))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, "announcements loaded", announcements)
}

func (h *HTTPHandler) GetAnnouncement(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	announcement, err := h.announcements.Get(ctx, id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, "announcement loaded", announcement)
}

func (h *HTTPHandler) CreateAnnouncement(c *gin.Context) {
	var req entity.AnnouncementCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBindingError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	announcement, err := h.announcements.Create(ctx, CurrentCaller(c), &req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, "announcement created", announcement)
}

func (h *HTTPHandler) UpdateAnnouncement(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req entity.AnnouncementUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBindingError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	announcement, err := h.announcements.Update(ctx, CurrentCaller(c), id, &req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, "announcement updated", announcement)
}

func (h *HTTPHandler) DeleteAnnouncement(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	if err := h.announcements.Delete(ctx, CurrentCaller(c), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, "announcement deleted", nil)
}
