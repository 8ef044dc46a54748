package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"orioncatalog/internal/entity"
)

func (h *HTTPHandler) ListDevices(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	devices, err := h.devices.ListAll(ctx)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, "devices loaded", devices)
}

func (h *HTTPHandler) ListActiveDevices(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	devices, err := h.devices.ListActive(ctx)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, "devices loaded", devices)
}

func (h *HTTPHandler) SearchDevices(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	devices, err := h.devices.Search(ctx, c.Query("q"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, "devices loaded", devices)
}

func (h *HTTPHandler) GetDevice(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	device, err := h.devices.Get(ctx, id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, "device loaded", device)
}

func (h *HTTPHandler) GetDeviceByCodename(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	device, err := h.devices.GetByCodename(ctx, c.Param("codename"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, "device loaded", device)
}

func (h *HTTPHandler) CreateDevice(c *gin.Context) {
	var req entity.DeviceCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBindingError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	device, err := h.devices.Create(ctx, &req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, "device created", device)
}

func (h *HTTPHandler) UpdateDevice(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req entity.DeviceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBindingError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	device, err := h.devices.Update(ctx, CurrentCaller(c), id, &req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, "device updated", device)
}

func (h *HTTPHandler) DeleteDevice(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	if err := h.devices.Delete(ctx, CurrentCaller(c), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, "device deleted", nil)
}
