package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"orioncatalog/internal/entity"
)

func parseIDParam(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		RespondError(c, http.StatusBadRequest, "invalid id parameter", nil)
		return 0, false
	}
	return uint(id), true
}

func (h *HTTPHandler) ListUsers(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	accounts, err := h.accounts.ListAll(ctx)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, "users loaded", accounts)
}

func (h *HTTPHandler) ListUsersByRole(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	accounts, err := h.accounts.ListByRole(ctx, c.Param("role"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, "users loaded", accounts)
}

func (h *HTTPHandler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	account, err := h.accounts.Get(ctx, id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, "user loaded", account)
}

func (h *HTTPHandler) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req entity.AccountUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBindingError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	account, err := h.accounts.Update(ctx, id, &req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, "user updated", account)
}

func (h *HTTPHandler) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	if err := h.accounts.Delete(ctx, CurrentCaller(c), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, "user deleted", nil)
}
