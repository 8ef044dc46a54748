package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"orioncatalog/internal/entity"
)

// Register creates a member account and returns a session token for it.
func (h *HTTPHandler) Register(c *gin.Context) {
	var req entity.AuthRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBindingError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	account, err := h.accounts.Register(ctx, &req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	token, expiresAt, err := h.authManager.GenerateToken(account)
	if err != nil {
		logrus.WithError(err).Error("failed to create token for new account")
		RespondError(c, http.StatusInternalServerError, "failed to create session", nil)
		return
	}

	RespondCreated(c, "account registered", entity.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      *account,
	})
}

// Login authenticates credentials and returns a session token.
func (h *HTTPHandler) Login(c *gin.Context) {
	var req entity.AuthLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBindingError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	account, err := h.accounts.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	token, expiresAt, err := h.authManager.GenerateToken(account)
	if err != nil {
		logrus.WithError(err).Error("failed to generate token")
		RespondError(c, http.StatusInternalServerError, "failed to create session", nil)
		return
	}

	RespondOK(c, "login successful", entity.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      *account,
	})
}

// Profile returns the authenticated account with its maintained devices.
func (h *HTTPHandler) Profile(c *gin.Context) {
	caller := CurrentCaller(c)
	if caller == nil {
		AbortError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
	defer cancel()

	account, err := h.accounts.Get(ctx, caller.ID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	RespondOK(c, "profile loaded", account)
}
