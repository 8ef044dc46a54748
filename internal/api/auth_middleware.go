package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"orioncatalog/internal/entity"
	"orioncatalog/internal/service"
)

const callerContextKey = "current-caller"

const repoTimeout = 5 * time.Second

// AuthMiddleware verifies the bearer token and reloads the account so
// role changes and deactivation take effect on the next request, not at
// token expiry.
func (h *HTTPHandler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			AbortError(c, http.StatusUnauthorized, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			AbortError(c, http.StatusUnauthorized, "invalid authorization header format")
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			AbortError(c, http.StatusUnauthorized, "missing bearer token")
			return
		}

		claims, err := h.authManager.ParseToken(tokenString)
		if err != nil {
			logrus.WithError(err).Warn("failed to parse jwt token")
			AbortError(c, http.StatusUnauthorized, "token is invalid or expired")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), repoTimeout)
		defer cancel()

		account, err := h.accounts.Get(ctx, claims.UserID)
		if err != nil {
			if svcErr, ok := service.AsError(err); ok && svcErr.Kind == service.KindNotFound {
				AbortError(c, http.StatusUnauthorized, "account no longer exists")
				return
			}
			logrus.WithError(err).WithField("account_id", claims.UserID).Error("failed to load account")
			AbortError(c, http.StatusInternalServerError, "failed to verify account")
			return
		}

		if !account.IsActive {
			AbortError(c, http.StatusForbidden, "account is disabled")
			return
		}

		c.Set(callerContextKey, &entity.Caller{
			ID:    account.ID,
			Email: account.Email,
			Role:  account.Role,
		})
		c.Next()
	}
}

// RequireElevated guards routes reserved for admins, founders and
// co-founders.
func (h *HTTPHandler) RequireElevated() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := CurrentCaller(c)
		if caller == nil || !caller.Elevated() {
			AbortError(c, http.StatusForbidden, "insufficient privileges")
			return
		}
		c.Next()
	}
}

// CurrentCaller returns the authenticated caller, or nil outside the
// auth middleware.
func CurrentCaller(c *gin.Context) *entity.Caller {
	value, exists := c.Get(callerContextKey)
	if !exists {
		return nil
	}
	caller, ok := value.(*entity.Caller)
	if !ok {
		return nil
	}
	return caller
}
