package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"orioncatalog/internal/service"
)

// Envelope is the uniform response body. Success responses carry Data,
// failures carry Errors; Message is always set.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// RespondOK writes a 200 envelope.
func RespondOK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// RespondCreated writes a 201 envelope.
func RespondCreated(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

// RespondError writes a failure envelope with the given status.
func RespondError(c *gin.Context, status int, message string, details any) {
	c.JSON(status, Envelope{Success: false, Message: message, Errors: details})
}

// AbortError writes a failure envelope and stops the handler chain.
func AbortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Envelope{Success: false, Message: message})
}

// RespondBindingError reports a failed payload bind as a 400 with one
// entry per offending field when the validator produced them.
func RespondBindingError(c *gin.Context, err error) {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		details := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			details = append(details, describeFieldError(fe))
		}
		RespondError(c, http.StatusBadRequest, "invalid request payload", details)
		return
	}
	RespondError(c, http.StatusBadRequest, "invalid request payload", nil)
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	default:
		return fe.Field() + " is invalid"
	}
}

// RespondServiceError maps a service failure to its HTTP status. Internal
// failures are logged with their cause and reported with a generic message.
func RespondServiceError(c *gin.Context, err error) {
	svcErr, ok := service.AsError(err)
	if !ok {
		logrus.WithError(err).WithField("path", c.FullPath()).Error("unexpected service failure")
		RespondError(c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	status := statusForKind(svcErr.Kind)
	if status == http.StatusInternalServerError {
		logrus.WithError(svcErr).WithField("path", c.FullPath()).Error("service failure")
		RespondError(c, status, "internal server error", nil)
		return
	}
	RespondError(c, status, svcErr.Message, nil)
}

func statusForKind(kind service.Kind) int {
	switch kind {
	case service.KindValidation:
		return http.StatusBadRequest
	case service.KindUnauthorized:
		return http.StatusUnauthorized
	case service.KindForbidden:
		return http.StatusForbidden
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
