package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"orioncatalog/internal/service"
)

func TestRespondOKEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondOK(c, "loaded", gin.H{"count": 1})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var envelope Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if !envelope.Success {
		t.Fatal("expected success true")
	}
	if envelope.Message != "loaded" {
		t.Fatalf("expected message %q, got %q", "loaded", envelope.Message)
	}
	if envelope.Data == nil {
		t.Fatal("expected data to be present")
	}
	if envelope.Errors != nil {
		t.Fatal("expected errors to be omitted on success")
	}
}

func TestRespondServiceErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "validation maps to 400",
			err:            &service.Error{Kind: service.KindValidation, Message: "email is required"},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "email is required",
		},
		{
			name:           "unauthorized maps to 401",
			err:            &service.Error{Kind: service.KindUnauthorized, Message: "invalid email or password"},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "invalid email or password",
		},
		{
			name:           "forbidden maps to 403",
			err:            &service.Error{Kind: service.KindForbidden, Message: "insufficient privileges"},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "insufficient privileges",
		},
		{
			name:           "not found maps to 404",
			err:            &service.Error{Kind: service.KindNotFound, Message: "device not found"},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "device not found",
		},
		{
			name:           "conflict maps to 409",
			err:            &service.Error{Kind: service.KindConflict, Message: "codename already in use"},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "codename already in use",
		},
		{
			name:           "internal maps to 500 with generic message",
			err:            &service.Error{Kind: service.KindInternal, Message: "db exploded"},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			RespondServiceError(c, tt.err)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			var envelope Envelope
			if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
				t.Fatalf("failed to unmarshal response: %v", err)
			}
			if envelope.Success {
				t.Fatal("expected success false")
			}
			if envelope.Message != tt.expectedMsg {
				t.Fatalf("expected message %q, got %q", tt.expectedMsg, envelope.Message)
			}
		})
	}
}
