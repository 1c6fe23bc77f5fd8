package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/lansen/driveadmin/internal/pkg/apperrors"
)

func serveWithError(err error) *httptest.ResponseRecorder {
	router := gin.New()
	router.GET("/api/v1/test", func(c *gin.Context) {
		HandleAPIError(c, err)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/test", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation failure", apperrors.NewValidationError("gender must be 1 or 2"), 400, "1000"},
		{"invalid date", apperrors.ErrInvalidDate, 400, "1000"},
		{"duplicate username", apperrors.ErrUsernameAlreadyExists, 400, "1000"},
		{"duplicate booking", apperrors.ErrBookingAlreadyExists, 400, "1000"},
		{"dangling reference", apperrors.ErrInvalidReference, 400, "1000"},
		{"user not found", apperrors.ErrUserNotFound, 404, "1001"},
		{"car not found", apperrors.ErrCarNotFound, 404, "1001"},
		{"booking not found", apperrors.ErrBookingNotFound, 404, "1001"},
		{"invalid credentials", apperrors.ErrInvalidCredentials, 401, "1005"},
		{"expired session", apperrors.ErrSessionExpired, 401, "1005"},
		{"permission denied", apperrors.ErrPermissionDenied, 403, "1004"},
		{"unknown error", errors.New("pool exhausted"), 500, "999"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serveWithError(tt.err)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantCode)
		})
	}
}

func TestHandleAPIErrorKeepsValidationMessage(t *testing.T) {
	w := serveWithError(apperrors.NewValidationError("birthday must be in YYYY-MM-DD format"))
	assert.Contains(t, w.Body.String(), "birthday must be in YYYY-MM-DD format")
}

func TestHandleAPIErrorHidesInternalDetails(t *testing.T) {
	w := serveWithError(errors.New("dial tcp 127.0.0.1:5432: connection refused"))
	assert.NotContains(t, w.Body.String(), "5432")
	assert.Contains(t, w.Body.String(), "Sorry, server made a mistake")
}

func TestRecoveryAnswersAPIClientsWithEnvelope(t *testing.T) {
	router := gin.New()
	router.Use(Recovery())
	router.GET("/api/v1/boom", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/boom", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "999")
}

func TestNotFoundHandlerForAPIRoutes(t *testing.T) {
	router := gin.New()
	router.NoRoute(NotFoundHandler())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "1001")
}
