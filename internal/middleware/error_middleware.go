package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lansen/driveadmin/internal/app/models/dto"
	"github.com/lansen/driveadmin/internal/pkg/apperrors"
	"github.com/lansen/driveadmin/internal/pkg/logger"
)

// HandleAPIError maps service errors onto the response envelope
func HandleAPIError(c *gin.Context, err error) {
	var env dto.Envelope

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrInvalidDate):
		env = dto.InvalidParameter(err.Error())
	case errors.Is(err, apperrors.ErrUsernameAlreadyExists),
		errors.Is(err, apperrors.ErrBookingAlreadyExists),
		errors.Is(err, apperrors.ErrInvalidReference),
		errors.Is(err, apperrors.ErrConflict):
		env = dto.InvalidParameter(err.Error())
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrCarNotFound),
		errors.Is(err, apperrors.ErrBookingNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		env = dto.NotFound(err.Error())
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrSessionInvalid),
		errors.Is(err, apperrors.ErrSessionExpired):
		env = dto.AuthFailed()
	case errors.Is(err, apperrors.ErrPermissionDenied):
		env = dto.Forbidden()
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error in request")
		env = dto.ServerError()
	}

	c.JSON(env.Status, env)
}

// Recovery converts panics into a 500 page for browsers and a server
// error envelope for API clients
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("Recovered from panic")
				if isAPIRequest(c) {
					env := dto.ServerError()
					c.AbortWithStatusJSON(env.Status, env)
					return
				}
				c.HTML(http.StatusInternalServerError, "500.html", nil)
				c.Abort()
			}
		}()
		c.Next()
	}
}

// NotFoundHandler answers unknown routes with a 404 page or envelope
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if isAPIRequest(c) {
			env := dto.NotFound("route not found")
			c.JSON(env.Status, env)
			return
		}
		c.HTML(http.StatusNotFound, "404.html", nil)
	}
}

// BadRequestPage renders the 400 page for malformed browser form posts
func BadRequestPage(c *gin.Context) {
	c.HTML(http.StatusBadRequest, "400.html", nil)
}
