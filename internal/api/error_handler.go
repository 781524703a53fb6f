package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/auth-service/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status and public message.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"message": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrMissingSignupFields):
		return http.StatusBadRequest, "All fields are required"
	case errors.Is(err, domain.ErrMissingLoginFields):
		return http.StatusBadRequest, "Email and password are required"
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, "Invalid role"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest, "User already exists"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusBadRequest, "Invalid credentials"
	case errors.Is(err, domain.ErrTokenMissing):
		return http.StatusForbidden, "Token required"
	case errors.Is(err, domain.ErrTokenInvalid):
		return http.StatusForbidden, "Invalid token"
	case errors.Is(err, domain.ErrAdminOnly):
		return http.StatusForbidden, "Access denied: Admins only"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	}

	event := log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path())

	var internal *domain.InternalError
	if errors.As(err, &internal) {
		event.Msg("operation failed")
		return http.StatusInternalServerError, internal.Message
	}

	// Unexpected error: log the real cause, return a generic message.
	event.Msg("unhandled error")
	return http.StatusInternalServerError, "Internal server error"
}
