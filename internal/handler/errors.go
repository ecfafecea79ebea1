// File: internal/handler/errors.go
package handler

import (
	"errors"
	"fmt"
	"net/http"

	"urenregistratie/internal/api"
	"urenregistratie/internal/model"
	"urenregistratie/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// NewHTTPErrorHandler maps model and service errors to status codes. Anything
// unrecognised is logged and answered with a generic 500 so store details
// never reach the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, api.ErrorResponse) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, api.ErrorResponse{Message: fmt.Sprintf("%v", he.Message)}
	}

	var ve *model.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, api.ErrorResponse{Message: ve.Message, Field: ve.Field}
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, api.ErrorResponse{Message: "not found"}
	case errors.Is(err, model.ErrPermissionDenied):
		return http.StatusForbidden, api.ErrorResponse{Message: "permission denied"}
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict, api.ErrorResponse{Message: "already exists"}
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, api.ErrorResponse{Message: "invalid credentials"}
	case errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized, api.ErrorResponse{Message: "invalid token"}
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"}
}
