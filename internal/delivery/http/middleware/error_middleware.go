package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"farmgate/internal/delivery/http/response"
	domainerrors "farmgate/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Application
// errors map to their status and user-safe message; everything else is
// logged with its internal detail and collapsed to a bare 500 body.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		m.logger.Warn("request failed",
			slog.String("code", appErr.ErrorCode()),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
		)
		response.Error(c, appErr.HTTPCode(), appErr.Message())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		response.Error(c, httpErr.Code, fmt.Sprintf("%v", httpErr.Message))

		return
	}

	// Internal detail stays in the log, never in the body.
	m.logger.Error("unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
	response.Error(c, http.StatusInternalServerError, domainerrors.ErrInternalError.Message())
}
