package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "shelter/internal/delivery/context"
	domainerrors "shelter/internal/domain/errors"
	"shelter/internal/upstream"

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

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPCode(), domainerrors.Response{
			Success: false,
			Code:    appErr.HTTPCode(),
			Message: appErr.Message(),
			Error: &domainerrors.ErrorInfo{
				Code:    appErr.ErrorCode(),
				Details: appErr.Details(),
			},
		})

		return
	}

	// An exhausted upstream retry maps to 503 rather than 500
	if errors.Is(err, upstream.ErrUnavailable) {
		unavailable := domainerrors.ErrUpstreamUnavailable
		c.JSON(unavailable.HTTPCode(), domainerrors.Response{
			Success: false,
			Code:    unavailable.HTTPCode(),
			Message: unavailable.Message(),
			Error: &domainerrors.ErrorInfo{
				Code: unavailable.ErrorCode(),
			},
		})

		return
	}

	// Check if it's Echo's HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := fmt.Sprintf("%v", httpErr.Message)
		c.JSON(httpErr.Code, domainerrors.Response{
			Success: false,
			Code:    httpErr.Code,
			Message: message,
			Error: &domainerrors.ErrorInfo{
				Code:    "HTTP_ERROR",
				Details: message,
			},
		})

		return
	}

	// Default to internal error, log error and return generic error
	logger := deliverycontext.RequestLogger(c.Request().Context(), m.logger)
	logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	internal := domainerrors.ErrInternalError
	c.JSON(http.StatusInternalServerError, domainerrors.Response{
		Success: false,
		Code:    http.StatusInternalServerError,
		Message: internal.Message(),
		Error: &domainerrors.ErrorInfo{
			Code: internal.ErrorCode(),
		},
	})
}
