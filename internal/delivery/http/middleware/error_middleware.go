package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "qkart/internal/delivery/context"
	domainerrors "qkart/internal/domain/errors"
	"qkart/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware renders every handler error as the unified error envelope.
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
	if c.Response().Committed {
		return
	}

	resp := m.toResponse(err, c)
	if writeErr := c.JSON(resp.Code, resp); writeErr != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", writeErr))
	}
}

func (m *ErrorMiddleware) toResponse(err error, c echo.Context) domainerrors.Response {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logUnexpected(err, c)
			// Internal details stay in the logs.
			return domainerrors.Response{
				Success: false,
				Code:    appErr.HTTPCode(),
				Message: appErr.Message(),
				Error:   &domainerrors.ErrorInfo{Code: appErr.ErrorCode()},
			}
		}

		return domainerrors.ToResponse(appErr)
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := fmt.Sprint(httpErr.Message)

		return domainerrors.Response{
			Success: false,
			Code:    httpErr.Code,
			Message: message,
			Error:   &domainerrors.ErrorInfo{Code: "HTTP_ERROR"},
		}
	}

	m.logUnexpected(err, c)

	return domainerrors.Response{
		Success: false,
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
		Error:   &domainerrors.ErrorInfo{Code: domainerrors.ErrInternalError.ErrorCode()},
	}
}

func (m *ErrorMiddleware) logUnexpected(err error, c echo.Context) {
	req := c.Request()
	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).Error("Unhandled error",
		slog.String("error", fmt.Sprintf("%+v", err)),
		slog.String("path", req.URL.Path),
		slog.String("method", req.Method),
	)
}
