package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "taskmanager/internal/delivery/context"
	"taskmanager/internal/delivery/http/response"
	domainerrors "taskmanager/internal/domain/errors"
	"taskmanager/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewErrorMiddleware creates a new error handling middleware.
// With debug on, details of server errors are echoed back to the client.
func NewErrorMiddleware(logger *slog.Logger, debug bool) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
		debug:  debug,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		details := appErr.Details()
		switch {
		case domainerrors.IsTokenError(err):
			// Clients only learn that the token was refused.
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
			details = ""
		case domainerrors.IsCredentialError(err):
			details = ""
		case appErr.HTTPCode() >= http.StatusInternalServerError:
			logger.Error("Request failed", slog.Any("error", err), slog.String("code", appErr.ErrorCode()))
			if !m.debug {
				details = ""
			}
		}

		m.write(c, logger, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)

		return
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		message := fmt.Sprint(httpErr.Message)
		m.write(c, logger, httpErr.Code, "HTTP_ERROR", message, "")

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	details := ""
	if m.debug {
		details = err.Error()
	}
	m.write(c, logger, http.StatusInternalServerError, domainerrors.ErrInternalError.ErrorCode(),
		domainerrors.ErrInternalError.Message(), details)
}

func (m *ErrorMiddleware) write(c echo.Context, logger *slog.Logger, status int, code, message, details string) {
	var err error
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = response.Error(c, status, code, message, details)
	}
	if err != nil {
		logger.Error("Failed to write error response", slog.Any("error", err))
	}
}
