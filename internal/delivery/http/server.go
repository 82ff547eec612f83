// Package http serves the authentication API over HTTP.
package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"taskmanager/config"
	"taskmanager/internal/delivery"
	deliverycontext "taskmanager/internal/delivery/context"
	httpmiddleware "taskmanager/internal/delivery/http/middleware"
	"taskmanager/internal/delivery/http/router"
	"taskmanager/internal/delivery/http/validator"
	deliverymiddleware "taskmanager/internal/delivery/middleware"
	"taskmanager/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
)

// Server is the HTTP delivery.
type Server struct {
	cfg    *config.Config
	logger *slog.Logger
	echo   *echo.Echo
}

var _ delivery.Delivery = (*Server)(nil)

// NewServer builds the echo instance with the shared middleware chain.
func NewServer(cfg *config.Config, logger *slog.Logger, r *router.Router) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(logger, cfg.Env.Debug).HandleHTTPError

	e.Use(middleware.Recover())
	e.Use(deliverymiddleware.NewRequestIDMiddleware(logger).Process)
	e.Use(slogecho.NewWithConfig(logger, slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		WithRequestID:    false,
		Filters: []slogecho.Filter{
			slogecho.IgnorePath("/health", "/metrics"),
		},
	}))
	e.Use(deliverymiddleware.NewLoggerMiddleware(logger, cfg.Env.Debug).Handle)
	if cfg.HTTP.MaxRequestBodySize != "" {
		e.Use(middleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOriginFunc:  func(string) (bool, error) { return true, nil },
		AllowCredentials: true,
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodDelete, http.MethodOptions, http.MethodPatch,
		},
		AllowHeaders: []string{
			echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept,
			echo.HeaderAuthorization, deliverycontext.HeaderXRequestID,
		},
		ExposeHeaders: []string{"X-Total-Count", deliverycontext.HeaderXRequestID},
	}))

	timeouts := cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	r.RegisterRoutes(e)

	return &Server{
		cfg:    cfg,
		logger: logger,
		echo:   e,
	}
}

// Handler exposes the router for in-process tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Serve listens on the configured port until Shutdown is called.
func (s *Server) Serve(_ context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))

	s.logger.Info("Starting HTTP server", slog.String("hostPort", hostPort))
	if err := s.echo.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
