// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"taskmanager/internal/delivery/http/middleware"
	"taskmanager/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
)

// Router registers every route of the service.
type Router struct {
	authHandler    *handler.AuthHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        http.Handler
}

// NewRouter is the constructor for the Router.
// A nil metrics handler leaves /metrics unregistered.
func NewRouter(authHandler *handler.AuthHandler, authMiddleware *middleware.AuthMiddleware, metrics http.Handler) *Router {
	return &Router{
		authHandler:    authHandler,
		authMiddleware: authMiddleware,
		metrics:        metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *Router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	if r.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(r.metrics))
	}

	api := e.Group("/api")
	api.POST("/login", r.authHandler.Login)

	protected := api.Group("", r.authMiddleware.Authenticate)
	protected.GET("/me", r.authHandler.Me)
}
