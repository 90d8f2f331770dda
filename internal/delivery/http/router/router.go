// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"farmgate/internal/delivery/http/middleware"
	"farmgate/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	{
		api.POST("/signup", r.accountHandler.Signup)
		api.POST("/login", r.accountHandler.Login)
		api.POST("/logout", r.accountHandler.Logout)
		api.GET("/test", handler.Test)
	}

	// Routes behind the session gate.
	gated := e.Group("/api", r.authMiddleware.Authenticate)
	{
		gated.GET("/protected", r.accountHandler.Protected)
		gated.GET("/profile", r.accountHandler.Profile)
	}
}
