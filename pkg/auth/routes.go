package auth

import (
	"github.com/hausbib/hausbib/pkg/permissions"
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers all auth routes and returns the service so the
// server can build the session middleware from it.
func RegisterRoutes(e *echo.Echo, db *bun.DB, sessionSecret string, resolver *permissions.Resolver) *Service {
	authService := NewService(db, sessionSecret)

	h := &handler{
		authService: authService,
		resolver:    resolver,
	}

	auth := e.Group("/auth")
	auth.POST("/login", h.login)
	auth.POST("/logout", h.logout)
	auth.GET("/me", h.me)

	return authService
}
