package people

import (
	"github.com/hausbib/hausbib/pkg/auth"
	"github.com/hausbib/hausbib/pkg/permissions"
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers all of the people routes with their middleware.
func RegisterRoutes(e *echo.Echo, db *bun.DB, authMiddleware *auth.Middleware) {
	h := &handler{
		personService: NewService(db),
	}

	e.GET("/people", h.list)
	e.GET("/people/:id", h.retrieve)
	e.POST("/people", h.create, authMiddleware.RequireCapability(permissions.CapabilityAdd))
	e.PUT("/people/:id", h.update, authMiddleware.RequireCapability(permissions.CapabilityEdit))
	e.GET("/authors", h.listAuthors)
}
