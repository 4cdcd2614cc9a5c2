package topics

import (
	"github.com/hausbib/hausbib/pkg/auth"
	"github.com/hausbib/hausbib/pkg/permissions"
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers all of the topic routes with their middleware.
func RegisterRoutes(e *echo.Echo, db *bun.DB, authMiddleware *auth.Middleware) {
	h := &handler{
		topicService: NewService(db),
	}

	e.GET("/topics", h.list)
	e.POST("/topics", h.create, authMiddleware.RequireCapability(permissions.CapabilityAdd))
}
