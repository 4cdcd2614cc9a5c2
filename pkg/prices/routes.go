package prices

import (
	"github.com/hausbib/hausbib/pkg/auth"
	"github.com/hausbib/hausbib/pkg/permissions"
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers all of the price routes with their middleware.
func RegisterRoutes(e *echo.Echo, db *bun.DB, authMiddleware *auth.Middleware) {
	h := &handler{
		priceService: NewService(db),
	}

	e.POST("/prices", h.create, authMiddleware.RequireCapability(permissions.CapabilityAdd))
}
