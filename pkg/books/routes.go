package books

import (
	"github.com/hausbib/hausbib/pkg/auth"
	"github.com/hausbib/hausbib/pkg/permissions"
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers all of the book routes with their middleware.
func RegisterRoutes(e *echo.Echo, db *bun.DB, resolver *permissions.Resolver, authMiddleware *auth.Middleware) {
	h := &handler{
		bookService: NewService(db),
		resolver:    resolver,
	}

	e.GET("/books", h.list)
	e.GET("/books/removed", h.listRemoved, authMiddleware.RequireCapability(permissions.CapabilityViewDebugInfo))
	e.GET("/books/:id", h.retrieve)
	e.POST("/books", h.create, authMiddleware.RequireCapability(permissions.CapabilityAdd))
	e.PUT("/books/:id", h.update, authMiddleware.RequireCapability(permissions.CapabilityEdit))
	e.PATCH("/books", h.softDelete, authMiddleware.RequireCapability(permissions.CapabilityDelete))
	e.DELETE("/books/:id", h.deleteBook, authMiddleware.RequireCapability(permissions.CapabilityDelete))
}
