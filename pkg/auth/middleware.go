package auth

import (
	"github.com/hausbib/hausbib/pkg/errcodes"
	"github.com/hausbib/hausbib/pkg/permissions"
	"github.com/labstack/echo/v4"
)

// Context keys for session data.
const (
	contextKeyUserID      = "user_id"
	contextKeyDisplayName = "display_name"
	contextKeyRole        = "role"
)

// Middleware provides authentication middleware.
type Middleware struct {
	authService *Service
	resolver    *permissions.Resolver
}

// NewMiddleware creates a new auth middleware.
func NewMiddleware(authService *Service, resolver *permissions.Resolver) *Middleware {
	return &Middleware{
		authService: authService,
		resolver:    resolver,
	}
}

// Session reads the session cookie when present and stores the typed role and
// user info in the request context. Requests without a valid session proceed
// as anonymous; the session is stateless and never touches the store.
func (m *Middleware) Session(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(CookieName)
		if err == nil && cookie.Value != "" {
			claims, err := m.authService.ValidateToken(cookie.Value)
			if err == nil {
				c.Set(contextKeyUserID, claims.UserID)
				c.Set(contextKeyDisplayName, claims.DisplayName)
				c.Set(contextKeyRole, permissions.ParseRole(claims.Role))
			}
		}
		return next(c)
	}
}

// RequireCapability returns middleware that rejects requests whose role lacks
// the capability: 401 for anonymous callers, 403 for authenticated ones.
// Must run after Session.
func (m *Middleware) RequireCapability(cap permissions.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, authenticated := roleFromContext(c)
			if m.resolver.Can(role, cap) {
				return next(c)
			}
			if !authenticated {
				return errcodes.Unauthorized("Authentication required")
			}
			return errcodes.Forbidden("This action")
		}
	}
}

func roleFromContext(c echo.Context) (permissions.Role, bool) {
	role, ok := c.Get(contextKeyRole).(permissions.Role)
	if !ok {
		return permissions.RoleAnonymous, false
	}
	return role, true
}

// RoleFromContext returns the caller's role, or RoleAnonymous when there is
// no session.
func RoleFromContext(c echo.Context) permissions.Role {
	role, _ := roleFromContext(c)
	return role
}

// UserIDFromContext returns the session user id, if any.
func UserIDFromContext(c echo.Context) (string, bool) {
	id, ok := c.Get(contextKeyUserID).(string)
	return id, ok
}
