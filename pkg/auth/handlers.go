package auth

import (
	"net/http"
	"time"

	"github.com/hausbib/hausbib/pkg/permissions"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	// CookieName is the name of the session cookie.
	CookieName = "hausbib_session"
	// CookieMaxAge is how long the cookie is valid.
	CookieMaxAge = 30 * 24 * time.Hour // 30 days
)

type handler struct {
	authService *Service
	resolver    *permissions.Resolver
}

// login handles user login.
func (h *handler) login(c echo.Context) error {
	ctx := c.Request().Context()

	params := LoginPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.authService.Authenticate(ctx, params.Identifier, params.Password)
	if err != nil {
		return err
	}

	token, err := h.authService.GenerateToken(user)
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(sessionCookie(c, token, int(CookieMaxAge.Seconds())))

	return errors.WithStack(c.JSON(http.StatusOK, h.meResponse(user.ID, user.Username, permissions.ParseRole(user.Role))))
}

// logout clears the session cookie.
func (h *handler) logout(c echo.Context) error {
	c.SetCookie(sessionCookie(c, "", -1))
	return errors.WithStack(c.JSON(http.StatusOK, map[string]string{"message": "Logged out successfully"}))
}

// me returns the current session's identity and capabilities.
func (h *handler) me(c echo.Context) error {
	userID, ok := UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Not authenticated"})
	}

	displayName, _ := c.Get(contextKeyDisplayName).(string)

	return errors.WithStack(c.JSON(http.StatusOK, h.meResponse(userID, displayName, RoleFromContext(c))))
}

func (h *handler) meResponse(id, displayName string, role permissions.Role) MeResponse {
	return MeResponse{
		ID:          id,
		DisplayName: displayName,
		Role:        string(role),
		Permissions: PermissionsResponse{
			CanAdd:           h.resolver.Can(role, permissions.CapabilityAdd),
			CanEdit:          h.resolver.Can(role, permissions.CapabilityEdit),
			CanDelete:        h.resolver.Can(role, permissions.CapabilityDelete),
			CanViewPrices:    h.resolver.Can(role, permissions.CapabilityViewPrices),
			CanViewDebugInfo: h.resolver.Can(role, permissions.CapabilityViewDebugInfo),
		},
	}
}

func sessionCookie(c echo.Context, token string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.Request().TLS != nil || c.Request().Header.Get("X-Forwarded-Proto") == "https",
		SameSite: http.SameSiteLaxMode,
	}
}
