package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/glamslot/booking/internal/core/ports"
)

// SessionProvider returns the session store of a device.
type SessionProvider interface {
	For(deviceID string) ports.SessionStore
}

// SessionProviderFunc adapts a function to SessionProvider.
type SessionProviderFunc func(deviceID string) ports.SessionStore

func (f SessionProviderFunc) For(deviceID string) ports.SessionStore { return f(deviceID) }

// Session attaches the device's session store to the context. Must run after Device.
func Session(sessions SessionProvider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deviceID := DeviceIDFrom(c)
			if deviceID == "" {
				return echo.NewHTTPError(http.StatusInternalServerError, "device not identified")
			}
			c.Set(ContextKeySession, sessions.For(deviceID))
			return next(c)
		}
	}
}

// RequireIdentity rejects anonymous API calls with 401 and stores the identity in
// the context for the handler.
func RequireIdentity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			store := SessionFrom(c)
			if store == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			id, ok := store.Current(c.Request().Context())
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			c.Set(ContextKeyIdentity, id)
			return next(c)
		}
	}
}
