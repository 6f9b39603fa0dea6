package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/glamslot/booking/internal/core/domain"
	"github.com/glamslot/booking/internal/core/ports"
)

// Context keys shared with the handlers.
const (
	ContextKeyDeviceID = "device_id"
	ContextKeySession  = "session"
	ContextKeyIdentity = "identity"
	ContextKeyToast    = "toast"
)

// DeviceIDFrom returns the device id set by Device.
func DeviceIDFrom(c echo.Context) string {
	id, _ := c.Get(ContextKeyDeviceID).(string)
	return id
}

// SessionFrom returns the device session store set by Session, or nil.
func SessionFrom(c echo.Context) ports.SessionStore {
	s, _ := c.Get(ContextKeySession).(ports.SessionStore)
	return s
}

// IdentityFrom returns the identity resolved by Guard or RequireIdentity.
func IdentityFrom(c echo.Context) (domain.Identity, bool) {
	id, ok := c.Get(ContextKeyIdentity).(domain.Identity)
	return id, ok
}
