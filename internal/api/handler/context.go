package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/glamslot/booking/internal/api/middleware"
	"github.com/glamslot/booking/internal/core/domain"
	"github.com/glamslot/booking/internal/core/ports"
)

// ctxSession returns the device session attached by the Session middleware.
// A missing store means the route was mounted without it.
func ctxSession(c echo.Context) (ports.SessionStore, error) {
	store := middleware.SessionFrom(c)
	if store == nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "session not available")
	}
	return store, nil
}

// ctxIdentity returns the identity resolved by the middleware, falling back to the
// device session. Anonymous callers get 401.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	if id, ok := middleware.IdentityFrom(c); ok {
		return id, nil
	}
	store, err := ctxSession(c)
	if err != nil {
		return domain.Identity{}, err
	}
	id, ok := store.Current(c.Request().Context())
	if !ok {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return id, nil
}

// toastNotifier forwards to next and remembers the last notification of the request
// so it can be returned with the response.
func toastNotifier(c echo.Context, next ports.Notifier) ports.Notifier {
	return ports.NotifierFunc(func(n domain.Notification) {
		c.Set(middleware.ContextKeyToast, n)
		if next != nil {
			next.Notify(n)
		}
	})
}

func toastFrom(c echo.Context) *domain.Notification {
	n, ok := c.Get(middleware.ContextKeyToast).(domain.Notification)
	if !ok {
		return nil
	}
	return &n
}
