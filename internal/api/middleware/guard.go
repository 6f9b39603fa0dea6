package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/glamslot/booking/internal/core/domain"
	"github.com/glamslot/booking/internal/core/service"
)

// Guard applies the access guard to view routes mounted under prefix. The view path
// is the request path with prefix stripped. Anonymous visitors of a protected view
// get a 302 to the login page; the requested location is not remembered.
func Guard(prefix string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			store := SessionFrom(c)
			if store == nil {
				return c.Redirect(http.StatusFound, domain.LoginPath)
			}

			path := ViewPath(c.Request().URL.Path, prefix)
			ctx := c.Request().Context()
			decision := service.NewAccessGuard(store).Check(ctx, path)
			if !decision.Allowed {
				return c.Redirect(http.StatusFound, decision.RedirectTo)
			}

			if id, ok := store.Current(ctx); ok {
				c.Set(ContextKeyIdentity, id)
			}
			return next(c)
		}
	}
}

// ViewPath strips prefix from a request path, keeping the leading slash.
func ViewPath(requestPath, prefix string) string {
	path := strings.TrimPrefix(requestPath, prefix)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}
