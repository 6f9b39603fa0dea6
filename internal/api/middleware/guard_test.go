package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/glamslot/booking/internal/core/domain"
	"github.com/glamslot/booking/internal/core/ports"
	"github.com/glamslot/booking/internal/core/service"
	"github.com/glamslot/booking/internal/infrastructure/db/memory"
)

func newStore(t *testing.T) *service.SessionStore {
	t.Helper()
	return service.NewSessionStore(memory.NewSessionStorage(), "salon_user:test", zerolog.Nop())
}

func runGuard(t *testing.T, store *service.SessionStore, path string) (*httptest.ResponseRecorder, bool, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextKeySession, store)

	called := false
	handler := Guard("/app")(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec, called, c
}

func TestGuard_RedirectsAnonymousFromProtectedView(t *testing.T) {
	rec, called, _ := runGuard(t, newStore(t), "/app/dashboard")

	if called {
		t.Fatalf("protected view must not render for anonymous visitor")
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestGuard_AllowsPublicView(t *testing.T) {
	rec, called, _ := runGuard(t, newStore(t), "/app/register")

	if !called || rec.Code != http.StatusOK {
		t.Fatalf("public view must render, got %d", rec.Code)
	}
}

func TestGuard_AllowsAuthenticatedAndStoresIdentity(t *testing.T) {
	store := newStore(t)
	id := domain.Identity{ID: "u1", Name: "jane", Email: "jane@example.com", Role: domain.RoleClient}
	if err := store.SetCurrent(context.Background(), id); err != nil {
		t.Fatalf("set current: %v", err)
	}

	rec, called, c := runGuard(t, store, "/app/salon/dashboard")
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("client identity must pass salon view, got %d", rec.Code)
	}
	got, ok := IdentityFrom(c)
	if !ok || got != id {
		t.Fatalf("identity not stored in context: %+v", got)
	}
}

func TestRequireIdentity_RejectsAnonymous(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me/favorites", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextKeySession, newStore(t))

	err := RequireIdentity()(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestSession_AttachesDeviceStore(t *testing.T) {
	registry := service.NewSessionRegistry(memory.NewSessionStorage(), "", zerolog.Nop())
	provider := SessionProviderFunc(func(deviceID string) ports.SessionStore { return registry.For(deviceID) })

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.Set(ContextKeyDeviceID, "device-1")

	err := Session(provider)(func(c echo.Context) error {
		if SessionFrom(c) != registry.For("device-1") {
			t.Fatalf("unexpected session store")
		}
		return nil
	})(c)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestViewPath(t *testing.T) {
	cases := map[string]string{
		"/app/dashboard": "/dashboard",
		"/app":           "/",
		"/app/":          "/",
	}
	for in, want := range cases {
		if got := ViewPath(in, "/app"); got != want {
			t.Fatalf("ViewPath(%q) = %q, want %q", in, got, want)
		}
	}
}
