package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/glamslot/booking/internal/api/middleware"
	"github.com/glamslot/booking/internal/core/domain"
	"github.com/glamslot/booking/internal/core/service"
)

// ViewHandler serves the routing and chrome side of the client: guard decisions,
// the role-conditioned menu and the guarded view shell.
type ViewHandler struct {
	prefix string
}

// NewViewHandler returns a handler for views mounted under prefix.
func NewViewHandler(prefix string) *ViewHandler {
	return &ViewHandler{prefix: prefix}
}

type guardResponse struct {
	Path string `json:"path"`
	domain.GuardDecision
}

type navigationResponse struct {
	Role  domain.Role      `json:"role"`
	Items []domain.NavItem `json:"items"`
}

type viewResponse struct {
	Path       string           `json:"path"`
	Identity   *domain.Identity `json:"identity,omitempty"`
	Navigation []domain.NavItem `json:"navigation,omitempty"`
}

// Guard reports whether the device may open a view.
//
// @Summary      Check view access
// @Tags         views
// @Produce      json
// @Param        path  query     string  true  "View path, e.g. /dashboard"
// @Success      200   {object}  guardResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/guard [get]
func (h *ViewHandler) Guard(c echo.Context) error {
	path := c.QueryParam("path")
	if path == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "path is required")
	}

	store, err := ctxSession(c)
	if err != nil {
		return err
	}
	decision := service.NewAccessGuard(store).Check(c.Request().Context(), path)
	return c.JSON(http.StatusOK, guardResponse{Path: path, GuardDecision: decision})
}

// Navigation returns the menu of the signed-in identity.
//
// @Summary      Role-conditioned navigation
// @Tags         views
// @Produce      json
// @Param        path  query     string  false  "Current view path"
// @Success      200   {object}  navigationResponse
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/navigation [get]
func (h *ViewHandler) Navigation(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, navigationResponse{
		Role:  id.Role,
		Items: service.Navigation(id.Role, c.QueryParam("path")),
	})
}

// Show renders the shell of a view that passed the guard. Anonymous visitors only
// reach public views, which carry no menu.
func (h *ViewHandler) Show(c echo.Context) error {
	path := middleware.ViewPath(c.Request().URL.Path, h.prefix)
	resp := viewResponse{Path: path}
	if id, ok := middleware.IdentityFrom(c); ok {
		resp.Identity = &id
		resp.Navigation = service.Navigation(id.Role, path)
	}
	return c.JSON(http.StatusOK, resp)
}
