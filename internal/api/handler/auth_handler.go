package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/glamslot/booking/internal/core/domain"
	"github.com/glamslot/booking/internal/core/ports"
)

// IdentityServiceFactory builds the identity operations of one device session.
type IdentityServiceFactory func(store ports.SessionStore, notifier ports.Notifier) ports.IdentityService

type AuthHandler struct {
	newService IdentityServiceFactory
	notifier   ports.Notifier
}

func NewAuthHandler(newService IdentityServiceFactory, notifier ports.Notifier) *AuthHandler {
	return &AuthHandler{newService: newService, notifier: notifier}
}

func (h *AuthHandler) service(c echo.Context) (ports.IdentityService, error) {
	store, err := ctxSession(c)
	if err != nil {
		return nil, err
	}
	return h.newService(store, toastNotifier(c, h.notifier)), nil
}

// Login signs the device in.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	svc, err := h.service(c)
	if err != nil {
		return err
	}
	id, err := svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{Authenticated: true, Identity: &id, Toast: toastFrom(c)})
}

// Register creates an account and signs the device in.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Sign-up form"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/v1/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	svc, err := h.service(c)
	if err != nil {
		return err
	}
	id, err := svc.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, sessionResponse{Authenticated: true, Identity: &id, Toast: toastFrom(c)})
}

// DemoLogin signs the device in as a demo client or salon.
//
// @Summary      Demo login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      demoLoginRequest  true  "Demo role"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/v1/auth/demo [post]
func (h *AuthHandler) DemoLogin(c echo.Context) error {
	var req demoLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	svc, err := h.service(c)
	if err != nil {
		return err
	}
	id, err := svc.DemoLogin(c.Request().Context(), domain.Role(req.Role))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{Authenticated: true, Identity: &id, Toast: toastFrom(c)})
}

// Logout clears the device session.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	svc, err := h.service(c)
	if err != nil {
		return err
	}
	if err := svc.Logout(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{Authenticated: false, Toast: toastFrom(c)})
}

// Me returns the current identity of the device, if any.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /api/v1/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	store, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, ok := store.Current(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusOK, sessionResponse{Authenticated: false})
	}
	return c.JSON(http.StatusOK, sessionResponse{Authenticated: true, Identity: &id})
}
