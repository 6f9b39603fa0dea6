package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/glamslot/booking/internal/core/domain"
	"github.com/glamslot/booking/internal/core/ports"
)

// PaymentMethodHandler serves the payment method registry of the signed-in identity.
type PaymentMethodHandler struct {
	service  ports.PaymentMethodService
	notifier ports.Notifier
}

func NewPaymentMethodHandler(service ports.PaymentMethodService, notifier ports.Notifier) *PaymentMethodHandler {
	return &PaymentMethodHandler{service: service, notifier: notifier}
}

// List handles GET /api/v1/me/payment-methods.
//
// @Summary      List payment methods
// @Tags         payment-methods
// @Produce      json
// @Success      200  {object}  paymentMethodsResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/me/payment-methods [get]
func (h *PaymentMethodHandler) List(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	items, err := h.service.List(c.Request().Context(), id.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, paymentMethodsResponse{Items: items})
}

// Add handles POST /api/v1/me/payment-methods.
//
// @Summary      Add a payment method
// @Tags         payment-methods
// @Accept       json
// @Produce      json
// @Param        body  body      addPaymentMethodRequest  true  "Payment method"
// @Success      201   {object}  paymentMethodResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/v1/me/payment-methods [post]
func (h *PaymentMethodHandler) Add(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req addPaymentMethodRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	pm, err := h.service.Add(c.Request().Context(), id.ID, ports.AddPaymentMethodInput{
		Kind:       domain.PaymentKind(req.Kind),
		Brand:      req.Brand,
		Last4:      req.Last4,
		HolderName: req.HolderName,
		ExpMonth:   req.ExpMonth,
		ExpYear:    req.ExpYear,
	})
	if err != nil {
		return err
	}

	h.notify(c, "Payment method added", "Your payment method has been saved.")
	return c.JSON(http.StatusCreated, paymentMethodResponse{Method: pm, Toast: toastFrom(c)})
}

// Remove handles DELETE /api/v1/me/payment-methods/:id.
//
// @Summary      Remove a payment method
// @Tags         payment-methods
// @Produce      json
// @Param        id   path      string  true  "Payment method ID"
// @Success      200  {object}  toastResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/me/payment-methods/{id} [delete]
func (h *PaymentMethodHandler) Remove(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := h.service.Remove(c.Request().Context(), id.ID, c.Param("id")); err != nil {
		return err
	}

	h.notify(c, "Payment method removed", "The payment method has been deleted.")
	return c.JSON(http.StatusOK, toastResponse{Toast: toastFrom(c)})
}

// SetDefault handles POST /api/v1/me/payment-methods/:id/default.
//
// @Summary      Make a payment method the default
// @Tags         payment-methods
// @Produce      json
// @Param        id   path      string  true  "Payment method ID"
// @Success      200  {object}  paymentMethodsResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /api/v1/me/payment-methods/{id}/default [post]
func (h *PaymentMethodHandler) SetDefault(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	if err := h.service.SetDefault(ctx, id.ID, c.Param("id")); err != nil {
		return err
	}
	items, err := h.service.List(ctx, id.ID)
	if err != nil {
		return err
	}

	h.notify(c, "Default updated", "Your default payment method has been changed.")
	return c.JSON(http.StatusOK, paymentMethodsResponse{Items: items, Toast: toastFrom(c)})
}

// ToggleActive handles POST /api/v1/me/payment-methods/:id/toggle.
//
// @Summary      Enable or disable a payment method
// @Tags         payment-methods
// @Produce      json
// @Param        id   path      string  true  "Payment method ID"
// @Success      200  {object}  paymentMethodResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/me/payment-methods/{id}/toggle [post]
func (h *PaymentMethodHandler) ToggleActive(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	pm, err := h.service.ToggleActive(c.Request().Context(), id.ID, c.Param("id"))
	if err != nil {
		return err
	}

	if pm.IsActive {
		h.notify(c, "Payment method enabled", "The payment method can be used again.")
	} else {
		h.notify(c, "Payment method disabled", "The payment method will not be used for bookings.")
	}
	return c.JSON(http.StatusOK, paymentMethodResponse{Method: pm, Toast: toastFrom(c)})
}

func (h *PaymentMethodHandler) notify(c echo.Context, title, description string) {
	toastNotifier(c, h.notifier).Notify(domain.Notification{
		Kind:        domain.NotifySuccess,
		Title:       title,
		Description: description,
	})
}
