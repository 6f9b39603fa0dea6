package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/glamslot/booking/internal/core/domain"
	"github.com/glamslot/booking/internal/core/ports"
)

// FavoriteHandler serves the favorite salons of the signed-in identity.
type FavoriteHandler struct {
	service  ports.FavoriteService
	notifier ports.Notifier
}

func NewFavoriteHandler(service ports.FavoriteService, notifier ports.Notifier) *FavoriteHandler {
	return &FavoriteHandler{service: service, notifier: notifier}
}

// List handles GET /api/v1/me/favorites.
//
// @Summary      List favorite salons
// @Tags         favorites
// @Produce      json
// @Success      200  {object}  favoritesResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/me/favorites [get]
func (h *FavoriteHandler) List(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	items, err := h.service.List(c.Request().Context(), id.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, favoritesResponse{Items: items})
}

// Add handles POST /api/v1/me/favorites.
//
// @Summary      Add a salon to favorites
// @Tags         favorites
// @Accept       json
// @Produce      json
// @Param        body  body      favoriteRequest  true  "Salon"
// @Success      201   {object}  favoriteResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/v1/me/favorites [post]
func (h *FavoriteHandler) Add(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	in, err := bindFavorite(c)
	if err != nil {
		return err
	}

	f, err := h.service.Add(c.Request().Context(), id.ID, in)
	if err != nil {
		return err
	}

	h.notify(c, "Added to favorites", f.SalonName+" is now in your favorites.")
	return c.JSON(http.StatusCreated, favoriteResponse{Favorite: f, Toast: toastFrom(c)})
}

// Remove handles DELETE /api/v1/me/favorites/:id.
//
// @Summary      Remove a favorite
// @Tags         favorites
// @Produce      json
// @Param        id   path      string  true  "Favorite ID"
// @Success      200  {object}  toastResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/me/favorites/{id} [delete]
func (h *FavoriteHandler) Remove(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := h.service.Remove(c.Request().Context(), id.ID, c.Param("id")); err != nil {
		return err
	}

	h.notify(c, "Removed from favorites", "The salon has been removed from your favorites.")
	return c.JSON(http.StatusOK, toastResponse{Toast: toastFrom(c)})
}

// Toggle handles POST /api/v1/me/favorites/toggle.
//
// @Summary      Toggle a salon in favorites
// @Tags         favorites
// @Accept       json
// @Produce      json
// @Param        body  body      favoriteRequest  true  "Salon"
// @Success      200   {object}  favoriteToggleResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/v1/me/favorites/toggle [post]
func (h *FavoriteHandler) Toggle(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	in, err := bindFavorite(c)
	if err != nil {
		return err
	}

	added, err := h.service.Toggle(c.Request().Context(), id.ID, in)
	if err != nil {
		return err
	}

	if added {
		h.notify(c, "Added to favorites", in.SalonName+" is now in your favorites.")
	} else {
		h.notify(c, "Removed from favorites", in.SalonName+" has been removed from your favorites.")
	}
	return c.JSON(http.StatusOK, favoriteToggleResponse{Favorited: added, Toast: toastFrom(c)})
}

func bindFavorite(c echo.Context) (ports.AddFavoriteInput, error) {
	var req favoriteRequest
	if err := c.Bind(&req); err != nil {
		return ports.AddFavoriteInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return ports.AddFavoriteInput{}, echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return ports.AddFavoriteInput{
		SalonID:   req.SalonID,
		SalonName: req.SalonName,
		Address:   req.Address,
		Rating:    req.Rating,
		ImageURL:  req.ImageURL,
	}, nil
}

func (h *FavoriteHandler) notify(c echo.Context, title, description string) {
	toastNotifier(c, h.notifier).Notify(domain.Notification{
		Kind:        domain.NotifySuccess,
		Title:       title,
		Description: description,
	})
}
