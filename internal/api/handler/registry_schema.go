package handler

import "github.com/glamslot/booking/internal/core/domain"

type addPaymentMethodRequest struct {
	Kind       string `json:"kind" validate:"required,oneof=card paypal"`
	Brand      string `json:"brand"`
	Last4      string `json:"last4" validate:"omitempty,len=4,numeric"`
	HolderName string `json:"holder_name" validate:"required"`
	ExpMonth   int    `json:"exp_month" validate:"omitempty,min=1,max=12"`
	ExpYear    int    `json:"exp_year" validate:"omitempty,min=2000"`
}

type paymentMethodsResponse struct {
	Items []*domain.PaymentMethod `json:"items"`
	Toast *domain.Notification    `json:"toast,omitempty"`
}

type paymentMethodResponse struct {
	Method *domain.PaymentMethod `json:"method"`
	Toast  *domain.Notification  `json:"toast,omitempty"`
}

type favoriteRequest struct {
	SalonID   string  `json:"salon_id" validate:"required"`
	SalonName string  `json:"salon_name" validate:"required"`
	Address   string  `json:"address"`
	Rating    float64 `json:"rating" validate:"gte=0,lte=5"`
	ImageURL  string  `json:"image_url" validate:"omitempty,url"`
}

type favoritesResponse struct {
	Items []*domain.Favorite   `json:"items"`
	Toast *domain.Notification `json:"toast,omitempty"`
}

type favoriteResponse struct {
	Favorite *domain.Favorite     `json:"favorite"`
	Toast    *domain.Notification `json:"toast,omitempty"`
}

type favoriteToggleResponse struct {
	Favorited bool                 `json:"favorited"`
	Toast     *domain.Notification `json:"toast,omitempty"`
}

type toastResponse struct {
	Toast *domain.Notification `json:"toast,omitempty"`
}
