package ports

import (
	"context"

	"github.com/glamslot/booking/internal/core/domain"
)

// AddPaymentMethodInput carries the fields of a new payment method.
type AddPaymentMethodInput struct {
	Kind       domain.PaymentKind
	Brand      string
	Last4      string
	HolderName string
	ExpMonth   int
	ExpYear    int
}

// PaymentMethodService defines the payment method registry use cases.
type PaymentMethodService interface {
	List(ctx context.Context, ownerID string) ([]*domain.PaymentMethod, error)
	Add(ctx context.Context, ownerID string, in AddPaymentMethodInput) (*domain.PaymentMethod, error)
	Remove(ctx context.Context, ownerID, id string) error
	SetDefault(ctx context.Context, ownerID, id string) error
	ToggleActive(ctx context.Context, ownerID, id string) (*domain.PaymentMethod, error)
}

// AddFavoriteInput describes the salon being bookmarked.
type AddFavoriteInput struct {
	SalonID   string
	SalonName string
	Address   string
	Rating    float64
	ImageURL  string
}

// FavoriteService defines the favorites registry use cases.
type FavoriteService interface {
	List(ctx context.Context, ownerID string) ([]*domain.Favorite, error)
	Add(ctx context.Context, ownerID string, in AddFavoriteInput) (*domain.Favorite, error)
	Remove(ctx context.Context, ownerID, id string) error
	Toggle(ctx context.Context, ownerID string, in AddFavoriteInput) (bool, error)
}
