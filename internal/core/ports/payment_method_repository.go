package ports

import (
	"context"

	"github.com/glamslot/booking/internal/core/domain"
)

// PaymentMethodRepository stores payment methods per owner.
type PaymentMethodRepository interface {
	// List returns the owner's methods ordered by CreatedAt ascending.
	List(ctx context.Context, ownerID string) ([]*domain.PaymentMethod, error)
	Get(ctx context.Context, ownerID, id string) (*domain.PaymentMethod, error)
	Insert(ctx context.Context, pm *domain.PaymentMethod) error
	Update(ctx context.Context, pm *domain.PaymentMethod) error
	Delete(ctx context.Context, ownerID, id string) error
	// SetDefault clears IsDefault on every other method of the owner and sets it on id
	// in one step. An empty id only clears.
	SetDefault(ctx context.Context, ownerID, id string) error
}
