package ports

import (
	"context"

	"github.com/glamslot/booking/internal/core/domain"
)

// FavoriteRepository stores bookmarked salons per owner.
type FavoriteRepository interface {
	List(ctx context.Context, ownerID string) ([]*domain.Favorite, error)
	FindBySalon(ctx context.Context, ownerID, salonID string) (*domain.Favorite, error)
	Insert(ctx context.Context, f *domain.Favorite) error
	Delete(ctx context.Context, ownerID, id string) error
}
