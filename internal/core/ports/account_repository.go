package ports

import (
	"context"

	"github.com/glamslot/booking/internal/core/domain"
)

// AccountRepository persists registered accounts for the account-backed provider.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
}
