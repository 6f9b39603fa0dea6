package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/glamslot/booking/internal/core/domain"
)

// AccountRepository keeps registered accounts keyed by email.
type AccountRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*domain.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{byEmail: make(map[string]*domain.Account)}
}

func (r *AccountRepository) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	c := *a
	return &c, nil
}

func (r *AccountRepository) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[account.Email]; exists {
		return nil, domain.ErrAccountExists
	}
	c := *account
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	r.byEmail[c.Email] = &c
	out := c
	return &out, nil
}
