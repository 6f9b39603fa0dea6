package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/glamslot/booking/internal/core/domain"
)

// PaymentMethodRepository stores payment methods per owner in memory.
type PaymentMethodRepository struct {
	mu      sync.RWMutex
	byOwner map[string]map[string]*domain.PaymentMethod
}

func NewPaymentMethodRepository() *PaymentMethodRepository {
	return &PaymentMethodRepository{byOwner: make(map[string]map[string]*domain.PaymentMethod)}
}

func clonePaymentMethod(pm *domain.PaymentMethod) *domain.PaymentMethod {
	c := *pm
	return &c
}

func (r *PaymentMethodRepository) List(_ context.Context, ownerID string) ([]*domain.PaymentMethod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.PaymentMethod, 0, len(r.byOwner[ownerID]))
	for _, pm := range r.byOwner[ownerID] {
		out = append(out, clonePaymentMethod(pm))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *PaymentMethodRepository) Get(_ context.Context, ownerID, id string) (*domain.PaymentMethod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pm, ok := r.byOwner[ownerID][id]
	if !ok {
		return nil, domain.ErrPaymentMethodNotFound
	}
	return clonePaymentMethod(pm), nil
}

func (r *PaymentMethodRepository) Insert(_ context.Context, pm *domain.PaymentMethod) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	owned, ok := r.byOwner[pm.OwnerID]
	if !ok {
		owned = make(map[string]*domain.PaymentMethod)
		r.byOwner[pm.OwnerID] = owned
	}
	owned[pm.ID] = clonePaymentMethod(pm)
	return nil
}

func (r *PaymentMethodRepository) Update(_ context.Context, pm *domain.PaymentMethod) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	owned := r.byOwner[pm.OwnerID]
	if _, ok := owned[pm.ID]; !ok {
		return domain.ErrPaymentMethodNotFound
	}
	owned[pm.ID] = clonePaymentMethod(pm)
	return nil
}

func (r *PaymentMethodRepository) Delete(_ context.Context, ownerID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	owned := r.byOwner[ownerID]
	if _, ok := owned[id]; !ok {
		return domain.ErrPaymentMethodNotFound
	}
	delete(owned, id)
	return nil
}

// SetDefault flips the flags of every method of the owner under one lock.
func (r *PaymentMethodRepository) SetDefault(_ context.Context, ownerID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	owned := r.byOwner[ownerID]
	if id != "" {
		if _, ok := owned[id]; !ok {
			return domain.ErrPaymentMethodNotFound
		}
	}
	for pmID, pm := range owned {
		pm.IsDefault = pmID == id
	}
	return nil
}
