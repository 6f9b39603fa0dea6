package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/glamslot/booking/internal/core/domain"
)

// FavoriteRepository stores favorites per owner in memory.
type FavoriteRepository struct {
	mu      sync.RWMutex
	byOwner map[string][]*domain.Favorite
}

func NewFavoriteRepository() *FavoriteRepository {
	return &FavoriteRepository{byOwner: make(map[string][]*domain.Favorite)}
}

func (r *FavoriteRepository) List(_ context.Context, ownerID string) ([]*domain.Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Favorite, 0, len(r.byOwner[ownerID]))
	for _, f := range r.byOwner[ownerID] {
		c := *f
		out = append(out, &c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].AddedAt.Before(out[j].AddedAt) })
	return out, nil
}

func (r *FavoriteRepository) FindBySalon(_ context.Context, ownerID, salonID string) (*domain.Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, f := range r.byOwner[ownerID] {
		if f.SalonID == salonID {
			c := *f
			return &c, nil
		}
	}
	return nil, domain.ErrFavoriteNotFound
}

func (r *FavoriteRepository) Insert(_ context.Context, f *domain.Favorite) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := *f
	r.byOwner[f.OwnerID] = append(r.byOwner[f.OwnerID], &c)
	return nil
}

func (r *FavoriteRepository) Delete(_ context.Context, ownerID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	owned := r.byOwner[ownerID]
	for i, f := range owned {
		if f.ID == id {
			r.byOwner[ownerID] = append(owned[:i], owned[i+1:]...)
			return nil
		}
	}
	return domain.ErrFavoriteNotFound
}
