package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/glamslot/booking/internal/core/domain"
	"github.com/glamslot/booking/internal/core/ports"
	"github.com/glamslot/booking/internal/pkg/metrics"
)

// FavoriteService manages an owner's bookmarked salons. A salon is stored at most once.
type FavoriteService struct {
	repo  ports.FavoriteRepository
	log   zerolog.Logger
	locks *ownerLocks
}

func NewFavoriteService(repo ports.FavoriteRepository, log zerolog.Logger) *FavoriteService {
	return &FavoriteService{repo: repo, log: log, locks: newOwnerLocks()}
}

func (s *FavoriteService) List(ctx context.Context, ownerID string) ([]*domain.Favorite, error) {
	return s.repo.List(ctx, ownerID)
}

// Add bookmarks a salon. Adding an already bookmarked salon returns the existing entry.
func (s *FavoriteService) Add(ctx context.Context, ownerID string, in ports.AddFavoriteInput) (*domain.Favorite, error) {
	unlock := s.locks.lock(ownerID)
	defer unlock()

	return s.add(ctx, ownerID, in)
}

func (s *FavoriteService) Remove(ctx context.Context, ownerID, id string) error {
	unlock := s.locks.lock(ownerID)
	defer unlock()

	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	metrics.FavoritesToggledTotal.WithLabelValues("removed").Inc()
	return nil
}

// Toggle adds the salon when absent and removes it when present. It reports whether
// the salon is a favorite afterwards.
func (s *FavoriteService) Toggle(ctx context.Context, ownerID string, in ports.AddFavoriteInput) (bool, error) {
	unlock := s.locks.lock(ownerID)
	defer unlock()

	existing, err := s.repo.FindBySalon(ctx, ownerID, in.SalonID)
	switch {
	case err == nil:
		if err := s.repo.Delete(ctx, ownerID, existing.ID); err != nil {
			return true, fmt.Errorf("toggle favorite: %w", err)
		}
		metrics.FavoritesToggledTotal.WithLabelValues("removed").Inc()
		return false, nil
	case errors.Is(err, domain.ErrFavoriteNotFound):
		if _, err := s.add(ctx, ownerID, in); err != nil {
			return false, err
		}
		return true, nil
	default:
		return false, fmt.Errorf("toggle favorite: %w", err)
	}
}

func (s *FavoriteService) add(ctx context.Context, ownerID string, in ports.AddFavoriteInput) (*domain.Favorite, error) {
	if in.SalonID == "" || in.SalonName == "" {
		return nil, fmt.Errorf("add favorite: %w", domain.ErrInvalidFavorite)
	}

	existing, err := s.repo.FindBySalon(ctx, ownerID, in.SalonID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrFavoriteNotFound) {
		return nil, fmt.Errorf("add favorite: %w", err)
	}

	f := &domain.Favorite{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		SalonID:   in.SalonID,
		SalonName: in.SalonName,
		Address:   in.Address,
		Rating:    in.Rating,
		ImageURL:  in.ImageURL,
		AddedAt:   time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, f); err != nil {
		return nil, fmt.Errorf("add favorite: %w", err)
	}
	metrics.FavoritesToggledTotal.WithLabelValues("added").Inc()
	s.log.Info().Str("owner_id", ownerID).Str("salon_id", in.SalonID).Msg("favorite added")
	return f, nil
}
