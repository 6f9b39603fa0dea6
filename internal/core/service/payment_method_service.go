package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/glamslot/booking/internal/core/domain"
	"github.com/glamslot/booking/internal/core/ports"
	"github.com/glamslot/booking/internal/pkg/metrics"
)

// PaymentMethodService manages an owner's payment methods and keeps exactly one active
// method marked as default whenever at least one active method exists.
type PaymentMethodService struct {
	repo  ports.PaymentMethodRepository
	log   zerolog.Logger
	locks *ownerLocks
	now   func() time.Time
}

func NewPaymentMethodService(repo ports.PaymentMethodRepository, log zerolog.Logger) *PaymentMethodService {
	return &PaymentMethodService{
		repo:  repo,
		log:   log,
		locks: newOwnerLocks(),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *PaymentMethodService) List(ctx context.Context, ownerID string) ([]*domain.PaymentMethod, error) {
	return s.repo.List(ctx, ownerID)
}

// Add stores a new active method. It becomes the default when the owner has none.
func (s *PaymentMethodService) Add(ctx context.Context, ownerID string, in ports.AddPaymentMethodInput) (*domain.PaymentMethod, error) {
	if err := validatePaymentInput(in); err != nil {
		return nil, err
	}

	unlock := s.locks.lock(ownerID)
	defer unlock()

	existing, err := s.repo.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("add payment method: %w", err)
	}

	pm := &domain.PaymentMethod{
		ID:         uuid.NewString(),
		OwnerID:    ownerID,
		Kind:       in.Kind,
		Brand:      in.Brand,
		Last4:      in.Last4,
		HolderName: in.HolderName,
		ExpMonth:   in.ExpMonth,
		ExpYear:    in.ExpYear,
		IsActive:   true,
		IsDefault:  activeDefault(existing) == nil,
		CreatedAt:  s.now(),
	}
	if err := s.repo.Insert(ctx, pm); err != nil {
		return nil, fmt.Errorf("add payment method: %w", err)
	}
	if pm.IsDefault {
		metrics.PaymentDefaultChangesTotal.WithLabelValues("first_added").Inc()
	}

	s.log.Info().Str("owner_id", ownerID).Str("payment_method_id", pm.ID).Bool("default", pm.IsDefault).Msg("payment method added")
	return pm, nil
}

// Remove deletes a method. Removing the default promotes the oldest active method.
func (s *PaymentMethodService) Remove(ctx context.Context, ownerID, id string) error {
	unlock := s.locks.lock(ownerID)
	defer unlock()

	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return fmt.Errorf("remove payment method: %w", err)
	}
	return s.ensureDefault(ctx, ownerID)
}

// SetDefault makes id the only default method of the owner.
func (s *PaymentMethodService) SetDefault(ctx context.Context, ownerID, id string) error {
	unlock := s.locks.lock(ownerID)
	defer unlock()

	pm, err := s.repo.Get(ctx, ownerID, id)
	if err != nil {
		return fmt.Errorf("set default payment method: %w", err)
	}
	if !pm.IsActive {
		return fmt.Errorf("set default payment method: %w", domain.ErrPaymentMethodInactive)
	}
	if pm.IsDefault {
		return nil
	}
	if err := s.repo.SetDefault(ctx, ownerID, id); err != nil {
		return fmt.Errorf("set default payment method: %w", err)
	}

	metrics.PaymentDefaultChangesTotal.WithLabelValues("explicit").Inc()
	s.log.Info().Str("owner_id", ownerID).Str("payment_method_id", id).Msg("default payment method changed")
	return nil
}

// ToggleActive flips IsActive. A deactivated default loses the flag and the oldest
// remaining active method is promoted.
func (s *PaymentMethodService) ToggleActive(ctx context.Context, ownerID, id string) (*domain.PaymentMethod, error) {
	unlock := s.locks.lock(ownerID)
	defer unlock()

	pm, err := s.repo.Get(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("toggle payment method: %w", err)
	}

	pm.IsActive = !pm.IsActive
	if !pm.IsActive && pm.IsDefault {
		pm.IsDefault = false
		metrics.PaymentDefaultChangesTotal.WithLabelValues("cleared").Inc()
	}
	if err := s.repo.Update(ctx, pm); err != nil {
		return nil, fmt.Errorf("toggle payment method: %w", err)
	}
	if err := s.ensureDefault(ctx, ownerID); err != nil {
		return nil, err
	}

	return s.repo.Get(ctx, ownerID, id)
}

// ensureDefault promotes the oldest active method when no active default exists.
func (s *PaymentMethodService) ensureDefault(ctx context.Context, ownerID string) error {
	methods, err := s.repo.List(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("ensure default payment method: %w", err)
	}
	if activeDefault(methods) != nil {
		return nil
	}
	for _, pm := range methods {
		if !pm.IsActive {
			continue
		}
		if err := s.repo.SetDefault(ctx, ownerID, pm.ID); err != nil {
			return fmt.Errorf("ensure default payment method: %w", err)
		}
		metrics.PaymentDefaultChangesTotal.WithLabelValues("promoted").Inc()
		s.log.Debug().Str("owner_id", ownerID).Str("payment_method_id", pm.ID).Msg("payment method promoted to default")
		return nil
	}
	return nil
}

func activeDefault(methods []*domain.PaymentMethod) *domain.PaymentMethod {
	for _, pm := range methods {
		if pm.IsActive && pm.IsDefault {
			return pm
		}
	}
	return nil
}

func validatePaymentInput(in ports.AddPaymentMethodInput) error {
	if in.HolderName == "" {
		return fmt.Errorf("%w: holder name is required", domain.ErrInvalidPaymentMethod)
	}
	switch in.Kind {
	case domain.PaymentCard:
		if len(in.Last4) != 4 {
			return fmt.Errorf("%w: card needs the last 4 digits", domain.ErrInvalidPaymentMethod)
		}
		if in.ExpMonth < 1 || in.ExpMonth > 12 {
			return fmt.Errorf("%w: expiry month out of range", domain.ErrInvalidPaymentMethod)
		}
	case domain.PaymentPayPal:
	default:
		return fmt.Errorf("%w: unknown kind %q", domain.ErrInvalidPaymentMethod, in.Kind)
	}
	return nil
}
