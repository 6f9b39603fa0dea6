package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/glamslot/booking/internal/core/domain"
	"github.com/glamslot/booking/internal/core/ports"
	"github.com/glamslot/booking/internal/pkg/metrics"
)

// demoProfiles are the fabricated identities used by DemoLogin.
var demoProfiles = map[domain.Role]domain.Identity{
	domain.RoleClient: {
		Name:   "Sarah Johnson",
		Email:  "sarah.demo@example.com",
		Role:   domain.RoleClient,
		Avatar: "/avatars/demo-client.jpg",
	},
	domain.RoleSalon: {
		Name:   "Glamour Studio",
		Email:  "owner.demo@salon.com",
		Role:   domain.RoleSalon,
		Avatar: "/avatars/demo-salon.jpg",
	},
}

// IdentityService implements login, registration, demo login and logout on top of a
// single device session. It is the only writer of the session store.
type IdentityService struct {
	store    ports.SessionStore
	provider ports.IdentityProvider
	notifier ports.Notifier
	log      zerolog.Logger
}

func NewIdentityService(
	store ports.SessionStore,
	provider ports.IdentityProvider,
	notifier ports.Notifier,
	log zerolog.Logger,
) *IdentityService {
	if notifier == nil {
		notifier = ports.NotifierFunc(func(domain.Notification) {})
	}
	return &IdentityService{store: store, provider: provider, notifier: notifier, log: log}
}

// Login authenticates through the provider and makes the result the current identity.
func (s *IdentityService) Login(ctx context.Context, email, password string) (domain.Identity, error) {
	id, err := s.provider.Login(ctx, email, password)
	if err == nil {
		err = s.store.SetCurrent(ctx, id)
	}
	if err != nil {
		s.fail("login", "Login failed", err)
		return domain.Identity{}, fmt.Errorf("login: %w", err)
	}

	s.succeed("login", id)
	s.notifier.Notify(domain.Notification{
		Kind:        domain.NotifySuccess,
		Title:       "Welcome back!",
		Description: "Signed in as " + id.Name + ".",
	})
	return id, nil
}

// Register creates an account with the caller-supplied role and signs it in.
func (s *IdentityService) Register(ctx context.Context, in ports.RegisterInput) (domain.Identity, error) {
	id, err := s.provider.Register(ctx, in)
	if err == nil {
		err = s.store.SetCurrent(ctx, id)
	}
	if err != nil {
		s.fail("register", "Registration failed", err)
		return domain.Identity{}, fmt.Errorf("register: %w", err)
	}

	s.succeed("register", id)
	s.notifier.Notify(domain.Notification{
		Kind:        domain.NotifySuccess,
		Title:       "Account created",
		Description: "Welcome aboard, " + id.Name + "!",
	})
	return id, nil
}

// DemoLogin signs in a fabricated identity for role without any credentials.
func (s *IdentityService) DemoLogin(ctx context.Context, role domain.Role) (domain.Identity, error) {
	profile, ok := demoProfiles[role]
	if !ok {
		return domain.Identity{}, fmt.Errorf("demo login: %w: %q", domain.ErrInvalidRole, role)
	}

	id := profile
	id.ID = "demo-" + string(role) + "-" + uuid.NewString()[:8]

	if err := s.store.SetCurrent(ctx, id); err != nil {
		s.fail("demo_login", "Demo login failed", err)
		return domain.Identity{}, fmt.Errorf("demo login: %w", err)
	}

	s.succeed("demo_login", id)
	s.notifier.Notify(domain.Notification{
		Kind:        domain.NotifyInfo,
		Title:       "Demo mode",
		Description: "You are exploring as a demo " + string(role) + ".",
	})
	return id, nil
}

// Logout clears the current identity.
func (s *IdentityService) Logout(ctx context.Context) error {
	if err := s.store.ClearCurrent(ctx); err != nil {
		s.fail("logout", "Logout failed", err)
		return fmt.Errorf("logout: %w", err)
	}

	metrics.IdentityOperationsTotal.WithLabelValues("logout", "success").Inc()
	s.log.Info().Msg("session cleared")
	s.notifier.Notify(domain.Notification{
		Kind:        domain.NotifyInfo,
		Title:       "Signed out",
		Description: "You have been logged out.",
	})
	return nil
}

func (s *IdentityService) succeed(op string, id domain.Identity) {
	metrics.IdentityOperationsTotal.WithLabelValues(op, "success").Inc()
	s.log.Info().
		Str("operation", op).
		Str("identity_id", id.ID).
		Str("role", string(id.Role)).
		Msg("session established")
}

func (s *IdentityService) fail(op, title string, err error) {
	metrics.IdentityOperationsTotal.WithLabelValues(op, "failure").Inc()
	s.log.Warn().Err(err).Str("operation", op).Msg("identity operation failed")
	s.notifier.Notify(domain.Notification{
		Kind:        domain.NotifyError,
		Title:       title,
		Description: failureDescription(err),
	})
}

func failureDescription(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "Please enter a valid email and password."
	case errors.Is(err, domain.ErrInvalidRegistration):
		return "Please fill in your name, email and password."
	case errors.Is(err, domain.ErrAccountExists):
		return "An account with this email already exists."
	default:
		return "Something went wrong. Please try again."
	}
}
