package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/glamslot/booking/internal/core/domain"
	"github.com/glamslot/booking/internal/core/ports"
)

// DefaultMockLatency is the simulated round trip of the demo backend.
const DefaultMockLatency = time.Second

// MockProvider is the demo identity backend. It accepts any non-empty credentials and
// derives the role from the email: addresses containing "salon" (case-sensitive) belong
// to salon owners, everything else to clients.
type MockProvider struct {
	latency time.Duration
}

// NewMockProvider returns a MockProvider. A negative latency disables the delay.
func NewMockProvider(latency time.Duration) *MockProvider {
	if latency < 0 {
		latency = 0
	}
	return &MockProvider{latency: latency}
}

// Login waits out the simulated latency, then validates and synthesizes an identity.
// The wait is not cancellable.
func (p *MockProvider) Login(_ context.Context, email, password string) (domain.Identity, error) {
	p.wait()

	if email == "" || password == "" {
		return domain.Identity{}, domain.ErrInvalidCredentials
	}

	return domain.Identity{
		ID:    uuid.NewString(),
		Name:  displayName(email),
		Email: email,
		Role:  roleForEmail(email),
	}, nil
}

// Register waits out the simulated latency and creates an identity with the supplied role.
func (p *MockProvider) Register(_ context.Context, in ports.RegisterInput) (domain.Identity, error) {
	p.wait()

	if in.Name == "" || in.Email == "" || in.Password == "" {
		return domain.Identity{}, domain.ErrInvalidRegistration
	}
	if !in.Role.Valid() {
		return domain.Identity{}, domain.ErrInvalidRegistration
	}

	return domain.Identity{
		ID:    uuid.NewString(),
		Name:  in.Name,
		Email: in.Email,
		Role:  in.Role,
	}, nil
}

func (p *MockProvider) wait() {
	if p.latency > 0 {
		time.Sleep(p.latency)
	}
}

func roleForEmail(email string) domain.Role {
	if strings.Contains(email, "salon") {
		return domain.RoleSalon
	}
	return domain.RoleClient
}

// displayName is the local part of an email address.
func displayName(email string) string {
	name, _, _ := strings.Cut(email, "@")
	return name
}
