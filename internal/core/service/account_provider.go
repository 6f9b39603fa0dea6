package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/glamslot/booking/internal/core/domain"
	"github.com/glamslot/booking/internal/core/ports"
)

// AccountProvider authenticates against persisted accounts with bcrypt-hashed passwords.
type AccountProvider struct {
	repo ports.AccountRepository
	cost int
}

// NewAccountProvider returns an AccountProvider. cost <= 0 selects bcrypt.DefaultCost.
func NewAccountProvider(repo ports.AccountRepository, cost int) *AccountProvider {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &AccountProvider{repo: repo, cost: cost}
}

func (p *AccountProvider) Register(ctx context.Context, in ports.RegisterInput) (domain.Identity, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" || !in.Role.Valid() {
		return domain.Identity{}, domain.ErrInvalidRegistration
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), p.cost)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	created, err := p.repo.Create(ctx, &domain.Account{
		Name:         in.Name,
		Email:        normalizeEmail(in.Email),
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return domain.Identity{}, err
	}
	return created.Identity(), nil
}

// Login returns ErrInvalidCredentials for unknown emails as well as wrong passwords.
func (p *AccountProvider) Login(ctx context.Context, email, password string) (domain.Identity, error) {
	if email == "" || password == "" {
		return domain.Identity{}, domain.ErrInvalidCredentials
	}

	account, err := p.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return domain.Identity{}, domain.ErrInvalidCredentials
		}
		return domain.Identity{}, fmt.Errorf("find account: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return domain.Identity{}, domain.ErrInvalidCredentials
	}
	return account.Identity(), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
