package repository

import (
	"context"
	"errors"
	"sync"

	"bean-market/internal/domain"
)

var (
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrRefreshTokenRevoked  = errors.New("refresh token has been revoked")
)

// RefreshTokenRepository defines the interface for refresh token storage.
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *domain.RefreshToken) error
	FindByToken(ctx context.Context, token string) (*domain.RefreshToken, error)
	Revoke(ctx context.Context, token string) error
}

type memoryRefreshTokenRepository struct {
	mu     sync.RWMutex
	tokens map[string]*domain.RefreshToken
}

// NewMemoryRefreshTokenRepository creates an in-memory refresh token store.
func NewMemoryRefreshTokenRepository() RefreshTokenRepository {
	return &memoryRefreshTokenRepository{
		tokens: make(map[string]*domain.RefreshToken),
	}
}

func (r *memoryRefreshTokenRepository) Create(ctx context.Context, token *domain.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *token
	r.tokens[token.Token] = &stored
	return nil
}

func (r *memoryRefreshTokenRepository) FindByToken(ctx context.Context, token string) (*domain.RefreshToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	refreshToken, exists := r.tokens[token]
	if !exists {
		return nil, ErrRefreshTokenNotFound
	}
	if refreshToken.Revoked {
		return nil, ErrRefreshTokenRevoked
	}
	found := *refreshToken
	return &found, nil
}

func (r *memoryRefreshTokenRepository) Revoke(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	refreshToken, exists := r.tokens[token]
	if !exists {
		return ErrRefreshTokenNotFound
	}
	refreshToken.Revoked = true
	return nil
}
