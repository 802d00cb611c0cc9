package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"bean-market/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user with this email already exists")
)

// SeedBuyerID is the id of the demo buyer account the repository is
// preloaded with. The seeded order history belongs to this account.
var SeedBuyerID = uuid.MustParse("5f8a1c9e-3b7d-4e2a-9c6f-1d4b8e7a2c53")

// SeedSellerID is the id of the demo seller account.
var SeedSellerID = uuid.MustParse("a2e6d4b8-7c1f-4a3e-b5d9-8f2c6e1a4d07")

// UserRepository defines the interface for user account access.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*domain.User
}

// NewMemoryUserRepository creates an in-memory user repository seeded
// with one demo buyer and one demo seller. Both demo accounts use the
// password "espresso42".
func NewMemoryUserRepository() UserRepository {
	repo := &memoryUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("espresso42"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}

	now := time.Now()
	repo.users[SeedBuyerID] = &domain.User{
		ID:           SeedBuyerID,
		Name:         "Demo Buyer",
		Email:        "buyer@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleBuyer,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	repo.users[SeedSellerID] = &domain.User{
		ID:           SeedSellerID,
		Name:         "Sunshine Roasters",
		Email:        "seller@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleSeller,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return repo
}

// Create stores a new user. Emails are unique.
func (r *memoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return ErrUserAlreadyExists
		}
	}

	stored := *user
	r.users[user.ID] = &stored
	return nil
}

// FindByEmail looks a user up by email.
func (r *memoryUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			found := *user
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}

// FindByID looks a user up by id.
func (r *memoryUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[id]
	if !exists {
		return nil, ErrUserNotFound
	}
	found := *user
	return &found, nil
}
