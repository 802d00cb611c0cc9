package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"bean-market/internal/domain"
	"bean-market/internal/repository"

	"go.uber.org/zap"
)

const cartKeyPrefix = "cart:"

var (
	ErrNotBuyer        = errors.New("acting user is not an authenticated buyer")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// CartService is the authoritative owner of the active buyer's cart.
// Every operation takes the acting user explicitly and refuses with
// ErrNotBuyer unless that user is an authenticated buyer; callers
// gate access too, but the engine never trusts them.
type CartService interface {
	Get(ctx context.Context, user *domain.User) (*domain.Cart, error)
	Add(ctx context.Context, user *domain.User, productID string, quantity int) (*domain.Cart, error)
	UpdateQuantity(ctx context.Context, user *domain.User, productID string, quantity int) (*domain.Cart, error)
	Remove(ctx context.Context, user *domain.User, productID string) (*domain.Cart, error)
	Clear(ctx context.Context, user *domain.User) error
}

type cartService struct {
	catalogRepo repository.CatalogRepository
	store       repository.CartStore
	logger      *zap.Logger

	// mu serializes mutations so they apply in the order they were
	// issued; persistence writes are synchronous per mutation.
	mu sync.Mutex
}

// NewCartService creates a new instance of CartService
func NewCartService(catalogRepo repository.CatalogRepository, store repository.CartStore, logger *zap.Logger) CartService {
	return &cartService{
		catalogRepo: catalogRepo,
		store:       store,
		logger:      logger,
	}
}

func cartKey(user *domain.User) string {
	return cartKeyPrefix + user.ID.String()
}

// Get returns the buyer's cart, restoring it from the durable store.
func (s *cartService) Get(ctx context.Context, user *domain.User) (*domain.Cart, error) {
	if !user.IsBuyer() {
		return nil, ErrNotBuyer
	}
	return s.load(ctx, user)
}

// Add puts quantity units of a product into the cart. If a line for
// the product already exists its quantity is incremented; otherwise a
// new line is appended.
func (s *cartService) Add(ctx context.Context, user *domain.User, productID string, quantity int) (*domain.Cart, error) {
	if !user.IsBuyer() {
		return nil, ErrNotBuyer
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.catalogRepo.FetchByID(ctx, productID)
	if err != nil {
		if err == repository.ErrProductNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch product for cart: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.load(ctx, user)
	if err != nil {
		return nil, err
	}

	if i := cart.FindLine(productID); i >= 0 {
		cart.Lines[i].Quantity += quantity
	} else {
		cart.Lines = append(cart.Lines, domain.CartLine{Product: *product, Quantity: quantity})
	}

	if err := s.save(ctx, user, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateQuantity overwrites a line's quantity. A quantity below 1
// behaves as removal; updating a line that does not exist is a no-op.
func (s *cartService) UpdateQuantity(ctx context.Context, user *domain.User, productID string, quantity int) (*domain.Cart, error) {
	if !user.IsBuyer() {
		return nil, ErrNotBuyer
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.load(ctx, user)
	if err != nil {
		return nil, err
	}

	i := cart.FindLine(productID)
	if i < 0 {
		return cart, nil
	}

	if quantity < 1 {
		cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
	} else {
		cart.Lines[i].Quantity = quantity
	}

	if err := s.save(ctx, user, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Remove deletes a line from the cart; removing an absent line is a
// no-op.
func (s *cartService) Remove(ctx context.Context, user *domain.User, productID string) (*domain.Cart, error) {
	if !user.IsBuyer() {
		return nil, ErrNotBuyer
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.load(ctx, user)
	if err != nil {
		return nil, err
	}

	i := cart.FindLine(productID)
	if i < 0 {
		return cart, nil
	}

	cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)

	if err := s.save(ctx, user, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear empties the cart and deletes its persisted state.
func (s *cartService) Clear(ctx context.Context, user *domain.User) error {
	if !user.IsBuyer() {
		return ErrNotBuyer
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Remove(ctx, cartKey(user)); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// load restores the cart from the durable store. A missing key means
// an empty cart. Malformed stored data is discarded and logged rather
// than failing the caller.
func (s *cartService) load(ctx context.Context, user *domain.User) (*domain.Cart, error) {
	raw, found, err := s.store.Get(ctx, cartKey(user))
	if err != nil {
		return nil, err
	}
	if !found {
		return &domain.Cart{}, nil
	}

	var lines []domain.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		s.logger.Warn("Discarding corrupt cart snapshot",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return &domain.Cart{}, nil
	}

	// Drop lines that violate the quantity invariant.
	cart := &domain.Cart{}
	for _, line := range lines {
		if line.Quantity >= 1 && line.Product.ID != "" {
			cart.Lines = append(cart.Lines, line)
		}
	}
	return cart, nil
}

// save synchronously serializes the full line set to the store.
func (s *cartService) save(ctx context.Context, user *domain.User, cart *domain.Cart) error {
	if len(cart.Lines) == 0 {
		if err := s.store.Remove(ctx, cartKey(user)); err != nil {
			return fmt.Errorf("failed to persist empty cart: %w", err)
		}
		return nil
	}

	raw, err := json.Marshal(cart.Lines)
	if err != nil {
		return fmt.Errorf("failed to serialize cart: %w", err)
	}
	if err := s.store.Set(ctx, cartKey(user), string(raw)); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}
