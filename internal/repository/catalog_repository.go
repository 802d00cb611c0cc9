package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"bean-market/internal/domain"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// CatalogRepository defines the interface for product catalog access.
// Implementations stand in for a remote catalog service, so every
// fetch takes a context and may observe latency.
type CatalogRepository interface {
	FetchAll(ctx context.Context) ([]domain.Product, error)
	FetchByID(ctx context.Context, id string) (*domain.Product, error)
	FetchReviews(ctx context.Context, productID string) ([]domain.Review, error)
	FetchBySeller(ctx context.Context, seller string) ([]domain.Product, error)
	Create(ctx context.Context, product *domain.Product) error
}

type memoryCatalogRepository struct {
	mu         sync.RWMutex
	products   []domain.Product
	reviews    []domain.Review
	fetchDelay time.Duration
}

// NewMemoryCatalogRepository creates a catalog backed by the seed data.
// fetchDelay simulates the round trip to an upstream catalog service;
// fetches respect context cancellation while waiting.
func NewMemoryCatalogRepository(fetchDelay time.Duration) CatalogRepository {
	return &memoryCatalogRepository{
		products:   seedProducts(),
		reviews:    seedReviews(),
		fetchDelay: fetchDelay,
	}
}

// simulateLatency blocks for the configured fetch delay or until the
// context is cancelled, whichever comes first.
func (r *memoryCatalogRepository) simulateLatency(ctx context.Context) error {
	if r.fetchDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(r.fetchDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// FetchAll returns the full product list in catalog order.
func (r *memoryCatalogRepository) FetchAll(ctx context.Context) ([]domain.Product, error) {
	if err := r.simulateLatency(ctx); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]domain.Product, len(r.products))
	copy(products, r.products)
	return products, nil
}

// FetchByID returns a single product or ErrProductNotFound.
func (r *memoryCatalogRepository) FetchByID(ctx context.Context, id string) (*domain.Product, error) {
	if err := r.simulateLatency(ctx); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.products {
		if r.products[i].ID == id {
			product := r.products[i]
			return &product, nil
		}
	}

	return nil, ErrProductNotFound
}

// FetchReviews returns the reviews for a product. A product with no
// reviews yields an empty slice, not an error.
func (r *memoryCatalogRepository) FetchReviews(ctx context.Context, productID string) ([]domain.Review, error) {
	if err := r.simulateLatency(ctx); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var reviews []domain.Review
	for _, review := range r.reviews {
		if review.ProductID == productID {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}

// FetchBySeller returns the products listed by the given seller name.
func (r *memoryCatalogRepository) FetchBySeller(ctx context.Context, seller string) ([]domain.Product, error) {
	if err := r.simulateLatency(ctx); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var products []domain.Product
	for _, product := range r.products {
		if product.Seller == seller {
			products = append(products, product)
		}
	}
	return products, nil
}

// Create appends a new product to the catalog.
func (r *memoryCatalogRepository) Create(ctx context.Context, product *domain.Product) error {
	if err := r.simulateLatency(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = append(r.products, *product)
	return nil
}
