package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bean-market/internal/domain"
	"bean-market/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrNotSeller = errors.New("acting user is not an authenticated seller")
)

// CatalogService exposes the browsable product catalog: filtered
// listings, product detail, reviews, and seller listings.
type CatalogService interface {
	ListProducts(ctx context.Context, criteria domain.FilterCriteria) ([]domain.Product, domain.FacetOptions, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	GetReviews(ctx context.Context, productID string) ([]domain.Review, error)
	ListSellerProducts(ctx context.Context, user *domain.User) ([]domain.Product, error)
	AddProduct(ctx context.Context, user *domain.User, product *domain.Product) (*domain.Product, error)
}

type catalogService struct {
	catalogRepo repository.CatalogRepository
}

// NewCatalogService creates a new instance of CatalogService
func NewCatalogService(catalogRepo repository.CatalogRepository) CatalogService {
	return &catalogService{catalogRepo: catalogRepo}
}

// ListProducts fetches the full catalog, applies the filter criteria,
// and derives the selectable facet options from the unfiltered list.
func (s *catalogService) ListProducts(ctx context.Context, criteria domain.FilterCriteria) ([]domain.Product, domain.FacetOptions, error) {
	products, err := s.catalogRepo.FetchAll(ctx)
	if err != nil {
		return nil, domain.FacetOptions{}, fmt.Errorf("failed to fetch catalog: %w", err)
	}

	filtered := FilterProducts(products, criteria)
	facets := FacetOptionsFrom(products)
	return filtered, facets, nil
}

// GetProduct fetches a single product by id.
func (s *catalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.catalogRepo.FetchByID(ctx, id)
	if err != nil {
		if err == repository.ErrProductNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	return product, nil
}

// GetReviews fetches the reviews for a product.
func (s *catalogService) GetReviews(ctx context.Context, productID string) ([]domain.Review, error) {
	reviews, err := s.catalogRepo.FetchReviews(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}
	return reviews, nil
}

// ListSellerProducts returns the acting seller's own listings.
func (s *catalogService) ListSellerProducts(ctx context.Context, user *domain.User) ([]domain.Product, error) {
	if user == nil || user.Role != domain.RoleSeller {
		return nil, ErrNotSeller
	}

	products, err := s.catalogRepo.FetchBySeller(ctx, user.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch seller products: %w", err)
	}
	return products, nil
}

// AddProduct adds a new listing under the acting seller's name. New
// listings start with no sales and no rating.
func (s *catalogService) AddProduct(ctx context.Context, user *domain.User, product *domain.Product) (*domain.Product, error) {
	if user == nil || user.Role != domain.RoleSeller {
		return nil, ErrNotSeller
	}

	product.ID = uuid.New().String()
	product.SoldQuantity = 0
	product.Rating = 0
	product.Seller = user.Name
	if product.RoastDate == "" {
		product.RoastDate = time.Now().Format("2006-01-02")
	}

	if err := s.catalogRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

// FilterProducts returns the subset of products matching the criteria,
// preserving the original relative order. All active predicates are
// combined with AND; membership within a facet set is OR. An empty
// result is valid.
func FilterProducts(products []domain.Product, criteria domain.FilterCriteria) []domain.Product {
	result := make([]domain.Product, 0, len(products))

	search := strings.ToLower(strings.TrimSpace(criteria.Search))

	for _, product := range products {
		if search != "" && !matchesSearch(product, search) {
			continue
		}
		if len(criteria.Origins) > 0 && !containsString(criteria.Origins, product.Origin) {
			continue
		}
		if len(criteria.RoastLevels) > 0 && !containsString(criteria.RoastLevels, product.RoastLevel) {
			continue
		}
		if criteria.MinPrice != nil && product.Price < *criteria.MinPrice {
			continue
		}
		if criteria.MaxPrice != nil && product.Price > *criteria.MaxPrice {
			continue
		}
		if criteria.OrganicOnly && !product.IsOrganic {
			continue
		}
		result = append(result, product)
	}

	return result
}

// FacetOptionsFrom derives the selectable origins and roast levels
// from the current product list: distinct values in order of first
// appearance. It is recomputed per call so the options follow catalog
// changes.
func FacetOptionsFrom(products []domain.Product) domain.FacetOptions {
	options := domain.FacetOptions{
		Origins:     []string{},
		RoastLevels: []string{},
	}

	seenOrigins := make(map[string]bool)
	seenRoasts := make(map[string]bool)

	for _, product := range products {
		if !seenOrigins[product.Origin] {
			seenOrigins[product.Origin] = true
			options.Origins = append(options.Origins, product.Origin)
		}
		if !seenRoasts[product.RoastLevel] {
			seenRoasts[product.RoastLevel] = true
			options.RoastLevels = append(options.RoastLevels, product.RoastLevel)
		}
	}

	return options
}

func matchesSearch(product domain.Product, loweredQuery string) bool {
	return strings.Contains(strings.ToLower(product.Name), loweredQuery) ||
		strings.Contains(strings.ToLower(product.Description), loweredQuery) ||
		strings.Contains(strings.ToLower(product.Origin), loweredQuery)
}

func containsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
