package service

import (
	"context"
	"math"
	"testing"

	"bean-market/internal/domain"
	"bean-market/internal/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// mockCatalogRepository serves a fixed product list without latency.
type mockCatalogRepository struct {
	products map[string]domain.Product
}

func newMockCatalogRepository(products ...domain.Product) *mockCatalogRepository {
	repo := &mockCatalogRepository{products: make(map[string]domain.Product)}
	for _, product := range products {
		repo.products[product.ID] = product
	}
	return repo
}

func (m *mockCatalogRepository) FetchAll(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	for _, product := range m.products {
		products = append(products, product)
	}
	return products, nil
}

func (m *mockCatalogRepository) FetchByID(ctx context.Context, id string) (*domain.Product, error) {
	product, exists := m.products[id]
	if !exists {
		return nil, repository.ErrProductNotFound
	}
	return &product, nil
}

func (m *mockCatalogRepository) FetchReviews(ctx context.Context, productID string) ([]domain.Review, error) {
	return nil, nil
}

func (m *mockCatalogRepository) FetchBySeller(ctx context.Context, seller string) ([]domain.Product, error) {
	return nil, nil
}

func (m *mockCatalogRepository) Create(ctx context.Context, product *domain.Product) error {
	m.products[product.ID] = *product
	return nil
}

func testBuyer() *domain.User {
	return &domain.User{ID: uuid.New(), Name: "Test Buyer", Email: "buyer@test.com", Role: domain.RoleBuyer}
}

func testSeller() *domain.User {
	return &domain.User{ID: uuid.New(), Name: "Test Seller", Email: "seller@test.com", Role: domain.RoleSeller}
}

// newTestCartService builds a cart service over miniredis and the
// given catalog. The returned cleanup closes the redis resources.
func newTestCartService(t *testing.T, catalog repository.CatalogRepository) (CartService, repository.CartStore, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := repository.NewRedisCartStore(client)
	logger, _ := zap.NewDevelopment()

	cleanup := func() {
		client.Close()
		mr.Close()
	}
	return NewCartService(catalog, store, logger), store, cleanup
}

// Feature: coffee-marketplace, Property 1: Adding the same product twice is additive
func TestProperty_AddingSameProductIsAdditive(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("final line quantity equals the sum of added quantities", prop.ForAll(
		func(q1 int, q2 int) bool {
			catalog := newMockCatalogRepository(domain.Product{ID: "p1", Name: "Test Coffee", Price: 9.99})
			cartService, _, cleanup := newTestCartService(t, catalog)
			defer cleanup()

			buyer := testBuyer()
			ctx := context.Background()

			if _, err := cartService.Add(ctx, buyer, "p1", q1); err != nil {
				return false
			}
			cart, err := cartService.Add(ctx, buyer, "p1", q2)
			if err != nil {
				return false
			}

			return len(cart.Lines) == 1 && cart.Lines[0].Quantity == q1+q2
		},
		gen.IntRange(1, 50),
		gen.IntRange(1, 50),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// Feature: coffee-marketplace, Property 2: Updating a quantity to zero removes the line
func TestProperty_UpdateToZeroEqualsRemove(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("updateQuantity(id, 0) leaves the same cart as removeItem(id)", prop.ForAll(
		func(quantity int) bool {
			catalog := newMockCatalogRepository(
				domain.Product{ID: "p1", Name: "Kept Coffee", Price: 8.50},
				domain.Product{ID: "p2", Name: "Dropped Coffee", Price: 11.25},
			)
			buyer := testBuyer()
			ctx := context.Background()

			// Run the same scenario through both operations
			updated, _, cleanupA := newTestCartService(t, catalog)
			defer cleanupA()
			removed, _, cleanupB := newTestCartService(t, catalog)
			defer cleanupB()

			for _, cartService := range []CartService{updated, removed} {
				if _, err := cartService.Add(ctx, buyer, "p1", 1); err != nil {
					return false
				}
				if _, err := cartService.Add(ctx, buyer, "p2", quantity); err != nil {
					return false
				}
			}

			cartA, errA := updated.UpdateQuantity(ctx, buyer, "p2", 0)
			cartB, errB := removed.Remove(ctx, buyer, "p2")
			if errA != nil || errB != nil {
				return false
			}

			if len(cartA.Lines) != 1 || len(cartB.Lines) != 1 {
				return false
			}
			return cartA.Lines[0].Product.ID == "p1" && cartB.Lines[0].Product.ID == "p1"
		},
		gen.IntRange(1, 20),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// Feature: coffee-marketplace, Property 3: Adding then removing a line restores the prior total
func TestProperty_AddRemoveRoundTripRestoresTotal(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("totalPrice returns to its prior value exactly", prop.ForAll(
		func(baseQuantity int, extraQuantity int, extraPrice float64) bool {
			catalog := newMockCatalogRepository(
				domain.Product{ID: "p1", Name: "Base Coffee", Price: 12.34},
				domain.Product{ID: "p2", Name: "Extra Coffee", Price: extraPrice},
			)
			cartService, _, cleanup := newTestCartService(t, catalog)
			defer cleanup()

			buyer := testBuyer()
			ctx := context.Background()

			before, err := cartService.Add(ctx, buyer, "p1", baseQuantity)
			if err != nil {
				return false
			}
			priorTotal := before.Subtotal()

			if _, err := cartService.Add(ctx, buyer, "p2", extraQuantity); err != nil {
				return false
			}
			after, err := cartService.Remove(ctx, buyer, "p2")
			if err != nil {
				return false
			}

			return after.Subtotal() == priorTotal
		},
		gen.IntRange(1, 10),
		gen.IntRange(1, 10),
		gen.Float64Range(0.01, 99.99),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// Feature: coffee-marketplace, Property 4: Subtotal always equals the sum over lines
func TestProperty_SubtotalMatchesLineSum(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("totalPrice is within floating-point tolerance of the line sum", prop.ForAll(
		func(quantities []int) bool {
			products := []domain.Product{
				{ID: "p1", Price: 14.99}, {ID: "p2", Price: 12.99}, {ID: "p3", Price: 13.49},
			}
			catalog := newMockCatalogRepository(products...)
			cartService, _, cleanup := newTestCartService(t, catalog)
			defer cleanup()

			buyer := testBuyer()
			ctx := context.Background()

			var want float64
			var cart *domain.Cart
			var err error
			for i, quantity := range quantities {
				if quantity < 1 {
					continue
				}
				product := products[i%len(products)]
				cart, err = cartService.Add(ctx, buyer, product.ID, quantity)
				if err != nil {
					return false
				}
				want += product.Price * float64(quantity)
			}
			if cart == nil {
				return true
			}

			return math.Abs(cart.Subtotal()-want) < 1e-9
		},
		gen.SliceOf(gen.IntRange(1, 9)),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestCartRejectsNonBuyerIdentity(t *testing.T) {
	catalog := newMockCatalogRepository(domain.Product{ID: "p1", Name: "Coffee", Price: 10.00})
	cartService, _, cleanup := newTestCartService(t, catalog)
	defer cleanup()

	ctx := context.Background()
	seller := testSeller()

	if _, err := cartService.Add(ctx, seller, "p1", 1); err != ErrNotBuyer {
		t.Fatalf("Add by seller: expected ErrNotBuyer, got %v", err)
	}
	if _, err := cartService.UpdateQuantity(ctx, seller, "p1", 2); err != ErrNotBuyer {
		t.Fatalf("UpdateQuantity by seller: expected ErrNotBuyer, got %v", err)
	}
	if err := cartService.Clear(ctx, seller); err != ErrNotBuyer {
		t.Fatalf("Clear by seller: expected ErrNotBuyer, got %v", err)
	}

	// A buyer sees no trace of the rejected mutations
	buyer := testBuyer()
	cart, err := cartService.Get(ctx, buyer)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(cart.Lines) != 0 {
		t.Fatalf("expected empty cart after rejected mutations, got %d lines", len(cart.Lines))
	}
}

func TestCartAddRejectsInvalidQuantity(t *testing.T) {
	catalog := newMockCatalogRepository(domain.Product{ID: "p1", Price: 10.00})
	cartService, _, cleanup := newTestCartService(t, catalog)
	defer cleanup()

	buyer := testBuyer()
	for _, quantity := range []int{0, -1, -99} {
		if _, err := cartService.Add(context.Background(), buyer, "p1", quantity); err != ErrInvalidQuantity {
			t.Fatalf("quantity %d: expected ErrInvalidQuantity, got %v", quantity, err)
		}
	}
}

func TestCartAddUnknownProduct(t *testing.T) {
	catalog := newMockCatalogRepository()
	cartService, _, cleanup := newTestCartService(t, catalog)
	defer cleanup()

	_, err := cartService.Add(context.Background(), testBuyer(), "missing", 1)
	if err != repository.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestCartUpdateMissingLineIsNoOp(t *testing.T) {
	catalog := newMockCatalogRepository(domain.Product{ID: "p1", Price: 10.00})
	cartService, _, cleanup := newTestCartService(t, catalog)
	defer cleanup()

	buyer := testBuyer()
	ctx := context.Background()

	if _, err := cartService.Add(ctx, buyer, "p1", 2); err != nil {
		t.Fatalf("Add: %v", err)
	}

	cart, err := cartService.UpdateQuantity(ctx, buyer, "missing", 5)
	if err != nil {
		t.Fatalf("UpdateQuantity: %v", err)
	}
	if len(cart.Lines) != 1 || cart.Lines[0].Quantity != 2 {
		t.Fatalf("expected cart unchanged, got %+v", cart.Lines)
	}
}

func TestCartShoppingScenario(t *testing.T) {
	catalog := newMockCatalogRepository(
		domain.Product{ID: "p1", Name: "House Blend", Price: 10.00},
		domain.Product{ID: "p2", Name: "Single Origin", Price: 15.00},
	)
	cartService, _, cleanup := newTestCartService(t, catalog)
	defer cleanup()

	buyer := testBuyer()
	ctx := context.Background()

	if _, err := cartService.Add(ctx, buyer, "p1", 2); err != nil {
		t.Fatalf("Add p1: %v", err)
	}
	cart, err := cartService.Add(ctx, buyer, "p2", 1)
	if err != nil {
		t.Fatalf("Add p2: %v", err)
	}

	if cart.TotalItems() != 3 {
		t.Fatalf("totalItems = %d, want 3", cart.TotalItems())
	}
	if got := cart.Subtotal(); got != 35.00 {
		t.Fatalf("totalPrice = %.2f, want 35.00", got)
	}

	cart, err = cartService.Remove(ctx, buyer, "p2")
	if err != nil {
		t.Fatalf("Remove p2: %v", err)
	}
	if got := cart.Subtotal(); got != 20.00 {
		t.Fatalf("totalPrice after remove = %.2f, want 20.00", got)
	}

	if err := cartService.Clear(ctx, buyer); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	cart, err = cartService.Get(ctx, buyer)
	if err != nil {
		t.Fatalf("Get after clear: %v", err)
	}
	if cart.TotalItems() != 0 {
		t.Fatalf("totalItems after clear = %d, want 0", cart.TotalItems())
	}
}

func TestCartPersistsAcrossEngineRestarts(t *testing.T) {
	catalog := newMockCatalogRepository(domain.Product{ID: "p1", Name: "Coffee", Price: 10.00})

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := repository.NewRedisCartStore(client)
	logger, _ := zap.NewDevelopment()

	buyer := testBuyer()
	ctx := context.Background()

	first := NewCartService(catalog, store, logger)
	if _, err := first.Add(ctx, buyer, "p1", 3); err != nil {
		t.Fatalf("Add: %v", err)
	}

	// A fresh engine over the same store restores the cart
	second := NewCartService(catalog, store, logger)
	cart, err := second.Get(ctx, buyer)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(cart.Lines) != 1 || cart.Lines[0].Quantity != 3 {
		t.Fatalf("restored cart = %+v, want one line of quantity 3", cart.Lines)
	}
}

func TestCartRecoversFromCorruptSnapshot(t *testing.T) {
	catalog := newMockCatalogRepository(domain.Product{ID: "p1", Name: "Coffee", Price: 10.00})
	cartService, store, cleanup := newTestCartService(t, catalog)
	defer cleanup()

	buyer := testBuyer()
	ctx := context.Background()

	// Corrupt the persisted snapshot behind the engine's back
	key := "cart:" + buyer.ID.String()
	if err := store.Set(ctx, key, "{not valid json"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	cart, err := cartService.Get(ctx, buyer)
	if err != nil {
		t.Fatalf("expected corrupt snapshot to be recovered, got error: %v", err)
	}
	if len(cart.Lines) != 0 {
		t.Fatalf("expected empty cart after corruption, got %d lines", len(cart.Lines))
	}

	// The engine is fully usable afterwards
	cart, err = cartService.Add(ctx, buyer, "p1", 1)
	if err != nil {
		t.Fatalf("Add after recovery: %v", err)
	}
	if len(cart.Lines) != 1 {
		t.Fatalf("expected one line after recovery, got %d", len(cart.Lines))
	}
}

func TestCartDropsInvalidStoredLines(t *testing.T) {
	catalog := newMockCatalogRepository(domain.Product{ID: "p1", Name: "Coffee", Price: 10.00})
	cartService, store, cleanup := newTestCartService(t, catalog)
	defer cleanup()

	buyer := testBuyer()
	ctx := context.Background()

	// A zero-quantity line violates the invariant and must be dropped on load
	key := "cart:" + buyer.ID.String()
	snapshot := `[{"product":{"id":"p1","price":10},"quantity":0},{"product":{"id":"p1","price":10},"quantity":2}]`
	if err := store.Set(ctx, key, snapshot); err != nil {
		t.Fatalf("Set: %v", err)
	}

	cart, err := cartService.Get(ctx, buyer)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(cart.Lines) != 1 || cart.Lines[0].Quantity != 2 {
		t.Fatalf("expected only the valid line to survive, got %+v", cart.Lines)
	}
}
