package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"bean-market/internal/domain"
)

// OrderRepository defines the interface for order submission and
// history access.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	ListByBuyer(ctx context.Context, buyerID string) ([]domain.Order, error)
	ListSellerSummaries(ctx context.Context) ([]domain.OrderSummary, error)
}

type memoryOrderRepository struct {
	mu        sync.RWMutex
	orders    []domain.Order
	summaries []domain.OrderSummary
	nextID    int
}

// NewMemoryOrderRepository creates an in-memory order repository
// preloaded with the demo order history.
func NewMemoryOrderRepository() OrderRepository {
	return &memoryOrderRepository{
		orders:    seedOrders(),
		summaries: seedSellerSummaries(),
		nextID:    123459,
	}
}

// Create stores a new order and assigns it a sequential order number.
func (r *memoryOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = fmt.Sprintf("ORD%d", r.nextID)
	r.nextID++
	r.orders = append(r.orders, *order)
	return nil
}

// ListByBuyer returns the buyer's orders, most recent first.
func (r *memoryOrderRepository) ListByBuyer(ctx context.Context, buyerID string) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var orders []domain.Order
	for _, order := range r.orders {
		if order.BuyerID == buyerID {
			orders = append(orders, order)
		}
	}

	for i, j := 0, len(orders)-1; i < j; i, j = i+1, j-1 {
		orders[i], orders[j] = orders[j], orders[i]
	}
	return orders, nil
}

// ListSellerSummaries returns the seller-facing order summaries.
func (r *memoryOrderRepository) ListSellerSummaries(ctx context.Context) ([]domain.OrderSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summaries := make([]domain.OrderSummary, len(r.summaries))
	copy(summaries, r.summaries)
	return summaries, nil
}

func mustParseTime(value string) time.Time {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return parsed
}

// seedOrders returns the demo buyer order history. The orders belong
// to the seeded demo buyer account.
func seedOrders() []domain.Order {
	return []domain.Order{
		{
			ID:      "ORD123456",
			BuyerID: SeedBuyerID.String(),
			Date:    mustParseTime("2024-05-01T10:23:45Z"),
			Status:  domain.OrderStatusDelivered,
			Total:   42.97,
			Items: []domain.OrderItem{
				{
					Name:     "Ethiopian Yirgacheffe",
					ImageURL: "https://images.pexels.com/photos/4820769/pexels-photo-4820769.jpeg",
					Price:    14.99,
					Quantity: 2,
				},
				{
					Name:     "Colombian Supremo",
					ImageURL: "https://images.pexels.com/photos/4820778/pexels-photo-4820778.jpeg",
					Price:    12.99,
					Quantity: 1,
				},
			},
		},
		{
			ID:      "ORD123457",
			BuyerID: SeedBuyerID.String(),
			Date:    mustParseTime("2024-05-10T14:15:30Z"),
			Status:  domain.OrderStatusShipped,
			Total:   28.98,
			Items: []domain.OrderItem{
				{
					Name:     "Sumatra Mandheling",
					ImageURL: "https://images.pexels.com/photos/2074122/pexels-photo-2074122.jpeg",
					Price:    13.49,
					Quantity: 2,
				},
				{
					Name:     "Coffee Grinder",
					ImageURL: "https://images.pexels.com/photos/6103113/pexels-photo-6103113.jpeg",
					Price:    1.99,
					Quantity: 1,
				},
			},
		},
		{
			ID:      "ORD123458",
			BuyerID: SeedBuyerID.String(),
			Date:    mustParseTime("2024-05-18T09:45:12Z"),
			Status:  domain.OrderStatusProcessing,
			Total:   55.96,
			Items: []domain.OrderItem{
				{
					Name:     "Guatemala Antigua",
					ImageURL: "https://images.pexels.com/photos/6103104/pexels-photo-6103104.jpeg",
					Price:    13.99,
					Quantity: 4,
				},
			},
		},
	}
}

// seedSellerSummaries returns the demo seller order summaries.
func seedSellerSummaries() []domain.OrderSummary {
	return []domain.OrderSummary{
		{
			ID:            "ORD567890",
			Date:          mustParseTime("2024-05-02T11:20:45Z"),
			Status:        domain.OrderStatusDelivered,
			Total:         29.98,
			ItemCount:     2,
			CustomerName:  "John Smith",
			CustomerEmail: "john.smith@example.com",
		},
		{
			ID:            "ORD567891",
			Date:          mustParseTime("2024-05-12T16:30:22Z"),
			Status:        domain.OrderStatusShipped,
			Total:         42.97,
			ItemCount:     3,
			CustomerName:  "Emily Johnson",
			CustomerEmail: "emily.j@example.com",
		},
		{
			ID:            "ORD567892",
			Date:          mustParseTime("2024-05-19T10:15:32Z"),
			Status:        domain.OrderStatusProcessing,
			Total:         13.99,
			ItemCount:     1,
			CustomerName:  "Michael Brown",
			CustomerEmail: "michael.b@example.com",
		},
	}
}
