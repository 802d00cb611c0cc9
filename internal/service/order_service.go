package service

import (
	"context"
	"fmt"
	"time"

	"bean-market/internal/domain"
	"bean-market/internal/repository"
)

// OrderService owns order creation and history access.
type OrderService interface {
	CreateFromCart(ctx context.Context, buyer *domain.User, cart *domain.Cart, total float64) (*domain.Order, error)
	History(ctx context.Context, buyer *domain.User) ([]domain.Order, error)
	SellerSummaries(ctx context.Context, user *domain.User) ([]domain.OrderSummary, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderService{orderRepo: orderRepo}
}

// CreateFromCart creates a Processing order from a cart snapshot. The
// line items are copied by value so later catalog changes cannot
// alter the historical record.
func (s *orderService) CreateFromCart(ctx context.Context, buyer *domain.User, cart *domain.Cart, total float64) (*domain.Order, error) {
	if !buyer.IsBuyer() {
		return nil, ErrNotBuyer
	}

	items := make([]domain.OrderItem, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		items = append(items, domain.OrderItem{
			Name:     line.Product.Name,
			ImageURL: line.Product.ImageURL,
			Price:    line.Product.Price,
			Quantity: line.Quantity,
		})
	}

	order := &domain.Order{
		BuyerID: buyer.ID.String(),
		Date:    time.Now().UTC(),
		Status:  domain.OrderStatusProcessing,
		Total:   total,
		Items:   items,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to store order: %w", err)
	}
	return order, nil
}

// History returns the buyer's order history.
func (s *orderService) History(ctx context.Context, buyer *domain.User) ([]domain.Order, error) {
	if !buyer.IsBuyer() {
		return nil, ErrNotBuyer
	}

	orders, err := s.orderRepo.ListByBuyer(ctx, buyer.ID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// SellerSummaries returns the seller-facing order summaries.
func (s *orderService) SellerSummaries(ctx context.Context, user *domain.User) ([]domain.OrderSummary, error) {
	if user == nil || user.Role != domain.RoleSeller {
		return nil, ErrNotSeller
	}

	summaries, err := s.orderRepo.ListSellerSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list seller orders: %w", err)
	}
	return summaries, nil
}
