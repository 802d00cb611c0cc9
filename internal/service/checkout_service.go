package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"bean-market/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CheckoutStep enumerates the states of the checkout flow.
type CheckoutStep string

const (
	StepShipping     CheckoutStep = "shipping"
	StepPayment      CheckoutStep = "payment"
	StepConfirmation CheckoutStep = "confirmation"
)

var (
	ErrSessionNotFound   = errors.New("checkout session not found")
	ErrInvalidTransition = errors.New("operation not valid in the current checkout step")
	ErrPaymentInProgress = errors.New("payment is already being processed")
	ErrEmptyCart         = errors.New("cannot start checkout with an empty cart")
)

// ValidationError reports the required fields a checkout step is
// missing. The flow stays on the current step when it is returned.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// ShippingAddress carries the fields collected in the shipping step.
type ShippingAddress struct {
	FullName string `json:"full_name" validate:"required"`
	Address  string `json:"address" validate:"required"`
	City     string `json:"city" validate:"required"`
	State    string `json:"state" validate:"required"`
	Zip      string `json:"zip" validate:"required"`
	Country  string `json:"country" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
}

// CheckoutSession is the state of one buyer's checkout flow. The cart
// is snapshotted at start; the session is dropped once the order is
// placed or the buyer abandons the flow.
type CheckoutSession struct {
	ID      uuid.UUID
	Step    CheckoutStep
	Cart    domain.Cart
	Address ShippingAddress
	Payment PaymentDetails
	Quote   Quote

	buyer          *domain.User
	idempotencyKey string
	processing     bool
}

// CheckoutService sequences the strictly linear shipping -> payment ->
// confirmation flow, validating each step before advancing.
type CheckoutService interface {
	Start(ctx context.Context, user *domain.User) (*CheckoutSession, error)
	Current(user *domain.User, sessionID uuid.UUID) (*CheckoutSession, error)
	SubmitShipping(ctx context.Context, user *domain.User, sessionID uuid.UUID, address ShippingAddress) (*CheckoutSession, error)
	Back(user *domain.User, sessionID uuid.UUID) (*CheckoutSession, error)
	SubmitPayment(ctx context.Context, user *domain.User, sessionID uuid.UUID, details PaymentDetails) (*CheckoutSession, error)
	Confirm(ctx context.Context, user *domain.User, sessionID uuid.UUID) (*domain.Order, error)
}

type checkoutService struct {
	cartService  CartService
	orderService OrderService
	pricer       *Pricer
	processor    PaymentProcessor
	validate     *validator.Validate
	logger       *zap.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*CheckoutSession
}

// NewCheckoutService creates a new instance of CheckoutService
func NewCheckoutService(
	cartService CartService,
	orderService OrderService,
	pricer *Pricer,
	processor PaymentProcessor,
	logger *zap.Logger,
) CheckoutService {
	return &checkoutService{
		cartService:  cartService,
		orderService: orderService,
		pricer:       pricer,
		processor:    processor,
		validate:     validator.New(),
		logger:       logger,
		sessions:     make(map[uuid.UUID]*CheckoutSession),
	}
}

// Start opens a checkout session at the shipping step, snapshotting
// the buyer's current cart.
func (s *checkoutService) Start(ctx context.Context, user *domain.User) (*CheckoutSession, error) {
	if !user.IsBuyer() {
		return nil, ErrNotBuyer
	}

	cart, err := s.cartService.Get(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot cart: %w", err)
	}
	if len(cart.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	session := &CheckoutSession{
		ID:             uuid.New(),
		Step:           StepShipping,
		Cart:           *cart,
		Quote:          s.pricer.QuoteFor(cart.Subtotal()),
		buyer:          user,
		idempotencyKey: uuid.New().String(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	s.logger.Info("Checkout started",
		zap.String("session_id", session.ID.String()),
		zap.Int("items", cart.TotalItems()),
	)
	return session, nil
}

// Current returns the buyer's session by id.
func (s *checkoutService) Current(user *domain.User, sessionID uuid.UUID) (*CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionLocked(user, sessionID)
}

// SubmitShipping validates the shipping address and advances to the
// payment step. On validation failure the session stays on shipping
// and the error names every missing field.
func (s *checkoutService) SubmitShipping(ctx context.Context, user *domain.User, sessionID uuid.UUID, address ShippingAddress) (*CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessionLocked(user, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != StepShipping {
		return nil, ErrInvalidTransition
	}

	if err := s.requireFields(address); err != nil {
		return nil, err
	}

	session.Address = address
	session.Step = StepPayment
	return session, nil
}

// Back returns from the payment step to the shipping step. The
// previously entered shipping address is preserved.
func (s *checkoutService) Back(user *domain.User, sessionID uuid.UUID) (*CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessionLocked(user, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != StepPayment {
		return nil, ErrInvalidTransition
	}

	session.Step = StepShipping
	return session, nil
}

// SubmitPayment validates the card fields and runs the payment
// processor. While processing is in flight a second submission is
// rejected rather than charged twice; on success the session advances
// to confirmation.
func (s *checkoutService) SubmitPayment(ctx context.Context, user *domain.User, sessionID uuid.UUID, details PaymentDetails) (*CheckoutSession, error) {
	s.mu.Lock()
	session, err := s.sessionLocked(user, sessionID)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if session.Step != StepPayment {
		s.mu.Unlock()
		return nil, ErrInvalidTransition
	}
	if err := s.requireFields(details); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if session.processing {
		s.mu.Unlock()
		return nil, ErrPaymentInProgress
	}
	session.processing = true
	key := session.idempotencyKey
	amount := session.Quote.Total
	s.mu.Unlock()

	processErr := s.processor.Process(ctx, key, details, amount)

	s.mu.Lock()
	defer s.mu.Unlock()
	session.processing = false

	if processErr != nil {
		s.logger.Error("Payment processing failed",
			zap.String("session_id", session.ID.String()),
			zap.Error(processErr),
		)
		return nil, fmt.Errorf("payment processing failed: %w", processErr)
	}

	session.Payment = details
	session.Step = StepConfirmation
	return session, nil
}

// Confirm places the order from the session's cart snapshot, clears
// the buyer's cart (state and persisted storage), and drops the
// session.
func (s *checkoutService) Confirm(ctx context.Context, user *domain.User, sessionID uuid.UUID) (*domain.Order, error) {
	s.mu.Lock()
	session, err := s.sessionLocked(user, sessionID)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if session.Step != StepConfirmation {
		s.mu.Unlock()
		return nil, ErrInvalidTransition
	}
	// Remove the session before releasing the lock so a concurrent
	// Confirm on the same session cannot place the order twice. It is
	// restored if order creation fails.
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	order, err := s.orderService.CreateFromCart(ctx, user, &session.Cart, session.Quote.Total)
	if err != nil {
		s.mu.Lock()
		s.sessions[sessionID] = session
		s.mu.Unlock()
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err := s.cartService.Clear(ctx, user); err != nil {
		// The order exists; losing the cart clear would only leave
		// stale lines behind, so log and continue.
		s.logger.Error("Failed to clear cart after order",
			zap.String("order_id", order.ID),
			zap.Error(err),
		)
	}

	s.logger.Info("Order placed",
		zap.String("order_id", order.ID),
		zap.Float64("total", order.Total),
	)
	return order, nil
}

// sessionLocked resolves a session owned by the acting buyer. Callers
// must hold s.mu.
func (s *checkoutService) sessionLocked(user *domain.User, sessionID uuid.UUID) (*CheckoutSession, error) {
	if !user.IsBuyer() {
		return nil, ErrNotBuyer
	}

	session, exists := s.sessions[sessionID]
	if !exists || session.buyer.ID != user.ID {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// requireFields runs required-field validation and converts the
// result into a ValidationError naming each missing field.
func (s *checkoutService) requireFields(v interface{}) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	missing := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		missing = append(missing, fieldErr.Field())
	}
	return &ValidationError{Fields: missing}
}
