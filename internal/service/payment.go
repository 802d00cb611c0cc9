package service

import (
	"context"
	"sync"
	"time"
)

// PaymentDetails carries the card fields collected in the payment step.
type PaymentDetails struct {
	CardNumber string `json:"card_number" validate:"required"`
	NameOnCard string `json:"name_on_card" validate:"required"`
	ExpiryDate string `json:"expiry_date" validate:"required"`
	CVV        string `json:"cvv" validate:"required"`
}

// PaymentProcessor charges a payment. Process is idempotent per key:
// a key that has already been captured is not charged again, so a
// retried submission cannot double-charge the buyer.
type PaymentProcessor interface {
	Process(ctx context.Context, idempotencyKey string, details PaymentDetails, amount float64) error
}

type simulatedPaymentProcessor struct {
	delay time.Duration

	mu       sync.Mutex
	captured map[string]bool
}

// NewSimulatedPaymentProcessor creates a payment processor that stands
// in for a real gateway: it waits for the configured round-trip delay
// (honoring context cancellation) and then approves. A real gateway
// adapter would plug in behind the same interface, including decline
// and timeout outcomes.
func NewSimulatedPaymentProcessor(delay time.Duration) PaymentProcessor {
	return &simulatedPaymentProcessor{
		delay:    delay,
		captured: make(map[string]bool),
	}
}

func (p *simulatedPaymentProcessor) Process(ctx context.Context, idempotencyKey string, details PaymentDetails, amount float64) error {
	p.mu.Lock()
	alreadyCaptured := p.captured[idempotencyKey]
	p.mu.Unlock()

	if alreadyCaptured {
		return nil
	}

	if p.delay > 0 {
		timer := time.NewTimer(p.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	p.mu.Lock()
	p.captured[idempotencyKey] = true
	p.mu.Unlock()

	return nil
}
