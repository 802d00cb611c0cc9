package service

import (
	"math"

	"bean-market/internal/config"
)

// Quote breaks an order total down into its components. All values
// are unrounded; rounding to two decimals happens only when a quote
// is rendered.
type Quote struct {
	Subtotal float64
	Shipping float64
	Tax      float64
	Total    float64
}

// Pricer computes order quotes. The same rules drive the cart summary
// and the checkout total: shipping is a flat fee waived once the
// subtotal reaches the free-shipping threshold, tax is a fixed
// percentage of the subtotal.
type Pricer struct {
	freeShippingThreshold float64
	shippingFee           float64
	taxRate               float64
}

// NewPricer creates a Pricer from the pricing configuration.
func NewPricer(cfg config.PricingConfig) *Pricer {
	return &Pricer{
		freeShippingThreshold: cfg.FreeShippingThreshold,
		shippingFee:           cfg.ShippingFee,
		taxRate:               cfg.TaxRate,
	}
}

// QuoteFor computes the quote for an unrounded subtotal.
func (p *Pricer) QuoteFor(subtotal float64) Quote {
	shipping := 0.0
	if subtotal < p.freeShippingThreshold {
		shipping = p.shippingFee
	}
	tax := subtotal * p.taxRate

	return Quote{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}

// Round2 rounds a monetary value to two decimal places for display.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
