package pricing

import (
	"context" // Bounds the rate lookup
	"fmt"     // Promo confirmation message
	"strings" // Promo code normalization

	"ordering_system/internal/domain" // Catalogs and errors
)

// Engine computes cart totals. It holds no persisted state and never
// fails: bad inputs degrade to zero discount or the default rate.
type Engine struct {
	rates       *RateClient
	deliveryFee float64 // Fixed fee in the base currency
}

// NewEngine returns a pricing engine over the given rate client
func NewEngine(rates *RateClient, deliveryFee float64) *Engine {
	return &Engine{rates: rates, deliveryFee: deliveryFee}
}

// Subtotal sums unit price times quantity over all cart lines
func Subtotal(cart []domain.CartLine) float64 {
	var total float64
	for _, line := range cart {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// ApplyPromo looks the code up in the fixed catalog and returns the
// discount amount. The discount is clamped to the subtotal so a large
// rate can never push the pre-fee total negative. Unknown codes yield
// zero discount and domain.ErrInvalidPromoCode.
func ApplyPromo(subtotal float64, code string) (float64, string, error) {
	rate, ok := domain.PromoCodes[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return 0, "Invalid promo code", domain.ErrInvalidPromoCode
	}
	discount := subtotal * rate
	if discount > subtotal {
		discount = subtotal
	}
	msg := fmt.Sprintf("Promo %s applied! Saved %.0f%%", strings.ToUpper(strings.TrimSpace(code)), rate*100)
	return discount, msg, nil
}

// Convert converts an amount from the base currency into target. live
// is false when the default rate 1 was substituted.
func (e *Engine) Convert(ctx context.Context, amount float64, target string) (float64, bool) {
	rate, live := e.rates.Rate(ctx, target)
	return amount * rate, live
}

// DeliveryFee returns the fixed delivery fee in the target currency
func (e *Engine) DeliveryFee(ctx context.Context, target string) (float64, bool) {
	return e.Convert(ctx, e.deliveryFee, target)
}

// GrandTotal is subtotal minus discount plus delivery fee
func GrandTotal(subtotal, discount, deliveryFee float64) float64 {
	return subtotal - discount + deliveryFee
}
