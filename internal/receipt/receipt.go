package receipt

import (
	"fmt"           // Receipt body formatting
	"os"            // Receipt file output
	"path/filepath" // Output path assembly
	"strings"       // Body assembly
	"time"          // Receipt file naming

	"ordering_system/internal/domain" // Models and catalogs
)

// Order carries everything a renderer needs about a finalized order.
type Order struct {
	Cart           []domain.CartLine
	Subtotal       float64
	Discount       float64
	DeliveryFee    float64
	GrandTotal     float64
	CurrencySymbol string
	CustomerEmail  string
	Address        string
	RestaurantID   string
}

// Renderer produces a receipt document and returns its path. The core
// hands over the finalized order and never inspects the output.
type Renderer interface {
	Render(o Order) (string, error)
}

// TextRenderer writes a plain-text receipt into a directory.
type TextRenderer struct {
	Dir string
}

// Render writes the receipt and returns its path
func (r TextRenderer) Render(o Order) (string, error) {
	var b strings.Builder
	name := domain.Restaurants[o.RestaurantID].Name
	fmt.Fprintf(&b, "Order Receipt - %s\n", name)
	fmt.Fprintf(&b, "Date: %s\n", time.Now().Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "Customer: %s\n", o.CustomerEmail)
	b.WriteString(strings.Repeat("-", 30) + "\n")
	for i, line := range o.Cart {
		lineTotal := line.Price * float64(line.Quantity)
		fmt.Fprintf(&b, "%d. %s x%d - %s%.2f/unit = %s%.2f\n",
			i+1, line.Item, line.Quantity, o.CurrencySymbol, line.Price, o.CurrencySymbol, lineTotal)
	}
	b.WriteString(strings.Repeat("-", 30) + "\n")
	fmt.Fprintf(&b, "Subtotal: %s%.2f\n", o.CurrencySymbol, o.Subtotal)
	if o.Discount > 0 {
		fmt.Fprintf(&b, "Promo Discount: -%s%.2f\n", o.CurrencySymbol, o.Discount)
	}
	fmt.Fprintf(&b, "Delivery Fee: +%s%.2f\n", o.CurrencySymbol, o.DeliveryFee)
	b.WriteString(strings.Repeat("=", 30) + "\n")
	fmt.Fprintf(&b, "GRAND TOTAL: %s%.2f\n", o.CurrencySymbol, o.GrandTotal)
	b.WriteString(strings.Repeat("=", 30) + "\n")
	fmt.Fprintf(&b, "Delivery to: %s\n", o.Address)

	path := filepath.Join(r.Dir, fmt.Sprintf("Order_Receipt_%s.txt", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
