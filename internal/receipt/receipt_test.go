package receipt

import (
	"os"
	"testing"

	"ordering_system/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextRendererRender(t *testing.T) {
	r := TextRenderer{Dir: t.TempDir()}

	path, err := r.Render(Order{
		Cart: []domain.CartLine{
			{Item: "Margherita Pizza", Price: 299, Quantity: 2, Veg: true},
		},
		Subtotal:       598,
		Discount:       89.7,
		DeliveryFee:    50,
		GrandTotal:     558.3,
		CurrencySymbol: "₹",
		CustomerEmail:  "alice@example.com",
		Address:        "1 Main St",
		RestaurantID:   "1",
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	body := string(data)
	assert.Contains(t, body, "Pizza Palace")
	assert.Contains(t, body, "alice@example.com")
	assert.Contains(t, body, "Margherita Pizza x2")
	assert.Contains(t, body, "GRAND TOTAL: ₹558.30")
	assert.Contains(t, body, "Delivery to: 1 Main St")
}

func TestTextRendererBadDir(t *testing.T) {
	r := TextRenderer{Dir: "/no/such/dir"}
	_, err := r.Render(Order{RestaurantID: "1"})
	assert.Error(t, err)
}
