package domain

// CartLine Model, a single item in the caller's cart
type CartLine struct {
	Item     string  `json:"item"`     // Item name
	Price    float64 `json:"price"`    // Unit price in the active currency
	Quantity int     `json:"quantity"` // At least 1
	Veg      bool    `json:"veg"`      // Dietary flag
}

// OrderRecord Model, immutable once appended to a user's history
type OrderRecord struct {
	OrderID      string     `json:"order_id"`      // Unique order identifier
	Date         string     `json:"date"`          // Creation timestamp, RFC 3339
	Items        []CartLine `json:"items"`         // Cart snapshot at checkout
	Total        float64    `json:"total"`         // Grand total in the order's currency
	Currency     string     `json:"currency"`      // Currency symbol, e.g. ₹ $ €
	RestaurantID string     `json:"restaurant_id"` // Vendor identifier
	Status       string     `json:"status"`        // Initially "Order Placed"
}

// StatusPlaced is the status every order starts with.
const StatusPlaced = "Order Placed"
