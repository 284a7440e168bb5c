package domain

// User Model, one record per registered account in the users file
type User struct {
	Password     string        `json:"password"`      // bcrypt hash with embedded salt, never plaintext
	Email        string        `json:"email"`         // Contact email
	Address      string        `json:"address"`       // Delivery address
	CreatedAt    string        `json:"created_at"`    // Registration timestamp, RFC 3339
	OrderHistory []OrderRecord `json:"order_history"` // Append-only; insertion order is chronological
}
