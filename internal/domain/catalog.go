package domain

// Restaurant Model
type Restaurant struct {
	Name         string  `json:"name"`          // Display name
	Cuisine      string  `json:"cuisine"`       // Cuisine type
	Rating       float64 `json:"rating"`        // Average rating out of 5
	DeliveryTime string  `json:"delivery_time"` // Estimated delivery window
}

// MenuItem Model, prices are in the base currency
type MenuItem struct {
	Item     string  `json:"item"`     // Item name
	Price    float64 `json:"price"`    // Base-currency unit price
	Category string  `json:"category"` // Menu section
	Veg      bool    `json:"veg"`      // Dietary flag
}

// Currency Model
type Currency struct {
	Code   string `json:"code"`   // ISO 4217 code
	Symbol string `json:"symbol"` // Display symbol
}

// Restaurants is the fixed vendor catalog, keyed by vendor ID.
var Restaurants = map[string]Restaurant{
	"1": {Name: "Pizza Palace", Cuisine: "Italian", Rating: 4.5, DeliveryTime: "30-40 min"},
	"2": {Name: "Sushi Haven", Cuisine: "Japanese", Rating: 4.7, DeliveryTime: "25-35 min"},
	"3": {Name: "Burger Bonanza", Cuisine: "American", Rating: 4.3, DeliveryTime: "20-30 min"},
}

// MenuItems maps a vendor ID to its menu.
var MenuItems = map[string][]MenuItem{
	"1": {
		{Item: "Margherita Pizza", Price: 299, Category: "Pizza", Veg: true},
		{Item: "Pepperoni Pizza", Price: 349, Category: "Pizza", Veg: false},
		{Item: "Garlic Bread", Price: 99, Category: "Sides", Veg: true},
	},
	"2": {
		{Item: "California Roll", Price: 399, Category: "Sushi", Veg: false},
		{Item: "Miso Soup", Price: 149, Category: "Soup", Veg: true},
		{Item: "Edamame", Price: 199, Category: "Sides", Veg: true},
	},
	"3": {
		{Item: "Classic Burger", Price: 249, Category: "Burger", Veg: false},
		{Item: "Veggie Burger", Price: 229, Category: "Burger", Veg: true},
		{Item: "French Fries", Price: 99, Category: "Sides", Veg: true},
	},
}

// PromoCodes maps an upper-case code to its fractional discount rate.
var PromoCodes = map[string]float64{
	"FIRSTORDER": 0.20,
	"HUNGRY":     0.15,
	"QUICKBITE":  0.10,
}

// Currencies is the supported currency catalog, keyed by ISO code.
// INR is the base currency of the menu and the rate collaborator.
var Currencies = map[string]Currency{
	"INR": {Code: "INR", Symbol: "₹"},
	"USD": {Code: "USD", Symbol: "$"},
	"EUR": {Code: "EUR", Symbol: "€"},
}
