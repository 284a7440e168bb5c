package api

import (
	"errors"   // Sentinel error checks
	"net/http" // HTTP status codes

	"ordering_system/internal/domain"    // Domain models and errors
	"ordering_system/internal/ledger"    // Order ledger
	"ordering_system/internal/pricing"   // Pricing engine
	"ordering_system/internal/receipt"   // Receipt collaborator
	"ordering_system/internal/store"     // User records for receipts
	"ordering_system/internal/translate" // Translation collaborator

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
)

// CheckoutRequest represents a checkout of the caller's cart
type CheckoutRequest struct {
	RestaurantID string            `json:"restaurant_id" binding:"required"` // Vendor identifier
	Currency     string            `json:"currency" binding:"required"`      // Active currency code
	Cart         []domain.CartLine `json:"cart" binding:"required"`          // Cart lines, prices in the active currency
	PromoCode    string            `json:"promo_code"`                       // Optional promo code
	Language     string            `json:"language"`                         // Optional display language code
}

// ListRestaurantsHandler returns the fixed vendor catalog
func ListRestaurantsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"restaurants": domain.Restaurants})
	}
}

// GetMenuHandler returns a restaurant's menu with prices converted
// into the requested currency (base currency when omitted)
func GetMenuHandler(engine *pricing.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id") // Vendor identifier from the path
		menu, ok := domain.MenuItems[id]
		if !ok {
			// Unknown restaurant, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
			return
		}
		code := c.DefaultQuery("currency", "INR") // Active currency code
		ccy, ok := domain.Currencies[code]
		if !ok {
			// Unsupported currency, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported currency"})
			return
		}
		// Convert each menu price into the active currency
		converted := make([]domain.MenuItem, len(menu))
		live := true
		for i, item := range menu {
			price, ok := engine.Convert(c.Request.Context(), item.Price, ccy.Code)
			live = live && ok
			item.Price = price
			converted[i] = item
		}
		c.JSON(http.StatusOK, gin.H{
			"restaurant": domain.Restaurants[id], // Vendor details
			"menu":       converted,              // Menu in the active currency
			"currency":   ccy.Symbol,             // Display symbol
			"rate_live":  live,                   // False when the default rate was substituted
		})
	}
}

// CheckoutHandler prices the posted cart, commits the order under the
// caller's session, and renders a receipt
func CheckoutHandler(engine *pricing.Engine, ldg *ledger.Ledger, st *store.Store, renderer receipt.Renderer, tr translate.Translator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, exists := c.Get("token") // Get token from context
		if !exists {
			// Middleware did not run; treat as unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req CheckoutRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Reject an empty cart before any pricing work
		if len(req.Cart) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}
		// Validate cart line quantities
		for _, line := range req.Cart {
			if line.Quantity < 1 || line.Price < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart line"})
				return
			}
		}
		ccy, ok := domain.Currencies[req.Currency]
		if !ok {
			// Unsupported currency, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported currency"})
			return
		}
		subtotal := pricing.Subtotal(req.Cart) // Cart subtotal in the active currency
		// Apply the promo code if one was sent; an invalid code costs
		// nothing and is reported back, it never fails the checkout
		var discount float64
		promoMsg := ""
		if req.PromoCode != "" {
			var err error
			discount, promoMsg, err = pricing.ApplyPromo(subtotal, req.PromoCode)
			if errors.Is(err, domain.ErrInvalidPromoCode) {
				discount = 0 // Zero discount on an unknown code
			}
			if req.Language != "" {
				// Cosmetic only; a failed translation returns the input
				promoMsg = tr.Translate(promoMsg, req.Language)
			}
		}
		// Convert the fixed delivery fee into the active currency
		fee, rateLive := engine.DeliveryFee(c.Request.Context(), ccy.Code)
		grandTotal := pricing.GrandTotal(subtotal, discount, fee)
		// Commit the order under the caller's session
		rec, err := ldg.Commit(token.(string), req.Cart, grandTotal, ccy.Symbol, req.RestaurantID)
		if errors.Is(err, domain.ErrSessionInvalid) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}
		if errors.Is(err, domain.ErrUnknownVendor) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown restaurant"})
			return
		}
		if err != nil {
			// Persistence failed; no partial order was recorded
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Order failed"})
			return
		}
		// Render the receipt; a rendering failure never undoes the order
		receiptPath := ""
		if username, ok := c.Get("username"); ok {
			if user, found := st.Get(username.(string)); found {
				path, err := renderer.Render(receipt.Order{
					Cart:           req.Cart,
					Subtotal:       subtotal,
					Discount:       discount,
					DeliveryFee:    fee,
					GrandTotal:     grandTotal,
					CurrencySymbol: ccy.Symbol,
					CustomerEmail:  user.Email,
					Address:        user.Address,
					RestaurantID:   req.RestaurantID,
				})
				if err != nil {
					logrus.WithFields(logrus.Fields{
						"order_id": rec.OrderID,
						"error":    err.Error(),
					}).Warn("Receipt rendering failed")
				} else {
					receiptPath = path
				}
			}
		}
		// Return the committed order and its pricing breakdown
		c.JSON(http.StatusCreated, gin.H{
			"message":      "Order placed successfully",
			"order":        rec,         // Committed order record
			"subtotal":     subtotal,    // Cart subtotal
			"discount":     discount,    // Promo discount, clamped to subtotal
			"promo":        promoMsg,    // Promo outcome message
			"delivery_fee": fee,         // Delivery fee in the active currency
			"grand_total":  grandTotal,  // Amount charged
			"rate_live":    rateLive,    // False when the default rate was substituted
			"receipt":      receiptPath, // Rendered receipt path, empty on failure
		})
	}
}

// HistoryHandler returns the caller's full order history in the order
// the orders were committed
func HistoryHandler(ldg *ledger.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, exists := c.Get("token") // Get token from context
		if !exists {
			// Middleware did not run; treat as unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		orders, err := ldg.History(token.(string))
		if err != nil {
			// Invalid or expired session
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders}) // Chronological order
	}
}
