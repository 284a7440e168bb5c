package main

import (
	"log" // log package is needed for logging

	"ordering_system/internal/api"        // Custom package for API handlers
	"ordering_system/internal/config"     // Custom package for configuration
	"ordering_system/internal/ledger"     // Order ledger
	"ordering_system/internal/middleware" // Custom package for middleware
	"ordering_system/internal/pricing"    // Pricing engine
	"ordering_system/internal/receipt"    // Receipt renderer
	"ordering_system/internal/session"    // Session manager
	"ordering_system/internal/store"      // Credential store
	"ordering_system/internal/translate"  // Translation collaborator

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Open the persisted user store
	st, err := store.Open(cfg.UsersFile, cfg.BcryptCost)
	if err != nil {
		logrus.Fatalf("failed to open user store: %v", err) // Fatal error if the store is unreadable
	}

	// Session manager with a per-username login throttle
	limiter := session.NewLimiter(cfg.LoginRPS, cfg.LoginBurst)
	sessions := session.NewManager(st, cfg.SessionTTL, limiter)

	// Pricing engine over the exchange-rate collaborator
	rates := pricing.NewRateClient(cfg.RateAPIBase, cfg.RateAPIKey, cfg.BaseCurrency, cfg.RateTimeout, cfg.RateCacheTTL)
	engine := pricing.NewEngine(rates, cfg.DeliveryFee)

	// Order ledger and receipt renderer
	orders := ledger.New(st, sessions)
	renderer := receipt.TextRenderer{Dir: cfg.ReceiptDir}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Auth routes
	r.POST("/user", api.RegisterHandler(st))   // Registration endpoint
	r.GET("/user", api.LoginHandler(sessions)) // Login endpoint

	// Catalog routes (open)
	r.GET("/restaurants", api.ListRestaurantsHandler())        // Vendor catalog endpoint
	r.GET("/restaurants/:id/menu", api.GetMenuHandler(engine)) // Menu endpoint with currency conversion

	// Order routes (protected by session token)
	orderGroup := r.Group("/order")
	orderGroup.Use(middleware.SessionAuthMiddleware(sessions))
	orderGroup.POST("", api.CheckoutHandler(engine, orders, st, renderer, translate.Noop{})) // Checkout endpoint
	orderGroup.GET("/history", api.HistoryHandler(orders))                                   // Order history endpoint
	orderGroup.POST("/logout", api.LogoutHandler(sessions))                                  // Logout endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
