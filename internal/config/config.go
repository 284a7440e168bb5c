package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"time"    // For durations

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort      string        // Application port
	UsersFile    string        // Path to the persisted user store
	BcryptCost   int           // Password hashing work factor
	SessionTTL   time.Duration // Absolute session lifetime
	DeliveryFee  float64       // Base-currency delivery fee
	RateAPIBase  string        // Exchange-rate collaborator base URL
	RateAPIKey   string        // Exchange-rate collaborator API key
	BaseCurrency string        // Currency the menu is priced in
	RateTimeout  time.Duration // Timeout for rate lookups
	RateCacheTTL time.Duration // How long a fetched rate stays fresh
	LoginRPS     float64       // Per-username login attempts per second
	LoginBurst   int           // Per-username login burst
	ReceiptDir   string        // Directory receipts are written to
	IsProd       bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	return &Config{
		AppPort:      envOr("APP_PORT", "8080"),
		UsersFile:    envOr("USERS_FILE", "users.json"),
		BcryptCost:   envOrInt("BCRYPT_COST", 10),
		SessionTTL:   envOrDuration("SESSION_TTL", 24*time.Hour),
		DeliveryFee:  envOrFloat("DELIVERY_FEE", 50),
		RateAPIBase:  envOr("RATE_API_BASE", "https://v6.exchangerate-api.com/v6"),
		RateAPIKey:   os.Getenv("RATE_API_KEY"),
		BaseCurrency: envOr("BASE_CURRENCY", "INR"),
		RateTimeout:  envOrDuration("RATE_TIMEOUT", 5*time.Second),
		RateCacheTTL: envOrDuration("RATE_CACHE_TTL", 10*time.Minute),
		LoginRPS:     envOrFloat("LOGIN_RPS", 1),
		LoginBurst:   envOrInt("LOGIN_BURST", 5),
		ReceiptDir:   envOr("RECEIPT_DIR", "."),
		IsProd:       os.Getenv("IS_PROD") == "true",
	}
}

// envOr returns the variable's value or a default when unset
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envOrInt returns the variable parsed as int or a default
func envOrInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

// envOrFloat returns the variable parsed as float64 or a default
func envOrFloat(key string, def float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return def
}

// envOrDuration returns the variable parsed as a duration or a default
func envOrDuration(key string, def time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return def
}
