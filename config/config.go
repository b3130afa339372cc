package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/freshkart/storefront-api/pricing"
)

// Config is the full environment-provided configuration, loaded once in main.
type Config struct {
	Env          string
	Port         string
	DatabaseURL  string
	JWTSecret    string
	SellerEmail  string
	SellerPass   string
	StripeSecret string
	StripeHook   string
	ClientOrigin string
	UploadDir    string
	Pricing      pricing.Config
}

// Load reads .env (if present) and collects configuration from the
// environment. Missing optional values fall back to development defaults.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Env:          getenv("APP_ENV", "development"),
		Port:         getenv("PORT", "4000"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		SellerEmail:  os.Getenv("SELLER_EMAIL"),
		SellerPass:   os.Getenv("SELLER_PASSWORD"),
		StripeSecret: os.Getenv("STRIPE_SECRET_KEY"),
		StripeHook:   os.Getenv("STRIPE_WEBHOOK_SECRET"),
		ClientOrigin: getenv("CLIENT_ORIGIN", "http://localhost:5173"),
		UploadDir:    getenv("UPLOAD_DIR", "./uploads"),
		Pricing:      pricing.DefaultConfig(),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			getenv("DB_HOST", "localhost"),
			getenv("DB_USER", "postgres"),
			os.Getenv("DB_PASSWORD"),
			getenv("DB_NAME", "freshkart"),
			getenv("DB_PORT", "5432"),
		)
	}

	cfg.Pricing.TaxRateBps = int64env("TAX_RATE_BPS", cfg.Pricing.TaxRateBps)
	cfg.Pricing.DeliveryFee = int64env("DELIVERY_FEE", cfg.Pricing.DeliveryFee)
	cfg.Pricing.FreeDeliveryMin = int64env("FREE_DELIVERY_MIN", cfg.Pricing.FreeDeliveryMin)

	if cfg.JWTSecret == "" {
		log.Println("⚠️ JWT_SECRET is not set; auth tokens will not survive restarts")
	}
	return cfg
}

// Production reports whether cookies should be marked Secure/SameSite=None.
func (c Config) Production() bool {
	return c.Env == "production"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func int64env(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("⚠️ Invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
