package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds all configuration for the application
// Values come from environment variables, optionally seeded from a .env file
type Config struct {
	Session  SessionConfig
	Auth     AuthConfig
	Pricing  PricingConfig
	LogLevel string
}

type SessionConfig struct {
	InvoicePath  string // Where the printed invoice is written, overwritten each time
	MenuSeedFile string // Optional import file loaded into the catalog at startup
}

type AuthConfig struct {
	AdminPIN string // Empty disables the admin PIN prompt
}

type PricingConfig struct {
	MaxOrderItems     int
	DiscountThreshold decimal.Decimal
	DiscountRate      decimal.Decimal
	TaxRate           decimal.Decimal
	ServiceFee        decimal.Decimal
	PromoThreshold    decimal.Decimal
}

// Load reads configuration from the environment
// A missing .env file is not an error
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Session: SessionConfig{
			InvoicePath:  getEnv("INVOICE_PATH", "invoice.txt"),
			MenuSeedFile: getEnv("MENU_SEED_FILE", ""),
		},
		Auth: AuthConfig{
			AdminPIN: strings.TrimSpace(getEnv("ADMIN_PIN", "")),
		},
		Pricing: PricingConfig{
			MaxOrderItems:     getEnvAsInt("MAX_ORDER_ITEMS", 4),
			DiscountThreshold: getEnvAsDecimal("DISCOUNT_THRESHOLD", decimal.NewFromInt(100000)),
			DiscountRate:      getEnvAsDecimal("DISCOUNT_RATE", decimal.RequireFromString("0.10")),
			TaxRate:           getEnvAsDecimal("TAX_RATE", decimal.RequireFromString("0.10")),
			ServiceFee:        getEnvAsDecimal("SERVICE_FEE", decimal.NewFromInt(20000)),
			PromoThreshold:    getEnvAsDecimal("PROMO_THRESHOLD", decimal.NewFromInt(50000)),
		},
		LogLevel: getEnv("LOG_LEVEL", "warn"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Session.InvoicePath == "" {
		return fmt.Errorf("INVOICE_PATH is required")
	}

	if c.Pricing.MaxOrderItems < 1 {
		return fmt.Errorf("MAX_ORDER_ITEMS must be at least 1, got %d", c.Pricing.MaxOrderItems)
	}

	one := decimal.NewFromInt(1)
	rates := map[string]decimal.Decimal{
		"DISCOUNT_RATE": c.Pricing.DiscountRate,
		"TAX_RATE":      c.Pricing.TaxRate,
	}
	for key, rate := range rates {
		if rate.IsNegative() || rate.GreaterThan(one) {
			return fmt.Errorf("%s must be between 0 and 1, got %s", key, rate)
		}
	}

	amounts := map[string]decimal.Decimal{
		"DISCOUNT_THRESHOLD": c.Pricing.DiscountThreshold,
		"SERVICE_FEE":        c.Pricing.ServiceFee,
		"PROMO_THRESHOLD":    c.Pricing.PromoThreshold,
	}
	for key, amount := range amounts {
		if amount.IsNegative() {
			return fmt.Errorf("%s must not be negative, got %s", key, amount)
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDecimal(key string, defaultValue decimal.Decimal) decimal.Decimal {
	valueStr := strings.TrimSpace(os.Getenv(key))
	if valueStr == "" {
		return defaultValue
	}
	value, err := decimal.NewFromString(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
