package config

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"INVOICE_PATH", "MENU_SEED_FILE", "ADMIN_PIN", "MAX_ORDER_ITEMS", "DISCOUNT_THRESHOLD",
		"DISCOUNT_RATE", "TAX_RATE", "SERVICE_FEE", "PROMO_THRESHOLD", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}

	if cfg.Session.InvoicePath != "invoice.txt" {
		t.Errorf("InvoicePath = %q, want invoice.txt", cfg.Session.InvoicePath)
	}
	if cfg.Auth.AdminPIN != "" {
		t.Errorf("AdminPIN = %q, want empty", cfg.Auth.AdminPIN)
	}
	if cfg.Pricing.MaxOrderItems != 4 {
		t.Errorf("MaxOrderItems = %d, want 4", cfg.Pricing.MaxOrderItems)
	}
	if !cfg.Pricing.ServiceFee.Equal(decimal.NewFromInt(20000)) {
		t.Errorf("ServiceFee = %s, want 20000", cfg.Pricing.ServiceFee)
	}
	if !cfg.Pricing.TaxRate.Equal(decimal.RequireFromString("0.1")) {
		t.Errorf("TaxRate = %s, want 0.1", cfg.Pricing.TaxRate)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("INVOICE_PATH", "/tmp/receipt.txt")
	t.Setenv("ADMIN_PIN", " 1234 ")
	t.Setenv("MAX_ORDER_ITEMS", "6")
	t.Setenv("SERVICE_FEE", "15000.50")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}

	if cfg.Session.InvoicePath != "/tmp/receipt.txt" {
		t.Errorf("InvoicePath = %q", cfg.Session.InvoicePath)
	}
	if cfg.Auth.AdminPIN != "1234" {
		t.Errorf("AdminPIN = %q, want 1234", cfg.Auth.AdminPIN)
	}
	if cfg.Pricing.MaxOrderItems != 6 {
		t.Errorf("MaxOrderItems = %d, want 6", cfg.Pricing.MaxOrderItems)
	}
	if !cfg.Pricing.ServiceFee.Equal(decimal.RequireFromString("15000.50")) {
		t.Errorf("ServiceFee = %s, want 15000.50", cfg.Pricing.ServiceFee)
	}
}

func TestLoad_BadNumbersFallBack(t *testing.T) {
	t.Setenv("MAX_ORDER_ITEMS", "lots")
	t.Setenv("TAX_RATE", "ten percent")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}
	if cfg.Pricing.MaxOrderItems != 4 {
		t.Errorf("MaxOrderItems = %d, want default 4", cfg.Pricing.MaxOrderItems)
	}
	if !cfg.Pricing.TaxRate.Equal(decimal.RequireFromString("0.10")) {
		t.Errorf("TaxRate = %s, want default 0.10", cfg.Pricing.TaxRate)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Session: SessionConfig{InvoicePath: "invoice.txt"},
			Pricing: PricingConfig{
				MaxOrderItems:     4,
				DiscountThreshold: decimal.NewFromInt(100000),
				DiscountRate:      decimal.RequireFromString("0.10"),
				TaxRate:           decimal.RequireFromString("0.10"),
				ServiceFee:        decimal.NewFromInt(20000),
				PromoThreshold:    decimal.NewFromInt(50000),
			},
			LogLevel: "info",
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing invoice path", mutate: func(c *Config) { c.Session.InvoicePath = "" }, wantErr: "INVOICE_PATH"},
		{name: "zero max items", mutate: func(c *Config) { c.Pricing.MaxOrderItems = 0 }, wantErr: "MAX_ORDER_ITEMS"},
		{name: "tax rate above one", mutate: func(c *Config) { c.Pricing.TaxRate = decimal.NewFromInt(2) }, wantErr: "TAX_RATE"},
		{name: "negative discount rate", mutate: func(c *Config) { c.Pricing.DiscountRate = decimal.NewFromInt(-1) }, wantErr: "DISCOUNT_RATE"},
		{name: "negative service fee", mutate: func(c *Config) { c.Pricing.ServiceFee = decimal.NewFromInt(-5) }, wantErr: "SERVICE_FEE"},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "verbose" }, wantErr: "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
