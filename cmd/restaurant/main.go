package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/Lixing-Zhang/restaurant-console/internal/config"
	"github.com/Lixing-Zhang/restaurant-console/internal/console"
	"github.com/Lixing-Zhang/restaurant-console/internal/repository"
	"github.com/Lixing-Zhang/restaurant-console/internal/service"
	"github.com/Lixing-Zhang/restaurant-console/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting restaurant console",
		"invoice_path", cfg.Session.InvoicePath,
		"max_order_items", cfg.Pricing.MaxOrderItems,
		"log_level", cfg.LogLevel,
	)

	// Interrupts keep their default behavior and end the process
	ctx := context.Background()

	// Initialize catalog and services
	menuRepo := repository.NewSeededMenuRepository()
	menuService := service.NewMenuService(menuRepo)
	adminService := service.NewAdminService(menuRepo, log)

	if cfg.Session.MenuSeedFile != "" {
		if _, err := adminService.Import(ctx, cfg.Session.MenuSeedFile); err != nil {
			log.Error("failed to load menu seed file, continuing with the house menu",
				"path", cfg.Session.MenuSeedFile,
				"error", err,
			)
		}
	}

	session := console.NewSession(os.Stdin, os.Stdout, menuService, adminService, console.Options{
		Policy: service.PricingPolicy{
			MaxItems:          cfg.Pricing.MaxOrderItems,
			DiscountThreshold: cfg.Pricing.DiscountThreshold,
			DiscountRate:      cfg.Pricing.DiscountRate,
			TaxRate:           cfg.Pricing.TaxRate,
			ServiceFee:        cfg.Pricing.ServiceFee,
		},
		Offer:       service.NewTeaOffer(cfg.Pricing.PromoThreshold),
		InvoicePath: cfg.Session.InvoicePath,
		AdminPIN:    cfg.Auth.AdminPIN,
	}, log)

	if err := session.Run(ctx); err != nil {
		log.Error("session ended with error", "error", err)
		os.Exit(1)
	}

	log.Info("session ended")
}
