package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Lixing-Zhang/restaurant-console/internal/menufile"
	"github.com/Lixing-Zhang/restaurant-console/internal/models"
	"github.com/Lixing-Zhang/restaurant-console/internal/repository"
	"github.com/shopspring/decimal"
)

// AdminService handles catalog maintenance
type AdminService struct {
	repo repository.MenuRepository
	log  *slog.Logger
}

// NewAdminService creates a new admin service
func NewAdminService(repo repository.MenuRepository, log *slog.Logger) *AdminService {
	return &AdminService{
		repo: repo,
		log:  log,
	}
}

// AddItem appends an item to the catalog
func (s *AdminService) AddItem(ctx context.Context, item *models.MenuItem) {
	s.repo.Add(ctx, item)
	s.log.Info("menu item added", "name", item.Name, "kind", item.Kind, "price", item.BasePrice)
}

// UpdateItem renames and reprices the item at a 1-based number.
// Numbers outside the catalog are ignored and reported as false.
func (s *AdminService) UpdateItem(ctx context.Context, itemNumber int, newName string, newPrice decimal.Decimal) bool {
	if !s.repo.Update(ctx, itemNumber, newName, newPrice) {
		s.log.Warn("update ignored, item number out of range", "item_number", itemNumber, "catalog_size", s.repo.Len(ctx))
		return false
	}
	s.log.Info("menu item updated", "item_number", itemNumber, "name", newName, "price", newPrice)
	return true
}

// RemoveItem deletes the item at a 1-based number.
// Numbers outside the catalog are ignored and reported as false.
func (s *AdminService) RemoveItem(ctx context.Context, itemNumber int) bool {
	if !s.repo.Remove(ctx, itemNumber) {
		s.log.Warn("remove ignored, item number out of range", "item_number", itemNumber, "catalog_size", s.repo.Len(ctx))
		return false
	}
	s.log.Info("menu item removed", "item_number", itemNumber)
	return true
}

// Import appends every food and drink in the file to the catalog.
// Any malformed line fails the import before the catalog is touched.
func (s *AdminService) Import(ctx context.Context, path string) (*menufile.Batch, error) {
	batch, err := menufile.LoadFile(ctx, path)
	if err != nil {
		s.log.Error("menu import failed", "path", path, "error", err)
		return nil, fmt.Errorf("import %s: %w", path, err)
	}

	for _, item := range batch.Items {
		s.repo.Add(ctx, item)
	}

	s.log.Info("menu imported",
		"path", path,
		"added", len(batch.Items),
		"skipped", batch.Skipped,
	)
	return batch, nil
}

// Export writes every catalog entry, discounts included, and returns how many were written
func (s *AdminService) Export(ctx context.Context, path string) (int, error) {
	items := s.repo.GetAll(ctx)
	if err := menufile.WriteFile(ctx, path, items); err != nil {
		s.log.Error("menu export failed", "path", path, "error", err)
		return 0, fmt.Errorf("export %s: %w", path, err)
	}

	s.log.Info("menu exported", "path", path, "items", len(items))
	return len(items), nil
}
