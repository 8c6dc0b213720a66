package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Lixing-Zhang/restaurant-console/internal/menufile"
	"github.com/Lixing-Zhang/restaurant-console/internal/models"
	"github.com/Lixing-Zhang/restaurant-console/internal/repository"
	"github.com/Lixing-Zhang/restaurant-console/pkg/logger"
)

func newAdmin() (*AdminService, *repository.InMemoryMenuRepository) {
	repo := repository.NewSeededMenuRepository()
	return NewAdminService(repo, logger.New("error")), repo
}

func TestAdminService_AddItem(t *testing.T) {
	ctx := context.Background()
	admin, repo := newAdmin()
	admin.AddItem(ctx, models.NewFood("Ramen", dec("45000"), "Japanese"))

	if repo.Len(ctx) != 10 {
		t.Fatalf("expected 10 items, got %d", repo.Len(ctx))
	}
	last, _ := repo.Get(ctx, 10)
	if last.Name != "Ramen" {
		t.Errorf("last item = %s, want Ramen", last.Name)
	}
}

func TestAdminService_UpdateAndRemove(t *testing.T) {
	ctx := context.Background()
	admin, repo := newAdmin()

	if !admin.UpdateItem(ctx, 2, "Cheeseburger", dec("42000")) {
		t.Error("UpdateItem(2) = false, want true")
	}
	item, _ := repo.Get(ctx, 2)
	if item.Name != "Cheeseburger" {
		t.Errorf("item 2 = %s, want Cheeseburger", item.Name)
	}

	if admin.UpdateItem(ctx, 0, "Nope", dec("1")) || admin.UpdateItem(ctx, 10, "Nope", dec("1")) {
		t.Error("out-of-range UpdateItem should report false")
	}

	if !admin.RemoveItem(ctx, 9) {
		t.Error("RemoveItem(9) = false, want true")
	}
	if admin.RemoveItem(ctx, 9) {
		t.Error("RemoveItem(9) on 8-item catalog should report false")
	}
	if repo.Len(ctx) != 8 {
		t.Errorf("expected 8 items, got %d", repo.Len(ctx))
	}
}

func TestAdminService_Import(t *testing.T) {
	ctx := context.Background()
	admin, repo := newAdmin()
	path := filepath.Join(t.TempDir(), "import.txt")
	if err := os.WriteFile(path, []byte("Mango,8000,Tropical,DRINK\nRamen,45000,Japanese,FOOD\n"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	batch, err := admin.Import(ctx, path)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if len(batch.Items) != 2 || repo.Len(ctx) != 11 {
		t.Fatalf("imported %d, catalog %d; want 2, 11", len(batch.Items), repo.Len(ctx))
	}

	mango, _ := repo.Get(ctx, 10)
	if mango.Name != "Mango" || mango.Kind != models.KindDrink || mango.Subtype != "Tropical" ||
		!mango.BasePrice.Equal(dec("8000")) {
		t.Errorf("unexpected imported item: %+v", mango)
	}
}

func TestAdminService_Import_MalformedLeavesCatalogUntouched(t *testing.T) {
	ctx := context.Background()
	admin, repo := newAdmin()
	path := filepath.Join(t.TempDir(), "import.txt")
	if err := os.WriteFile(path, []byte("Mango,8000,Tropical,DRINK\nRamen,lots,Japanese,FOOD\n"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	if _, err := admin.Import(ctx, path); !errors.Is(err, menufile.ErrMalformedLine) {
		t.Fatalf("Import() error = %v, want ErrMalformedLine", err)
	}
	if repo.Len(ctx) != 9 {
		t.Errorf("catalog size = %d, want 9", repo.Len(ctx))
	}
}

func TestAdminService_Import_FileNotFound(t *testing.T) {
	admin, _ := newAdmin()
	_, err := admin.Import(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Import() error = %v, want os.ErrNotExist", err)
	}
}

func TestAdminService_Export(t *testing.T) {
	admin, _ := newAdmin()
	path := filepath.Join(t.TempDir(), "export.txt")

	n, err := admin.Export(context.Background(), path)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if n != 9 {
		t.Errorf("exported %d items, want 9", n)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 9 {
		t.Fatalf("expected 9 lines, got %d", len(lines))
	}
	if lines[0] != "Pizza,30000,FOOD" {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[8] != "Weekend Discount,0,FOOD" {
		t.Errorf("discount line = %q, want effective price 0", lines[8])
	}
}

func TestAdminService_ExportThenImport(t *testing.T) {
	ctx := context.Background()
	admin, _ := newAdmin()
	path := filepath.Join(t.TempDir(), "menu.txt")
	if _, err := admin.Export(ctx, path); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	fresh := repository.NewInMemoryMenuRepository()
	other := NewAdminService(fresh, logger.New("error"))
	if _, err := other.Import(ctx, path); err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	original := repository.SeedItems()
	imported := fresh.GetAll(ctx)
	if len(imported) != len(original) {
		t.Fatalf("imported %d items, want %d", len(imported), len(original))
	}
	for i := range original {
		if imported[i].Name != original[i].Name ||
			!imported[i].EffectivePrice().Equal(original[i].EffectivePrice()) ||
			imported[i].Category != original[i].Category {
			t.Errorf("item %d not preserved: %+v", i, imported[i])
		}
		if imported[i].Subtype != "" || imported[i].IsDiscount() {
			t.Errorf("item %d kept subtype or discount: %+v", i, imported[i])
		}
	}
}
