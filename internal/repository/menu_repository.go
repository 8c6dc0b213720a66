package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/Lixing-Zhang/restaurant-console/internal/models"
	"github.com/shopspring/decimal"
)

var (
	ErrItemNotFound = errors.New("menu item not found")
)

// MenuRepository defines the interface for catalog access
// Item numbers are 1-based positions in insertion order
type MenuRepository interface {
	GetAll(ctx context.Context) []*models.MenuItem
	Get(ctx context.Context, number int) (*models.MenuItem, error)
	FindByName(ctx context.Context, name string, match func(*models.MenuItem) bool) (*models.MenuItem, error)
	Len(ctx context.Context) int
	Add(ctx context.Context, item *models.MenuItem)
	Update(ctx context.Context, number int, name string, price decimal.Decimal) bool
	Remove(ctx context.Context, number int) bool
}

// InMemoryMenuRepository implements MenuRepository with an ordered slice
type InMemoryMenuRepository struct {
	items []*models.MenuItem
}

// NewInMemoryMenuRepository creates an empty catalog
func NewInMemoryMenuRepository() *InMemoryMenuRepository {
	return &InMemoryMenuRepository{}
}

// NewSeededMenuRepository creates a catalog holding the house menu
func NewSeededMenuRepository() *InMemoryMenuRepository {
	return &InMemoryMenuRepository{
		items: SeedItems(),
	}
}

// SeedItems returns a fresh copy of the house menu: four foods, four drinks and one discount
func SeedItems() []*models.MenuItem {
	return []*models.MenuItem{
		models.NewFood("Pizza", decimal.NewFromInt(30000), "Italian"),
		models.NewFood("Burger", decimal.NewFromInt(40000), "American"),
		models.NewFood("Pasta", decimal.NewFromInt(50000), "Italian"),
		models.NewFood("Steak", decimal.NewFromInt(60000), "American"),
		models.NewDrink("Soda", decimal.NewFromInt(10000), "Carbonated"),
		models.NewDrink("Juice", decimal.NewFromInt(15000), "Fruit"),
		models.NewDrink("Coffee", decimal.NewFromInt(20000), "Hot"),
		models.NewDrink("Tea", decimal.NewFromInt(25000), "Hot"),
		models.NewDiscount("Weekend Discount", decimal.NewFromInt(5000), models.CategoryFood, decimal.NewFromInt(5000)),
	}
}

// GetAll returns the items in insertion order
// The slice is a copy; the items are shared
func (r *InMemoryMenuRepository) GetAll(ctx context.Context) []*models.MenuItem {
	items := make([]*models.MenuItem, len(r.items))
	copy(items, r.items)
	return items
}

// Get returns the item at a 1-based position
func (r *InMemoryMenuRepository) Get(ctx context.Context, number int) (*models.MenuItem, error) {
	if !r.inRange(number) {
		return nil, ErrItemNotFound
	}
	return r.items[number-1], nil
}

// FindByName returns the first item whose name matches case-insensitively
// and which satisfies match, if match is non-nil
func (r *InMemoryMenuRepository) FindByName(ctx context.Context, name string, match func(*models.MenuItem) bool) (*models.MenuItem, error) {
	for _, item := range r.items {
		if !strings.EqualFold(item.Name, name) {
			continue
		}
		if match != nil && !match(item) {
			continue
		}
		return item, nil
	}
	return nil, ErrItemNotFound
}

func (r *InMemoryMenuRepository) Len(ctx context.Context) int {
	return len(r.items)
}

// Add appends an item; duplicate names are allowed
func (r *InMemoryMenuRepository) Add(ctx context.Context, item *models.MenuItem) {
	r.items = append(r.items, item)
}

// Update renames and reprices the item at a 1-based position.
// Out-of-range numbers leave the catalog untouched and report false.
func (r *InMemoryMenuRepository) Update(ctx context.Context, number int, name string, price decimal.Decimal) bool {
	if !r.inRange(number) {
		return false
	}
	item := r.items[number-1]
	item.Name = name
	item.BasePrice = price
	return true
}

// Remove deletes the item at a 1-based position.
// Out-of-range numbers leave the catalog untouched and report false.
func (r *InMemoryMenuRepository) Remove(ctx context.Context, number int) bool {
	if !r.inRange(number) {
		return false
	}
	r.items = append(r.items[:number-1], r.items[number:]...)
	return true
}

func (r *InMemoryMenuRepository) inRange(number int) bool {
	return number >= 1 && number <= len(r.items)
}
