package service

import (
	"context"

	"github.com/Lixing-Zhang/restaurant-console/internal/models"
	"github.com/Lixing-Zhang/restaurant-console/internal/repository"
)

// MenuService answers catalog queries for the customer flow
type MenuService struct {
	repo repository.MenuRepository
}

// CategoryGroup is the non-discount items of one category, in catalog order
type CategoryGroup struct {
	Category models.Category
	Items    []*models.MenuItem
}

// MenuSections is the catalog split the way it is displayed:
// discounts first, then one group per category in first-seen order
type MenuSections struct {
	Discounts []*models.MenuItem
	Groups    []CategoryGroup
}

// NewMenuService creates a new menu service
func NewMenuService(repo repository.MenuRepository) *MenuService {
	return &MenuService{
		repo: repo,
	}
}

// ListItems returns every catalog entry in insertion order
func (s *MenuService) ListItems(ctx context.Context) []*models.MenuItem {
	return s.repo.GetAll(ctx)
}

// Sections groups the current catalog for display
func (s *MenuService) Sections(ctx context.Context) MenuSections {
	var sections MenuSections
	groupIndex := make(map[models.Category]int)

	for _, item := range s.repo.GetAll(ctx) {
		if item.IsDiscount() {
			sections.Discounts = append(sections.Discounts, item)
			continue
		}
		i, ok := groupIndex[item.Category]
		if !ok {
			i = len(sections.Groups)
			groupIndex[item.Category] = i
			sections.Groups = append(sections.Groups, CategoryGroup{Category: item.Category})
		}
		sections.Groups[i].Items = append(sections.Groups[i].Items, item)
	}

	return sections
}

// FindOrderable returns the first food or drink with the given name, ignoring case
func (s *MenuService) FindOrderable(ctx context.Context, name string) (*models.MenuItem, error) {
	return s.repo.FindByName(ctx, name, (*models.MenuItem).Orderable)
}

// FindDrink returns the first drink with the given name, ignoring case
func (s *MenuService) FindDrink(ctx context.Context, name string) (*models.MenuItem, error) {
	return s.repo.FindByName(ctx, name, func(item *models.MenuItem) bool {
		return item.Kind == models.KindDrink
	})
}
