package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lixing-Zhang/restaurant-console/internal/models"
	"github.com/Lixing-Zhang/restaurant-console/internal/repository"
	"github.com/shopspring/decimal"
)

var (
	ErrPromotionUnavailable = errors.New("promotion item is not on the menu")
)

// TeaOffer is the buy-one-get-one Tea promotion offered on larger orders.
// Accepting it adds two Teas at the normal price; nothing is discounted.
type TeaOffer struct {
	Threshold decimal.Decimal
	ItemName  string
	Quantity  int
}

// NewTeaOffer creates the offer for orders whose total exceeds threshold
func NewTeaOffer(threshold decimal.Decimal) TeaOffer {
	return TeaOffer{
		Threshold: threshold,
		ItemName:  "Tea",
		Quantity:  2,
	}
}

// Eligible reports whether the order total is above the offer threshold
func (t TeaOffer) Eligible(order *Order) bool {
	return order.TotalPrice().GreaterThan(t.Threshold)
}

// Apply adds the promotion drink to the order through the normal AddItem path
func (t TeaOffer) Apply(ctx context.Context, menu *MenuService, order *Order) (*models.MenuItem, error) {
	item, err := menu.FindDrink(ctx, t.ItemName)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, ErrPromotionUnavailable
		}
		return nil, fmt.Errorf("failed to look up %s: %w", t.ItemName, err)
	}

	if err := order.AddItem(item, t.Quantity); err != nil {
		return nil, err
	}
	return item, nil
}
