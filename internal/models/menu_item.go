package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Category is the menu section an item belongs to
type Category string

const (
	CategoryFood  Category = "FOOD"
	CategoryDrink Category = "DRINK"
)

// ParseCategory accepts FOOD or DRINK in any letter case
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToUpper(strings.TrimSpace(s))) {
	case CategoryFood:
		return CategoryFood, nil
	case CategoryDrink:
		return CategoryDrink, nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

func (c Category) String() string {
	return string(c)
}

// Kind tags which variant of menu entry an item is
type Kind int

const (
	KindFood Kind = iota
	KindDrink
	KindDiscount
)

func (k Kind) String() string {
	switch k {
	case KindFood:
		return "food"
	case KindDrink:
		return "drink"
	case KindDiscount:
		return "discount"
	default:
		return "unknown"
	}
}

// MenuItem is a purchasable food or drink, or a discount record
// Category and Kind are fixed once the item is built; Subtype is only set on food and drinks
// and DiscountAmount only on discounts
type MenuItem struct {
	Name           string
	BasePrice      decimal.Decimal
	Category       Category
	Kind           Kind
	Subtype        string
	DiscountAmount decimal.Decimal
}

// NewFood creates a food item
func NewFood(name string, price decimal.Decimal, subtype string) *MenuItem {
	return &MenuItem{Name: name, BasePrice: price, Category: CategoryFood, Kind: KindFood, Subtype: subtype}
}

// NewDrink creates a drink item
func NewDrink(name string, price decimal.Decimal, subtype string) *MenuItem {
	return &MenuItem{Name: name, BasePrice: price, Category: CategoryDrink, Kind: KindDrink, Subtype: subtype}
}

// NewDiscount creates a discount record in the given category
func NewDiscount(name string, price decimal.Decimal, category Category, amount decimal.Decimal) *MenuItem {
	return &MenuItem{Name: name, BasePrice: price, Category: category, Kind: KindDiscount, DiscountAmount: amount}
}

// EffectivePrice is the unit price used for billing.
// For discounts it is BasePrice minus DiscountAmount and can go negative.
func (m *MenuItem) EffectivePrice() decimal.Decimal {
	if m.Kind == KindDiscount {
		return m.BasePrice.Sub(m.DiscountAmount)
	}
	return m.BasePrice
}

// IsDiscount reports whether the item is a discount record
func (m *MenuItem) IsDiscount() bool {
	return m.Kind == KindDiscount
}

// Orderable reports whether a customer can put the item on an order
func (m *MenuItem) Orderable() bool {
	return m.Kind == KindFood || m.Kind == KindDrink
}
