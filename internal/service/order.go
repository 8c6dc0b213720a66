package service

import (
	"errors"

	"github.com/Lixing-Zhang/restaurant-console/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrOrderFull = errors.New("order already holds the maximum number of items")
)

// PricingPolicy holds the constants of the bill formula
type PricingPolicy struct {
	MaxItems          int
	DiscountThreshold decimal.Decimal
	DiscountRate      decimal.Decimal
	TaxRate           decimal.Decimal
	ServiceFee        decimal.Decimal
}

// DefaultPricingPolicy is the house policy: up to 4 items, 10% off above 100000,
// 10% tax and a flat 20000 service fee
func DefaultPricingPolicy() PricingPolicy {
	return PricingPolicy{
		MaxItems:          4,
		DiscountThreshold: decimal.NewFromInt(100000),
		DiscountRate:      decimal.RequireFromString("0.10"),
		TaxRate:           decimal.RequireFromString("0.10"),
		ServiceFee:        decimal.NewFromInt(20000),
	}
}

// Price computes the bill for the given lines.
// The discount is taken off before tax, then tax and the service fee are added.
func (p PricingPolicy) Price(lines []models.OrderLine) models.Bill {
	bill := models.Bill{
		Lines: make([]models.BillLine, 0, len(lines)),
	}

	subtotal := decimal.Zero
	for _, line := range lines {
		unit := line.Item.EffectivePrice()
		amount := line.Amount()
		bill.Lines = append(bill.Lines, models.BillLine{
			Name:      line.Item.Name,
			UnitPrice: unit,
			Quantity:  line.Quantity,
			Amount:    amount,
		})
		subtotal = subtotal.Add(amount)
	}

	discount := decimal.Zero
	if subtotal.GreaterThan(p.DiscountThreshold) {
		discount = subtotal.Mul(p.DiscountRate)
	}
	taxable := subtotal.Sub(discount)
	tax := taxable.Mul(p.TaxRate)

	bill.Subtotal = subtotal
	bill.Discount = discount
	bill.Taxable = taxable
	bill.Tax = tax
	bill.ServiceFee = p.ServiceFee
	bill.Total = taxable.Add(tax).Add(p.ServiceFee)
	return bill
}

// Order is one customer's selection for a single session
type Order struct {
	ID     string
	policy PricingPolicy
	lines  []models.OrderLine
}

// NewOrder creates an empty order
func NewOrder(policy PricingPolicy) *Order {
	return &Order{
		ID:     generateOrderID(),
		policy: policy,
	}
}

// AddItem sets the quantity of item on the order.
// Once the order holds MaxItems distinct items every add is refused with ErrOrderFull,
// including items already on it. Below the cap, an item already on the order keeps its
// position and its quantity is replaced.
// Quantities are taken as given, including zero and negative values.
func (o *Order) AddItem(item *models.MenuItem, quantity int) error {
	if len(o.lines) >= o.policy.MaxItems {
		return ErrOrderFull
	}

	for i := range o.lines {
		if o.lines[i].Item == item {
			o.lines[i].Quantity = quantity
			return nil
		}
	}

	o.lines = append(o.lines, models.OrderLine{Item: item, Quantity: quantity})
	return nil
}

// Lines returns the order lines in the order they were added
func (o *Order) Lines() []models.OrderLine {
	lines := make([]models.OrderLine, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Len is the number of distinct items on the order
func (o *Order) Len() int {
	return len(o.lines)
}

// Bill prices the order with current catalog prices
func (o *Order) Bill() models.Bill {
	bill := o.policy.Price(o.lines)
	bill.OrderID = o.ID
	return bill
}

// TotalPrice is the amount due, equal to Bill().Total
func (o *Order) TotalPrice() decimal.Decimal {
	return o.Bill().Total
}

// generateOrderID generates a unique order ID using UUID
func generateOrderID() string {
	return uuid.New().String()
}
