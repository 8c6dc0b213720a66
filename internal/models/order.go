package models

import "github.com/shopspring/decimal"

// OrderLine is one item and its requested quantity on an order
type OrderLine struct {
	Item     *MenuItem
	Quantity int
}

// Amount is the effective unit price times quantity, read at call time
func (l OrderLine) Amount() decimal.Decimal {
	return l.Item.EffectivePrice().Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// BillLine is a priced snapshot of an order line
type BillLine struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	Amount    decimal.Decimal
}

// Bill is the full price breakdown of an order
// Values are exact; rounding happens only when printed
type Bill struct {
	OrderID    string
	Lines      []BillLine
	Subtotal   decimal.Decimal
	Discount   decimal.Decimal
	Taxable    decimal.Decimal
	Tax        decimal.Decimal
	ServiceFee decimal.Decimal
	Total      decimal.Decimal
}
