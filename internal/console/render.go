package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/Lixing-Zhang/restaurant-console/internal/models"
	"github.com/Lixing-Zhang/restaurant-console/internal/service"
)

const rule = "----------------------------------------"

// writeBanner writes a title framed by rules
func writeBanner(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n   %s\n%s\n\n", rule, title, rule)
}

// writeNotice writes a single framed message
func writeNotice(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\n%s\n%s\n%s\n\n", rule, fmt.Sprintf(format, args...), rule)
}

// formatItem renders one catalog entry. Discounts show their effective price and the
// amount taken off; food and drinks show name, price and subtype in columns.
func formatItem(item *models.MenuItem) string {
	if item.IsDiscount() {
		return fmt.Sprintf("Discount Name: %s, Price: %s, Category: %s, Discount: %s",
			item.Name, item.EffectivePrice().StringFixed(2), item.Category, item.DiscountAmount.StringFixed(2))
	}
	return fmt.Sprintf("%-20s $%-10s %-10s", item.Name, item.EffectivePrice().StringFixed(2), item.Subtype)
}

// RenderMenu writes the customer-facing menu: discounts first, then each category
func RenderMenu(w io.Writer, sections service.MenuSections) {
	fmt.Fprintf(w, "\n%s\n               OUR MENU                 \n%s\n", rule, rule)

	fmt.Fprint(w, "\nDISCOUNTS:\n\n")
	for _, item := range sections.Discounts {
		fmt.Fprintln(w, formatItem(item))
	}

	for _, group := range sections.Groups {
		fmt.Fprintf(w, "\n%s:\n\n", group.Category)
		for _, item := range group.Items {
			fmt.Fprintln(w, formatItem(item))
		}
	}
	fmt.Fprintf(w, "%s\n\n", rule)
}

// RenderNumbered writes the catalog with the 1-based numbers used by update and remove
func RenderNumbered(w io.Writer, items []*models.MenuItem) {
	fmt.Fprintln(w, "Current menu:")
	for i, item := range items {
		fmt.Fprintf(w, "%3d. [%s] %s\n", i+1, item.Kind, formatItem(item))
	}
	fmt.Fprintln(w)
}

// RenderReceipt renders a bill as printed on screen and in the invoice file
func RenderReceipt(bill models.Bill) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s\n               YOUR ORDER               \n%s\n", rule, rule)
	if bill.OrderID != "" {
		fmt.Fprintf(&b, "ORDER: %s\n", bill.OrderID)
	}
	for _, line := range bill.Lines {
		fmt.Fprintf(&b, "%-20s $%-5s x%-2d $%-5s\n",
			line.Name, line.UnitPrice.StringFixed(2), line.Quantity, line.Amount.StringFixed(2))
	}
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "SUBTOTAL: $%s\n", bill.Subtotal.StringFixed(2))
	fmt.Fprintf(&b, "DISCOUNT (10%%): $%s\n", bill.Discount.StringFixed(2))
	fmt.Fprintf(&b, "TAX (10%%): $%s\n", bill.Tax.StringFixed(2))
	fmt.Fprintf(&b, "SERVICE FEE: $%s\n", bill.ServiceFee.StringFixed(2))
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "TOTAL: $%s\n", bill.Total.StringFixed(2))
	fmt.Fprintf(&b, "%s\n\n", rule)

	return b.String()
}
