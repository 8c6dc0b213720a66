package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Lixing-Zhang/restaurant-console/internal/service"
)

// runCustomer takes one order. It reports true once the order has been billed,
// and false when the customer switched to admin mode instead.
func (s *Session) runCustomer(ctx context.Context) (bool, error) {
	order := service.NewOrder(s.policy)
	s.log.Debug("order started", "order_id", order.ID)

	for {
		RenderMenu(s.out, s.menu.Sections(ctx))
		fmt.Fprintln(s.out, "Please enter the name of the item you want to order, 'admin' to switch to admin mode, or 'done' to finish your order:")
		fmt.Fprintf(s.out, "%s\n\n", rule)

		name, err := s.readLine()
		if err != nil {
			return false, err
		}

		switch {
		case strings.EqualFold(name, "done"):
			writeBanner(s.out, "THANK YOU FOR YOUR ORDER")
			return true, s.checkout(ctx, order)
		case strings.EqualFold(name, "admin"):
			writeBanner(s.out, "SWITCHING TO ADMIN MODE")
			s.log.Info("order abandoned for admin mode", "order_id", order.ID, "items", order.Len())
			return false, s.runAdmin(ctx)
		}

		item, err := s.menu.FindOrderable(ctx, name)
		if err != nil {
			writeNotice(s.out, "Invalid item name. Please try again.")
			continue
		}

		writeNotice(s.out, "You selected %s. How many do you want to order?", item.Name)
		qtyText, err := s.readLine()
		if err != nil {
			return false, err
		}
		quantity, err := strconv.Atoi(qtyText)
		if err != nil {
			writeNotice(s.out, "Invalid quantity. Please enter a whole number.")
			continue
		}

		if err := order.AddItem(item, quantity); err != nil {
			if errors.Is(err, service.ErrOrderFull) {
				s.log.Info("order item rejected", "order_id", order.ID, "item", item.Name, "error", err)
				writeNotice(s.out, "You can only order up to %d items at a time.", s.policy.MaxItems)
				continue
			}
			return false, err
		}
		writeNotice(s.out, "You added %d %s to your order.", quantity, item.Name)
	}
}

// checkout offers the promotion, shows the receipt and optionally prints the invoice.
// Running out of input at either question counts as no.
func (s *Session) checkout(ctx context.Context, order *service.Order) error {
	if s.offer.Eligible(order) {
		writeBanner(s.out, "SPECIAL OFFER FOR YOU")
		accept, err := s.confirm(fmt.Sprintf(
			"Your total exceeds %s. Would you like to buy 1 get 1 free %s? Enter yes to accept, no to decline:",
			s.offer.Threshold, s.offer.ItemName))
		if err != nil && !errors.Is(err, errInputClosed) {
			return err
		}
		if accept {
			s.applyOffer(ctx, order)
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	bill := order.Bill()
	receipt := RenderReceipt(bill)
	fmt.Fprint(s.out, receipt)
	s.log.Info("order completed", "order_id", bill.OrderID, "items", len(bill.Lines), "total", bill.Total)

	wantInvoice, err := s.confirm("Do you want to print the invoice to a text file? Enter yes to confirm, no to decline:")
	if err != nil && !errors.Is(err, errInputClosed) {
		return err
	}
	if !wantInvoice {
		return nil
	}

	if err := WriteInvoice(s.invoicePath, receipt); err != nil {
		s.log.Error("invoice write failed", "path", s.invoicePath, "error", err)
		fmt.Fprintln(s.out, "An error occurred while trying to print the invoice to a text file.")
		return nil
	}
	s.log.Info("invoice written", "path", s.invoicePath, "order_id", bill.OrderID)
	fmt.Fprintf(s.out, "Invoice has been printed to %s\n", s.invoicePath)
	return nil
}

func (s *Session) applyOffer(ctx context.Context, order *service.Order) {
	item, err := s.offer.Apply(ctx, s.menu, order)
	switch {
	case errors.Is(err, service.ErrPromotionUnavailable):
		writeNotice(s.out, "Sorry, %s is not available in the menu.", s.offer.ItemName)
	case errors.Is(err, service.ErrOrderFull):
		writeNotice(s.out, "You can only order up to %d items at a time.", s.policy.MaxItems)
	case err != nil:
		s.log.Error("promotion failed", "order_id", order.ID, "error", err)
		writeNotice(s.out, "Sorry, the offer could not be applied.")
	default:
		writeNotice(s.out, "You added %d %ss to your order for the price of 1.", s.offer.Quantity, item.Name)
	}
}
