package console

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/Lixing-Zhang/restaurant-console/internal/menufile"
	"github.com/Lixing-Zhang/restaurant-console/internal/models"
	"github.com/shopspring/decimal"
)

// runAdmin shows the admin menu until the user goes back
func (s *Session) runAdmin(ctx context.Context) error {
	ok, err := s.authorizeAdmin()
	if err != nil || !ok {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		writeBanner(s.out, "ADMIN MENU")
		fmt.Fprintln(s.out, "1. Add an item")
		fmt.Fprintln(s.out, "2. Update an item")
		fmt.Fprintln(s.out, "3. Remove an item")
		fmt.Fprintln(s.out, "4. Import menu from a text file")
		fmt.Fprintln(s.out, "5. Export menu to a text file")
		fmt.Fprintln(s.out, "0. Go back")
		fmt.Fprintf(s.out, "%s\n\n", rule)
		fmt.Fprintln(s.out, "Please enter your choice (1 for Add, 2 for Update, 3 for Remove, 4 for Import, 5 for Export, 0 for Go back):")

		choice, err := s.readLine()
		if err != nil {
			return err
		}

		switch choice {
		case "0":
			return nil
		case "1":
			err = s.adminAdd(ctx)
		case "2":
			err = s.adminUpdate(ctx)
		case "3":
			err = s.adminRemove(ctx)
		case "4":
			err = s.adminImport(ctx)
		case "5":
			err = s.adminExport(ctx)
		default:
			writeNotice(s.out, "Invalid choice. Please try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) adminAdd(ctx context.Context) error {
	writeBanner(s.out, "ADD ITEM")

	fmt.Fprintln(s.out, "Enter the name of the item:")
	name, err := s.readLine()
	if err != nil {
		return err
	}

	price, ok, err := s.readPrice("Enter the price of the item:")
	if err != nil || !ok {
		return err
	}

	fmt.Fprintln(s.out, "Enter the category of the item (1 for FOOD, 2 for DRINK):")
	categoryChoice, err := s.readLine()
	if err != nil {
		return err
	}
	var category models.Category
	switch categoryChoice {
	case "1":
		category = models.CategoryFood
	case "2":
		category = models.CategoryDrink
	default:
		writeNotice(s.out, "Invalid category. Item not added.")
		return nil
	}

	if category == models.CategoryFood {
		fmt.Fprintln(s.out, "Enter the type of the food:")
	} else {
		fmt.Fprintln(s.out, "Enter the type of the drink:")
	}
	subtype, err := s.readLine()
	if err != nil {
		return err
	}

	yes, err := s.confirm("Are you sure you want to add this item? Enter yes to confirm, no to cancel:")
	if err != nil {
		return err
	}
	if !yes {
		fmt.Fprintf(s.out, "Item addition cancelled.\n%s\n\n", rule)
		return nil
	}

	if category == models.CategoryFood {
		s.admin.AddItem(ctx, models.NewFood(name, price, subtype))
	} else {
		s.admin.AddItem(ctx, models.NewDrink(name, price, subtype))
	}
	fmt.Fprintf(s.out, "Item added successfully.\n%s\n\n", rule)
	return nil
}

func (s *Session) adminUpdate(ctx context.Context) error {
	writeBanner(s.out, "UPDATE ITEM")
	RenderNumbered(s.out, s.menu.ListItems(ctx))

	number, ok, err := s.readItemNumber("Enter the number of the item you want to update:")
	if err != nil || !ok {
		return err
	}

	fmt.Fprintln(s.out, "Enter the new name of the item:")
	name, err := s.readLine()
	if err != nil {
		return err
	}

	price, ok, err := s.readPrice("Enter the new price of the item:")
	if err != nil || !ok {
		return err
	}

	yes, err := s.confirm("Are you sure you want to update this item? Enter yes to confirm, no to cancel:")
	if err != nil {
		return err
	}
	if !yes {
		fmt.Fprintf(s.out, "Item update cancelled.\n%s\n\n", rule)
		return nil
	}

	if s.admin.UpdateItem(ctx, number, name, price) {
		fmt.Fprintf(s.out, "Item updated successfully.\n%s\n\n", rule)
	} else {
		fmt.Fprintf(s.out, "There is no item number %d. Nothing was changed.\n%s\n\n", number, rule)
	}
	return nil
}

func (s *Session) adminRemove(ctx context.Context) error {
	writeBanner(s.out, "REMOVE ITEM")
	RenderNumbered(s.out, s.menu.ListItems(ctx))

	number, ok, err := s.readItemNumber("Enter the number of the item you want to remove:")
	if err != nil || !ok {
		return err
	}

	yes, err := s.confirm("Are you sure you want to remove this item? Enter yes to confirm, no to cancel:")
	if err != nil {
		return err
	}
	if !yes {
		fmt.Fprintf(s.out, "Item removal cancelled.\n%s\n\n", rule)
		return nil
	}

	if s.admin.RemoveItem(ctx, number) {
		fmt.Fprintf(s.out, "Item removed successfully.\n%s\n\n", rule)
	} else {
		fmt.Fprintf(s.out, "There is no item number %d. Nothing was changed.\n%s\n\n", number, rule)
	}
	return nil
}

func (s *Session) adminImport(ctx context.Context) error {
	writeBanner(s.out, "IMPORT MENU")

	fmt.Fprintln(s.out, "Enter the name of the text file:")
	path, err := s.readLine()
	if err != nil {
		return err
	}

	yes, err := s.confirm("Are you sure you want to import items from this file? Enter yes to confirm, no to cancel:")
	if err != nil {
		return err
	}
	if !yes {
		fmt.Fprintf(s.out, "Menu import cancelled.\n%s\n\n", rule)
		return nil
	}

	batch, err := s.admin.Import(ctx, path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		fmt.Fprintln(s.out, "File not found. Please try again.")
	case errors.Is(err, menufile.ErrMalformedLine):
		fmt.Fprintf(s.out, "The file could not be imported (%v). No items were added.\n", err)
	case err != nil:
		fmt.Fprintln(s.out, "An error occurred while trying to import the menu from a text file.")
	default:
		fmt.Fprintf(s.out, "Menu imported successfully. %d items added.\n", len(batch.Items))
	}
	fmt.Fprintf(s.out, "%s\n\n", rule)
	return nil
}

func (s *Session) adminExport(ctx context.Context) error {
	writeBanner(s.out, "EXPORT MENU")

	fmt.Fprintln(s.out, "Enter the name of the text file:")
	path, err := s.readLine()
	if err != nil {
		return err
	}

	yes, err := s.confirm("Are you sure you want to export the menu to this file? Enter yes to confirm, no to cancel:")
	if err != nil {
		return err
	}
	if !yes {
		fmt.Fprintf(s.out, "Menu export cancelled.\n%s\n\n", rule)
		return nil
	}

	if _, err := s.admin.Export(ctx, path); err != nil {
		fmt.Fprintln(s.out, "An error occurred while trying to export the menu to a text file.")
	} else {
		fmt.Fprintln(s.out, "Menu exported successfully.")
	}
	fmt.Fprintf(s.out, "%s\n\n", rule)
	return nil
}

// readPrice prompts for a non-negative decimal amount.
// ok is false when the input was rejected and the action should stop.
func (s *Session) readPrice(prompt string) (decimal.Decimal, bool, error) {
	fmt.Fprintln(s.out, prompt)
	text, err := s.readLine()
	if err != nil {
		return decimal.Zero, false, err
	}
	price, err := decimal.NewFromString(text)
	if err != nil || price.IsNegative() {
		writeNotice(s.out, "Invalid price. Please enter a non-negative number.")
		return decimal.Zero, false, nil
	}
	return price, true, nil
}

func (s *Session) readItemNumber(prompt string) (int, bool, error) {
	fmt.Fprintln(s.out, prompt)
	text, err := s.readLine()
	if err != nil {
		return 0, false, err
	}
	number, err := strconv.Atoi(text)
	if err != nil {
		writeNotice(s.out, "Invalid item number.")
		return 0, false, nil
	}
	return number, true, nil
}
