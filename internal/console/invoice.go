package console

import (
	"fmt"
	"os"
)

// WriteInvoice writes an already rendered receipt to path, replacing any existing file
func WriteInvoice(path, receipt string) error {
	if err := os.WriteFile(path, []byte(receipt), 0644); err != nil {
		return fmt.Errorf("failed to write invoice: %w", err)
	}
	return nil
}
