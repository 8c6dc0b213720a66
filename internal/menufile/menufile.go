// Package menufile reads and writes the flat text menu format.
//
// Import records are "name,price,subtype,category", one per line with no header
// and no escaping. A line with fewer than four fields is malformed, with one
// exception: a three-field line whose last field is FOOD or DRINK is read as an
// export record with an empty subtype.
//
// Export records are "name,price,category" where price is the effective price.
// An exported file can be imported again; the items come back as plain food and
// drinks with no subtype, so discounts are lost.
package menufile

import (
	"bufio"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Lixing-Zhang/restaurant-console/internal/models"
	"github.com/shopspring/decimal"
)

var (
	ErrMalformedLine = errors.New("malformed menu line")
)

const (
	importFields = 4
	exportFields = 3
)

// Batch is the result of reading one import source
type Batch struct {
	Items   []*models.MenuItem
	Lines   int // non-blank lines read
	Skipped int // lines with a category other than FOOD or DRINK
}

// LoadFile opens and parses an import file.
// Files ending in .gz are decompressed on the fly.
func LoadFile(ctx context.Context, path string) (*Batch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open menu file: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		gzReader, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzReader.Close()
		r = gzReader
	}

	return Parse(ctx, r)
}

// Parse reads import records from r.
// The first malformed line fails the whole batch and no items are returned.
func Parse(ctx context.Context, r io.Reader) (*Batch, error) {
	batch := &Batch{}
	scanner := bufio.NewScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		batch.Lines++

		item, err := parseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if item == nil {
			batch.Skipped++
			continue
		}
		batch.Items = append(batch.Items, item)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	return batch, nil
}

// parseRecord returns nil, nil for a well-formed line with an unknown category
func parseRecord(line string) (*models.MenuItem, error) {
	parts := strings.Split(line, ",")

	var subtype, categoryField string
	switch {
	case len(parts) >= importFields:
		subtype, categoryField = strings.TrimSpace(parts[2]), parts[3]
	case len(parts) == exportFields && isCategory(parts[2]):
		categoryField = parts[2]
	default:
		return nil, fmt.Errorf("%w: want %d fields, got %d", ErrMalformedLine, importFields, len(parts))
	}

	name := strings.TrimSpace(parts[0])
	price, err := decimal.NewFromString(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid price %q", ErrMalformedLine, parts[1])
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("%w: negative price %s", ErrMalformedLine, price)
	}

	category, err := models.ParseCategory(categoryField)
	if err != nil {
		return nil, nil
	}

	if category == models.CategoryFood {
		return models.NewFood(name, price, subtype), nil
	}
	return models.NewDrink(name, price, subtype), nil
}

func isCategory(s string) bool {
	_, err := models.ParseCategory(s)
	return err == nil
}

// FormatRecord renders the export line for an item, without the newline
func FormatRecord(item *models.MenuItem) string {
	return fmt.Sprintf("%s,%s,%s", item.Name, item.EffectivePrice().String(), item.Category)
}

// Write writes one export record per item
func Write(ctx context.Context, w io.Writer, items []*models.MenuItem) error {
	bw := bufio.NewWriter(w)
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(bw, FormatRecord(item)); err != nil {
			return fmt.Errorf("failed to write menu line: %w", err)
		}
	}
	return bw.Flush()
}

// WriteFile creates or truncates path and writes the export records to it
func WriteFile(ctx context.Context, path string, items []*models.MenuItem) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create menu file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close menu file: %w", cerr)
		}
	}()

	return Write(ctx, f, items)
}
