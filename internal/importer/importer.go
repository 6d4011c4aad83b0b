// Package importer turns CSV text into inventory items.
//
// The accepted shape is a header line followed by name,price,qty,min records.
// There is no quoting or escaping: the delimiter is a bare comma.
// Numeric fields are read leniently, taking the longest leading number
// ("5 units" reads as 5), and fall back to defaults when no number is present.
package importer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SirviTusharChoudhary/InventoryPro/internal/models"
	"github.com/SirviTusharChoudhary/InventoryPro/internal/numparse"
)

// Result is the outcome of parsing one file.
type Result struct {
	// Items are the accepted rows in file order, without ids.
	Items []models.Item

	// Skipped counts data lines that were dropped.
	Skipped int
}

// Appender receives an imported batch. The inventory store implements it.
type Appender interface {
	Append(ctx context.Context, items []models.Item) ([]models.Item, error)
}

// Parse drops the header line and parses the remaining lines.
func Parse(text string) Result {
	lines := strings.Split(text, "\n")
	if len(lines) <= 1 {
		return Result{}
	}
	return ParseRecords(lines[1:])
}

// ParseRecords parses data lines (no header).
func ParseRecords(lines []string) Result {
	var res Result
	for i, line := range lines {
		item, ok := parseLine(line)
		if !ok {
			// A trailing newline leaves one empty line that is not worth counting.
			if strings.TrimSpace(line) != "" {
				res.Skipped++
				slog.Debug("Skipping CSV line", "line", i+1, "content", line)
			}
			continue
		}
		res.Items = append(res.Items, item)
	}
	return res
}

func parseLine(line string) (models.Item, bool) {
	cols := strings.Split(line, ",")
	if len(cols) < 4 {
		return models.Item{}, false
	}
	name := strings.TrimSpace(cols[0])
	if name == "" {
		return models.Item{}, false
	}

	qty, _ := numparse.Int(cols[2])
	if qty <= 0 {
		return models.Item{}, false
	}
	price, _ := numparse.Float(cols[1])
	min, _ := numparse.Int(cols[3])

	return models.Item{
		Name:  name,
		Price: price,
		Qty:   qty,
		Min:   min,
	}, true
}

// Import parses text and appends the accepted rows to dst as one batch.
// When dst reports an error together with items it kept, those items are
// returned alongside the error.
func Import(ctx context.Context, dst Appender, text string) ([]models.Item, Result, error) {
	res := Parse(text)
	if len(res.Items) == 0 {
		return nil, res, nil
	}

	added, err := dst.Append(ctx, res.Items)
	if err != nil {
		return added, res, fmt.Errorf("failed to append imported items: %w", err)
	}
	return added, res, nil
}
