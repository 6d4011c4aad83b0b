package projection

import (
	"fmt"
	"strings"

	"github.com/SirviTusharChoudhary/InventoryPro/internal/models"
)

// CurrencySymbol prefixes every displayed amount.
const CurrencySymbol = "₹"

// Control is a row button bound to a typed command.
type Control struct {
	Label   string
	Command models.Command
}

// Row is one displayed inventory line
type Row struct {
	ID           int64
	Name         string
	Price        float64
	PriceDisplay string
	Qty          int
	Min          int
	Status       models.Status

	// Editing is true while the quantity cell shows the manual edit input.
	Editing bool

	Controls []Control
}

// View is the projection consumed by the presentation layer.
type View struct {
	Rows              []Row
	TotalValue        float64
	TotalValueDisplay string
	AlertCount        int
	FilterActive      bool

	// EditingID is the item whose quantity is being edited, 0 if none.
	EditingID int64
}

// Options carries presentation state that is not part of the inventory.
type Options struct {
	FilterText   string
	LowStockOnly bool
	EditingID    int64
}

// Project computes the visible rows and their aggregates.
// Algorithm:
//   - keep items whose name contains FilterText, case-insensitively
//   - if LowStockOnly, keep only items with qty <= min
//   - total value and alert count cover the kept rows only, so changing the
//     search text changes the totals even though no data changed
func Project(items []models.Item, opts Options) View {
	needle := strings.ToLower(opts.FilterText)
	view := View{
		Rows:         []Row{},
		FilterActive: opts.LowStockOnly,
	}

	for _, item := range items {
		if !strings.Contains(strings.ToLower(item.Name), needle) {
			continue
		}
		if opts.LowStockOnly && item.Qty > item.Min {
			continue
		}

		view.TotalValue += item.Value()
		if item.IsLow() {
			view.AlertCount++
		}

		editing := opts.EditingID != 0 && item.ID == opts.EditingID
		if editing {
			view.EditingID = item.ID
		}
		view.Rows = append(view.Rows, Row{
			ID:           item.ID,
			Name:         item.Name,
			Price:        item.Price,
			PriceDisplay: FormatPrice(item.Price),
			Qty:          item.Qty,
			Min:          item.Min,
			Status:       item.Status(),
			Editing:      editing,
			Controls:     controls(item.ID),
		})
	}

	view.TotalValueDisplay = FormatPrice(view.TotalValue)
	return view
}

func controls(id int64) []Control {
	return []Control{
		{Label: "-", Command: models.StepQty(id, -1)},
		{Label: "+", Command: models.StepQty(id, 1)},
		{Label: "Edit", Command: models.BeginEdit(id)},
		{Label: "Delete", Command: models.Delete(id)},
	}
}

// FormatPrice renders an amount with the currency symbol and two decimals.
func FormatPrice(amount float64) string {
	return fmt.Sprintf("%s%.2f", CurrencySymbol, amount)
}
