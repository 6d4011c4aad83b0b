package projection

import (
	"math"
	"testing"

	"github.com/SirviTusharChoudhary/InventoryPro/internal/models"
)

func sampleInventory() []models.Item {
	return []models.Item{
		{ID: 1, Name: "Apple Crate", Price: 10, Qty: 2, Min: 5},
		{ID: 2, Name: "Banana Box", Price: 5, Qty: 10, Min: 1},
	}
}

func TestProject(t *testing.T) {
	tests := []struct {
		name         string
		items        []models.Item
		opts         Options
		wantIDs      []int64
		wantTotal    float64
		wantAlerts   int
		validateFunc func(t *testing.T, view View)
	}{
		{
			name:       "empty search shows everything",
			items:      sampleInventory(),
			opts:       Options{},
			wantIDs:    []int64{1, 2},
			wantTotal:  70,
			wantAlerts: 1,
		},
		{
			name:       "search narrows totals to the match",
			items:      sampleInventory(),
			opts:       Options{FilterText: "B"},
			wantIDs:    []int64{2},
			wantTotal:  50,
			wantAlerts: 0,
		},
		{
			name:       "search is case-insensitive",
			items:      sampleInventory(),
			opts:       Options{FilterText: "cRaTe"},
			wantIDs:    []int64{1},
			wantTotal:  20,
			wantAlerts: 1,
		},
		{
			name:       "low stock filter keeps qty at or below min",
			items:      sampleInventory(),
			opts:       Options{LowStockOnly: true},
			wantIDs:    []int64{1},
			wantTotal:  20,
			wantAlerts: 1,
			validateFunc: func(t *testing.T, view View) {
				if !view.FilterActive {
					t.Error("FilterActive = false, want true")
				}
			},
		},
		{
			name:       "low stock filter combines with search",
			items:      sampleInventory(),
			opts:       Options{FilterText: "banana", LowStockOnly: true},
			wantIDs:    []int64{},
			wantTotal:  0,
			wantAlerts: 0,
		},
		{
			name: "qty equal to min is low",
			items: []models.Item{
				{ID: 3, Name: "Cog", Price: 1.5, Qty: 4, Min: 4},
			},
			opts:       Options{},
			wantIDs:    []int64{3},
			wantTotal:  6,
			wantAlerts: 1,
			validateFunc: func(t *testing.T, view View) {
				if view.Rows[0].Status != models.StatusLow {
					t.Errorf("status = %s, want LOW", view.Rows[0].Status)
				}
			},
		},
		{
			name:       "no match yields zero totals",
			items:      sampleInventory(),
			opts:       Options{FilterText: "zzz"},
			wantIDs:    []int64{},
			wantTotal:  0,
			wantAlerts: 0,
			validateFunc: func(t *testing.T, view View) {
				if view.TotalValueDisplay != "₹0.00" {
					t.Errorf("TotalValueDisplay = %q, want ₹0.00", view.TotalValueDisplay)
				}
			},
		},
		{
			name:       "editing row is flagged",
			items:      sampleInventory(),
			opts:       Options{EditingID: 2},
			wantIDs:    []int64{1, 2},
			wantTotal:  70,
			wantAlerts: 1,
			validateFunc: func(t *testing.T, view View) {
				if view.EditingID != 2 || !view.Rows[1].Editing || view.Rows[0].Editing {
					t.Errorf("editing flags wrong: EditingID=%d rows=%v/%v", view.EditingID, view.Rows[0].Editing, view.Rows[1].Editing)
				}
			},
		},
		{
			name:       "editing row hidden by search is not reported",
			items:      sampleInventory(),
			opts:       Options{FilterText: "apple", EditingID: 2},
			wantIDs:    []int64{1},
			wantTotal:  20,
			wantAlerts: 1,
			validateFunc: func(t *testing.T, view View) {
				if view.EditingID != 0 {
					t.Errorf("EditingID = %d, want 0", view.EditingID)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := Project(tt.items, tt.opts)

			if len(view.Rows) != len(tt.wantIDs) {
				t.Fatalf("rows = %d, want %d", len(view.Rows), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if view.Rows[i].ID != id {
					t.Errorf("row %d id = %d, want %d", i, view.Rows[i].ID, id)
				}
			}
			if math.Abs(view.TotalValue-tt.wantTotal) > 0.001 {
				t.Errorf("TotalValue = %v, want %v", view.TotalValue, tt.wantTotal)
			}
			if view.AlertCount != tt.wantAlerts {
				t.Errorf("AlertCount = %d, want %d", view.AlertCount, tt.wantAlerts)
			}
			if tt.validateFunc != nil {
				tt.validateFunc(t, view)
			}
		})
	}
}

func TestProject_RowControls(t *testing.T) {
	view := Project([]models.Item{{ID: 9, Name: "Gear", Price: 3, Qty: 7, Min: 2}}, Options{})
	row := view.Rows[0]

	want := []models.Command{
		models.StepQty(9, -1),
		models.StepQty(9, 1),
		models.BeginEdit(9),
		models.Delete(9),
	}
	if len(row.Controls) != len(want) {
		t.Fatalf("controls = %d, want %d", len(row.Controls), len(want))
	}
	for i, c := range row.Controls {
		if c.Command != want[i] {
			t.Errorf("control %d = %+v, want %+v", i, c.Command, want[i])
		}
	}
	if row.PriceDisplay != "₹3.00" {
		t.Errorf("PriceDisplay = %q", row.PriceDisplay)
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "₹0.00"},
		{9.99, "₹9.99"},
		{1234.5, "₹1234.50"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatPrice(tt.amount); got != tt.want {
				t.Errorf("FormatPrice(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}
