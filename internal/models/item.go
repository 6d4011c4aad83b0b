package models

// Status is the derived stock state of an item.
type Status string

const (
	// StatusLow means 0 < qty <= min.
	StatusLow Status = "LOW"

	// StatusOK means qty > min.
	StatusOK Status = "OK"
)

// Item represents a single stock-keeping unit in the inventory.
type Item struct {
	// ID is the unique identifier, assigned at creation and never reused.
	ID int64 `json:"id"`

	// Name is the display name (e.g., "Widget").
	Name string `json:"name"`

	// Price is the unit price in the display currency.
	Price float64 `json:"price"`

	// Qty is the current on-hand count.
	Qty int `json:"qty"`

	// Min is the reorder threshold. The item is LOW once Qty drops to Min or below.
	Min int `json:"min"`
}

// IsLow reports whether the item is at or below its threshold while still in stock.
func (i Item) IsLow() bool {
	return i.Qty > 0 && i.Qty <= i.Min
}

// Status returns LOW or OK.
func (i Item) Status() Status {
	if i.IsLow() {
		return StatusLow
	}
	return StatusOK
}

// Value is the stock value of the item (price × qty).
func (i Item) Value() float64 {
	return i.Price * float64(i.Qty)
}
