// Package api defines the wire messages of the inventory.v1.InventoryService.
//
// Messages are plain structs serialized as JSON. Every mutating request carries
// the caller's current search text so the response view matches what the user
// is looking at.
package api

// Control is a row button and the command it issues.
type Control struct {
	Label  string `json:"label"`
	Kind   string `json:"kind"`
	ItemID int64  `json:"item_id"`
	Delta  int    `json:"delta,omitempty"`
}

// Row is one displayed inventory line.
type Row struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Price        float64    `json:"price"`
	PriceDisplay string     `json:"price_display"`
	Qty          int        `json:"qty"`
	Min          int        `json:"min"`
	Status       string     `json:"status"`
	Editing      bool       `json:"editing"`
	Controls     []*Control `json:"controls"`
}

// View is the projected table with its aggregates.
type View struct {
	Rows              []*Row  `json:"rows"`
	TotalValue        float64 `json:"total_value"`
	TotalValueDisplay string  `json:"total_value_display"`
	AlertCount        int     `json:"alert_count"`
	FilterActive      bool    `json:"filter_active"`
	EditingID         int64   `json:"editing_id,omitempty"`
}

// Item is a stored inventory item.
type Item struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Qty   int     `json:"qty"`
	Min   int     `json:"min"`
}

// Alert is a stock alert raised by a mutation.
type Alert struct {
	Kind    string `json:"kind"`
	ItemID  int64  `json:"item_id"`
	Message string `json:"message"`
}

// Toast is an in-app banner.
type Toast struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Message   string `json:"message"`
	ExpiresAt int64  `json:"expires_at"` // Unix milliseconds
}

type GetViewRequest struct {
	Search string `json:"search"`
}

type GetViewResponse struct {
	View *View `json:"view"`
}

type AddItemRequest struct {
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Qty    int     `json:"qty"`
	Min    int     `json:"min"`
	Search string  `json:"search"`
}

type AddItemResponse struct {
	Item      *Item `json:"item"`
	View      *View `json:"view"`
	ResetForm bool  `json:"reset_form"`
}

type StepQtyRequest struct {
	ItemID int64  `json:"item_id"`
	Delta  int    `json:"delta"`
	Search string `json:"search"`
}

type StepQtyResponse struct {
	View  *View  `json:"view"`
	Alert *Alert `json:"alert,omitempty"`
}

type BeginEditRequest struct {
	ItemID int64  `json:"item_id"`
	Search string `json:"search"`
}

type BeginEditResponse struct {
	View *View `json:"view"`
}

// CommitEditRequest carries the raw text of the edit input; the server decides
// whether it is a number.
type CommitEditRequest struct {
	ItemID int64  `json:"item_id"`
	Value  string `json:"value"`
	Search string `json:"search"`
}

type CommitEditResponse struct {
	View  *View  `json:"view"`
	Alert *Alert `json:"alert,omitempty"`
}

type CancelEditRequest struct {
	ItemID int64  `json:"item_id"`
	Search string `json:"search"`
}

type CancelEditResponse struct {
	View *View `json:"view"`
}

type DeleteItemRequest struct {
	ItemID int64  `json:"item_id"`
	Search string `json:"search"`
}

type DeleteItemResponse struct {
	View *View `json:"view"`
}

type ResetAllRequest struct{}

type ResetAllResponse struct {
	View *View `json:"view"`
}

type ToggleLowStockFilterRequest struct {
	Search string `json:"search"`
}

type ToggleLowStockFilterResponse struct {
	View *View `json:"view"`
}

type ImportCSVRequest struct {
	Content string `json:"content"`
	Search  string `json:"search"`
}

type ImportCSVResponse struct {
	Imported int   `json:"imported"`
	Skipped  int   `json:"skipped"`
	View     *View `json:"view"`
}

type ListToastsRequest struct{}

type ListToastsResponse struct {
	Toasts []*Toast `json:"toasts"`
}

type DismissToastRequest struct {
	ID string `json:"id"`
}

type DismissToastResponse struct{}
