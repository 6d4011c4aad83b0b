// Package alert decides when a quantity change warrants a stock alert and
// delivers it to the desktop and in-app channels.
package alert

import (
	"fmt"

	"github.com/SirviTusharChoudhary/InventoryPro/internal/models"
)

// Title is shown as the heading of every notification.
const Title = "Stock Alert"

// Kind classifies an alert.
type Kind string

const (
	KindLowStock   Kind = "low_stock"
	KindOutOfStock Kind = "out_of_stock"
)

// Alert is a human-readable stock notification for one item.
type Alert struct {
	Kind    Kind
	ItemID  int64
	Name    string
	Qty     int
	Message string
}

// Evaluate returns the alert for an item after a quantity change, if any.
// item carries the post-change quantity (0 when the item was removed).
func Evaluate(item models.Item, previousQty int) (Alert, bool) {
	switch {
	case item.Qty == 0:
		return Alert{
			Kind:    KindOutOfStock,
			ItemID:  item.ID,
			Name:    item.Name,
			Message: fmt.Sprintf("%s has been removed (Out of Stock).", item.Name),
		}, true
	case previousQty > item.Min && item.Qty <= item.Min:
		return Alert{
			Kind:    KindLowStock,
			ItemID:  item.ID,
			Name:    item.Name,
			Qty:     item.Qty,
			Message: fmt.Sprintf("%s is running low! Only %d left.", item.Name, item.Qty),
		}, true
	default:
		return Alert{}, false
	}
}
