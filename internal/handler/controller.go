// Package handler translates user actions into inventory operations.
//
// Each entry point performs exactly one store call and then recomputes the
// projection with the caller's current search text.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SirviTusharChoudhary/InventoryPro/internal/alert"
	"github.com/SirviTusharChoudhary/InventoryPro/internal/importer"
	"github.com/SirviTusharChoudhary/InventoryPro/internal/inventory"
	"github.com/SirviTusharChoudhary/InventoryPro/internal/metrics"
	"github.com/SirviTusharChoudhary/InventoryPro/internal/models"
	"github.com/SirviTusharChoudhary/InventoryPro/internal/numparse"
	"github.com/SirviTusharChoudhary/InventoryPro/internal/projection"
)

// Result is what the presentation layer receives after an action.
type Result struct {
	View projection.View

	// Alert is set when the action raised a stock alert.
	Alert *alert.Alert

	// Item is the created item for Add.
	Item *models.Item

	// Imported counts rows added by Import; Skipped counts rows dropped.
	Imported int
	Skipped  int

	// ResetForm tells the add form to clear its inputs. Add sets it even when
	// validation fails.
	ResetForm bool
}

// Controller owns the edit state and routes commands to the store.
type Controller struct {
	store   *inventory.Store
	alerts  *alert.Dispatcher
	metrics *metrics.Metrics

	mu      sync.Mutex
	editing int64
}

// NewController creates a Controller.
func NewController(store *inventory.Store, alerts *alert.Dispatcher, m *metrics.Metrics) *Controller {
	return &Controller{store: store, alerts: alerts, metrics: m}
}

// Apply executes a row command.
func (c *Controller) Apply(ctx context.Context, cmd models.Command, search string) (Result, error) {
	switch cmd.Kind {
	case models.CommandStepQty:
		change, err := c.store.StepQty(ctx, cmd.ItemID, cmd.Delta)
		if err != nil {
			return c.result(search), err
		}
		return c.afterQtyChange(ctx, change, search), nil

	case models.CommandDelete:
		found, err := c.store.RemoveItem(ctx, cmd.ItemID)
		if err != nil {
			return c.result(search), err
		}
		c.endEdit(cmd.ItemID)
		slog.Info("Item deleted", "item_id", cmd.ItemID, "found", found)
		return c.result(search), nil

	case models.CommandBeginEdit:
		if _, ok := c.store.Get(cmd.ItemID); ok {
			c.mu.Lock()
			c.editing = cmd.ItemID
			c.mu.Unlock()
		}
		return c.result(search), nil

	case models.CommandCancelEdit:
		c.endEdit(cmd.ItemID)
		return c.result(search), nil

	case models.CommandCommitEdit:
		return c.commitEdit(ctx, cmd, search)

	default:
		return c.result(search), fmt.Errorf("unknown command %q", cmd.Kind)
	}
}

// commitEdit applies a manual quantity read from the leading integer of the
// input ("3.7" is 3). Input with no number leaves the item untouched and
// returns the row to display mode.
func (c *Controller) commitEdit(ctx context.Context, cmd models.Command, search string) (Result, error) {
	c.endEdit(cmd.ItemID)

	qty, ok := numparse.Int(cmd.Input)
	if !ok {
		slog.Debug("Ignoring non-numeric manual edit", "item_id", cmd.ItemID, "input", cmd.Input)
		return c.result(search), nil
	}

	change, err := c.store.SetQty(ctx, cmd.ItemID, qty)
	if err != nil {
		return c.result(search), err
	}
	return c.afterQtyChange(ctx, change, search), nil
}

func (c *Controller) afterQtyChange(ctx context.Context, change inventory.Change, search string) Result {
	if change.Removed {
		c.endEdit(change.Item.ID)
		slog.Info("Item removed at zero stock", "item_id", change.Item.ID, "name", change.Item.Name)
	}

	res := c.result(search)
	if !change.Found {
		return res
	}
	if a, ok := alert.Evaluate(change.Item, change.PreviousQty); ok {
		c.alerts.Dispatch(ctx, a)
		res.Alert = &a
	}
	return res
}

func (c *Controller) endEdit(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.editing == id {
		c.editing = 0
	}
}

// Add validates and creates an item from the add form.
func (c *Controller) Add(ctx context.Context, name string, price float64, qty, min int, search string) (Result, error) {
	item, err := c.store.AddItem(ctx, name, price, qty, min)
	res := c.result(search)
	res.ResetForm = true
	if err != nil {
		return res, err
	}

	slog.Info("Item added", "item_id", item.ID, "name", item.Name, "qty", item.Qty, "min", item.Min)
	res.Item = &item
	return res, nil
}

// Import appends every valid CSV row in one batch.
func (c *Controller) Import(ctx context.Context, text string, search string) (Result, error) {
	added, parsed, err := importer.Import(ctx, c.store, text)
	c.metrics.ImportProcessed(len(added), parsed.Skipped)

	res := c.result(search)
	res.Imported = len(added)
	res.Skipped = parsed.Skipped
	if err != nil {
		return res, err
	}

	slog.Info("CSV import finished", "imported", len(added), "skipped", parsed.Skipped)
	return res, nil
}

// Reset erases the whole inventory.
func (c *Controller) Reset(ctx context.Context) (Result, error) {
	c.mu.Lock()
	c.editing = 0
	c.mu.Unlock()

	if err := c.store.ResetAll(ctx); err != nil {
		return c.result(""), err
	}
	slog.Info("Inventory reset")
	return c.result(""), nil
}

// ToggleLowStockFilter flips the filter and re-projects.
func (c *Controller) ToggleLowStockFilter(search string) Result {
	active := c.store.ToggleLowStockFilter()
	slog.Debug("Low stock filter toggled", "active", active)
	return c.result(search)
}

// View re-projects without changing anything.
func (c *Controller) View(search string) Result {
	return c.result(search)
}

func (c *Controller) result(search string) Result {
	items, lowOnly := c.store.Snapshot()

	c.mu.Lock()
	editing := c.editing
	c.mu.Unlock()

	c.observe(items)
	return Result{View: projection.Project(items, projection.Options{
		FilterText:   search,
		LowStockOnly: lowOnly,
		EditingID:    editing,
	})}
}

// observe records whole-inventory gauges. Unlike the view totals these ignore
// search and filter.
func (c *Controller) observe(items []models.Item) {
	low, value := 0, 0.0
	for _, item := range items {
		if item.IsLow() {
			low++
		}
		value += item.Value()
	}
	c.metrics.ObserveInventory(low, len(items)-low, value)
}
