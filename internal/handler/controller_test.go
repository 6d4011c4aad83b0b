package handler

import (
	"context"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SirviTusharChoudhary/InventoryPro/internal/alert"
	"github.com/SirviTusharChoudhary/InventoryPro/internal/inventory"
	"github.com/SirviTusharChoudhary/InventoryPro/internal/metrics"
	"github.com/SirviTusharChoudhary/InventoryPro/internal/models"
	"github.com/SirviTusharChoudhary/InventoryPro/internal/storage/sqlite"
)

type fixture struct {
	ctrl    *Controller
	store   *inventory.Store
	toasts  *alert.ToastQueue
	metrics *metrics.Metrics
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	kv, err := sqlite.New(filepath.Join(t.TempDir(), "inventory.db"))
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })

	store, err := inventory.Open(context.Background(), kv)
	require.NoError(t, err)

	m := metrics.New(prometheus.NewRegistry())
	toasts := alert.NewToastQueue(time.Minute)
	dispatcher := alert.NewDispatcher(nil, toasts, m)

	return &fixture{
		ctrl:    NewController(store, dispatcher, m),
		store:   store,
		toasts:  toasts,
		metrics: m,
	}
}

func (f *fixture) add(t *testing.T, name string, price float64, qty, min int) models.Item {
	t.Helper()
	res, err := f.ctrl.Add(context.Background(), name, price, qty, min, "")
	require.NoError(t, err)
	require.NotNil(t, res.Item)
	return *res.Item
}

func TestAdd(t *testing.T) {
	f := newFixture(t)

	res, err := f.ctrl.Add(context.Background(), "Widget", 9.99, 5, 2, "")
	require.NoError(t, err)
	assert.True(t, res.ResetForm)
	require.Len(t, res.View.Rows, 1)
	assert.Equal(t, "Widget", res.View.Rows[0].Name)
	assert.Equal(t, "₹49.95", res.View.TotalValueDisplay)
}

func TestAdd_ValidationFailureStillResetsForm(t *testing.T) {
	f := newFixture(t)

	res, err := f.ctrl.Add(context.Background(), "Widget", 0, 0, 0, "")
	var verr *inventory.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Violations, 3)
	assert.True(t, res.ResetForm)
	assert.Nil(t, res.Item)
	assert.Empty(t, res.View.Rows)
}

func TestApply_StepQtyRaisesLowStockOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	item := f.add(t, "Bolt", 1, 3, 1)

	res, err := f.ctrl.Apply(ctx, models.StepQty(item.ID, -1), "")
	require.NoError(t, err)
	assert.Nil(t, res.Alert)

	res, err = f.ctrl.Apply(ctx, models.StepQty(item.ID, -1), "")
	require.NoError(t, err)
	require.NotNil(t, res.Alert)
	assert.Equal(t, "Bolt is running low! Only 1 left.", res.Alert.Message)
	assert.Equal(t, 1, res.View.AlertCount)

	res, err = f.ctrl.Apply(ctx, models.StepQty(item.ID, -1), "")
	require.NoError(t, err)
	require.NotNil(t, res.Alert)
	assert.Equal(t, "Bolt has been removed (Out of Stock).", res.Alert.Message)
	assert.Empty(t, res.View.Rows)

	toasts := f.toasts.Active()
	require.Len(t, toasts, 2)
	assert.Equal(t, alert.KindLowStock, toasts[0].Kind)
	assert.Equal(t, alert.KindOutOfStock, toasts[1].Kind)
	assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.Alerts.WithLabelValues("out_of_stock")))
}

func TestApply_UnknownItemIsNoOp(t *testing.T) {
	f := newFixture(t)
	f.add(t, "Bolt", 1, 3, 1)

	res, err := f.ctrl.Apply(context.Background(), models.StepQty(12345, -1), "")
	require.NoError(t, err)
	assert.Nil(t, res.Alert)
	assert.Len(t, res.View.Rows, 1)
}

func TestApply_Delete(t *testing.T) {
	f := newFixture(t)
	a := f.add(t, "A", 1, 3, 1)
	b := f.add(t, "B", 1, 3, 1)

	res, err := f.ctrl.Apply(context.Background(), models.Delete(a.ID), "")
	require.NoError(t, err)
	assert.Nil(t, res.Alert, "deletion raises no alert")
	require.Len(t, res.View.Rows, 1)
	assert.Equal(t, b.ID, res.View.Rows[0].ID)
	assert.Empty(t, f.toasts.Active())
}

func TestApply_ManualEdit(t *testing.T) {
	ctx := context.Background()

	t.Run("begin marks the row editable", func(t *testing.T) {
		f := newFixture(t)
		item := f.add(t, "Gear", 2, 10, 3)

		res, err := f.ctrl.Apply(ctx, models.BeginEdit(item.ID), "")
		require.NoError(t, err)
		assert.Equal(t, item.ID, res.View.EditingID)
		assert.True(t, res.View.Rows[0].Editing)
	})

	t.Run("numeric commit sets qty and alerts on crossing", func(t *testing.T) {
		f := newFixture(t)
		item := f.add(t, "Gear", 2, 10, 3)
		_, err := f.ctrl.Apply(ctx, models.BeginEdit(item.ID), "")
		require.NoError(t, err)

		res, err := f.ctrl.Apply(ctx, models.CommitEdit(item.ID, " 2 "), "")
		require.NoError(t, err)
		require.NotNil(t, res.Alert)
		assert.Equal(t, alert.KindLowStock, res.Alert.Kind)
		assert.Equal(t, 2, res.View.Rows[0].Qty)
		assert.Zero(t, res.View.EditingID)
	})

	t.Run("non-numeric commit leaves the item unchanged", func(t *testing.T) {
		f := newFixture(t)
		item := f.add(t, "Gear", 2, 10, 3)
		_, err := f.ctrl.Apply(ctx, models.BeginEdit(item.ID), "")
		require.NoError(t, err)

		res, err := f.ctrl.Apply(ctx, models.CommitEdit(item.ID, "ten"), "")
		require.NoError(t, err)
		assert.Nil(t, res.Alert)
		assert.Equal(t, 10, res.View.Rows[0].Qty)
		assert.Zero(t, res.View.EditingID, "row returns to display mode")
	})

	t.Run("zero or negative commit removes the item", func(t *testing.T) {
		f := newFixture(t)
		item := f.add(t, "Gear", 2, 10, 3)

		res, err := f.ctrl.Apply(ctx, models.CommitEdit(item.ID, "-3"), "")
		require.NoError(t, err)
		require.NotNil(t, res.Alert)
		assert.Equal(t, alert.KindOutOfStock, res.Alert.Kind)
		assert.Empty(t, res.View.Rows)
	})

	t.Run("cancel returns to display mode", func(t *testing.T) {
		f := newFixture(t)
		item := f.add(t, "Gear", 2, 10, 3)
		_, err := f.ctrl.Apply(ctx, models.BeginEdit(item.ID), "")
		require.NoError(t, err)

		res, err := f.ctrl.Apply(ctx, models.Command{Kind: models.CommandCancelEdit, ItemID: item.ID}, "")
		require.NoError(t, err)
		assert.Zero(t, res.View.EditingID)
	})
}

func TestApply_ManualEditInputs(t *testing.T) {
	tests := []struct {
		input   string
		wantQty int
	}{
		{"3.7", 3},
		{"1e2", 1},
		{" 8 kg", 8},
		{"abc", 5},
		{"", 5},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f := newFixture(t)
			item := f.add(t, "Widget", 4, 5, 2)
			_, err := f.ctrl.Apply(context.Background(), models.BeginEdit(item.ID), "")
			require.NoError(t, err)

			res, err := f.ctrl.Apply(context.Background(), models.CommitEdit(item.ID, tt.input), "")
			require.NoError(t, err)
			require.Len(t, res.View.Rows, 1)
			assert.Equal(t, tt.wantQty, res.View.Rows[0].Qty)
			assert.Zero(t, res.View.EditingID)
		})
	}
}

func TestApply_StepQtyLargeRestockKeepsItem(t *testing.T) {
	f := newFixture(t)
	item := f.add(t, "Widget", 4, 5, 2)

	res, err := f.ctrl.Apply(context.Background(), models.StepQty(item.ID, math.MaxInt), "")
	require.NoError(t, err)
	assert.Nil(t, res.Alert)
	require.Len(t, res.View.Rows, 1)
	assert.Equal(t, math.MaxInt, res.View.Rows[0].Qty)
	assert.Empty(t, f.toasts.Active())
}

func TestApply_UnknownCommand(t *testing.T) {
	f := newFixture(t)
	_, err := f.ctrl.Apply(context.Background(), models.Command{Kind: "explode"}, "")
	require.Error(t, err)
}

func TestSearchAndFilterDriveTotals(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.ctrl.Import(ctx, "name,price,qty,min\nA,10,2,5\nB,5,10,1", "")
	require.NoError(t, err)

	res := f.ctrl.View("B")
	assert.InDelta(t, 50, res.View.TotalValue, 0.001)
	assert.Equal(t, 0, res.View.AlertCount)

	res = f.ctrl.ToggleLowStockFilter("")
	require.Len(t, res.View.Rows, 1)
	assert.Equal(t, "A", res.View.Rows[0].Name)
	assert.InDelta(t, 20, res.View.TotalValue, 0.001)
	assert.Equal(t, 1, res.View.AlertCount)
	assert.True(t, res.View.FilterActive)

	res = f.ctrl.ToggleLowStockFilter("")
	assert.Len(t, res.View.Rows, 2)
	assert.False(t, res.View.FilterActive)
}

func TestImport(t *testing.T) {
	f := newFixture(t)

	res, err := f.ctrl.Import(context.Background(), "name,price,qty,min\nWidget,9.99,5,2\nBad,xx,0,1\n,1,5,1", "")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
	assert.Equal(t, 2, res.Skipped)
	require.Len(t, res.View.Rows, 1)
	assert.Equal(t, "Widget", res.View.Rows[0].Name)
	assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.ImportRows.WithLabelValues("imported")))
	assert.Equal(t, float64(2), testutil.ToFloat64(f.metrics.ImportRows.WithLabelValues("skipped")))
}

func TestReset(t *testing.T) {
	f := newFixture(t)
	f.add(t, "A", 1, 3, 1)

	res, err := f.ctrl.Reset(context.Background())
	require.NoError(t, err)
	assert.Empty(t, res.View.Rows)
	assert.Empty(t, f.store.Items())
}
