package alert

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SirviTusharChoudhary/InventoryPro/internal/metrics"
)

// Sink is a notification channel.
type Sink interface {
	Name() string
	Notify(ctx context.Context, a Alert) error
}

// Dispatcher delivers alerts to an optional system sink and the toast queue.
type Dispatcher struct {
	system  Sink
	toasts  *ToastQueue
	metrics *metrics.Metrics
}

// NewDispatcher creates a dispatcher. system may be nil; toasts is required.
func NewDispatcher(system Sink, toasts *ToastQueue, m *metrics.Metrics) *Dispatcher {
	return &Dispatcher{system: system, toasts: toasts, metrics: m}
}

// Toasts returns the in-app queue.
func (d *Dispatcher) Toasts() *ToastQueue {
	return d.toasts
}

// Dispatch delivers the alert. A system sink failure is logged and counted;
// the in-app banner is pushed regardless.
func (d *Dispatcher) Dispatch(ctx context.Context, a Alert) {
	d.metrics.AlertRaised(string(a.Kind))

	if d.system != nil {
		if err := d.system.Notify(ctx, a); err != nil {
			d.metrics.DeliveryFailed(d.system.Name())
			level := slog.LevelWarn
			if errors.Is(err, ErrPermissionDenied) || errors.Is(err, ErrRateLimited) {
				level = slog.LevelDebug
			}
			slog.Log(ctx, level, "System notification skipped, using toast instead",
				"channel", d.system.Name(),
				"item_id", a.ItemID,
				"error", err,
			)
		}
	}

	d.toasts.Push(a.Kind, a.Message)
	slog.Info("Stock alert", "kind", a.Kind, "item_id", a.ItemID, "message", a.Message)
}
