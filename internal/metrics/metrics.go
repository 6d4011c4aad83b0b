// Package metrics defines the Prometheus collectors exported at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups every collector. A nil *Metrics is valid and records nothing,
// which keeps tests free of registry setup.
type Metrics struct {
	Items                *prometheus.GaugeVec
	InventoryValue       prometheus.Gauge
	Alerts               *prometheus.CounterVec
	NotificationFailures *prometheus.CounterVec
	ImportRows           *prometheus.CounterVec
	RPCDuration          *prometheus.HistogramVec
}

// New registers all collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Items: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "inventory",
			Name:      "items",
			Help:      "Number of items in the inventory by status.",
		}, []string{"status"}),
		InventoryValue: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "inventory",
			Name:      "value",
			Help:      "Total stock value of the full inventory.",
		}),
		Alerts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "inventory",
			Name:      "alerts_total",
			Help:      "Stock alerts raised, by kind.",
		}, []string{"kind"}),
		NotificationFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "inventory",
			Name:      "notification_failures_total",
			Help:      "Alert deliveries that failed, by channel.",
		}, []string{"channel"}),
		ImportRows: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "inventory",
			Name:      "import_rows_total",
			Help:      "CSV rows processed by outcome (imported, skipped).",
		}, []string{"outcome"}),
		RPCDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "inventory",
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency by procedure and result code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure", "code"}),
	}
}

// ObserveInventory records item counts and value.
func (m *Metrics) ObserveInventory(low, ok int, value float64) {
	if m == nil {
		return
	}
	m.Items.WithLabelValues("low").Set(float64(low))
	m.Items.WithLabelValues("ok").Set(float64(ok))
	m.InventoryValue.Set(value)
}

// AlertRaised counts one alert.
func (m *Metrics) AlertRaised(kind string) {
	if m == nil {
		return
	}
	m.Alerts.WithLabelValues(kind).Inc()
}

// DeliveryFailed counts one failed delivery on channel.
func (m *Metrics) DeliveryFailed(channel string) {
	if m == nil {
		return
	}
	m.NotificationFailures.WithLabelValues(channel).Inc()
}

// ImportProcessed counts the outcome of one import batch.
func (m *Metrics) ImportProcessed(imported, skipped int) {
	if m == nil {
		return
	}
	m.ImportRows.WithLabelValues("imported").Add(float64(imported))
	m.ImportRows.WithLabelValues("skipped").Add(float64(skipped))
}

// ObserveRPC records the latency of one call.
func (m *Metrics) ObserveRPC(procedure, code string, seconds float64) {
	if m == nil {
		return
	}
	m.RPCDuration.WithLabelValues(procedure, code).Observe(seconds)
}
