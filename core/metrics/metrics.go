package metrics

import (
	"net/http"

	"replenishment-service/core/reconcile"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus metric names.
const (
	MetricPassesTotal         = "replenishment_passes_total"
	MetricOrdersCreatedTotal  = "replenishment_orders_created_total"
	MetricPassDurationSeconds = "replenishment_pass_duration_seconds"
	MetricItemsScanned        = "replenishment_last_pass_items_scanned"
)

// Collector records reconciliation pass metrics on a private registry.
//
// Thread Safety: Safe for concurrent use by multiple goroutines.
type Collector struct {
	registry *prometheus.Registry

	passesTotal   *prometheus.CounterVec
	ordersCreated prometheus.Counter
	passDuration  prometheus.Histogram
	itemsScanned  prometheus.Gauge
}

// NewCollector creates a collector with its own registry, so several collectors
// (e.g. in tests) never conflict.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		passesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricPassesTotal,
			Help: "Reconciliation passes by outcome (success or failure kind).",
		}, []string{"outcome"}),
		ordersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: MetricOrdersCreatedTotal,
			Help: "Replenishment orders written to the ledger, including those from failed passes.",
		}),
		passDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    MetricPassDurationSeconds,
			Help:    "Duration of reconciliation passes.",
			Buckets: prometheus.DefBuckets,
		}),
		itemsScanned: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: MetricItemsScanned,
			Help: "Inventory items in the snapshot of the last pass that fetched one.",
		}),
	}

	c.registry.MustRegister(c.passesTotal, c.ordersCreated, c.passDuration, c.itemsScanned)
	return c
}

// ObservePass implements reconcile.Recorder.
func (c *Collector) ObservePass(result reconcile.PassResult) {
	c.passesTotal.WithLabelValues(result.Outcome()).Inc()
	c.ordersCreated.Add(float64(result.Created))
	c.passDuration.Observe(result.Elapsed.Seconds())
	if result.Scanned > 0 || result.Kind == reconcile.KindNone {
		c.itemsScanned.Set(float64(result.Scanned))
	}
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
