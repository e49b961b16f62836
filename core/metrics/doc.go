// Package metrics exposes reconciliation pass metrics to Prometheus.
package metrics
