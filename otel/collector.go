// Package otel provides OpenTelemetry integration for minimap metrics.
//
// This package implements the minimap.MetricsCollector interface using
// OpenTelemetry, enabling observability with automatic percentile
// calculation (p50, p95, p99) and multi-backend support (Prometheus,
// Jaeger, DataDog, Grafana).
//
// # Metrics Exposed
//
//   - minimap_get_latency_ns: Histogram of Get() operation latencies in nanoseconds
//   - minimap_set_latency_ns: Histogram of Set()/SetMany() operation latencies in nanoseconds
//   - minimap_remove_latency_ns: Histogram of Remove() operation latencies in nanoseconds
//   - minimap_get_hits_total: Counter of map hits
//   - minimap_get_misses_total: Counter of map misses
//   - minimap_expirations_total: Counter of entries hard-removed by Expire sweeps
//
// All metrics are automatically aggregated by the OTEL SDK and can be
// exported to any OTEL-compatible backend. Histograms automatically
// calculate percentiles (p50, p95, p99).
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package otel

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/metric"
)

// OTelMetricsCollector implements minimap.MetricsCollector using OpenTelemetry.
//
// Thread-safety: Safe for concurrent use by multiple goroutines.
// The underlying OTEL instruments are thread-safe and lock-free.
//
// Performance: Minimal overhead (<100ns per operation), allocation-free
// after initialization.
type OTelMetricsCollector struct {
	// OTEL instruments for recording metrics
	getLatency    metric.Int64Histogram // Get operation latency histogram
	setLatency    metric.Int64Histogram // Set operation latency histogram
	removeLatency metric.Int64Histogram // Remove operation latency histogram
	hits          metric.Int64Counter   // Map hits counter
	misses        metric.Int64Counter   // Map misses counter
	expirations   metric.Int64Counter   // Expirations counter
}

// Options for configuring OTelMetricsCollector.
type Options struct {
	// MeterName is the name of the OpenTelemetry meter.
	// Default: "github.com/agilira/minimap"
	MeterName string
}

// Option is a functional option for configuring OTelMetricsCollector.
type Option func(*Options)

// WithMeterName sets a custom meter name.
// This is useful for distinguishing metrics from multiple map instances
// or integrating with existing OTEL instrumentation.
func WithMeterName(name string) Option {
	return func(o *Options) {
		o.MeterName = name
	}
}

// NewOTelMetricsCollector creates a new OpenTelemetry metrics collector.
//
// Parameters:
//   - provider: OpenTelemetry MeterProvider. Must not be nil.
//   - opts: Optional configuration options (meter name, etc.)
//
// The collector creates Int64Histogram instruments for latencies (Get, Set,
// Remove) and Int64Counter instruments for hits, misses and expirations.
// All instruments are thread-safe and lock-free.
//
// Example:
//
//	exporter, _ := prometheus.New()
//	provider := metric.NewMeterProvider(metric.WithReader(exporter))
//	collector, err := NewOTelMetricsCollector(provider)
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewOTelMetricsCollector(provider metric.MeterProvider, opts ...Option) (*OTelMetricsCollector, error) {
	if provider == nil {
		return nil, errors.New("meter provider cannot be nil")
	}

	// Apply options
	options := Options{
		MeterName: "github.com/agilira/minimap",
	}
	for _, opt := range opts {
		opt(&options)
	}

	// Create meter
	meter := provider.Meter(options.MeterName)

	// Create collector
	collector := &OTelMetricsCollector{}

	// Create Get latency histogram
	var err error
	collector.getLatency, err = meter.Int64Histogram(
		"minimap_get_latency_ns",
		metric.WithDescription("Latency of Get operations in nanoseconds"),
		metric.WithUnit("ns"),
	)
	if err != nil {
		return nil, err
	}

	// Create Set latency histogram
	collector.setLatency, err = meter.Int64Histogram(
		"minimap_set_latency_ns",
		metric.WithDescription("Latency of Set operations in nanoseconds"),
		metric.WithUnit("ns"),
	)
	if err != nil {
		return nil, err
	}

	// Create Remove latency histogram
	collector.removeLatency, err = meter.Int64Histogram(
		"minimap_remove_latency_ns",
		metric.WithDescription("Latency of Remove operations in nanoseconds"),
		metric.WithUnit("ns"),
	)
	if err != nil {
		return nil, err
	}

	// Create hits counter
	collector.hits, err = meter.Int64Counter(
		"minimap_get_hits_total",
		metric.WithDescription("Total number of map hits"),
	)
	if err != nil {
		return nil, err
	}

	// Create misses counter
	collector.misses, err = meter.Int64Counter(
		"minimap_get_misses_total",
		metric.WithDescription("Total number of map misses"),
	)
	if err != nil {
		return nil, err
	}

	// Create expirations counter
	collector.expirations, err = meter.Int64Counter(
		"minimap_expirations_total",
		metric.WithDescription("Total number of entries removed by expiration sweeps"),
	)
	if err != nil {
		return nil, err
	}

	return collector, nil
}

// RecordGet records a Get operation.
//
// This method:
//   - Records latency to the Get latency histogram (used for percentile calculation)
//   - Increments either hits or misses counter
//
// Thread-safety: Safe for concurrent use.
func (c *OTelMetricsCollector) RecordGet(latencyNs int64, hit bool) {
	ctx := context.Background()

	// Record latency histogram
	c.getLatency.Record(ctx, latencyNs)

	// Increment hit/miss counter
	if hit {
		c.hits.Add(ctx, 1)
	} else {
		c.misses.Add(ctx, 1)
	}
}

// RecordSet records a Set or SetMany operation.
//
// Thread-safety: Safe for concurrent use.
func (c *OTelMetricsCollector) RecordSet(latencyNs int64) {
	c.setLatency.Record(context.Background(), latencyNs)
}

// RecordRemove records a Remove operation.
//
// Thread-safety: Safe for concurrent use.
func (c *OTelMetricsCollector) RecordRemove(latencyNs int64) {
	c.removeLatency.Record(context.Background(), latencyNs)
}

// RecordExpiration records one entry hard-removed by an Expire sweep.
//
// Thread-safety: Safe for concurrent use.
func (c *OTelMetricsCollector) RecordExpiration() {
	c.expirations.Add(context.Background(), 1)
}
