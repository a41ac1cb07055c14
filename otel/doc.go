// Package otel provides OpenTelemetry integration for minimap metrics.
//
// # Overview
//
// This package implements the minimap.MetricsCollector interface using
// OpenTelemetry, enabling observability with automatic percentile
// calculation and multi-backend support (Prometheus, Jaeger, DataDog,
// Grafana).
//
// The package is a separate module to keep the minimap core lightweight.
// Applications that don't need metrics collection don't pay for the OTEL
// dependencies.
//
// # Features
//
//   - Automatic Percentiles: OTEL Histograms calculate p50, p95, p99 latencies
//   - Multi-Backend Support: Works with any OTEL-compatible backend
//   - Hit Ratio Tracking: Real-time hit/miss monitoring
//   - Expiration Monitoring: Track how much each Expire sweep reclaims
//   - Thread-Safe: Lock-free, safe for concurrent use
//
// # Installation
//
//	go get github.com/agilira/minimap/otel
//
// # Quick Start
//
// Basic setup with Prometheus exporter:
//
//	import (
//	    "github.com/agilira/minimap"
//	    minimapotel "github.com/agilira/minimap/otel"
//	    "go.opentelemetry.io/otel/exporters/prometheus"
//	    "go.opentelemetry.io/otel/sdk/metric"
//	)
//
//	// Setup Prometheus exporter
//	exporter, err := prometheus.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Create OTEL MeterProvider
//	provider := metric.NewMeterProvider(metric.WithReader(exporter))
//	defer provider.Shutdown(context.Background())
//
//	// Create metrics collector
//	collector, err := minimapotel.NewOTelMetricsCollector(provider)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Configure map with metrics
//	m := minimap.NewMap(minimap.Config{
//	    BucketCount:      128,
//	    MetricsCollector: collector,
//	})
//
//	// Use the map normally - metrics are collected automatically
//	m.Set("key", "value", time.Minute)
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package otel
