// config.go: configuration for MiniMap
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package minimap

import (
	"time"

	"github.com/agilira/go-timecache"
)

// Config holds configuration parameters for the map.
type Config struct {
	// BucketCount is the number of buckets the map is partitioned into.
	// It is fixed at construction and never resized. Must be > 0.
	// Default: DefaultBucketCount.
	BucketCount int

	// DefaultTTL is applied to new entries stored with ttl == DefaultTTL.
	// If 0, such entries never expire. Default: 0 (no expiration).
	// This value can be changed at runtime via Map.SetDefaultTTL,
	// which is how hot reload applies it.
	DefaultTTL time.Duration

	// Logger is used for debugging and monitoring.
	// If nil, NoOpLogger is used. Default: NoOpLogger.
	Logger Logger

	// TimeProvider provides current time for TTL calculations.
	// If nil, a default implementation is used. Default: system time.
	TimeProvider TimeProvider

	// MetricsCollector is used for collecting operation metrics
	// (latencies, hit/miss rates). If nil, NoOpMetricsCollector is used
	// (zero overhead). Default: NoOpMetricsCollector.
	// Use this to integrate with Prometheus, DataDog, StatsD, or other
	// monitoring systems.
	MetricsCollector MetricsCollector
}

// Validate checks configuration parameters and applies sensible defaults.
// Returns nil (no actual validation errors, only normalization).
//
// This method is automatically called by NewMap and NewGenericMap, so you
// typically don't need to call it manually. However, it's provided as a
// public API if you want to inspect the normalized configuration before
// creating a map.
//
// Default values applied:
//   - BucketCount: DefaultBucketCount (128) if <= 0
//   - DefaultTTL: 0 (no expiration) if < 0
//   - Logger: NoOpLogger{} if nil
//   - TimeProvider: systemTimeProvider{} if nil
//   - MetricsCollector: NoOpMetricsCollector{} if nil
func (c *Config) Validate() error {
	if c.BucketCount <= 0 {
		c.BucketCount = DefaultBucketCount
	}

	if c.DefaultTTL < 0 {
		c.DefaultTTL = 0
	}

	if c.Logger == nil {
		c.Logger = NoOpLogger{}
	}

	if c.TimeProvider == nil {
		c.TimeProvider = &systemTimeProvider{}
	}

	if c.MetricsCollector == nil {
		c.MetricsCollector = NoOpMetricsCollector{}
	}

	return nil
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BucketCount:      DefaultBucketCount,
		Logger:           NoOpLogger{},
		TimeProvider:     &systemTimeProvider{},
		MetricsCollector: NoOpMetricsCollector{},
	}
}

// systemTimeProvider is the default time provider using go-timecache.
// This provides ~121x faster time access compared to time.Now() with zero allocations.
type systemTimeProvider struct{}

func (t *systemTimeProvider) Now() int64 {
	return timecache.CachedTimeNano()
}
