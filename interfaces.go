// interfaces.go: public interfaces for MiniMap
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package minimap

import "time"

// Map represents a bucketed, key-addressed associative store with optional
// per-entry TTL. All methods are safe for concurrent use: every operation
// serializes through a single exclusive lock, so all handles to the same
// storage observe one total order of operations.
type Map interface {
	// Set stores a key-value pair, creating the entry if absent or
	// replacing the value in place if present.
	//
	// When the key already exists, only the value is replaced: the
	// entry's stored expiration is left untouched and the original TTL
	// clock keeps running. Pass ttl > 0 to arm expiration on a new
	// entry, DefaultTTL (0) to use Config.DefaultTTL, or NoTTL to store
	// without expiration regardless of the configured default.
	Set(key string, value interface{}, ttl time.Duration)

	// SetMany stores several key-value pairs under a single lock
	// acquisition. keys and values must have equal length; otherwise a
	// MINIMAP_LENGTH_MISMATCH error is returned before any mutation and
	// the map is left entirely unchanged. The ttl applies to every new
	// entry in the batch, with the same semantics as Set.
	SetMany(keys []string, values []interface{}, ttl time.Duration) error

	// Get retrieves the value for a key.
	// Returns the value and true if the key is present and not expired.
	// A soft-expired entry (TTL elapsed but not yet swept) is reported
	// as absent.
	Get(key string) (value interface{}, found bool)

	// GetWithTTL is Get plus the entry's remaining time-to-live.
	// remaining is 0 for entries stored without expiration.
	GetWithTTL(key string) (value interface{}, remaining time.Duration, found bool)

	// Has checks if a key exists and is not expired, without touching
	// hit/miss accounting.
	Has(key string) bool

	// Remove detaches an entry and returns its value, ignoring
	// expiration status entirely: a soft-expired entry is still
	// returned. Returns nil and false if the key is absent.
	Remove(key string) (value interface{}, found bool)

	// Expire performs one full sweep over every bucket, physically
	// removing all entries whose TTL has elapsed, and returns the
	// number removed. There is no background sweeping: soft-expired
	// entries persist until the owner calls Expire or Remove.
	Expire() int

	// Len returns the total number of resident entries, including
	// soft-expired ones that have not been swept yet.
	Len() int

	// Buckets returns the bucket count fixed at construction.
	Buckets() int

	// Keys returns a snapshot of all resident keys, including
	// soft-expired ones, in bucket order.
	Keys() []string

	// Clear removes all entries and resets statistics.
	Clear()

	// Clone returns a new handle sharing this map's underlying storage.
	// Writes through one handle are immediately visible through every
	// other; no entries are copied.
	Clone() Map

	// SetDefaultTTL changes the TTL applied when Set is called with
	// DefaultTTL. It affects only entries created afterwards.
	SetDefaultTTL(ttl time.Duration)

	// Stats returns operation statistics.
	Stats() Stats

	// Close releases the map's entries. The map has no background
	// goroutines, so Close never blocks; it exists so callers can treat
	// MiniMap like any other closable store.
	Close() error
}

// Stats provides statistics about map usage.
type Stats struct {
	// Hits is the number of Get operations that found a live entry
	Hits uint64

	// Misses is the number of Get operations that found nothing, or
	// found only a soft-expired entry
	Misses uint64

	// Sets is the number of successful set operations
	Sets uint64

	// Removes is the number of Remove operations that detached an entry
	Removes uint64

	// Expirations is the number of entries hard-removed by Expire sweeps
	Expirations uint64

	// Size is the current number of resident entries
	Size int

	// Buckets is the bucket count fixed at construction
	Buckets int
}

// HitRatio returns the hit ratio as a percentage (0-100).
// Returns 0.0 if no Get operations have been performed yet.
// Formula: (Hits / (Hits + Misses)) * 100
func (s Stats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

// Logger defines a minimal logging interface with zero overhead.
// Implementations should use structured logging and be allocation-free.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keyvals ...interface{})

	// Info logs an info message with optional key-value pairs.
	Info(msg string, keyvals ...interface{})

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keyvals ...interface{})

	// Error logs an error message with optional key-value pairs.
	Error(msg string, keyvals ...interface{})
}

// NoOpLogger is a logger that does nothing. Used as default to avoid nil checks.
type NoOpLogger struct{}

// Debug does nothing (no-op implementation).
func (NoOpLogger) Debug(msg string, keyvals ...interface{}) {}

// Info does nothing (no-op implementation).
func (NoOpLogger) Info(msg string, keyvals ...interface{}) {}

// Warn does nothing (no-op implementation).
func (NoOpLogger) Warn(msg string, keyvals ...interface{}) {}

// Error does nothing (no-op implementation).
func (NoOpLogger) Error(msg string, keyvals ...interface{}) {}

// TimeProvider provides current time with caching for performance.
// This interface allows injecting optimized time implementations.
type TimeProvider interface {
	// Now returns the current time in nanoseconds since epoch.
	// This method must be very fast and allocation-free.
	Now() int64
}

// MetricsCollector defines an interface for collecting map operation metrics.
// Implementations can send metrics to Prometheus, DataDog, StatsD, or other
// monitoring systems. This interface is designed for zero overhead when the
// NoOp implementation is used.
//
// Thread-safety:
//   - All methods must be safe for concurrent use
//   - Multiple goroutines will call these methods simultaneously
type MetricsCollector interface {
	// RecordGet records a Get operation with its latency and hit/miss result.
	// latencyNs is the duration of the Get operation in nanoseconds.
	// hit indicates whether a live entry was found.
	RecordGet(latencyNs int64, hit bool)

	// RecordSet records a Set operation with its latency.
	RecordSet(latencyNs int64)

	// RecordRemove records a Remove operation with its latency.
	RecordRemove(latencyNs int64)

	// RecordExpiration records one entry hard-removed by an Expire sweep.
	RecordExpiration()
}

// NoOpMetricsCollector is a metrics collector that does nothing.
// Used as default to avoid nil checks and ensure zero overhead.
// All methods are inlined by the compiler for maximum performance.
type NoOpMetricsCollector struct{}

// RecordGet does nothing. Inlined by compiler.
func (NoOpMetricsCollector) RecordGet(latencyNs int64, hit bool) {}

// RecordSet does nothing. Inlined by compiler.
func (NoOpMetricsCollector) RecordSet(latencyNs int64) {}

// RecordRemove does nothing. Inlined by compiler.
func (NoOpMetricsCollector) RecordRemove(latencyNs int64) {}

// RecordExpiration does nothing. Inlined by compiler.
func (NoOpMetricsCollector) RecordExpiration() {}
