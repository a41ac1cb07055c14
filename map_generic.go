// map_generic.go: type-safe generic map API
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package minimap

import (
	"fmt"
	"strconv"
	"time"
)

// GenericMap provides a type-safe map interface using Go generics.
// K must be comparable (can be used as map key).
// V can be any type.
//
// Example:
//
//	m := minimap.NewGenericMap[string, User](minimap.Config{
//	    BucketCount: 128,
//	})
//	m.Set("user:123", user, time.Hour)
//	if value, found := m.Get("user:123"); found {
//	    fmt.Printf("User: %+v\n", value)
//	}
type GenericMap[K comparable, V any] struct {
	inner Map // Wraps the untyped map implementation
}

// NewGenericMap creates a new type-safe generic map.
func NewGenericMap[K comparable, V any](cfg Config) *GenericMap[K, V] {
	return &GenericMap[K, V]{
		inner: NewMap(cfg),
	}
}

// Set stores a key-value pair. Updating an existing key replaces the value
// only; the entry's expiration is untouched (see Map.Set).
func (m *GenericMap[K, V]) Set(key K, value V, ttl time.Duration) {
	// Fast path: convert key to string with zero allocations for common types
	keyStr := keyToString(key)
	m.inner.Set(keyStr, value, ttl)
}

// SetMany stores all key-value pairs under a single lock acquisition.
// Returns a MINIMAP_LENGTH_MISMATCH error, before any mutation, if keys and
// values differ in length.
func (m *GenericMap[K, V]) SetMany(keys []K, values []V, ttl time.Duration) error {
	if len(keys) != len(values) {
		return NewErrLengthMismatch(len(keys), len(values))
	}

	keyStrs := make([]string, len(keys))
	untyped := make([]interface{}, len(values))
	for i := range keys {
		keyStrs[i] = keyToString(keys[i])
		untyped[i] = values[i]
	}
	return m.inner.SetMany(keyStrs, untyped, ttl)
}

// Get retrieves a value from the map.
//
// Returns:
//   - value: The stored value (zero value if not found)
//   - found: true if key exists and is not expired
func (m *GenericMap[K, V]) Get(key K) (value V, found bool) {
	keyStr := keyToString(key)
	val, found := m.inner.Get(keyStr)
	if !found {
		var zero V
		return zero, false
	}

	// Type assertion - safe because we control what goes in
	typedValue, ok := val.(V)
	if !ok {
		// This should never happen if the map is used correctly
		var zero V
		return zero, false
	}

	return typedValue, true
}

// GetWithTTL is Get plus the entry's remaining time-to-live.
// remaining is 0 for entries stored without expiration.
func (m *GenericMap[K, V]) GetWithTTL(key K) (value V, remaining time.Duration, found bool) {
	keyStr := keyToString(key)
	val, remaining, found := m.inner.GetWithTTL(keyStr)
	if !found {
		var zero V
		return zero, 0, false
	}

	typedValue, ok := val.(V)
	if !ok {
		var zero V
		return zero, 0, false
	}

	return typedValue, remaining, true
}

// Has checks if a key exists and is not expired, without retrieving it.
func (m *GenericMap[K, V]) Has(key K) bool {
	keyStr := keyToString(key)
	return m.inner.Has(keyStr)
}

// Remove detaches an entry and returns its value, ignoring expiration
// status.
func (m *GenericMap[K, V]) Remove(key K) (value V, found bool) {
	keyStr := keyToString(key)
	val, found := m.inner.Remove(keyStr)
	if !found {
		var zero V
		return zero, false
	}

	typedValue, ok := val.(V)
	if !ok {
		var zero V
		return zero, false
	}

	return typedValue, true
}

// Expire sweeps the map and hard-removes every soft-expired entry.
// Returns the number removed.
func (m *GenericMap[K, V]) Expire() int {
	return m.inner.Expire()
}

// Len returns the number of resident entries, including soft-expired ones.
func (m *GenericMap[K, V]) Len() int {
	return m.inner.Len()
}

// Clone returns a new handle sharing the same underlying storage.
func (m *GenericMap[K, V]) Clone() *GenericMap[K, V] {
	return &GenericMap[K, V]{inner: m.inner.Clone()}
}

// SetDefaultTTL changes the TTL applied to entries stored with DefaultTTL.
func (m *GenericMap[K, V]) SetDefaultTTL(ttl time.Duration) {
	m.inner.SetDefaultTTL(ttl)
}

// keyToString converts a key of any comparable type to string efficiently.
// Uses type switch to avoid allocations for common types (string, int, uint).
// Falls back to fmt.Sprintf for other types.
func keyToString[K comparable](key K) string {
	// Type assertion to interface{} to enable type switch
	switch v := any(key).(type) {
	case string:
		// Zero allocation for string keys
		return v
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	default:
		// Fallback to fmt.Sprintf for other types (structs, arrays, etc.)
		// This allocates but is only used for uncommon key types
		return fmt.Sprintf("%v", key)
	}
}

// Clear removes all entries from the map and resets statistics.
func (m *GenericMap[K, V]) Clear() {
	m.inner.Clear()
}

// Stats returns current map statistics.
func (m *GenericMap[K, V]) Stats() Stats {
	return m.inner.Stats()
}

// Close releases the map's entries.
func (m *GenericMap[K, V]) Close() {
	_ = m.inner.Close()
}
