// hot-reload.go: dynamic configuration with Argus integration
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package minimap

import (
	"sync"
	"time"

	"github.com/agilira/argus"
)

// HotConfig provides dynamic configuration reload capabilities using Argus.
// It watches a configuration file and automatically updates map settings
// when changes are detected.
//
// Only DefaultTTL can be applied to a running map: the store reads it under
// its lock on every insert. BucketCount is fixed at construction (resizing
// is out of scope), so bucket_count changes in the file are only reported
// through the logger.
type HotConfig struct {
	m       Map
	watcher *argus.Watcher
	logger  Logger
	mu      sync.RWMutex
	config  Config

	// OnReload is called after configuration is successfully reloaded.
	// This callback is optional and must be fast and non-blocking.
	OnReload func(oldConfig, newConfig Config)
}

// HotConfigOptions configures hot reload behavior.
type HotConfigOptions struct {
	// ConfigPath is the path to the configuration file to watch.
	// Supports JSON, YAML, TOML, HCL, INI, Properties formats.
	ConfigPath string

	// PollInterval is how often to check for configuration changes.
	// Default: 1 second. Minimum: 100ms.
	PollInterval time.Duration

	// OnReload is called after configuration is successfully reloaded.
	OnReload func(oldConfig, newConfig Config)

	// Logger for hot reload operations.
	// If nil, NoOpLogger is used.
	Logger Logger
}

// NewHotConfig creates a new hot-reloadable configuration for a map.
// It starts watching the configuration file immediately.
//
// Example configuration file (YAML):
//
//	map:
//	  bucket_count: 128
//	  default_ttl: "5m"
//
// Supported configuration keys:
//   - map.bucket_count (int): Bucket count the map should be built with.
//     Not applied dynamically; logged when it diverges from the running map.
//   - map.default_ttl (duration string): TTL applied to inserts that use
//     DefaultTTL (e.g. "1h", "30m"). Applied immediately.
func NewHotConfig(m Map, opts HotConfigOptions) (*HotConfig, error) {
	if opts.ConfigPath == "" {
		return nil, NewErrInvalidConfigPath()
	}

	if opts.PollInterval == 0 {
		opts.PollInterval = 1 * time.Second
	} else if opts.PollInterval < 100*time.Millisecond {
		opts.PollInterval = 100 * time.Millisecond
	}

	if opts.Logger == nil {
		opts.Logger = NoOpLogger{}
	}

	hc := &HotConfig{
		m:        m,
		logger:   opts.Logger,
		OnReload: opts.OnReload,
		config:   DefaultConfig(), // Start with defaults
	}

	// Create Argus config with specified PollInterval for fast file change detection
	argusConfig := argus.Config{
		PollInterval: opts.PollInterval,
	}

	// Use UniversalConfigWatcherWithConfig to pass custom poll interval
	watcher, err := argus.UniversalConfigWatcherWithConfig(opts.ConfigPath, hc.handleConfigChange, argusConfig)
	if err != nil {
		return nil, err
	}
	hc.watcher = watcher

	return hc, nil
}

// Start begins watching the configuration file for changes.
// Note: The watcher monitors file changes at the configured PollInterval.
func (hc *HotConfig) Start() error {
	// Check if already running to avoid ARGUS_WATCHER_BUSY error
	if hc.watcher.IsRunning() {
		return nil // Already started
	}
	return hc.watcher.Start()
}

// Stop stops watching the configuration file.
// Returns any error from stopping the watcher.
func (hc *HotConfig) Stop() error {
	return hc.watcher.Stop()
}

// GetConfig returns the current configuration (thread-safe).
func (hc *HotConfig) GetConfig() Config {
	hc.mu.RLock()
	defer hc.mu.RUnlock()
	return hc.config
}

// handleConfigChange is called by Argus when configuration changes.
func (hc *HotConfig) handleConfigChange(configData map[string]interface{}) {
	hc.mu.Lock()
	oldConfig := hc.config
	newConfig := hc.parseConfig(configData)
	hc.config = newConfig
	hc.mu.Unlock()

	// Apply dynamic configuration changes
	hc.applyChanges(oldConfig, newConfig)

	// Trigger callback if set
	if hc.OnReload != nil {
		hc.OnReload(oldConfig, newConfig)
	}
}

// parsePositiveInt extracts a positive integer from interface{} value.
// Supports both int and float64 types (YAML/JSON may vary).
func parsePositiveInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		if v > 0 {
			return v, true
		}
	case float64:
		if v > 0 {
			return int(v), true
		}
	}
	return 0, false
}

// parseDuration extracts a time.Duration from a string value.
func parseDuration(value interface{}) (time.Duration, bool) {
	if str, ok := value.(string); ok {
		if d, err := time.ParseDuration(str); err == nil && d >= 0 {
			return d, true
		}
	}
	return 0, false
}

// parseConfig extracts map configuration from Argus config data.
func (hc *HotConfig) parseConfig(data map[string]interface{}) Config {
	config := DefaultConfig()

	// Extract map section - Argus might nest it or provide it directly
	mapSection, ok := data["map"].(map[string]interface{})
	if !ok {
		// Try if the whole data IS the map section
		if _, hasBucketCount := data["bucket_count"]; hasBucketCount {
			mapSection = data
		} else if _, hasDefaultTTL := data["default_ttl"]; hasDefaultTTL {
			mapSection = data
		} else {
			return config
		}
	}

	// Parse BucketCount
	if bucketCount, ok := parsePositiveInt(mapSection["bucket_count"]); ok {
		config.BucketCount = bucketCount
	}

	// Parse DefaultTTL (string duration like "1h", "30m")
	if ttl, ok := parseDuration(mapSection["default_ttl"]); ok {
		config.DefaultTTL = ttl
	}

	return config
}

// applyChanges applies configuration changes to the running map.
func (hc *HotConfig) applyChanges(old, new Config) {
	if new.DefaultTTL != old.DefaultTTL {
		hc.m.SetDefaultTTL(new.DefaultTTL)
		hc.logger.Info("default TTL reloaded",
			"old", old.DefaultTTL.String(), "new", new.DefaultTTL.String())
	}

	// BucketCount is fixed at construction; changing it would require
	// rebuilding the map and rehashing every entry.
	if new.BucketCount != hc.m.Buckets() {
		hc.logger.Warn("bucket_count change requires map reconstruction and was not applied",
			"running", hc.m.Buckets(), "configured", new.BucketCount)
	}
}
