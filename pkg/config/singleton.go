package config

import (
	"fmt"
	"sync"
)

var (
	// globalConfig holds the process-wide configuration.
	globalConfig *Config

	// configMutex protects access to globalConfig.
	configMutex sync.RWMutex

	// initOnce ensures the configuration is installed only once.
	initOnce sync.Once
)

// Initialize loads the configuration file at path, applies VINDEX_*
// environment overrides and installs the result as the process-wide
// configuration. An empty path installs the built-in defaults, which lets
// offline commands run without a config file. Only the first call takes
// effect; later calls are no-ops.
//
// Returns an error if loading or validation fails, in which case nothing
// is installed.
func Initialize(path string) error {
	var initErr error

	initOnce.Do(func() {
		cfg := NewDefaultConfig()
		if path != "" {
			var err error
			cfg, err = LoadConfigWithEnvOverrides(path)
			if err != nil {
				initErr = err
				return
			}
		}
		SetConfig(cfg)
	})

	return initErr
}

// GetConfig returns the process-wide configuration, or nil before
// Initialize (or SetConfig) has succeeded. Thread-safe.
//
// Components should still take a *Config explicitly; the singleton exists
// for command entry points.
func GetConfig() *Config {
	configMutex.RLock()
	defer configMutex.RUnlock()
	return globalConfig
}

// SetConfig installs cfg as the process-wide configuration. Command entry
// points use it to publish a config after flag overrides have been
// applied. Thread-safe.
func SetConfig(cfg *Config) {
	configMutex.Lock()
	defer configMutex.Unlock()
	globalConfig = cfg
}

// ReloadConfig re-reads the configuration from path and swaps it in. The
// previous configuration stays installed when loading or validation
// fails.
func ReloadConfig(path string) error {
	cfg, err := LoadConfigWithEnvOverrides(path)
	if err != nil {
		return fmt.Errorf("failed to reload configuration: %w", err)
	}

	SetConfig(cfg)
	return nil
}

// MustGetConfig returns the process-wide configuration and panics when it
// has not been installed. For code paths that only run after a successful
// Initialize.
func MustGetConfig() *Config {
	cfg := GetConfig()
	if cfg == nil {
		panic("configuration not initialized: call Initialize first")
	}
	return cfg
}
