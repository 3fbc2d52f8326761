package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"vindex-hq/vindex/pkg/config"
	"vindex-hq/vindex/pkg/registry"
)

// defaultConfigPath is used when --config is not given; a missing file at
// this path falls back to built-in defaults instead of failing.
const defaultConfigPath = "config.yaml"

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "vindex",
	Short: "Vindex - VIN decoder and validator",
	Long: `Vindex decodes and validates Vehicle Identification Numbers per ISO 3779.

It resolves the World Manufacturer Identifier to region, country and
manufacturer, verifies the weighted mod-11 check digit, and decodes the
candidate model years behind the cyclic year code. A built-in HTTP API
exposes the same operations with an optional audit trail.

For more information, visit: https://github.com/vindex-hq/vindex`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", defaultConfigPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.CompletionOptions.DisableDefaultCmd = false
}

// loadCLIConfig installs and returns the process-wide configuration for a
// command invocation. A missing file at the default path yields the
// built-in defaults; an explicitly named file must exist.
func loadCLIConfig() (*config.Config, error) {
	path := cfgFile
	if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
		if cfgFile != defaultConfigPath {
			return nil, fmt.Errorf("config file not found: %s", cfgFile)
		}
		path = ""
	}
	if err := config.Initialize(path); err != nil {
		return nil, err
	}
	return config.GetConfig(), nil
}

// newRegistry builds the WMI override registry from the config. The
// built-in tables alone serve when no overrides file is configured.
func newRegistry(cfg *config.Config) (*registry.Registry, error) {
	reg := registry.New()
	if cfg.Registry.OverridesPath != "" {
		if err := reg.LoadFile(cfg.Registry.OverridesPath); err != nil {
			return nil, fmt.Errorf("failed to load WMI overrides: %w", err)
		}
	}
	return reg, nil
}
