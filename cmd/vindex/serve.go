package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"vindex-hq/vindex/pkg/audit"
	"vindex-hq/vindex/pkg/audit/retention"
	"vindex-hq/vindex/pkg/cli"
	"vindex-hq/vindex/pkg/config"
	"vindex-hq/vindex/pkg/registry"
	"vindex-hq/vindex/pkg/server"
	"vindex-hq/vindex/pkg/telemetry/logging"
	"vindex-hq/vindex/pkg/telemetry/metrics"
)

var serveFlags struct {
	listenAddress string
	logLevel      string
	dryRun        bool
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the vindex API server",
	Long: `Start the HTTP API server with the specified configuration.

The server decodes and validates VINs over HTTP, optionally recording an
audit trail of decodes and exposing prometheus metrics.

Examples:
  # Start with default config
  vindex serve

  # Start with custom config
  vindex serve --config /etc/vindex/config.yaml

  # Override listen address
  vindex serve --listen 0.0.0.0:8099

  # Validate config without starting server
  vindex serve --dry-run`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveFlags.listenAddress, "listen", "l", "", "override listen address")
	serveCmd.Flags().StringVar(&serveFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	serveCmd.Flags().BoolVar(&serveFlags.dryRun, "dry-run", false, "validate config without starting server")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}

	// Apply flag overrides
	if serveFlags.listenAddress != "" {
		cfg.Server.ListenAddress = serveFlags.listenAddress
	}
	if serveFlags.logLevel != "" {
		cfg.Telemetry.Logging.Level = serveFlags.logLevel
	}
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}
	// Publish the effective configuration after flag overrides.
	config.SetConfig(cfg)

	logger, err := logging.New(logging.Config{
		Level:     cfg.Telemetry.Logging.Level,
		Format:    cfg.Telemetry.Logging.Format,
		AddSource: cfg.Telemetry.Logging.AddSource,
	})
	if err != nil {
		return cli.NewConfigError("telemetry.logging", err.Error())
	}

	if serveFlags.dryRun {
		fmt.Println("✓ Configuration valid")
		return nil
	}

	printBanner()

	collector := metrics.NewCollector(nil)
	ctx := cli.SetupSignalHandler()

	// WMI override registry, optionally hot-reloaded.
	reg, err := newRegistry(cfg)
	if err != nil {
		return cli.NewCommandError("serve", err)
	}
	if cfg.Registry.OverridesPath != "" {
		collector.RecordOverrideReload(reg.Len())
		fmt.Printf("✓ WMI overrides loaded (%d entries)\n", reg.Len())
	}

	if cfg.Registry.Watch {
		watcher, err := registry.NewWatcher(reg, registry.WatcherConfig{
			Path:             cfg.Registry.OverridesPath,
			DebounceInterval: cfg.Registry.DebounceInterval,
		}, logger.Slog())
		if err != nil {
			return cli.NewCommandError("serve", fmt.Errorf("failed to create overrides watcher: %w", err))
		}
		go func() {
			if err := watcher.Watch(ctx); err != nil {
				logger.Error("overrides watcher stopped", "error", err)
			}
		}()
		defer watcher.Stop()
		fmt.Println("✓ WMI overrides watcher started")
	}

	// Audit trail (if enabled)
	var recorder *audit.Recorder
	if cfg.Audit.Enabled {
		logger.Info("initializing audit trail", "backend", cfg.Audit.Backend)

		backend, err := openAuditBackend(cfg)
		if err != nil {
			return cli.NewCommandError("serve", fmt.Errorf("failed to open audit backend: %w", err))
		}
		recorder = audit.NewRecorder(backend, logger, collector)
		defer recorder.Close()

		if cfg.Audit.Retention.Schedule != "" {
			pruner := retention.NewPruner(backend, &retention.Config{
				RetentionDays: cfg.Audit.Retention.Days,
				Schedule:      cfg.Audit.Retention.Schedule,
			}, logger.Slog())
			if err := pruner.Start(ctx); err != nil {
				logger.Warn("failed to start retention scheduler", "error", err)
			} else {
				defer pruner.Stop()
				if next := pruner.NextPruning(); next != nil {
					logger.Debug("audit retention scheduler started", "next_pruning", next)
				}
			}
		}

		fmt.Println("✓ Audit trail initialized")
	}

	srv := server.NewServer(cfg, reg, recorder, collector, logger)
	fmt.Printf("✓ Listening on %s\n", cfg.Server.ListenAddress)

	return srv.Start(ctx)
}

func printBanner() {
	fmt.Printf("Vindex v%s\n", Version)
	fmt.Printf("Loading configuration from: %s\n", cfgFile)
	fmt.Println("✓ Configuration loaded")
}
