package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"vindex-hq/vindex/pkg/audit"
	"vindex-hq/vindex/pkg/audit/storage"
	"vindex-hq/vindex/pkg/cli"
	"vindex-hq/vindex/pkg/config"
)

var auditFlags struct {
	since  string
	wmi    string
	source string
	limit  int
	offset int
	format string
}

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Inspect the decode audit trail",
	Long: `Query the audit trail of recorded decode operations.

Audit records are written by the API server and the decode command when
auditing is enabled with a persistent backend.

Examples:
  # Records from the last 24 hours
  vindex audit query --since 24h

  # Decodes of Porsche VINs from the API
  vindex audit query --wmi WP0 --source api

  # Export as JSON
  vindex audit query --format json`,
}

var auditQueryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query audit records",
	RunE:  runAuditQuery,
}

func init() {
	rootCmd.AddCommand(auditCmd)
	auditCmd.AddCommand(auditQueryCmd)

	auditQueryCmd.Flags().StringVar(&auditFlags.since, "since", "", "only records newer than this duration (e.g. 24h)")
	auditQueryCmd.Flags().StringVar(&auditFlags.wmi, "wmi", "", "filter by WMI prefix")
	auditQueryCmd.Flags().StringVar(&auditFlags.source, "source", "", "filter by source: api, cli")
	auditQueryCmd.Flags().IntVar(&auditFlags.limit, "limit", 100, "max results")
	auditQueryCmd.Flags().IntVar(&auditFlags.offset, "offset", 0, "pagination offset")
	auditQueryCmd.Flags().StringVar(&auditFlags.format, "format", "text", "output format: text, json")
}

// openAuditBackend opens the audit storage backend named by the config.
func openAuditBackend(cfg *config.Config) (audit.Backend, error) {
	switch cfg.Audit.Backend {
	case "sqlite":
		return storage.NewSQLiteBackendWithConfig(storage.SQLiteBackendConfig{
			DBPath:             cfg.Audit.SQLite.Path,
			CheckpointInterval: cfg.Audit.SQLite.CheckpointInterval,
			BusyTimeout:        cfg.Audit.SQLite.BusyTimeout,
			MaxOpenConns:       cfg.Audit.SQLite.MaxOpenConns,
			MaxIdleConns:       cfg.Audit.SQLite.MaxIdleConns,
		})
	case "memory":
		return storage.NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("unsupported audit backend: %s", cfg.Audit.Backend)
	}
}

func runAuditQuery(cmd *cobra.Command, args []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return cli.NewConfigError("", err.Error())
	}
	if cfg.Audit.Backend != "sqlite" {
		return cli.NewCommandError("audit",
			fmt.Errorf("audit queries need a persistent backend, config has %q", cfg.Audit.Backend))
	}

	format, err := cli.ParseFormat(auditFlags.format)
	if err != nil {
		return err
	}

	query := &audit.Query{
		WMI:    auditFlags.wmi,
		Source: auditFlags.source,
		Limit:  auditFlags.limit,
		Offset: auditFlags.offset,
	}
	if auditFlags.since != "" {
		d, err := time.ParseDuration(auditFlags.since)
		if err != nil {
			return cli.NewCommandError("audit", fmt.Errorf("invalid --since duration: %w", err))
		}
		start := time.Now().Add(-d)
		query.StartTime = &start
	}

	backend, err := openAuditBackend(cfg)
	if err != nil {
		return cli.NewCommandError("audit", err)
	}
	defer backend.Close()

	records, err := backend.Query(context.Background(), query)
	if err != nil {
		return cli.NewCommandError("audit", fmt.Errorf("query failed: %w", err))
	}

	switch format {
	case cli.FormatText:
		outputAuditText(os.Stdout, records)
	default:
		if err := cli.NewFormatter(format).FormatTo(os.Stdout, records); err != nil {
			return cli.NewCommandError("audit", err)
		}
	}
	return nil
}

func outputAuditText(w io.Writer, records []*audit.Record) {
	fmt.Fprintf(w, "Total records: %d\n", len(records))
	if len(records) == 0 {
		return
	}
	fmt.Fprintln(w)

	for i, rec := range records {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Record ID: %s\n", rec.ID)
		fmt.Fprintf(w, "Timestamp: %s\n", rec.CreatedAt.Format(time.RFC3339))
		fmt.Fprintf(w, "VIN: %s\n", rec.VIN)
		fmt.Fprintf(w, "Manufacturer: %s\n", rec.Manufacturer)
		fmt.Fprintf(w, "Source: %s\n", rec.Source)
		if !rec.ValidChecksum {
			fmt.Fprintln(w, "Checksum: MISMATCH")
		}
	}
}
