package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"vindex-hq/vindex/pkg/audit"
	"vindex-hq/vindex/pkg/cli"
	"vindex-hq/vindex/pkg/config"
	"vindex-hq/vindex/pkg/vin"
)

var decodeFlags struct {
	format string
}

var decodeCmd = &cobra.Command{
	Use:   "decode <vin>...",
	Short: "Decode one or more VINs",
	Long: `Decode VINs into manufacturer, country, region, candidate model years
and checksum verdict.

A checksum mismatch does not fail the decode; the verdict is part of the
result. Structural errors and unknown manufacturer prefixes do fail, and
the command exits non-zero when any input failed to decode.

Examples:
  # Decode a single VIN
  vindex decode WP0ZZZ998TS392124

  # Decode several, as JSON
  vindex decode --format json WP0ZZZ998TS392124 1M8GDM9AXKP042788

  # CSV for spreadsheets
  vindex decode --format csv WP0ZZZ998TS392124 > vins.csv`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)

	decodeCmd.Flags().StringVar(&decodeFlags.format, "format", "text", "output format: text, json, csv")
}

// decodeReport is the per-VIN result rendered by the decode command.
type decodeReport struct {
	VIN           string `json:"vin"`
	Region        string `json:"region,omitempty"`
	Country       string `json:"country,omitempty"`
	Manufacturer  string `json:"manufacturer,omitempty"`
	Years         []int  `json:"years,omitempty"`
	ValidChecksum bool   `json:"valid_checksum"`
	Error         string `json:"error,omitempty"`

	info *vin.Info
}

// decodeReports renders a batch of results; it implements cli.CSVTable.
type decodeReports []decodeReport

func (decodeReports) CSVHeader() []string {
	return []string{"vin", "region", "country", "manufacturer", "years", "valid_checksum", "error"}
}

func (r decodeReports) CSVRows() [][]string {
	rows := make([][]string, 0, len(r))
	for _, rep := range r {
		years := make([]string, 0, len(rep.Years))
		for _, y := range rep.Years {
			years = append(years, strconv.Itoa(y))
		}
		rows = append(rows, []string{
			rep.VIN,
			rep.Region,
			rep.Country,
			rep.Manufacturer,
			strings.Join(years, ";"),
			strconv.FormatBool(rep.ValidChecksum),
			rep.Error,
		})
	}
	return rows
}

// buildDecodeReport decodes one input against the given resolver.
func buildDecodeReport(resolver vin.Resolver, raw string) decodeReport {
	info, err := vin.DecodeWith(raw, resolver)
	if err != nil {
		return decodeReport{VIN: strings.ToUpper(raw), Error: err.Error()}
	}
	return decodeReport{
		VIN:           info.VIN.String(),
		Region:        info.Region,
		Country:       info.Country,
		Manufacturer:  info.Manufacturer,
		Years:         info.Years,
		ValidChecksum: info.ValidChecksum,
		info:          info,
	}
}

func runDecode(cmd *cobra.Command, args []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return cli.NewConfigError("", err.Error())
	}

	format, err := cli.ParseFormat(decodeFlags.format)
	if err != nil {
		return err
	}

	reg, err := newRegistry(cfg)
	if err != nil {
		return cli.NewCommandError("decode", err)
	}

	reports := make(decodeReports, 0, len(args))
	failed := 0
	for _, arg := range args {
		rep := buildDecodeReport(reg, arg)
		if rep.Error != "" {
			failed++
		}
		reports = append(reports, rep)
	}

	recordDecodes(cfg, reports)

	switch format {
	case cli.FormatText:
		outputDecodeText(os.Stdout, reports)
	default:
		if err := cli.NewFormatter(format).FormatTo(os.Stdout, reports); err != nil {
			return cli.NewCommandError("decode", err)
		}
	}

	if failed > 0 {
		return cli.NewCommandError("decode",
			fmt.Errorf("%d of %d VINs failed to decode", failed, len(args)))
	}
	return nil
}

// recordDecodes writes audit records for successful decodes when a
// persistent audit backend is configured. The in-memory backend is skipped
// since it cannot outlive the process. Failures are reported on stderr but
// never fail the command.
func recordDecodes(cfg *config.Config, reports decodeReports) {
	if !cfg.Audit.Enabled || cfg.Audit.Backend != "sqlite" {
		return
	}

	backend, err := openAuditBackend(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit backend unavailable: %v\n", err)
		return
	}

	recorder := audit.NewRecorder(backend, nil, nil)
	defer recorder.Close()

	ctx := context.Background()
	for _, rep := range reports {
		if rep.info == nil {
			continue
		}
		if err := recorder.Record(ctx, audit.NewRecord(rep.info, audit.SourceCLI)); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to record audit entry: %v\n", err)
		}
	}
}

func outputDecodeText(w io.Writer, reports decodeReports) {
	for i, rep := range reports {
		if i > 0 {
			fmt.Fprintln(w)
		}

		fmt.Fprintf(w, "VIN: %s\n", rep.VIN)
		if rep.Error != "" {
			fmt.Fprintf(w, "Error: %s\n", rep.Error)
			continue
		}

		fmt.Fprintf(w, "Manufacturer: %s\n", rep.Manufacturer)
		if rep.Country != "" {
			fmt.Fprintf(w, "Country: %s\n", rep.Country)
		}
		fmt.Fprintf(w, "Region: %s\n", rep.Region)
		if len(rep.Years) > 0 {
			years := make([]string, 0, len(rep.Years))
			for _, y := range rep.Years {
				years = append(years, strconv.Itoa(y))
			}
			fmt.Fprintf(w, "Model Years: %s\n", strings.Join(years, ", "))
		}
		if rep.ValidChecksum {
			fmt.Fprintln(w, "Checksum: ok")
		} else {
			fmt.Fprintln(w, "Checksum: MISMATCH")
		}
	}
}
