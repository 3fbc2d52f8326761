package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"vindex-hq/vindex/pkg/cli"
)

var wmiFlags struct {
	format string
}

var wmiCmd = &cobra.Command{
	Use:   "wmi <prefix>",
	Short: "Look up a World Manufacturer Identifier prefix",
	Long: `Resolve a 1-3 character WMI prefix to manufacturer, country and region.

The lookup is longest-prefix-wins: a 3-character code is tried first, then
its 2-character block, then the single leading character. Overrides from
the configured registry file shadow the built-in tables.

Examples:
  # Dedicated 3-character code
  vindex wmi WP0

  # Manufacturer block
  vindex wmi 1M

  # JSON output
  vindex wmi --format json JHM`,
	Args: cobra.ExactArgs(1),
	RunE: runWMI,
}

func init() {
	rootCmd.AddCommand(wmiCmd)

	wmiCmd.Flags().StringVar(&wmiFlags.format, "format", "text", "output format: text, json")
}

// wmiReport is the lookup result rendered by the wmi command.
type wmiReport struct {
	WMI          string `json:"wmi"`
	Manufacturer string `json:"manufacturer"`
	Country      string `json:"country,omitempty"`
	Region       string `json:"region,omitempty"`
}

func runWMI(cmd *cobra.Command, args []string) error {
	prefix := strings.ToUpper(args[0])
	if len(prefix) < 1 || len(prefix) > 3 {
		return cli.NewCommandError("wmi",
			fmt.Errorf("prefix must be 1 to 3 characters, got %d", len(prefix)))
	}

	cfg, err := loadCLIConfig()
	if err != nil {
		return cli.NewConfigError("", err.Error())
	}

	format, err := cli.ParseFormat(wmiFlags.format)
	if err != nil {
		return err
	}

	reg, err := newRegistry(cfg)
	if err != nil {
		return cli.NewCommandError("wmi", err)
	}

	entry, err := reg.Lookup(prefix)
	if err != nil {
		return cli.NewCommandError("wmi", err)
	}

	report := wmiReport{
		WMI:          prefix,
		Manufacturer: entry.Manufacturer,
		Country:      entry.Country,
		Region:       entry.Region,
	}

	switch format {
	case cli.FormatText:
		outputWMIText(os.Stdout, report)
	default:
		if err := cli.NewFormatter(format).FormatTo(os.Stdout, report); err != nil {
			return cli.NewCommandError("wmi", err)
		}
	}
	return nil
}

func outputWMIText(w io.Writer, report wmiReport) {
	fmt.Fprintf(w, "WMI: %s\n", report.WMI)
	fmt.Fprintf(w, "Manufacturer: %s\n", report.Manufacturer)
	if report.Country != "" {
		fmt.Fprintf(w, "Country: %s\n", report.Country)
	}
	if report.Region != "" {
		fmt.Fprintf(w, "Region: %s\n", report.Region)
	}
}
