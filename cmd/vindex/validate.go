package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"vindex-hq/vindex/pkg/cli"
	"vindex-hq/vindex/pkg/vin"
)

var validateFlags struct {
	noChecksum bool
	format     string
}

var validateCmd = &cobra.Command{
	Use:   "validate <vin>...",
	Short: "Validate VIN structure and checksum",
	Long: `Validate one or more VINs.

Each input is checked for structure (17 characters from the legal VIN
alphabet) and, unless --no-checksum is given, the embedded check digit is
verified. Unlike decode, a checksum mismatch counts as a failure here and
the command exits non-zero when any input fails.

Examples:
  # Structure and checksum
  vindex validate 1M8GDM9AXKP042788

  # Structure only
  vindex validate --no-checksum WP0ZZZ99ZTS392124

  # Machine-readable verdicts
  vindex validate --format json 1M8GDM9AXKP042788 WP0ZZZ99ZTS392124`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&validateFlags.noChecksum, "no-checksum", false, "skip check digit verification")
	validateCmd.Flags().StringVar(&validateFlags.format, "format", "text", "output format: text, json, csv")
}

// checksum verdicts used by validateReport.
const (
	checksumOK       = "ok"
	checksumMismatch = "mismatch"
	checksumSkipped  = "skipped"
)

// validateReport is the per-VIN verdict rendered by the validate command.
type validateReport struct {
	VIN      string `json:"vin"`
	Valid    bool   `json:"valid"`
	Checksum string `json:"checksum"`
	Error    string `json:"error,omitempty"`
}

// passed reports whether the VIN passed every requested check.
func (r validateReport) passed() bool {
	return r.Valid && r.Checksum != checksumMismatch
}

// validateReports renders a batch of verdicts; it implements cli.CSVTable.
type validateReports []validateReport

func (validateReports) CSVHeader() []string {
	return []string{"vin", "valid", "checksum", "error"}
}

func (r validateReports) CSVRows() [][]string {
	rows := make([][]string, 0, len(r))
	for _, rep := range r {
		valid := "false"
		if rep.Valid {
			valid = "true"
		}
		rows = append(rows, []string{rep.VIN, valid, rep.Checksum, rep.Error})
	}
	return rows
}

// buildValidateReport checks one input structurally and, when requested,
// verifies its check digit.
func buildValidateReport(raw string, checkChecksum bool) validateReport {
	rep := validateReport{VIN: raw, Checksum: checksumSkipped}
	if v, err := vin.New(raw); err == nil {
		rep.VIN = v.String()
	}

	if !checkChecksum {
		if err := vin.Validate(raw); err != nil {
			rep.Error = err.Error()
			return rep
		}
		rep.Valid = true
		return rep
	}

	switch err := vin.VerifyChecksum(raw); {
	case err == nil:
		rep.Valid = true
		rep.Checksum = checksumOK
	case errors.Is(err, vin.ErrChecksumMismatch):
		rep.Valid = true
		rep.Checksum = checksumMismatch
		rep.Error = err.Error()
	default:
		rep.Error = err.Error()
	}
	return rep
}

func runValidate(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseFormat(validateFlags.format)
	if err != nil {
		return err
	}

	reports := make(validateReports, 0, len(args))
	failed := 0
	for _, arg := range args {
		rep := buildValidateReport(arg, !validateFlags.noChecksum)
		if !rep.passed() {
			failed++
		}
		reports = append(reports, rep)
	}

	switch format {
	case cli.FormatText:
		outputValidateText(os.Stdout, reports)
	default:
		if err := cli.NewFormatter(format).FormatTo(os.Stdout, reports); err != nil {
			return cli.NewCommandError("validate", err)
		}
	}

	if failed > 0 {
		return cli.NewCommandError("validate",
			fmt.Errorf("%d of %d VINs failed validation", failed, len(args)))
	}
	return nil
}

func outputValidateText(w io.Writer, reports validateReports) {
	for _, rep := range reports {
		switch {
		case rep.passed() && rep.Checksum == checksumSkipped:
			fmt.Fprintf(w, "✓ %s (structure ok, checksum skipped)\n", rep.VIN)
		case rep.passed():
			fmt.Fprintf(w, "✓ %s\n", rep.VIN)
		default:
			fmt.Fprintf(w, "✗ %s: %s\n", rep.VIN, rep.Error)
		}
	}
}
