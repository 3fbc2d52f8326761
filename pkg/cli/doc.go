/*
Package cli provides command-line interface utilities for vindex.

The cli package includes output formatters, typed command errors and common
CLI helpers used by the vindex command.

Output Formatting:

The cli package supports multiple output formats (text, JSON, CSV) for
displaying command results:

	formatter := cli.NewFormatter(cli.FormatJSON)
	data := MyCommandResult{...}
	if err := formatter.FormatTo(os.Stdout, data); err != nil {
		return err
	}

CSV output requires the data to implement the CSVTable interface so the
formatter knows the header and row layout:

	func (r reports) CSVHeader() []string  { ... }
	func (r reports) CSVRows() [][]string  { ... }

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM:

	ctx := cli.SetupSignalHandler()
	// Use ctx for operations that should be cancelled on shutdown
*/
package cli
