// Vindex is a VIN decoder and validator built on ISO 3779.
//
// It parses 17-character Vehicle Identification Numbers, providing:
//   - Structural validation (length and character set)
//   - Check digit verification (weighted mod-11 transliteration)
//   - World Manufacturer Identifier resolution (region, country, maker)
//   - Candidate model year decoding (30-year cyclic code)
//   - An HTTP API with optional audit trail and metrics
//
// Usage:
//
//	# Decode VINs on the command line
//	vindex decode WP0ZZZ998TS392124
//
//	# Validate structure and checksum, non-zero exit on failure
//	vindex validate 1M8GDM9AXKP042788
//
//	# Look up a manufacturer prefix
//	vindex wmi WP0
//
//	# Run the HTTP API
//	vindex serve --config /etc/vindex/config.yaml
//
//	# Query the audit trail
//	vindex audit query --since 24h
//
//	# Show version information
//	vindex version
package main

func main() {
	Execute()
}
