// Package vin parses and validates Vehicle Identification Numbers as
// defined by ISO 3779.
//
// A VIN is a 17-character code over the alphabet [A-Z0-9] excluding the
// letters I, O and Q. The package answers three questions about a
// candidate string:
//
//   - Is it structurally well-formed? (Validate)
//   - Does its embedded check digit match the computed checksum?
//     (VerifyChecksum)
//   - What manufacturer, country and region does it encode? (Decode)
//
// # Basic Usage
//
// Validate without checksum computation:
//
//	if err := vin.Validate("WP0ZZZ99ZTS392124"); err != nil {
//	    // wrong length or illegal characters
//	}
//
// Verify the mod-11 check digit at position 9:
//
//	if err := vin.VerifyChecksum("1M8GDM9AXKP042788"); err != nil {
//	    var cerr *vin.ChecksumError
//	    if errors.As(err, &cerr) {
//	        fmt.Println(cerr.Expected, cerr.Actual)
//	    }
//	}
//
// Decode manufacturer, country, region and candidate model years:
//
//	info, err := vin.Decode("wp0zzz998ts392124")
//	// info.Manufacturer == "Porsche car"
//	// info.Country      == "Germany/West Germany"
//	// info.Region       == "Europe"
//
// A checksum mismatch never fails Decode: the mismatch is reported in
// Info.Checksum so that callers (fraud tooling, auditing) still get the
// full decode of a forged or corrupted VIN.
//
// # Year Ambiguity
//
// The model-year code at position 10 cycles every 30 years, so a single
// character maps to more than one plausible calendar year. Decode
// returns the full candidate set and makes no attempt to disambiguate;
// callers that need a single year must bring external context such as
// a registration date.
//
// All operations are pure functions over immutable inputs and static
// lookup tables, and are safe for concurrent use.
package vin
