package wmi

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownManufacturer is the sentinel wrapped by
// UnknownManufacturerError for detection with errors.Is.
var ErrUnknownManufacturer = errors.New("wmi: unknown manufacturer")

// Entry describes what a WMI prefix encodes.
type Entry struct {
	// Region is the manufacturing region (e.g. "Europe").
	Region string `json:"region"`

	// Country is the country of origin (e.g. "Germany/West Germany").
	// Empty when the two-character range is unassigned.
	Country string `json:"country,omitempty"`

	// Manufacturer is the registered manufacturer name (e.g. "Porsche car").
	Manufacturer string `json:"manufacturer"`
}

// UnknownManufacturerError is returned when no registered prefix of
// length 3, 2 or 1 matches the WMI.
type UnknownManufacturerError struct {
	// WMI is the prefix that failed to resolve, case-normalized.
	WMI string
}

func (e *UnknownManufacturerError) Error() string {
	return fmt.Sprintf("unknown manufacturer for WMI %q", e.WMI)
}

// Unwrap returns ErrUnknownManufacturer.
func (e *UnknownManufacturerError) Unwrap() error { return ErrUnknownManufacturer }

// Registry is the built-in WMI registry. The zero value is ready to use;
// it exists as a type so callers can substitute an overlay that shadows
// the built-in tables.
type Registry struct{}

// Lookup resolves a WMI prefix of 1 to 3 characters against the built-in
// tables.
func (Registry) Lookup(code string) (Entry, error) {
	return Lookup(code)
}

// Lookup resolves a WMI prefix of 1 to 3 characters. Resolution tries
// the longest available prefix first (3, then 2, then 1 characters);
// exact matches only. Region and country are resolved from their own
// range tables and may be present even when manufacturer resolution
// fails.
func Lookup(code string) (Entry, error) {
	code = strings.ToUpper(code)
	if len(code) > 3 {
		code = code[:3]
	}
	if code == "" {
		return Entry{}, &UnknownManufacturerError{WMI: code}
	}

	var name string
	found := false
	for n := len(code); n >= 1; n-- {
		if m, ok := manufacturers[code[:n]]; ok {
			name, found = m, true
			break
		}
	}
	if !found {
		return Entry{}, &UnknownManufacturerError{WMI: code}
	}

	entry := Entry{Manufacturer: name}
	entry.Region, _ = regionFor(code[0])
	if len(code) >= 2 {
		entry.Country, _ = countryFor(code[0], code[1])
	}
	return entry, nil
}

// Region returns the manufacturing region for a region code character.
func Region(c byte) (string, bool) {
	return regionFor(upper(c))
}

// Country returns the country of origin for a two-character country
// code. The second return value is false when the range is unassigned.
func Country(code string) (string, bool) {
	if len(code) < 2 {
		return "", false
	}
	return countryFor(upper(code[0]), upper(code[1]))
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
