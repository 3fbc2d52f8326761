// Package registry overlays the built-in WMI registry with
// user-supplied entries.
//
// The built-in tables in pkg/vin/wmi cover the common public
// assignments, but fleet operators and importers regularly meet codes
// the tables lack (new assignments, regional specials). An overlay file
// lists extra entries in YAML:
//
//	overrides:
//	  - wmi: "7F9"
//	    manufacturer: "Kea Campers"
//	    country: "New Zealand"
//	    region: "Oceania"
//
// Overrides shadow the built-in tables and follow the same
// longest-prefix-wins resolution; lookups that miss the overlay fall
// through to the built-in registry.
//
// When watching is enabled the overlay file is reloaded on change via
// fsnotify, debounced to avoid reload storms. Reloads are atomic: a
// file that fails to parse leaves the previous overlay in place.
package registry
