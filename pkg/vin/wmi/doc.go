// Package wmi holds the World Manufacturer Identifier registry: the
// static mapping from VIN prefixes to manufacturer, country and region.
//
// Manufacturer codes are assigned at varying granularity. Most
// manufacturers own full three-character codes ("WP0" is Porsche's
// passenger-car code), while some older assignments cover a whole
// two-character block ("1F" is Ford in the United States). Lookup
// therefore tries the 3-character prefix first and falls back to the
// 2- and then 1-character prefix; the longest exact match wins. There
// is no partial or fuzzy matching.
//
// Country is encoded by the first two characters as contiguous ranges
// (for example SA-SM is the United Kingdom), and region by the first
// character alone. Both resolve independently of the manufacturer tier,
// so a VIN with an unknown manufacturer prefix still has a well-defined
// region.
//
// All tables are compiled-in immutable constants, initialized once and
// safe for unrestricted concurrent reads.
package wmi
