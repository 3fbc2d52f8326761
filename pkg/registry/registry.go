package registry

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"vindex-hq/vindex/pkg/vin/wmi"
)

// Override is a single user-supplied WMI entry.
type Override struct {
	// WMI is the prefix the entry applies to, 1 to 3 characters.
	WMI string `yaml:"wmi"`

	// Manufacturer is the registered manufacturer name. Required.
	Manufacturer string `yaml:"manufacturer"`

	// Country optionally replaces the country the built-in range tables
	// would resolve.
	Country string `yaml:"country,omitempty"`

	// Region optionally replaces the region the leading character would
	// resolve.
	Region string `yaml:"region,omitempty"`
}

// overrideFile is the on-disk overlay format.
type overrideFile struct {
	Overrides []Override `yaml:"overrides"`
}

// Registry resolves WMI prefixes against user overrides first and the
// built-in tables second. It satisfies vin.Resolver. The zero value is
// ready to use and behaves like the built-in registry until overrides
// are loaded.
//
// Lookup is safe for concurrent use with LoadFile and Set; the override
// table is swapped atomically under a read-write lock.
type Registry struct {
	mu        sync.RWMutex
	overrides map[string]wmi.Entry
}

// New returns an empty overlay registry.
func New() *Registry {
	return &Registry{}
}

// Lookup resolves a WMI prefix. Override entries win over the built-in
// tables at every prefix length, and longer prefixes win over shorter
// ones within the overlay.
func (r *Registry) Lookup(code string) (wmi.Entry, error) {
	code = strings.ToUpper(code)
	if len(code) > 3 {
		code = code[:3]
	}

	r.mu.RLock()
	overrides := r.overrides
	r.mu.RUnlock()

	for n := len(code); n >= 1; n-- {
		if entry, ok := overrides[code[:n]]; ok {
			return entry, nil
		}
	}
	return wmi.Lookup(code)
}

// Set replaces the override table with the given entries.
func (r *Registry) Set(overrides []Override) error {
	table := make(map[string]wmi.Entry, len(overrides))
	for i, o := range overrides {
		code := strings.ToUpper(strings.TrimSpace(o.WMI))
		if len(code) < 1 || len(code) > 3 {
			return fmt.Errorf("override %d: wmi %q must be 1 to 3 characters", i, o.WMI)
		}
		if o.Manufacturer == "" {
			return fmt.Errorf("override %d (%s): manufacturer is required", i, code)
		}

		entry := wmi.Entry{
			Manufacturer: o.Manufacturer,
			Country:      o.Country,
			Region:       o.Region,
		}
		// Fill region/country from the built-in range tables when the
		// override does not pin them.
		if entry.Region == "" {
			entry.Region, _ = wmi.Region(code[0])
		}
		if entry.Country == "" && len(code) >= 2 {
			entry.Country, _ = wmi.Country(code[:2])
		}
		table[code] = entry
	}

	r.mu.Lock()
	r.overrides = table
	r.mu.Unlock()
	return nil
}

// LoadFile loads the override table from a YAML file, replacing any
// previously loaded overrides. On error the previous table is kept.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read overrides file %q: %w", path, err)
	}

	var file overrideFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse overrides file %q: %w", path, err)
	}

	if err := r.Set(file.Overrides); err != nil {
		return fmt.Errorf("invalid overrides file %q: %w", path, err)
	}
	return nil
}

// Len returns the number of loaded overrides.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.overrides)
}
