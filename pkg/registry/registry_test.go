package registry

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"vindex-hq/vindex/pkg/vin/wmi"
)

func TestLookupFallsThroughToBuiltins(t *testing.T) {
	r := New()

	entry, err := r.Lookup("WP0")
	if err != nil {
		t.Fatalf("Lookup(WP0) failed: %v", err)
	}
	if entry.Manufacturer != "Porsche car" {
		t.Errorf("manufacturer = %q, want %q", entry.Manufacturer, "Porsche car")
	}
}

func TestSetShadowsBuiltins(t *testing.T) {
	r := New()
	if err := r.Set([]Override{
		{WMI: "WP0", Manufacturer: "Porsche AG"},
	}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	entry, err := r.Lookup("WP0")
	if err != nil {
		t.Fatalf("Lookup(WP0) failed: %v", err)
	}
	if entry.Manufacturer != "Porsche AG" {
		t.Errorf("manufacturer = %q, want override %q", entry.Manufacturer, "Porsche AG")
	}
	// Region and country come from the built-in range tables when the
	// override leaves them blank.
	if entry.Region != "Europe" {
		t.Errorf("region = %q, want %q", entry.Region, "Europe")
	}
	if entry.Country != "Germany/West Germany" {
		t.Errorf("country = %q, want %q", entry.Country, "Germany/West Germany")
	}
}

func TestSetLongestPrefixWins(t *testing.T) {
	r := New()
	if err := r.Set([]Override{
		{WMI: "7A", Manufacturer: "Acme Motors"},
		{WMI: "7AB", Manufacturer: "Acme Buses"},
	}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	entry, err := r.Lookup("7AB")
	if err != nil {
		t.Fatalf("Lookup(7AB) failed: %v", err)
	}
	if entry.Manufacturer != "Acme Buses" {
		t.Errorf("manufacturer = %q, want the three-character override", entry.Manufacturer)
	}

	entry, err = r.Lookup("7AZ")
	if err != nil {
		t.Fatalf("Lookup(7AZ) failed: %v", err)
	}
	if entry.Manufacturer != "Acme Motors" {
		t.Errorf("manufacturer = %q, want the two-character override", entry.Manufacturer)
	}
}

func TestSetValidation(t *testing.T) {
	tests := []struct {
		name      string
		overrides []Override
	}{
		{"empty wmi", []Override{{WMI: "", Manufacturer: "X"}}},
		{"too long wmi", []Override{{WMI: "ABCD", Manufacturer: "X"}}},
		{"missing manufacturer", []Override{{WMI: "7AB"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New()
			if err := r.Set(tt.overrides); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestSetNormalizesCase(t *testing.T) {
	r := New()
	if err := r.Set([]Override{{WMI: "7ab", Manufacturer: "Acme Motors"}}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	entry, err := r.Lookup("7ab")
	if err != nil {
		t.Fatalf("Lookup(7ab) failed: %v", err)
	}
	if entry.Manufacturer != "Acme Motors" {
		t.Errorf("manufacturer = %q, want %q", entry.Manufacturer, "Acme Motors")
	}
}

func TestUnknownCodeStillUnknown(t *testing.T) {
	r := New()
	_, err := r.Lookup("000")
	if !errors.Is(err, wmi.ErrUnknownManufacturer) {
		t.Errorf("expected ErrUnknownManufacturer, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "overrides.yaml")

	content := `overrides:
  - wmi: "7AB"
    manufacturer: "Acme Buses"
    country: "Australia"
  - wmi: "XX"
    manufacturer: "Example Motors"
    country: "Testland"
    region: "Europe"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write overrides file: %v", err)
	}

	r := New()
	if err := r.LoadFile(path); err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}

	entry, err := r.Lookup("7AB1234567890ABCD"[:3])
	if err != nil {
		t.Fatalf("Lookup(7AB) failed: %v", err)
	}
	if entry.Manufacturer != "Acme Buses" {
		t.Errorf("manufacturer = %q, want %q", entry.Manufacturer, "Acme Buses")
	}
	if entry.Country != "Australia" {
		t.Errorf("country = %q, want %q", entry.Country, "Australia")
	}
	if entry.Region != "Oceania" {
		t.Errorf("region = %q, want %q (filled from built-in table)", entry.Region, "Oceania")
	}

	entry, err = r.Lookup("XXA")
	if err != nil {
		t.Fatalf("Lookup(XXA) failed: %v", err)
	}
	if entry.Region != "Europe" {
		t.Errorf("region = %q, want explicit override %q", entry.Region, "Europe")
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		r := New()
		if err := r.LoadFile(filepath.Join(dir, "nope.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("malformed yaml keeps previous table", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")

		good := "overrides:\n  - wmi: \"7AB\"\n    manufacturer: \"Acme Buses\"\n"
		if err := os.WriteFile(path, []byte(good), 0o644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
		r := New()
		if err := r.LoadFile(path); err != nil {
			t.Fatalf("initial load failed: %v", err)
		}

		if err := os.WriteFile(path, []byte("overrides: [not: closed"), 0o644); err != nil {
			t.Fatalf("failed to rewrite file: %v", err)
		}
		if err := r.LoadFile(path); err == nil {
			t.Fatal("expected parse error")
		}

		entry, err := r.Lookup("7AB")
		if err != nil {
			t.Fatalf("Lookup after failed reload: %v", err)
		}
		if entry.Manufacturer != "Acme Buses" {
			t.Errorf("manufacturer = %q, previous table should survive a failed reload", entry.Manufacturer)
		}
	})
}
