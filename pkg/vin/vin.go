package vin

import (
	"errors"
	"strings"
	"time"

	"vindex-hq/vindex/pkg/vin/wmi"
)

// Length is the exact number of characters in a VIN.
const Length = 17

// alphabet is the set of characters legal anywhere in a VIN. The letters
// I, O and Q are reserved by ISO 3779 to avoid confusion with 1 and 0.
const alphabet = "ABCDEFGHJKLMNPRSTUVWXYZ0123456789"

// VIN is a canonical (uppercase) 17-character vehicle identification
// number. Values produced by New are always structurally valid; all
// methods are pure functions of the value.
type VIN string

// Resolver resolves a World Manufacturer Identifier prefix to a registry
// entry. The built-in registry in package wmi satisfies it, as does any
// overlay that shadows it with user-supplied entries.
type Resolver interface {
	Lookup(code string) (wmi.Entry, error)
}

// Info holds the decoded description of a VIN.
// It is created once per successful Decode and never mutated.
type Info struct {
	// VIN is the canonical uppercase form of the input.
	VIN VIN `json:"vin"`

	// Region is the manufacturing region encoded by the first character.
	Region string `json:"region"`

	// Country is the country of origin encoded by the first two
	// characters. Empty when the country range is unassigned.
	Country string `json:"country,omitempty"`

	// Manufacturer is the name registered for the WMI prefix.
	Manufacturer string `json:"manufacturer"`

	// Years are the candidate model years for the code at position 10,
	// oldest first. The year encoding cycles every 30 years, so more
	// than one candidate is the common case.
	Years []int `json:"years,omitempty"`

	// ValidChecksum reports whether the embedded check digit matches the
	// computed checksum.
	ValidChecksum bool `json:"valid_checksum"`

	// Checksum carries the expected and actual check characters when
	// ValidChecksum is false; nil otherwise.
	Checksum *ChecksumError `json:"checksum_error,omitempty"`
}

// New normalizes s to uppercase and validates its structure, returning
// the canonical VIN value.
func New(s string) (VIN, error) {
	v := VIN(strings.ToUpper(s))
	if err := v.validate(); err != nil {
		return "", err
	}
	return v, nil
}

// Validate reports whether the input is structurally well-formed: exactly
// 17 characters, all from the legal VIN alphabet. Case-insensitive. It
// does not compute the checksum.
func Validate(s string) error {
	_, err := New(s)
	return err
}

// VerifyChecksum validates the structure of the input and then verifies
// the mod-11 check digit embedded at position 9. A mismatch is reported
// as a *ChecksumError carrying both the expected and actual characters.
func VerifyChecksum(s string) error {
	v, err := New(s)
	if err != nil {
		return err
	}
	return v.verifyChecksum()
}

// Decode validates the input, resolves its WMI against the built-in
// registry, verifies the checksum and decodes candidate model years.
//
// A checksum mismatch does not fail the call: the outcome is embedded in
// Info.ValidChecksum and Info.Checksum so callers receive the full
// decode even for a forged or corrupted check digit. Structural errors
// and unknown WMI prefixes do fail the call.
func Decode(s string) (*Info, error) {
	return DecodeWith(s, wmi.Registry{})
}

// DecodeWith is Decode with a caller-supplied registry, typically an
// overlay that adds WMI entries the built-in table lacks.
func DecodeWith(s string, r Resolver) (*Info, error) {
	v, err := New(s)
	if err != nil {
		return nil, err
	}

	entry, err := r.Lookup(v.WMI())
	if err != nil {
		return nil, err
	}

	info := &Info{
		VIN:           v,
		Region:        entry.Region,
		Country:       entry.Country,
		Manufacturer:  entry.Manufacturer,
		ValidChecksum: true,
	}

	if err := v.verifyChecksum(); err != nil {
		// Structural problems were ruled out above, so the only possible
		// failure here is a mismatch.
		var cerr *ChecksumError
		if errors.As(err, &cerr) {
			info.ValidChecksum = false
			info.Checksum = cerr
		}
	}

	// Year decoding cannot fail for a structurally valid VIN unless the
	// position-10 character is not a year code ('0', 'U' or 'Z'); the
	// candidate set is simply left empty in that case.
	if years, err := Years(v.YearCode(), time.Now().Year()); err == nil {
		info.Years = years
	}

	return info, nil
}

// validate enforces length and alphabet constraints. Length is counted in
// runes so a 17-rune input with multi-byte garbage fails the alphabet
// check, not the length check. The legal alphabet is pure ASCII, so a VIN
// that validates is always 17 bytes and safe to index.
func (v VIN) validate() error {
	runes := []rune(string(v))
	if len(runes) != Length {
		return &InvalidLengthError{Length: len(runes)}
	}
	var chars []rune
	var positions []int
	for i, r := range runes {
		if !strings.ContainsRune(alphabet, r) {
			chars = append(chars, r)
			positions = append(positions, i)
		}
	}
	if len(chars) > 0 {
		return &InvalidCharactersError{Characters: chars, Positions: positions}
	}
	return nil
}

// WMI returns the World Manufacturer Identifier (characters 1-3).
func (v VIN) WMI() string { return string(v[:3]) }

// VDS returns the Vehicle Descriptor Section (characters 4-9).
func (v VIN) VDS() string { return string(v[3:9]) }

// VIS returns the Vehicle Identifier Section (characters 10-17).
func (v VIN) VIS() string { return string(v[9:]) }

// RegionCode returns the single-character region code.
func (v VIN) RegionCode() string { return string(v[:1]) }

// CountryCode returns the two-character country code.
func (v VIN) CountryCode() string { return string(v[:2]) }

// YearCode returns the model-year code character at position 10.
func (v VIN) YearCode() byte { return v[9] }

// CheckDigit returns the check character embedded at position 9.
func (v VIN) CheckDigit() byte { return v[8] }

// SmallManufacturer reports whether the vehicle was built by a
// manufacturer producing fewer than 1000 vehicles per year, which is
// encoded as '9' in the third WMI character.
func (v VIN) SmallManufacturer() bool { return v[2] == '9' }

// String returns the canonical string form.
func (v VIN) String() string { return string(v) }
