package vin

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors for programmatic detection with errors.Is. The typed
// errors below wrap these via Unwrap.
var (
	// ErrInvalidLength indicates an input that is not exactly 17 characters.
	ErrInvalidLength = errors.New("vin: invalid length")

	// ErrInvalidCharacters indicates characters outside the legal VIN
	// alphabet ([A-Z0-9] minus I, O, Q).
	ErrInvalidCharacters = errors.New("vin: invalid characters")

	// ErrIllegalCharacter indicates an alphabet-legal character that has
	// no entry in the table being consulted (transliteration or year code).
	ErrIllegalCharacter = errors.New("vin: illegal character")

	// ErrChecksumMismatch indicates that the computed check digit differs
	// from the one embedded at position 9.
	ErrChecksumMismatch = errors.New("vin: checksum mismatch")
)

// InvalidLengthError is returned when the input is not exactly 17
// characters long.
type InvalidLengthError struct {
	// Length is the actual rune count of the input.
	Length int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("invalid length %d, 17 characters expected", e.Length)
}

// Unwrap returns ErrInvalidLength.
func (e *InvalidLengthError) Unwrap() error { return ErrInvalidLength }

// InvalidCharactersError is returned when the input contains characters
// outside the legal VIN alphabet. Characters and Positions are parallel:
// Positions[i] is the zero-based index of Characters[i] in the input.
type InvalidCharactersError struct {
	Characters []rune
	Positions  []int
}

func (e *InvalidCharactersError) Error() string {
	return fmt.Sprintf("invalid characters %q at positions %v", string(e.Characters), e.Positions)
}

// Unwrap returns ErrInvalidCharacters.
func (e *InvalidCharactersError) Unwrap() error { return ErrInvalidCharacters }

// IllegalCharacterError is returned when an alphabet-legal character is
// semantically invalid in context: it has no transliteration entry, or
// it is not a recognized model-year code.
type IllegalCharacterError struct {
	// Char is the offending character.
	Char byte

	// Position is the zero-based index of the character, or -1 when the
	// character was supplied in isolation (e.g. a bare year code).
	Position int
}

func (e *IllegalCharacterError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("illegal character %q", e.Char)
	}
	return fmt.Sprintf("illegal character %q at position %d", e.Char, e.Position)
}

// Unwrap returns ErrIllegalCharacter.
func (e *IllegalCharacterError) Unwrap() error { return ErrIllegalCharacter }

// ChecksumError is returned when the check digit embedded at position 9
// does not match the computed checksum. It carries both characters for
// diagnostics.
type ChecksumError struct {
	// Expected is the check character the checksum arithmetic produces.
	Expected byte

	// Actual is the character found at position 9 of the input.
	Actual byte
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("checksum mismatch at position 9: expected %q, got %q", e.Expected, e.Actual)
}

// Unwrap returns ErrChecksumMismatch.
func (e *ChecksumError) Unwrap() error { return ErrChecksumMismatch }

// MarshalJSON renders the expected and actual characters as one-character
// strings rather than byte values.
func (e *ChecksumError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Expected string `json:"expected"`
		Actual   string `json:"actual"`
	}{
		Expected: string(e.Expected),
		Actual:   string(e.Actual),
	})
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (e *ChecksumError) UnmarshalJSON(data []byte) error {
	var raw struct {
		Expected string `json:"expected"`
		Actual   string `json:"actual"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.Expected) != 1 || len(raw.Actual) != 1 {
		return fmt.Errorf("vin: checksum characters must be single characters")
	}
	e.Expected = raw.Expected[0]
	e.Actual = raw.Actual[0]
	return nil
}
