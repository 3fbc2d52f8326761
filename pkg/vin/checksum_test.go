package vin

import (
	"errors"
	"testing"
)

func TestVerifyChecksum_KnownGood(t *testing.T) {
	// Mod-11 remainder 10, encoded as the letter X at position 9.
	if err := VerifyChecksum("1M8GDM9AXKP042788"); err != nil {
		t.Errorf("Expected valid checksum, got %v", err)
	}
}

func TestVerifyChecksum_Deterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		if err := VerifyChecksum("1M8GDM9AXKP042788"); err != nil {
			t.Fatalf("Run %d: expected valid checksum, got %v", i, err)
		}
	}
	if err := VerifyChecksum("1m8gdm9axkp042788"); err != nil {
		t.Errorf("Expected case-insensitive verification, got %v", err)
	}
}

func TestVerifyChecksum_Mismatch(t *testing.T) {
	err := VerifyChecksum("WP0ZZZ99ZTS392124")
	if err == nil {
		t.Fatal("Expected checksum mismatch")
	}
	if !errors.Is(err, ErrChecksumMismatch) {
		t.Fatalf("Expected ErrChecksumMismatch, got %v", err)
	}
	var cerr *ChecksumError
	if !errors.As(err, &cerr) {
		t.Fatalf("Expected *ChecksumError, got %T", err)
	}
	if cerr.Expected != '8' {
		t.Errorf("Expected check character 8, got %q", cerr.Expected)
	}
	if cerr.Actual != 'Z' {
		t.Errorf("Expected actual character Z, got %q", cerr.Actual)
	}
}

func TestVerifyChecksum_MutationAlwaysFlips(t *testing.T) {
	const valid = "1M8GDM9AXKP042788"

	// Replacing the check digit with any other character must fail, and
	// the failure must carry the original expected character.
	for _, c := range "ABCDEFGHJKLMNPRSTUVWXYZ0123456789" {
		if byte(c) == 'X' {
			continue
		}
		mutated := valid[:8] + string(c) + valid[9:]
		err := VerifyChecksum(mutated)
		if err == nil {
			t.Fatalf("Expected mismatch for check digit %q", c)
		}
		var cerr *ChecksumError
		if !errors.As(err, &cerr) {
			t.Fatalf("Expected *ChecksumError for check digit %q, got %T", c, err)
		}
		if cerr.Expected != 'X' {
			t.Errorf("Expected original check character X, got %q", cerr.Expected)
		}
		if cerr.Actual != byte(c) {
			t.Errorf("Expected actual character %q, got %q", c, cerr.Actual)
		}
	}
}

func TestVerifyChecksum_StructuralErrorPropagates(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"wrong length", "1M8GDM9AXKP04278", ErrInvalidLength},
		{"illegal character", "1M8GDM9AXKP04278$", ErrInvalidCharacters},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyChecksum(tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestCheckDigit_Table(t *testing.T) {
	tests := []struct {
		vin  string
		want byte
	}{
		{"1M8GDM9AXKP042788", 'X'},
		{"WP0ZZZ99ZTS392124", '8'},
		{"11111111111111111", '1'},
	}

	for _, tt := range tests {
		v := VIN(tt.vin)
		got, err := v.checkDigit()
		if err != nil {
			t.Fatalf("checkDigit(%q) failed: %v", tt.vin, err)
		}
		if got != tt.want {
			t.Errorf("checkDigit(%q) = %q, want %q", tt.vin, got, tt.want)
		}
	}
}

func TestTransliteration_CoversAlphabet(t *testing.T) {
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		value, ok := transliteration[c]
		if !ok {
			t.Errorf("Character %q missing from transliteration table", c)
			continue
		}
		if value < 0 || value > 9 {
			t.Errorf("Character %q maps to %d, want a value in [0, 9]", c, value)
		}
	}

	for _, c := range []byte{'I', 'O', 'Q'} {
		if _, ok := transliteration[c]; ok {
			t.Errorf("Reserved character %q must not have a transliteration entry", c)
		}
	}
}

func TestWeights_CheckDigitPositionIsZero(t *testing.T) {
	if weights[checkDigitPos] != 0 {
		t.Errorf("Weight at check digit position should be 0, got %d", weights[checkDigitPos])
	}
}
