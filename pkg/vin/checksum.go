package vin

// checkDigitPos is the zero-based index of the check digit. Its weight
// is zero, so it never contributes to the sum it validates.
const checkDigitPos = 8

// checkLetter is the check character used when the mod-11 remainder is
// 10, the only case where a letter appears at position 9.
const checkLetter = 'X'

// transliteration maps each legal VIN character to the numeric value
// used in checksum arithmetic. The assignment is fixed by ISO 3779:
// digits map to themselves and letters follow the repeating 1-9 pattern
// with I, O and Q absent.
var transliteration = map[byte]int{
	'A': 1, 'B': 2, 'C': 3, 'D': 4, 'E': 5, 'F': 6, 'G': 7, 'H': 8,
	'J': 1, 'K': 2, 'L': 3, 'M': 4, 'N': 5, 'P': 7, 'R': 9,
	'S': 2, 'T': 3, 'U': 4, 'V': 5, 'W': 6, 'X': 7, 'Y': 8, 'Z': 9,
	'0': 0, '1': 1, '2': 2, '3': 3, '4': 4,
	'5': 5, '6': 6, '7': 7, '8': 8, '9': 9,
}

// weights is the fixed per-position weight table. Position 9 (index 8)
// carries weight zero.
var weights = [Length]int{8, 7, 6, 5, 4, 3, 2, 10, 0, 9, 8, 7, 6, 5, 4, 3, 2}

// checkDigit computes the expected check character for a structurally
// valid VIN: transliterate every position except the check digit itself,
// multiply by the position weight, sum, and reduce mod 11. A remainder
// of 10 is written as the letter 'X'.
func (v VIN) checkDigit() (byte, error) {
	sum := 0
	for i := 0; i < Length; i++ {
		if i == checkDigitPos {
			continue
		}
		value, ok := transliteration[v[i]]
		if !ok {
			return 0, &IllegalCharacterError{Char: v[i], Position: i}
		}
		sum += value * weights[i]
	}
	if r := sum % 11; r < 10 {
		return byte('0' + r), nil
	}
	return checkLetter, nil
}

// verifyChecksum compares the computed check character against the one
// embedded at position 9.
func (v VIN) verifyChecksum() error {
	expected, err := v.checkDigit()
	if err != nil {
		return err
	}
	if actual := v[checkDigitPos]; actual != expected {
		return &ChecksumError{Expected: expected, Actual: actual}
	}
	return nil
}
