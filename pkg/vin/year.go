package vin

import "strings"

// yearAlphabet is the model-year code sequence. It skips I, O, Q (never
// legal in a VIN) and additionally U, Z and 0, which ISO 3779 excludes
// from the year position. The sequence repeats every 30 years.
const yearAlphabet = "ABCDEFGHJKLMNPRSTVWXY123456789"

// yearEpoch is the calendar year encoded by the first character of
// yearAlphabet in its first cycle.
const yearEpoch = 1980

// yearLookahead extends the decoding horizon past the reference year,
// because manufacturers assign model years up to two years in advance.
const yearLookahead = 2

// Years returns the candidate model years for a position-10 year code,
// oldest first. Candidates run from 1980 through refYear+2; the same
// code recurs every 30 years, so most codes yield two candidates.
//
// The reference year is explicit so the function stays deterministic;
// Decode supplies the current year.
func Years(code byte, refYear int) ([]int, error) {
	idx := strings.IndexByte(yearAlphabet, code)
	if idx < 0 {
		return nil, &IllegalCharacterError{Char: code, Position: -1}
	}
	horizon := refYear + yearLookahead
	var years []int
	for y := yearEpoch + idx; y <= horizon; y += len(yearAlphabet) {
		years = append(years, y)
	}
	return years, nil
}
