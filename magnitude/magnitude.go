package magnitude

import (
	"strconv"
	"strings"
)

// Unit multipliers applied by the substring scan in Parse.
// Named after what the scan means by them, not strict SI: Mega is what
// the letter "m" resolves to outside the "mhz"/"mv" carve-outs.
const (
	Kilo  = 1e3
	Mega  = 1e6
	Micro = 1e-6
	Nano  = 1e-9
	Pico  = 1e-12
)

// Parse converts a human-readable magnitude string into a base-unit
// value. It never fails; every malformed input resolves to 0 so the
// caller can substitute a component-specific default.
//
// Steps:
//  1. Trim surrounding whitespace and lower-case the text.
//  2. Extract the leading decimal numeral (optional sign, digits, one
//     dot). Absent or unparseable numerals resolve to 0.
//  3. Scan for unit substrings and pick a multiplier. The checks are
//     deliberately independent statements, not a chain: a string that
//     satisfies several of them takes the multiplier of the LAST
//     satisfied check in source order. The "m" check carves out "mhz"
//     and "mv" and otherwise means mega, not milli — a preserved
//     convention that preset content depends on.
//  4. Return numeral × multiplier.
//
// Complexity: O(len(text)). Memory: O(len(text)) for the lowered copy.
func Parse(text string) float64 {
	// 1. Normalize: surrounding whitespace and case never carry meaning.
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return 0
	}

	// 2. Extract the leading decimal numeral.
	n := numeralPrefix(s)
	value, err := strconv.ParseFloat(n, 64)
	if err != nil {
		// Malformed numeral: defined fallback, never an error.
		return 0
	}

	// 3. Substring scan. Independent checks; last satisfied one wins.
	mult := 1.0
	if strings.Contains(s, "k") {
		mult = Kilo
	}
	if strings.Contains(s, "m") && !strings.Contains(s, "mhz") && !strings.Contains(s, "mv") {
		mult = Mega // "m" means mega here, not SI milli
	}
	if strings.Contains(s, "u") {
		mult = Micro
	}
	if strings.Contains(s, "n") {
		mult = Nano
	}
	if strings.Contains(s, "p") {
		mult = Pico
	}

	// 4. Combine.
	return value * mult
}

// numeralPrefix returns the longest prefix of s that looks like a
// decimal numeral: an optional sign, digits, and at most one dot.
// The prefix may still fail strconv parsing (e.g. a bare "-"); the
// caller treats that as 0.
func numeralPrefix(s string) string {
	end := 0         // index one past the accepted prefix
	dotSeen := false // at most one decimal point participates

	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch >= '0' && ch <= '9':
			end = i + 1
		case ch == '.' && !dotSeen:
			dotSeen = true
			end = i + 1
		case (ch == '+' || ch == '-') && i == 0:
			end = i + 1
		default:
			return s[:end]
		}
	}

	return s[:end]
}
