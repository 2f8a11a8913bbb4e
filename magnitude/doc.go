// Package magnitude converts human-readable component value strings
// ("330", "10k", "100uF", "9V") into base-unit float64 numbers.
//
// 🚀 What does it do?
//
//	The editor layer stores every component magnitude as free text.
//	Parse extracts the leading decimal numeral and applies a unit
//	multiplier from a substring scan:
//	  • "k" → ×1e3        (kilo)
//	  • "m" → ×1e6        (mega — see the caveat below)
//	  • "u" → ×1e-6       (micro)
//	  • "n" → ×1e-9       (nano)
//	  • "p" → ×1e-12      (pico)
//
// ⚠️ The "m = mega" convention:
//
//	The letter "m" maps to *mega*, not the SI milli, except inside the
//	"mhz"/"mv" carve-outs. That convention is unusual but load-bearing:
//	existing preset content depends on it, so Parse preserves it
//	literally instead of correcting it.
//
// Parse never fails: malformed input yields 0, and the caller applies
// its own component-specific fallback (1 kΩ resistors, 9 V sources).
//
// ⚙️ Usage:
//
//	import "github.com/voltlab/dcsim/magnitude"
//
//	r := magnitude.Parse("10k")   // 10000
//	c := magnitude.Parse("100uF") // 0.0001
//	v := magnitude.Parse("9V")    // 9
//	z := magnitude.Parse("???")   // 0
//
// Performance: O(len(text)) time, zero allocations beyond the lowered
// copy of the input.
package magnitude
