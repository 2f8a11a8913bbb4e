// Package analysis types: Options, Result, and the verdict model.
package analysis

// Default thresholds used by DefaultOptions. Exported so rendering
// layers can label their UI with the same numbers the engine applies.
const (
	// DefaultPowerCeiling is the safety ceiling: any non-source,
	// non-ground, non-switch component dissipating more trips a danger
	// verdict.
	DefaultPowerCeiling = 0.25 // watts

	// DefaultLEDCurrentMin is the visibility floor: an LED carrying
	// more than this counts as lit.
	DefaultLEDCurrentMin = 0.005 // amperes

	// DefaultPoweredThreshold is the small voltage magnitude beyond
	// which a component pin counts as energized for the legacy
	// powered-set view.
	DefaultPoweredThreshold = 0.1 // volts
)

// Options configures the engine's thresholds.
//
// Fields:
//   - PowerCeiling     — watts; dissipation above it is an overheat.
//   - LEDCurrentMin    — amperes; LED current above it means "lit".
//   - PoweredThreshold — volts; pin magnitude above it means "powered".
//
// A nil *Options anywhere in this package means DefaultOptions().
type Options struct {
	PowerCeiling     float64
	LEDCurrentMin    float64
	PoweredThreshold float64
}

// DefaultOptions returns the engine's standard thresholds.
func DefaultOptions() Options {
	return Options{
		PowerCeiling:     DefaultPowerCeiling,
		LEDCurrentMin:    DefaultLEDCurrentMin,
		PoweredThreshold: DefaultPoweredThreshold,
	}
}

// withDefaults resolves a possibly-nil caller Options to a value.
func withDefaults(opts *Options) Options {
	if opts == nil {
		return DefaultOptions()
	}

	return *opts
}

// Result is one immutable analysis snapshot, keyed by component ID:
//
//   - Voltage — the potential at the component's p1 pin, in volts.
//   - Current — signed current through the component, in amperes
//     (branch current for sources, Ohm's law for resistive elements,
//     0 for ground and unmodeled kinds).
//   - Power   — |current × voltage-drop|, never negative, in watts.
//   - Powered — the legacy boolean view: true for every source, and
//     for any component with a pin beyond the powered threshold.
//
// A Result is created fresh on every Analyze call and never mutated
// afterwards; treat all four maps as frozen.
type Result struct {
	Voltage map[string]float64
	Current map[string]float64
	Power   map[string]float64
	Powered map[string]bool
}

// State is the verdict classification consumed by the rendering layer.
type State uint8

const (
	// StateNeutral means nothing noteworthy yet: keep simulating.
	StateNeutral State = iota

	// StateSuccess means the circuit works: an LED is visibly lit and
	// nothing overheats.
	StateSuccess

	// StateDanger means a component exceeded the power ceiling.
	StateDanger
)

// stateNames are the wire-facing tags the rendering layer consumes.
var stateNames = [...]string{
	StateNeutral: "neutral",
	StateSuccess: "success",
	StateDanger:  "danger",
}

// String returns the canonical tag for s. Complexity: O(1).
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}

	return stateNames[StateNeutral]
}

// Verdict is the engine's domain judgement over one Result.
//
// Message is short human-facing text; Detail, when present, names the
// implicated component together with the literal measurement that
// triggered the verdict.
type Verdict struct {
	State   State
	Message string
	Detail  string
}
