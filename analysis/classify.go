package analysis

import (
	"fmt"

	"github.com/voltlab/dcsim/circuit"
)

// Classify evaluates the domain verdict over one Result.
//
// Scan order is a documented tie-break: the overheat scan runs to
// completion before the lit-LED scan even starts, so a circuit that
// simultaneously overheats a resistor and lights an LED always reports
// danger. Within each scan the first hit in component order wins.
//
//  1. Danger: any non-source, non-ground, non-switch component whose
//     dissipation exceeds the power ceiling.
//  2. Success: any LED carrying more than the lit-current floor.
//  3. Neutral: neither condition holds — still simulating.
//
// Detail strings name the implicated component (its label when set)
// and the literal measurement. Passing a nil opts applies
// DefaultOptions.
//
// Complexity: O(n).
func Classify(c circuit.Circuit, res *Result, opts *Options) Verdict {
	o := withDefaults(opts)
	if res == nil {
		return Verdict{State: StateNeutral, Message: "Simulation running"}
	}

	// 1. Overheat scan: failure outranks everything.
	for _, comp := range c.Components {
		switch comp.Kind {
		case circuit.KindVoltageSource, circuit.KindGround, circuit.KindSwitch:
			continue
		}
		if p := res.Power[comp.ID]; p > o.PowerCeiling {
			return Verdict{
				State:   StateDanger,
				Message: "Component overheating",
				Detail: fmt.Sprintf("%s dissipates %.3f W, above the %.2f W ceiling",
					comp.DisplayName(), p, o.PowerCeiling),
			}
		}
	}

	// 2. Lit-LED scan: first visibly lit LED wins.
	for _, comp := range c.Components {
		if comp.Kind != circuit.KindLED {
			continue
		}
		if i := res.Current[comp.ID]; i > o.LEDCurrentMin {
			return Verdict{
				State:   StateSuccess,
				Message: "LED is lit",
				Detail: fmt.Sprintf("%s carries %.1f mA, above the %.1f mA floor",
					comp.DisplayName(), i*1000, o.LEDCurrentMin*1000),
			}
		}
	}

	// 3. Nothing noteworthy yet.
	return Verdict{State: StateNeutral, Message: "Simulation running"}
}
