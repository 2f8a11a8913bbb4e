package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltlab/dcsim/analysis"
	"github.com/voltlab/dcsim/circuit"
)

// hotLoop drives a 50 Ω resistor and the LED hard enough that both the
// resistor power ceiling and the LED lit-current floor trip at once:
// I = 9/(50+50) = 90 mA, so each dissipates 0.405 W.
func hotLoop() circuit.Circuit {
	return circuit.Circuit{
		Components: []circuit.Component{
			{ID: "v1", Kind: circuit.KindVoltageSource, Value: "9"},
			{ID: "r1", Kind: circuit.KindResistor, Value: "50", Label: "Tiny resistor"},
			{ID: "d1", Kind: circuit.KindLED},
			{ID: "g1", Kind: circuit.KindGround},
		},
		Wires: []circuit.Wire{
			{ID: "w1", From: "v1", To: "r1"},
			{ID: "w2", From: "r1", To: "d1"},
			{ID: "w3", From: "d1", To: "g1"},
		},
	}
}

// TestClassify_OverheatPrecedence: when one component overheats and an
// LED is simultaneously lit, danger must win — the overheat scan runs
// entirely before the success scan.
func TestClassify_OverheatPrecedence(t *testing.T) {
	c := hotLoop()
	res := analysis.Analyze(c, nil)

	// Preconditions: both verdict triggers genuinely fire.
	require.Greater(t, res.Power["r1"], analysis.DefaultPowerCeiling, "resistor must overheat")
	require.Greater(t, res.Current["d1"], analysis.DefaultLEDCurrentMin, "LED must be lit")

	v := analysis.Classify(c, res, nil)
	assert.Equal(t, analysis.StateDanger, v.State, "overheating outranks a lit LED")
	assert.Contains(t, v.Detail, "Tiny resistor", "verdict names the hot component")
	assert.Contains(t, v.Detail, "W", "verdict carries the literal measurement")
}

// TestClassify_ExemptKinds never flags sources, grounds, or switches
// for power, however hard they are driven.
func TestClassify_ExemptKinds(t *testing.T) {
	c := circuit.Circuit{
		Components: []circuit.Component{
			{ID: "v1", Kind: circuit.KindVoltageSource, Value: "9"},
			{ID: "s1", Kind: circuit.KindSwitch, Value: "closed"},
			{ID: "g1", Kind: circuit.KindGround},
		},
		Wires: []circuit.Wire{
			{ID: "w1", From: "v1", To: "s1"},
			{ID: "w2", From: "s1", To: "g1"},
		},
	}
	// A closed 0.01 Ω switch across 9 V dissipates kilowatts, but the
	// overheat scan skips switches by rule.
	res := analysis.Analyze(c, nil)
	require.Greater(t, res.Power["s1"], analysis.DefaultPowerCeiling)

	v := analysis.Classify(c, res, nil)
	assert.Equal(t, analysis.StateNeutral, v.State, "exempt kinds trip no verdict")
}

// TestClassify_Neutral reports "still simulating" when nothing is hot
// and nothing is lit.
func TestClassify_Neutral(t *testing.T) {
	c := circuit.Circuit{
		Components: []circuit.Component{
			{ID: "r1", Kind: circuit.KindResistor, Value: "330"},
		},
	}
	res := analysis.Analyze(c, nil)

	v := analysis.Classify(c, res, nil)
	assert.Equal(t, analysis.StateNeutral, v.State)
	assert.NotEmpty(t, v.Message)
	assert.Empty(t, v.Detail, "neutral verdicts implicate nobody")
}

// TestClassify_NilResult treats a missing result as neutral.
func TestClassify_NilResult(t *testing.T) {
	v := analysis.Classify(circuit.Circuit{}, nil, nil)
	assert.Equal(t, analysis.StateNeutral, v.State)
}

// TestClassify_FirstHitWins reports the first overheater in component
// order when several qualify.
func TestClassify_FirstHitWins(t *testing.T) {
	c := hotLoop() // r1 and d1 both exceed the ceiling at 0.405 W
	res := analysis.Analyze(c, nil)
	require.Greater(t, res.Power["d1"], analysis.DefaultPowerCeiling, "the LED overheats too")

	v := analysis.Classify(c, res, nil)
	assert.Equal(t, analysis.StateDanger, v.State)
	assert.Contains(t, v.Detail, "Tiny resistor", "r1 precedes d1 in component order")
}

// TestState_String pins the wire-facing tags the renderer consumes.
func TestState_String(t *testing.T) {
	assert.Equal(t, "neutral", analysis.StateNeutral.String())
	assert.Equal(t, "success", analysis.StateSuccess.String())
	assert.Equal(t, "danger", analysis.StateDanger.String())
}
