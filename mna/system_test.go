package mna_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltlab/dcsim/circuit"
	"github.com/voltlab/dcsim/mna"
	"github.com/voltlab/dcsim/netlist"
)

// seriesLoop builds the canonical source→resistor→ground snapshot.
func seriesLoop() circuit.Circuit {
	return circuit.Circuit{
		Components: []circuit.Component{
			{ID: "v1", Kind: circuit.KindVoltageSource, Value: "9"},
			{ID: "r1", Kind: circuit.KindResistor, Value: "1k"},
			{ID: "g1", Kind: circuit.KindGround},
		},
		Wires: []circuit.Wire{
			{ID: "w1", From: "v1", To: "r1"},
			{ID: "w2", From: "r1", To: "g1"},
		},
	}
}

// TestEquivalentResistance pins every fixed-resistance reduction.
func TestEquivalentResistance(t *testing.T) {
	tests := []struct {
		name string
		comp circuit.Component
		want float64
	}{
		{"parsed resistor", circuit.Component{Kind: circuit.KindResistor, Value: "330"}, 330},
		{"kilo resistor", circuit.Component{Kind: circuit.KindResistor, Value: "10k"}, 10e3},
		{"unparseable resistor falls back", circuit.Component{Kind: circuit.KindResistor, Value: "???"}, mna.DefaultResistance},
		{"zero resistor falls back", circuit.Component{Kind: circuit.KindResistor, Value: "0"}, mna.DefaultResistance},
		{"led is flat 50", circuit.Component{Kind: circuit.KindLED, Value: "whatever"}, mna.LEDResistance},
		{"closed switch", circuit.Component{Kind: circuit.KindSwitch, Value: "closed"}, mna.SwitchClosedResistance},
		{"open switch", circuit.Component{Kind: circuit.KindSwitch, Value: "open"}, mna.SwitchOpenResistance},
		{"unset switch is open", circuit.Component{Kind: circuit.KindSwitch}, mna.SwitchOpenResistance},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, ok := mna.EquivalentResistance(tc.comp)
			require.True(t, ok)
			assert.Equal(t, tc.want, r)
		})
	}

	_, ok := mna.EquivalentResistance(circuit.Component{Kind: circuit.KindVoltageSource})
	assert.False(t, ok, "sources are not resistive")
	_, ok = mna.EquivalentResistance(circuit.Component{Kind: circuit.KindUnmodeled})
	assert.False(t, ok, "unmodeled kinds are not resistive")
}

// TestSourceVoltage applies the 9 V fallback.
func TestSourceVoltage(t *testing.T) {
	assert.Equal(t, 5.0, mna.SourceVoltage(circuit.Component{Value: "5"}))
	assert.Equal(t, mna.DefaultSourceVoltage, mna.SourceVoltage(circuit.Component{Value: ""}))
	assert.Equal(t, mna.DefaultSourceVoltage, mna.SourceVoltage(circuit.Component{Value: "0"}))
}

// TestBuild_Dimension checks dim = non-ground nets + sources.
func TestBuild_Dimension(t *testing.T) {
	c := seriesLoop()
	net := netlist.Resolve(c.Components, c.Wires)
	sys := mna.Build(c.Components, net)

	// Nets: {v1.p1, r1.p1} and the ground net {r1.p2, g1, v1.p2};
	// ground gets no column, the source adds one branch unknown.
	assert.Equal(t, 2, sys.Dim())
	assert.Equal(t, 2, sys.A.Rows())
	assert.Equal(t, 2, sys.A.Cols())
	assert.Len(t, sys.B, 2)
}

// TestBuild_Stamps verifies the assembled entries of the series loop.
func TestBuild_Stamps(t *testing.T) {
	c := seriesLoop()
	net := netlist.Resolve(c.Components, c.Wires)
	sys := mna.Build(c.Components, net)

	pins, _ := net.PinNets("r1")
	ni, ok := sys.NodeIndex(pins.P1)
	require.True(t, ok, "the top net has a column")
	si, ok := sys.SourceIndex("v1")
	require.True(t, ok, "the source has a branch column")

	g := 1.0 / 1000.0
	at := func(i, j int) float64 {
		v, err := sys.A.At(i, j)
		require.NoError(t, err)

		return v
	}
	assert.InDelta(t, g, at(ni, ni), 1e-15, "resistor conductance on the diagonal")
	assert.Equal(t, 1.0, at(ni, si), "source coupling, node row")
	assert.Equal(t, 1.0, at(si, ni), "source coupling, branch row")
	assert.Equal(t, 9.0, sys.B[si], "source excitation on the branch row")
	assert.Zero(t, sys.B[ni], "no excitation on the node row")
}

// TestBuild_Symmetry verifies the invariant A == Aᵀ for a mixed
// circuit covering every stamp pattern.
func TestBuild_Symmetry(t *testing.T) {
	c := circuit.Circuit{
		Components: []circuit.Component{
			{ID: "v1", Kind: circuit.KindVoltageSource, Value: "12"},
			{ID: "r1", Kind: circuit.KindResistor, Value: "470"},
			{ID: "d1", Kind: circuit.KindLED},
			{ID: "s1", Kind: circuit.KindSwitch, Value: "closed"},
			{ID: "u1", Kind: circuit.KindUnmodeled},
			{ID: "g1", Kind: circuit.KindGround},
		},
		Wires: []circuit.Wire{
			{ID: "w1", From: "v1", To: "r1"},
			{ID: "w2", From: "r1", To: "d1"},
			{ID: "w3", From: "d1", To: "s1"},
			{ID: "w4", From: "s1", To: "g1"},
		},
	}
	net := netlist.Resolve(c.Components, c.Wires)
	sys := mna.Build(c.Components, net)

	n := sys.Dim()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			vij, _ := sys.A.At(i, j)
			vji, _ := sys.A.At(j, i)
			assert.Equal(t, vji, vij, "A[%d][%d] == A[%d][%d]", i, j, j, i)
		}
	}
}

// TestBuild_EmptyCircuit assembles a legal empty system.
func TestBuild_EmptyCircuit(t *testing.T) {
	net := netlist.Resolve(nil, nil)
	sys := mna.Build(nil, net)

	assert.Zero(t, sys.Dim())
	assert.Empty(t, sys.B)
}

// TestBuild_UnmodeledNoStamp keeps unknown kinds current-free: their
// nets get columns but contribute no matrix entries.
func TestBuild_UnmodeledNoStamp(t *testing.T) {
	comps := []circuit.Component{{ID: "u1", Kind: circuit.KindUnmodeled}}
	net := netlist.Resolve(comps, nil)
	sys := mna.Build(comps, net)

	require.Equal(t, 2, sys.Dim(), "two isolated nets, no source")
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, _ := sys.A.At(i, j)
			assert.Zero(t, v, "unmodeled components stamp nothing")
		}
	}
}
