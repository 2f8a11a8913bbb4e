// SPDX-License-Identifier: MIT

// Package circuit declares Component, Wire, Kind, and the Circuit
// snapshot, together with the sentinel errors used by Validate.
//
// This file declares the types only; validation lives in validate.go.

package circuit

import "errors"

// Sentinel errors for circuit input validation.
var (
	// ErrEmptyComponentID indicates a component with an empty ID string.
	ErrEmptyComponentID = errors.New("circuit: component ID is empty")

	// ErrDuplicateComponentID indicates two components sharing one ID.
	ErrDuplicateComponentID = errors.New("circuit: duplicate component ID")

	// ErrDanglingWire indicates a wire endpoint naming no known component.
	ErrDanglingWire = errors.New("circuit: wire references unknown component")
)

// Kind classifies a component for the stamping rules of the engine.
//
// The set is closed on purpose: every kind with a real matrix stamp has
// its own variant, and everything else (logic gates, ICs, decorative
// parts) collapses into KindUnmodeled, which stamps nothing and carries
// no current.
type Kind uint8

const (
	// KindUnmodeled is the catch-all for kinds without stamp logic.
	// It is the zero value, so an unset Kind is safely inert.
	KindUnmodeled Kind = iota

	// KindVoltageSource is an independent DC voltage source; its Value
	// string holds the source voltage (default 9 V when unparseable).
	KindVoltageSource

	// KindGround is the 0 V reference terminal; both its pins are
	// always shorted together.
	KindGround

	// KindResistor is a fixed resistor; Value holds the resistance
	// (default 1 kΩ when unparseable or zero).
	KindResistor

	// KindLED is a light-emitting diode reduced to a fixed 50 Ω model:
	// no forward-voltage knee, no reverse blocking.
	KindLED

	// KindSwitch is a two-state switch: 0.01 Ω when Value == "closed",
	// 1e9 Ω (effectively open) otherwise.
	KindSwitch
)

// kindTags maps the editor layer's open string tags onto the closed set.
// Unknown tags intentionally miss the map and resolve to KindUnmodeled.
var kindTags = map[string]Kind{
	"voltage-source": KindVoltageSource,
	"battery":        KindVoltageSource,
	"ground":         KindGround,
	"resistor":       KindResistor,
	"led":            KindLED,
	"switch":         KindSwitch,
}

// kindNames gives the canonical tag per variant for String().
var kindNames = [...]string{
	KindUnmodeled:     "unmodeled",
	KindVoltageSource: "voltage-source",
	KindGround:        "ground",
	KindResistor:      "resistor",
	KindLED:           "led",
	KindSwitch:        "switch",
}

// ParseKind maps an editor tag onto the closed Kind set.
// Unrecognized tags return KindUnmodeled; ParseKind never fails, so the
// engine accepts arbitrary editor vocabularies without error.
// Complexity: O(1).
func ParseKind(tag string) Kind {
	if k, ok := kindTags[tag]; ok {
		return k
	}

	return KindUnmodeled
}

// String returns the canonical tag for k. Complexity: O(1).
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return kindNames[KindUnmodeled]
}

// Resistive reports whether k stamps as an equivalent fixed resistance
// (resistor, LED, or switch). Complexity: O(1).
func (k Kind) Resistive() bool {
	return k == KindResistor || k == KindLED || k == KindSwitch
}

// Component is one electrical device or terminal point.
//
// Components are immutable analysis inputs: the engine never mutates
// them and callers own the backing slice.
type Component struct {
	// ID uniquely identifies this component within its Circuit.
	ID string

	// Kind selects the stamping rule; see the Kind constants.
	Kind Kind

	// Label is free-text display naming; analysis ignores it except in
	// verdict messages, where it humanizes the implicated component.
	Label string

	// Value is the human-readable magnitude string: a resistance
	// ("330", "10k"), a source voltage ("9"), or a switch state
	// ("closed"/"open"). Interpretation depends on Kind.
	Value string

	// X, Y are renderer placement coordinates, irrelevant to analysis.
	X, Y float64
}

// DisplayName returns Label when set, else the ID. Used by verdicts.
// Complexity: O(1).
func (c Component) DisplayName() string {
	if c.Label != "" {
		return c.Label
	}

	return c.ID
}

// Wire is an undirected connection between two components, identified
// by their IDs. From/To ordering still matters to net resolution: the
// directional pin heuristic treats From as the wire's source endpoint.
type Wire struct {
	// ID uniquely identifies this wire. Analysis never reads it.
	ID string

	// From is the source-endpoint component ID.
	From string

	// To is the target-endpoint component ID.
	To string
}

// Circuit is one complete analysis snapshot: a component list and a
// wire list. The engine reads it exactly once per call and shares
// nothing between calls, so distinct snapshots may be analyzed
// concurrently.
type Circuit struct {
	Components []Component
	Wires      []Wire
}

// Component returns the component with the given ID, if present.
// Linear scan; component counts are small by construction.
// Complexity: O(n).
func (c Circuit) Component(id string) (Component, bool) {
	for _, comp := range c.Components {
		if comp.ID == id {
			return comp, true
		}
	}

	return Component{}, false
}
