// SPDX-License-Identifier: MIT
//
// File: validate.go
// Role: Opt-in structural validation for Circuit snapshots.
// Policy:
//   - Validation is a courtesy for editor layers; the engine never needs it.
//   - Every failure wraps a package sentinel with the offending ID so
//     callers can match with errors.Is and still log precise context.

package circuit

import "fmt"

// Validate checks structural integrity of the snapshot:
//
//  1. Every component has a non-empty, unique ID.
//  2. Every wire endpoint names a component present in the snapshot.
//
// It reports the first violation found, wrapping the matching sentinel
// (ErrEmptyComponentID, ErrDuplicateComponentID, ErrDanglingWire).
// A nil return guarantees the engine's net resolver will find both
// endpoints of every wire; it guarantees nothing about electrical
// solvability — floating or short-circuited topologies are valid inputs.
//
// Complexity: O(n + m) time, O(n) memory for the ID set.
func (c Circuit) Validate() error {
	// Collect IDs, rejecting empties and duplicates as we go.
	seen := make(map[string]struct{}, len(c.Components))
	for _, comp := range c.Components {
		if comp.ID == "" {
			return fmt.Errorf("component %q: %w", comp.Label, ErrEmptyComponentID)
		}
		if _, dup := seen[comp.ID]; dup {
			return fmt.Errorf("component %q: %w", comp.ID, ErrDuplicateComponentID)
		}
		seen[comp.ID] = struct{}{}
	}

	// Every wire endpoint must resolve to a known component.
	for _, w := range c.Wires {
		if _, ok := seen[w.From]; !ok {
			return fmt.Errorf("wire %q endpoint %q: %w", w.ID, w.From, ErrDanglingWire)
		}
		if _, ok := seen[w.To]; !ok {
			return fmt.Errorf("wire %q endpoint %q: %w", w.ID, w.To, ErrDanglingWire)
		}
	}

	return nil
}
