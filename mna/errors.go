// SPDX-License-Identifier: MIT
// Package mna: sentinel error set.
// This file defines ONLY package-level sentinel errors. Accessors return
// these sentinels and tests match them via errors.Is; nothing in this
// package panics on user-triggered conditions.

package mna

import "errors"

var (
	// ErrBadShape is returned when a requested matrix shape is invalid
	// (negative dimensions). Zero dimensions are legal: an empty circuit
	// assembles an empty system.
	ErrBadShape = errors.New("mna: invalid shape")

	// ErrOutOfRange indicates a row or column index outside bounds.
	// Public indexers (At/Set/Add) MUST return this, not panic.
	ErrOutOfRange = errors.New("mna: index out of range")
)
