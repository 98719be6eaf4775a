// Package model holds the editor's state snapshot and the pure operations that
// derive new snapshots from old ones.
//
// A Model is a value: every operation returns a new Model and never modifies
// the one it was given. Backing slices may be shared between snapshots, but no
// code path writes to a slice after a Model has been returned, and accessors
// hand out copies, so a snapshot observed once stays frozen.
package model

import (
	"sync/atomic"

	"github.com/alexisbeaulieu97/paramedit/internal/param"
)

// ParamValue pairs a parameter identity with its current value.
type ParamValue struct {
	ParamID param.ID
	Value   param.Value
}

// Color is an opaque color tag. Colors are neither unique nor validated.
type Color = string

// Model is the root aggregate: the ordered parameter values and the ordered
// color list.
type Model struct {
	values []ParamValue
	colors []Color
	rev    uint64
}

var revisions atomic.Uint64

func nextRevision() uint64 {
	return revisions.Add(1)
}

// New builds a snapshot from initial values and colors. The inputs are copied.
func New(values []ParamValue, colors []Color) Model {
	m := Model{rev: nextRevision()}
	if len(values) > 0 {
		m.values = make([]ParamValue, len(values))
		copy(m.values, values)
	}
	if len(colors) > 0 {
		m.colors = make([]Color, len(colors))
		copy(m.colors, colors)
	}
	return m
}

// Values returns a copy of the parameter values in sequence order.
func (m Model) Values() []ParamValue {
	out := make([]ParamValue, len(m.values))
	copy(out, m.values)
	return out
}

// Colors returns a copy of the color list in insertion order.
func (m Model) Colors() []Color {
	out := make([]Color, len(m.colors))
	copy(out, m.colors)
	return out
}

// Len returns the number of parameter values set.
func (m Model) Len() int {
	return len(m.values)
}

// Revision identifies the parameter value sequence. It changes whenever the
// sequence changes and is preserved by operations that leave it untouched,
// which makes it a memoization key for projections.
func (m Model) Revision() uint64 {
	return m.rev
}

// Equal reports whether a and b hold the same values and colors in the same
// order. Revisions are ignored.
func Equal(a, b Model) bool {
	if len(a.values) != len(b.values) || len(a.colors) != len(b.colors) {
		return false
	}
	for i := range a.values {
		if a.values[i].ParamID != b.values[i].ParamID || !param.Equal(a.values[i].Value, b.values[i].Value) {
			return false
		}
	}
	for i := range a.colors {
		if a.colors[i] != b.colors[i] {
			return false
		}
	}
	return true
}
