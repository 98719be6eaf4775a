package model

import "github.com/alexisbeaulieu97/paramedit/internal/param"

// Projection is a point-lookup view over a snapshot's parameter values. It is
// derived from the sequence and never updated independently of it.
type Projection struct {
	values   map[param.ID]param.Value
	revision uint64
}

// Project indexes m's parameter values by identity in one pass. If an id
// appears more than once, the last entry in sequence order wins.
func Project(m Model) Projection {
	values := make(map[param.ID]param.Value, len(m.values))
	for _, pv := range m.values {
		values[pv.ParamID] = pv.Value
	}
	return Projection{values: values, revision: m.rev}
}

// Get returns the current value for id, or false when id has no value.
func (p Projection) Get(id param.ID) (param.Value, bool) {
	v, ok := p.values[id]
	return v, ok
}

// Len returns the number of distinct parameters with a value.
func (p Projection) Len() int {
	return len(p.values)
}

// Revision returns the revision of the snapshot the projection was built from.
func (p Projection) Revision() uint64 {
	return p.revision
}
