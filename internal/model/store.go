package model

import (
	"strings"

	"github.com/alexisbeaulieu97/paramedit/internal/param"
)

// SetValue returns a snapshot in which id holds v.
//
// An existing entry is replaced in place, keeping its position; an id with no
// entry is appended at the end. The color list is shared with m. SetValue does
// not check v against the parameter's declared type: callers coerce first.
func SetValue(m Model, id param.ID, v param.Value) Model {
	next := make([]ParamValue, len(m.values), len(m.values)+1)
	copy(next, m.values)

	replaced := false
	for i := range next {
		if next[i].ParamID == id {
			next[i].Value = v
			replaced = true
		}
	}
	if !replaced {
		next = append(next, ParamValue{ParamID: id, Value: v})
	}

	return Model{values: next, colors: m.colors, rev: nextRevision()}
}

// AddColor returns a snapshot with the trimmed color appended. A color that is
// blank after trimming leaves m unchanged and m itself is returned.
func AddColor(m Model, color string) Model {
	trimmed := strings.TrimSpace(color)
	if trimmed == "" {
		return m
	}

	next := make([]Color, len(m.colors)+1)
	copy(next, m.colors)
	next[len(m.colors)] = trimmed

	return Model{values: m.values, colors: next, rev: m.rev}
}
