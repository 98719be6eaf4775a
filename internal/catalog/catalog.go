// Package catalog holds the fixed, read-only registry of editable parameters.
package catalog

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/paramedit/internal/param"
	editorerrors "github.com/alexisbeaulieu97/paramedit/pkg/errors"
)

// Catalog maps parameter identity to its declaration. A Catalog is built once
// and never mutated, so it is safe to share.
type Catalog struct {
	params []param.Parameter
	index  map[param.ID]int
}

// New builds a catalog from parameter declarations, preserving their order.
func New(params ...param.Parameter) (*Catalog, error) {
	c := &Catalog{
		params: make([]param.Parameter, 0, len(params)),
		index:  make(map[param.ID]int, len(params)),
	}

	for i, p := range params {
		field := fmt.Sprintf("parameters[%d]", i)
		if p.ID < 1 {
			return nil, editorerrors.NewValidationError(field+".id", fmt.Sprintf("id must be positive, got %d", p.ID), nil)
		}
		if strings.TrimSpace(p.Name) == "" {
			return nil, editorerrors.NewValidationError(field+".name", "name is required", nil)
		}
		if !p.Type.Valid() {
			return nil, editorerrors.NewValidationError(field+".type", fmt.Sprintf("unsupported parameter type %q", p.Type), nil)
		}
		if prev, exists := c.index[p.ID]; exists {
			return nil, editorerrors.NewValidationError(field+".id", fmt.Sprintf("duplicate id %d (already declared by parameters[%d])", p.ID, prev), nil)
		}
		c.index[p.ID] = len(c.params)
		c.params = append(c.params, p)
	}

	return c, nil
}

// MustNew is New for static declarations known to be valid.
func MustNew(params ...param.Parameter) *Catalog {
	c, err := New(params...)
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the editor's built-in catalog.
func Default() *Catalog {
	return MustNew(
		param.Parameter{ID: 1, Name: "Назначение", Type: param.TypeString},
		param.Parameter{ID: 2, Name: "Длина", Type: param.TypeString},
		param.Parameter{ID: 3, Name: "Численное измерение", Type: param.TypeNumber},
		param.Parameter{ID: 4, Name: "Длина", Type: param.TypeNumber},
	)
}

// Get returns the parameter declared with id. The boolean is false when the
// catalog has no such parameter.
func (c *Catalog) Get(id param.ID) (param.Parameter, bool) {
	if c == nil {
		return param.Parameter{}, false
	}
	i, ok := c.index[id]
	if !ok {
		return param.Parameter{}, false
	}
	return c.params[i], true
}

// All returns every parameter in declaration order.
func (c *Catalog) All() []param.Parameter {
	if c == nil {
		return nil
	}
	out := make([]param.Parameter, len(c.params))
	copy(out, c.params)
	return out
}

// Len returns the number of declared parameters.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.params)
}
