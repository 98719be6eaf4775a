package config

import (
	"github.com/alexisbeaulieu97/paramedit/internal/catalog"
	"github.com/alexisbeaulieu97/paramedit/internal/model"
	"github.com/alexisbeaulieu97/paramedit/internal/param"
	editorerrors "github.com/alexisbeaulieu97/paramedit/pkg/errors"
)

// Catalog builds the parameter catalog declared by the document.
func (c *Config) Catalog() (*catalog.Catalog, error) {
	params := make([]param.Parameter, 0, len(c.Parameters))
	for _, spec := range c.Parameters {
		params = append(params, param.Parameter{
			ID:   param.ID(spec.ID),
			Name: spec.Name,
			Type: param.Type(spec.Type),
		})
	}
	return catalog.New(params...)
}

// InitialModel builds the starting snapshot, converting each value to the
// variant declared by cat.
func (c *Config) InitialModel(cat *catalog.Catalog) (model.Model, error) {
	values := make([]model.ParamValue, 0, len(c.Initial.Values))
	for i, spec := range c.Initial.Values {
		p, ok := cat.Get(param.ID(spec.ParamID))
		if !ok {
			return model.Model{}, editorerrors.NewUnknownParameterError(spec.ParamID)
		}
		v, err := param.FromNative(spec.Value, p.Type)
		if err != nil {
			return model.Model{}, editorerrors.NewValidationError(fieldForValue(i, "value"), err.Error(), err)
		}
		values = append(values, model.ParamValue{ParamID: p.ID, Value: v})
	}
	return model.New(values, c.Initial.Colors), nil
}
