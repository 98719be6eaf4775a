// Package param defines editable parameters, their typed values, and the
// coercion applied to raw field input.
package param

import (
	"fmt"
	"math"
	"strconv"
)

// ID identifies a parameter in the catalog.
type ID int

// Type is the declared type of a parameter.
type Type string

const (
	TypeString Type = "string"
	TypeNumber Type = "number"
)

// Valid reports whether t is one of the supported parameter types.
func (t Type) Valid() bool {
	return t == TypeString || t == TypeNumber
}

// Parameter describes one editable field. Parameters are immutable once defined.
type Parameter struct {
	ID   ID
	Name string
	Type Type
}

// Value is the current value of a parameter. It is either Text or Number;
// no other implementations exist.
type Value interface {
	// Type reports which declared parameter type the value satisfies.
	Type() Type
	// String renders the value for display.
	String() string

	sealed()
}

// Text is the value variant for string parameters.
type Text string

// Type implements Value.
func (Text) Type() Type { return TypeString }

func (t Text) String() string { return string(t) }

func (Text) sealed() {}

// Number is the value variant for number parameters.
type Number float64

// Type implements Value.
func (Number) Type() Type { return TypeNumber }

// String formats the number in its shortest exact decimal form ("1234", "-3.5").
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

func (Number) sealed() {}

// Equal reports whether a and b hold the same variant and payload. Two absent
// values (nil) are equal.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a == b
}

// Native returns the value as a plain Go string or float64, for serializers.
func Native(v Value) any {
	switch val := v.(type) {
	case Text:
		return string(val)
	case Number:
		return float64(val)
	default:
		return nil
	}
}

// FromNative converts a decoded scalar into the variant matching t. It fails
// when a number parameter receives something that is not a finite number.
func FromNative(raw any, t Type) (Value, error) {
	switch t {
	case TypeString:
		switch v := raw.(type) {
		case string:
			return Text(v), nil
		case nil:
			return Text(""), nil
		default:
			return Text(fmt.Sprint(v)), nil
		}
	case TypeNumber:
		switch v := raw.(type) {
		case int:
			return Number(v), nil
		case int64:
			return Number(v), nil
		case uint64:
			return Number(v), nil
		case float64:
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("expected a finite number, got %v", v)
			}
			return Number(v), nil
		default:
			return nil, fmt.Errorf("expected a number, got %T", raw)
		}
	default:
		return nil, fmt.Errorf("unsupported parameter type %q", t)
	}
}
