package param

import (
	"math"
	"strconv"
	"strings"
)

// Coerce converts raw field text into the value variant for the declared type.
//
// String parameters keep the text verbatim, including the empty string.
// Number parameters parse the trimmed text as a decimal float; anything that
// does not parse to a finite number (empty, blank, alphabetic, NaN, ±Inf)
// becomes Number(0). Coerce never fails.
func Coerce(raw string, t Type) Value {
	if t != TypeNumber {
		return Text(raw)
	}

	parsed, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return Number(0)
	}
	return Number(parsed)
}
