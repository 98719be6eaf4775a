package param

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Label returns the display name of the type, e.g. "Number".
func (t Type) Label() string {
	if !t.Valid() {
		return "Unknown"
	}
	// Casers carry state, so each call gets its own.
	return cases.Title(language.Und).String(string(t))
}
