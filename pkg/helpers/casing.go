package helpers

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UpperLabel normalizes an enum label for case-insensitive lookup.
func UpperLabel(value string) string {
	return cases.Upper(language.Und).String(value)
}
