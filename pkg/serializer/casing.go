package serializer

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// capitalizeFirst upper-cases the first letter of a wire status and leaves the rest untouched.
func capitalizeFirst(value string) string {
	r, size := utf8.DecodeRuneInString(value)
	if r == utf8.RuneError {
		return value
	}

	return cases.Upper(language.Und).String(value[:size]) + value[size:]
}
