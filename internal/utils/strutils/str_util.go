package strutils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToTitleCase returns the string with the first letter of each word capitalized.
// e.g. "samsung galaxy" → "Samsung Galaxy"
func ToTitleCase(s string) string {
	caser := cases.Title(language.English)

	return caser.String(strings.ToLower(s))
}

// FirstField returns the first whitespace-separated field of s, or "".
func FirstField(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
