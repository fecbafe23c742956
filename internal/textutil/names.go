package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// DisplayName formats a patient name as "Last, First" with title casing.
// Either part may be blank; both blank yields "".
func DisplayName(first, last string) string {
	first = titleCaser.String(strings.Join(strings.Fields(first), " "))
	last = titleCaser.String(strings.Join(strings.Fields(last), " "))
	switch {
	case first == "" && last == "":
		return ""
	case last == "":
		return first
	case first == "":
		return last
	}
	return last + ", " + first
}

// ExportFileName builds a default file name for an exported case, falling
// back to the case id when the patient is unnamed.
func ExportFileName(first, last, id string) string {
	base := SanitizeFileName(strings.Join(strings.Fields(last+" "+first), "_"))
	if base == "" {
		base = id
	}
	return base + ".json"
}

// SanitizeFileName makes name safe to use as a single path element. Path
// separators, colons and asterisks become dashes, other reserved characters
// and control characters are dropped. Leading dots are removed so exported
// files never become hidden, as are trailing dots and spaces.
func SanitizeFileName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*':
			return '-'
		case '?', '"', '<', '>', '|':
			return -1
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, name)
	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.TrimLeft(cleaned, ". ")
	return strings.TrimRight(cleaned, ". ")
}
