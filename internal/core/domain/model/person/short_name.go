// Package person formats people referenced by warehouse records.
package person

import (
	"strings"
	"unicode/utf8"
)

// ShortName renders "Lastname F. M.", skipping empty parts.
func ShortName(last, first, middle string) string {
	parts := make([]string, 0, 3)
	if last = strings.TrimSpace(last); last != "" {
		parts = append(parts, last)
	}
	for _, name := range []string{first, middle} {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		initial, _ := utf8.DecodeRuneInString(name)
		parts = append(parts, strings.ToUpper(string(initial))+".")
	}
	return strings.Join(parts, " ")
}
