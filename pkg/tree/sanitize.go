package tree

import (
	"strings"
	"unicode"
)

// Placeholder replaces every control character of a displayed name.
const Placeholder = '?'

// Sanitize replaces control characters (newlines, tabs, ESC, NUL, DEL...)
// with Placeholder so a name can never break or restyle its output line.
func Sanitize(name string) string {
	// Fast path: if no control chars, return as is.
	if strings.IndexFunc(name, unicode.IsControl) < 0 {
		return name
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return Placeholder
		}
		return r
	}, name)
}
