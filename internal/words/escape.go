package words

import "strings"

// regexMetachars is the exact set escaped by EscapeRegex. regexp.QuoteMeta
// is not used because it also escapes '-', and patterns built here may be
// handed to engines outside Go's regexp.
const regexMetachars = `\^$.*+?()[]{}|`

// EscapeRegex returns s with every regex metacharacter preceded by a
// backslash, so the result matches s literally inside a pattern. Applying it
// twice doubles backslashes; it is not self-inverse.
func EscapeRegex(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(regexMetachars, s[i]) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
