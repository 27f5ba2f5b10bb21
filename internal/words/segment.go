// Package words splits text into printing words, the indivisible display
// units used for word-level subtitle timing and highlighting.
package words

const (
	hanLo    = 0x4E00 // CJK Unified Ideographs
	hanHi    = 0x9FFF
	latin1Hi = 0xFF
)

func isHan(r rune) bool {
	return r >= hanLo && r <= hanHi
}

// HasHan reports whether s contains at least one Han character. Callers use
// it to pick CJK display limits without being told the language.
func HasHan(s string) bool {
	for _, r := range s {
		if isHan(r) {
			return true
		}
	}
	return false
}

// boundary reports whether a split point falls between two adjacent
// characters. A boundary follows every space, and follows a Han character
// whose neighbor is Han or Latin-1, so Han text splits per character while
// non-Han runs stay whole.
func boundary(prev, next rune) bool {
	if prev == ' ' {
		return true
	}
	if isHan(prev) {
		return next <= latin1Hi || isHan(next)
	}
	if isHan(next) {
		return prev <= latin1Hi
	}
	return false
}

// Segment splits text into printing words. Every newline becomes its own
// one-character fragment and text is never merged across one. Fragments are
// non-empty substrings of text in order; joining them reproduces the input
// exactly.
func Segment(text string) []string {
	var out []string
	start := 0
	prev := rune(0)
	hasPrev := false

	for i, r := range text {
		if r == '\n' {
			if i > start {
				out = append(out, text[start:i])
			}
			out = append(out, "\n")
			start = i + 1
			hasPrev = false
			continue
		}
		if hasPrev && boundary(prev, r) {
			out = append(out, text[start:i])
			start = i
		}
		prev, hasPrev = r, true
	}
	if start < len(text) {
		out = append(out, text[start:])
	}
	return out
}
