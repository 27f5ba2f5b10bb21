package subtitle

import (
	"strings"
	"unicode/utf8"

	"github.com/ivorkchan/subtle/internal/words"
)

// WrapText returns text on a single line if it fits within maxCPL runes,
// otherwise splits it into at most two lines. Existing newlines are treated
// as already-final line breaks and left alone.
func WrapText(text string, maxCPL int) string {
	text = strings.TrimSpace(text)
	if text == "" || strings.Contains(text, "\n") {
		return text
	}
	if utf8.RuneCountInString(text) <= maxCPL {
		return text
	}

	first, rest := splitAtWordBoundary(text, maxCPL)
	first = strings.TrimSpace(first)
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return first
	}
	return first + "\n" + rest
}

// splitAtWordBoundary cuts text at the last printing-word boundary that
// keeps the first part within maxCPL runes. When even the first printing
// word exceeds the limit, the cut falls at maxCPL runes inside it.
func splitAtWordBoundary(text string, maxCPL int) (string, string) {
	fragments := words.Segment(text)

	used := 0
	cut := 0
	for _, frag := range fragments {
		n := utf8.RuneCountInString(frag)
		if used > 0 && used+n > maxCPL {
			break
		}
		used += n
		cut += len(frag)
	}

	if used > maxCPL {
		// A single oversized fragment: fall back to a hard cut.
		runes := []rune(text)
		return string(runes[:maxCPL]), string(runes[maxCPL:])
	}
	return text[:cut], text[cut:]
}
