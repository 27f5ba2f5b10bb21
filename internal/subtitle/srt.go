// Package subtitle reads, retimes and writes SRT subtitle files.
package subtitle

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/ivorkchan/subtle/internal/timecode"
	"github.com/ivorkchan/subtle/internal/words"
)

// Cue is one subtitle block: a time range and its text.
type Cue struct {
	Index int
	Start float64
	End   float64
	Text  string
}

// RenderOptions controls how cues are written back out.
type RenderOptions struct {
	// FractionDigits is the width of the fractional-seconds field.
	FractionDigits int
	// Separator sits between seconds and the fraction (',' for SRT).
	Separator rune
	// MaxCharsPerLine rewraps cue text when > 0.
	MaxCharsPerLine int
}

var (
	blockSeparator = regexp.MustCompile(`\r?\n\r?\n+`)
	timeRangeLine  = regexp.MustCompile(`^\s*(\S+)\s+-->\s+(\S+)\s*$`)
)

// normalizeText converts line endings to \n and drops trailing newlines.
func normalizeText(input string) string {
	text := strings.ReplaceAll(input, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.TrimRight(text, "\n")
}

// Parse reads SRT content into cues. Blocks without a well-formed time range
// are skipped rather than reported: stray lines and malformed timecodes are
// routine in subtitle files found in the wild.
func Parse(input string) []Cue {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil
	}

	blocks := blockSeparator.Split(trimmed, -1)
	cues := make([]Cue, 0, len(blocks))

	for _, block := range blocks {
		lines := strings.Split(normalizeText(block), "\n")

		// The time range is on the first or second line depending on
		// whether the index line is present.
		timeLine := -1
		var start, end float64
		for i := 0; i < len(lines) && i < 2; i++ {
			m := timeRangeLine.FindStringSubmatch(lines[i])
			if m == nil {
				continue
			}
			s, okS := timecode.Parse(m[1])
			e, okE := timecode.Parse(m[2])
			if okS && okE {
				timeLine = i
				start, end = s, e
				break
			}
		}
		if timeLine < 0 {
			continue
		}

		text := ""
		if len(lines) > timeLine+1 {
			text = strings.Join(lines[timeLine+1:], "\n")
		}

		cues = append(cues, Cue{
			Index: len(cues) + 1,
			Start: start,
			End:   end,
			Text:  text,
		})
	}
	return cues
}

// Render writes cues as standard SRT: comma separator, three fraction
// digits, no rewrapping.
func Render(cues []Cue) string {
	return RenderWith(cues, RenderOptions{FractionDigits: 3, Separator: ','})
}

// RenderWith writes cues with explicit formatting options. Cues are
// renumbered sequentially from 1.
func RenderWith(cues []Cue, opts RenderOptions) string {
	if len(cues) == 0 {
		return ""
	}
	if opts.FractionDigits <= 0 {
		opts.FractionDigits = 3
	}
	if opts.Separator == 0 {
		opts.Separator = ','
	}

	var sb strings.Builder
	for i, cue := range cues {
		startStr := timecode.FormatPrecision(cue.Start, opts.FractionDigits, opts.Separator)
		endStr := timecode.FormatPrecision(cue.End, opts.FractionDigits, opts.Separator)

		text := cue.Text
		if opts.MaxCharsPerLine > 0 {
			text = WrapText(text, opts.MaxCharsPerLine)
		}

		fmt.Fprintf(&sb, "%d\n%s --> %s\n%s\n", i+1, startStr, endStr, text)
		if i < len(cues)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Shift adds an offset in seconds to every cue, rounding to millisecond
// precision and clamping at zero.
func Shift(cues []Cue, offset float64) {
	for i := range cues {
		cues[i].Start = shiftTime(cues[i].Start, offset)
		cues[i].End = shiftTime(cues[i].End, offset)
	}
}

func shiftTime(t, offset float64) float64 {
	shifted := math.Round((t+offset)*1000) / 1000
	if shifted < 0 {
		return 0
	}
	return shifted
}

// Find returns the cues whose text matches pattern. When literal is true the
// pattern is escaped first and matches as plain text; either way matching is
// case-insensitive.
func Find(cues []Cue, pattern string, literal bool) ([]Cue, error) {
	if literal {
		pattern = words.EscapeRegex(pattern)
	}
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("compile pattern: %w", err)
	}

	var matched []Cue
	for _, cue := range cues {
		if re.MatchString(cue.Text) {
			matched = append(matched, cue)
		}
	}
	return matched, nil
}
