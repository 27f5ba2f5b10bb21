// Package timecode converts between subtitle-style timecodes
// (HH:MM:SS,fff or HH:MM:SS.fff) and seconds.
package timecode

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// timecodePattern matches HH:MM:SS followed by a fraction group of any width.
// Field ranges are not validated; 99:99:99,999 folds in arithmetically.
var timecodePattern = regexp.MustCompile(`^(\d+):(\d+):(\d+)[.,](\d+)$`)

// Parse converts a timecode string to seconds. The second return value is
// false when the input does not match the timecode grammar; malformed input
// is expected when scanning free-form text and is not an error.
func Parse(s string) (float64, bool) {
	m := timecodePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}

	hours, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, false
	}

	// Reassemble "seconds.fraction" so a 2- or 4-digit fraction group is a
	// true decimal fraction, not assumed to be milliseconds.
	secs, err := strconv.ParseFloat(m[3]+"."+m[4], 64)
	if err != nil {
		return 0, false
	}

	total := float64(hours)*3600 + float64(minutes)*60 + secs
	if math.IsNaN(total) {
		return 0, false
	}
	return total, true
}

// Format renders seconds as HH:MM:SS.fff with millisecond precision.
func Format(seconds float64) string {
	return FormatPrecision(seconds, 3, '.')
}

// FormatPrecision renders seconds as HH:MM:SS<sep><fraction> with the given
// fraction digit count. The value is rounded half away from zero at the
// requested precision before decomposition, so the carry propagates into the
// integer fields (59.9996 at 3 digits is 00:01:00.000). Hours widen beyond
// two digits instead of truncating. Negative or non-finite seconds and digit
// counts below 1 are the caller's responsibility.
func FormatPrecision(seconds float64, digits int, sep rune) string {
	scale := int64(1)
	for i := 0; i < digits; i++ {
		scale *= 10
	}

	units := int64(math.Round(seconds * float64(scale)))
	frac := units % scale
	total := units / scale

	hours := total / 3600
	minutes := total % 3600 / 60
	secs := total % 60

	return fmt.Sprintf("%02d:%02d:%02d%c%0*d", hours, minutes, secs, sep, digits, frac)
}

// Approx reports whether a and b differ by no more than eps.
func Approx(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
