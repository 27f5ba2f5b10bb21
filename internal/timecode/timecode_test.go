package timecode

import (
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"01:02:03,456", 3723.456, true},
		{"01:02:03.456", 3723.456, true},
		{"00:00:00,000", 0, true},
		{"00:01:01,5", 61.5, true},       // 1-digit fraction is 5 tenths
		{"00:00:01,25", 1.25, true},      // 2-digit fraction is 25 hundredths
		{"00:00:00,1234", 0.1234, true},  // 4-digit fraction keeps full precision
		{"99:99:99,999", 362439.999, true}, // out-of-range fields fold in
		{"100:00:00,000", 360000, true},
		{"not a time", 0, false},
		{"", 0, false},
		{"01:02:03", 0, false},       // missing fraction group
		{"01:02:03,", 0, false},      // empty fraction group
		{"1:2:3;456", 0, false},      // bad separator
		{"-1:00:00,000", 0, false},
		{" 01:02:03,456", 0, false},  // no surrounding garbage
		{"01:02:03,456 ", 0, false},
	}

	for _, tt := range tests {
		got, ok := Parse(tt.input)
		if ok != tt.ok {
			t.Errorf("Parse(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			continue
		}
		if ok && !Approx(got, tt.want, 1e-9) {
			t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00:00.000"},
		{1.5, "00:00:01.500"},
		{3723.456, "01:02:03.456"},
		{3600, "01:00:00.000"},
		{0.083, "00:00:00.083"},
		{7200.5, "02:00:00.500"},
		{360000, "100:00:00.000"}, // hours widen, never truncate
	}

	for _, tt := range tests {
		got := Format(tt.seconds)
		if got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestFormatPrecision(t *testing.T) {
	tests := []struct {
		seconds float64
		digits  int
		sep     rune
		want    string
	}{
		{3723.456, 3, ',', "01:02:03,456"},
		{1.25, 2, '.', "00:00:01.25"},
		{1.2, 1, '.', "00:00:01.2"},
		{0.12345, 4, '.', "00:00:00.1235"}, // rounds, not truncates
		{59.9996, 3, '.', "00:01:00.000"},  // carry into the minute field
		{3599.9999, 3, '.', "01:00:00.000"},
		{61.123, 3, ',', "00:01:01,123"},
	}

	for _, tt := range tests {
		got := FormatPrecision(tt.seconds, tt.digits, tt.sep)
		if got != tt.want {
			t.Errorf("FormatPrecision(%v, %d, %q) = %q, want %q",
				tt.seconds, tt.digits, tt.sep, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	// Formatting then parsing stays within half a unit of the last digit.
	// 0.4995 sits exactly on that bound, so the tolerance carries a little
	// slack for float representation of the comparison itself.
	const eps = 0.0005 + 1e-12
	values := []float64{0, 0.001, 0.4995, 1.5, 59.999, 61.123, 3600, 3723.456, 86399.5}

	for _, v := range values {
		s := Format(v)
		back, ok := Parse(s)
		if !ok {
			t.Fatalf("Parse(Format(%v)) = Parse(%q) failed", v, s)
		}
		if !Approx(back, v, eps) {
			t.Errorf("round trip %v -> %q -> %v drifted more than half a millisecond", v, s, back)
		}
	}
}

func TestApprox(t *testing.T) {
	if !Approx(1.0001, 1.0002, 0.001) {
		t.Error("expected values within eps to compare equal")
	}
	if Approx(1.0, 1.1, 0.001) {
		t.Error("expected values outside eps to compare unequal")
	}
}
