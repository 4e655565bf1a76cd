package display

import (
	"math"
	"testing"
)

func TestFormatTimespan(t *testing.T) {
	cases := []struct {
		seconds  float64
		maxUnits int
		want     string
	}{
		{0, 0, "0 seconds"},
		{1, 0, "1 second"},
		{30, 0, "30 seconds"},
		{5.5, 0, "5.5 seconds"},
		{60, 0, "1 minute"},
		{90, 0, "1 minute and 30 seconds"},
		{125.5, 0, "2 minutes and 5.5 seconds"},
		{600, 0, "10 minutes"},
		{3600, 0, "1 hour"},
		{3661, 0, "1 hour, 1 minute and 1 second"},
		{3661, 2, "1 hour and 1 minute"},
		{90061, 0, "1 day, 1 hour, 1 minute and 1 second"},
		{90061, 2, "1 day and 1 hour"},
		{-5, 0, "0 seconds"},
	}
	for _, tc := range cases {
		if got := FormatTimespan(tc.seconds, tc.maxUnits); got != tc.want {
			t.Errorf("FormatTimespan(%g, %d): got %q, want %q", tc.seconds, tc.maxUnits, got, tc.want)
		}
	}
}

func TestParseTimespan(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"300", 300},
		{"90.5", 90.5},
		{"  300  ", 300},
		{"5m", 300},
		{"1h30m", 5400},
		{"300s", 300},
		{"2 minutes", 120},
		{"1.5 hours", 5400},
		{"1 second", 1},
		{"3 Days", 259200},
	}
	for _, tc := range cases {
		got, err := ParseTimespan(tc.in)
		if err != nil {
			t.Errorf("ParseTimespan(%q): %v", tc.in, err)
			continue
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("ParseTimespan(%q): got %g, want %g", tc.in, got, tc.want)
		}
	}
}

func TestParseTimespan_Errors(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "2 fortnights", "minutes 2"} {
		if _, err := ParseTimespan(in); err == nil {
			t.Errorf("ParseTimespan(%q): expected error", in)
		}
	}
}
