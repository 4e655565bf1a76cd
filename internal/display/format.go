// Package display formats durations for human-readable diagnostics and
// parses the user-facing timespan syntax accepted by --min-duration.
package display

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

type timespanUnit struct {
	seconds  float64
	singular string
	plural   string
}

var timespanUnits = []timespanUnit{
	{86400, "day", "days"},
	{3600, "hour", "hours"},
	{60, "minute", "minutes"},
	{1, "second", "seconds"},
}

// FormatTimespan renders seconds as prose, e.g. "10 minutes" or
// "2 minutes and 5.5 seconds". maxUnits caps the number of components
// shown (0 = unlimited), dropping the least significant ones.
func FormatTimespan(seconds float64, maxUnits int) string {
	if seconds < 0 {
		seconds = 0
	}

	var parts []string
	remaining := seconds
	for _, u := range timespanUnits[:len(timespanUnits)-1] {
		n := math.Floor(remaining / u.seconds)
		if n < 1 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%d %s", int64(n), pluralize(n, u)))
		remaining -= n * u.seconds
	}

	// Round sub-millisecond residue left by the float subtractions.
	remaining = math.Round(remaining*100) / 100
	if remaining > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%s %s", formatSeconds(remaining), pluralize(remaining, timespanUnits[len(timespanUnits)-1])))
	}

	if maxUnits > 0 && len(parts) > maxUnits {
		parts = parts[:maxUnits]
	}
	return joinProse(parts)
}

func pluralize(n float64, u timespanUnit) string {
	if n == 1 {
		return u.singular
	}
	return u.plural
}

// formatSeconds trims trailing zeros so whole values print as integers.
func formatSeconds(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// joinProse joins parts as "a", "a and b", or "a, b and c".
func joinProse(parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
}

var parseUnits = map[string]float64{
	"s": 1, "sec": 1, "secs": 1, "second": 1, "seconds": 1,
	"m": 60, "min": 60, "mins": 60, "minute": 60, "minutes": 60,
	"h": 3600, "hour": 3600, "hours": 3600,
	"d": 86400, "day": 86400, "days": 86400,
}

// ParseTimespan converts user input into seconds. Accepted forms: a bare
// number of seconds ("300", "90.5"), a Go duration ("5m", "1h30m"), or a
// number with a unit word ("2 minutes", "1.5 hours").
func ParseTimespan(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty timespan")
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, nil
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d.Seconds(), nil
	}
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 2 {
		f, err := strconv.ParseFloat(fields[0], 64)
		if err == nil {
			if mult, ok := parseUnits[fields[1]]; ok {
				return f * mult, nil
			}
		}
	}
	return 0, fmt.Errorf("cannot parse timespan %q", s)
}
