// Package stats computes the duration acceptance interval from sample
// statistics. The interval drives both the lower cutoff (always) and the
// upper cutoff (when long-outlier exclusion is enabled).
package stats

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sentinel errors for precondition violations. Both are wrapped with the
// offending value by ConfidenceInterval.
var (
	ErrInsufficientSample = errors.New("need at least 2 samples for a confidence interval")
	ErrInvalidConfidence  = errors.New("confidence must be strictly between 0 and 1")
)

// Interval is the computed acceptance window plus the sample statistics it
// was derived from, kept for diagnostic display.
type Interval struct {
	Lower float64
	Upper float64

	N      int
	Mean   float64
	Stdev  float64
	Margin float64
}

// ConfidenceInterval derives the acceptance window for a duration sample.
//
// The single confidence knob is treated as the width of a two-sided
// interval and mapped to the matching one-sided normal quantile,
// q = 1 - (1-confidence)/2, so confidence 0.5 yields a moderate z rather
// than the z of a 50% one-sided quantile. The margin is z * stdev/sqrt(n)
// with the Bessel-corrected (n-1) standard deviation. The lower bound is
// clamped at 0 (durations are non-negative) and the upper bound at the
// sample maximum (the window never admits a duration no sample exhibited).
func ConfidenceInterval(samples []float64, confidence float64) (Interval, error) {
	if len(samples) < 2 {
		return Interval{}, fmt.Errorf("%w (got %d)", ErrInsufficientSample, len(samples))
	}
	if confidence <= 0 || confidence >= 1 {
		return Interval{}, fmt.Errorf("%w (got %g)", ErrInvalidConfidence, confidence)
	}

	n := len(samples)
	mean := stat.Mean(samples, nil)
	stdev := stat.StdDev(samples, nil)

	q := 1 - (1-confidence)/2
	z := distuv.UnitNormal.Quantile(q)
	margin := z * stdev / math.Sqrt(float64(n))

	maxSample := samples[0]
	for _, s := range samples[1:] {
		if s > maxSample {
			maxSample = s
		}
	}

	lower := mean - margin
	if lower < 0 {
		lower = 0
	}
	upper := mean + margin
	if upper > maxSample {
		upper = maxSample
	}

	return Interval{
		Lower:  lower,
		Upper:  upper,
		N:      n,
		Mean:   mean,
		Stdev:  stdev,
		Margin: margin,
	}, nil
}
