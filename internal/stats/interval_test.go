package stats

import (
	"errors"
	"math"
	"testing"
)

func TestConfidenceInterval_KnownSample(t *testing.T) {
	// 5 clips around 10 minutes: mean 600, sample stdev ~7.9057,
	// z(0.75) ~0.6745, margin ~2.385.
	samples := []float64{590, 600, 610, 605, 595}

	iv, err := ConfidenceInterval(samples, 0.5)
	if err != nil {
		t.Fatalf("ConfidenceInterval: %v", err)
	}

	if iv.N != 5 {
		t.Errorf("N: got %d, want 5", iv.N)
	}
	if !near(iv.Mean, 600, 1e-9) {
		t.Errorf("Mean: got %g, want 600", iv.Mean)
	}
	if !near(iv.Stdev, 7.9057, 1e-3) {
		t.Errorf("Stdev: got %g, want ~7.9057", iv.Stdev)
	}
	if !near(iv.Margin, 2.385, 1e-2) {
		t.Errorf("Margin: got %g, want ~2.385", iv.Margin)
	}
	if !near(iv.Lower, 597.6, 0.05) || !near(iv.Upper, 602.4, 0.05) {
		t.Errorf("interval: got (%g, %g), want ~(597.6, 602.4)", iv.Lower, iv.Upper)
	}
}

func TestConfidenceInterval_BoundsOrdering(t *testing.T) {
	cases := []struct {
		name       string
		samples    []float64
		confidence float64
	}{
		{"tight cluster", []float64{590, 600, 610, 605, 595}, 0.5},
		{"wide spread", []float64{10, 500, 900, 1200}, 0.9},
		{"near zero", []float64{0.5, 1.0, 2.0}, 0.99},
		{"two samples", []float64{100, 200}, 0.5},
		{"lower clamped to zero", []float64{1, 2, 3000}, 0.999},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			iv, err := ConfidenceInterval(tc.samples, tc.confidence)
			if err != nil {
				t.Fatalf("ConfidenceInterval: %v", err)
			}
			maxSample := tc.samples[0]
			for _, s := range tc.samples {
				if s > maxSample {
					maxSample = s
				}
			}
			if iv.Lower < 0 {
				t.Errorf("Lower %g < 0", iv.Lower)
			}
			if iv.Lower > iv.Mean {
				t.Errorf("Lower %g > Mean %g", iv.Lower, iv.Mean)
			}
			if iv.Mean > iv.Upper {
				t.Errorf("Mean %g > Upper %g", iv.Mean, iv.Upper)
			}
			if iv.Upper > maxSample {
				t.Errorf("Upper %g > max sample %g", iv.Upper, maxSample)
			}
		})
	}
}

func TestConfidenceInterval_WidthMonotoneInConfidence(t *testing.T) {
	samples := []float64{590, 600, 610, 605, 595}
	confidences := []float64{0.1, 0.3, 0.5, 0.7, 0.9, 0.99}

	prev := -1.0
	for _, c := range confidences {
		iv, err := ConfidenceInterval(samples, c)
		if err != nil {
			t.Fatalf("confidence %g: %v", c, err)
		}
		width := iv.Upper - iv.Lower
		if width < prev {
			t.Errorf("width shrank at confidence %g: %g < %g", c, width, prev)
		}
		prev = width
	}
}

func TestConfidenceInterval_Errors(t *testing.T) {
	cases := []struct {
		name       string
		samples    []float64
		confidence float64
		want       error
	}{
		{"empty sample", nil, 0.5, ErrInsufficientSample},
		{"single sample", []float64{600}, 0.5, ErrInsufficientSample},
		{"confidence zero", []float64{1, 2}, 0, ErrInvalidConfidence},
		{"confidence one", []float64{1, 2}, 1, ErrInvalidConfidence},
		{"confidence negative", []float64{1, 2}, -0.2, ErrInvalidConfidence},
		{"confidence above one", []float64{1, 2}, 1.5, ErrInvalidConfidence},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ConfidenceInterval(tc.samples, tc.confidence)
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func near(got, want, tol float64) bool {
	return math.Abs(got-want) <= tol
}
