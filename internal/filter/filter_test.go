package filter

import (
	"errors"
	"reflect"
	"testing"

	"github.com/backmassage/renamer/internal/catalog"
)

func durations(entries []catalog.Entry) []float64 {
	out := make([]float64, len(entries))
	for i, e := range entries {
		out[i] = e.Duration
	}
	return out
}

func entriesOf(ds ...float64) []catalog.Entry {
	out := make([]catalog.Entry, len(ds))
	for i, d := range ds {
		out[i] = catalog.Entry{Duration: d}
	}
	return out
}

func TestKeep(t *testing.T) {
	cases := []struct {
		name string
		in   []float64
		min  float64
		want []float64
	}{
		{"drops below minimum", []float64{600, 30, 595, 10}, 300, []float64{600, 595}},
		{"boundary is inclusive", []float64{300, 299.99, 300.01}, 300, []float64{300, 300.01}},
		{"keeps all", []float64{10, 20}, 0, []float64{10, 20}},
		{"drops all", []float64{10, 20}, 100, []float64{}},
		{"preserves input order", []float64{900, 100, 800, 200, 700}, 500, []float64{900, 800, 700}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := durations(Keep(entriesOf(tc.in...), tc.min))
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestKeepBelow(t *testing.T) {
	cases := []struct {
		name string
		in   []float64
		max  float64
		want []float64
	}{
		{"drops above maximum", []float64{600, 7200, 610}, 700, []float64{600, 610}},
		{"boundary is inclusive", []float64{700, 700.01}, 700, []float64{700}},
		{"preserves input order", []float64{100, 900, 200}, 500, []float64{100, 200}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := durations(KeepBelow(entriesOf(tc.in...), tc.max))
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCheckCount(t *testing.T) {
	kept := entriesOf(600, 610)

	if err := CheckCount(kept, -1); err != nil {
		t.Errorf("expect -1 must disable the assertion, got %v", err)
	}
	if err := CheckCount(kept, 2); err != nil {
		t.Errorf("matching count: got %v, want nil", err)
	}

	err := CheckCount(kept, 3)
	if err == nil {
		t.Fatal("mismatched count: expected error")
	}
	var cm *CountMismatchError
	if !errors.As(err, &cm) {
		t.Fatalf("error type: got %T", err)
	}
	if cm.Expected != 3 || cm.Actual != 2 {
		t.Errorf("fields: got (%d, %d), want (3, 2)", cm.Expected, cm.Actual)
	}
	if got, want := err.Error(), "expected 3 episodes but found 2"; got != want {
		t.Errorf("message: got %q, want %q", got, want)
	}
}

func TestCheckCount_ZeroExpected(t *testing.T) {
	if err := CheckCount(nil, 0); err != nil {
		t.Errorf("empty kept with expect 0: got %v, want nil", err)
	}
	if err := CheckCount(entriesOf(600), 0); err == nil {
		t.Error("one kept with expect 0: want error")
	}
}
