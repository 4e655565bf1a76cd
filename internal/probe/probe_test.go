package probe

import (
	"math"
	"strings"
	"testing"
)

func TestParseJSON(t *testing.T) {
	data := []byte(`{
		"format": {
			"filename": "show/E01.mkv",
			"duration": "1437.600000",
			"size": "734003200"
		}
	}`)

	d, err := ParseJSON(data)
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if math.Abs(d-1437.6) > 1e-9 {
		t.Errorf("got %g, want 1437.6", d)
	}
}

func TestParseJSON_Errors(t *testing.T) {
	cases := []struct {
		name    string
		data    string
		wantSub string
	}{
		{"invalid json", `{nope`, "parse ffprobe JSON"},
		{"missing format", `{}`, "no format.duration"},
		{"missing duration", `{"format": {"filename": "a.mkv"}}`, "no format.duration"},
		{"blank duration", `{"format": {"duration": "   "}}`, "no format.duration"},
		{"unparseable duration", `{"format": {"duration": "N/A"}}`, "bad format.duration"},
		{"negative duration", `{"format": {"duration": "-5.0"}}`, "negative format.duration"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseJSON([]byte(tc.data))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantSub) {
				t.Errorf("error %q does not contain %q", err, tc.wantSub)
			}
		})
	}
}
