// Package probe wraps the single ffprobe call used to measure a clip's
// duration. Only the container-level format section is requested; stream
// details are irrelevant to duration filtering.
package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// FFProbe measures durations by shelling out to ffprobe. The zero value is
// ready to use.
type FFProbe struct{}

// Duration runs ffprobe against path and returns the container duration in
// seconds. Any failure (missing file, unparseable output, absent duration)
// is returned as an error; the caller treats it as fatal to the run.
func (FFProbe) Duration(ctx context.Context, path string) (float64, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-loglevel", "quiet",
		"-print_format", "json",
		"-show_format",
		path,
	)

	out, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe %q: %w", path, err)
	}

	d, err := ParseJSON(out)
	if err != nil {
		return 0, fmt.Errorf("ffprobe %q: %w", path, err)
	}
	return d, nil
}

// ParseJSON extracts the format duration from raw ffprobe JSON output.
// Exported for testing without a real ffprobe binary.
func ParseJSON(data []byte) (float64, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return 0, fmt.Errorf("parse ffprobe JSON: %w", err)
	}

	s := strings.TrimSpace(raw.Format.Duration)
	if s == "" {
		return 0, fmt.Errorf("no format.duration in ffprobe output")
	}
	d, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bad format.duration %q: %w", s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("negative format.duration %q", s)
	}
	return d, nil
}

// --- ffprobe JSON wire types (numbers arrive as strings) ---

type ffprobeOutput struct {
	Format ffprobeFormat `json:"format"`
}

type ffprobeFormat struct {
	Filename string `json:"filename"`
	Duration string `json:"duration"`
	Size     string `json:"size"`
}
