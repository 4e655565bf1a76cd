// Package config holds runtime configuration: defaults, validation, and the
// optional TOML config file overlay. CLI flag binding lives in cmd/renamer.
package config

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/backmassage/renamer/internal/display"
)

// ColorMode controls ANSI color output on the diagnostic stream.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stderr is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// DefaultOutputFormat numbers kept entries as E1, E2, ... preserving the
// source extension chain.
const DefaultOutputFormat = "E{offset_index}{extension}"

// Config holds all runtime settings. It is populated by [DefaultConfig],
// overlaid by the TOML config file and CLI flags, and then passed (by
// pointer) to packages that need it.
type Config struct {
	// Scan inputs (positional args plus scan tuning).
	Directories  []string
	ExcludeAfter int      // Per-directory entry cap; 0 = unlimited.
	Excludes     []string // Relative-path globs dropped from the catalog.

	// Filtering.
	MinDuration string  // Raw --min-duration value; empty = use computed lower bound.
	Confidence  float64 // Default: 0.5. Must lie strictly inside (0,1).
	Expect      int     // Expected kept count; -1 = no assertion.
	ExcludeMax  bool    // Also drop entries above the computed upper bound.

	// Rename synthesis.
	Offset       int
	InputRegex   string
	OutputDir    string
	OutputFormat string // Default: DefaultOutputFormat.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.

	// Derived by Validate from MinDuration.
	MinDurationSecs float64
	MinDurationSet  bool
}

// DefaultConfig returns a Config with the built-in defaults. Used as the
// base before the config file and CLI flags apply overrides.
func DefaultConfig() Config {
	return Config{
		Confidence:   0.5,
		Expect:       -1,
		OutputFormat: DefaultOutputFormat,
		ColorMode:    ColorAuto,
	}
}

// Validate checks every user-supplied value against its allowed domain and
// derives MinDurationSecs. It runs before any file is probed, so a bad
// option never costs a partial scan.
func (c *Config) Validate() error {
	if c.Confidence <= 0 || c.Confidence >= 1 {
		return fmt.Errorf("confidence must be strictly between 0 and 1 (got %g)", c.Confidence)
	}
	if c.Offset < 0 {
		return fmt.Errorf("offset must be >= 0 (got %d)", c.Offset)
	}
	if c.ExcludeAfter < 0 {
		return fmt.Errorf("exclude-after must be >= 0 (got %d)", c.ExcludeAfter)
	}
	if c.Expect < -1 {
		return fmt.Errorf("expect must be >= 0 (got %d)", c.Expect)
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.InputRegex != "" {
		if _, err := regexp.Compile(c.InputRegex); err != nil {
			return fmt.Errorf("invalid input regex: %w", err)
		}
	}

	if c.MinDuration != "" {
		secs, err := display.ParseTimespan(c.MinDuration)
		if err != nil {
			return fmt.Errorf("invalid min-duration: %w", err)
		}
		if secs < 0 {
			return fmt.Errorf("min-duration must be >= 0 (got %s)", c.MinDuration)
		}
		c.MinDurationSecs = secs
		c.MinDurationSet = true
	}

	if c.CheckOnly {
		return nil
	}
	if len(c.Directories) == 0 {
		return errors.New("need at least one directory to scan")
	}
	return nil
}
