package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file. Fields are pointers so
// an unset value never clobbers a flag or built-in default.
type FileConfig struct {
	Defaults DefaultsConfig `toml:"defaults"`
}

// DefaultsConfig maps the [defaults] section.
type DefaultsConfig struct {
	Confidence   *float64 `toml:"confidence"`
	Offset       *int     `toml:"offset"`
	OutputFormat *string  `toml:"output-format"`
	Color        *string  `toml:"color"`
	Exclude      []string `toml:"exclude"`
}

// DefaultConfigPath returns the per-user config file location.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "renamer", "config.toml")
}

// LoadFile reads a TOML config from path. A missing file is only an error
// when the path was passed explicitly on the command line.
func LoadFile(path string, explicit bool) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			if explicit {
				return FileConfig{}, fmt.Errorf("config file not found: %s", path)
			}
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("stat config: %w", err)
	}
	var fc FileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return FileConfig{}, fmt.Errorf("decode config: %w", err)
	}
	return fc, nil
}

// Apply overlays file values onto cfg. flagChanged reports whether the named
// CLI flag was set explicitly; set flags always win over the file.
func (fc FileConfig) Apply(cfg *Config, flagChanged func(name string) bool) {
	d := fc.Defaults
	if d.Confidence != nil && !flagChanged("confidence") {
		cfg.Confidence = *d.Confidence
	}
	if d.Offset != nil && !flagChanged("offset") {
		cfg.Offset = *d.Offset
	}
	if d.OutputFormat != nil && !flagChanged("output-format") {
		cfg.OutputFormat = *d.OutputFormat
	}
	if d.Color != nil && !flagChanged("color") {
		cfg.ColorMode = ColorMode(*d.Color)
	}
	if len(d.Exclude) > 0 && !flagChanged("exclude") {
		cfg.Excludes = append([]string(nil), d.Exclude...)
	}
}
