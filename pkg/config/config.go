// Package config loads the optional fontdeck configuration file.
//
// The file lives at ~/.config/fontdeck/config.toml (XDG_CONFIG_HOME is
// honored) and seeds the preview screen:
//
//	sample_text = "Grumpy wizards make toxic brew"
//	columns = 4
//	fonts = ["Inter", "JetBrains Mono"]
//
// Config is read once at startup and never written back; fontdeck persists
// no state. A missing file yields the defaults. Command-line flags override
// config values.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/fontdeck/pkg/errors"
	"github.com/matzehuels/fontdeck/pkg/preview"
)

// appName is the directory name under the XDG config home.
const appName = "fontdeck"

// Config holds the startup settings for the preview screen.
type Config struct {
	// SampleText overrides the default pangram.
	SampleText string `toml:"sample_text"`

	// Columns is the initial grid column count, 1 to 6.
	Columns int `toml:"columns"`

	// Fonts extends the built-in font set. Entries behave exactly like
	// names pasted into the font list.
	Fonts []string `toml:"fonts"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		SampleText: preview.DefaultSampleText,
		Columns:    preview.DefaultColumns,
	}
}

// Load reads the config file at path and merges it over the defaults.
// A missing file is not an error. Malformed TOML is an error; an
// out-of-range column count is rejected the same way as interactive input
// and the default is kept.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	var file Config
	if err := toml.Unmarshal(data, &file); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}

	if file.SampleText != "" {
		cfg.SampleText = file.SampleText
	}
	if file.Columns != 0 && errors.ValidateColumns(file.Columns) == nil {
		cfg.Columns = file.Columns
	}
	cfg.Fonts = file.Fonts

	return cfg, nil
}

// LoadDefault loads the config from the standard location. Missing
// directories or files yield the defaults.
func LoadDefault() (Config, error) {
	dir, err := configDir()
	if err != nil {
		return Default(), nil
	}
	return Load(filepath.Join(dir, "config.toml"))
}

// configDir returns the config directory using the XDG standard
// (~/.config/fontdeck/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
