package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// Config holds the user settings read from the configuration file and
// the environment.
type Config struct {
	Prompt string `toml:"prompt"`
	Silent bool   `toml:"silent"`
	Debug  bool   `toml:"debug"`
	Color  string `toml:"color"`
	Colors Colors `toml:"colors"`
}

// Colors are the hex colours of the diagnostic prefixes.
type Colors struct {
	Error   string `toml:"error"`
	Warning string `toml:"warning"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Prompt: DefaultPrompt,
		Color:  colorAuto,
		Colors: Colors{
			Error:   "#e06c75",
			Warning: "#e5c07b",
		},
	}
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/lined/config.toml, or the
// platform equivalent.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "lined", "config.toml"), nil
}

// LoadConfig reads the configuration at path on top of the defaults.
// A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	buf, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	dec := toml.NewDecoder(bytes.NewReader(buf))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// envMapping maps environment variables onto configuration keys.
var envMapping = map[string]func(c *Config, v string) error{
	"LINED_PROMPT": func(c *Config, v string) error {
		c.Prompt = v
		return nil
	},
	"LINED_COLOR": func(c *Config, v string) error {
		c.Color = v
		return nil
	},
	"LINED_SILENT": func(c *Config, v string) (err error) {
		c.Silent, err = strconv.ParseBool(v)
		return err
	},
	"LINED_DEBUG": func(c *Config, v string) (err error) {
		c.Debug, err = strconv.ParseBool(v)
		return err
	},
}

// ApplyEnv overrides settings from the environment. lookup is usually
// os.LookupEnv. An empty value is a valid value, not an unset one.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	var errs []error
	for name, set := range envMapping {
		v, ok := lookup(name)
		if !ok {
			continue
		}
		if err := set(c, v); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	if err := c.Validate(); err != nil {
		c.Color = colorAuto
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (c Config) Validate() error {
	switch c.Color {
	case colorAuto, colorAlways, colorNever:
		return nil
	}
	return fmt.Errorf("invalid color mode %q (must be %s, %s or %s)", c.Color, colorAuto, colorAlways, colorNever)
}
