// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/necklace/debruijn"
)

// Defaults used when neither the config file nor a flag sets a value.
const (
	defaultK      = 2
	defaultN      = 3
	defaultMethod = "lyndon"
	defaultFormat = "text"
)

// Config holds CLI defaults. Values come from, in increasing priority:
// built-in defaults, the --config YAML file, explicit flags.
type Config struct {
	K      int    `yaml:"k"`
	N      int    `yaml:"n"`
	Method string `yaml:"method"`
	Format string `yaml:"format"`
	Verify bool   `yaml:"verify"`
}

// defaultConfig returns the built-in defaults.
func defaultConfig() Config {
	return Config{K: defaultK, N: defaultN, Method: defaultMethod, Format: defaultFormat}
}

// loadConfig reads path over the defaults; an empty path yields the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, cfg.validate()
}

// applyFlags overrides cfg with every flag the user set explicitly.
func applyFlags(cfg Config, cmd *cobra.Command) (Config, error) {
	f := cmd.Flags()
	var err error
	if f.Changed("k") {
		if cfg.K, err = f.GetInt("k"); err != nil {
			return cfg, err
		}
	}
	if f.Changed("n") {
		if cfg.N, err = f.GetInt("n"); err != nil {
			return cfg, err
		}
	}
	if f.Changed("method") {
		if cfg.Method, err = f.GetString("method"); err != nil {
			return cfg, err
		}
	}
	if f.Changed("format") {
		if cfg.Format, err = f.GetString("format"); err != nil {
			return cfg, err
		}
	}
	if f.Changed("verify") {
		if cfg.Verify, err = f.GetBool("verify"); err != nil {
			return cfg, err
		}
	}

	return cfg, cfg.validate()
}

// errBadFormat is returned for an unknown --format value.
var errBadFormat = errors.New("unknown output format (want text|json|yaml)")

// validate checks the enumerated fields; k and n are left to the library,
// which reports debruijn.ErrInvalidArgument with full context.
func (c Config) validate() error {
	if _, err := debruijn.ParseMethod(c.Method); err != nil {
		return err
	}
	switch c.Format {
	case "text", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("%q: %w", c.Format, errBadFormat)
	}
}
