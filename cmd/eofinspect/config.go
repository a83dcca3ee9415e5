package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Config represents the eofinspect configuration file
// (~/.config/eofinspect/config.yaml). Pointer fields distinguish "not set"
// from zero values.
type Config struct {
	Format   string `yaml:"format"`
	Strict   *bool  `yaml:"strict"`
	Color    *bool  `yaml:"color"`
	LogLevel string `yaml:"log_level"`
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "eofinspect", "config.yaml")
}

// LoadConfig reads the config file at path. A missing file yields a zero
// Config; a file that exists but does not parse is an error.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	switch cfg.Format {
	case "", formatText, formatJSON:
	default:
		return Config{}, fmt.Errorf("config %s: unknown format %q", path, cfg.Format)
	}
	return cfg, nil
}

// applyInspectConfig applies config file defaults to inspect command
// variables when the corresponding flag was not explicitly set.
func applyInspectConfig(c *cli.Command, cfg Config, format *string, strict *bool) {
	if cfg.Format != "" && !c.IsSet("format") {
		*format = cfg.Format
	}
	if cfg.Strict != nil && !c.IsSet("strict") {
		*strict = *cfg.Strict
	}
}
