// Package config loads the ariadne.yaml client configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/ariadne/pkg/domain"
)

// DefaultFile is the config file looked up when none is named.
const DefaultFile = "ariadne.yaml"

// Config holds the client-side settings for solving a maze.
type Config struct {
	// Server is the base URL of the maze authority.
	Server string `yaml:"server" json:"server" mapstructure:"server"`
	// Player is the name sent on session start.
	Player string `yaml:"player" json:"player" mapstructure:"player"`
	// Mode selects the exploration strategy: "exhaustive" or "greedy".
	Mode string `yaml:"mode" json:"mode" mapstructure:"mode"`
	// Maze optionally names a layout on the authority.
	Maze string `yaml:"maze" json:"maze" mapstructure:"maze"`
	// TimeoutSeconds bounds each gateway call.
	TimeoutSeconds int `yaml:"timeout_seconds" json:"timeout_seconds" mapstructure:"timeout_seconds"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server:         "http://localhost:8078",
		Player:         "ariadne",
		Mode:           string(domain.ModeExhaustive),
		TimeoutSeconds: 3,
	}
}

// Load reads a configuration file (YAML or JSON) on top of the defaults.
// A missing file at the default path is not an error; an explicitly named
// missing file is.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	return cfg, cfg.validate()
}

// Apply overlays loosely-typed overrides (e.g. collected from flags) onto the
// config. Zero-value entries are skipped.
func (c *Config) Apply(overrides map[string]any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     c,
		ZeroFields: false,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(overrides); err != nil {
		return fmt.Errorf("failed to apply overrides: %w", err)
	}
	return c.validate()
}

func (c *Config) validate() error {
	switch domain.Mode(c.Mode) {
	case domain.ModeExhaustive, domain.ModeGreedy:
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive, got %d", c.TimeoutSeconds)
	}
	return nil
}
