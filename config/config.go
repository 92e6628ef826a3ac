// Package config provides YAML configuration parsing for StatusLight.
//
// This package enables running StatusLight as a standalone binary with a
// configuration file, as an alternative to the programmatic SDK approach.
//
// Example configuration:
//
//	title: Build Monitor
//	port: 3000
//
//	sound:
//	  enabled: true
//	  dir: /usr/share/sounds/statuslight
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultPort = 3000

// Config is the root configuration structure for StatusLight.
//
// It maps directly to the YAML configuration file structure.
// Use [Load] or [Parse] to create a Config from YAML, or [Default] for a
// configuration with all defaults applied.
type Config struct {
	// Title is the dashboard title. Defaults to "StatusLight" if not set.
	Title string `yaml:"title"`

	// Port is the HTTP server port. Defaults to 3000.
	Port int `yaml:"port"`

	// Sound configures the audio cue side effect.
	Sound SoundConfig `yaml:"sound"`
}

// SoundConfig configures the optional audio cues played on the waiting and
// complete transitions.
type SoundConfig struct {
	// Enabled toggles audio cues. Defaults to true when omitted; playback
	// is additionally gated on the platform having a playback tool and the
	// cue asset existing on disk.
	Enabled *bool `yaml:"enabled"`

	// Dir is the directory holding waiting.wav and complete.wav.
	// Defaults to "sounds".
	Dir string `yaml:"dir"`
}

// SoundEnabled reports the effective enabled flag with the default applied.
func (c *Config) SoundEnabled() bool {
	if c.Sound.Enabled == nil {
		return true
	}
	return *c.Sound.Enabled
}

// Default returns a Config with all defaults applied and no file read.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads and parses a YAML configuration file from the given path.
//
// Defaults are applied for omitted fields and the result is validated.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML configuration data, applies defaults, and validates.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = defaultPort
	}
	if c.Sound.Dir == "" {
		c.Sound.Dir = "sounds"
	}
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	return nil
}
