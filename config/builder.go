package config

import (
	"github.com/statuslight/statuslight"
)

// Build converts a parsed [Config] into SDK options for [statuslight.New].
//
// This is the bridge between the YAML configuration (standalone binary
// mode) and the functional options API (SDK mode). The CLI appends its own
// flag-override options after these, so flags win over the file.
func Build(cfg *Config) []statuslight.Option {
	opts := []statuslight.Option{
		statuslight.WithPort(cfg.Port),
		statuslight.WithSoundDir(cfg.Sound.Dir),
	}
	if cfg.Title != "" {
		opts = append(opts, statuslight.WithTitle(cfg.Title))
	}
	if !cfg.SoundEnabled() {
		opts = append(opts, statuslight.WithSoundDisabled())
	}
	return opts
}
