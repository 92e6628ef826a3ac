package statuslight

import (
	"errors"
	"log/slog"
)

// slConfig holds mutable state during StatusLight construction.
type slConfig struct {
	title        string
	port         int
	soundDir     string
	soundEnabled bool
	logger       *slog.Logger
}

// Option is a function that configures a [StatusLight] instance during
// construction.
//
// Option implements the functional options pattern, allowing optional
// configuration to be passed to [New] in a type-safe, extensible way.
// Options return an error if validation fails.
//
// Built-in options: [WithPort], [WithTitle], [WithSoundDir],
// [WithSoundDisabled], [WithLogger].
type Option func(*slConfig) error

// WithPort sets the HTTP port for the server. Defaults to 3000.
//
// Example:
//
//	sl, err := statuslight.New(statuslight.WithPort(9090))
//
// Port range is validated in [New].
func WithPort(port int) Option {
	return func(cfg *slConfig) error {
		cfg.port = port
		return nil
	}
}

// WithTitle sets the dashboard page title.
//
// Defaults to "StatusLight" when empty.
func WithTitle(title string) Option {
	return func(cfg *slConfig) error {
		cfg.title = title
		return nil
	}
}

// WithSoundDir sets the directory audio cue assets are read from.
//
// The waiting and complete transitions play <dir>/waiting.wav and
// <dir>/complete.wav respectively, when those files exist. Defaults to
// "sounds". An empty dir disables audio cues.
func WithSoundDir(dir string) Option {
	return func(cfg *slConfig) error {
		cfg.soundDir = dir
		return nil
	}
}

// WithSoundDisabled disables the audio cue side effect entirely.
//
// Status broadcasting is unaffected; only the local playback is skipped.
func WithSoundDisabled() Option {
	return func(cfg *slConfig) error {
		cfg.soundEnabled = false
		return nil
	}
}

// WithLogger sets the logger used by all components.
//
// Defaults to [slog.Default] if not specified. Returns an error if the
// logger is nil.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *slConfig) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}
