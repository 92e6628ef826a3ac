package statuslight

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/statuslight/statuslight/dashboard"
	"github.com/statuslight/statuslight/internal/broadcast"
	"github.com/statuslight/statuslight/internal/server"
	"github.com/statuslight/statuslight/internal/sound"
	"github.com/statuslight/statuslight/internal/store"
)

const (
	defaultPort     = 3000
	defaultSoundDir = "sounds"
)

// StatusLight is the main orchestrator for the status-broadcast server.
//
// StatusLight holds the current status in memory, exposes HTTP endpoints
// that mutate it, and pushes every change over Server-Sent Events to all
// attached observers. It is created using [New] with functional options
// and started with [StatusLight.Start].
//
// The typical lifecycle is:
//
//	sl, err := statuslight.New(statuslight.WithPort(3000))
//	if err != nil {
//	    slog.Error("failed to create statuslight", "error", err)
//	    os.Exit(1)
//	}
//
//	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
//	defer cancel()
//
//	sl.Start(ctx) // blocks until context cancelled
//
// The caller controls the lifecycle via the context. Cancel the context to
// trigger graceful shutdown.
type StatusLight struct {
	title        string
	port         int
	soundDir     string
	soundEnabled bool
	logger       *slog.Logger
}

// New creates a new [StatusLight] instance with the given options.
//
// All options have sensible defaults:
//   - Port: 3000
//   - Sound: enabled, cue assets read from the "sounds" directory
//
// Returns an error if any option is invalid.
//
// Example:
//
//	sl, err := statuslight.New(
//	    statuslight.WithPort(9090),
//	    statuslight.WithTitle("Build Monitor"),
//	    statuslight.WithSoundDisabled(),
//	)
func New(opts ...Option) (*StatusLight, error) {
	cfg := &slConfig{
		port:         defaultPort,
		soundDir:     defaultSoundDir,
		soundEnabled: true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.port < 1 || cfg.port > 65535 {
		return nil, fmt.Errorf("port must be between 1 and 65535, got %d", cfg.port)
	}

	// default to slog.Default() if no logger provided
	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	return &StatusLight{
		title:        cfg.title,
		port:         cfg.port,
		soundDir:     cfg.soundDir,
		soundEnabled: cfg.soundEnabled,
		logger:       logger,
	}, nil
}

// Start runs the status-broadcast server.
//
// Start is a blocking call that runs until the provided context is
// cancelled. During execution:
//
//   - The HTTP server listens on the configured port
//   - The status starts as [StatusIdle] and changes only via the mutating routes
//   - Every change is pushed to all attached /events stream clients
//   - The dashboard is available at http://localhost:<port>
//
// The caller controls the lifecycle via context cancellation. For signal
// handling, use [signal.NotifyContext]:
//
//	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
//	defer cancel()
//	sl.Start(ctx)
//
// Returns nil on graceful shutdown. Returns an error if the HTTP server
// fails to start.
func (sl *StatusLight) Start(ctx context.Context) error {
	sl.logger.Info("statuslight starting",
		"port", sl.port,
		"sound", sl.soundEnabled,
	)
	sl.logger.Info("dashboard available", "url", fmt.Sprintf("http://localhost:%d", sl.port))
	sl.logger.Info("endpoints",
		"idle", "/red /idle",
		"processing", "/yellow /processing",
		"waiting", "/waiting /prompt",
		"complete", "/green /complete",
	)

	// check if context already cancelled
	if ctx.Err() != nil {
		return nil
	}

	statusStore := store.New(StatusIdle.String())
	registry := broadcast.NewRegistry()
	player := sound.NewPlayer(sl.soundDir, sl.soundEnabled, sl.logger)

	// only the waiting and complete transitions carry an audio cue
	hook := func(status string) {
		switch Status(status) {
		case StatusWaiting:
			player.Play(sound.CueWaiting)
		case StatusComplete:
			player.Play(sound.CueComplete)
		}
	}

	broadcaster := broadcast.NewBroadcaster(statusStore, registry, hook, sl.logger)

	httpServer := server.NewServer(statusStore, registry, broadcaster, sl.port, dashboard.Assets, sl.title, sl.logger)
	if err := httpServer.Start(ctx); err != nil {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	<-ctx.Done()
	sl.logger.Info("statuslight stopped")
	return nil
}

// Port returns the configured HTTP port.
func (sl *StatusLight) Port() int {
	return sl.port
}

// Title returns the configured dashboard title.
func (sl *StatusLight) Title() string {
	return sl.title
}

// SoundEnabled reports whether audio cues are enabled.
func (sl *StatusLight) SoundEnabled() bool {
	return sl.soundEnabled
}
