package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/statuslight/statuslight"
	"github.com/statuslight/statuslight/config"
)

const (
	shutdownTimeout = 10 * time.Second
)

// newLogger creates a JSON logger for CLI use.
func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// serveCmd starts the StatusLight server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the status-broadcast server",
	Long: `Start the StatusLight server.

The server will:
  - Listen on the configured port (default 3000)
  - Broadcast every status change to connected /events stream clients
  - Serve the LED dashboard UI at /

Configuration is optional; without a file the defaults apply. Flags
override the config file.

The server runs until interrupted (Ctrl+C) or receives SIGTERM.

Example:
  statuslight serve
  statuslight serve -c config.yaml
  statuslight serve --port 9090 --no-sound`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("config", "c", "", "path to config file (optional)")
	serveCmd.Flags().Int("port", 0, "HTTP port (overrides config file)")
	serveCmd.Flags().Bool("no-sound", false, "disable audio cues")
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	configFile, _ := cmd.Flags().GetString("config")
	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		logger.Info("config loaded", "file", configFile)
	}

	// flags win over the config file
	opts := config.Build(cfg)
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		opts = append(opts, statuslight.WithPort(port))
	}
	if noSound, _ := cmd.Flags().GetBool("no-sound"); noSound {
		opts = append(opts, statuslight.WithSoundDisabled())
	}
	opts = append(opts, statuslight.WithLogger(logger))

	sl, err := statuslight.New(opts...)
	if err != nil {
		return fmt.Errorf("failed to create statuslight: %w", err)
	}

	// set up context with signal handling - cancel on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// start server - blocks until context cancelled
	errChan := make(chan error, 1)
	go func() {
		errChan <- sl.Start(ctx)
	}()

	// wait for server to finish
	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		logger.Info("shutdown complete")
		return nil

	case <-ctx.Done():
		// signal received, wait for graceful shutdown with timeout
		select {
		case err := <-errChan:
			if err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			logger.Info("shutdown complete")
			return nil
		case <-time.After(shutdownTimeout):
			logger.Warn("shutdown timed out",
				"timeout", shutdownTimeout.String(),
				"action", "forcing exit",
			)
			return nil
		}
	}
}
