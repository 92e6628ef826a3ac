// Package statuslight provides a local status-broadcast server that drives
// a physical or simulated indicator (an LED strip, a browser dashboard)
// from an external automation process.
//
// An automation pipeline calls plain HTTP endpoints as side-effect
// triggers (/yellow when work starts, /prompt when it needs input, /green
// when it finishes); statuslight holds the current status in memory and
// pushes every change in real time over Server-Sent Events to any number
// of connected observers.
//
// # Quick Start
//
// Create a server and run it with graceful shutdown:
//
//	sl, _ := statuslight.New(statuslight.WithPort(3000))
//
//	// Set up graceful shutdown on SIGINT/SIGTERM
//	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
//	defer stop()
//
//	sl.Start(ctx) // blocks until context is cancelled
//
// Then drive it from anywhere:
//
//	curl http://localhost:3000/yellow   # processing
//	curl http://localhost:3000/prompt   # waiting for input (plays a cue)
//	curl http://localhost:3000/green    # complete (plays a cue)
//	curl http://localhost:3000/status   # {"status":"complete"}
//
// # Configuration
//
// StatusLight uses the functional options pattern for configuration:
//
//	sl, err := statuslight.New(
//	    statuslight.WithPort(9090),
//	    statuslight.WithTitle("Build Monitor"),
//	    statuslight.WithSoundDir("/usr/share/sounds/statuslight"),
//	    statuslight.WithLogger(logger),
//	)
//
// For the standalone binary with YAML configuration, see cmd/statuslight
// and the config package.
//
// # Status model
//
// The status is one of four values: idle, processing, waiting, complete.
// Exactly one is current at any instant; any status may follow any other.
// Observers attached to /events receive the current status immediately on
// connect and one message per subsequent change. Delivery is best-effort:
// a slow consumer loses events rather than delaying anyone else.
package statuslight
