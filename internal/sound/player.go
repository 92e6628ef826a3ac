package sound

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Cue identifies one of the audio prompts.
//
// The cue name doubles as the asset filename: a cue plays
// <dir>/<cue>.wav if that file exists.
type Cue string

const (
	// CueWaiting plays when the status transitions to waiting.
	CueWaiting Cue = "waiting"

	// CueComplete plays when the status transitions to complete.
	CueComplete Cue = "complete"
)

// Player plays short audio cues by shelling out to the platform's
// playback tool.
//
// Playback is strictly best-effort: a disabled player, an unsupported
// platform, a missing asset, or a failed spawn all log and return without
// surfacing an error. Play never blocks the caller.
type Player struct {
	dir     string
	enabled bool
	logger  *slog.Logger
}

// NewPlayer creates a [Player] reading cue assets from dir.
//
// An empty dir or enabled=false yields a player whose Play is a no-op.
func NewPlayer(dir string, enabled bool, logger *slog.Logger) *Player {
	return &Player{
		dir:     dir,
		enabled: enabled && dir != "",
		logger:  logger,
	}
}

// Enabled reports whether the player will attempt playback.
func (p *Player) Enabled() bool {
	return p.enabled
}

// Play triggers playback of the given cue in a detached goroutine and
// returns immediately. Failures are logged, never returned: the triggering
// request must not be delayed or failed by the side effect.
func (p *Player) Play(cue Cue) {
	if !p.enabled {
		return
	}
	go p.play(cue)
}

// play runs the platform playback tool synchronously. Only called from the
// goroutine spawned by Play, and directly from tests.
func (p *Player) play(cue Cue) {
	path := filepath.Join(p.dir, string(cue)+".wav")
	if _, err := os.Stat(path); err != nil {
		p.logger.Warn("sound asset missing, cue skipped",
			"cue", cue,
			"path", path,
		)
		return
	}

	name, args, ok := playerCommand(path)
	if !ok {
		p.logger.Warn("no audio playback tool for platform, cue skipped",
			"cue", cue,
			"os", runtime.GOOS,
		)
		return
	}

	if err := exec.Command(name, args...).Run(); err != nil {
		p.logger.Warn("sound playback failed",
			"cue", cue,
			"tool", name,
			"error", err,
		)
	}
}

// playerCommand returns the platform playback invocation for the asset at
// path. ok is false on platforms with no known playback tool.
func playerCommand(path string) (name string, args []string, ok bool) {
	switch runtime.GOOS {
	case "darwin":
		return "afplay", []string{path}, true
	case "linux":
		return "aplay", []string{"-q", path}, true
	case "windows":
		script := fmt.Sprintf("(New-Object Media.SoundPlayer %q).PlaySync()", path)
		return "powershell", []string{"-NoProfile", "-Command", script}, true
	}
	return "", nil, false
}
