package statuslight

import (
	"io"
	"log/slog"
	"testing"
)

func TestWithPort(t *testing.T) {
	sl, err := New(WithPort(9090))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if sl.Port() != 9090 {
		t.Errorf("Port() = %d, want 9090", sl.Port())
	}
}

func TestWithTitle(t *testing.T) {
	sl, err := New(WithTitle("Build Monitor"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if sl.Title() != "Build Monitor" {
		t.Errorf("Title() = %q, want %q", sl.Title(), "Build Monitor")
	}
}

func TestWithSoundDisabled(t *testing.T) {
	sl, err := New(WithSoundDisabled())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if sl.SoundEnabled() {
		t.Error("SoundEnabled() = true, want false")
	}
}

func TestWithLogger(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if _, err := New(WithLogger(logger)); err != nil {
		t.Fatalf("New() error = %v", err)
	}
}

func TestWithLogger_Nil(t *testing.T) {
	if _, err := New(WithLogger(nil)); err == nil {
		t.Error("New(WithLogger(nil)) error = nil, want error")
	}
}
