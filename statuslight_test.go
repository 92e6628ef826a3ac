package statuslight

import (
	"context"
	"io"
	"log/slog"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew_Defaults(t *testing.T) {
	sl, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if sl.Port() != 3000 {
		t.Errorf("Port() = %d, want 3000", sl.Port())
	}
	if !sl.SoundEnabled() {
		t.Error("SoundEnabled() = false, want true")
	}
	if sl.Title() != "" {
		t.Errorf("Title() = %q, want empty", sl.Title())
	}
}

func TestNew_InvalidPort(t *testing.T) {
	for _, port := range []int{0, -1, 65536, 100000} {
		if _, err := New(WithPort(port)); err == nil {
			t.Errorf("New(WithPort(%d)) error = nil, want error", port)
		}
	}
}

func TestStart_CancelledContext(t *testing.T) {
	sl, err := New(WithLogger(testLogger()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// an already-cancelled context returns immediately without binding
	if err := sl.Start(ctx); err != nil {
		t.Errorf("Start() error = %v, want nil", err)
	}
}
