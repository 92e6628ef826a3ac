package broadcast

import (
	"io"
	"log/slog"
	"testing"

	"github.com/statuslight/statuslight/internal/store"
)

// testLogger returns a logger that discards all output for clean test output.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBroadcaster_UpdatesStore(t *testing.T) {
	st := store.New("idle")
	r := NewRegistry()
	b := NewBroadcaster(st, r, nil, testLogger())

	b.Broadcast("processing")

	if got := st.Current(); got != "processing" {
		t.Errorf("store.Current() = %q, want %q", got, "processing")
	}
}

func TestBroadcaster_DeliversToAllClients(t *testing.T) {
	st := store.New("idle")
	r := NewRegistry()
	b := NewBroadcaster(st, r, nil, testLogger())

	clients := make([]*Client, 3)
	for i := range clients {
		clients[i] = r.Register()
	}

	b.Broadcast("complete")

	for _, c := range clients {
		select {
		case got := <-c.Events():
			if got != "complete" {
				t.Errorf("client %s received %q, want %q", c.ID, got, "complete")
			}
		default:
			t.Errorf("client %s received nothing", c.ID)
		}
	}
}

func TestBroadcaster_ExactlyOneMessagePerBroadcast(t *testing.T) {
	st := store.New("idle")
	r := NewRegistry()
	b := NewBroadcaster(st, r, nil, testLogger())

	c := r.Register()
	b.Broadcast("waiting")

	<-c.Events()
	select {
	case got := <-c.Events():
		t.Errorf("received unexpected second message %q", got)
	default:
	}
}

func TestBroadcaster_FullBufferDoesNotBlock(t *testing.T) {
	st := store.New("idle")
	r := NewRegistry()
	b := NewBroadcaster(st, r, nil, testLogger())

	slow := r.Register()
	healthy := r.Register()

	// fill the slow client's buffer; nobody is draining it
	for i := 0; i < eventBuffer; i++ {
		slow.trySend("idle")
	}

	// must return promptly and still deliver to the healthy client,
	// and the mutation must be committed regardless
	b.Broadcast("processing")

	if got := st.Current(); got != "processing" {
		t.Errorf("store.Current() = %q, want %q", got, "processing")
	}
	select {
	case got := <-healthy.Events():
		if got != "processing" {
			t.Errorf("healthy client received %q, want %q", got, "processing")
		}
	default:
		t.Error("healthy client received nothing")
	}

	// slow client still registered: removal is the transport's job
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
}

func TestBroadcaster_HookFires(t *testing.T) {
	st := store.New("idle")
	r := NewRegistry()

	var fired []string
	hook := func(status string) { fired = append(fired, status) }
	b := NewBroadcaster(st, r, hook, testLogger())

	b.Broadcast("waiting")
	b.Broadcast("complete")
	b.Broadcast("idle")

	want := []string{"waiting", "complete", "idle"}
	if len(fired) != len(want) {
		t.Fatalf("hook fired %d times, want %d", len(fired), len(want))
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Errorf("hook call %d = %q, want %q", i, fired[i], want[i])
		}
	}
}

func TestBroadcaster_NilHook(t *testing.T) {
	st := store.New("idle")
	r := NewRegistry()
	b := NewBroadcaster(st, r, nil, testLogger())

	// must not panic
	b.Broadcast("complete")

	if got := st.Current(); got != "complete" {
		t.Errorf("store.Current() = %q, want %q", got, "complete")
	}
}
