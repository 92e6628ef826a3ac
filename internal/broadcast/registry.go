package broadcast

import (
	"sync"

	"github.com/google/uuid"
)

// eventBuffer is the per-client channel capacity. A client whose handler
// falls this far behind has its oldest undelivered events dropped rather
// than blocking the broadcast path.
const eventBuffer = 16

// Client represents one attached stream observer.
//
// The registry holds the send side of the client's event channel; the
// transport handler that created the client owns the underlying connection
// and drains [Client.Events] until it is closed or the peer disconnects.
type Client struct {
	// ID uniquely identifies this client for the lifetime of its connection.
	ID uuid.UUID

	ch chan string
}

// Events returns the channel on which the client receives status values.
//
// The channel is closed when the client is unregistered.
func (c *Client) Events() <-chan string {
	return c.ch
}

// trySend delivers v to the client without blocking.
// Reports false when the client's buffer is full and the event was dropped.
func (c *Client) trySend(v string) bool {
	select {
	case c.ch <- v:
		return true
	default:
		return false
	}
}

// Registry tracks the set of currently attached stream clients.
//
// Registry is safe for concurrent use. Attach and disconnect events mutate
// membership from different goroutines; [Registry.ForEach] always observes
// a complete, consistent client set.
type Registry struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]*Client
}

// NewRegistry creates an empty [Registry].
func NewRegistry() *Registry {
	return &Registry{clients: make(map[uuid.UUID]*Client)}
}

// Register allocates a fresh client with a unique id and a buffered event
// channel, stores it, and returns it. It never fails.
func (r *Registry) Register() *Client {
	c := &Client{
		ID: uuid.New(),
		ch: make(chan string, eventBuffer),
	}

	r.mu.Lock()
	r.clients[c.ID] = c
	r.mu.Unlock()

	return c
}

// Unregister removes the client with the given id and closes its event
// channel. It is idempotent: unregistering an unknown or already-removed id
// is a no-op, guarding against double-disconnect signals.
func (r *Registry) Unregister(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.clients[id]
	if !ok {
		return
	}
	delete(r.clients, id)
	close(c.ch)
}

// ForEach invokes fn with each currently registered client, in no
// particular order.
//
// The read lock is held for the duration of the iteration, so fn must not
// block; channel sends through [Client.trySend] never do. Holding the lock
// excludes concurrent Unregister calls, which keeps sends and channel
// closes mutually exclusive.
func (r *Registry) ForEach(fn func(*Client)) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.clients {
		fn(c)
	}
}

// Len returns the number of currently registered clients.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients)
}
