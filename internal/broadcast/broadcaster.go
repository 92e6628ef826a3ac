package broadcast

import (
	"log/slog"

	"github.com/statuslight/statuslight/internal/store"
)

// Hook is invoked after each broadcast with the new status value.
//
// Hooks trigger best-effort side effects (an audio cue, for example) and
// must not block: implementations are expected to detach any slow work into
// their own goroutine and surface failures through their own logging.
type Hook func(status string)

// Broadcaster is the single mutation path for the current status.
//
// Broadcast writes the store and fans the new value out to every
// registered client. No other component writes the store directly.
type Broadcaster struct {
	store    *store.StatusStore
	registry *Registry
	hook     Hook
	logger   *slog.Logger
}

// NewBroadcaster creates a [Broadcaster] over the given store and registry.
//
// hook may be nil if no side effects are wanted.
func NewBroadcaster(st *store.StatusStore, reg *Registry, hook Hook, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		store:    st,
		registry: reg,
		hook:     hook,
		logger:   logger,
	}
}

// Broadcast commits status as the new current value and pushes it to every
// registered client.
//
// Delivery is non-blocking: a client whose buffer is full has the event
// dropped and logged, without affecting delivery to the remaining clients.
// Broadcast never unregisters a client; removal is driven solely by the
// transport's disconnect signal, so the two removal paths cannot race.
// The status mutation is committed regardless of delivery success.
func (b *Broadcaster) Broadcast(status string) {
	b.store.Set(status)

	b.registry.ForEach(func(c *Client) {
		if !c.trySend(status) {
			b.logger.Warn("client lagging, event dropped",
				"client_id", c.ID,
				"status", status,
			)
		}
	})

	b.logger.Info("status changed",
		"status", status,
		"clients", b.registry.Len(),
	)

	if b.hook != nil {
		b.hook(status)
	}
}
