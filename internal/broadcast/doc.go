// Package broadcast implements the status fan-out core: the registry of
// attached stream clients and the broadcaster that pushes status changes
// to all of them.
//
// The main components are:
//
//   - [Registry]: concurrency-safe set of attached clients, keyed by UUID
//   - [Client]: one attached observer with a buffered event channel
//   - [Broadcaster]: the single mutation path for the current status
//
// Delivery is non-blocking throughout. Each client has a bounded event
// buffer; a slow consumer loses events rather than delaying delivery to
// other clients or to the HTTP router. Client removal is driven only by
// the transport's disconnect signal, never by delivery failure.
package broadcast
