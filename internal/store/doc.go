// Package store holds the current status value shared between the HTTP
// router and the broadcaster.
//
// This package is internal to StatusLight. The store is deliberately tiny:
// a single mutex-guarded string. Fan-out to connected clients lives in the
// broadcast package; the store only answers "what is the status right now"
// for the read endpoint and for the initial replay sent to newly attached
// stream clients.
package store
