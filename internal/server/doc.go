// Package server implements the HTTP transport for StatusLight.
//
// It routes short-lived requests (status mutations, the JSON read endpoint,
// the embedded dashboard page) and long-lived Server-Sent Events streams
// over one listener, with permissive CORS on every response.
package server
