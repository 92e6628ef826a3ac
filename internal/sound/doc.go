// Package sound plays optional local audio cues for status transitions.
//
// Cues are a best-effort side effect: playback runs detached from the
// request that triggered it, and every failure mode (disabled player,
// unsupported platform, missing asset file, spawn failure) degrades to a
// log line. Nothing in this package ever blocks or fails an HTTP response.
package sound
