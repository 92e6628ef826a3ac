package statuslight

import "fmt"

// Status represents the current external-facing indicator state.
//
// Status is a string type that can hold one of four predefined values:
// [StatusIdle], [StatusProcessing], [StatusWaiting], or [StatusComplete].
// Using a string type allows for easy JSON serialization and human-readable
// logging while maintaining type safety through the defined constants.
//
// Exactly one status is current at any instant. Transitions are total:
// any status may follow any other.
type Status string

const (
	// StatusIdle indicates no work is in progress. Shown as a red LED.
	StatusIdle Status = "idle"

	// StatusProcessing indicates work is actively in progress.
	// Shown as a yellow LED.
	StatusProcessing Status = "processing"

	// StatusWaiting indicates the system is blocked waiting for input.
	// Shown as a blinking yellow LED.
	StatusWaiting Status = "waiting"

	// StatusComplete indicates work has finished. Shown as a green LED.
	StatusComplete Status = "complete"
)

// String returns the string representation of the status.
// This implements the fmt.Stringer interface.
func (s Status) String() string {
	return string(s)
}

// Valid reports whether s is one of the four recognized status values.
func (s Status) Valid() bool {
	switch s {
	case StatusIdle, StatusProcessing, StatusWaiting, StatusComplete:
		return true
	}
	return false
}

// ParseStatus converts a string to a [Status].
//
// Returns an error if the string is not one of the four recognized values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown status %q", s)
	}
	return st, nil
}
