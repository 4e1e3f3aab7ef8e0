// Package button contains the pure press-event state machine for a single
// SPST momentary pushbutton. This package has NO external dependencies (no
// GPIO, MQTT, OS, or time.Sleep). Time is always injectable via time.Time
// parameters.
package button

import "time"

// Level represents a raw logic level on the input line.
type Level int

const (
	Low  Level = 0
	High Level = 1
)

// String returns the conventional name of the level.
func (l Level) String() string {
	if l == Low {
		return "LOW"
	}
	return "HIGH"
}

// State is the current phase of the detection state machine.
type State int

const (
	// StateReady waits for a new button press.
	StateReady State = iota
	// StateAwaitLong holds while the button is down, waiting for the
	// long-press threshold or for release ahead of a possible second tap.
	StateAwaitLong
	// StateAwaitSecondTap holds after release, waiting for a second press
	// within the double-tap window.
	StateAwaitSecondTap
	// StateAwaitRelease waits for the button to go inactive before
	// returning to StateReady.
	StateAwaitRelease
)

// String returns a short name for the state.
func (s State) String() string {
	switch s {
	case StateReady:
		return "READY"
	case StateAwaitLong:
		return "AWAIT_LONG"
	case StateAwaitSecondTap:
		return "AWAIT_SECOND_TAP"
	case StateAwaitRelease:
		return "AWAIT_RELEASE"
	default:
		return "UNKNOWN"
	}
}

// Event is a recognized press event. The detector holds at most one pending
// event; a new detection overwrites an unconsumed one (single-slot register,
// not a queue).
type Event int

const (
	EventNone Event = iota
	EventSingleTap
	EventDoubleTap
	EventLongPress
)

// String returns the wire/display name of the event.
func (e Event) String() string {
	switch e {
	case EventSingleTap:
		return "SINGLE_TAP"
	case EventDoubleTap:
		return "DOUBLE_TAP"
	case EventLongPress:
		return "LONG_PRESS"
	default:
		return "NONE"
	}
}

// EventMask selects which optional events a detector recognizes.
// Single-tap detection is always active and is not representable here.
type EventMask uint8

const (
	MaskDoubleTap EventMask = 1 << iota
	MaskLongPress
)

// Default timing values; overridable per detector with SetDelays.
const (
	DefaultDebouncePeriod     = 80 * time.Millisecond
	DefaultDoubleTapWindow    = 300 * time.Millisecond
	DefaultLongPressThreshold = 1000 * time.Millisecond
)
