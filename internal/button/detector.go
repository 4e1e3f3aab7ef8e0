package button

import "time"

// Detector converts raw polled levels from one pushbutton into debounced
// single-tap, double-tap, and long-press events.
//
// Poll must be called at an interval shorter than the debounce period.
// Calling it less often does not corrupt state, it only widens the window
// during which contact bounce can leak through.
//
// Detector is not safe for concurrent use: the same goroutine that calls
// Poll is expected to consume events between polls.
type Detector struct {
	activeLevel Level
	state       State
	event       Event

	debouncePeriod     time.Duration
	doubleTapWindow    time.Duration
	longPressThreshold time.Duration

	doubleTapEnabled bool
	longPressEnabled bool

	// lockout is true while samples are ignored after a transition, to
	// absorb contact bounce.
	lockout      bool
	lockoutStart time.Time

	// delayStart anchors the double-tap window and long-press threshold.
	// It is set at the initial press and intentionally never restarted at
	// release: the double-tap window is measured from the first press.
	delayStart time.Time

	// active is the last trusted (non-lockout) reading of the line.
	active bool
}

// NewDetector creates a detector for a button whose pressed state reads as
// activeLevel. Optional events start disabled and timings start at the
// package defaults.
func NewDetector(activeLevel Level) *Detector {
	return &Detector{
		activeLevel:        activeLevel,
		state:              StateReady,
		event:              EventNone,
		debouncePeriod:     DefaultDebouncePeriod,
		doubleTapWindow:    DefaultDoubleTapWindow,
		longPressThreshold: DefaultLongPressThreshold,
	}
}

// EnableEvents enables the optional events named in mask and disables the
// ones absent from it. Bits outside the known masks are ignored.
func (d *Detector) EnableEvents(mask EventMask) {
	d.doubleTapEnabled = mask&MaskDoubleTap != 0
	d.longPressEnabled = mask&MaskLongPress != 0
}

// SetDelays overrides the timing values. A zero or negative value leaves
// the corresponding setting unchanged. No upper bound is enforced; the
// caller is responsible for keeping the debounce period shorter than the
// poll interval tolerance and the double-tap window.
func (d *Detector) SetDelays(debounce, doubleTap, longPress time.Duration) {
	if debounce > 0 {
		d.debouncePeriod = debounce
	}
	if doubleTap > 0 {
		d.doubleTapWindow = doubleTap
	}
	if longPress > 0 {
		d.longPressThreshold = longPress
	}
}

// Poll advances the state machine with a fresh raw sample taken at time now.
// While the debounce lockout is active the sample is ignored entirely; the
// poll that observes the lockout expire also consumes no sample, so the
// first trusted reading happens on the following poll.
func (d *Detector) Poll(raw Level, now time.Time) {
	if d.lockout {
		if now.Sub(d.lockoutStart) > d.debouncePeriod {
			d.lockout = false
		}
		return
	}

	d.active = raw == d.activeLevel

	switch d.state {
	case StateReady:
		if d.active {
			d.startLockout(now)
			d.delayStart = now
			if d.doubleTapEnabled || d.longPressEnabled {
				d.state = StateAwaitLong
			} else {
				// No competing detection; report the press immediately.
				d.event = EventSingleTap
				d.state = StateAwaitRelease
			}
		}

	case StateAwaitLong:
		if d.active {
			if d.longPressEnabled && now.Sub(d.delayStart) > d.longPressThreshold {
				d.event = EventLongPress
				d.state = StateAwaitRelease
			}
		} else {
			// Released before the long-press threshold.
			d.startLockout(now)
			if d.doubleTapEnabled {
				// delayStart keeps counting from the first press; it is
				// the double-tap window reference.
				d.state = StateAwaitSecondTap
			} else {
				d.event = EventSingleTap
				d.state = StateReady
			}
		}

	case StateAwaitSecondTap:
		if now.Sub(d.delayStart) > d.doubleTapWindow {
			// Window lapsed with no second press: it was a single tap.
			d.event = EventSingleTap
			d.state = StateReady
		} else if d.active {
			d.startLockout(now)
			d.event = EventDoubleTap
			d.state = StateAwaitRelease
		}

	case StateAwaitRelease:
		if !d.active {
			d.startLockout(now)
			d.state = StateReady
		}
	}
}

func (d *Detector) startLockout(now time.Time) {
	d.lockout = true
	d.lockoutStart = now
}

// SingleTap reports and clears a pending single-tap event. It returns true
// at most once per detected event and leaves any other pending event kind
// untouched.
func (d *Detector) SingleTap() bool {
	return d.consume(EventSingleTap)
}

// DoubleTap reports and clears a pending double-tap event.
func (d *Detector) DoubleTap() bool {
	return d.consume(EventDoubleTap)
}

// LongPress reports and clears a pending long-press event.
func (d *Detector) LongPress() bool {
	return d.consume(EventLongPress)
}

func (d *Detector) consume(kind Event) bool {
	if d.event != kind {
		return false
	}
	d.event = EventNone
	return true
}

// EventDetected reports whether an event is pending. It never clears it.
func (d *Detector) EventDetected() bool {
	return d.event != EventNone
}

// TakeEvent returns the pending event and clears it. It returns EventNone
// when nothing is pending.
func (d *Detector) TakeEvent() Event {
	e := d.event
	d.event = EventNone
	return e
}

// CurrentState returns the current machine state.
func (d *Detector) CurrentState() State {
	return d.state
}
