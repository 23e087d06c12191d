// Package input turns raw pin levels into discrete menu events: debounced
// button presses of various lengths, and quadrature encoder detents.
package input

import (
	"time"
)

// ActiveLevel selects which raw pin level means "pressed". Boards with
// pull-down resistors use ActiveHigh, boards with pull-ups use ActiveLow.
type ActiveLevel uint8

const (
	ActiveHigh ActiveLevel = iota
	ActiveLow
)

func (l ActiveLevel) String() string {
	switch l {
	case ActiveHigh:
		return "high"
	case ActiveLow:
		return "low"
	default:
		return "INVALID"
	}
}

// ParseActiveLevel interprets a configuration string. Unrecognized input
// falls back to ActiveHigh and reports ok=false so the caller can log it.
func ParseActiveLevel(s string) (l ActiveLevel, ok bool) {
	switch s {
	case "high", "HIGH", "pulldown":
		return ActiveHigh, true
	case "low", "LOW", "pullup":
		return ActiveLow, true
	default:
		return ActiveHigh, false
	}
}

// Event is a single debounced button event.
type Event uint8

const (
	EventNone Event = iota
	// EventShortPress fires on release, when the button was held for less
	// than the hold threshold.
	EventShortPress
	// EventLongPressStart fires once, while still held, when the hold
	// threshold is crossed.
	EventLongPressStart
	// EventRepeat fires every RepeatEvery after EventLongPressStart, while
	// the button remains held.
	EventRepeat
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventShortPress:
		return "short"
	case EventLongPressStart:
		return "long"
	case EventRepeat:
		return "repeat"
	default:
		return "INVALID"
	}
}

const (
	// DefaultSettle is how long a raw level must hold steady before the
	// debounced level follows it.
	DefaultSettle = 20 * time.Millisecond
	// DefaultHold is the press duration separating short from long presses.
	DefaultHold = 500 * time.Millisecond
	// DefaultRepeatEvery is the long-hold repeat cadence.
	DefaultRepeatEvery = 200 * time.Millisecond
)

// Debouncer is the per-button press state machine. It samples one pin every
// loop tick and emits at most one event per tick. A Debouncer with a nil
// read func is disabled and never emits anything.
//
// The hold threshold is deliberately mutable: different screen contexts use
// different long-press timings for the same physical button.
type Debouncer struct {
	read   func() bool
	active ActiveLevel

	settle      time.Duration
	hold        time.Duration
	repeatEvery time.Duration

	raw        bool // last raw sample, as a logical pressed level
	debounced  bool
	rawSince   time.Time
	pressStart time.Time
	lastRepeat time.Time
	longFired  bool
	sampled    bool
}

// NewDebouncer builds a debouncer for one button. read returns the raw pin
// level; pass nil for an absent button.
func NewDebouncer(read func() bool, active ActiveLevel) *Debouncer {
	return &Debouncer{
		read:        read,
		active:      active,
		settle:      DefaultSettle,
		hold:        DefaultHold,
		repeatEvery: DefaultRepeatEvery,
	}
}

// SetHold retunes the short/long press boundary. Zero or negative durations
// are ignored.
func (d *Debouncer) SetHold(t time.Duration) {
	if t > 0 {
		d.hold = t
	}
}

// Hold reports the current short/long press boundary.
func (d *Debouncer) Hold() time.Duration { return d.hold }

// SetRepeatEvery retunes the long-hold repeat cadence.
func (d *Debouncer) SetRepeatEvery(t time.Duration) {
	if t > 0 {
		d.repeatEvery = t
	}
}

// Enabled reports whether this debouncer has a pin to sample.
func (d *Debouncer) Enabled() bool { return d != nil && d.read != nil }

// Pressed reports the current debounced level.
func (d *Debouncer) Pressed() bool { return d.debounced }

// Reset discards any in-flight gesture, as if the button were released.
func (d *Debouncer) Reset() {
	d.raw = false
	d.debounced = false
	d.longFired = false
	d.sampled = false
}

// Poll samples the pin and advances the state machine. It must be called
// once per loop tick with a monotonically non-decreasing now.
func (d *Debouncer) Poll(now time.Time) Event {
	if !d.Enabled() {
		return EventNone
	}

	raw := d.read() == (d.active == ActiveHigh)
	if !d.sampled || raw != d.raw {
		d.raw = raw
		d.rawSince = now
		d.sampled = true
	}
	if raw != d.debounced && now.Sub(d.rawSince) < d.settle {
		// still bouncing
		return d.held(now)
	}

	if raw == d.debounced {
		return d.held(now)
	}
	d.debounced = raw

	if raw {
		d.pressStart = now
		d.longFired = false
		return EventNone
	}

	// release
	if d.longFired {
		return EventNone
	}
	return EventShortPress
}

// held emits long-press-start and repeat events for a button that is being
// held down.
func (d *Debouncer) held(now time.Time) Event {
	if !d.debounced {
		return EventNone
	}
	if !d.longFired {
		if now.Sub(d.pressStart) >= d.hold {
			d.longFired = true
			d.lastRepeat = now
			return EventLongPressStart
		}
		return EventNone
	}
	if now.Sub(d.lastRepeat) >= d.repeatEvery {
		d.lastRepeat = now
		return EventRepeat
	}
	return EventNone
}
