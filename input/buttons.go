package input

import (
	"time"
)

// State is one tick's worth of resolved input: at most one event per button
// plus the encoder movement since the previous tick.
type State struct {
	Up      Event
	Down    Event
	Select  Event
	Detents int
}

// Idle reports whether nothing happened this tick.
func (s State) Idle() bool {
	return s.Up == EventNone && s.Down == EventNone && s.Select == EventNone && s.Detents == 0
}

// Buttons composes the up/down/select debouncers and the optional encoder
// into a single per-tick poll. Any of the parts may be absent; a missing
// part simply never contributes events.
//
// When an encoder is present it owns the up/down axis: detents arrive in
// State.Detents and the up/down debouncers are not polled, so the two
// sources cannot fight over the cursor.
type Buttons struct {
	up   *Debouncer
	down *Debouncer
	sel  *Debouncer
	enc  *Quadrature
}

// NewButtons wires the input sources together. Pass nil for anything the
// hardware does not have.
func NewButtons(up, down, sel *Debouncer, enc *Quadrature) *Buttons {
	return &Buttons{up: up, down: down, sel: sel, enc: enc}
}

// Select exposes the select-button debouncer so the runtime can retune its
// hold threshold per screen context. May return nil.
func (b *Buttons) Select() *Debouncer { return b.sel }

// HasEncoder reports whether a quadrature encoder drives the up/down axis.
func (b *Buttons) HasEncoder() bool { return b.enc != nil }

// Encoder returns the quadrature decoder, or nil.
func (b *Buttons) Encoder() *Quadrature { return b.enc }

// Poll advances every input source once and returns the tick's events.
func (b *Buttons) Poll(now time.Time) State {
	var st State
	if b == nil {
		return st
	}
	if b.sel.Enabled() {
		st.Select = b.sel.Poll(now)
	}
	if b.enc != nil {
		if b.enc.Changed() {
			st.Detents = b.enc.Detents()
		}
		return st
	}
	if b.up.Enabled() {
		st.Up = b.up.Poll(now)
	}
	if b.down.Enabled() {
		st.Down = b.down.Poll(now)
	}
	return st
}

// ResetGestures drops any in-flight presses, for context switches where a
// held button must not leak into the new owner of the input.
func (b *Buttons) ResetGestures() {
	if b == nil {
		return
	}
	if b.up != nil {
		b.up.Reset()
	}
	if b.down != nil {
		b.down.Reset()
	}
	if b.sel != nil {
		b.sel.Reset()
	}
}
