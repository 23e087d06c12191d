package input

import (
	"sync/atomic"
)

// DefaultStepsPerDetent matches the common EC11-style encoder: four
// quadrature transitions per physical click-stop.
const DefaultStepsPerDetent = 4

// quadTable maps (previous code << 2 | current code) to a step direction.
// Codes are the 2-bit Gray values (A<<1 | B). Illegal double transitions
// decode to 0 and are dropped.
var quadTable = [16]int32{
	0, -1, 1, 0,
	1, 0, 0, -1,
	-1, 0, 0, 1,
	0, 1, -1, 0,
}

// Quadrature decodes a two-line rotary encoder. Tick is safe to call from a
// pin interrupt; Detents is for the main loop. The accumulator and changed
// flag are the only state shared across that boundary, and both are atomic.
type Quadrature struct {
	accum   atomic.Int32
	changed atomic.Uint32

	// interrupt-owned
	last uint8

	// consumer-owned
	stepsPerDetent int32
	lastDetent     int32
}

// NewQuadrature builds a decoder. stepsPerDetent values below 1 fall back
// to DefaultStepsPerDetent.
func NewQuadrature(stepsPerDetent int) *Quadrature {
	s := int32(stepsPerDetent)
	if s < 1 {
		s = DefaultStepsPerDetent
	}
	return &Quadrature{stepsPerDetent: s}
}

// Tick records one edge on either encoder line. Call it from the interrupt
// handler for both pins with the current levels of both lines.
func (q *Quadrature) Tick(a, b bool) {
	var code uint8
	if a {
		code |= 2
	}
	if b {
		code |= 1
	}
	step := quadTable[q.last<<2|code]
	q.last = code
	if step == 0 {
		return
	}
	q.accum.Add(step)
	q.changed.Store(1)
}

// Changed reports whether any transition happened since the last Detents
// call.
func (q *Quadrature) Changed() bool { return q.changed.Load() != 0 }

// Steps returns the raw monotonic transition count.
func (q *Quadrature) Steps() int { return int(q.accum.Load()) }

// Detents returns how many whole detents the encoder moved since the last
// call, negative for reverse rotation. The shared accumulator is never
// reset; only the consumer's last-seen snapshot advances.
func (q *Quadrature) Detents() int {
	q.changed.Store(0)
	pos := q.accum.Load() / q.stepsPerDetent
	delta := pos - q.lastDetent
	q.lastDetent = pos
	return int(delta)
}
