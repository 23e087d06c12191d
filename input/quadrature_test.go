package input

import (
	"testing"
)

// cw plays one full clockwise detent: 00 -> 10 -> 11 -> 01 -> 00.
func cw(q *Quadrature) {
	q.Tick(true, false)
	q.Tick(true, true)
	q.Tick(false, true)
	q.Tick(false, false)
}

// ccw plays one full counter-clockwise detent.
func ccw(q *Quadrature) {
	q.Tick(false, true)
	q.Tick(true, true)
	q.Tick(true, false)
	q.Tick(false, false)
}

func TestQuadratureDetentConversion(t *testing.T) {
	tests := []struct {
		name string
		play func(q *Quadrature)
		want int
	}{
		{"one detent cw", func(q *Quadrature) { cw(q) }, 1},
		{"one detent ccw", func(q *Quadrature) { ccw(q) }, -1},
		{"three detents cw", func(q *Quadrature) { cw(q); cw(q); cw(q) }, 3},
		{"cancelling noise", func(q *Quadrature) {
			q.Tick(true, false) // +1
			q.Tick(false, false) // -1
		}, 0},
		{"half detent", func(q *Quadrature) {
			q.Tick(true, false)
			q.Tick(true, true)
		}, 0},
		{"illegal double transition dropped", func(q *Quadrature) {
			q.Tick(true, true) // 00 -> 11 skips a state
		}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQuadrature(DefaultStepsPerDetent)
			tt.play(q)
			if got := q.Detents(); got != tt.want {
				t.Errorf("Detents() = %d, want %d", got, tt.want)
			}
			if got := q.Detents(); got != 0 {
				t.Errorf("second Detents() = %d, want 0", got)
			}
		})
	}
}

func TestQuadratureAccumulatorIsMonotonic(t *testing.T) {
	q := NewQuadrature(4)
	cw(q)
	if got := q.Detents(); got != 1 {
		t.Fatalf("Detents() = %d, want 1", got)
	}
	// consuming a detent must not reset the shared accumulator
	if got := q.Steps(); got != 4 {
		t.Fatalf("Steps() = %d, want 4", got)
	}
	cw(q)
	if got := q.Detents(); got != 1 {
		t.Fatalf("Detents() after second rotation = %d, want 1", got)
	}
}

func TestQuadratureChangedFlag(t *testing.T) {
	q := NewQuadrature(0) // defaulted
	if q.Changed() {
		t.Fatal("fresh decoder reports changed")
	}
	q.Tick(true, false)
	if !q.Changed() {
		t.Fatal("transition did not set changed flag")
	}
	q.Detents()
	if q.Changed() {
		t.Fatal("consumer read did not clear changed flag")
	}
}

func TestQuadratureHalfDetentCarriesOver(t *testing.T) {
	q := NewQuadrature(4)
	q.Tick(true, false)
	q.Tick(true, true)
	if got := q.Detents(); got != 0 {
		t.Fatalf("Detents() mid-detent = %d, want 0", got)
	}
	q.Tick(false, true)
	q.Tick(false, false)
	if got := q.Detents(); got != 1 {
		t.Fatalf("Detents() after completing detent = %d, want 1", got)
	}
}
