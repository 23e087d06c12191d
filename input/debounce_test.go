package input

import (
	"testing"
	"time"
)

// fakePin is a settable raw level.
type fakePin struct {
	level bool
}

func (p *fakePin) read() bool { return p.level }

func newTestButton(p *fakePin) (*Debouncer, time.Time) {
	d := NewDebouncer(p.read, ActiveHigh)
	return d, time.Unix(1000, 0)
}

// step polls repeatedly at interval, returning every non-None event seen.
func step(d *Debouncer, start time.Time, interval, total time.Duration) (time.Time, []Event) {
	var events []Event
	now := start
	for elapsed := time.Duration(0); elapsed <= total; elapsed += interval {
		if ev := d.Poll(now); ev != EventNone {
			events = append(events, ev)
		}
		now = now.Add(interval)
	}
	return now, events
}

func TestDebouncerSteadyStateIsSilent(t *testing.T) {
	pin := &fakePin{}
	d, now := newTestButton(pin)

	now, events := step(d, now, 5*time.Millisecond, time.Second)
	if len(events) != 0 {
		t.Fatalf("idle button produced events: %v", events)
	}

	// a settled press is likewise silent until threshold or release
	pin.level = true
	_, events = step(d, now, 5*time.Millisecond, 400*time.Millisecond)
	if len(events) != 0 {
		t.Fatalf("settled press produced early events: %v", events)
	}
	if !d.Pressed() {
		t.Fatal("button did not debounce to pressed")
	}
}

func TestDebouncerShortVsLongPartition(t *testing.T) {
	tests := []struct {
		name string
		hold time.Duration
		want []Event
	}{
		{name: "released well before threshold", hold: 100 * time.Millisecond, want: []Event{EventShortPress}},
		{name: "released just before threshold", hold: 450 * time.Millisecond, want: []Event{EventShortPress}},
		{name: "released after threshold", hold: 600 * time.Millisecond, want: []Event{EventLongPressStart}},
		{name: "held through one repeat", hold: 750 * time.Millisecond, want: []Event{EventLongPressStart, EventRepeat}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pin := &fakePin{}
			d, now := newTestButton(pin)

			pin.level = true
			now, events := step(d, now, 5*time.Millisecond, tt.hold)
			pin.level = false
			_, rel := step(d, now, 5*time.Millisecond, 100*time.Millisecond)
			events = append(events, rel...)

			if len(events) != len(tt.want) {
				t.Fatalf("events = %v, want %v", events, tt.want)
			}
			for i := range events {
				if events[i] != tt.want[i] {
					t.Fatalf("events = %v, want %v", events, tt.want)
				}
			}
		})
	}
}

func TestDebouncerRepeatCadence(t *testing.T) {
	pin := &fakePin{level: true}
	d, now := newTestButton(pin)

	// 500ms hold + 1s of repeating at 200ms
	_, events := step(d, now, 5*time.Millisecond, 1500*time.Millisecond)

	if len(events) == 0 || events[0] != EventLongPressStart {
		t.Fatalf("first event = %v, want long press start", events)
	}
	repeats := 0
	for _, ev := range events[1:] {
		if ev != EventRepeat {
			t.Fatalf("unexpected event %v after long press start", ev)
		}
		repeats++
	}
	// settle 20ms + hold 500ms, then every 200ms until the 1.5s mark
	if repeats != 4 {
		t.Fatalf("repeats = %d, want 4", repeats)
	}
}

func TestDebouncerIgnoresBounce(t *testing.T) {
	pin := &fakePin{}
	d := NewDebouncer(pin.read, ActiveHigh)
	now := time.Unix(1000, 0)

	// rapid glitches shorter than the settle interval never register
	for i := 0; i < 20; i++ {
		pin.level = i%2 == 0
		if ev := d.Poll(now); ev != EventNone {
			t.Fatalf("bounce produced event %v", ev)
		}
		now = now.Add(2 * time.Millisecond)
	}
	pin.level = false
	if _, events := step(d, now, 5*time.Millisecond, 200*time.Millisecond); len(events) != 0 {
		t.Fatalf("settling after bounce produced events %v", events)
	}
}

func TestDebouncerDisabledPin(t *testing.T) {
	d := NewDebouncer(nil, ActiveLow)
	now := time.Unix(1000, 0)
	if _, events := step(d, now, 5*time.Millisecond, time.Second); len(events) != 0 {
		t.Fatalf("disabled pin produced events %v", events)
	}
	if d.Enabled() {
		t.Fatal("nil-read debouncer reports enabled")
	}
}

func TestDebouncerActiveLow(t *testing.T) {
	pin := &fakePin{level: true} // pull-up idle
	d := NewDebouncer(pin.read, ActiveLow)
	now := time.Unix(1000, 0)

	now, events := step(d, now, 5*time.Millisecond, 100*time.Millisecond)
	if len(events) != 0 {
		t.Fatalf("idle active-low pin produced events %v", events)
	}

	pin.level = false // pressed
	now, events = step(d, now, 5*time.Millisecond, 100*time.Millisecond)
	pin.level = true
	_, rel := step(d, now, 5*time.Millisecond, 100*time.Millisecond)
	events = append(events, rel...)
	if len(events) != 1 || events[0] != EventShortPress {
		t.Fatalf("events = %v, want one short press", events)
	}
}

func TestParseActiveLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   ActiveLevel
		wantOK bool
	}{
		{"high", ActiveHigh, true},
		{"pullup", ActiveLow, true},
		{"pulldown", ActiveHigh, true},
		{"LOW", ActiveLow, true},
		{"bogus", ActiveHigh, false},
		{"", ActiveHigh, false},
	}
	for _, tt := range tests {
		got, ok := ParseActiveLevel(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseActiveLevel(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
