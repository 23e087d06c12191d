package menukit

import "testing"

func TestSettingIDStable(t *testing.T) {
	a := NewBoolSetting("Backlight", true)
	b := NewBoolSetting("Backlight", false)
	if a.ID() != b.ID() {
		t.Fatalf("same identity, different ids: %#04x vs %#04x", a.ID(), b.ID())
	}
	if a.ID() == SubscreenID {
		t.Fatal("value setting got the subscreen sentinel id")
	}

	// kind participates in the identity
	r := NewRangeSetting("Backlight", 1, 0, 10, "")
	if r.ID() == a.ID() {
		t.Fatal("different kinds share an id")
	}

	if got := NewSubscreenSetting("More", nil).ID(); got != SubscreenID {
		t.Fatalf("subscreen id = %#04x, want sentinel", got)
	}
}

func TestSettingIDDistinctAcrossNames(t *testing.T) {
	seen := map[uint16]string{}
	for _, name := range []string{"Backlight", "Brightness", "Rotation", "Volume", "Timeout", "Contrast"} {
		s := NewRangeSetting(name, 0, 0, 100, "")
		if prev, ok := seen[s.ID()]; ok {
			t.Fatalf("id collision between %q and %q", prev, name)
		}
		seen[s.ID()] = name
	}
}

func TestRangeSettingClamps(t *testing.T) {
	s := NewRangeSetting("Brightness", 50, 10, 90, "%")

	tests := []struct {
		name  string
		delta int
		want  uint8
		moved bool
	}{
		{"up one", 1, 51, true},
		{"big jump clamps at max", 100, 90, true},
		{"at max stays", 1, 90, false},
		{"down past min clamps", -200, 10, true},
		{"at min stays", -1, 10, false},
	}
	for _, tt := range tests {
		moved := s.adjust(tt.delta)
		if s.Value() != tt.want || moved != tt.moved {
			t.Fatalf("%s: value = %d (moved %v), want %d (moved %v)",
				tt.name, s.Value(), moved, tt.want, tt.moved)
		}
	}
}

func TestRangeSettingDefaultClamped(t *testing.T) {
	if got := NewRangeSetting("X", 200, 0, 100, "").Value(); got != 100 {
		t.Fatalf("default above max = %d, want 100", got)
	}
	if got := NewRangeSetting("X", 5, 10, 100, "").Value(); got != 10 {
		t.Fatalf("default below min = %d, want 10", got)
	}
	// inverted bounds are repaired
	min, max := NewRangeSetting("X", 50, 90, 10, "").Range()
	if min != 10 || max != 90 {
		t.Fatalf("bounds = [%d, %d], want [10, 90]", min, max)
	}
}

func TestOptionSettingWraps(t *testing.T) {
	s := NewOptionSetting("Rotation", 0, "0", "90", "180", "270")

	s.adjust(-1)
	if s.Option() != "270" {
		t.Fatalf("wrap below zero: got %q, want 270", s.Option())
	}
	s.adjust(1)
	if s.Option() != "0" {
		t.Fatalf("wrap above end: got %q, want 0", s.Option())
	}
	if s.adjust(0) {
		t.Fatal("zero delta reported a change")
	}
}

func TestOptionSettingBadDefault(t *testing.T) {
	s := NewOptionSetting("Mode", 9, "a", "b")
	if s.Value() != 0 {
		t.Fatalf("out-of-range default = %d, want 0", s.Value())
	}
}

func TestBoolSettingToggle(t *testing.T) {
	s := NewBoolSetting("Sound", false)
	if s.toggle() != true || !s.Bool() {
		t.Fatal("toggle off->on failed")
	}
	if s.toggle() != false || s.Bool() {
		t.Fatal("toggle on->off failed")
	}
}
