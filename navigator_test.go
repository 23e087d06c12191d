package menukit

import (
	"testing"
)

func TestNavigatorPushPopLaw(t *testing.T) {
	nav := NewNavigator(nil, nopTestLogger{})

	screens := []Screen{
		&CustomScreen{Name: "root"},
		&CustomScreen{Name: "a"},
		&CustomScreen{Name: "b"},
		&CustomScreen{Name: "c"},
	}
	for _, s := range screens {
		nav.Push(s)
	}
	if nav.Current() != screens[3] {
		t.Fatal("current is not the last pushed screen")
	}
	if !nav.CanGoBack() {
		t.Fatal("CanGoBack() = false with history present")
	}

	// n pushes after root, n pops: back at root
	for i := 3; i >= 1; i-- {
		if !nav.Pop() {
			t.Fatalf("pop %d failed", i)
		}
		if nav.Current() != screens[i-1] {
			t.Fatalf("after pop, current = %v, want screen %d", nav.Current(), i-1)
		}
	}
	if nav.CanGoBack() {
		t.Fatal("CanGoBack() = true at root")
	}
}

func TestNavigatorPopOnEmptyIsNoOp(t *testing.T) {
	nav := NewNavigator(nil, nopTestLogger{})
	if nav.Pop() {
		t.Fatal("pop with no screens reported success")
	}

	root := &CustomScreen{Name: "root"}
	nav.Push(root)
	if nav.Pop() {
		t.Fatal("pop at root reported success")
	}
	if nav.Current() != root {
		t.Fatal("failed pop changed current")
	}
}

func TestNavigatorNilPushIgnored(t *testing.T) {
	nav := NewNavigator(nil, nopTestLogger{})
	root := &CustomScreen{Name: "root"}
	nav.Push(root)
	nav.Push(nil)
	if nav.Current() != root || nav.Depth() != 0 {
		t.Fatal("nil push mutated the stack")
	}
}

func TestNavigatorDrawsOnNavigation(t *testing.T) {
	var drawn []Screen
	nav := NewNavigator(func(s Screen) { drawn = append(drawn, s) }, nopTestLogger{})

	a := &CustomScreen{Name: "a"}
	b := &CustomScreen{Name: "b"}
	nav.Push(a)
	nav.Push(b)
	nav.Pop()

	want := []Screen{a, b, a}
	if len(drawn) != len(want) {
		t.Fatalf("drew %d times, want %d", len(drawn), len(want))
	}
	for i := range want {
		if drawn[i] != want[i] {
			t.Fatalf("draw %d = %v, want %v", i, drawn[i], want[i])
		}
	}
}
