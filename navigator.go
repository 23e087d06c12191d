package menukit

// Navigator is the screen stack: strictly nested push/pop, one current
// screen, history bottom = root. It never owns screens; whoever constructed
// a screen keeps it alive.
type Navigator struct {
	history []Screen
	current Screen

	// draw redraws a screen immediately so navigation is visible on the
	// same tick, not the next one. Supplied by the runtime; may be nil in
	// tests.
	draw func(Screen)

	log Logger
}

// NewNavigator builds an empty navigator. draw may be nil.
func NewNavigator(draw func(Screen), log Logger) *Navigator {
	if log == nil {
		log = printlnLogger{}
	}
	return &Navigator{draw: draw, log: log}
}

// Current returns the screen that owns input, or nil before the first Push.
func (n *Navigator) Current() Screen { return n.current }

// Depth reports how many screens are below the current one.
func (n *Navigator) Depth() int { return len(n.history) }

// CanGoBack reports whether Pop would do anything.
func (n *Navigator) CanGoBack() bool { return len(n.history) > 0 }

// Push makes s current, remembering the previous current for Pop. A nil
// screen is a logged no-op. The new screen is drawn synchronously.
func (n *Navigator) Push(s Screen) {
	if s == nil {
		n.log.Warn("nav: push of nil screen ignored")
		return
	}
	if n.current != nil {
		n.history = append(n.history, n.current)
	}
	n.current = s
	if n.draw != nil {
		n.draw(s)
	}
}

// Pop returns to the previous screen and redraws it. With empty history it
// reports false and changes nothing; that is how "cannot go back past root"
// works.
func (n *Navigator) Pop() bool {
	if len(n.history) == 0 {
		return false
	}
	n.current = n.history[len(n.history)-1]
	n.history = n.history[:len(n.history)-1]
	if n.draw != nil {
		n.draw(n.current)
	}
	return true
}
