package menukit

import (
	"time"

	"github.com/ajanata/menukit/input"
)

// nopTestLogger keeps test output quiet.
type nopTestLogger struct{}

func (nopTestLogger) Debug(string)          {}
func (nopTestLogger) Debugf(string, ...any) {}
func (nopTestLogger) Info(string)           {}
func (nopTestLogger) Infof(string, ...any)  {}
func (nopTestLogger) Warn(string)           {}
func (nopTestLogger) Warnf(string, ...any)  {}

var _ Logger = nopTestLogger{}

// testContext builds a Context with a live navigator and popup but no
// drawing, advanced manually via setNow.
func testContext() *Context {
	ic := InputConfig{}
	ic.applyDefaults()
	return &Context{
		Nav:   NewNavigator(nil, nopTestLogger{}),
		Input: &ic,
		Log:   nopTestLogger{},
		popup: NewPopup(nopTestLogger{}),
		now:   time.Unix(0, 0),
	}
}

func (c *Context) setNow(t time.Time) { c.now = t }

// input state shorthands
func selShort() input.State { return input.State{Select: input.EventShortPress} }

func selLong() input.State { return input.State{Select: input.EventLongPressStart} }

func press(btn string) input.State {
	switch btn {
	case "up":
		return input.State{Up: input.EventShortPress}
	case "down":
		return input.State{Down: input.EventShortPress}
	}
	return input.State{}
}

func detents(n int) input.State { return input.State{Detents: n} }
