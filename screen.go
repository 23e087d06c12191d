package menukit

import (
	"image"
	"time"

	"github.com/ajanata/menukit/input"
)

// Screen is one navigable unit: it draws itself into the off-screen surface
// and consumes the tick's input while it is current. Implementations are
// long-lived and referenced, never copied.
type Screen interface {
	Draw(s Surface, cfg *ScreenConfig)
	HandleInput(ctx *Context, st input.State)
}

// HoldTuner lets a screen pick its own long-press "back" threshold. Screens
// that do not implement it get the list threshold.
type HoldTuner interface {
	HoldThreshold(ic *InputConfig) time.Duration
}

// Context is what a screen may do to the rest of the system while handling
// input. One instance lives for the process; the runtime refreshes the tick
// state before each dispatch.
type Context struct {
	Nav   *Navigator
	Input *InputConfig
	Theme *ScreenConfig
	Log   Logger

	popup *Popup

	now         time.Time
	lockedUntil time.Time
}

// Now is the current tick's timestamp.
func (c *Context) Now() time.Time { return c.now }

// Back pops one level and starts the select lockout, so the button release
// that ended the long press cannot activate the revealed screen.
func (c *Context) Back() bool {
	if !c.Nav.Pop() {
		return false
	}
	lock := defaultPopLockout
	if c.Input != nil {
		lock = c.Input.PopLockout
	}
	c.lockedUntil = c.now.Add(lock)
	return true
}

// SelectLocked reports whether select events are currently suppressed.
func (c *Context) SelectLocked() bool { return c.now.Before(c.lockedUntil) }

// ShowInfo and friends raise a modal overlay; see Popup.
func (c *Context) ShowInfo(title, msg string) { c.popup.Show(PopupConfig{Title: title, Message: msg}) }
func (c *Context) ShowSuccess(title, msg string) {
	c.popup.Show(PopupConfig{Title: title, Message: msg, Kind: PopupSuccess})
}
func (c *Context) ShowWarning(title, msg string) {
	c.popup.Show(PopupConfig{Title: title, Message: msg, Kind: PopupWarning})
}
func (c *Context) ShowError(title, msg string) {
	c.popup.Show(PopupConfig{Title: title, Message: msg, Kind: PopupError})
}
func (c *Context) ShowQuestion(title, msg string) {
	c.popup.Show(PopupConfig{Title: title, Message: msg, Kind: PopupQuestion, ShowCancel: true})
}

// moveSteps is how many index steps a single button event is worth. Repeats
// count, so holding up/down scrolls continuously.
func moveSteps(ev input.Event) int {
	switch ev {
	case input.EventShortPress, input.EventLongPressStart, input.EventRepeat:
		return 1
	default:
		return 0
	}
}

// wrapIndex applies a movement delta with wraparound. Wraparound is by
// design: the first item is one step "up" from the last.
func wrapIndex(idx, delta, n int) int {
	if n <= 0 {
		return 0
	}
	idx = (idx + delta) % n
	if idx < 0 {
		idx += n
	}
	return idx
}

// cursorDelta resolves this tick's up/down/encoder movement.
func cursorDelta(st input.State) int {
	return moveSteps(st.Down) - moveSteps(st.Up) + st.Detents
}

// ListItem is one row of a ListMenu. Invoke and Target are both optional;
// when both are set the callback runs first, then the target is pushed.
type ListItem struct {
	Name   string
	Icon   image.Image
	Invoke func()
	Target Screen
}

// ListMenu is the classic three-slot scrolling menu.
type ListMenu struct {
	Title string

	items []*ListItem
	index int
}

// NewListMenu builds a list menu from zero or more items.
func NewListMenu(title string, items ...*ListItem) *ListMenu {
	return &ListMenu{Title: title, items: items}
}

// Add appends an item.
func (m *ListMenu) Add(it *ListItem) {
	if it != nil {
		m.items = append(m.items, it)
	}
}

// AddItem appends a plain row with an optional callback and target screen.
func (m *ListMenu) AddItem(name string, invoke func(), target Screen) {
	m.Add(&ListItem{Name: name, Invoke: invoke, Target: target})
}

// Selected returns the highlighted index.
func (m *ListMenu) Selected() int { return m.index }

// Len returns the item count.
func (m *ListMenu) Len() int { return len(m.items) }

func (m *ListMenu) HoldThreshold(ic *InputConfig) time.Duration { return ic.ListHold }

func (m *ListMenu) HandleInput(ctx *Context, st input.State) {
	if d := cursorDelta(st); d != 0 {
		m.index = wrapIndex(m.index, d, len(m.items))
	}

	switch st.Select {
	case input.EventShortPress:
		if m.index >= len(m.items) {
			return
		}
		it := m.items[m.index]
		if it.Invoke != nil {
			it.Invoke()
		}
		if it.Target != nil {
			ctx.Nav.Push(it.Target)
		}
	case input.EventLongPressStart:
		ctx.Back()
	}
}

func (m *ListMenu) Draw(s Surface, cfg *ScreenConfig) {
	w, h := s.Size()
	_ = s.FillRectangle(0, 0, w, h, cfg.Background)

	top := int16(0)
	if m.Title != "" {
		_ = s.FillRectangle(0, 0, w, cfg.FontHeight+4, cfg.Foreground)
		writeText(s, cfg.ItemFont, 4, 2, cfg.FontHeight, m.Title, cfg.Background)
		top = cfg.FontHeight + 4
	}
	if len(m.items) == 0 {
		return
	}

	rowY := func(slot int16) int16 { return top + (h-top-cfg.RowHeight)/2 + (slot-1)*cfg.RowHeight }

	// selection rectangle around the middle slot, with its drop shadow
	selY := rowY(1)
	rectW := w - 6
	drawVLine(s, rectW-1, selY+3, cfg.RowHeight-4, cfg.Foreground)
	drawHLine(s, 3, selY+cfg.RowHeight-1, rectW-4, cfg.Foreground)
	drawRoundRect(s, 2, selY, rectW, cfg.RowHeight-2, 4, cfg.Selection)

	drawSlot := func(slot int16, idx int, selected bool) {
		it := m.items[idx]
		x := int16(8)
		y := rowY(slot)
		if it.Icon != nil {
			b := it.Icon.Bounds()
			drawImage(s, it.Icon, x, y+(cfg.RowHeight-int16(b.Dy()))/2)
			x += int16(b.Dx()) + 4
		}
		font := cfg.ItemFont
		c := cfg.Dim
		if selected {
			font = cfg.TitleFont
			c = cfg.Foreground
		}
		writeText(s, font, x, y+(cfg.RowHeight-cfg.FontHeight)/2, cfg.FontHeight, it.Name, c)
	}

	n := len(m.items)
	if n > 1 {
		drawSlot(0, wrapIndex(m.index, -1, n), false)
		drawSlot(2, wrapIndex(m.index, 1, n), false)
	}
	drawSlot(1, m.index, true)

	if cfg.Scrollbar {
		drawScrollbar(s, cfg, top, m.index, n)
	}
}

// drawScrollbar renders the dotted track and the solid handle whose size
// and position reflect the cursor. n is guarded above zero by the callers.
func drawScrollbar(s Surface, cfg *ScreenConfig, top int16, index, n int) {
	if n <= 0 {
		return
	}
	w, h := s.Size()
	for y := top; y < h; y += 2 {
		s.SetPixel(w-2, y, cfg.Dim)
	}
	span := h - top
	boxH := span / int16(n)
	if boxH < 2 {
		boxH = 2
	}
	boxY := top + span*int16(index)/int16(n)
	_ = s.FillRectangle(w-3, boxY, 3, boxH, cfg.Foreground)
}

// CustomScreen hands drawing and input straight to the embedder, for status
// pages and the like.
type CustomScreen struct {
	Name string

	DrawFunc  func(s Surface, cfg *ScreenConfig)
	InputFunc func(ctx *Context, st input.State)

	// Hold overrides the long-press back threshold; zero means the legacy
	// default.
	Hold time.Duration
}

func (c *CustomScreen) HoldThreshold(ic *InputConfig) time.Duration {
	if c.Hold > 0 {
		return c.Hold
	}
	return ic.LegacyHold
}

func (c *CustomScreen) Draw(s Surface, cfg *ScreenConfig) {
	if c.DrawFunc == nil {
		w, h := s.Size()
		_ = s.FillRectangle(0, 0, w, h, cfg.Background)
		return
	}
	c.DrawFunc(s, cfg)
}

func (c *CustomScreen) HandleInput(ctx *Context, st input.State) {
	if c.InputFunc != nil {
		c.InputFunc(ctx, st)
		return
	}
	if st.Select == input.EventLongPressStart {
		ctx.Back()
	}
}
