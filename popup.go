package menukit

import (
	"image/color"
	"time"

	"github.com/ajanata/menukit/input"
)

// PopupConfig describes one modal overlay. It is transient: built when the
// popup is requested, discarded when it closes.
type PopupConfig struct {
	Title   string
	Message string
	Kind    PopupKind

	// ShowCancel adds a Cancel button; up/down or the encoder move focus
	// between OK and Cancel.
	ShowCancel bool

	// AutoClose force-closes the popup with result OK after this long.
	// Zero means it stays until dismissed.
	AutoClose time.Duration
}

// minPopupAction is the minimum time between the popup opening (or its last
// action) and a select being honored, so a button still held from before
// the popup opened cannot dismiss it instantly.
const minPopupAction = 200 * time.Millisecond

// Popup runs the one modal overlay the system supports. While visible it
// owns input exclusively; the underlying screen sees nothing. Results are
// delivered by polling Update every loop iteration, never by callback.
type Popup struct {
	visible bool
	cfg     PopupConfig
	shownAt time.Time
	lastAct time.Time

	// focusCancel is true when the Cancel button has selection focus.
	focusCancel bool

	result PopupResult

	log Logger
}

// NewPopup builds an idle controller. log may be nil.
func NewPopup(log Logger) *Popup {
	if log == nil {
		log = printlnLogger{}
	}
	return &Popup{log: log}
}

// Active reports whether an overlay currently owns input.
func (p *Popup) Active() bool { return p.visible }

// Show raises an overlay. Only one may be active system-wide; a second Show
// while visible is logged and dropped. Focus resets to OK.
func (p *Popup) Show(cfg PopupConfig) bool {
	return p.show(cfg, time.Now())
}

// show is Show with an injected clock, for the runtime and tests.
func (p *Popup) show(cfg PopupConfig, now time.Time) bool {
	if p.visible {
		p.log.Warnf("popup: dropped %q, another popup is active", cfg.Title)
		return false
	}
	p.visible = true
	p.cfg = cfg
	p.shownAt = now
	p.lastAct = now
	p.focusCancel = false
	p.result = PopupNone
	return true
}

// Update consumes this tick's input while visible and returns the result
// once, on the tick the popup closes; every other call returns PopupNone.
func (p *Popup) Update(now time.Time, st input.State) PopupResult {
	if !p.visible {
		// deliver a pending result exactly once
		r := p.result
		p.result = PopupNone
		return r
	}

	if p.cfg.AutoClose > 0 && now.Sub(p.shownAt) >= p.cfg.AutoClose {
		p.close(PopupOK)
		return PopupNone
	}

	if d := cursorDelta(st); d != 0 && p.cfg.ShowCancel {
		if now.Sub(p.lastAct) >= minPopupAction {
			p.focusCancel = !p.focusCancel
			p.lastAct = now
		}
	}

	if st.Select == input.EventShortPress && now.Sub(p.lastAct) >= minPopupAction {
		if p.focusCancel {
			p.close(PopupCancel)
		} else {
			p.close(PopupOK)
		}
	}
	return PopupNone
}

func (p *Popup) close(r PopupResult) {
	p.visible = false
	p.result = r
	p.cfg = PopupConfig{}
}

// accent picks the border color for the popup kind.
func accent(cfg *ScreenConfig, k PopupKind) color.RGBA {
	switch k {
	case PopupSuccess:
		return cfg.Good
	case PopupWarning, PopupQuestion:
		return cfg.Selection
	case PopupError:
		return cfg.Bad
	default:
		return cfg.Foreground
	}
}

// Draw renders the overlay box on top of whatever the underlying screen
// last drew. The runtime always forces a transfer while a popup is up.
func (p *Popup) Draw(s Surface, cfg *ScreenConfig) {
	if !p.visible {
		return
	}
	w, h := s.Size()
	bw := w - 12
	bh := h - 12
	bx := (w - bw) / 2
	by := (h - bh) / 2

	a := accent(cfg, p.cfg.Kind)
	fillRoundRect(s, bx, by, bw, bh, 4, cfg.Background)
	drawRoundRect(s, bx, by, bw, bh, 4, a)

	y := by + 3
	if p.cfg.Title != "" {
		x := bx + (bw-textWidth(cfg.TitleFont, p.cfg.Title))/2
		writeText(s, cfg.TitleFont, x, y, cfg.FontHeight, p.cfg.Title, a)
		y += cfg.FontHeight + 4
	}
	if p.cfg.Message != "" {
		x := bx + (bw-textWidth(cfg.ItemFont, p.cfg.Message))/2
		writeText(s, cfg.ItemFont, x, y, cfg.FontHeight, p.cfg.Message, cfg.Foreground)
	}

	// buttons along the bottom edge
	btnY := by + bh - cfg.FontHeight - 6
	if p.cfg.ShowCancel {
		p.drawButton(s, cfg, "OK", bx+bw/4, btnY, !p.focusCancel)
		p.drawButton(s, cfg, "Cancel", bx+3*bw/4, btnY, p.focusCancel)
	} else {
		p.drawButton(s, cfg, "OK", bx+bw/2, btnY, true)
	}
}

// drawButton centers a label at x and boxes it when focused.
func (p *Popup) drawButton(s Surface, cfg *ScreenConfig, label string, x, y int16, focused bool) {
	tw := textWidth(cfg.ItemFont, label)
	c := cfg.Dim
	if focused {
		c = cfg.Foreground
		drawRoundRect(s, x-tw/2-4, y-2, tw+8, cfg.FontHeight+6, 2, cfg.Selection)
	}
	writeText(s, cfg.ItemFont, x-tw/2, y, cfg.FontHeight, label, c)
}
