package menukit

import (
	"image/color"
	"strconv"
	"time"

	"github.com/ajanata/menukit/input"
	"github.com/ajanata/menukit/store"
)

// SettingsPanel edits a list of settings with two physical controls. The
// selection lock is the crux: outside the lock, up/down move the cursor;
// inside, they edit the highlighted value; select toggles the lock. Bools
// have no lock state and toggle on select; subscreens navigate on select.
//
// Every committed mutation writes through to the store immediately. Writes
// are user-paced, so durability wins over write amplification here.
type SettingsPanel struct {
	Title string

	settings []*Setting
	st       store.Store
	index    int
	locked   bool
}

// NewSettingsPanel builds a panel. Persisted values are loaded now: any
// setting whose id already exists in the store takes the stored value,
// everything else keeps its constructor default. st may be nil (volatile).
func NewSettingsPanel(title string, st store.Store, settings ...*Setting) *SettingsPanel {
	p := &SettingsPanel{Title: title, st: st}
	for _, s := range settings {
		p.AddSetting(s)
	}
	return p
}

// AddSetting appends a setting, loading its persisted value if present.
func (p *SettingsPanel) AddSetting(s *Setting) {
	if s == nil {
		return
	}
	p.load(s)
	p.settings = append(p.settings, s)
}

// AddBool, AddRange, AddOption and AddSubscreen are item-registration
// shorthands for embedders building panels inline.
func (p *SettingsPanel) AddBool(name string, def bool) *Setting {
	s := NewBoolSetting(name, def)
	p.AddSetting(s)
	return s
}

func (p *SettingsPanel) AddRange(name string, def, min, max uint8, unit string) *Setting {
	s := NewRangeSetting(name, def, min, max, unit)
	p.AddSetting(s)
	return s
}

func (p *SettingsPanel) AddOption(name string, def uint8, options ...string) *Setting {
	s := NewOptionSetting(name, def, options...)
	p.AddSetting(s)
	return s
}

func (p *SettingsPanel) AddSubscreen(name string, target Screen) *Setting {
	s := NewSubscreenSetting(name, target)
	p.AddSetting(s)
	return s
}

func (p *SettingsPanel) load(s *Setting) {
	if p.st == nil || s.kind == SettingSubscreen || !p.st.Exists(s.id) {
		return
	}
	switch s.kind {
	case SettingBool:
		s.boolVal = p.st.GetBool(s.id, s.boolVal)
	case SettingRange:
		v := p.st.GetInt(s.id, s.rangeVal)
		if v < s.min {
			v = s.min
		}
		if v > s.max {
			v = s.max
		}
		s.rangeVal = v
	case SettingOption:
		v := p.st.GetInt(s.id, s.optIndex)
		if int(v) < len(s.options) {
			s.optIndex = v
		}
	}
}

func (p *SettingsPanel) save(s *Setting) {
	if s.OnChange != nil {
		s.OnChange(s)
	}
	if p.st == nil {
		return
	}
	switch s.kind {
	case SettingBool:
		p.st.PutBool(s.id, s.boolVal)
	case SettingRange:
		p.st.PutInt(s.id, s.rangeVal)
	case SettingOption:
		p.st.PutInt(s.id, s.optIndex)
	}
}

// Settings exposes the panel's settings, e.g. for a bulk reset.
func (p *SettingsPanel) Settings() []*Setting { return p.settings }

// Selected returns the highlighted index.
func (p *SettingsPanel) Selected() int { return p.index }

// Locked reports whether up/down currently edit the highlighted value.
func (p *SettingsPanel) Locked() bool { return p.locked }

func (p *SettingsPanel) HoldThreshold(ic *InputConfig) time.Duration { return ic.SettingsHold }

func (p *SettingsPanel) HandleInput(ctx *Context, st input.State) {
	n := len(p.settings)

	if d := cursorDelta(st); d != 0 && n > 0 {
		if p.locked {
			s := p.settings[p.index]
			if s.adjust(d) {
				p.save(s)
			}
		} else {
			p.index = wrapIndex(p.index, d, n)
		}
	}

	switch st.Select {
	case input.EventShortPress:
		if p.index >= n {
			return
		}
		s := p.settings[p.index]
		switch {
		case s.kind == SettingBool:
			s.toggle()
			p.save(s)
		case s.kind == SettingSubscreen:
			// navigates regardless of lock state
			p.locked = false
			if s.target != nil {
				ctx.Nav.Push(s.target)
			}
		case s.editable():
			p.locked = !p.locked
		}
	case input.EventLongPressStart:
		p.locked = false
		ctx.Back()
	}
}

func (p *SettingsPanel) Draw(s Surface, cfg *ScreenConfig) {
	w, h := s.Size()
	_ = s.FillRectangle(0, 0, w, h, cfg.Background)

	top := int16(0)
	if p.Title != "" {
		_ = s.FillRectangle(0, 0, w, cfg.FontHeight+4, cfg.Foreground)
		writeText(s, cfg.ItemFont, 4, 2, cfg.FontHeight, p.Title, cfg.Background)
		top = cfg.FontHeight + 4
	}
	n := len(p.settings)
	if n == 0 {
		return
	}

	rowY := func(slot int16) int16 { return top + (h-top-cfg.RowHeight)/2 + (slot-1)*cfg.RowHeight }

	selY := rowY(1)
	rectW := w - 6
	drawVLine(s, rectW-1, selY+3, cfg.RowHeight-4, cfg.Foreground)
	drawHLine(s, 3, selY+cfg.RowHeight-1, rectW-4, cfg.Foreground)
	outline := cfg.Selection
	if p.locked {
		outline = cfg.Good
	}
	drawRoundRect(s, 2, selY, rectW, cfg.RowHeight-2, 4, outline)

	drawSlot := func(slot int16, idx int, selected bool) {
		set := p.settings[idx]
		y := rowY(slot)
		font := cfg.ItemFont
		c := cfg.Dim
		if selected {
			font = cfg.TitleFont
			c = cfg.Foreground
		}
		writeText(s, font, 8, y+(cfg.RowHeight-cfg.FontHeight)/2, cfg.FontHeight, set.Name, c)
		p.drawValue(s, cfg, set, y, w, selected)
	}

	if n > 1 {
		drawSlot(0, wrapIndex(p.index, -1, n), false)
		drawSlot(2, wrapIndex(p.index, 1, n), false)
	}
	drawSlot(1, p.index, true)

	if cfg.Scrollbar {
		drawScrollbar(s, cfg, top, p.index, n)
	}
}

// drawValue renders the right-hand value readout for one row: a red/green
// toggle pill for bools, number + unit for ranges, the active choice for
// options, and a chevron for subscreens.
func (p *SettingsPanel) drawValue(s Surface, cfg *ScreenConfig, set *Setting, y, w int16, selected bool) {
	const pillW, pillH = 24, 12
	cy := y + (cfg.RowHeight-pillH)/2
	switch set.kind {
	case SettingBool:
		c := cfg.Bad
		knobX := w - 8 - pillW + 2
		if set.boolVal {
			c = cfg.Good
			knobX = w - 8 - pillH + 2
		}
		drawRoundRect(s, w-8-pillW, cy, pillW, pillH, pillH/2, c)
		fillRoundRect(s, knobX, cy+2, pillH-4, pillH-4, (pillH-4)/2, c)
	case SettingRange:
		txt := strconv.Itoa(int(set.rangeVal)) + set.Unit
		x := w - 8 - textWidth(cfg.ItemFont, txt)
		writeText(s, cfg.ItemFont, x, y+(cfg.RowHeight-cfg.FontHeight)/2, cfg.FontHeight, txt, valueColor(cfg, selected, p.locked))
	case SettingOption:
		txt := set.Option()
		x := w - 8 - textWidth(cfg.ItemFont, txt)
		writeText(s, cfg.ItemFont, x, y+(cfg.RowHeight-cfg.FontHeight)/2, cfg.FontHeight, txt, valueColor(cfg, selected, p.locked))
	case SettingSubscreen:
		writeText(s, cfg.ItemFont, w-8-textWidth(cfg.ItemFont, ">"), y+(cfg.RowHeight-cfg.FontHeight)/2, cfg.FontHeight, ">", cfg.Dim)
	}
}

func valueColor(cfg *ScreenConfig, selected, locked bool) color.RGBA {
	if selected && locked {
		return cfg.Good
	}
	if selected {
		return cfg.Foreground
	}
	return cfg.Dim
}
