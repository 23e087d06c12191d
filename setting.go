package menukit

// Setting is a typed, identity-stable value a settings panel edits and the
// store persists. The kind tags which member is live; the constructors are
// the only way to build one, so kind and payload cannot disagree.
type Setting struct {
	Name string
	kind SettingKind
	id   uint16

	boolVal bool

	rangeVal uint8
	min, max uint8
	Unit     string

	optIndex uint8
	options  []string

	target Screen

	// OnChange, when set, runs after every committed mutation. Used to
	// apply hardware side effects (backlight, volume) immediately.
	OnChange func(*Setting)
}

// SubscreenID is the id every subscreen setting shares: subscreens carry no
// state of their own and are never persisted.
const SubscreenID uint16 = 0

// settingID derives a stable 16-bit id from the setting's identity, so the
// same logical setting lands in the same storage slot across rebuilds and
// reboots. FNV-1a over kind + name, folded to 16 bits; the subscreen
// sentinel value is avoided.
func settingID(name string, kind SettingKind) uint16 {
	const (
		offset32 = 2166136261
		prime32  = 16777619
	)
	h := uint32(offset32)
	h ^= uint32(kind)
	h *= prime32
	for i := 0; i < len(name); i++ {
		h ^= uint32(name[i])
		h *= prime32
	}
	id := uint16(h>>16) ^ uint16(h)
	if id == SubscreenID {
		id = 1
	}
	return id
}

// NewBoolSetting builds an on/off toggle.
func NewBoolSetting(name string, def bool) *Setting {
	return &Setting{
		Name:    name,
		kind:    SettingBool,
		id:      settingID(name, SettingBool),
		boolVal: def,
	}
}

// NewRangeSetting builds a clamped numeric setting. def is clamped into
// [min, max]; unit is display-only ("%", "s", ...).
func NewRangeSetting(name string, def, min, max uint8, unit string) *Setting {
	if max < min {
		min, max = max, min
	}
	if def < min {
		def = min
	}
	if def > max {
		def = max
	}
	return &Setting{
		Name:     name,
		kind:     SettingRange,
		id:       settingID(name, SettingRange),
		rangeVal: def,
		min:      min,
		max:      max,
		Unit:     unit,
	}
}

// NewOptionSetting builds a cyclic multiple-choice setting.
func NewOptionSetting(name string, def uint8, options ...string) *Setting {
	if int(def) >= len(options) {
		def = 0
	}
	return &Setting{
		Name:     name,
		kind:     SettingOption,
		id:       settingID(name, SettingOption),
		optIndex: def,
		options:  options,
	}
}

// NewSubscreenSetting builds a row that navigates to another screen on
// select. It has no value and is never persisted.
func NewSubscreenSetting(name string, target Screen) *Setting {
	return &Setting{
		Name:   name,
		kind:   SettingSubscreen,
		id:     SubscreenID,
		target: target,
	}
}

// Kind reports which member is live.
func (s *Setting) Kind() SettingKind { return s.kind }

// ID is the stable storage key.
func (s *Setting) ID() uint16 { return s.id }

// Bool returns the toggle value; false for other kinds.
func (s *Setting) Bool() bool { return s.kind == SettingBool && s.boolVal }

// Value returns the range value or option index.
func (s *Setting) Value() uint8 {
	switch s.kind {
	case SettingRange:
		return s.rangeVal
	case SettingOption:
		return s.optIndex
	default:
		return 0
	}
}

// Range returns the bounds of a range setting.
func (s *Setting) Range() (min, max uint8) { return s.min, s.max }

// Options returns the choices of an option setting.
func (s *Setting) Options() []string { return s.options }

// Option returns the currently selected choice text, or "".
func (s *Setting) Option() string {
	if s.kind != SettingOption || int(s.optIndex) >= len(s.options) {
		return ""
	}
	return s.options[s.optIndex]
}

// Target returns the subscreen, or nil.
func (s *Setting) Target() Screen { return s.target }

// editable reports whether select toggles a value-editing lock for this
// setting. Bools toggle directly and subscreens navigate directly, so only
// ranges and options have a lock state.
func (s *Setting) editable() bool {
	return s.kind == SettingRange || s.kind == SettingOption
}

// toggle flips a bool setting and reports the new value.
func (s *Setting) toggle() bool {
	s.boolVal = !s.boolVal
	return s.boolVal
}

// adjust moves a range or option value by delta steps. Ranges clamp at
// their bounds and never wrap; options wrap cyclically. Reports whether the
// stored value changed.
func (s *Setting) adjust(delta int) bool {
	switch s.kind {
	case SettingRange:
		v := int(s.rangeVal) + delta
		if v < int(s.min) {
			v = int(s.min)
		}
		if v > int(s.max) {
			v = int(s.max)
		}
		if uint8(v) == s.rangeVal {
			return false
		}
		s.rangeVal = uint8(v)
		return true
	case SettingOption:
		if len(s.options) == 0 || delta == 0 {
			return false
		}
		s.optIndex = uint8(wrapIndex(int(s.optIndex), delta, len(s.options)))
		return true
	default:
		return false
	}
}
