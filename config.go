package menukit

import (
	"image/color"
	"time"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/ajanata/menukit/input"
	"github.com/ajanata/menukit/store"
)

// InputConfig describes the physical controls. Any read func may be nil for
// hardware that lacks the control; an Encoder, when present, owns the
// up/down axis and the up/down read funcs are ignored.
type InputConfig struct {
	ReadUp     func() bool
	ReadDown   func() bool
	ReadSelect func() bool

	// Active names the pressed voltage level: "high"/"pulldown" or
	// "low"/"pullup". Anything else logs a warning and means active-high.
	Active string

	// Encoder is an already-configured quadrature decoder whose Tick is
	// wired to the encoder pin interrupts by the embedder.
	Encoder *input.Quadrature

	// Hold thresholds for the long-press "back" gesture, per screen
	// context. The divergence is deliberate per-context tuning.
	ListHold     time.Duration // default 500ms
	SettingsHold time.Duration // default 300ms
	LegacyHold   time.Duration // default 1s, custom screens

	// RepeatEvery is the long-hold repeat cadence. Default 200ms.
	RepeatEvery time.Duration

	// PopLockout suppresses select events after a long-press back so the
	// release does not activate the revealed screen. Default 350ms.
	PopLockout time.Duration
}

const (
	defaultListHold     = 500 * time.Millisecond
	defaultSettingsHold = 300 * time.Millisecond
	defaultLegacyHold   = time.Second
	defaultPopLockout   = 350 * time.Millisecond
)

func (c *InputConfig) applyDefaults() {
	if c.ListHold <= 0 {
		c.ListHold = defaultListHold
	}
	if c.SettingsHold <= 0 {
		c.SettingsHold = defaultSettingsHold
	}
	if c.LegacyHold <= 0 {
		c.LegacyHold = defaultLegacyHold
	}
	if c.RepeatEvery <= 0 {
		c.RepeatEvery = input.DefaultRepeatEvery
	}
	if c.PopLockout <= 0 {
		c.PopLockout = defaultPopLockout
	}
}

// ScreenConfig is the injected theme and layout shared by every screen.
type ScreenConfig struct {
	TitleFont  tinyfont.Fonter
	ItemFont   tinyfont.Fonter
	FontHeight int16 // glyph height of ItemFont, for row layout

	Background color.RGBA
	Foreground color.RGBA
	Dim        color.RGBA
	Selection  color.RGBA // selection rectangle outline
	Good       color.RGBA // enabled toggle pills
	Bad        color.RGBA // disabled toggle pills

	// Scrollbar draws the dotted track + handle on list screens.
	Scrollbar bool

	// RowHeight of one menu slot. Default 26, matching small TFTs.
	RowHeight int16
}

func (c *ScreenConfig) applyDefaults() {
	if c.TitleFont == nil {
		c.TitleFont = &freemono.Bold9pt7b
	}
	if c.ItemFont == nil {
		c.ItemFont = &proggy.TinySZ8pt7b
	}
	if c.FontHeight <= 0 {
		c.FontHeight = 8
	}
	if c.RowHeight <= 0 {
		c.RowHeight = 26
	}
	var zero color.RGBA
	if c.Foreground == zero {
		c.Foreground = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
	}
	if c.Dim == zero {
		c.Dim = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xFF}
	}
	if c.Selection == zero {
		c.Selection = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	}
	if c.Good == zero {
		c.Good = color.RGBA{G: 0xC0, A: 0xFF}
	}
	if c.Bad == zero {
		c.Bad = color.RGBA{R: 0xC0, A: 0xFF}
	}
	if c.Background == zero {
		c.Background = color.RGBA{A: 0xFF}
	}
}

// Config wires a Runtime together.
type Config struct {
	// Display is the physical panel frames are transferred to.
	Display drivers.Displayer

	// Store persists settings. nil means a volatile in-memory store.
	Store store.Store

	Input  InputConfig
	Screen ScreenConfig

	// Log defaults to a println logger.
	Log Logger

	// Framerate of the main loop. Default 30.
	Framerate uint

	// SplashFor bounds how long the boot image stays up. Default 2s;
	// negative disables the splash.
	SplashFor time.Duration

	// Restart reboots the device after a settings reset. On microcontrollers
	// wire this to the CPU reset; leaving it nil just logs.
	Restart func()
}
