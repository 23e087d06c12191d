// Package menukit is a menu runtime for small button- or encoder-driven
// displays: a navigable stack of list menus, settings panels and custom
// screens, a single modal overlay, and a frame-diffing transfer layer that
// keeps redundant frames off the display bus.
package menukit

import (
	"errors"
	"runtime"
	"strconv"
	"time"

	"github.com/ajanata/textbuf"
	"tinygo.org/x/drivers"

	"github.com/ajanata/menukit/input"
	"github.com/ajanata/menukit/internal/framediff"
	"github.com/ajanata/menukit/internal/media"
	"github.com/ajanata/menukit/store"
)

// Blinker is an optional status LED toggled around each frame, handy for
// eyeballing loop health on hardware.
type Blinker interface {
	Low()
	High()
}

// Runtime owns the whole menu system: canvas, navigation stack, popup
// controller, input sources and the persistence store.
type Runtime struct {
	cfg    Config
	log    Logger
	status Blinker

	display drivers.Displayer
	canvas  *framediff.Buffer

	buttons *input.Buttons
	nav     *Navigator
	popup   *Popup
	ctx     *Context
	st      store.Store

	panels []*SettingsPanel

	frameTime time.Duration
	start     time.Time
	booted    bool

	lastResult PopupResult

	tick      uint32
	lastSec   time.Time
	lastTicks uint32
	lastFPS   uint32
}

// New validates the configuration and builds a runtime. The display is the
// only hard requirement.
func New(cfg Config, status Blinker) (*Runtime, error) {
	if cfg.Display == nil {
		return nil, errors.New("must provide a display")
	}
	if cfg.Framerate == 0 {
		cfg.Framerate = 30
	}
	cfg.Input.applyDefaults()
	cfg.Screen.applyDefaults()
	if cfg.Log == nil {
		cfg.Log = printlnLogger{}
	}
	if cfg.Store == nil {
		cfg.Store = store.NewMem()
	}
	if cfg.SplashFor == 0 {
		cfg.SplashFor = 2 * time.Second
	}

	active, ok := input.ParseActiveLevel(cfg.Input.Active)
	if !ok && cfg.Input.Active != "" {
		cfg.Log.Warnf("invalid active level %q, assuming active-high", cfg.Input.Active)
	}

	mkDeb := func(read func() bool) *input.Debouncer {
		if read == nil {
			return nil
		}
		d := input.NewDebouncer(read, active)
		d.SetRepeatEvery(cfg.Input.RepeatEvery)
		return d
	}
	buttons := input.NewButtons(
		mkDeb(cfg.Input.ReadUp),
		mkDeb(cfg.Input.ReadDown),
		mkDeb(cfg.Input.ReadSelect),
		cfg.Input.Encoder,
	)

	w, h := cfg.Display.Size()
	canvas := framediff.New(w, h)
	if canvas.Degraded() {
		cfg.Log.Warn("frame buffer unavailable, transferring every frame")
	}

	r := &Runtime{
		cfg:       cfg,
		log:       cfg.Log,
		status:    status,
		display:   cfg.Display,
		canvas:    canvas,
		buttons:   buttons,
		popup:     NewPopup(cfg.Log),
		st:        cfg.Store,
		frameTime: time.Second / time.Duration(cfg.Framerate),
		start:     time.Now(),
	}
	r.nav = NewNavigator(r.drawScreen, cfg.Log)
	r.ctx = &Context{
		Nav:   r.nav,
		Input: &r.cfg.Input,
		Theme: &r.cfg.Screen,
		Log:   cfg.Log,
		popup: r.popup,
	}
	return r, nil
}

// Canvas exposes the drawing surface, mainly so embedders can render boot
// or diagnostic content outside the screen machinery.
func (r *Runtime) Canvas() Surface { return r.canvas }

// Store exposes the persistence store the runtime writes settings through.
func (r *Runtime) Store() store.Store { return r.st }

// Init runs the boot sequence: a text boot console on the display, the
// embedded logo splash for the configured bounded delay, then a clean
// canvas ready for the first screen.
func (r *Runtime) Init() error {
	if r.booted {
		return errors.New("already initialized")
	}
	r.blink()

	console, err := textbuf.New(r.display, textbuf.FontSize6x8)
	if err != nil {
		return errors.New("init console: " + err.Error())
	}
	console.AutoFlush = true

	w, h := console.Size()
	if w < 8 || h < 2 {
		return errors.New("unusably small display")
	}
	_ = console.SetLineInverse(0, "MENUKIT BOOT")
	_ = console.SetY(1)

	mem := runtime.MemStats{}
	runtime.ReadMemStats(&mem)
	_ = console.Println(strconv.Itoa(int(mem.HeapSys/1024)) + "k RAM, " + strconv.Itoa(int(mem.HeapIdle/1024)) + "k free")
	_ = console.Println("store ready")

	if r.cfg.SplashFor > 0 {
		if err := r.splash(); err != nil {
			// cosmetic; boot continues without the logo
			r.log.Warn("splash: " + err.Error())
		}
		time.Sleep(r.cfg.SplashFor)
	}

	r.canvas.Clear(r.cfg.Screen.Background)
	r.blink()
	r.booted = true
	r.log.Info("menukit online in " + time.Since(r.start).Round(10*time.Millisecond).String())
	return nil
}

// splash centers the embedded logo and pushes it to the panel.
func (r *Runtime) splash() error {
	img, err := media.Logo()
	if err != nil {
		return err
	}
	w, h := r.canvas.Size()
	r.canvas.Clear(r.cfg.Screen.Background)
	drawImage(r.canvas, img, (w-media.LogoW)/2, (h-media.LogoH)/2)
	_, err = r.canvas.Flush(r.display, true)
	return err
}

// PushScreen enters a screen; the first push sets the root.
func (r *Runtime) PushScreen(s Screen) { r.nav.Push(s) }

// PopScreen leaves the current screen, reporting false at the root.
func (r *Runtime) PopScreen() bool { return r.nav.Pop() }

// NewSettingsPanel builds a panel bound to the runtime's store and
// registers its settings for ResetSettings.
func (r *Runtime) NewSettingsPanel(title string, settings ...*Setting) *SettingsPanel {
	p := NewSettingsPanel(title, r.st, settings...)
	r.panels = append(r.panels, p)
	return p
}

// ShowInfo and friends raise the modal overlay. The outcome arrives via
// PopupResult polling, not a callback.
func (r *Runtime) ShowInfo(title, msg string) { r.popup.Show(PopupConfig{Title: title, Message: msg}) }

func (r *Runtime) ShowSuccess(title, msg string) {
	r.popup.Show(PopupConfig{Title: title, Message: msg, Kind: PopupSuccess})
}

func (r *Runtime) ShowWarning(title, msg string) {
	r.popup.Show(PopupConfig{Title: title, Message: msg, Kind: PopupWarning})
}

func (r *Runtime) ShowError(title, msg string) {
	r.popup.Show(PopupConfig{Title: title, Message: msg, Kind: PopupError})
}

func (r *Runtime) ShowQuestion(title, msg string) {
	r.popup.Show(PopupConfig{Title: title, Message: msg, Kind: PopupQuestion, ShowCancel: true})
}

// ShowPopup raises a fully custom overlay.
func (r *Runtime) ShowPopup(cfg PopupConfig) bool { return r.popup.Show(cfg) }

// PopupResult returns the outcome of the most recently closed popup,
// exactly once; afterwards it reads PopupNone until another popup closes.
func (r *Runtime) PopupResult() PopupResult {
	res := r.lastResult
	r.lastResult = PopupNone
	return res
}

// ResetSettings removes every registered persisted value and invokes the
// restart hook: a reboot is the one guaranteed way to re-read defaults
// everywhere. This is the single deliberately fatal path in the system.
func (r *Runtime) ResetSettings() {
	for _, p := range r.panels {
		for _, s := range p.Settings() {
			if s.ID() == SubscreenID {
				continue
			}
			r.st.Remove(s.ID())
		}
	}
	r.log.Info("settings cleared, restarting")
	if r.cfg.Restart != nil {
		r.cfg.Restart()
		return
	}
	r.log.Warn("no restart hook configured; stale values remain until reboot")
}

// FPS reports the measured loop rate over the last second.
func (r *Runtime) FPS() uint32 { return r.lastFPS }

// Run does not return. It runs the main loop at the configured framerate,
// logging tick errors rather than dying: the embedding application has no
// way to handle them mid-loop anyway.
func (r *Runtime) Run() {
	for range time.Tick(r.frameTime) {
		if err := r.RunTick(); err != nil {
			r.log.Warn("tick: " + err.Error())
		}
	}
}

// RunTick runs one iteration of the main loop: resolve input, let the
// popup or the current screen consume it, draw, then decide the transfer.
func (r *Runtime) RunTick() error {
	if !r.booted {
		return errors.New("not initialized")
	}
	r.statusOff()
	now := time.Now()
	r.countFrame(now)

	st := r.buttons.Poll(now)
	r.ctx.now = now
	if r.ctx.SelectLocked() {
		st.Select = input.EventNone
	}

	if r.popup.Active() {
		// modal overlay owns the input exclusively
		r.popup.Update(now, st)
		r.drawFrame(true)
		r.statusOn()
		return r.flush(true)
	}

	if res := r.popup.Update(now, input.State{}); res != PopupNone {
		r.lastResult = res
		// whatever was held to dismiss the popup must not leak through
		r.buttons.ResetGestures()
	}

	if cur := r.nav.Current(); cur != nil {
		r.tuneHold(cur)
		cur.HandleInput(r.ctx, st)
	}
	r.drawFrame(false)
	r.statusOn()
	return r.flush(r.popup.Active())
}

// drawFrame renders the current screen and, when up, the overlay.
func (r *Runtime) drawFrame(popupUp bool) {
	if cur := r.nav.Current(); cur != nil {
		cur.Draw(r.canvas, &r.cfg.Screen)
	} else {
		r.canvas.Clear(r.cfg.Screen.Background)
	}
	if popupUp || r.popup.Active() {
		r.popup.Draw(r.canvas, &r.cfg.Screen)
	}
}

func (r *Runtime) flush(force bool) error {
	_, err := r.canvas.Flush(r.display, force)
	return err
}

// drawScreen is the navigator's synchronous redraw hook, so a push or pop
// is visible on the same tick it happens.
func (r *Runtime) drawScreen(s Screen) {
	r.tuneHold(s)
	s.Draw(r.canvas, &r.cfg.Screen)
	if _, err := r.canvas.Flush(r.display, false); err != nil {
		r.log.Warn("redraw: " + err.Error())
	}
}

// tuneHold points the select button's long-press boundary at the current
// screen's context. Different contexts intentionally use different values.
func (r *Runtime) tuneHold(s Screen) {
	sel := r.buttons.Select()
	if sel == nil {
		return
	}
	hold := r.cfg.Input.ListHold
	if t, ok := s.(HoldTuner); ok {
		hold = t.HoldThreshold(&r.cfg.Input)
	}
	sel.SetHold(hold)
}

func (r *Runtime) countFrame(now time.Time) {
	r.tick++
	if now.Sub(r.lastSec) >= time.Second {
		r.lastFPS = r.tick - r.lastTicks
		r.lastTicks = r.tick
		r.lastSec = now
	}
}

func (r *Runtime) blink() {
	r.statusOn()
	time.Sleep(100 * time.Millisecond)
	r.statusOff()
	time.Sleep(100 * time.Millisecond)
}

func (r *Runtime) statusOn() {
	if r.status != nil {
		r.status.High()
	}
}

func (r *Runtime) statusOff() {
	if r.status != nil {
		r.status.Low()
	}
}
