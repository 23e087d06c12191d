//go:build tinygo

// Command menukit-demo wires the menu runtime to an SSD1306 over I2C with
// three buttons and an EC11 encoder, the bench setup this library grew on.
package main

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/ssd1306"

	"github.com/ajanata/menukit"
	"github.com/ajanata/menukit/input"
)

const (
	pinUp     = machine.GP10
	pinDown   = machine.GP11
	pinSelect = machine.GP12
	pinEncA   = machine.GP14
	pinEncB   = machine.GP15
)

type led struct{ p machine.Pin }

func (l led) High() { l.p.High() }
func (l led) Low()  { l.p.Low() }

func main() {
	machine.LED.Configure(machine.PinConfig{Mode: machine.PinOutput})

	machine.I2C0.Configure(machine.I2CConfig{
		SCL:       machine.I2C0_SCL_PIN,
		SDA:       machine.I2C0_SDA_PIN,
		Frequency: 400 * machine.KHz,
	})
	dev := ssd1306.NewI2C(machine.I2C0)
	dev.Configure(ssd1306.Config{Width: 128, Height: 64, Address: 0x3C, VccState: ssd1306.SWITCHCAPVCC})
	dev.ClearBuffer()
	dev.ClearDisplay()

	for _, p := range []machine.Pin{pinUp, pinDown, pinSelect, pinEncA, pinEncB} {
		p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}

	enc := input.NewQuadrature(input.DefaultStepsPerDetent)
	isr := func(machine.Pin) { enc.Tick(!pinEncA.Get(), !pinEncB.Get()) }
	_ = pinEncA.SetInterrupt(machine.PinRising|machine.PinFalling, isr)
	_ = pinEncB.SetInterrupt(machine.PinRising|machine.PinFalling, isr)

	r, err := menukit.New(menukit.Config{
		Display: &dev,
		Input: menukit.InputConfig{
			ReadSelect: pinSelect.Get,
			Active:     "pullup",
			Encoder:    enc,
		},
		Framerate: 30,
		Restart:   machine.CPUReset,
	}, led{machine.LED})
	if err != nil {
		earlyPanic()
	}
	if err := r.Init(); err != nil {
		earlyPanic()
	}

	display := r.NewSettingsPanel("DISPLAY",
		menukit.NewBoolSetting("Backlight", true),
		menukit.NewRangeSetting("Brightness", 80, 0, 100, "%"),
		menukit.NewOptionSetting("Rotation", 0, "0", "90", "180", "270"),
	)

	askedReset := false
	system := menukit.NewListMenu("SYSTEM")
	system.AddItem("About", func() { r.ShowInfo("menukit", "demo build") }, nil)
	system.AddItem("Reset settings", func() {
		r.ShowQuestion("Reset", "Clear all settings?")
		askedReset = true
	}, nil)

	root := menukit.NewListMenu("MAIN MENU")
	root.AddItem("Display", nil, display)
	root.AddItem("System", nil, system)
	root.AddItem("Hello", func() { r.ShowSuccess("Hi", "button works") }, nil)

	r.PushScreen(root)

	// run the loop by hand so popup results can be polled per iteration
	for range time.Tick(33 * time.Millisecond) {
		if err := r.RunTick(); err != nil {
			println("tick: " + err.Error())
		}
		if res := r.PopupResult(); askedReset && res != menukit.PopupNone {
			askedReset = false
			if res == menukit.PopupOK {
				r.ResetSettings()
			}
		}
	}
}

func earlyPanic() {
	for {
		machine.LED.High()
		time.Sleep(100 * time.Millisecond)
		machine.LED.Low()
		time.Sleep(100 * time.Millisecond)
	}
}
