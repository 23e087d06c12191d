// Package framediff holds the off-screen canvas and decides, once per loop
// iteration, whether a frame is worth pushing over the display bus. Two
// full RGB565 frames are kept: the one being drawn and the one last
// transferred. Identical frames are never re-sent.
package framediff

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// RGB565 is the canvas pixel format, matching the wire format of the small
// SPI panels this targets.
type RGB565 uint16

// From888 packs an 8-bit-per-channel color.
func From888(c color.RGBA) RGB565 {
	return RGB565((uint16(c.R>>3)&0x1F)<<11 | (uint16(c.G>>2)&0x3F)<<5 | (uint16(c.B>>3) & 0x1F))
}

// RGBA expands back to 8-bit channels, replicating high bits into the low
// bits so full-scale values survive the round trip.
func (p RGB565) RGBA() color.RGBA {
	r := uint8(p >> 11 & 0x1F)
	g := uint8(p >> 5 & 0x3F)
	b := uint8(p & 0x1F)
	return color.RGBA{
		R: r<<3 | r>>2,
		G: g<<2 | g>>4,
		B: b<<3 | b>>2,
		A: 0xFF,
	}
}

// Buffer is the drawing surface screens render into. It implements the
// drivers.Displayer shape (Display on the canvas itself is a no-op; the
// runtime owns the transfer decision through Flush).
//
// Frames must be drawn in full each iteration: Flush swaps the two buffer
// roles instead of copying, so after a transfer the drawing buffer holds
// the frame from two iterations ago.
type Buffer struct {
	w, h int16
	cur  []RGB565
	last []RGB565

	// sent is false until the first transfer, which must always happen.
	sent bool

	// degraded disables diffing entirely; Flush transfers every tick.
	degraded bool
}

// New builds a canvas. Degenerate dimensions yield a degraded buffer that
// draws nowhere and transfers unconditionally.
func New(w, h int16) *Buffer {
	if w <= 0 || h <= 0 {
		return &Buffer{degraded: true}
	}
	n := int(w) * int(h)
	return &Buffer{
		w:    w,
		h:    h,
		cur:  make([]RGB565, n),
		last: make([]RGB565, n),
	}
}

// Degraded reports whether diffing is disabled.
func (b *Buffer) Degraded() bool { return b.degraded }

func (b *Buffer) Size() (x, y int16) { return b.w, b.h }

func (b *Buffer) SetPixel(x, y int16, c color.RGBA) {
	if b.degraded || x < 0 || x >= b.w || y < 0 || y >= b.h {
		return
	}
	b.cur[int(y)*int(b.w)+int(x)] = From888(c)
}

// Pixel reads back a pixel from the frame being drawn.
func (b *Buffer) Pixel(x, y int16) color.RGBA {
	if b.degraded || x < 0 || x >= b.w || y < 0 || y >= b.h {
		return color.RGBA{}
	}
	return b.cur[int(y)*int(b.w)+int(x)].RGBA()
}

// FillRectangle fills a clipped rectangle, the one bulk primitive the menu
// drawing code leans on.
func (b *Buffer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if b.degraded {
		return nil
	}
	x0, y0 := clamp(x, b.w), clamp(y, b.h)
	x1, y1 := clamp(x+width, b.w), clamp(y+height, b.h)
	p := From888(c)
	for py := y0; py < y1; py++ {
		row := int(py) * int(b.w)
		for px := x0; px < x1; px++ {
			b.cur[row+int(px)] = p
		}
	}
	return nil
}

// Clear fills the whole drawing buffer with one color.
func (b *Buffer) Clear(c color.RGBA) {
	_ = b.FillRectangle(0, 0, b.w, b.h, c)
}

// Display satisfies drivers.Displayer so text drawing helpers accept the
// canvas directly; the physical transfer happens in Flush.
func (b *Buffer) Display() error { return nil }

// Flush pushes the drawn frame to dst iff it differs from the last
// transferred frame, or force is set (modal overlays always transfer).
// It reports whether a transfer happened.
func (b *Buffer) Flush(dst drivers.Displayer, force bool) (bool, error) {
	if b.degraded {
		return true, dst.Display()
	}
	if b.sent && !force && equal(b.cur, b.last) {
		return false, nil
	}
	for y := int16(0); y < b.h; y++ {
		row := int(y) * int(b.w)
		for x := int16(0); x < b.w; x++ {
			dst.SetPixel(x, y, b.cur[row+int(x)].RGBA())
		}
	}
	if err := dst.Display(); err != nil {
		return true, err
	}
	b.cur, b.last = b.last, b.cur
	b.sent = true
	return true, nil
}

func clamp(v, max int16) int16 {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

func equal(a, b []RGB565) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
