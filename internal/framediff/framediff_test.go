package framediff

import (
	"image/color"
	"testing"
)

type countingDisplay struct {
	w, h     int16
	displays int
	pixels   map[[2]int16]color.RGBA
}

func newCountingDisplay(w, h int16) *countingDisplay {
	return &countingDisplay{w: w, h: h, pixels: make(map[[2]int16]color.RGBA)}
}

func (d *countingDisplay) Size() (int16, int16) { return d.w, d.h }
func (d *countingDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.pixels[[2]int16{x, y}] = c
}
func (d *countingDisplay) Display() error {
	d.displays++
	return nil
}

var (
	white = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	red   = color.RGBA{R: 0xFF, A: 0xFF}
)

func drawFrame(b *Buffer, marker int16) {
	b.Clear(color.RGBA{A: 0xFF})
	b.SetPixel(marker, 0, white)
}

func TestFlushSkipsIdenticalFrames(t *testing.T) {
	b := New(8, 8)
	dst := newCountingDisplay(8, 8)

	drawFrame(b, 1)
	if sent, err := b.Flush(dst, false); err != nil || !sent {
		t.Fatalf("first flush: sent=%v err=%v, want transfer", sent, err)
	}
	drawFrame(b, 1)
	if sent, _ := b.Flush(dst, false); sent {
		t.Fatal("identical frame was re-transferred")
	}
	if dst.displays != 1 {
		t.Fatalf("displays = %d, want 1", dst.displays)
	}
}

func TestFlushTransfersChangedFrames(t *testing.T) {
	b := New(8, 8)
	dst := newCountingDisplay(8, 8)

	for i := int16(0); i < 4; i++ {
		drawFrame(b, i)
		if sent, _ := b.Flush(dst, false); !sent {
			t.Fatalf("changed frame %d not transferred", i)
		}
	}
	if dst.displays != 4 {
		t.Fatalf("displays = %d, want 4", dst.displays)
	}
}

func TestFlushForceAlwaysTransfers(t *testing.T) {
	b := New(8, 8)
	dst := newCountingDisplay(8, 8)

	drawFrame(b, 1)
	b.Flush(dst, false)
	drawFrame(b, 1)
	if sent, _ := b.Flush(dst, true); !sent {
		t.Fatal("forced flush skipped transfer")
	}
}

func TestFirstFlushAlwaysTransfers(t *testing.T) {
	b := New(4, 4)
	dst := newCountingDisplay(4, 4)
	// nothing drawn at all; the boot frame must still reach the panel
	if sent, _ := b.Flush(dst, false); !sent {
		t.Fatal("first flush skipped transfer")
	}
}

func TestDegradedBufferTransfersEveryTick(t *testing.T) {
	b := New(0, 0)
	if !b.Degraded() {
		t.Fatal("zero-size buffer not degraded")
	}
	dst := newCountingDisplay(4, 4)
	for i := 0; i < 3; i++ {
		if sent, _ := b.Flush(dst, false); !sent {
			t.Fatal("degraded flush skipped transfer")
		}
	}
	if dst.displays != 3 {
		t.Fatalf("displays = %d, want 3", dst.displays)
	}
	// drawing into a degraded buffer must not crash
	b.SetPixel(1, 1, white)
	_ = b.FillRectangle(0, 0, 4, 4, red)
}

func TestPixelReadback(t *testing.T) {
	b := New(8, 8)
	b.SetPixel(3, 4, white)
	if got := b.Pixel(3, 4); got != (color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}) {
		t.Fatalf("Pixel(3,4) = %v, want white", got)
	}
	if got := b.Pixel(0, 0); got.R != 0 || got.G != 0 || got.B != 0 {
		t.Fatalf("Pixel(0,0) = %v, want black", got)
	}
	// out of bounds reads are zero, not panics
	if got := b.Pixel(-1, 100); got != (color.RGBA{}) {
		t.Fatalf("out-of-bounds Pixel = %v, want zero", got)
	}
}

func TestRGB565RoundTrip(t *testing.T) {
	tests := []color.RGBA{
		{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		{A: 0xFF},
		{R: 0xFF, A: 0xFF},
		{G: 0xFF, A: 0xFF},
		{B: 0xFF, A: 0xFF},
	}
	for _, c := range tests {
		got := From888(c).RGBA()
		if got.R != c.R || got.G != c.G || got.B != c.B {
			t.Errorf("round trip %v = %v", c, got)
		}
	}
}
