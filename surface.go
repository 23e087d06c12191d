package menukit

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Surface is the off-screen drawing capability handed to screens. It is a
// drivers.Displayer plus the couple of extras the menu drawing code needs;
// the runtime's canvas implements it, and tests can substitute their own.
//
// Display on a Surface is a no-op: the runtime decides when the frame is
// actually transferred to the panel.
type Surface interface {
	drivers.Displayer

	FillRectangle(x, y, width, height int16, c color.RGBA) error
	Pixel(x, y int16) color.RGBA
}

func drawHLine(s Surface, x, y, w int16, c color.RGBA) {
	_ = s.FillRectangle(x, y, w, 1, c)
}

func drawVLine(s Surface, x, y, h int16, c color.RGBA) {
	_ = s.FillRectangle(x, y, 1, h, c)
}

func drawRect(s Surface, x, y, w, h int16, c color.RGBA) {
	drawHLine(s, x, y, w, c)
	drawHLine(s, x, y+h-1, w, c)
	drawVLine(s, x, y, h, c)
	drawVLine(s, x+w-1, y, h, c)
}

// drawRoundRect outlines a rounded rectangle, midpoint-circle corners.
func drawRoundRect(s Surface, x, y, w, h, r int16, c color.RGBA) {
	if r <= 0 {
		drawRect(s, x, y, w, h, c)
		return
	}
	if m := min16(w, h) / 2; r > m {
		r = m
	}
	drawHLine(s, x+r, y, w-2*r, c)
	drawHLine(s, x+r, y+h-1, w-2*r, c)
	drawVLine(s, x, y+r, h-2*r, c)
	drawVLine(s, x+w-1, y+r, h-2*r, c)
	corners(s, x, y, w, h, r, c, false)
}

// fillRoundRect fills a rounded rectangle.
func fillRoundRect(s Surface, x, y, w, h, r int16, c color.RGBA) {
	if r <= 0 {
		_ = s.FillRectangle(x, y, w, h, c)
		return
	}
	if m := min16(w, h) / 2; r > m {
		r = m
	}
	_ = s.FillRectangle(x, y+r, w, h-2*r, c)
	_ = s.FillRectangle(x+r, y, w-2*r, r, c)
	_ = s.FillRectangle(x+r, y+h-r, w-2*r, r, c)
	corners(s, x, y, w, h, r, c, true)
}

// corners walks one circle octant and mirrors it into the four corners,
// either as outline pixels or as filled spans.
func corners(s Surface, x, y, w, h, r int16, c color.RGBA, fill bool) {
	cx0, cy0 := x+r, y+r         // top-left center
	cx1, cy1 := x+w-r-1, y+h-r-1 // bottom-right center
	f := 1 - r
	ddfX := int16(1)
	ddfY := -2 * r
	px := int16(0)
	py := r
	put := func(dx, dy int16) {
		if fill {
			drawHLine(s, cx0-dx, cy0-dy, cx1-cx0+2*dx+1, c)
			drawHLine(s, cx0-dx, cy1+dy, cx1-cx0+2*dx+1, c)
			return
		}
		s.SetPixel(cx0-dx, cy0-dy, c)
		s.SetPixel(cx1+dx, cy0-dy, c)
		s.SetPixel(cx0-dx, cy1+dy, c)
		s.SetPixel(cx1+dx, cy1+dy, c)
	}
	put(px, py)
	put(py, px)
	for px < py {
		if f >= 0 {
			py--
			ddfY += 2
			f += ddfY
		}
		px++
		ddfX += 2
		f += ddfX
		put(px, py)
		put(py, px)
	}
}

// writeText draws a string with its top-left corner at (x, y). tinyfont
// positions by baseline, so the font's height is added; metrics are not
// portably exposed by Fonter, hence the explicit parameter.
func writeText(s Surface, f tinyfont.Fonter, x, y, fontHeight int16, str string, c color.RGBA) {
	tinyfont.WriteLine(s, f, x, y+fontHeight, str, c)
}

// textWidth measures the advance width of a string.
func textWidth(f tinyfont.Fonter, str string) int16 {
	_, outbox := tinyfont.LineWidth(f, str)
	return int16(outbox)
}

// drawImage blits an image with its top-left corner at (x, y).
func drawImage(s Surface, img image.Image, x, y int16) {
	if img == nil {
		return
	}
	b := img.Bounds()
	for ix := b.Min.X; ix < b.Max.X; ix++ {
		for iy := b.Min.Y; iy < b.Max.Y; iy++ {
			r, g, bl, a := img.At(ix, iy).RGBA()
			if a == 0 {
				continue
			}
			s.SetPixel(x+int16(ix-b.Min.X), y+int16(iy-b.Min.Y), color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8), A: uint8(a >> 8)})
		}
	}
}

func min16(a, b int16) int16 {
	if a < b {
		return a
	}
	return b
}
