package sink

import (
	"image"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Mono is a 1 bpp framebuffer in the page layout SSD1306-class
// controllers use, ready to hand to a periph ssd1306.Dev.
type Mono struct {
	img *image1bit.VerticalLSB
}

// NewMono returns a cleared width x height framebuffer.
func NewMono(width, height int) *Mono {
	return &Mono{img: image1bit.NewVerticalLSB(image.Rect(0, 0, width, height))}
}

func (m *Mono) SetPixel(x, y int, on bool) {
	if !(image.Point{x, y}.In(m.img.Rect)) {
		return
	}
	m.img.SetBit(x, y, image1bit.Bit(on))
}

// Lit reports whether (x, y) is on.
func (m *Mono) Lit(x, y int) bool {
	if !(image.Point{x, y}.In(m.img.Rect)) {
		return false
	}
	return bool(m.img.BitAt(x, y))
}

// Clear turns every pixel off.
func (m *Mono) Clear() {
	clear(m.img.Pix)
}

// Bounds returns the framebuffer rectangle.
func (m *Mono) Bounds() image.Rectangle { return m.img.Rect }

// Image returns the underlying image.
func (m *Mono) Image() *image1bit.VerticalLSB { return m.img }
