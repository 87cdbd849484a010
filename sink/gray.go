package sink

import (
	"image"
	"image/color"
)

// Gray is an 8-bit grayscale framebuffer holding a monochrome picture:
// white paper, lit pixels black.
type Gray struct {
	Width, Height int
	Framebuffer   *image.Gray
}

// NewGray returns a cleared width x height framebuffer.
func NewGray(width, height int) *Gray {
	g := &Gray{
		Width:       width,
		Height:      height,
		Framebuffer: image.NewGray(image.Rect(0, 0, width, height)),
	}
	g.Clear()
	return g
}

// Clear turns every pixel off.
func (g *Gray) Clear() {
	imageBounds := g.Framebuffer.Bounds()
	for y := imageBounds.Min.Y; y < imageBounds.Max.Y; y++ {
		for x := imageBounds.Min.X; x < imageBounds.Max.X; x++ {
			g.Framebuffer.SetGray(x, y, color.Gray{Y: 255})
		}
	}
}

func (g *Gray) SetPixel(x, y int, on bool) {
	if !(image.Point{x, y}.In(g.Framebuffer.Rect)) {
		return
	}
	c := color.Gray{Y: 255}
	if on {
		c.Y = 0
	}
	g.Framebuffer.SetGray(x, y, c)
}

// Lit reports whether (x, y) is on.
func (g *Gray) Lit(x, y int) bool {
	if !(image.Point{x, y}.In(g.Framebuffer.Rect)) {
		return false
	}
	return g.Framebuffer.GrayAt(x, y).Y < 128
}

// Bounds returns the framebuffer rectangle.
func (g *Gray) Bounds() image.Rectangle { return g.Framebuffer.Rect }

// Image returns the framebuffer.
func (g *Gray) Image() image.Image { return g.Framebuffer }

// Pack returns the frame as 1 bpp scanlines, leftmost pixel in the most
// significant bit, bottom scanline first.
func (g *Gray) Pack() []byte {
	bytesPerScanline := (g.Width + 7) / 8
	framebuffer := make([]byte, bytesPerScanline*g.Height)
	for y := 0; y < g.Height; y++ {
		flippedY := g.Height - 1 - y // vertical flip
		for xByte := 0; xByte < bytesPerScanline; xByte++ {
			var b byte
			for bit := 0; bit < 8; bit++ {
				x := xByte*8 + bit
				if x >= g.Width {
					continue
				}
				if g.Lit(x, flippedY) {
					b |= 1 << (7 - bit)
				}
			}
			framebuffer[y*bytesPerScanline+xByte] = b
		}
	}
	return framebuffer
}

// Pages returns the frame in controller page order: one byte per column
// for every band of eight rows, top row in the least significant bit.
// The height is rounded up to a whole page.
func (g *Gray) Pages() []byte {
	pages := (g.Height + 7) / 8
	out := make([]byte, pages*g.Width)
	for y := 0; y < g.Height; y++ {
		base := (y / 8) * g.Width
		bit := byte(1) << uint(y%8)
		for x := 0; x < g.Width; x++ {
			if g.Lit(x, y) {
				out[base+x] |= bit
			}
		}
	}
	return out
}
