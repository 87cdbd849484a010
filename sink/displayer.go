package sink

import (
	"image/color"
	"math"

	"tinygo.org/x/drivers"
)

var (
	// On is the colour written for lit pixels.
	On = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	// Off is the colour written for cleared pixels.
	Off = color.RGBA{A: 0xff}
)

// Displayer drives a TinyGo display driver, such as
// tinygo.org/x/drivers/ssd1306, through its SetPixel method.
type Displayer struct {
	D drivers.Displayer
}

// NewDisplayer wraps d.
func NewDisplayer(d drivers.Displayer) *Displayer {
	return &Displayer{D: d}
}

// SetPixel drops coordinates outside the display and outside the int16
// range of the driver API.
func (s *Displayer) SetPixel(x, y int, on bool) {
	if x < 0 || y < 0 || x > math.MaxInt16 || y > math.MaxInt16 {
		return
	}
	w, h := s.D.Size()
	if x >= int(w) || y >= int(h) {
		return
	}
	c := Off
	if on {
		c = On
	}
	s.D.SetPixel(int16(x), int16(y), c)
}

// Display flushes the driver's buffer to the panel.
func (s *Displayer) Display() error {
	return s.D.Display()
}
