package panel

import (
	"errors"
	"fmt"
	"image"

	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/host/v3"

	"lcdgfx/graphics"
	"lcdgfx/sink"
)

// oled is the part of *ssd1306.Dev the panel uses.
type oled interface {
	Bounds() image.Rectangle
	Draw(r image.Rectangle, src image.Image, sp image.Point) error
	Halt() error
}

// SSD1306 is an SSD1306 OLED on an I²C bus.
type SSD1306 struct {
	*sink.Mono
	dev   oled
	close func() error
}

// OpenSSD1306 initialises the host drivers, opens the named I²C bus ("" for
// the first one) and configures a width x height panel on it.
func OpenSSD1306(bus string, width, height int) (*SSD1306, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("panel: host init: %w", err)
	}
	b, err := i2creg.Open(bus)
	if err != nil {
		return nil, fmt.Errorf("panel: open I2C bus %q: %w", bus, err)
	}

	opts := ssd1306.DefaultOpts
	opts.W = width
	opts.H = height
	dev, err := ssd1306.NewI2C(b, &opts)
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("panel: ssd1306 init: %w", err)
	}
	graphics.Logger().Info("panel: ssd1306 ready", "bus", bus, "width", width, "height", height)
	return newSSD1306(dev, b.Close), nil
}

func newSSD1306(dev oled, closeBus func() error) *SSD1306 {
	r := dev.Bounds()
	return &SSD1306{
		Mono:  sink.NewMono(r.Dx(), r.Dy()),
		dev:   dev,
		close: closeBus,
	}
}

func (d *SSD1306) Present() error {
	if err := d.dev.Draw(d.dev.Bounds(), d.Image(), image.Point{}); err != nil {
		return fmt.Errorf("panel: ssd1306 draw: %w", err)
	}
	return nil
}

// Close turns the panel off and releases the bus.
func (d *SSD1306) Close() error {
	err := d.dev.Halt()
	if d.close != nil {
		err = errors.Join(err, d.close())
	}
	return err
}
