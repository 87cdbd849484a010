// Package panel presents frames drawn by the graphics engine on real
// displays: the serial LCD of the status box, SSD1306 OLEDs on I²C, and a
// PNG file for headless runs.
package panel

import "lcdgfx/graphics"

// Panel is a display with its own framebuffer. Drawing goes to the
// framebuffer; Present sends it to the glass.
type Panel interface {
	graphics.Sink
	// Clear turns every pixel of the framebuffer off.
	Clear()
	// Present shows the framebuffer.
	Present() error
	Close() error
}
