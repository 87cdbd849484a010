package main

import "lcdgfx/graphics"

var (
	IconCPU   = [8]byte{0x24, 0x7e, 0xc3, 0x5a, 0x5a, 0xc3, 0x7e, 0x24}
	IconRAM   = [8]byte{0x00, 0xff, 0xa5, 0xa5, 0xff, 0xff, 0xaa, 0x00}
	IconDisk  = [8]byte{0x7e, 0x81, 0x81, 0xff, 0x81, 0x85, 0x81, 0x7e}
	IconClock = [8]byte{0x3c, 0x42, 0x91, 0x91, 0x9d, 0x81, 0x42, 0x3c}
	IconNet   = [8]byte{0x18, 0x18, 0x00, 0x3c, 0x42, 0x99, 0x24, 0x42}
)

// DrawIcon draws a small monochrome icon at (x, y) using an 8x8 bitmap.
func DrawIcon(s graphics.Sink, x, y int, icon [8]byte) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if (icon[row]>>(7-col))&1 == 1 {
				s.SetPixel(x+col, y+row, true)
			}
		}
	}
}
