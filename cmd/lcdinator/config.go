package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/text/encoding/charmap"

	"lcdgfx/font"
	"lcdgfx/panel"
)

const (
	defaultSerialDevice = "/dev/ttyS1"
	defaultWidth        = 128
	defaultHeight       = 64
)

type config struct {
	Panel    string
	Device   string
	Baud     int
	Bus      string
	Width    int
	Height   int
	Font     string
	Out      string
	Interval time.Duration
	Frames   int
	Verbose  bool
}

func parseConfig(args []string) (config, error) {
	device := defaultSerialDevice
	if env := os.Getenv("LCDINATOR_DEVICE"); env != "" {
		device = env
	}

	var cfg config
	fs := flag.NewFlagSet("lcdinator", flag.ContinueOnError)
	fs.StringVar(&cfg.Panel, "panel", "serial", "display to drive: serial, ssd1306 or png")
	fs.StringVar(&cfg.Device, "device", device, "serial device of the LCD")
	fs.IntVar(&cfg.Baud, "baud", panel.DefaultBaudRate, "serial line speed")
	fs.StringVar(&cfg.Bus, "i2c", "", "I2C bus of the ssd1306 (empty for the first one)")
	fs.IntVar(&cfg.Width, "width", defaultWidth, "panel width in pixels")
	fs.IntVar(&cfg.Height, "height", defaultHeight, "panel height in pixels")
	fs.StringVar(&cfg.Font, "font", "cp850", "font: cp850, 7x13 or a text glyph file")
	fs.StringVar(&cfg.Out, "out", "lcdinator.png", "output file of the png panel")
	fs.DurationVar(&cfg.Interval, "interval", time.Second, "redraw interval")
	fs.IntVar(&cfg.Frames, "frames", 1, "frames to render before exiting, png panel only")
	fs.BoolVar(&cfg.Verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	// the device may also be given positionally
	if fs.NArg() > 0 {
		cfg.Device = fs.Arg(0)
	}

	switch cfg.Panel {
	case "serial", "ssd1306", "png":
	default:
		return config{}, fmt.Errorf("unknown panel %q", cfg.Panel)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return config{}, fmt.Errorf("invalid panel size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Interval <= 0 {
		return config{}, errors.New("interval must be positive")
	}
	return cfg, nil
}

func loadFont(name string) (*font.Font, error) {
	switch name {
	case "cp850":
		return font.CodePage850, nil
	case "7x13":
		return font.FromFace(basicfont.Face7x13, 7, 13)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return font.DecodeText(f, charmap.CodePage850)
}

func openPanel(cfg config) (panel.Panel, error) {
	switch cfg.Panel {
	case "ssd1306":
		p, err := panel.OpenSSD1306(cfg.Bus, cfg.Width, cfg.Height)
		if err != nil {
			return nil, err
		}
		return p, nil
	case "png":
		return panel.NewPNG(cfg.Out, cfg.Width, cfg.Height), nil
	}
	p, err := panel.OpenSerial(cfg.Device, cfg.Baud, cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	return p, nil
}
