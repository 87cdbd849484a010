package panel

import (
	"fmt"
	"image/png"
	"os"
	"sync/atomic"

	"lcdgfx/sink"
)

// PNG writes every presented frame to a PNG file, replacing the previous
// one. It stands in for a panel on machines without one.
type PNG struct {
	*sink.Gray
	path   string
	frames atomic.Int64
}

// NewPNG returns a width x height panel writing to path.
func NewPNG(path string, width, height int) *PNG {
	return &PNG{
		Gray: sink.NewGray(width, height),
		path: path,
	}
}

func (p *PNG) Present() error {
	tmp := p.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("panel: %w", err)
	}
	if err := png.Encode(f, p.Image()); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("panel: encode %s: %w", p.path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("panel: %w", err)
	}
	if err := os.Rename(tmp, p.path); err != nil {
		return fmt.Errorf("panel: %w", err)
	}
	p.frames.Add(1)
	return nil
}

// Frames returns the number of frames written so far.
func (p *PNG) Frames() int { return int(p.frames.Load()) }

func (p *PNG) Close() error { return nil }
