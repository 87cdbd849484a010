// Package sink provides pixel sinks for the graphics engine: in-memory
// framebuffers, an adapter for TinyGo display drivers, a call recorder
// and a locking wrapper.
//
// The framebuffers clip: writes outside their bounds are dropped.
package sink

import (
	"image"
	"sync"

	"lcdgfx/graphics"
)

var (
	_ graphics.Sink = (*Gray)(nil)
	_ graphics.Sink = (*Mono)(nil)
	_ graphics.Sink = (*Displayer)(nil)
	_ graphics.Sink = (*Recorder)(nil)
	_ graphics.Sink = (*Locked)(nil)
)

// Pixel is one recorded SetPixel call.
type Pixel struct {
	X, Y int
	On   bool
}

// Point returns the pixel position.
func (p Pixel) Point() image.Point { return image.Pt(p.X, p.Y) }

// Recorder keeps every SetPixel call in order. The zero value is ready
// to use.
type Recorder struct {
	Calls []Pixel
}

func (r *Recorder) SetPixel(x, y int, on bool) {
	r.Calls = append(r.Calls, Pixel{X: x, Y: y, On: on})
}

// Count returns how many calls touched (x, y).
func (r *Recorder) Count(x, y int) int {
	n := 0
	for _, c := range r.Calls {
		if c.X == x && c.Y == y {
			n++
		}
	}
	return n
}

// Writes returns the number of calls per position.
func (r *Recorder) Writes() map[image.Point]int {
	m := make(map[image.Point]int)
	for _, c := range r.Calls {
		m[c.Point()]++
	}
	return m
}

// Lit returns the positions whose last write turned them on.
func (r *Recorder) Lit() map[image.Point]bool {
	m := make(map[image.Point]bool)
	for _, c := range r.Calls {
		if c.On {
			m[c.Point()] = true
		} else {
			delete(m, c.Point())
		}
	}
	return m
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }

// Locked serialises SetPixel calls from concurrent callers.
type Locked struct {
	mu sync.Mutex
	s  graphics.Sink
}

// NewLocked wraps s.
func NewLocked(s graphics.Sink) *Locked {
	return &Locked{s: s}
}

func (l *Locked) SetPixel(x, y int, on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.s.SetPixel(x, y, on)
}

// Do runs fn while holding the lock, so a whole drawing can be kept
// together.
func (l *Locked) Do(fn func(s graphics.Sink)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.s)
}
