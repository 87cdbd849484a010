package main

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"lcdgfx/graphics"
	"lcdgfx/panel"
)

// rowPitch is the height of one line of a screen.
const rowPitch = 16

// canvas is what a screen draws with.
type canvas struct {
	*graphics.Graphics
	font          graphics.Font
	width, height int
}

func newCanvas(s graphics.Sink, f graphics.Font, width, height int) *canvas {
	return &canvas{
		Graphics: graphics.New(s),
		font:     f,
		width:    width,
		height:   height,
	}
}

// rowTop returns the y of text centred in row i.
func (c *canvas) rowTop(i int) int {
	return i*rowPitch + max(rowPitch-c.font.Rows(), 0)/2
}

// fit cuts s to the characters that fit between x and the right edge.
func (c *canvas) fit(x int, s string) string {
	n := (c.width - x) / c.font.Columns()
	r := []rune(s)
	if n < 0 {
		n = 0
	}
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}

// line draws s in row i. A string the font cannot draw shows as "?".
func (c *canvas) line(x, i int, s string) error {
	err := c.Text(x, c.rowTop(i), c.font, c.fit(x, s))
	if err != nil {
		c.Text(x, c.rowTop(i), c.font, "?")
	}
	return err
}

type Screen interface {
	Draw(c *canvas) error
	// HandleKey reacts to a key the app did not consume and reports
	// whether the screen needs a redraw.
	HandleKey(key byte) bool
}

type SystemInfoScreen struct {
	stats func() systemStats
}

func (s *SystemInfoScreen) Draw(c *canvas) error {
	read := s.stats
	if read == nil {
		read = readSystemStats
	}
	st := read()

	DrawIcon(c.Sink(), 0, 4, IconCPU)
	DrawIcon(c.Sink(), 0, rowPitch+4, IconRAM)
	DrawIcon(c.Sink(), 0, 2*rowPitch+4, IconDisk)
	DrawIcon(c.Sink(), 0, 3*rowPitch+4, IconClock)

	cpu := "?"
	if st.CPU >= 0 {
		cpu = fmt.Sprintf("%2.0f%%", st.CPU)
	}
	err := errors.Join(
		c.line(10, 0, "CPU: "+cpu),
		c.line(10, 1, "RAM: "+st.RAM),
		c.line(10, 2, "DSK: "+st.Disk),
		c.line(10, 3, "UPT: "+st.Uptime),
	)

	// CPU gauge at the right end of the first row
	gx, gw := c.width-36, 34
	c.Rectangle(gx, 4, gw, 8, false)
	if st.CPU > 0 {
		c.Rectangle(gx+2, 6, int(math.Min(st.CPU, 100)*float64(gw-4)/100), 4, true)
	}
	return err
}

func (s *SystemInfoScreen) HandleKey(byte) bool { return false }

// NetworkInfoScreen lists the network interfaces, scrolling with UP and
// DOWN. ENTER switches between addresses and traffic rates.
type NetworkInfoScreen struct {
	list   func() ([]NetInterfaceInfo, error)
	offset atomic.Int32
	count  atomic.Int32
	rates  atomic.Bool
}

func (s *NetworkInfoScreen) Draw(c *canvas) error {
	DrawIcon(c.Sink(), 0, 4, IconNet)
	ifaces, err := s.list()
	if err != nil {
		return errors.Join(err, c.line(10, 0, "NET: ?"))
	}
	s.count.Store(int32(len(ifaces)))

	title := "NET: addresses"
	if s.rates.Load() {
		title = "NET: rx/tx"
	}
	errs := []error{c.line(10, 0, title)}

	rows := c.height/rowPitch - 1
	off := min(int(s.offset.Load()), max(len(ifaces)-rows, 0))
	for i := 0; i < rows && off+i < len(ifaces); i++ {
		iface := ifaces[off+i]
		detail := iface.IP
		switch {
		case !iface.Up:
			detail = "down"
		case s.rates.Load():
			detail = formatRate(iface.RxRate) + "/" + formatRate(iface.TxRate)
		case detail == "":
			detail = "-"
		}
		errs = append(errs, c.line(0, i+1, fmt.Sprintf("%-6s%s", iface.Name, detail)))
	}
	return errors.Join(errs...)
}

func (s *NetworkInfoScreen) HandleKey(key byte) bool {
	switch key {
	case panel.KeyUp:
		if s.offset.Load() > 0 {
			s.offset.Add(-1)
			return true
		}
	case panel.KeyDown:
		if s.offset.Load() < s.count.Load()-1 {
			s.offset.Add(1)
			return true
		}
	case panel.KeyEnter:
		s.rates.Store(!s.rates.Load())
		return true
	}
	return false
}

// ClockScreen draws an analogue clock with the shape primitives next to
// the digital time.
type ClockScreen struct {
	now func() time.Time
}

// clockPoint returns the point at distance r from (cx, cy) in the
// direction of a clock hand at fraction f of a full turn.
func clockPoint(cx, cy int, r, f float64) (int, int) {
	a := f * 2 * math.Pi
	return cx + int(math.Round(r*math.Sin(a))), cy - int(math.Round(r*math.Cos(a)))
}

func (s *ClockScreen) Draw(c *canvas) error {
	now := time.Now
	if s.now != nil {
		now = s.now
	}
	t := now()

	r := min(c.width, c.height)/2 - 2
	cx, cy := r+1, c.height/2
	c.Circle(cx, cy, r)
	for h := 0; h < 12; h++ {
		x0, y0 := clockPoint(cx, cy, float64(r-3), float64(h)/12)
		x1, y1 := clockPoint(cx, cy, float64(r), float64(h)/12)
		c.Line(x0, y0, x1, y1)
	}

	// seconds sweep, counter-clockwise from the bottom up to the hand
	sec := t.Second() * 6
	if sec > 0 {
		c.Arc(cx, cy, r-5, 180-sec, 180)
	}

	hour := (float64(t.Hour()%12) + float64(t.Minute())/60) / 12
	x, y := clockPoint(cx, cy, float64(r)*0.5, hour)
	c.Line(cx, cy, x, y)
	minute := (float64(t.Minute()) + float64(t.Second())/60) / 60
	x, y = clockPoint(cx, cy, float64(r)*0.8, minute)
	c.Line(cx, cy, x, y)

	tx := 2*r + 6
	c.Rectangle(tx-2, c.rowTop(1)-2, c.width-tx, c.font.Rows()+4, false)
	return errors.Join(
		c.line(tx, 1, t.Format("15:04")),
		c.line(tx, 2, t.Format("Jan 02")),
	)
}

func (s *ClockScreen) HandleKey(byte) bool { return false }

type AboutScreen struct{}

func (s *AboutScreen) Draw(c *canvas) error {
	return errors.Join(
		c.line(0, 0, "LCDinator"),
		c.line(0, 1, "by nemvince"),
		c.line(0, 3, "version 1"),
	)
}

func (s *AboutScreen) HandleKey(byte) bool { return false }
