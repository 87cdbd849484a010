package panel

import (
	"fmt"
	"io"
	"time"

	"go.bug.st/serial"

	"lcdgfx/graphics"
	"lcdgfx/sink"
)

const (
	// DefaultBaudRate is the line speed of the LCD controller.
	DefaultBaudRate = 115200

	commandDelay = 5 * time.Millisecond
	keyTimeout   = 100 * time.Millisecond
	blockSize    = 64
)

var (
	cmdReset    = []byte{0x1b, 0x40}
	cmdHome     = []byte{0x0b}
	cmdClear    = []byte{0x0c}
	cmdGraphics = []byte{0x1b, 0x47}
)

// Key codes sent by the LCD key pad.
const (
	KeyHelp  = 0x41
	KeyLeft  = 0x42
	KeyEsc   = 0x43
	KeyUp    = 0x44
	KeyEnter = 0x45
	KeyDown  = 0x46
	KeyRight = 0x47
)

// port is the part of serial.Port the panel uses.
type port interface {
	io.ReadWriteCloser
	SetReadTimeout(t time.Duration) error
}

// Serial is a graphic LCD with a key pad behind a serial line. Frames are
// sent in controller page order after an ESC G command.
type Serial struct {
	*sink.Gray
	port  port
	delay time.Duration
	key   [1]byte
}

// OpenSerial opens the LCD on device and resets it.
func OpenSerial(device string, baud, width, height int) (*Serial, error) {
	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	p, err := serial.Open(device, mode)
	if err != nil {
		return nil, fmt.Errorf("panel: cannot open serial port %s: %w", device, err)
	}

	s := newSerial(p, width, height)
	if err := s.reset(); err != nil {
		p.Close()
		return nil, err
	}
	graphics.Logger().Info("panel: serial LCD ready", "device", device, "baud", baud, "width", width, "height", height)
	return s, nil
}

func newSerial(p port, width, height int) *Serial {
	return &Serial{
		Gray:  sink.NewGray(width, height),
		port:  p,
		delay: commandDelay,
	}
}

func (s *Serial) reset() error {
	for _, cmd := range [][]byte{cmdReset, cmdHome, cmdClear} {
		if err := s.write(cmd); err != nil {
			return err
		}
		time.Sleep(s.delay)
	}
	return nil
}

// Present sends the framebuffer. The page data goes out in 64-byte
// blocks, even-numbered blocks first, then odd-numbered ones.
func (s *Serial) Present() error {
	cols := s.Pages()

	if err := s.write(cmdGraphics); err != nil {
		return err
	}
	for pass := 0; pass < 2; pass++ {
		for i := 0; i < len(cols); i += blockSize {
			if (i/blockSize)%2 != pass {
				continue
			}
			limit := min(i+blockSize, len(cols))
			if err := s.write(cols[i:limit]); err != nil {
				return err
			}
		}
	}
	return nil
}

// ReadKey waits up to 100ms for a key pad byte. ok is false on timeout.
func (s *Serial) ReadKey() (key byte, ok bool, err error) {
	if err := s.port.SetReadTimeout(keyTimeout); err != nil {
		return 0, false, fmt.Errorf("panel: serial read timeout: %w", err)
	}
	n, err := s.port.Read(s.key[:])
	if err != nil {
		return 0, false, fmt.Errorf("panel: serial read: %w", err)
	}
	if n != 1 {
		return 0, false, nil
	}
	return s.key[0], true, nil
}

func (s *Serial) Close() error {
	return s.port.Close()
}

func (s *Serial) write(data []byte) error {
	n, err := s.port.Write(data)
	if err != nil {
		graphics.Logger().Warn("panel: serial write failed", "err", err)
		return fmt.Errorf("panel: serial write: %w", err)
	}
	if n < len(data) {
		return fmt.Errorf("panel: serial write: wrote only %d of %d bytes: %w", n, len(data), io.ErrShortWrite)
	}
	return nil
}
