package panel

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	"lcdgfx/graphics"
)

type fakePort struct {
	writes  [][]byte
	limit   int // short-write after this many bytes when > 0
	keys    []byte
	timeout time.Duration
	closed  bool
}

func (p *fakePort) Write(b []byte) (int, error) {
	p.writes = append(p.writes, append([]byte(nil), b...))
	if p.limit > 0 && len(b) > p.limit {
		return p.limit, nil
	}
	return len(b), nil
}

func (p *fakePort) Read(b []byte) (int, error) {
	if len(p.keys) == 0 {
		return 0, nil
	}
	b[0] = p.keys[0]
	p.keys = p.keys[1:]
	return 1, nil
}

func (p *fakePort) SetReadTimeout(t time.Duration) error {
	p.timeout = t
	return nil
}

func (p *fakePort) Close() error {
	p.closed = true
	return nil
}

func newTestSerial(p *fakePort) *Serial {
	s := newSerial(p, 128, 64)
	s.delay = 0
	return s
}

func TestSerialReset(t *testing.T) {
	p := &fakePort{}
	s := newTestSerial(p)
	if err := s.reset(); err != nil {
		t.Fatal(err)
	}
	want := [][]byte{{0x1b, 0x40}, {0x0b}, {0x0c}}
	if len(p.writes) != len(want) {
		t.Fatalf("wrote %d commands, want %d", len(p.writes), len(want))
	}
	for i := range want {
		if !bytes.Equal(p.writes[i], want[i]) {
			t.Errorf("command %d = % x, want % x", i, p.writes[i], want[i])
		}
	}
}

func TestSerialPresent(t *testing.T) {
	p := &fakePort{}
	s := newTestSerial(p)

	g := graphics.New(s)
	g.Line(0, 0, 127, 0)   // block 0 and 1, bit 0
	g.Line(0, 63, 127, 63) // blocks 14 and 15, bit 7
	if err := s.Present(); err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(p.writes[0], []byte{0x1b, 0x47}) {
		t.Fatalf("first write = % x, want 1b 47", p.writes[0])
	}
	blocks := p.writes[1:]
	if len(blocks) != 16 {
		t.Fatalf("sent %d blocks, want 16", len(blocks))
	}

	frame := s.Pages()
	// even blocks first, then odd
	order := []int{0, 2, 4, 6, 8, 10, 12, 14, 1, 3, 5, 7, 9, 11, 13, 15}
	for i, idx := range order {
		want := frame[idx*64 : idx*64+64]
		if !bytes.Equal(blocks[i], want) {
			t.Errorf("write %d is not block %d", i+1, idx)
		}
	}
	if blocks[0][0] != 0x01 || blocks[7][63] != 0x80 {
		t.Errorf("unexpected page bytes %#x %#x", blocks[0][0], blocks[7][63])
	}
}

func TestSerialShortWrite(t *testing.T) {
	p := &fakePort{limit: 10}
	s := newTestSerial(p)
	if err := s.Present(); !errors.Is(err, io.ErrShortWrite) {
		t.Errorf("error = %v, want io.ErrShortWrite", err)
	}
}

func TestSerialReadKey(t *testing.T) {
	p := &fakePort{keys: []byte{KeyLeft}}
	s := newTestSerial(p)

	key, ok, err := s.ReadKey()
	if err != nil || !ok || key != KeyLeft {
		t.Errorf("ReadKey() = %#x, %v, %v", key, ok, err)
	}
	if p.timeout != 100*time.Millisecond {
		t.Errorf("read timeout = %v", p.timeout)
	}
	if _, ok, err := s.ReadKey(); ok || err != nil {
		t.Errorf("ReadKey() on timeout = %v, %v", ok, err)
	}

	if err := s.Close(); err != nil || !p.closed {
		t.Errorf("Close() = %v, closed %v", err, p.closed)
	}
}
