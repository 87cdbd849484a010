package main

import (
	"context"
	"log"
	"sync/atomic"

	"lcdgfx/panel"
)

// keyReader is the key pad of a panel. *panel.Serial implements it.
type keyReader interface {
	ReadKey() (key byte, ok bool, err error)
}

// KeyHandler moves between screens on key pad input. The last screen is
// the About overlay; LEFT and RIGHT cycle the others.
type KeyHandler struct {
	screens []Screen
	current atomic.Int32
	redraw  chan struct{}
}

func NewKeyHandler(screens []Screen) *KeyHandler {
	return &KeyHandler{
		screens: screens,
		redraw:  make(chan struct{}, 1),
	}
}

// Current returns the screen to draw.
func (kh *KeyHandler) Current() Screen {
	return kh.screens[kh.current.Load()]
}

// Redraw signals when a key changed what is on screen.
func (kh *KeyHandler) Redraw() <-chan struct{} { return kh.redraw }

// Start reads keys from r until ctx is done or r fails.
func (kh *KeyHandler) Start(ctx context.Context, r keyReader) {
	go func() {
		for ctx.Err() == nil {
			key, ok, err := r.ReadKey()
			if err != nil {
				log.Printf("Key pad stopped: %v", err)
				return
			}
			if !ok {
				continue
			}
			log.Printf("Key pressed: 0x%02X", key)
			if kh.handleKey(key) {
				select {
				case kh.redraw <- struct{}{}:
				default:
				}
			}
		}
	}()
}

func (kh *KeyHandler) handleKey(key byte) bool {
	cur := int(kh.current.Load())
	about := len(kh.screens) - 1

	// About overlay logic
	if cur == about {
		if key == panel.KeyEsc {
			kh.current.Store(0)
			return true
		}
		return false
	}

	switch key {
	case panel.KeyLeft:
		kh.current.Store(int32((cur + about - 1) % about))
		return true
	case panel.KeyRight:
		kh.current.Store(int32((cur + 1) % about))
		return true
	case panel.KeyHelp:
		kh.current.Store(int32(about))
		return true
	case panel.KeyEsc:
		if cur == 0 {
			return false
		}
		kh.current.Store(0)
		return true
	}
	// Delegate to current screen's HandleKey
	return kh.screens[cur].HandleKey(key)
}
