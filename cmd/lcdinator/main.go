package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lcdgfx/graphics"
	"lcdgfx/panel"
)

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("%v", err)
	}
	if cfg.Verbose {
		graphics.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	f, err := loadFont(cfg.Font)
	if err != nil {
		log.Fatalf("Cannot load font %s: %v", cfg.Font, err)
	}
	p, err := openPanel(cfg)
	if err != nil {
		log.Fatalf("Cannot open %s panel: %v", cfg.Panel, err)
	}
	defer p.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, p, newCanvas(p, f, cfg.Width, cfg.Height), NewKeyHandler(defaultScreens())); err != nil {
		log.Fatalf("%v", err)
	}
}

func defaultScreens() []Screen {
	net := &NetSampler{}
	return []Screen{
		&SystemInfoScreen{},
		&NetworkInfoScreen{list: net.Interfaces},
		&ClockScreen{},
		&AboutScreen{},
	}
}

// run redraws the current screen on every tick and key press until ctx is
// done. The png panel stops after cfg.Frames frames.
func run(ctx context.Context, cfg config, p panel.Panel, c *canvas, kh *KeyHandler) error {
	if r, ok := p.(keyReader); ok {
		kh.Start(ctx, r)
	}

	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()
	for frame := 0; ; frame++ {
		p.Clear()
		if err := kh.Current().Draw(c); err != nil {
			log.Printf("Draw: %v", err)
		}
		if err := p.Present(); err != nil {
			return err
		}
		if cfg.Panel == "png" && frame+1 >= cfg.Frames {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-kh.Redraw():
		case <-ticker.C:
		}
	}
}
