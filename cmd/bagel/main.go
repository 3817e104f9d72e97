package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/lixenwraith/bagel/audio"
	"github.com/lixenwraith/bagel/engine"
	"github.com/lixenwraith/bagel/render"
	"github.com/lixenwraith/bagel/terminal"
)

func main() {
	cfg := engine.LoadConfigFromEnv()

	var (
		outputStr string
		fps       int
	)

	flag.IntVar(&cfg.Width, "w", cfg.Width, "Buffer width in cells")
	flag.IntVar(&cfg.Height, "h", cfg.Height, "Buffer height in cells")
	flag.IntVar(&cfg.Frames, "frames", cfg.Frames, "Stop after N frames (0 = until quit)")
	flag.IntVar(&fps, "fps", 0, "Target frames per second (0 = keep interval)")
	flag.StringVar(&outputStr, "out", cfg.Output.String(), "Output: 'auto', 'screen' or 'plain'")
	flag.StringVar(&cfg.Scene, "scene", cfg.Scene, "Scene: 'tiled' or 'blend'")
	flag.BoolVar(&cfg.Audio.Enabled, "sound", cfg.Audio.Enabled, "Play a tone tracking frame brightness")
	flag.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Append diagnostics to this file")
	flag.Parse()

	mode, err := terminal.ParseMode(outputStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.Output = terminal.Resolve(mode, os.Stdout)

	if fps > 0 {
		cfg.Interval = time.Second / time.Duration(fps)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *engine.Config) error {
	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	canvas := render.NewCanvas()

	var sink terminal.Sink
	switch cfg.Output {
	case terminal.ModeScreen:
		sink, err = terminal.NewScreenSink(canvas, terminal.DefaultPalette(), logger)
		if err != nil {
			return err
		}
	default:
		sink = terminal.NewPlainSink(os.Stdout, canvas)
	}
	defer sink.Close()

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			sink.Close()
			fmt.Fprintf(os.Stderr, "\nBAGEL CRASHED: %v\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	loop, err := engine.NewLoop(cfg, sink, logger)
	if err != nil {
		return err
	}

	player := audio.NewPlayer(cfg.Audio)
	if err := player.Initialize(); err != nil {
		// Non-fatal, render without sound
		logger.Printf("Audio initialization failed: %v", err)
	} else {
		loop.Player = player
		defer player.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Printf("start %dx%d scene=%s output=%v", cfg.Width, cfg.Height, cfg.Scene, cfg.Output)
	_, err = loop.Run(ctx)
	return err
}

// openLogger writes to cfg.LogFile, or stderr in plain mode without one
// The screen sink owns the terminal, so its logs are discarded unless a file is given
func openLogger(cfg *engine.Config) (*log.Logger, func(), error) {
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log: %w", err)
		}
		return log.New(f, "bagel: ", log.LstdFlags), func() { f.Close() }, nil
	}

	var w io.Writer = io.Discard
	if cfg.Output == terminal.ModePlain && !terminal.IsTerminal(os.Stderr) {
		w = os.Stderr
	}
	return log.New(w, "bagel: ", log.LstdFlags), func() {}, nil
}
