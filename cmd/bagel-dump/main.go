package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/lixenwraith/bagel/engine"
	"github.com/lixenwraith/bagel/render"
	"github.com/lixenwraith/bagel/terminal"
)

func main() {
	cfg := engine.DefaultConfig()
	cfg.Frames = 1
	cfg.Interval = 0
	cfg.Output = terminal.ModePlain

	var reset bool
	flag.IntVar(&cfg.Frames, "n", cfg.Frames, "Number of frames to print")
	flag.IntVar(&cfg.Width, "w", cfg.Width, "Buffer width in cells")
	flag.IntVar(&cfg.Height, "h", cfg.Height, "Buffer height in cells")
	flag.StringVar(&cfg.Scene, "scene", cfg.Scene, "Scene: 'tiled' or 'blend'")
	flag.BoolVar(&reset, "clear", false, "Emit the terminal reset sequence before each frame")
	flag.Parse()

	if cfg.Frames < 1 {
		fmt.Fprintln(os.Stderr, "Error: -n must be at least 1")
		os.Exit(1)
	}

	sink := terminal.NewPlainSink(os.Stdout, render.NewCanvas())
	sink.Clear = reset
	defer sink.Close()

	loop, err := engine.NewLoop(cfg, sink, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	if _, err := loop.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
