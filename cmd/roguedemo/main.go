// Command roguedemo opens a window and draws a minimal character-grid
// scene.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/rogue"
	"github.com/gogpu/rogue/grid"
)

func main() {
	var (
		width   = flag.Int("width", 800, "window width")
		height  = flag.Int("height", 600, "window height")
		verbose = flag.Bool("v", false, "enable logging")
	)
	flag.Parse()

	if *verbose {
		rogue.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	cfg := rogue.DefaultConfig().
		WithTitle("Hello, World!").
		WithInnerSize(*width, *height)

	if err := rogue.Run(cfg, &helloDemo{}); err != nil {
		log.Fatal(err)
	}
}

type helloDemo struct {
	frames uint64
}

func (h *helloDemo) Start() {}

func (h *helloDemo) Tick(in rogue.SimInput) rogue.TickResult {
	h.frames++
	if in.Key.Pressed {
		return rogue.Stop
	}
	return rogue.Continue
}

func (h *helloDemo) Present(p rogue.PresentInput) {
	img := p.Image
	img.Clear(grid.White, grid.Black)
	img.DrawRect(grid.Pt(0, 0), img.Width, img.Height, grid.NewCell('#', grid.Cyan, grid.Black))
	img.DrawString(grid.Pt(2, 2), "Hello, World!", grid.Yellow, grid.Black)
	img.DrawString(grid.Pt(2, 4), "press any key to quit", grid.White, grid.Black)
	img.DrawString(grid.Pt(2, 6), fmt.Sprintf("frame %d", h.frames), grid.Green, grid.Black)
}
