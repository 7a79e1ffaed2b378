package rogue

import "io"

// Config holds the window and presentation settings for Run. Values
// are chained: DefaultConfig().WithTitle("x").WithInnerSize(800, 600).
// Presentation always runs FIFO (vsync, no tearing); the windowing
// layer owns presentation timing.
type Config struct {
	// Title is the window title.
	Title string

	// Width and Height are the inner window size in pixels.
	Width  int
	Height int

	// Font is an optional atlas image (PNG or BMP). When nil the
	// embedded 8x16 font is used.
	Font io.Reader
}

// DefaultConfig returns the default configuration: a 100x100 window
// titled "rogue window" with the embedded font.
func DefaultConfig() Config {
	return Config{
		Title:  "rogue window",
		Width:  100,
		Height: 100,
	}
}

// WithTitle sets the window title.
func (c Config) WithTitle(title string) Config {
	c.Title = title
	return c
}

// WithInnerSize sets the inner window size in pixels.
func (c Config) WithInnerSize(width, height int) Config {
	c.Width = width
	c.Height = height
	return c
}

// WithFont sets the font atlas image to load instead of the embedded
// font. The reader is consumed by Run.
func (c Config) WithFont(r io.Reader) Config {
	c.Font = r
	return c
}
