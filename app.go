package rogue

import (
	"fmt"
	"time"

	"github.com/gogpu/rogue/grid"
)

// TickResult tells the driver whether to keep running.
type TickResult uint8

const (
	// Continue keeps the loop running.
	Continue TickResult = iota

	// Stop ends the loop after the current tick; Present is not
	// called for a stopping tick.
	Stop
)

// String returns the string representation of TickResult.
func (r TickResult) String() string {
	switch r {
	case Continue:
		return "Continue"
	case Stop:
		return "Stop"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(r))
	}
}

// KeyState is a snapshot of the keyboard for one tick: the most
// recent key press since the previous tick, if any.
type KeyState struct {
	// Code is the windowing layer's key code.
	Code uint32

	// Pressed reports whether a key press arrived since the last
	// tick.
	Pressed bool
}

// MouseState is a snapshot of the pointer for one tick.
type MouseState struct {
	// X and Y are the pointer position in cells.
	X, Y int32

	// Buttons is a bitmask of held buttons, bit 0 left, bit 1 right,
	// bit 2 middle.
	Buttons uint8
}

// SimInput carries the per-tick simulation inputs.
type SimInput struct {
	// DT is the elapsed time since the previous tick.
	DT time.Duration

	// Width and Height are the grid dimensions in cells.
	Width  int
	Height int

	// Key and Mouse are input snapshots taken at the start of the
	// tick.
	Key   KeyState
	Mouse MouseState
}

// PresentInput hands the application the cell grid to paint.
type PresentInput struct {
	// Image is a borrowed mutable view of the frame's grid, valid
	// only for the duration of Present. The driver reuses it across
	// frames; do not retain it.
	Image *grid.Image
}

// App is the host contract a rogue application implements.
//
// Start runs once before the first tick. Tick advances the simulation
// and decides whether to continue; a Stop result ends the loop without
// a final Present. Present paints the frame's cell grid; the grid
// retains the previous frame's contents, so clear it when needed.
type App interface {
	Start()
	Tick(SimInput) TickResult
	Present(PresentInput)
}
