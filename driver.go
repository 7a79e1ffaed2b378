package rogue

import (
	"errors"
	"sync"
	"time"

	"github.com/gogpu/rogue/grid"
	"github.com/gogpu/rogue/render"
)

// frameSurface is the slice of render.Surface the driver drives.
type frameSurface interface {
	Frame(*grid.Image) error
	Resize(width, height uint32) error
}

// driver sequences one loop iteration: input snapshot, tick, present,
// frame submit. It owns the grid image and resizes it when the window
// cell dimensions change. The step method runs on the draw goroutine;
// input callbacks may run concurrently and go through the mutex.
type driver struct {
	app     App
	surface frameSurface
	img     *grid.Image

	cellW uint32
	cellH uint32

	started bool
	stopped bool
	last    time.Time

	surfW uint32
	surfH uint32

	mu    sync.Mutex
	key   KeyState
	mouse MouseState
}

func newDriver(app App, surface frameSurface, cellW, cellH uint32) *driver {
	return &driver{
		app:     app,
		surface: surface,
		img:     grid.New(0, 0),
		cellW:   cellW,
		cellH:   cellH,
	}
}

// keyPress records a key press; the snapshot is consumed by the next
// tick.
func (d *driver) keyPress(code uint32) {
	d.mu.Lock()
	d.key = KeyState{Code: code, Pressed: true}
	d.mu.Unlock()
}

// snapshot returns the pending input state and clears the key-press
// latch. Mouse position and buttons persist between ticks.
func (d *driver) snapshot() (KeyState, MouseState) {
	d.mu.Lock()
	key, mouse := d.key, d.mouse
	d.key = KeyState{}
	d.mu.Unlock()
	return key, mouse
}

// step runs one loop iteration against the current surface size in
// pixels. It returns false once the application has stopped; the
// returned error is fatal and ends the loop.
func (d *driver) step(now time.Time, surfW, surfH uint32) (bool, error) {
	if d.stopped {
		return false, nil
	}
	if !d.started {
		d.app.Start()
		d.started = true
		d.last = now
	}
	if err := d.fitSurface(surfW, surfH); err != nil {
		return false, err
	}

	dt := now.Sub(d.last)
	d.last = now
	key, mouse := d.snapshot()

	res := d.app.Tick(SimInput{
		DT:     dt,
		Width:  int(d.img.Width),
		Height: int(d.img.Height),
		Key:    key,
		Mouse:  mouse,
	})
	if res == Stop {
		d.stopped = true
		return false, nil
	}

	d.app.Present(PresentInput{Image: d.img})
	return true, d.submit()
}

// fitSurface tracks window size changes: the render surface is rebuilt
// at the new pixel size and the grid reallocated at the new cell
// dimensions. Fractional cells at the edges are dropped.
func (d *driver) fitSurface(surfW, surfH uint32) error {
	if surfW == d.surfW && surfH == d.surfH {
		return nil
	}
	if err := d.surface.Resize(surfW, surfH); err != nil {
		return err
	}
	d.surfW, d.surfH = surfW, surfH
	d.img.Resize(surfW/d.cellW, surfH/d.cellH)
	return nil
}

// submit sends the frame. A lost surface is rebuilt at the current
// size and the frame retried once; out-of-memory and repeated loss are
// fatal.
func (d *driver) submit() error {
	err := d.surface.Frame(d.img)
	if errors.Is(err, render.ErrSurfaceLost) {
		if err = d.surface.Resize(d.surfW, d.surfH); err != nil {
			return err
		}
		err = d.surface.Frame(d.img)
	}
	return err
}
