package rogue

import (
	"errors"
	"testing"
	"time"

	"github.com/gogpu/rogue/grid"
	"github.com/gogpu/rogue/render"
)

// scriptApp scripts Tick results and records the inputs it saw.
type scriptApp struct {
	results  []TickResult
	starts   int
	ticks    []SimInput
	presents int
	lastImg  *grid.Image
}

func (a *scriptApp) Start() { a.starts++ }

func (a *scriptApp) Tick(in SimInput) TickResult {
	a.ticks = append(a.ticks, in)
	if len(a.ticks) <= len(a.results) {
		return a.results[len(a.ticks)-1]
	}
	return Continue
}

func (a *scriptApp) Present(p PresentInput) {
	a.presents++
	a.lastImg = p.Image
}

// scriptSurface scripts Frame outcomes and records calls.
type scriptSurface struct {
	frameErrs []error
	frameIdx  int
	frames    int
	resizes   [][2]uint32
}

func (s *scriptSurface) Frame(_ *grid.Image) error {
	s.frames++
	if s.frameIdx < len(s.frameErrs) {
		err := s.frameErrs[s.frameIdx]
		s.frameIdx++
		return err
	}
	return nil
}

func (s *scriptSurface) Resize(w, h uint32) error {
	s.resizes = append(s.resizes, [2]uint32{w, h})
	return nil
}

func TestDriverCadence(t *testing.T) {
	app := &scriptApp{results: []TickResult{Continue, Continue, Stop}}
	surf := &scriptSurface{}
	d := newDriver(app, surf, 8, 16)

	now := time.Now()
	for i := 0; i < 3; i++ {
		cont, err := d.step(now.Add(time.Duration(i)*time.Millisecond), 800, 608)
		if err != nil {
			t.Fatalf("step %d error = %v", i, err)
		}
		wantCont := i < 2
		if cont != wantCont {
			t.Fatalf("step %d cont = %v, want %v", i, cont, wantCont)
		}
	}

	if app.starts != 1 {
		t.Errorf("Start calls = %d, want 1", app.starts)
	}
	if len(app.ticks) != 3 {
		t.Errorf("Tick calls = %d, want 3", len(app.ticks))
	}
	// One Present per Continue tick, none for the Stop tick.
	if app.presents != 2 {
		t.Errorf("Present calls = %d, want 2", app.presents)
	}
	if surf.frames != 2 {
		t.Errorf("Frame calls = %d, want 2", surf.frames)
	}

	// Stopped driver stays stopped.
	cont, err := d.step(now.Add(time.Second), 800, 608)
	if err != nil || cont {
		t.Errorf("step after stop = (%v, %v), want (false, nil)", cont, err)
	}
	if len(app.ticks) != 3 {
		t.Errorf("Tick called after stop")
	}
}

func TestDriverGridDimensions(t *testing.T) {
	app := &scriptApp{}
	surf := &scriptSurface{}
	d := newDriver(app, surf, 8, 16)

	if _, err := d.step(time.Now(), 800, 608); err != nil {
		t.Fatalf("step error = %v", err)
	}

	// 800/8 x 608/16 cells, fractional edge dropped.
	in := app.ticks[0]
	if in.Width != 100 || in.Height != 38 {
		t.Errorf("tick grid = %dx%d, want 100x38", in.Width, in.Height)
	}
	if app.lastImg.Width != 100 || app.lastImg.Height != 38 {
		t.Errorf("image = %dx%d, want 100x38", app.lastImg.Width, app.lastImg.Height)
	}
	if len(surf.resizes) != 1 || surf.resizes[0] != [2]uint32{800, 608} {
		t.Errorf("resizes = %v, want [[800 608]]", surf.resizes)
	}

	// Shrink, then verify the next tick sees the new cell dimensions.
	if _, err := d.step(time.Now(), 404, 304); err != nil {
		t.Fatalf("step error = %v", err)
	}
	in = app.ticks[1]
	if in.Width != 50 || in.Height != 19 {
		t.Errorf("tick grid after resize = %dx%d, want 50x19", in.Width, in.Height)
	}

	// Same size again: no extra surface rebuild.
	if _, err := d.step(time.Now(), 404, 304); err != nil {
		t.Fatalf("step error = %v", err)
	}
	if len(surf.resizes) != 2 {
		t.Errorf("resizes = %d, want 2", len(surf.resizes))
	}
}

func TestDriverSurfaceLostRetry(t *testing.T) {
	app := &scriptApp{}
	surf := &scriptSurface{frameErrs: []error{render.ErrSurfaceLost, nil}}
	d := newDriver(app, surf, 8, 16)

	cont, err := d.step(time.Now(), 800, 608)
	if err != nil {
		t.Fatalf("step error = %v", err)
	}
	if !cont {
		t.Fatal("step cont = false, want true")
	}
	// Initial fit + recovery rebuild.
	if len(surf.resizes) != 2 {
		t.Fatalf("resizes = %v, want fit + recovery", surf.resizes)
	}
	if surf.resizes[1] != [2]uint32{800, 608} {
		t.Errorf("recovery resize = %v, want [800 608]", surf.resizes[1])
	}
	if surf.frames != 2 {
		t.Errorf("Frame calls = %d, want 2 (retry)", surf.frames)
	}
}

func TestDriverFatalError(t *testing.T) {
	app := &scriptApp{}
	surf := &scriptSurface{frameErrs: []error{render.ErrOutOfMemory}}
	d := newDriver(app, surf, 8, 16)

	_, err := d.step(time.Now(), 800, 608)
	if !errors.Is(err, render.ErrOutOfMemory) {
		t.Fatalf("step error = %v, want ErrOutOfMemory", err)
	}
}

func TestDriverInputSnapshot(t *testing.T) {
	app := &scriptApp{}
	surf := &scriptSurface{}
	d := newDriver(app, surf, 8, 16)

	d.keyPress(42)
	if _, err := d.step(time.Now(), 800, 608); err != nil {
		t.Fatalf("step error = %v", err)
	}
	in := app.ticks[0]
	if !in.Key.Pressed || in.Key.Code != 42 {
		t.Errorf("tick key = %+v, want pressed code 42", in.Key)
	}

	// The latch clears after one tick.
	if _, err := d.step(time.Now(), 800, 608); err != nil {
		t.Fatalf("step error = %v", err)
	}
	if in := app.ticks[1]; in.Key.Pressed {
		t.Errorf("tick key = %+v, want released", in.Key)
	}
}

func TestDriverDT(t *testing.T) {
	app := &scriptApp{}
	surf := &scriptSurface{}
	d := newDriver(app, surf, 8, 16)

	base := time.Now()
	if _, err := d.step(base, 800, 608); err != nil {
		t.Fatalf("step error = %v", err)
	}
	if _, err := d.step(base.Add(16*time.Millisecond), 800, 608); err != nil {
		t.Fatalf("step error = %v", err)
	}

	// First tick runs at the loop start: zero elapsed.
	if dt := app.ticks[0].DT; dt != 0 {
		t.Errorf("first DT = %v, want 0", dt)
	}
	if dt := app.ticks[1].DT; dt != 16*time.Millisecond {
		t.Errorf("second DT = %v, want 16ms", dt)
	}
}

func TestTickResultString(t *testing.T) {
	tests := []struct {
		r    TickResult
		want string
	}{
		{Continue, "Continue"},
		{Stop, "Stop"},
		{TickResult(9), "Unknown(9)"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("TickResult(%d).String() = %q, want %q", uint8(tt.r), got, tt.want)
		}
	}
}
