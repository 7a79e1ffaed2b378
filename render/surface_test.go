// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/rogue/grid"
)

// fakeBackend scripts RenderFrame outcomes and records calls.
type fakeBackend struct {
	configures []Descriptor
	confErr    error

	frameErrs []error
	frameIdx  int
	frames    int

	destroyed int
}

var _ Backend = (*fakeBackend)(nil)

func (f *fakeBackend) Configure(d Descriptor) error {
	f.configures = append(f.configures, d)
	return f.confErr
}

func (f *fakeBackend) RenderFrame(_ *grid.Image) error {
	f.frames++
	if f.frameIdx < len(f.frameErrs) {
		err := f.frameErrs[f.frameIdx]
		f.frameIdx++
		return err
	}
	return nil
}

func (f *fakeBackend) Destroy() { f.destroyed++ }

func testDesc() Descriptor {
	return Descriptor{
		Format:      gputypes.TextureFormatBGRA8Unorm,
		Width:       800,
		Height:      600,
		PresentMode: PresentModeFifo,
	}
}

func TestNew(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fb := &fakeBackend{}
		s, err := New(fb, testDesc())
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		if got := s.State(); got != StateReady {
			t.Errorf("State() = %v, want %v", got, StateReady)
		}
		if len(fb.configures) != 1 {
			t.Errorf("Configure calls = %d, want 1", len(fb.configures))
		}
	})

	t.Run("undefined format", func(t *testing.T) {
		fb := &fakeBackend{}
		_, err := New(fb, Descriptor{})
		if !errors.Is(err, ErrNoSurfaceFormat) {
			t.Errorf("New() error = %v, want ErrNoSurfaceFormat", err)
		}
		if fb.destroyed != 1 {
			t.Errorf("destroyed = %d, want 1", fb.destroyed)
		}
	})

	t.Run("configure failure", func(t *testing.T) {
		fb := &fakeBackend{confErr: ErrDeviceRequest}
		_, err := New(fb, testDesc())
		if !errors.Is(err, ErrDeviceRequest) {
			t.Errorf("New() error = %v, want ErrDeviceRequest", err)
		}
		if fb.destroyed != 1 {
			t.Errorf("destroyed = %d, want 1", fb.destroyed)
		}
	})
}

func TestFrameOutcomes(t *testing.T) {
	img := grid.New(8, 8)

	tests := []struct {
		name      string
		frameErr  error
		wantErr   error
		wantState State
		wantDrop  uint64
	}{
		{"success", nil, nil, StateReady, 0},
		{"surface lost", ErrSurfaceLost, ErrSurfaceLost, StateDegraded, 0},
		{"out of memory", ErrOutOfMemory, ErrOutOfMemory, StateTerminated, 0},
		{"transient dropped", errors.New("timeout acquiring image"), nil, StateReady, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := &fakeBackend{frameErrs: []error{tt.frameErr}}
			s, err := New(fb, testDesc())
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			err = s.Frame(img)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Frame() error = %v, want %v", err, tt.wantErr)
			}
			if got := s.State(); got != tt.wantState {
				t.Errorf("State() = %v, want %v", got, tt.wantState)
			}
			if got := s.DroppedCount(); got != tt.wantDrop {
				t.Errorf("DroppedCount() = %d, want %d", got, tt.wantDrop)
			}
		})
	}
}

func TestSurfaceLostRecovery(t *testing.T) {
	img := grid.New(8, 8)
	fb := &fakeBackend{frameErrs: []error{ErrSurfaceLost, nil}}
	s, err := New(fb, testDesc())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := s.Frame(img); !errors.Is(err, ErrSurfaceLost) {
		t.Fatalf("Frame() error = %v, want ErrSurfaceLost", err)
	}
	if got := s.State(); got != StateDegraded {
		t.Fatalf("State() = %v, want %v", got, StateDegraded)
	}

	// While degraded, frames are refused until the rebuild.
	if err := s.Frame(img); !errors.Is(err, ErrSurfaceLost) {
		t.Fatalf("Frame() while degraded error = %v, want ErrSurfaceLost", err)
	}

	if err := s.Resize(800, 600); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if got := s.State(); got != StateReady {
		t.Fatalf("State() after Resize = %v, want %v", got, StateReady)
	}
	if err := s.Frame(img); err != nil {
		t.Fatalf("Frame() after recovery error = %v", err)
	}
	if got := s.FrameCount(); got != 1 {
		t.Errorf("FrameCount() = %d, want 1", got)
	}
}

func TestOutOfMemoryIsFatal(t *testing.T) {
	img := grid.New(8, 8)
	fb := &fakeBackend{frameErrs: []error{ErrOutOfMemory}}
	s, err := New(fb, testDesc())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := s.Frame(img); !errors.Is(err, ErrOutOfMemory) {
		t.Fatalf("Frame() error = %v, want ErrOutOfMemory", err)
	}
	if fb.destroyed != 1 {
		t.Errorf("destroyed = %d, want 1", fb.destroyed)
	}
	if err := s.Resize(800, 600); !errors.Is(err, ErrSurfaceClosed) {
		t.Errorf("Resize() after fatal error = %v, want ErrSurfaceClosed", err)
	}
	if err := s.Frame(img); !errors.Is(err, ErrSurfaceClosed) {
		t.Errorf("Frame() after fatal error = %v, want ErrSurfaceClosed", err)
	}
}

func TestResizeMinimizedAndBack(t *testing.T) {
	img := grid.New(8, 8)
	fb := &fakeBackend{}
	s, err := New(fb, testDesc())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := s.Resize(0, 0); err != nil {
		t.Fatalf("Resize(0, 0) error = %v", err)
	}
	if err := s.Frame(img); err != nil {
		t.Fatalf("Frame() at 0x0 error = %v", err)
	}
	if fb.frames != 0 {
		t.Errorf("backend frames at 0x0 = %d, want 0", fb.frames)
	}

	if err := s.Resize(800, 600); err != nil {
		t.Fatalf("Resize(800, 600) error = %v", err)
	}
	if err := s.Frame(img); err != nil {
		t.Fatalf("Frame() after restore error = %v", err)
	}
	if fb.frames != 1 {
		t.Errorf("backend frames after restore = %d, want 1", fb.frames)
	}
	if got := s.Descriptor(); got.Width != 800 || got.Height != 600 {
		t.Errorf("Descriptor() = %dx%d, want 800x600", got.Width, got.Height)
	}
}

func TestCloseIdempotent(t *testing.T) {
	fb := &fakeBackend{}
	s, err := New(fb, testDesc())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	s.Close()
	s.Close()
	if fb.destroyed != 1 {
		t.Errorf("destroyed = %d, want 1", fb.destroyed)
	}
	if got := s.State(); got != StateTerminated {
		t.Errorf("State() = %v, want %v", got, StateTerminated)
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateUninitialized, "Uninitialized"},
		{StateReady, "Ready"},
		{StateDegraded, "Degraded"},
		{StateTerminated, "Terminated"},
		{State(42), "Unknown(42)"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", uint8(tt.state), got, tt.want)
		}
	}
}
