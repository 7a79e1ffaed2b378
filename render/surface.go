// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/rogue/grid"
)

// PresentMode is the presentation timing of the swap-structure. The
// windowing layer owns presentation and always runs FIFO (presents in
// submission order at the display rate, no tearing, bounded latency),
// so FIFO is the only mode.
type PresentMode uint8

// PresentModeFifo is the sole presentation mode.
const PresentModeFifo PresentMode = 0

// String returns the string representation of PresentMode.
func (m PresentMode) String() string {
	if m == PresentModeFifo {
		return "Fifo"
	}
	return fmt.Sprintf("Unknown(%d)", uint8(m))
}

// Descriptor is the swap-structure configuration: the negotiated
// texture format, the output dimensions in pixels, and the present
// mode. Resize mutates the stored copy and reapplies it wholesale; the
// swap-structure itself is never patched in place.
type Descriptor struct {
	Format      gputypes.TextureFormat
	Width       uint32
	Height      uint32
	PresentMode PresentMode
}

// Backend performs the GPU work behind a Surface. Implementations hold
// the device, queue, and presentable-image resources.
//
// Configure (re)builds the swap-structure for the given descriptor,
// destroying any previous one. RenderFrame acquires the next
// presentable image, encodes and submits one frame from the grid
// planes, and reports the outcome: nil, ErrSurfaceLost, ErrOutOfMemory,
// or any backend-specific error (treated as a dropped frame). Destroy
// releases everything; the Backend must not be used afterwards.
type Backend interface {
	Configure(Descriptor) error
	RenderFrame(*grid.Image) error
	Destroy()
}

// State is the lifecycle state of a Surface.
type State uint8

const (
	// StateUninitialized means New has not completed.
	StateUninitialized State = iota

	// StateReady means frames can be submitted.
	StateReady

	// StateDegraded means the presentable target was lost; Resize at
	// the current window size restores Ready.
	StateDegraded

	// StateTerminated means the surface is closed or hit a fatal
	// error.
	StateTerminated
)

// String returns the string representation of State.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateReady:
		return "Ready"
	case StateDegraded:
		return "Degraded"
	case StateTerminated:
		return "Terminated"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(s))
	}
}

// Surface owns the render-surface lifecycle around a Backend.
//
// Surface is not safe for concurrent use; a single goroutine drives
// construction, resize, frame submission, and close, in that order.
type Surface struct {
	backend Backend
	desc    Descriptor
	state   State

	frames  uint64
	dropped uint64
}

// New builds a Surface by applying the initial descriptor to the
// backend. Construction failures (adapter, device, surface format) are
// returned as-is and leave no partial state running: the backend is
// destroyed before returning.
func New(b Backend, desc Descriptor) (*Surface, error) {
	if desc.Format == gputypes.TextureFormatUndefined {
		b.Destroy()
		return nil, ErrNoSurfaceFormat
	}
	if err := b.Configure(desc); err != nil {
		b.Destroy()
		return nil, fmt.Errorf("render: configure swap-structure: %w", err)
	}
	slogger().Info("render: surface ready",
		"format", desc.Format, "width", desc.Width, "height", desc.Height,
		"present_mode", desc.PresentMode.String())
	return &Surface{backend: b, desc: desc, state: StateReady}, nil
}

// State returns the current lifecycle state.
func (s *Surface) State() State { return s.state }

// Descriptor returns a copy of the current swap-structure descriptor.
func (s *Surface) Descriptor() Descriptor { return s.desc }

// Resize overwrites the stored dimensions and rebuilds the
// swap-structure against the same device and output surface. It is
// also the recovery path from the Degraded state. A 0x0 size is legal
// (minimized window): the rebuild is recorded and frames are skipped
// until a non-empty resize arrives.
func (s *Surface) Resize(width, height uint32) error {
	if s.state == StateTerminated {
		return ErrSurfaceClosed
	}
	s.desc.Width = width
	s.desc.Height = height
	if err := s.backend.Configure(s.desc); err != nil {
		return fmt.Errorf("render: rebuild swap-structure: %w", err)
	}
	if s.state == StateDegraded {
		slogger().Info("render: surface recovered", "width", width, "height", height)
	}
	s.state = StateReady
	return nil
}

// Frame submits one frame built from the grid planes.
//
// Outcomes:
//   - nil: submitted, surface stays Ready.
//   - ErrSurfaceLost: surface moves to Degraded. The caller must
//     Resize at the window's current size and retry.
//   - ErrOutOfMemory: fatal, surface is Terminated.
//   - anything else: logged at Warn, frame dropped, surface stays
//     Ready, nil is returned.
//
// A 0x0 descriptor or an empty grid skips the frame without error.
func (s *Surface) Frame(img *grid.Image) error {
	switch s.state {
	case StateTerminated:
		return ErrSurfaceClosed
	case StateDegraded:
		return ErrSurfaceLost
	}
	if s.desc.Width == 0 || s.desc.Height == 0 {
		return nil
	}

	err := s.backend.RenderFrame(img)
	switch {
	case err == nil:
		s.frames++
		return nil
	case errors.Is(err, ErrSurfaceLost):
		s.state = StateDegraded
		slogger().Warn("render: surface lost, rebuild required", "frame", s.frames)
		return ErrSurfaceLost
	case errors.Is(err, ErrOutOfMemory):
		s.state = StateTerminated
		s.backend.Destroy()
		slogger().Error("render: out of device memory", "frame", s.frames)
		return ErrOutOfMemory
	default:
		s.dropped++
		slogger().Warn("render: frame dropped", "frame", s.frames, "error", err)
		return nil
	}
}

// FrameCount returns the number of successfully submitted frames.
func (s *Surface) FrameCount() uint64 { return s.frames }

// DroppedCount returns the number of frames dropped on non-fatal
// submission errors.
func (s *Surface) DroppedCount() uint64 { return s.dropped }

// Close terminates the surface and destroys the backend. Idempotent.
func (s *Surface) Close() {
	if s.state == StateTerminated {
		return
	}
	s.state = StateTerminated
	s.backend.Destroy()
}
