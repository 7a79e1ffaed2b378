// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render owns the render-surface lifecycle: the GPU device and
// swap-structure configuration, the resize protocol, and per-frame
// submission of the cell grid to the display.
//
// The package is backend-agnostic. A Backend implementation performs
// the actual GPU work; the Surface type wraps it with the lifecycle
// state machine:
//
//	Uninitialized -> Ready -> {Ready, Degraded} -> Terminated
//
// Frame submission has three outcomes. Success keeps the surface Ready.
// A lost presentable target (ErrSurfaceLost) moves the surface to
// Degraded; the caller recovers by calling Resize at the window's
// current size, which rebuilds the swap-structure and restores Ready.
// An out-of-memory report (ErrOutOfMemory) is fatal and terminates the
// surface. Any other frame error is logged, the frame is dropped, and
// the surface stays Ready.
//
// Resize is destroy-and-recreate: the stored descriptor is overwritten
// with the new dimensions and the swap-structure is rebuilt from
// scratch against the same device and output surface. It is the only
// supported way to change output dimensions.
package render
