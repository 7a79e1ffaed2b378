// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "errors"

// Package errors for the render surface.
//
// The first three are construction-time failures, surfaced to the
// caller of the top-level entry point before any loop runs. The
// remainder classify per-frame outcomes.
var (
	// ErrNoAdapter is returned when no graphics adapter compatible
	// with the output surface exists.
	ErrNoAdapter = errors.New("render: no compatible graphics adapter found")

	// ErrDeviceRequest is returned when the driver rejects logical
	// device creation on the selected adapter.
	ErrDeviceRequest = errors.New("render: device request rejected")

	// ErrNoSurfaceFormat is returned when the adapter reports no
	// texture format compatible with the swap-structure.
	ErrNoSurfaceFormat = errors.New("render: no compatible surface format")

	// ErrSurfaceLost signals that the presentable-image target is
	// stale. Recoverable: rebuild the swap-structure at the current
	// window size via Resize, then retry.
	ErrSurfaceLost = errors.New("render: surface lost")

	// ErrOutOfMemory signals device memory exhaustion during frame
	// submission. Fatal: the loop driver must terminate, not retry.
	ErrOutOfMemory = errors.New("render: out of device memory")

	// ErrSurfaceClosed is returned when operating on a terminated
	// surface.
	ErrSurfaceClosed = errors.New("render: surface is closed")
)
