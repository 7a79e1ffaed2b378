// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package grid implements the character-cell compositor.
//
// An Image is a rectangular grid of cells. Each cell carries an ink
// (foreground) colour, a paper (background) colour, and a glyph code.
// The three values are stored in parallel planes indexed identically,
// which is the layout the GPU backend consumes directly: the planes can
// be uploaded as storage buffers without per-cell repacking.
//
// Drawing primitives clip against the grid bounds once per call. Shapes
// that fall partially or entirely outside the grid are clipped or
// dropped silently; out-of-bounds input is never an error.
//
// Images are not safe for concurrent use. The render driver exposes an
// Image to the host application once per present cycle; the host must
// not retain the reference past that call.
package grid
