// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package grid

// Color is a packed 32-bit cell colour in 0xAABBGGRR byte order with
// full alpha. The layout matches the plane format consumed by the GPU
// shader, so colours are written into the planes without conversion.
type Color uint32

// NewColor packs an opaque colour from 8-bit RGB components.
func NewColor(r, g, b uint8) Color {
	return 0xff000000 | Color(b)<<16 | Color(g)<<8 | Color(r)
}

// The eight classic terminal colours.
var (
	Black   = NewColor(0, 0, 0)
	Red     = NewColor(255, 0, 0)
	Green   = NewColor(0, 255, 0)
	Yellow  = NewColor(255, 255, 0)
	Blue    = NewColor(0, 0, 255)
	Magenta = NewColor(255, 0, 255)
	Cyan    = NewColor(0, 255, 255)
	White   = NewColor(255, 255, 255)
)

// RGB returns the 8-bit components of the colour.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16)
}
