// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package font loads bitmap font atlases for the cell compositor.
//
// An atlas is a single image holding 256 glyphs in a 16x16 layout,
// row-major by character code. Glyph 0x41 ('A') therefore sits at
// column 1, row 4. The cell size is derived from the image size, so
// any 16xN by 16xM image works. White pixels are glyph coverage and
// are tinted with the cell ink color at draw time; everything else is
// painted with the paper color.
//
// Load decodes PNG and BMP atlases. Default returns a built-in 8x16
// VGA-style atlas so an application never needs to ship an asset.
package font
