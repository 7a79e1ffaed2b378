// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package grid

// Point is a signed cell coordinate. Drawing primitives accept negative
// coordinates; the off-grid portion of a shape is clipped away.
type Point struct {
	X, Y int32
}

// Pt creates a Point from x, y coordinates.
func Pt(x, y int32) Point {
	return Point{X: x, Y: y}
}

// Cell is a single drawing unit: a glyph code with its ink (foreground)
// and paper (background) colours.
type Cell struct {
	Char  byte
	Ink   Color
	Paper Color
}

// NewCell creates a Cell from a glyph code and colour pair.
func NewCell(ch byte, ink, paper Color) Cell {
	return Cell{Char: ch, Ink: ink, Paper: paper}
}

// Image is a width x height grid of cells stored as three parallel
// planes. Fore and Back hold packed colours; Text holds the glyph code
// in the low byte of each 32-bit slot (upper bytes reserved). The cell
// at (x, y) lives at index y*Width+x in all three planes.
type Image struct {
	Width  uint32
	Height uint32
	Fore   []uint32
	Back   []uint32
	Text   []uint32
}

// New creates an Image with all cells zeroed. A zero extent in either
// dimension is legal and yields empty planes.
func New(width, height uint32) *Image {
	n := int(width) * int(height)
	return &Image{
		Width:  width,
		Height: height,
		Fore:   make([]uint32, n),
		Back:   make([]uint32, n),
		Text:   make([]uint32, n),
	}
}

// Resize reallocates the planes for the new dimensions. Existing cell
// contents are discarded. A no-op if the dimensions are unchanged.
func (img *Image) Resize(width, height uint32) {
	if img.Width == width && img.Height == height {
		return
	}
	n := int(width) * int(height)
	img.Width = width
	img.Height = height
	img.Fore = make([]uint32, n)
	img.Back = make([]uint32, n)
	img.Text = make([]uint32, n)
}

// CoordsToIndex returns the plane index for the cell at (x, y), or
// false when the coordinate lies outside the grid.
func (img *Image) CoordsToIndex(x, y uint32) (int, bool) {
	if x >= img.Width || y >= img.Height {
		return 0, false
	}
	return int(y*img.Width + x), true
}

// Clip reduces a possibly off-grid rectangle to the sub-rectangle that
// lies on the grid. A rectangle entirely off-grid clips to zero width
// or height; callers treat zero extent as a no-op.
func (img *Image) Clip(p Point, width, height uint32) (x, y, w, h uint32) {
	px, py := p.X, p.Y
	if px < 0 {
		cut := uint32(-px)
		if cut >= width {
			width = 0
		} else {
			width -= cut
		}
		px = 0
	}
	if py < 0 {
		cut := uint32(-py)
		if cut >= height {
			height = 0
		} else {
			height -= cut
		}
		py = 0
	}
	x, y = uint32(px), uint32(py)
	if x >= img.Width || y >= img.Height {
		return x, y, 0, 0
	}
	if width > img.Width-x {
		width = img.Width - x
	}
	if height > img.Height-y {
		height = img.Height - y
	}
	return x, y, width, height
}
