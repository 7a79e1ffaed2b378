// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package grid

// Clear fills the entire grid with the space glyph in the given ink and
// paper colours.
func (img *Image) Clear(ink, paper Color) {
	img.DrawRectFilled(Pt(0, 0), img.Width, img.Height, NewCell(' ', ink, paper))
}

// DrawChar writes a single cell. Off-grid points are ignored.
func (img *Image) DrawChar(p Point, c Cell) {
	if p.X < 0 || p.Y < 0 {
		return
	}
	i, ok := img.CoordsToIndex(uint32(p.X), uint32(p.Y))
	if !ok {
		return
	}
	img.Fore[i] = uint32(c.Ink)
	img.Back[i] = uint32(c.Paper)
	img.Text[i] = uint32(c.Char)
}

// DrawString writes a horizontal run of cells starting at p, clipped to
// the remaining width of the row. Characters beyond the clipped width
// are dropped; there is no wrapping.
func (img *Image) DrawString(p Point, text string, ink, paper Color) {
	x, y, w, h := img.Clip(p, uint32(len(text)), 1)
	if w == 0 || h == 0 {
		return
	}
	i, ok := img.CoordsToIndex(x, y)
	if !ok {
		return
	}
	// The clip may have dropped a left-of-grid prefix of the text.
	skip := 0
	if p.X < 0 {
		skip = int(-p.X)
	}
	for j := 0; j < int(w); j++ {
		img.Fore[i+j] = uint32(ink)
		img.Back[i+j] = uint32(paper)
		img.Text[i+j] = uint32(text[skip+j])
	}
}

// DrawRect draws a one-cell-thick rectangle outline. Rectangles too
// small to hold an interior (width or height below 3) degenerate to a
// filled rectangle.
func (img *Image) DrawRect(p Point, width, height uint32, c Cell) {
	if width < 3 || height < 3 {
		img.DrawRectFilled(p, width, height, c)
		return
	}
	img.DrawRectFilled(p, width, 1, c)
	img.DrawRectFilled(Pt(p.X, p.Y+int32(height)-1), width, 1, c)
	img.DrawRectFilled(Pt(p.X, p.Y+1), 1, height-2, c)
	img.DrawRectFilled(Pt(p.X+int32(width)-1, p.Y+1), 1, height-2, c)
}

// DrawRectFilled fills every cell of the clipped rectangle with c.
// The clip is computed once; the fill is a flat row scan with no
// per-cell bounds checks.
func (img *Image) DrawRectFilled(p Point, width, height uint32, c Cell) {
	x, y, w, h := img.Clip(p, width, height)
	if w == 0 || h == 0 {
		return
	}
	i, ok := img.CoordsToIndex(x, y)
	if !ok {
		return
	}
	ink, paper, ch := uint32(c.Ink), uint32(c.Paper), uint32(c.Char)
	for row := uint32(0); row < h; row++ {
		for j := i; j < i+int(w); j++ {
			img.Fore[j] = ink
			img.Back[j] = paper
			img.Text[j] = ch
		}
		i += int(img.Width)
	}
}
