// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package font

import (
	"errors"
	"fmt"
	"image"
	"io"

	_ "image/png"

	_ "golang.org/x/image/bmp"
)

var (
	// ErrDecode is returned when the atlas image cannot be decoded.
	ErrDecode = errors.New("font: decode atlas image")

	// ErrBadGeometry is returned when the atlas image does not divide
	// into a 16x16 glyph grid.
	ErrBadGeometry = errors.New("font: atlas not divisible into 16x16 glyphs")
)

// glyphsPerRow is the atlas layout: 256 glyphs, 16 per row.
const glyphsPerRow = 16

// Atlas is a decoded font atlas: 256 glyphs in a 16x16 grid, stored
// as tightly packed RGBA pixels ready for texture upload.
type Atlas struct {
	// Width and Height are the full image size in pixels.
	Width  uint32
	Height uint32

	// CellWidth and CellHeight are the per-glyph size in pixels.
	CellWidth  uint32
	CellHeight uint32

	// Pixels is the RGBA image data, row-major, 4 bytes per pixel.
	Pixels []byte
}

// Load decodes a font atlas from r. PNG and BMP are supported. The
// image dimensions must be multiples of 16 in both axes.
func Load(r io.Reader) (*Atlas, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return fromImage(img)
}

func fromImage(img image.Image) (*Atlas, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 || w%glyphsPerRow != 0 || h%glyphsPerRow != 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadGeometry, w, h)
	}

	a := &Atlas{
		Width:      uint32(w),
		Height:     uint32(h),
		CellWidth:  uint32(w / glyphsPerRow),
		CellHeight: uint32(h / glyphsPerRow),
		Pixels:     make([]byte, w*h*4),
	}
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, al := img.At(x, y).RGBA()
			a.Pixels[i+0] = byte(r >> 8)
			a.Pixels[i+1] = byte(g >> 8)
			a.Pixels[i+2] = byte(bl >> 8)
			a.Pixels[i+3] = byte(al >> 8)
			i += 4
		}
	}
	return a, nil
}

// GlyphRect returns the pixel rectangle of the glyph for code, as
// origin and size within the atlas image.
func (a *Atlas) GlyphRect(code byte) (x, y, w, h uint32) {
	col := uint32(code) % glyphsPerRow
	row := uint32(code) / glyphsPerRow
	return col * a.CellWidth, row * a.CellHeight, a.CellWidth, a.CellHeight
}

// Default returns the built-in 8x16 VGA-style atlas. The returned
// Atlas is freshly allocated each call and safe to mutate.
func Default() *Atlas {
	const cw, ch = 8, 16
	a := &Atlas{
		Width:      glyphsPerRow * cw,
		Height:     glyphsPerRow * ch,
		CellWidth:  cw,
		CellHeight: ch,
		Pixels:     make([]byte, glyphsPerRow*cw*glyphsPerRow*ch*4),
	}
	stride := int(a.Width) * 4
	for code := 0; code < 256; code++ {
		gx := (code % glyphsPerRow) * cw
		gy := (code / glyphsPerRow) * ch
		for line := 0; line < ch; line++ {
			bits := glyphRow(code, line)
			base := (gy+line)*stride + gx*4
			for px := 0; px < cw; px++ {
				if bits&(0x80>>px) == 0 {
					continue
				}
				o := base + px*4
				a.Pixels[o+0] = 0xff
				a.Pixels[o+1] = 0xff
				a.Pixels[o+2] = 0xff
				a.Pixels[o+3] = 0xff
			}
		}
	}
	return a
}

// glyphRow returns one scanline bitmap of the built-in font. Codes
// past the stored table render as a partial block.
func glyphRow(code, line int) byte {
	if code*16 < len(vgaGlyphs) {
		return vgaGlyphs[code*16+line]
	}
	if line >= 2 && line < 14 {
		return 0x7e
	}
	return 0
}
