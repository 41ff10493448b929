// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "sync"

// Position box with separator, top left.  Bit 7 is the leftmost
// module.
var posBox = [8]byte{0xfe, 0x82, 0xba, 0xba, 0xba, 0x82, 0xfe, 0x00}

// Alignment box, 5 bits wide.
var alignBox = [5]byte{0x1f, 0x11, 0x15, 0x11, 0x1f}

// Pre-built templates.  A template is created the first time a
// version is used, is never modified afterwards and is copied by
// NewMatrix.
var plans [MaxVersion + 1]struct {
	once sync.Once
	m    *Matrix
}

// NewMatrix returns a Matrix for a QR code of version v with the
// function patterns and version information set, the format area
// reserved and the data area unfilled.
func NewMatrix(v Version) (*Matrix, error) {
	if !v.Valid() {
		return nil, ErrVersion
	}
	p := &plans[v]
	p.once.Do(func() { p.m = vplan(v) })
	return p.m.Clone(), nil
}

// vplan creates the template for the given version.
func vplan(v Version) *Matrix {
	siz := v.Size()
	m := newMatrix(siz)

	// Position boxes: top left, top right, bottom left.
	var tr, bl [8]byte
	for i, r := range posBox {
		tr[i] = r >> 1
		bl[7-i] = r
	}
	m.box(0, 0, 8, posBox[:])
	m.box(siz-8, 0, 8, tr[:])
	m.box(0, siz-8, 8, bl[:])

	// One lonely black pixel.
	m.fix(8, siz-8, 1)

	// Timing markers.
	for i := 8; i < siz-8; i++ {
		m.fix(i, 6, byte(^i&1))
		m.fix(6, i, byte(^i&1))
	}

	// Alignment boxes, except under position boxes.  Those crossing
	// timing markers agree with them.
	a := v.AlignCenters()
	last := len(a) - 1
	for i, y := range a {
		for j, x := range a {
			if i == 0 && (j == 0 || j == last) || i == last && j == 0 {
				continue
			}
			m.box(x-2, y-2, 5, alignBox[:])
		}
	}

	// Format area, written by SetFormat.
	m.setFormat(0)

	// Version pattern: 3x6 modules at (siz-11, 0) and 6x3 at (0, siz-11).
	if vb := VersionBits(v); vb != 0 {
		for i := 0; i < 18; i++ {
			b := byte(vb >> i & 1)
			m.fix(siz-11+i%3, i/3, b)
			m.fix(i/3, siz-11+i%3, b)
		}
	}
	return m
}

// box sets fixed modules from rows of w bits at upper left x, y.
// The most significant bit is the leftmost module.
func (m *Matrix) box(x, y, w int, rows []byte) {
	for j, r := range rows {
		for i := 0; i < w; i++ {
			m.fix(x+i, y+j, r>>(w-1-i)&1)
		}
	}
}

// SetFormat writes the format information for level l and mask
// pattern mask.
func (m *Matrix) SetFormat(l Level, mask Mask) {
	m.setFormat(FormatBits(l, mask))
}

// formatPos returns the positions of format bit i in both copies:
// down column 8 and leftwards along row 8 around the top left
// position box, and leftwards along row 8 under the top right box
// then down column 8 by the bottom left one.
func formatPos(siz, i int) (x0, y0, x1, y1 int) {
	switch {
	case i < 6:
		x0, y0 = 8, i
	case i < 8:
		x0, y0 = 8, i+1 // skip timing
	case i == 8:
		x0, y0 = 7, 8
	default:
		x0, y0 = 14-i, 8
	}
	if i < 8 {
		x1, y1 = siz-1-i, 8
	} else {
		x1, y1 = 8, siz-15+i
	}
	return
}

// setFormat writes the 15 format bits fb, least significant first.
func (m *Matrix) setFormat(fb int) {
	for i := 0; i < 15; i++ {
		b := byte(fb >> i & 1)
		x0, y0, x1, y1 := formatPos(m.Size, i)
		m.fix(x0, y0, b)
		m.fix(x1, y1, b)
	}
}

// Format returns both copies of the format information stored in m.
func (m *Matrix) Format() (int, int) {
	var a, b int
	for i := 0; i < 15; i++ {
		x0, y0, x1, y1 := formatPos(m.Size, i)
		if m.Black(x0, y0) {
			a |= 1 << i
		}
		if m.Black(x1, y1) {
			b |= 1 << i
		}
	}
	return a, b
}
