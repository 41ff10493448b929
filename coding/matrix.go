// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A Role tells what a module of a Matrix holds.
type Role byte

// Module roles.
const (
	Unfilled Role = iota // not set yet
	Fixed                // function pattern, format or version information
	Data                 // data, check or remainder bit
)

// A Matrix is a square grid of modules.
type Matrix struct {
	Size int    // number of modules on a side
	mod  []byte // 1 is black, 0 is white
	role []Role
}

func newMatrix(siz int) *Matrix {
	return &Matrix{
		Size: siz,
		mod:  make([]byte, siz*siz),
		role: make([]Role, siz*siz),
	}
}

// Clone returns a copy of m.
func (m *Matrix) Clone() *Matrix {
	c := &Matrix{Size: m.Size}
	c.mod = append([]byte(nil), m.mod...)
	c.role = append([]Role(nil), m.role...)
	return c
}

// Black reports whether the module at column x, row y is black.
// Modules outside the matrix are white.
func (m *Matrix) Black(x, y int) bool {
	return 0 <= x && x < m.Size && 0 <= y && y < m.Size &&
		m.mod[y*m.Size+x] != 0
}

// Role returns the role of the module at column x, row y.
func (m *Matrix) Role(x, y int) Role {
	return m.role[y*m.Size+x]
}

// Rows returns the modules of m, row by row, true for black.
func (m *Matrix) Rows() [][]bool {
	rows := make([][]bool, m.Size)
	for y := range rows {
		row := make([]bool, m.Size)
		for x, v := range m.mod[y*m.Size : (y+1)*m.Size] {
			row[x] = v != 0
		}
		rows[y] = row
	}
	return rows
}

func (m *Matrix) fix(x, y int, b byte) {
	i := y*m.Size + x
	m.mod[i] = b
	m.role[i] = Fixed
}

// Serialise writes bits from s to the unfilled modules of m in zigzag
// scan order: two columns at a time from the right, upwards first and
// alternating direction, right module before left.  Modules left over
// when s runs out are white.
func (m *Matrix) Serialise(s BitStream) {
	siz := m.Size
	up := true
	for x := siz - 1; x > 0; x -= 2 {
		if x == 6 { // vertical timing strip
			x--
		}
		for n := 0; n < siz; n++ {
			y := n
			if up {
				y = siz - 1 - n
			}
			for _, xx := range [2]int{x, x - 1} {
				if i := y*siz + xx; m.role[i] == Unfilled {
					m.mod[i] = s.Next()
					m.role[i] = Data
				}
			}
		}
		up = !up
	}
}

// ApplyMask inverts the data modules of m selected by mask.
func (m *Matrix) ApplyMask(mask Mask) {
	siz := m.Size
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; x++ {
			if i := y*siz + x; m.role[i] == Data && mask.Invert(y, x) {
				m.mod[i] ^= 1
			}
		}
	}
}

// A Symbol is a QR code along with the data it was built from.
type Symbol struct {
	Params
	Mask      Mask
	Units     []byte // encoded characters or octets
	Data      []byte // data codewords
	Codewords []byte // data and check codewords, interleaved
	*Matrix
}

// Encode encodes units in a QR code described by p, masked with mask.
// If mask is Auto, every mask is tried and the one giving the lowest
// penalty is used, the lowest numbered one on ties.
func Encode(units []byte, p Params, mask Mask) (*Symbol, error) {
	if mask != Auto && !mask.Valid() {
		return nil, ErrMask
	}
	if !p.Mode.Valid() {
		return nil, ModeError(p.Mode)
	}
	if len(units) > p.MaxChars() {
		return nil, ErrCapacity
	}
	m, err := NewMatrix(p.Version)
	if err != nil {
		return nil, err
	}
	s := &Symbol{Params: p, Units: units}
	s.Data = Codewords(units, p)
	s.Codewords = Interleave(s.Data, p)
	m.Serialise(NewBitStream(s.Codewords))
	if mask != Auto {
		m.ApplyMask(mask)
		m.SetFormat(p.Level, mask)
		s.Mask, s.Matrix = mask, m
		return s, nil
	}
	best := -1
	for k := Mask(0); k < NumMasks; k++ {
		c := m.Clone()
		c.ApplyMask(k)
		c.SetFormat(p.Level, k)
		if pen := c.Penalty(); best < 0 || pen < best {
			best, s.Mask, s.Matrix = pen, k, c
		}
	}
	return s, nil
}
