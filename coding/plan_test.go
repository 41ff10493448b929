// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rawModules returns the number of data modules of version v,
// remainder bits included.
func rawModules(v Version) int {
	n := (16*int(v)+128)*int(v) + 64
	if v >= 2 {
		a := int(v)/7 + 2
		n -= 25*a*a - 10*a - 55
		if v >= 7 {
			n -= 36
		}
	}
	return n
}

func TestNewMatrixErrors(t *testing.T) {
	for _, v := range []Version{Auto, 0, 41} {
		m, err := NewMatrix(v)
		assert.Nil(t, m)
		assert.ErrorIs(t, err, ErrVersion)
	}
}

func TestNewMatrix(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		m, err := NewMatrix(v)
		require.NoError(t, err)
		siz := v.Size()
		require.Equal(t, siz, m.Size)

		unfilled := 0
		for y := 0; y < siz; y++ {
			for x := 0; x < siz; x++ {
				switch m.Role(x, y) {
				case Unfilled:
					unfilled++
					assert.False(t, m.Black(x, y), "%v (%d, %d)", v, x, y)
				case Fixed:
				default:
					t.Fatalf("%v (%d, %d): role %d", v, x, y, m.Role(x, y))
				}
			}
		}
		assert.Equal(t, rawModules(v), unfilled, "version %v", v)
		assert.Equal(t, vtab[v].bytes, unfilled>>3, "version %v", v)

		// position boxes and separators
		for _, c := range [][2]int{{0, 0}, {siz - 7, 0}, {0, siz - 7}} {
			for y := -1; y <= 7; y++ {
				for x := -1; x <= 7; x++ {
					xx, yy := c[0]+x, c[1]+y
					if xx < 0 || yy < 0 || xx >= siz || yy >= siz {
						continue
					}
					ring := max(abs(x-3), abs(y-3))
					assert.Equal(t, ring != 2 && ring != 4, m.Black(xx, yy),
						"%v (%d, %d)", v, xx, yy)
					assert.Equal(t, Fixed, m.Role(xx, yy))
				}
			}
		}

		// timing
		for i := 8; i < siz-8; i++ {
			assert.Equal(t, i%2 == 0, m.Black(i, 6), "%v (%d, 6)", v, i)
			assert.Equal(t, i%2 == 0, m.Black(6, i), "%v (6, %d)", v, i)
		}

		assert.True(t, m.Black(8, siz-8), "version %v", v)
		assert.Equal(t, Fixed, m.Role(8, siz-8))

		// alignment box centers are black, surrounded by white
		a := v.AlignCenters()
		for _, y := range a {
			for _, x := range a {
				if x < 9 && (y < 9 || y > siz-9) || x > siz-9 && y < 9 {
					continue
				}
				assert.True(t, m.Black(x, y), "%v (%d, %d)", v, x, y)
				assert.False(t, m.Black(x+1, y), "%v (%d, %d)", v, x, y)
				assert.True(t, m.Black(x+2, y+1), "%v (%d, %d)", v, x, y)
			}
		}

		a0, b0 := m.Format()
		assert.Zero(t, a0)
		assert.Zero(t, b0)

		want := VersionBits(v)
		var got0, got1 int
		for i := 0; i < 18; i++ {
			if m.Black(siz-11+i%3, i/3) {
				got0 |= 1 << i
			}
			if m.Black(i/3, siz-11+i%3) {
				got1 |= 1 << i
			}
		}
		assert.Equal(t, want, got0, "version %v", v)
		assert.Equal(t, want, got1, "version %v", v)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestSetFormat(t *testing.T) {
	m, err := NewMatrix(2)
	require.NoError(t, err)
	for l := M; l <= Q; l++ {
		for k := Mask(0); k < NumMasks; k++ {
			m.SetFormat(l, k)
			a, b := m.Format()
			assert.Equal(t, FormatBits(l, k), a)
			assert.Equal(t, FormatBits(l, k), b)
		}
	}
	// top left copy, most significant bit last
	m.SetFormat(L, 4) // 0x662f = 110 0110 0010 1111
	assert.True(t, m.Black(8, 0))
	assert.True(t, m.Black(8, 5))
	assert.False(t, m.Black(8, 7))
	assert.True(t, m.Black(0, 8))
	assert.True(t, m.Black(1, 8))
	assert.False(t, m.Black(2, 8))
	assert.True(t, m.Black(8, m.Size-8))
}

func TestNewMatrixClones(t *testing.T) {
	m0, err := NewMatrix(3)
	require.NoError(t, err)
	m0.SetFormat(H, 7)
	m1, err := NewMatrix(3)
	require.NoError(t, err)
	a, b := m1.Format()
	assert.Zero(t, a)
	assert.Zero(t, b)
	c := m0.Clone()
	c.SetFormat(L, 0)
	a, _ = m0.Format()
	assert.Equal(t, FormatBits(H, 7), a)
}
