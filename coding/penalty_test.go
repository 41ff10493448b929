// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func matrixOf(siz int, black func(x, y int) bool) *Matrix {
	m := newMatrix(siz)
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; x++ {
			if black(x, y) {
				m.mod[y*siz+x] = 1
			}
		}
	}
	return m
}

func finderRow(x0 int) func(x, y int) bool {
	return func(x, y int) bool {
		return y == 10 && x >= x0 && x < x0+7 && 0x5d>>(6-(x-x0))&1 != 0
	}
}

func TestPenalty(t *testing.T) {
	for _, tt := range []struct {
		name  string
		black func(x, y int) bool
		want  int
	}{
		// 42 runs of 21: 42*19, 400 boxes: 400*3, all white: 90
		{"white", func(x, y int) bool { return false }, 2088},
		// no runs or boxes, 220 of 441 black
		{"checkerboard", func(x, y int) bool { return (x+y)%2 != 0 }, -10},
		{"finder inside", finderRow(4), 2054},
		{"finder on edge", finderRow(0), 2064},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matrixOf(21, tt.black).Penalty())
		})
	}
}

func TestRuns(t *testing.T) {
	m := matrixOf(21, finderRow(4))
	assert.Equal(t, []int{4, 1, 1, 3, 1, 1, 10, 0}, m.runs(nil, 10, true))
	assert.Equal(t, []int{21, 0}, m.runs(nil, 9, true))
	assert.Equal(t, []int{10, 1, 10, 0}, m.runs(nil, 4, false))
	assert.Equal(t, []int{21, 0}, m.runs(nil, 5, false))
	m = matrixOf(21, finderRow(0))
	assert.Equal(t, []int{0, 1, 1, 3, 1, 1, 14, 0}, m.runs(nil, 10, true))
}
