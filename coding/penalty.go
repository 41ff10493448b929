// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "math"

// Penalty returns the penalty value of a QR code, used for choosing
// the mask.  Lower is better.
func (m *Matrix) Penalty() int {
	// Total penalty is the sum of penalties for runs and boxes
	// of same-colour modules, finder patterns and colour balance.
	//
	//   - RunP: for runs of n modules, n>=5 -> n-2
	//   - BoxP: for possibly overlapping 2x2 boxes -> 3
	//   - FindP: for 1:1:3:1:1 dark:light:dark:light:dark runs with
	//     a light run of 4 or more inside the code on either side -> 40
	//   - BalP: for n% of black modules -> 10*floor((abs(n-50)-1)/5)
	const (
		MinRun    = 5  // RunP:  minimum run length
		RunPDelta = -2 // RunP:  add to run length
		BoxPP     = 3  // BoxP:  points per box
		FindPP    = 40 // FindP: points per pattern
		FindEdge  = 4  // FindP: minimum light run beside the pattern
		BalPP     = 10 // BalP:  10 points for every 5% step
	)
	siz := m.Size
	p, dark := 0, 0
	runs := make([]int, 0, siz+2)
	for i := 0; i < siz; i++ {
		for _, row := range [2]bool{true, false} {
			runs = m.runs(runs[:0], i, row)
			for _, n := range runs {
				if n >= MinRun {
					p += n + RunPDelta
				}
			}
			// runs alternate white and black, starting with white
			for j := 5; j < len(runs); j += 2 {
				if runs[j] == 1 && runs[j-1] == 1 && runs[j-2] == 3 &&
					runs[j-3] == 1 && runs[j-4] == 1 &&
					(runs[j-5] >= FindEdge ||
						j+1 < len(runs) && runs[j+1] >= FindEdge) {
					p += FindPP
				}
			}
		}
		for x, c := range m.mod[i*siz : (i+1)*siz] {
			dark += int(c)
			if x > 0 && i+1 < siz {
				if n := i*siz + x; c == m.mod[n-1] &&
					c == m.mod[n+siz] && c == m.mod[n+siz-1] {
					p += BoxPP
				}
			}
		}
	}
	pct := float64(dark) * 100 / float64(siz*siz)
	p += BalPP * int(math.Floor((math.Abs(pct-50)-1)/5))
	return p
}

// runs appends to dst the lengths of alternating white and black runs
// in row (or column) i, starting with a possibly empty white run.
func (m *Matrix) runs(dst []int, i int, row bool) []int {
	siz := m.Size
	at := func(j int) byte { return m.mod[j*siz+i] }
	if row {
		at = func(j int) byte { return m.mod[i*siz+j] }
	}
	for j := 0; j < siz; {
		for c := byte(0); c < 2; c++ {
			n := 0
			for ; j < siz && at(j) == c; j++ {
				n++
			}
			dst = append(dst, n)
		}
	}
	return dst
}
