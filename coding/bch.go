// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "math/bits"

// Generator polynomials and mask of the format and version information.
const (
	formatPoly  = 0x537
	formatMask  = 0x5412
	versionPoly = 0x1f25
)

// EncodeBCH returns the dataBits-bit value followed by its eccBits-bit
// BCH check, the remainder of value·x^eccBits divided by poly.
func EncodeBCH(value, dataBits, poly, eccBits int) int {
	rem := value << eccBits
	for i := dataBits - 1; i >= 0; i-- {
		if rem&(1<<(i+eccBits)) != 0 {
			rem ^= poly << i
		}
	}
	return value<<eccBits | rem
}

// FormatBits returns the 15 bit format information for level l and
// mask m.
func FormatBits(l Level, m Mask) int {
	return EncodeBCH(int(l)<<3|int(m), 5, formatPoly, 10) ^ formatMask
}

// VersionBits returns the 18 bit version information for v, or 0 for
// versions below 7 which carry none.
func VersionBits(v Version) int {
	if v < 7 {
		return 0
	}
	return EncodeBCH(int(v), 6, versionPoly, 12)
}

// DecodeFormat returns the level and mask encoded in the format
// information fb.  Up to 3 bit errors are corrected.
func DecodeFormat(fb int) (Level, Mask, bool) {
	best, dist := 0, 16
	for i := 0; i < 32; i++ {
		d := bits.OnesCount(uint(fb ^ FormatBits(Level(i>>3), Mask(i&7))))
		if d < dist {
			best, dist = i, d
		}
	}
	if dist > 3 {
		return 0, 0, false
	}
	return Level(best >> 3), Mask(best & 7), true
}
