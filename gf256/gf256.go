// Copyright 2010 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gf256 implements arithmetic over the Galois Field GF(256)
// and the Reed-Solomon check byte computation used by QR codes.
package gf256 // import "github.com/unixdj/qrenc/gf256"

import "strconv"

// NoLog is the logarithm of zero.
const NoLog = -1

// MaxDegree is the largest generator polynomial degree kept by a Field.
const MaxDegree = 68

// A Field represents an instance of GF(256) defined by a specific
// polynomial.  A Field is immutable after construction and safe
// for concurrent use.
type Field struct {
	exp [256]byte // exp[255] == exp[0]
	log [256]int  // log[0] == NoLog
	gen [MaxDegree + 1][]int
}

// NewField returns a new field corresponding to the polynomial poly
// and generator α.  The Reed-Solomon encoding in QR codes uses
// polynomial 0x11d with generator 2.
//
// The choice of generator α only affects the Exp and Log operations.
func NewField(poly, α int) *Field {
	if poly < 0x100 || poly >= 0x200 {
		panic("gf256: invalid polynomial: " + strconv.Itoa(poly))
	}
	var f Field
	x := 1
	for i := 0; i < 255; i++ {
		if x == 1 && i != 0 {
			panic("gf256: invalid generator " + strconv.Itoa(α) +
				" for polynomial " + strconv.Itoa(poly))
		}
		f.exp[i] = byte(x)
		f.log[x] = i
		x = mul(x, α, poly)
	}
	f.exp[255] = f.exp[0]
	f.log[0] = NoLog
	f.buildGen()
	return &f
}

// mul returns the product x*y mod poly, a GF(256) multiplication.
func mul(x, y, poly int) int {
	z := 0
	for x > 0 {
		if x&1 != 0 {
			z ^= y
		}
		x >>= 1
		y <<= 1
		if y&0x100 != 0 {
			y ^= poly
		}
	}
	return z
}

// buildGen fills the generator polynomial table.  The generator of
// degree n is the product of (x - α^i) for i in [0, n).  Entry n
// holds its coefficients below the monic leading term, highest
// degree first, as exponents of α.
func (f *Field) buildGen() {
	c := []byte{1}
	for n := 1; n <= MaxDegree; n++ {
		next := make([]byte, n+1)
		a := f.exp[n-1]
		for j := range next {
			if j < len(c) {
				next[j] = c[j]
			}
			if j > 0 {
				next[j] ^= f.Mul(c[j-1], a)
			}
		}
		c = next
		g := make([]int, n)
		for j := range g {
			g[j] = f.log[c[j+1]]
		}
		f.gen[n] = g
	}
}

// Add returns the sum of x and y in the field.
func (f *Field) Add(x, y byte) byte {
	return x ^ y
}

// Exp returns the base-α exponential of e in the field.
// If e < 0, Exp returns 0.
func (f *Field) Exp(e int) byte {
	if e < 0 {
		return 0
	}
	return f.exp[e%255]
}

// Log returns the base-α logarithm of x in the field.
// If x == 0, Log returns NoLog.
func (f *Field) Log(x byte) int {
	return f.log[x]
}

// Inv returns the multiplicative inverse of x in the field.
// If x == 0, Inv returns 0.
func (f *Field) Inv(x byte) byte {
	if x == 0 {
		return 0
	}
	return f.exp[255-f.log[x]]
}

// Mul returns the product of x and y in the field.
func (f *Field) Mul(x, y byte) byte {
	if x == 0 || y == 0 {
		return 0
	}
	return f.exp[(f.log[x]+f.log[y])%255]
}

// Generator returns the generator polynomial of degree n as a slice
// of n exponents, leading term omitted.  The slice is shared and
// must not be modified.  Generator panics if n is not in [1, MaxDegree].
func (f *Field) Generator(n int) []int {
	if n < 1 || n > MaxDegree {
		panic("gf256: invalid generator degree: " + strconv.Itoa(n))
	}
	return f.gen[n]
}

// ECC returns the Reed-Solomon check bytes for data, the remainder of
// data·x^len(gen) divided by the generator polynomial gen, given as
// returned by Generator.
func (f *Field) ECC(data []byte, gen []int) []byte {
	rem := make([]byte, len(data)+len(gen))
	copy(rem, data)
	for i := range data {
		q := f.log[rem[i]]
		if q == NoLog {
			continue
		}
		for j, e := range gen {
			if e != NoLog {
				rem[i+1+j] ^= f.exp[(e+q)%255]
			}
		}
	}
	return rem[len(data):]
}
