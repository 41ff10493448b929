// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Interleave splits data into the error correction blocks of p,
// computes the check bytes of each block and returns data and check
// bytes with blocks interleaved.  Blocks that are one byte short come
// first.
func Interleave(data []byte, p Params) []byte {
	nblock := p.NumBlocks
	if len(data) != p.DataBits>>3 || nblock < 1 {
		panic("qr: wrong data length")
	}
	db := len(data) / nblock
	normal := nblock - len(data)%nblock
	check := make([]byte, 0, nblock*p.ECBytes)
	for i, src := 0, data; i < nblock; i++ {
		n := db
		if i >= normal {
			n++
		}
		check = append(check, Field.ECC(src[:n], p.Generator)...)
		src = src[n:]
	}
	dst := make([]byte, len(data)+len(check))
	interleave(dst[:len(data)], data, nblock)
	interleave(dst[len(data):], check, nblock)
	return dst
}

// interleave interleaves nblock blocks from src to dst, which must be
// of equal length.  The last len(src)%nblock blocks are one byte
// longer than the rest.
func interleave(dst, src []byte, nblock int) {
	db := len(src) / nblock
	extra := dst[db*nblock:]
	dst = dst[:db*nblock]
	normal := nblock - len(extra)
	for i := 0; i < nblock; i++ {
		for j, v := range src[:db] {
			dst[j*nblock+i] = v
		}
		src = src[db:]
		if i >= normal {
			extra[i-normal] = src[0]
			src = src[1:]
		}
	}
}
