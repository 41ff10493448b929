// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Bits is a bit buffer written most significant bit first.
type Bits struct {
	b    []byte
	nbit int
}

func (b *Bits) Bits() int {
	return b.nbit
}

func (b *Bits) Bytes() []byte {
	if b.nbit%8 != 0 {
		panic("qr: fractional byte")
	}
	return b.b
}

// Write appends the low nbit bits of v to b.
func (b *Bits) Write(v uint32, nbit int) {
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// padTo adds up to t zero terminator bits to b without exceeding n
// bits, fills the last byte with zeros and pads b to n bits with
// alternating 0xec and 0x11 bytes.  n must be a multiple of 8.
func (b *Bits) padTo(t, n int) {
	b.nbit = min(b.nbit+t, n)
	for len(b.b)*8 < b.nbit {
		b.b = append(b.b, 0)
	}
	for i := 0; len(b.b) < n>>3; i++ {
		b.b = append(b.b, [2]byte{0xec, 0x11}[i&1])
	}
	b.nbit = len(b.b) * 8
}

// Codewords returns the data codewords of units encoded in the
// QR code described by p: mode indicator, character count, data,
// terminator and padding.  The result is p.DataBits/8 bytes long.
// Codewords panics if units do not fit.
func Codewords(units []byte, p Params) []byte {
	m := getMode(p.Mode)
	if m == nil {
		panic("qr: " + ModeError(p.Mode).Error())
	}
	if len(units) > p.MaxChars() {
		panic("qr: too much data")
	}
	b := Bits{b: make([]byte, 0, p.DataBits>>3)}
	b.Write(uint32(p.Mode), 4)
	b.Write(uint32(len(units)), p.CountBits)
	s := units
	if enc := m.encode3; enc != nil {
		for len(s) >= 3 {
			b.Write(enc([3]byte{s[0], s[1], s[2]}))
			s = s[3:]
		}
	}
	if enc := m.encode2; enc != nil {
		for len(s) >= 2 {
			b.Write(enc([2]byte{s[0], s[1]}))
			s = s[2:]
		}
	}
	for _, c := range s {
		b.Write(m.encode1(c))
	}
	b.padTo(4, p.DataBits)
	if len(b.b) != p.DataBits>>3 {
		panic("qr: internal error")
	}
	return b.Bytes()
}

// BitStream reads bits from the underlying buffer.
type BitStream struct {
	b   []byte
	pos int
}

// NewBitStream returns a BitStream reading from b.
func NewBitStream(b []byte) BitStream { return BitStream{b: b} }

// Next returns the next bit from s as 0 or 1.
// Past end of buffer Next returns 0.
func (s *BitStream) Next() byte {
	var b byte
	if i := s.pos >> 3; i < len(s.b) {
		b = s.b[i] >> (7 &^ s.pos) & 1
		s.pos++
	}
	return b
}
