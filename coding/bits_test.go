// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitsWrite(t *testing.T) {
	var b Bits
	b.Write(1, 1)
	b.Write(0x7f, 7)
	assert.Equal(t, 8, b.Bits())
	b.Write(0x123, 12)
	assert.Equal(t, 20, b.Bits())
	b.Write(0xabcd, 16)
	b.Write(0xfff, 4) // high bits ignored
	assert.Equal(t, 40, b.Bits())
	assert.Equal(t, []byte{0xff, 0x12, 0x3a, 0xbc, 0xdf}, b.Bytes())
	b.Write(1, 1)
	assert.Panics(t, func() { b.Bytes() })

	var empty Bits
	assert.Zero(t, empty.Bits())
	assert.Empty(t, empty.Bytes())
}

func TestBitStream(t *testing.T) {
	s := NewBitStream([]byte{0xa5, 0x01})
	var got []byte
	for i := 0; i < 20; i++ {
		got = append(got, s.Next())
	}
	assert.Equal(t, []byte{
		1, 0, 1, 0, 0, 1, 0, 1,
		0, 0, 0, 0, 0, 0, 0, 1,
		0, 0, 0, 0,
	}, got)
}

func pad(b []byte, n int) []byte {
	for i := 0; len(b) < n; i++ {
		b = append(b, [2]byte{0xec, 0x11}[i&1])
	}
	return b
}

func TestCodewords(t *testing.T) {
	for _, tt := range []struct {
		name string
		text string
		mode Mode
		v    Version
		l    Level
		want []byte
	}{
		{
			"numeric", "12345", Numeric, 1, L,
			pad([]byte{0x10, 0x14, 0x7b, 0x5a, 0x00}, 19),
		},
		{
			"alphanumeric", "HELLO WORLD", Alphanumeric, 1, M,
			[]byte{0x20, 0x5b, 0x0b, 0x78, 0xd1, 0x72, 0xdc, 0x4d,
				0x43, 0x40, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11},
		},
		{
			"byte", "Hi", Byte, 1, H,
			pad([]byte{0x40, 0x24, 0x86, 0x90}, 9),
		},
		{
			// exactly full, no terminator
			"full", strings.Repeat("0", 33) + "7", Numeric, 1, M,
			append(append([]byte{0x10, 0x88}, make([]byte, 13)...), 0x07),
		},
		{
			// one bit of terminator
			"short terminator", strings.Repeat("0", 41), Numeric, 1, L,
			append([]byte{0x10, 0xa4}, make([]byte, 17)...),
		},
		{
			"empty", "", Byte, 1, L,
			pad([]byte{0x40, 0x00}, 19),
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			p, err := DeriveParams(tt.v, tt.mode, tt.l)
			require.NoError(t, err)
			units := Units(tt.text, tt.mode)
			require.NotNil(t, units)
			got := Codewords(units, p)
			assert.Len(t, got, p.DataBits/8)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCodewordsLengths(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v += 13 {
		for _, mode := range []Mode{Numeric, Alphanumeric, Byte} {
			for l := M; l <= Q; l++ {
				p, err := DeriveParams(v, mode, l)
				require.NoError(t, err)
				n := p.MaxChars()
				units := bytes.Repeat([]byte{'1'}, n)
				assert.Len(t, Codewords(units, p), p.DataBits/8, "%v-%v %v", v, l, mode)
				assert.Panics(t, func() { Codewords(append(units, '1'), p) }, "%v-%v %v", v, l, mode)
			}
		}
	}
	assert.Panics(t, func() { Codewords(nil, Params{Mode: 3}) })
}
