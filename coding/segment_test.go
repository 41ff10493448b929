// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeString(t *testing.T) {
	for mode, want := range map[Mode]string{
		Numeric:      "numeric",
		Alphanumeric: "alphanumeric",
		Byte:         "byte",
		Auto:         "auto",
		0:            "0",
		3:            "3",
		8:            "8",
	} {
		assert.Equal(t, want, mode.String())
	}
}

func TestModeAccepts(t *testing.T) {
	const all = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"
	for r := rune(0); r < 0x100; r++ {
		assert.Equal(t, r >= '0' && r <= '9', Numeric.Accepts(r), "%q", r)
		assert.Equal(t, containsRune(all, r), Alphanumeric.Accepts(r), "%q", r)
		assert.True(t, Byte.Accepts(r), "%q", r)
	}
	for _, r := range []rune{-1, 0x130, 0x1f600, 0x110000} {
		assert.False(t, Numeric.Accepts(r), "%q", r)
		assert.False(t, Alphanumeric.Accepts(r), "%q", r)
	}
	assert.False(t, Mode(3).Accepts('0'))
	assert.False(t, Mode(Auto).Accepts('0'))

	assert.True(t, Numeric.AcceptsString("0123456789"))
	assert.False(t, Numeric.AcceptsString("12a"))
	assert.True(t, Alphanumeric.AcceptsString(all))
	assert.False(t, Alphanumeric.AcceptsString("Hello"))
	assert.True(t, Byte.AcceptsString("Hello, мир"))
	assert.True(t, Numeric.AcceptsString(""))
	assert.False(t, Mode(5).AcceptsString(""))
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}

func TestUnits(t *testing.T) {
	assert.Equal(t, []byte("01234"), Units("01234", Numeric))
	assert.Nil(t, Units("0123a", Numeric))
	assert.Equal(t, []byte("HELLO WORLD"), Units("HELLO WORLD", Alphanumeric))
	assert.Nil(t, Units("hello", Alphanumeric))
	assert.Equal(t, []byte("h\xc3\xa9"), Units("hé", Byte))
	assert.Nil(t, Units("1", Mode(3)))
	// invalid UTF-8 reads as U+FFFD
	assert.Equal(t, []byte("\xef\xbf\xbd"), Units("\xff", Byte))
}

func TestOctets(t *testing.T) {
	for _, tt := range []struct {
		name  string
		runes []rune
		want  []byte
	}{
		{"empty", nil, []byte{}},
		{"ascii", []rune("Az~\x00\x7f"), []byte("Az~\x00\x7f")},
		{"two octets", []rune{0x80, 0xe9, 0x7ff}, []byte{0xc2, 0x80, 0xc3, 0xa9, 0xdf, 0xbf}},
		{"three octets", []rune{0x800, 0x20ac, 0xffff}, []byte{0xe0, 0xa0, 0x80, 0xe2, 0x82, 0xac, 0xef, 0xbf, 0xbf}},
		{"four octets", []rune{0x1f600}, []byte{0xf0, 0x9f, 0x98, 0x80}},
		{"beyond unicode", []rune{0x110000, 0x1fffff}, []byte{0xf4, 0x90, 0x80, 0x80, 0xf7, 0xbf, 0xbf, 0xbf}},
		{"surrogate pair", []rune{'a', 0xd83d, 0xde00, 'b'}, []byte{'a', 0xf0, 0x9f, 0x98, 0x80, 'b'}},
		{"lone high surrogate", []rune{0xd83d, 'x'}, []byte{0xed, 0xa0, 0xbd, 'x'}},
		{"trailing high surrogate", []rune{0xd83d}, []byte{0xed, 0xa0, 0xbd}},
		{"lone low surrogate", []rune{0xde00, 0xd83d}, []byte{0xed, 0xb8, 0x80, 0xed, 0xa0, 0xbd}},
		{"too large", []rune{'a', 0x200000}, nil},
		{"negative", []rune{-1}, nil},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Octets(tt.runes))
		})
	}
}

func TestModeError(t *testing.T) {
	assert.EqualError(t, ModeError(3), "qr: invalid mode 3")
}
