// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf16"
)

// A Mode is a QR segment encoding mode.  Mode values are the 4 bit
// mode indicators.  The character set of each mode contains that of
// the previous one.
type Mode int

// Encoding modes.
const (
	Numeric      Mode = 1 << iota // digits 0-9
	Alphanumeric                  // digits, A-Z, SPACE $%*+-./:
	Byte                          // any data, text as UTF-8
)

// modeEncoder implements a QR segment encoding.
//
// The encoder calls a non-nil encode{N} repeatedly as long as N
// source bytes are available, in descending order of N.
type modeEncoder struct {
	name string

	// countLength lists lengths of the character count field in
	// the three QR version size classes.
	countLength [3]byte

	accepts func(rune) bool

	encode3 func([3]byte) (uint32, int)
	encode2 func([2]byte) (uint32, int)
	encode1 func(byte) (uint32, int)
}

const alphamask uint64 = 0x07fffffe_07ffec31 // SPACE $% *+ -./ [0-9] : [A-Z]

// Alphanumeric encoding table, indexed by the low 6 bits of the
// character.  Used after validation.
// "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"
var alpha = [64]byte{
	00, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, // 0x40
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 00, 00, 00, 00, 00, // 0x50
	36, 00, 00, 00, 37, 38, 00, 00, 00, 00, 39, 40, 00, 41, 42, 43, // 0x20
	00, 01, 02, 03, 04, 05, 06, 07, 010, 9, 44, 00, 00, 00, 00, 00, // 0x30
}

var modes = [Byte + 1]modeEncoder{
	Numeric: {
		name:        "numeric",
		countLength: [3]byte{10, 12, 14},
		accepts:     func(r rune) bool { return uint32(r-'0') < 10 },
		encode1: func(b byte) (uint32, int) {
			return uint32(b - '0'), 4
		},
		encode2: func(b [2]byte) (uint32, int) {
			return uint32(b[0])*10 + uint32(b[1]) - '0'*11&0x7f, 7
		},
		encode3: func(b [3]byte) (uint32, int) {
			return uint32(b[0])*100 + uint32(b[1])*10 +
				uint32(b[2]) + -'0'*111&0x3ff, 10
		},
	},
	Alphanumeric: {
		name:        "alphanumeric",
		countLength: [3]byte{9, 11, 13},
		accepts: func(r rune) bool {
			return alphamask>>(uint32(r)-' ')&1 != 0
		},
		encode1: func(b byte) (uint32, int) {
			return uint32(alpha[b&0x3f]), 6
		},
		encode2: func(b [2]byte) (uint32, int) {
			return uint32(alpha[b[0]&0x3f])*45 +
				uint32(alpha[b[1]&0x3f]), 11
		},
	},
	Byte: {
		name:        "byte",
		countLength: [3]byte{8, 16, 16},
		accepts:     func(rune) bool { return true },
		encode1: func(b byte) (uint32, int) {
			return uint32(b), 8
		},
	},
}

func getMode(mode Mode) *modeEncoder {
	if mode >= 0 && int(mode) < len(modes) && modes[mode].name != "" {
		return &modes[mode]
	}
	return nil
}

func (mode Mode) String() string {
	if m := getMode(mode); m != nil {
		return m.name
	}
	if mode == Auto {
		return "auto"
	}
	return strconv.Itoa(int(mode))
}

// Valid reports whether mode is Numeric, Alphanumeric or Byte.
func (mode Mode) Valid() bool {
	return getMode(mode) != nil
}

// Accepts reports whether r is encodable in mode.
func (mode Mode) Accepts(r rune) bool {
	m := getMode(mode)
	return m != nil && m.accepts(r)
}

// AcceptsString reports whether every rune of s is encodable in mode.
func (mode Mode) AcceptsString(s string) bool {
	m := getMode(mode)
	if m == nil {
		return false
	}
	for _, r := range s {
		if !m.accepts(r) {
			return false
		}
	}
	return true
}

// CountBits returns the length of the character count field of mode
// in version v.
func (mode Mode) CountBits(v Version) int {
	if m := getMode(mode); m != nil {
		return int(m.countLength[v.SizeClass()])
	}
	return 0
}

// ModeError represents an invalid Mode number.
type ModeError Mode

func (e ModeError) Error() string {
	return fmt.Sprintf("qr: invalid mode %s", Mode(e))
}

// Units returns the encoding units of text in mode: one per character
// in Numeric and Alphanumeric mode, UTF-8 octets in Byte mode.  Units
// returns nil if text is not encodable in mode.
func Units(text string, mode Mode) []byte {
	switch mode {
	case Numeric, Alphanumeric:
		if !mode.AcceptsString(text) {
			return nil
		}
		return []byte(text)
	case Byte:
		return Octets([]rune(text))
	}
	return nil
}

// Octets returns the UTF-8 encoding of runes.  Surrogate pairs are
// combined, lone surrogates are encoded as they are.  Octets returns
// nil if runes contains a code point above 0x1fffff, which does not
// fit in 4 octets.
func Octets(runes []rune) []byte {
	b := make([]byte, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if utf16.IsSurrogate(r) && i+1 < len(runes) {
			if c := utf16.DecodeRune(r, runes[i+1]); c != unicode.ReplacementChar {
				r = c
				i++
			}
		}
		switch {
		case r < 0 || r > 0x1fffff:
			return nil
		case r < 0x80:
			b = append(b, byte(r))
		default:
			n := 3
			if r < 0x800 {
				n = 1
			} else if r < 0x10000 {
				n = 2
			}
			b = append(b, [3]byte{0xc0, 0xe0, 0xf0}[n-1]|byte(r>>(6*n)))
			for n > 0 {
				n--
				b = append(b, 0x80|byte(r>>(6*n))&0x3f)
			}
		}
	}
	return b
}
