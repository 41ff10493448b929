// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// DataBits returns the number of data bits that can be
// stored in a QR code with the given version and level,
// or 0 if either is invalid.
func (v Version) DataBits(l Level) int {
	if !v.Valid() || !l.Valid() {
		return 0
	}
	n := 16*int(v)*int(v) + 128*int(v) + 64
	if a := len(aligns[v]); a > 0 {
		n -= 25*a*a - 10*a - 55
	}
	if v > 6 {
		n -= 36
	}
	lev := vtab[v].level[l]
	return n&^7 - 8*lev.nblock*lev.check
}

// Params describes the layout of a QR code with a specific version,
// level and mode.  Params are created by DeriveParams.
type Params struct {
	Version Version
	Level   Level
	Mode    Mode

	NumBlocks int   // number of error correction blocks
	ECBytes   int   // check bytes per block
	Generator []int // generator polynomial, see gf256.Field.Generator

	AlignCenters []int // alignment box centers

	CountBits int // length of the character count field
	DataBits  int // number of data bits
}

// DeriveParams returns the Params of a QR code with the given
// version, mode and level.
func DeriveParams(v Version, mode Mode, l Level) (Params, error) {
	if !v.Valid() {
		return Params{}, ErrVersion
	}
	if !l.Valid() {
		return Params{}, ErrLevel
	}
	if !mode.Valid() {
		return Params{}, ModeError(mode)
	}
	lev := vtab[v].level[l]
	return Params{
		Version:      v,
		Level:        l,
		Mode:         mode,
		NumBlocks:    lev.nblock,
		ECBytes:      lev.check,
		Generator:    Field.Generator(lev.check),
		AlignCenters: aligns[v],
		CountBits:    mode.CountBits(v),
		DataBits:     v.DataBits(l),
	}, nil
}

// MaxChars returns the maximum number of characters (octets in Byte
// mode) a QR code described by p can hold.
func (p Params) MaxChars() int {
	b := p.DataBits - 4 - p.CountBits
	switch p.Mode {
	case Numeric:
		n := b / 10 * 3
		switch r := b % 10; {
		case r >= 7:
			n += 2
		case r >= 4:
			n++
		}
		return n
	case Alphanumeric:
		n := b / 11 * 2
		if b%11 >= 6 {
			n++
		}
		return n
	case Byte:
		return b / 8
	}
	return 0
}

func fit(n int, v Version, mode Mode, l Level) (Params, bool) {
	p, err := DeriveParams(v, mode, l)
	return p, err == nil && n <= p.MaxChars()
}

// Plan returns the Params for n characters in mode at version v and
// level l, either of which may be Auto.
//
// With both given, the pair must hold the data.  With the level
// Auto, levels are tried in Priority order.  With the version Auto,
// the smallest version holding the data at level l (H if Auto) is
// chosen; if there is none and l is Auto, version 40 is tried with
// the rest of the levels in Priority order.
//
// Plan returns ErrCapacity if no QR code qualifies.
func Plan(n int, mode Mode, v Version, l Level) (Params, error) {
	if !mode.Valid() {
		return Params{}, ModeError(mode)
	}
	if l != Auto && !l.Valid() {
		return Params{}, ErrLevel
	}
	if v != Auto && !v.Valid() {
		return Params{}, ErrVersion
	}
	levels := Priority[:]
	if l != Auto {
		levels = []Level{l}
	}
	if v != Auto {
		for _, l := range levels {
			if p, ok := fit(n, v, mode, l); ok {
				return p, nil
			}
		}
		return Params{}, ErrCapacity
	}
	for v := MinVersion; v <= MaxVersion; v++ {
		if p, ok := fit(n, v, mode, levels[0]); ok {
			return p, nil
		}
	}
	for _, l := range levels[1:] {
		if p, ok := fit(n, MaxVersion, mode, l); ok {
			return p, nil
		}
	}
	return Params{}, ErrCapacity
}
