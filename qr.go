// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr encodes text as QR codes.

A Request names the text and, optionally, the encoding mode, error
correction level, version and mask.  Anything left as Auto is chosen
by the encoder: the most compact mode for the text, the smallest
version holding it at the most tolerant level, and the mask with the
lowest penalty.  The resulting Symbol is a square matrix of modules
without a quiet zone.

Encode is safe for concurrent use.
*/
package qr // import "github.com/unixdj/qrenc"

import (
	"errors"
	"unicode/utf8"

	"github.com/unixdj/qrenc/coding"
)

// Auto leaves the choice of a Request field to the encoder.
const Auto = coding.Auto

// autoMask is accepted as a Mask meaning Auto.
const autoMask = coding.NumMasks

// A Request describes text to encode as a QR code.
type Request struct {
	Text    string         // text to encode
	Mode    coding.Mode    // encoding mode or Auto
	Level   coding.Level   // error correction level or Auto
	Version coding.Version // QR version or Auto
	Mask    coding.Mask    // mask pattern, 8 or Auto
}

// NewRequest returns a Request for text with all choices left to the
// encoder.
func NewRequest(text string) Request {
	return Request{
		Text:    text,
		Mode:    Auto,
		Level:   Auto,
		Version: Auto,
		Mask:    Auto,
	}
}

// A Symbol is an encoded QR code along with the parameters used.
type Symbol struct {
	Version coding.Version
	Mode    coding.Mode
	Level   coding.Level
	Mask    coding.Mask
	Matrix  [][]bool // rows of modules, true is black
}

// Size returns the number of modules on a side of s.
func (s *Symbol) Size() int {
	return len(s.Matrix)
}

// Black reports whether the module at column x, row y is black.
// Modules outside the matrix are white.
func (s *Symbol) Black(x, y int) bool {
	return 0 <= y && y < len(s.Matrix) && 0 <= x && x < len(s.Matrix[y]) &&
		s.Matrix[y][x]
}

func invalid(field string, subcode int) error {
	return &ValidationError{Field: field, Subcode: subcode}
}

// Encode returns the QR code for req.  If req is invalid or the text
// does not fit, the error is a *ValidationError.
func Encode(req Request) (*Symbol, error) {
	c, err := EncodeCode(req)
	if err != nil {
		return nil, err
	}
	return &Symbol{
		Version: c.Version,
		Mode:    c.Mode,
		Level:   c.Level,
		Mask:    c.Mask,
		Matrix:  c.Rows(),
	}, nil
}

// EncodeCode is like Encode but returns the coding.Symbol, which
// also holds the codewords and the roles of modules.
func EncodeCode(req Request) (*coding.Symbol, error) {
	text := req.Text
	if !utf8.ValidString(text) {
		return nil, invalid(FieldText, 1)
	}
	if text == "" {
		return nil, invalid(FieldText, 2)
	}

	mode := req.Mode
	if mode == Auto {
		mode = DetectMode(text)
	} else if !mode.AcceptsString(text) {
		return nil, invalid(FieldMode, 1)
	}
	units := coding.Units(text, mode)
	if len(units) == 0 {
		return nil, invalid(FieldText, 3)
	}

	if req.Level != Auto && !req.Level.Valid() {
		return nil, invalid(FieldLevel, 1)
	}
	p, err := coding.Plan(len(units), mode, req.Version, req.Level)
	switch {
	case errors.Is(err, coding.ErrVersion):
		return nil, invalid(FieldVersion, 2)
	case errors.Is(err, coding.ErrCapacity):
		return nil, invalid(FieldVersion, 1)
	case err != nil:
		return nil, err
	}

	mask := req.Mask
	if mask == autoMask {
		mask = Auto
	}
	if mask != Auto && !mask.Valid() {
		return nil, invalid(FieldMask, 1)
	}
	return coding.Encode(units, p, mask)
}
