// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR coding details: capacity
// tables, data encoding, error correction, module placement and
// masking.
package coding // import "github.com/unixdj/qrenc/coding"

//go:generate sh -c "go run gen.go | gofmt >tables.go"

import (
	"errors"
	"strconv"

	"github.com/unixdj/qrenc/gf256"
)

var (
	ErrLevel    = errors.New("qr: invalid level")
	ErrVersion  = errors.New("qr: invalid version")
	ErrMask     = errors.New("qr: invalid mask")
	ErrCapacity = errors.New("qr: data too long")
)

// Field is the field for QR error correction.
var Field = gf256.NewField(0x11d, 2)

// Auto stands for a Version, Level or Mask chosen by the encoder.
const Auto = -1

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 pixels on a side.
// Versions run from 1 to 40: the larger the version, the more
// information the code can store.
type Version int

// Code versions.
const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 40 // Maximum QR version
)

func (v Version) String() string {
	if v == Auto {
		return "auto"
	}
	return strconv.Itoa(int(v))
}

// Valid reports whether v is in the range [MinVersion, MaxVersion].
func (v Version) Valid() bool {
	return MinVersion <= v && v <= MaxVersion
}

// Size returns the number of modules on a side of a QR code.
func (v Version) Size() int {
	return int(v)*4 + 17
}

// QR version size classes.
const (
	Class0 = iota // QR versions 1 to 9
	Class1        // QR versions 10 to 26
	Class2        // QR versions 27 to 40
)

// SizeClass returns the size class of v, as documented under Class0.
func (v Version) SizeClass() int {
	if v <= 9 {
		return Class0
	}
	if v <= 26 {
		return Class1
	}
	return Class2
}

// A Level represents a QR error correction level.  Level values are
// the two bit codes stored in the format information.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	M Level = iota
	L
	H
	Q
)

// Priority lists the levels in the order the encoder tries them when
// the level is not given: most tolerant first.
var Priority = [4]Level{H, Q, M, L}

func (l Level) String() string {
	if M <= l && l <= Q {
		return "MLHQ"[l : l+1]
	}
	if l == Auto {
		return "auto"
	}
	return strconv.Itoa(int(l))
}

// Valid reports whether l is one of M, L, H and Q.
func (l Level) Valid() bool {
	return M <= l && l <= Q
}

// A version describes metadata associated with a version.
type version struct {
	apos    int // first alignment box center after 6, 0 if none
	astride int // distance between alignment box centers, 0 if only one
	bytes   int // total codewords
	level   [4]level
}

type level struct {
	nblock int // number of blocks
	check  int // check bytes per block
}

// Alignment box centers by version.
var aligns [MaxVersion + 1][]int

func init() {
	for v := MinVersion; v <= MaxVersion; v++ {
		info := &vtab[v]
		if info.apos == 0 {
			continue
		}
		a := []int{6, info.apos}
		if info.astride != 0 {
			for p := info.apos + info.astride; p <= v.Size()-7; p += info.astride {
				a = append(a, p)
			}
		}
		aligns[v] = a
	}
}

// AlignCenters returns the row and column coordinates of alignment
// box centers for v, in increasing order.  The slice is shared and
// must not be modified.
func (v Version) AlignCenters() []int {
	if !v.Valid() {
		return nil
	}
	return aligns[v]
}
