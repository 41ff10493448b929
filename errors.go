// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"errors"
	"fmt"
)

// Request fields named by ValidationError.
const (
	FieldText    = "text"
	FieldMode    = "mode"
	FieldLevel   = "eccLevel"
	FieldVersion = "version"
	FieldMask    = "mask"
)

// Errors matched by ValidationError through errors.Is.
var (
	ErrText    = errors.New("qr: invalid text")
	ErrMode    = errors.New("qr: invalid mode")
	ErrLevel   = errors.New("qr: invalid level")
	ErrVersion = errors.New("qr: invalid version")
	ErrMask    = errors.New("qr: invalid mask")
)

var fieldErrs = map[string]error{
	FieldText:    ErrText,
	FieldMode:    ErrMode,
	FieldLevel:   ErrLevel,
	FieldVersion: ErrVersion,
	FieldMask:    ErrMask,
}

type subcode struct {
	field string
	code  int
}

var reasons = map[subcode]string{
	{FieldText, 1}:    "not valid UTF-8",
	{FieldText, 2}:    "empty",
	{FieldText, 3}:    "nothing to encode",
	{FieldMode, 1}:    "unknown mode or text outside its character set",
	{FieldLevel, 1}:   "out of range",
	{FieldVersion, 1}: "data does not fit",
	{FieldVersion, 2}: "out of range",
	{FieldMask, 1}:    "out of range",
}

// ValidationError reports the first Request field that failed
// validation, with a subcode telling why:
//
//	text      1  not valid UTF-8
//	text      2  empty
//	mode      1  unknown mode, or text outside the mode's character set
//	text      3  no encodable data after conversion
//	eccLevel  1  unknown level
//	version   2  out of range
//	version   1  data too long for any permitted version and level
//	mask      1  out of range
//
// Fields are checked in the order listed.
type ValidationError struct {
	Field   string
	Subcode int
}

func (e *ValidationError) Error() string {
	r, ok := reasons[subcode{e.Field, e.Subcode}]
	if !ok {
		r = "invalid"
	}
	return fmt.Sprintf("qr: %s (%d): %s", e.Field, e.Subcode, r)
}

// Unwrap returns the error for the field, such as ErrText.
func (e *ValidationError) Unwrap() error {
	return fieldErrs[e.Field]
}
