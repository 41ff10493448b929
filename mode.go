// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import "github.com/unixdj/qrenc/coding"

// DetectMode returns the most compact mode able to encode text:
// Numeric for digits only, Alphanumeric for digits, upper case letters
// and SPACE $%*+-./: only, Byte for anything else.
func DetectMode(text string) coding.Mode {
	const (
		alpha = 0x07ff_fffe_07ff_ec31 // SPACE $% *+ -./ [0-9] : [A-Z]
		digit = 0x0000_0000_03ff_0000 // [0-9]
	)
	mode := coding.Numeric
	for _, r := range text {
		bit := uint64(1) << (uint(r) - ' ')
		if digit&bit != 0 {
			continue
		} else if alpha&bit != 0 {
			mode = coding.Alphanumeric
		} else {
			return coding.Byte
		}
	}
	return mode
}
