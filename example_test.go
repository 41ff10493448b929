// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr_test

import (
	"errors"
	"fmt"
	"log"
	"strings"

	qr "github.com/unixdj/qrenc"
	"github.com/unixdj/qrenc/coding"
)

func Example() {
	s, err := qr.Encode(qr.NewRequest("HELLO WORLD"))
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Printf("version %v-%v, %v mode, %dx%d\n",
		s.Version, s.Level, s.Mode, s.Size(), s.Size())
	// Output:
	// version 2-H, alphanumeric mode, 25x25
}

func ExampleEncode_options() {
	req := qr.NewRequest("HELLO WORLD")
	req.Level = coding.M
	req.Version = 1
	req.Mask = 2
	s, err := qr.Encode(req)
	if err != nil {
		log.Fatalln(err)
	}
	for _, row := range s.Matrix[:7] {
		var b strings.Builder
		for _, black := range row[:7] {
			if black {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		fmt.Println(b.String())
	}
	// Output:
	// #######
	// #.....#
	// #.###.#
	// #.###.#
	// #.###.#
	// #.....#
	// #######
}

func ExampleValidationError() {
	_, err := qr.Encode(qr.NewRequest(strings.Repeat("x", 3000)))
	var ve *qr.ValidationError
	if errors.As(err, &ve) {
		fmt.Println(ve.Field, ve.Subcode)
	}
	fmt.Println(errors.Is(err, qr.ErrVersion))
	fmt.Println(err)
	// Output:
	// version 1
	// true
	// qr: version (1): data does not fit
}
