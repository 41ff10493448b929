package main

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// readText reads text in the given charset from r, converts it to
// UTF-8 and strips a byte order mark and the final newline.
func readText(r io.Reader, charset string) (string, error) {
	e, err := htmlindex.Get(charset)
	if err != nil {
		return "", fmt.Errorf("%q: %w", charset, err)
	}
	var b strings.Builder
	tr := transform.NewReader(r, unicode.BOMOverride(e.NewDecoder()))
	if _, err := io.Copy(&b, tr); err != nil {
		return "", err
	}
	s, _ := strings.CutSuffix(
		strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	return s, nil
}
