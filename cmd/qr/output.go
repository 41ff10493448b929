package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/unixdj/qrenc/coding"
)

var formats = []string{"bits", "bitsi", "json", "jsoni"}

var encoders = [...]func(*coding.Symbol, io.Writer, bool) error{
	writeBits,
	writeJSON,
}

// rows returns the modules of c as strings of '0' and '1', '1' being
// black, or white if rev is set.
func rows(c *coding.Symbol, rev bool) []string {
	siz := c.Size
	dark, light := byte('1'), byte('0')
	if rev {
		dark, light = light, dark
	}
	rr := make([]string, siz)
	b := make([]byte, siz)
	for y := range rr {
		for x := range b {
			b[x] = light
			if c.Black(x, y) {
				b[x] = dark
			}
		}
		rr[y] = string(b)
	}
	return rr
}

func writeBits(c *coding.Symbol, w io.Writer, rev bool) error {
	_, err := io.WriteString(w, strings.Join(rows(c, rev), "\n")+"\n")
	return err
}

type symbolJSON struct {
	Version int      `json:"version"`
	Level   string   `json:"level"`
	Mode    string   `json:"mode"`
	Mask    int      `json:"mask"`
	Size    int      `json:"size"`
	Matrix  []string `json:"matrix"`
}

func writeJSON(c *coding.Symbol, w io.Writer, rev bool) error {
	return json.NewEncoder(w).Encode(symbolJSON{
		Version: int(c.Version),
		Level:   c.Level.String(),
		Mode:    c.Mode.String(),
		Mask:    int(c.Mask),
		Size:    c.Size,
		Matrix:  rows(c, rev),
	})
}

// info describes c in one line.
func info(c *coding.Symbol) string {
	fb, _ := c.Format()
	l, m, ok := coding.DecodeFormat(fb)
	check := "ok"
	if !ok || l != c.Level || m != c.Mask {
		check = "BAD"
	}
	return fmt.Sprintf("version %v-%v, %dx%d modules, %v mode, "+
		"%d characters, mask %v, format %#04x %s",
		c.Version, c.Level, c.Size, c.Size, c.Mode,
		len(c.Units), c.Mask, fb, check)
}
