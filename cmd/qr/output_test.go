package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qr "github.com/unixdj/qrenc"
	"github.com/unixdj/qrenc/coding"
)

func encode(t *testing.T, text string) *coding.Symbol {
	t.Helper()
	c, err := qr.EncodeCode(qr.NewRequest(text))
	require.NoError(t, err)
	return c
}

func TestRows(t *testing.T) {
	c := encode(t, "HELLO WORLD")
	rr, ri := rows(c, false), rows(c, true)
	require.Len(t, rr, 25)
	require.Len(t, ri, 25)
	assert.Equal(t, "11111110", rr[0][:8])
	assert.Equal(t, "00000001", ri[0][:8])
	for y := range rr {
		require.Len(t, rr[y], 25)
		for x := range rr[y] {
			assert.NotEqual(t, rr[y][x], ri[y][x])
			assert.Equal(t, c.Black(x, y), rr[y][x] == '1')
		}
	}
}

func TestWriteBits(t *testing.T) {
	c := encode(t, "12345")
	var b bytes.Buffer
	require.NoError(t, writeBits(c, &b, false))
	lines := strings.Split(b.String(), "\n")
	require.Len(t, lines, 22)
	assert.Empty(t, lines[21])
	assert.Equal(t, rows(c, false), lines[:21])
}

func TestWriteJSON(t *testing.T) {
	c := encode(t, "HELLO WORLD")
	for _, rev := range []bool{false, true} {
		var b bytes.Buffer
		require.NoError(t, writeJSON(c, &b, rev))
		var got symbolJSON
		require.NoError(t, json.Unmarshal(b.Bytes(), &got))
		assert.Equal(t, symbolJSON{
			Version: 2,
			Level:   "H",
			Mode:    "alphanumeric",
			Mask:    int(c.Mask),
			Size:    25,
			Matrix:  rows(c, rev),
		}, got)
	}
}

func TestInfo(t *testing.T) {
	c := encode(t, "HELLO WORLD")
	s := info(c)
	assert.Contains(t, s, "version 2-H, 25x25 modules, alphanumeric mode, 11 characters")
	assert.True(t, strings.HasSuffix(s, " ok"), s)

	c.SetFormat(coding.L, (c.Mask+1)%coding.NumMasks)
	assert.True(t, strings.HasSuffix(info(c), " BAD"))
}

func TestFormats(t *testing.T) {
	assert.Len(t, formats, 2*len(encoders))
}
