// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bytes"
	"encoding/json"
	"errors"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unixdj/qrmatrix/coding"
)

func hello(t *testing.T) *Code {
	t.Helper()
	c, err := Encode("HELLO WORLD", nil)
	require.NoError(t, err)
	return c
}

func TestEncode(t *testing.T) {
	c := hello(t)
	assert.Equal(t, coding.Version(1), c.Version())
	assert.Equal(t, coding.L, c.Level())
	assert.Equal(t, 29, c.Size())
	assert.Equal(t, 4, c.QuietZone())
	assert.Equal(t, 8, c.Scale)
	_, ok := c.MaskPattern()
	assert.True(t, ok)

	o := DefaultOptions()
	o.Level = coding.H
	o.Version = 5
	o.Mask = 3
	o.Mode = coding.Byte
	o.QuietZone = 0
	c, err := Encode("12345", o)
	require.NoError(t, err)
	assert.Equal(t, coding.Version(5), c.Version())
	assert.Equal(t, 37, c.Size())
	p, _ := c.MaskPattern()
	assert.Equal(t, coding.Mask(3), p)

	o.Mode = coding.Numeric
	_, err = Encode("12a", o)
	assert.ErrorIs(t, err, coding.ErrSegment)

	o = DefaultOptions()
	o.Version = 1
	_, err = Encode(strings.Repeat("x", 100), o)
	assert.ErrorIs(t, err, coding.ErrOverflow)
}

func TestEncodeLatin1(t *testing.T) {
	o := DefaultOptions()
	o.Latin1 = true
	c, err := Encode("café", o)
	require.NoError(t, err)
	assert.Equal(t, coding.Version(1), c.Version())

	_, err = Encode("price: 5€", o)
	assert.ErrorIs(t, err, coding.ErrSegment)
	var le *Latin1Error
	require.ErrorAs(t, err, &le)
	assert.Equal(t, '€', le.Rune)
	assert.Equal(t, 8, le.Offset)
	assert.Equal(t, `qr: U+20AC '€' at byte 8 is not in Latin-1`, err.Error())
	assert.Error(t, errors.Unwrap(err))

	_, err = Encode("ab\xffc", o)
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 2, le.Offset)
	assert.Equal(t, "qr: invalid UTF-8 at byte 2", err.Error())
}

func TestEncodeLogo(t *testing.T) {
	o := DefaultOptions()
	o.LogoWidth = 5
	_, err := Encode("0123456789", o)
	assert.ErrorIs(t, err, coding.ErrLevelRequired)

	o.Level = coding.H
	c, err := Encode("0123456789", o)
	require.NoError(t, err)
	assert.True(t, c.Is(10+4, 10+4, coding.Logo))

	o.LogoWidth = 11
	_, err = Encode("0123456789", o)
	assert.ErrorIs(t, err, coding.ErrLogoTooLarge)
}

func TestCheck(t *testing.T) {
	var c *Code
	assert.ErrorIs(t, c.check(), ErrArgs)
	c = hello(t)
	c.Scale = 0
	assert.ErrorIs(t, c.EncodePNG(&bytes.Buffer{}), ErrArgs)
	c.Scale = maxPixels
	assert.ErrorIs(t, c.EncodePBM(&bytes.Buffer{}), ErrLargeImage)
	assert.Nil(t, c.PNG())
}

func TestPNG(t *testing.T) {
	c := hello(t)
	img, err := png.Decode(bytes.NewReader(c.PNG()))
	require.NoError(t, err)
	assert.Equal(t, 29*8, img.Bounds().Dx())
	assert.Equal(t, 29*8, img.Bounds().Dy())
	gray := func(x, y int) uint32 {
		r, _, _, _ := img.At(x, y).RGBA()
		return r >> 8
	}
	assert.Equal(t, uint32(0xff), gray(0, 0))
	assert.Equal(t, uint32(0), gray(32, 32))
	assert.Equal(t, uint32(0), gray(39, 39))
	assert.Equal(t, uint32(0xff), gray(40, 40))

	c.Reverse = true
	img, err = png.Decode(bytes.NewReader(c.PNG()))
	require.NoError(t, err)
	r, _, _, _ := img.At(0, 0).RGBA()
	assert.Zero(t, r)
}

func TestImagePalette(t *testing.T) {
	c := hello(t)
	c.Palette = &[2]color.Color{color.White, red}
	img := c.Image()
	assert.Equal(t, red, img.At(32, 32))
	assert.Equal(t, color.White, img.At(0, 0))
}

func TestPBM(t *testing.T) {
	c := hello(t)
	c.Scale = 2
	var b bytes.Buffer
	require.NoError(t, c.EncodePBM(&b))
	head := "P4\n58 58\n"
	require.True(t, strings.HasPrefix(b.String(), head))
	body := b.Bytes()[len(head):]
	assert.Len(t, body, 58*8)
	// pixel row 8 is the top row of the top left finder
	row := body[8*8 : 9*8]
	assert.Equal(t, []byte{0x00, 0xff, 0xfc}, row[:3])
}

func TestSVG(t *testing.T) {
	c := hello(t)
	var b bytes.Buffer
	require.NoError(t, c.EncodeSVG(&b))
	s := b.String()
	assert.Contains(t, s, "<svg")
	assert.Contains(t, s, `width="232"`)
	assert.Contains(t, s, "scale(8)")
	assert.Contains(t, s, "fill: rgb(0, 0, 0)")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(s), "</svg>"))
}

func TestPDF(t *testing.T) {
	c := hello(t)
	var b bytes.Buffer
	require.NoError(t, c.EncodePDF(&b))
	assert.True(t, bytes.HasPrefix(b.Bytes(), []byte("%PDF-")))
}

func TestJSON(t *testing.T) {
	c := hello(t)
	var b bytes.Buffer
	require.NoError(t, c.EncodeJSON(&b))
	var v struct {
		Version   int      `json:"version"`
		Level     string   `json:"level"`
		Mask      int      `json:"mask"`
		Size      int      `json:"size"`
		QuietZone int      `json:"quietZone"`
		Matrix    [][]bool `json:"matrix"`
	}
	require.NoError(t, json.Unmarshal(b.Bytes(), &v))
	mask, _ := c.MaskPattern()
	assert.Equal(t, 1, v.Version)
	assert.Equal(t, "L", v.Level)
	assert.Equal(t, int(mask), v.Mask)
	assert.Equal(t, 29, v.Size)
	assert.Equal(t, 4, v.QuietZone)
	assert.Equal(t, c.Bools(), v.Matrix)
}

func TestText(t *testing.T) {
	c := hello(t)
	var b bytes.Buffer
	require.NoError(t, c.EncodeASCII(&b))
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	require.Len(t, lines, 29)
	assert.Equal(t, strings.Repeat("  ", 4)+strings.Repeat("##", 7)+"  ",
		lines[4][:24])

	lines = strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n")
	require.Len(t, lines, 15)
	assert.Equal(t, strings.Repeat("█", 29), lines[0])
	// row 4 is the top of the finders, row 5 is inside
	assert.Equal(t, "████ ▄▄▄▄▄ █", string([]rune(lines[2])[:12]))
}
