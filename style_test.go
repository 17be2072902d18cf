// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unixdj/qrmatrix/coding"
)

var (
	red    = color.RGBA{0xff, 0, 0, 0xff}
	yellow = color.RGBA{0xff, 0xff, 0, 0xff}
)

func TestRoleValues(t *testing.T) {
	v := NewRoleValues("-", "#")
	for r := range v {
		assert.Equal(t, [2]string{"-", "#"}, v[r])
	}
	v.Set("s", "S", coding.Separator, coding.Timing, coding.NumRoles)
	v.SetDark("F", coding.Finder, coding.NumRoles+1)
	assert.Equal(t, [2]string{"s", "S"}, v[coding.Separator])
	assert.Equal(t, [2]string{"s", "S"}, v[coding.Timing])
	assert.Equal(t, [2]string{"-", "F"}, v[coding.Finder])
	assert.Equal(t, [2]string{"-", "#"}, v[coding.Data])
}

func TestPaletteOf(t *testing.T) {
	v := NewRoleValues[color.Color](color.White, color.Black)
	v.SetDark(red, coding.Finder)
	v.SetDark(color.RGBA{0xff, 0, 0, 0xff}, coding.Alignment)
	v.Set(color.Gray{0xff}, color.Gray{0}, coding.Timing)
	pal, idx := paletteOf(v)
	require.Len(t, pal, 3)
	assert.Equal(t, [2]uint8{0, 1}, idx[coding.Data])
	assert.Equal(t, [2]uint8{0, 2}, idx[coding.Finder])
	assert.Equal(t, [2]uint8{0, 2}, idx[coding.Alignment])
	assert.Equal(t, [2]uint8{0, 1}, idx[coding.Timing])
}

func finderColors() *RoleValues[color.Color] {
	v := NewRoleValues[color.Color](color.White, color.Black)
	v.SetDark(red, coding.Finder)
	return v
}

func TestImageColors(t *testing.T) {
	c := hello(t)
	c.Colors = finderColors()
	img := c.Image()
	pi, ok := img.(image.PalettedImage)
	require.True(t, ok)
	assert.Len(t, pi.ColorModel(), 3)

	// top left corner of the top left finder, then its centre
	assert.Equal(t, red, img.At(4*8, 4*8))
	assert.Equal(t, color.Black, img.At(7*8, 7*8))
	assert.Equal(t, color.White, img.At(0, 0))

	c.Reverse = true
	assert.Equal(t, color.White, img.At(4*8, 4*8))
	assert.Equal(t, color.Black, img.At(0, 0))
	assert.Equal(t, color.Black, img.At(-1, -1))

	// Colors overrides Palette
	c.Reverse = false
	c.Palette = &[2]color.Color{yellow, color.Black}
	assert.Equal(t, color.White, c.Image().At(0, 0))
}

func TestPDFColors(t *testing.T) {
	c := hello(t)
	c.Colors = finderColors()
	var b bytes.Buffer
	require.NoError(t, c.EncodePDF(&b))
	assert.True(t, bytes.HasPrefix(b.Bytes(), []byte("%PDF-")))
}

// group returns the body of the first SVG group filled with col.
func group(t *testing.T, s string, col color.Color) string {
	t.Helper()
	start := strings.Index(s, `<g style="`+fillStyle(col))
	require.NotEqual(t, -1, start)
	end := strings.Index(s[start:], "</g>")
	require.NotEqual(t, -1, end)
	return s[start : start+end]
}

func TestSVGLayers(t *testing.T) {
	c := hello(t)
	c.Colors = finderColors()
	c.Colors.Set(yellow, color.Black, coding.Separator)
	var b bytes.Buffer
	require.NoError(t, c.EncodeSVG(&b))
	s := b.String()
	assert.Contains(t, s, `<rect x="0" y="0" width="232" height="232" style="`+
		fillStyle(color.White))

	g := group(t, s, red)
	assert.Contains(t, g, `<rect x="4" y="4" width="7" height="1" />`)
	assert.Contains(t, g, `<rect x="18" y="4" width="7" height="1" />`)
	assert.NotContains(t, group(t, s, color.Black), `x="4" y="4"`)

	// light separator modules are drawn
	g = group(t, s, yellow)
	assert.Contains(t, g, `<rect x="4" y="11" width="8" height="1" />`)

	layers := c.svgLayers(c.colorTable())
	require.Len(t, layers, 3)
	assert.Equal(t, red, layers[0].col)
	assert.Equal(t, yellow, layers[1].col)
	assert.Equal(t, []coding.Role{coding.Separator}, layers[1].light)
	assert.Empty(t, layers[1].dark)
	assert.Equal(t, color.Black, layers[2].col)
	assert.NotContains(t, layers[2].dark, coding.Finder)
}

func TestConnected(t *testing.T) {
	c := hello(t)
	c.Colors = NewRoleValues[color.Color](color.White, color.Black)
	c.Colors.Set(yellow, color.Black, coding.Separator)
	layers := c.svgLayers(c.colorTable())
	require.Len(t, layers, 2)
	dark, sep := layers[0], layers[1]

	assert.Equal(t, coding.NeighbourRight|coding.NeighbourBottom,
		c.connected(dark, 4, 4))
	assert.Equal(t, 0xff, c.connected(dark, 7, 7))
	// separator right of the top left finder
	assert.Equal(t, coding.NeighbourBottom, c.connected(sep, 11, 4))
	assert.Equal(t, coding.NeighbourTop|coding.NeighbourLeft,
		c.connected(sep, 11, 11))
}

func TestModulePaths(t *testing.T) {
	var b strings.Builder
	roundedPath(&b, 0, 0, 0)
	assert.Equal(t, "M0.5 0h0a0.5 0.5 0 0 1 0.5 0.5v0"+
		"a0.5 0.5 0 0 1 -0.5 0.5h-0a0.5 0.5 0 0 1 -0.5 -0.5v-0"+
		"a0.5 0.5 0 0 1 0.5 -0.5Z", b.String())

	b.Reset()
	roundedPath(&b, 3, 2, 0xff)
	assert.Equal(t, "M3 2h1v1h-1v-1Z", b.String())

	b.Reset()
	roundedPath(&b, 2, 0, coding.NeighbourRight)
	assert.Equal(t, "M2.5 0h0.5v1h-0.5a0.5 0.5 0 0 1 -0.5 -0.5v-0"+
		"a0.5 0.5 0 0 1 0.5 -0.5Z", b.String())

	b.Reset()
	circlePath(&b, 0, 0, DefaultRadius)
	assert.Equal(t, "M0.05 0.5a0.45 0.45 0 1 0 0.9 0"+
		"a0.45 0.45 0 1 0 -0.9 0Z", b.String())

	b.Reset()
	squarePath(&b, 4, 5)
	assert.Equal(t, "M4 5h1v1h-1Z", b.String())
}

func TestRadius(t *testing.T) {
	c := &Code{}
	assert.Equal(t, DefaultRadius, c.radius())
	c.Radius = 0.01
	assert.Equal(t, MinRadius, c.radius())
	c.Radius = 2
	assert.Equal(t, MaxRadius, c.radius())
	c.Radius = 0.3
	assert.Equal(t, 0.3, c.radius())
}

func TestSVGShapes(t *testing.T) {
	c := hello(t)
	var b bytes.Buffer

	c.Shape = Rounded
	require.NoError(t, c.EncodeSVG(&b))
	s := b.String()
	assert.Contains(t, s, `<path d="M4.5 4h0.5v1h-1v-0.5`+
		`a0.5 0.5 0 0 1 0.5 -0.5Z M5 4h1v1h-1v-1Z`)
	assert.Contains(t, s, "a0.5 0.5 0 0 1")
	assert.NotContains(t, s, "<rect x=\"4\"")

	b.Reset()
	c.Shape = Circle
	c.KeepSquare = []coding.Role{coding.Finder, coding.FinderDot}
	require.NoError(t, c.EncodeSVG(&b))
	s = b.String()
	assert.Contains(t, s, `<path d="M4 4h1v1h-1Z M5 4h1v1h-1Z`)
	assert.Contains(t, s, "a0.45 0.45 0 1 0 0.9 0")
	assert.Equal(t, 1, strings.Count(s, "<path "))
}

func TestEncodeText(t *testing.T) {
	c := hello(t)
	v := NewRoleValues(".", "#")
	v.Set("s", "S", coding.Separator)
	v.SetDark("F", coding.Finder)
	var b bytes.Buffer
	require.NoError(t, c.EncodeText(&b, v))
	lines := strings.Split(b.String(), "\n")
	assert.Equal(t, "....FFFFFFFs", lines[4][:12])
	assert.Equal(t, "....F.###.Fs", lines[6][:12])
	assert.Equal(t, "....ssssssss", lines[11][:12])
	assert.ErrorIs(t, c.EncodeText(&b, nil), ErrArgs)
}
