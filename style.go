// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"image/color"

	"github.com/unixdj/qrmatrix/coding"
)

// RoleValues holds a value for every module role, light and dark.
// Renderers look values up by the role of a module and the colour it
// is drawn in: index 0 is light, 1 is dark.
type RoleValues[T any] [coding.NumRoles][2]T

// NewRoleValues returns RoleValues with every role set to light and
// dark.
func NewRoleValues[T any](light, dark T) *RoleValues[T] {
	var v RoleValues[T]
	for r := range v {
		v[r] = [2]T{light, dark}
	}
	return &v
}

// Set sets the values of roles to light and dark.
func (v *RoleValues[T]) Set(light, dark T, roles ...coding.Role) {
	for _, r := range roles {
		if r < coding.NumRoles {
			v[r] = [2]T{light, dark}
		}
	}
}

// SetDark sets the dark value of roles.
func (v *RoleValues[T]) SetDark(dark T, roles ...coding.Role) {
	for _, r := range roles {
		if r < coding.NumRoles {
			v[r][1] = dark
		}
	}
}

// A Shape selects how EncodeSVG draws modules.
type Shape int

// Module shapes.
const (
	Square  Shape = iota // squares, runs merged
	Rounded              // squares with corners rounded where unconnected
	Circle               // dots of Code.Radius
)

// Circle radius limits and default, in modules.
const (
	MinRadius     = 0.1
	MaxRadius     = 0.75
	DefaultRadius = 0.45
)

// b2i returns 1 for true.
func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// colorTable returns c.Colors, or a table derived from c.Palette.
func (c *Code) colorTable() *RoleValues[color.Color] {
	if c.Colors != nil {
		return c.Colors
	}
	return NewRoleValues(c.colors())
}

// colorAt returns the colour of the module at (x, y) looked up in t.
func (c *Code) colorAt(t *RoleValues[color.Color], x, y int) color.Color {
	return t[c.Get(x, y).Role()][b2i(c.Black(x, y))]
}

// background returns the colour of light quiet zone modules.
func (c *Code) background(t *RoleValues[color.Color]) color.Color {
	return t[coding.QuietZone][b2i(c.Reverse)]
}

// radius returns c.Radius clamped, or DefaultRadius if it is zero.
func (c *Code) radius() float64 {
	if c.Radius == 0 {
		return DefaultRadius
	}
	return clamp(c.Radius, MinRadius, MaxRadius)
}

// rgbaKey identifies a colour independent of its model.
type rgbaKey [4]uint32

func keyOf(col color.Color) rgbaKey {
	r, g, b, a := col.RGBA()
	return rgbaKey{r, g, b, a}
}

// paletteOf returns the distinct colours of t, in role order, and the
// palette index of every entry of t.
func paletteOf(t *RoleValues[color.Color]) (color.Palette, *RoleValues[uint8]) {
	var (
		pal  color.Palette
		idx  RoleValues[uint8]
		seen = make(map[rgbaKey]uint8)
	)
	for r := range t {
		for b, col := range t[r] {
			k := keyOf(col)
			i, ok := seen[k]
			if !ok {
				i = uint8(len(pal))
				seen[k] = i
				pal = append(pal, col)
			}
			idx[r][b] = i
		}
	}
	return pal, &idx
}
