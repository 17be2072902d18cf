// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/unixdj/qrmatrix/coding"
)

// errWriter remembers the first write error.
type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(p)
	w.err = err
	return n, err
}

// fillStyle returns an SVG fill style for col.
func fillStyle(col color.Color) string {
	r, g, b, a := col.RGBA()
	return fmt.Sprintf("fill: rgb(%d, %d, %d); fill-opacity: %.2f",
		r>>8, g>>8, b>>8, float64(a>>8)/255)
}

// svgLayer holds the modules drawn in one colour.
type svgLayer struct {
	col   color.Color
	cells [][2]int
	light []coding.Role // roles whose light modules are drawn in col
	dark  []coding.Role // roles whose dark modules are drawn in col
}

// svgLayers groups the modules of c by colour, in order of first
// appearance.  Modules in the background colour are left out.
func (c *Code) svgLayers(t *RoleValues[color.Color]) []*svgLayer {
	var (
		layers []*svgLayer
		byKey  = make(map[rgbaKey]*svgLayer)
		bg     = keyOf(c.background(t))
		siz    = c.Size()
	)
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; x++ {
			col := c.colorAt(t, x, y)
			k := keyOf(col)
			if k == bg {
				continue
			}
			l := byKey[k]
			if l == nil {
				l = &svgLayer{col: col}
				for r := range t {
					if keyOf(t[r][b2i(c.Reverse)]) == k {
						l.light = append(l.light, coding.Role(r))
					}
					if keyOf(t[r][b2i(!c.Reverse)]) == k {
						l.dark = append(l.dark, coding.Role(r))
					}
				}
				byKey[k] = l
				layers = append(layers, l)
			}
			l.cells = append(l.cells, [2]int{x, y})
		}
	}
	return layers
}

// connected returns the Neighbour bits of modules around (x, y) that
// belong to l.
func (c *Code) connected(l *svgLayer, x, y int) int {
	bits := 0
	if len(l.dark) != 0 {
		bits |= c.Neighbours(x, y, l.dark...)
	}
	if len(l.light) != 0 {
		bits |= c.Adjacent(x, y, l.light...) &^ c.Neighbours(x, y, l.light...)
	}
	return bits
}

// num formats a coordinate with at most three decimals.
func num(f float64) string {
	return strconv.FormatFloat(math.Round(f*1000)/1000, 'f', -1, 64)
}

// corner returns the corner radius for a module with neighbour bits
// n: rounded if neither of the sides a and b is connected.
func corner(n, a, b int) float64 {
	if n&(a|b) == 0 {
		return 0.5
	}
	return 0
}

// roundedPath appends a clockwise outline of the module at (x, y)
// with unconnected corners rounded.
func roundedPath(b *strings.Builder, x, y, n int) {
	tl := corner(n, coding.NeighbourTop, coding.NeighbourLeft)
	tr := corner(n, coding.NeighbourTop, coding.NeighbourRight)
	br := corner(n, coding.NeighbourBottom, coding.NeighbourRight)
	bl := corner(n, coding.NeighbourBottom, coding.NeighbourLeft)
	fmt.Fprintf(b, "M%s %dh%s", num(float64(x)+tl), y, num(1-tl-tr))
	if tr != 0 {
		fmt.Fprintf(b, "a%[1]s %[1]s 0 0 1 %[1]s %[1]s", num(tr))
	}
	fmt.Fprintf(b, "v%s", num(1-tr-br))
	if br != 0 {
		fmt.Fprintf(b, "a%[1]s %[1]s 0 0 1 -%[1]s %[1]s", num(br))
	}
	fmt.Fprintf(b, "h-%s", num(1-br-bl))
	if bl != 0 {
		fmt.Fprintf(b, "a%[1]s %[1]s 0 0 1 -%[1]s -%[1]s", num(bl))
	}
	fmt.Fprintf(b, "v-%s", num(1-bl-tl))
	if tl != 0 {
		fmt.Fprintf(b, "a%[1]s %[1]s 0 0 1 %[1]s -%[1]s", num(tl))
	}
	b.WriteByte('Z')
}

// circlePath appends a dot of radius r centred in the module at (x, y).
func circlePath(b *strings.Builder, x, y int, r float64) {
	fmt.Fprintf(b, "M%s %sa%[3]s %[3]s 0 1 0 %[4]s 0a%[3]s %[3]s 0 1 0 -%[4]s 0Z",
		num(float64(x)+0.5-r), num(float64(y)+0.5), num(r), num(2*r))
}

// squarePath appends the outline of the module at (x, y).
func squarePath(b *strings.Builder, x, y int) {
	fmt.Fprintf(b, "M%d %dh1v1h-1Z", x, y)
}

// path returns the path data of l drawn in c.Shape.
func (c *Code) path(l *svgLayer) string {
	var (
		b strings.Builder
		r = c.radius()
	)
	for i, p := range l.cells {
		if i != 0 {
			b.WriteByte(' ')
		}
		x, y := p[0], p[1]
		switch {
		case c.Shape == Rounded:
			roundedPath(&b, x, y, c.connected(l, x, y))
		case c.Shape == Circle && !c.Is(x, y, c.KeepSquare...):
			circlePath(&b, x, y, r)
		default:
			squarePath(&b, x, y)
		}
	}
	return b.String()
}

// rects draws l as horizontal runs of modules.
func rects(s *svg.SVG, l *svgLayer) {
	for i := 0; i < len(l.cells); {
		x, y := l.cells[i][0], l.cells[i][1]
		n := 1
		for i+n < len(l.cells) && l.cells[i+n] == [2]int{x + n, y} {
			n++
		}
		s.Rect(x, y, n, 1)
		i += n
	}
}

// EncodeSVG writes an SVG image displaying the code to w.  Modules
// are c.Scale user units wide and coloured by role as described
// under Code.  The background is the light quiet zone colour; other
// colours are drawn in one layer each, light modules included.
// Square modules are merged into horizontal runs.  Rounded modules
// keep square corners where they join a neighbour of the same colour.
func (c *Code) EncodeSVG(w io.Writer) error {
	if err := c.check(); err != nil {
		return err
	}
	ew := &errWriter{w: w}
	t := c.colorTable()
	length := c.Size() * c.Scale

	s := svg.New(ew)
	s.Start(length, length)
	s.Rect(0, 0, length, length, fillStyle(c.background(t)))
	s.Scale(float64(c.Scale))
	for _, l := range c.svgLayers(t) {
		if c.Shape == Square {
			s.Group(fillStyle(l.col))
			rects(s, l)
			s.Gend()
			continue
		}
		s.Path(c.path(l), fillStyle(l.col))
	}
	s.Gend()
	s.End()
	return ew.err
}
