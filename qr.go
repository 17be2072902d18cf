// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr encodes QR codes.

Encode builds a Code from text and Options.  A Code wraps the module
matrix together with rendering settings, and renders to images (PNG,
PBM, PDF), SVG, JSON and text.
*/
package qr // import "github.com/unixdj/qrmatrix"

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"unicode/utf8"

	"github.com/unixdj/qrmatrix/coding"
	"golang.org/x/text/encoding/charmap"
)

var (
	ErrArgs       = errors.New("qr: invalid arguments")
	ErrLargeImage = errors.New("qr: image too large")
)

// Latin1Error reports text that cannot be transcoded to ISO 8859-1.
// It matches coding.ErrSegment.
type Latin1Error struct {
	Rune   rune  // offending rune, or -1 for invalid UTF-8
	Offset int   // byte offset of Rune in the text
	Err    error // transcoder error
}

func (e *Latin1Error) Error() string {
	if e.Rune < 0 {
		return fmt.Sprintf("qr: invalid UTF-8 at byte %d", e.Offset)
	}
	return fmt.Sprintf("qr: %U %q at byte %d is not in Latin-1",
		e.Rune, e.Rune, e.Offset)
}

func (e *Latin1Error) Is(target error) bool { return target == coding.ErrSegment }

func (e *Latin1Error) Unwrap() error { return e.Err }

// latin1Error locates the first rune of s outside ISO 8859-1.
func latin1Error(s string, err error) error {
	e := &Latin1Error{Rune: -1, Offset: -1, Err: err}
	for i := 0; i < len(s); {
		r, n := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && n == 1 {
			e.Offset = i
			break
		}
		if r > 0xff {
			e.Rune, e.Offset = r, i
			break
		}
		i += n
	}
	return e
}

// maxPixels limits the side of rendered images.
const maxPixels = 32767 * 8

// Encode returns a QR code of text configured by opts.  If opts is
// nil, DefaultOptions are used.
func Encode(text string, opts *Options) (*Code, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	o, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	if o.Latin1 {
		s, err := charmap.ISO8859_1.NewEncoder().String(text)
		if err != nil {
			return nil, latin1Error(text, err)
		}
		text = s
	}
	var seg coding.Segment
	if o.Mode == AutoMode {
		seg, err = coding.AutoSegment(text)
	} else {
		seg, err = coding.NewSegment(text, o.Mode)
	}
	if err != nil {
		return nil, err
	}
	minv, maxv := o.versions()
	m, err := coding.Encode(seg, o.Level, minv, maxv, o.Mask)
	if err != nil {
		return nil, err
	}
	if o.LogoWidth != 0 {
		if err := m.SetLogoSpace(o.LogoWidth, o.LogoHeight,
			o.LogoX, o.LogoY); err != nil {
			return nil, err
		}
	}
	if err := m.AddQuietZone(o.QuietZone); err != nil {
		return nil, err
	}
	return &Code{Matrix: m, Scale: 8}, nil
}

// A Code is a QR code matrix with rendering settings.
// Image and the Encode methods render it.
type Code struct {
	*coding.Matrix
	Scale   int             // number of image pixels per module
	Palette *[2]color.Color // light and dark colours; nil for white and black
	Reverse bool            // swap light and dark colours

	// Colors sets colours per module role, overriding Palette.
	// Modules are drawn in the light or dark colour of their role
	// as reported by Black.
	Colors *RoleValues[color.Color]

	Shape      Shape         // SVG module shape
	Radius     float64       // Circle radius in modules, 0 for DefaultRadius
	KeepSquare []coding.Role // roles drawn as squares by Circle
}

// check returns an error if c cannot be rendered.
func (c *Code) check() error {
	if c == nil || c.Matrix == nil || c.Scale <= 0 {
		return ErrArgs
	}
	if c.Scale*c.Size() > maxPixels {
		return ErrLargeImage
	}
	return nil
}

// Black reports whether the module at (x, y) is drawn in the dark
// colour, taking c.Reverse into account.
func (c *Code) Black(x, y int) bool {
	return c.IsDark(x, y) != c.Reverse
}

// colors returns the light and dark colours.
func (c *Code) colors() (light, dark color.Color) {
	light, dark = color.Gray{0xff}, color.Gray{0x00}
	if c.Palette != nil {
		light, dark = c.Palette[0], c.Palette[1]
	}
	return light, dark
}

// Image returns an Image displaying the code.  The image is paletted,
// holding the distinct colours of the role colour table.
func (c *Code) Image() image.Image {
	pal, idx := paletteOf(c.colorTable())
	return &codeImage{c, pal, idx}
}

// codeImage implements image.PalettedImage.
type codeImage struct {
	*Code
	pal color.Palette
	idx *RoleValues[uint8]
}

func (c *codeImage) Bounds() image.Rectangle {
	d := c.Size() * c.Scale
	return image.Rect(0, 0, d, d)
}

func (c *codeImage) ColorIndexAt(x, y int) uint8 {
	if x < 0 || y < 0 || c.Scale <= 0 {
		return c.idx[coding.QuietZone][b2i(c.Reverse)]
	}
	x, y = x/c.Scale, y/c.Scale
	return c.idx[c.Get(x, y).Role()][b2i(c.Black(x, y))]
}

func (c *codeImage) At(x, y int) color.Color {
	return c.pal[c.ColorIndexAt(x, y)]
}

func (c *codeImage) ColorModel() color.Model { return c.pal }

// PNG returns a PNG image displaying the code, or nil on error.
func (c *Code) PNG() []byte {
	var b bytes.Buffer
	if err := c.EncodePNG(&b); err != nil {
		return nil
	}
	return b.Bytes()
}

// EncodePNG writes a PNG image displaying the code to w.
func (c *Code) EncodePNG(w io.Writer) error {
	if w == nil {
		return ErrArgs
	}
	if err := c.check(); err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, c.Image())
}
