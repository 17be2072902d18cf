// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"image"
	"image/draw"
	"io"

	"github.com/signintech/gopdf"
)

// EncodePDF writes a single page PDF document displaying the code to
// w.  The page is c.Size()*c.Scale points on a side.
func (c *Code) EncodePDF(w io.Writer) error {
	if err := c.check(); err != nil {
		return err
	}
	src := c.Image()
	b := src.Bounds()
	var img draw.Image = image.NewGray(b)
	if c.Palette != nil || c.Colors != nil {
		img = image.NewRGBA(b)
	}
	draw.Draw(img, b, src, image.Point{}, draw.Src)

	pdf := gopdf.GoPdf{}
	rect := gopdf.Rect{W: float64(b.Dx()), H: float64(b.Dy())}
	pdf.Start(gopdf.Config{Unit: gopdf.UnitPT, PageSize: rect})
	pdf.AddPage()
	if err := pdf.ImageFrom(img, 0, 0, &rect); err != nil {
		return err
	}
	return pdf.Write(w)
}
