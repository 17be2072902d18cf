// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"io"
	"strconv"
)

// EncodePBM writes a Portable Bit Map image displaying the code to w,
// for use with netpbm.  EncodePBM disregards c.Palette, as other PNM
// formats are not supported.
func (c *Code) EncodePBM(w io.Writer) error {
	if err := c.check(); err != nil {
		return err
	}
	b := bufio.NewWriter(w)
	siz := c.Size()
	scale := c.Scale
	length := scale * siz
	ls := strconv.Itoa(length)
	if _, err := b.WriteString("P4\n" + ls + " " + ls + "\n"); err != nil {
		return err
	}
	row := make([]byte, (length+7)/8)
	for y := 0; y < siz; y++ {
		clear(row)
		pbmRow(row, c, y, scale)
		for i := 0; i < scale; i++ {
			if _, err := b.Write(row); err != nil {
				return err
			}
		}
	}
	return b.Flush()
}

// pbmRow encodes row y of the code in PBM format, 1 being black.
func pbmRow(row []byte, c *Code, y, scale int) {
	for x, px := 0, 0; x < c.Size(); x++ {
		if !c.Black(x, y) {
			px += scale
			continue
		}
		for end := px + scale; px < end; px++ {
			row[px>>3] |= 0x80 >> (px & 7)
		}
	}
}
