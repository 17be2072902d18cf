// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"io"
	"strings"
)

// halfBlocks are indexed by 2 for a black top module plus 1 for a
// black bottom module.  Light modules are printed, to display on
// terminals with light text on dark background.
var halfBlocks = [4]string{"█", "▀", "▄", " "}

// String returns the code drawn with UTF-8 half blocks, two rows of
// modules per line.
func (c *Code) String() string {
	var b strings.Builder
	c.EncodeUTF8(&b)
	return b.String()
}

// EncodeUTF8 writes the code to w drawn with UTF-8 half blocks, as
// documented under String.
func (c *Code) EncodeUTF8(w io.Writer) error {
	if c == nil || c.Matrix == nil {
		return ErrArgs
	}
	b := bufio.NewWriter(w)
	siz := c.Size()
	for y := 0; y < siz; y += 2 {
		for x := 0; x < siz; x++ {
			n := 0
			if c.Black(x, y) {
				n = 2
			}
			if c.Black(x, y+1) {
				n++
			}
			b.WriteString(halfBlocks[n])
		}
		b.WriteByte('\n')
	}
	return b.Flush()
}

// EncodeText writes the code to w, one row of modules per line, each
// module drawn as its value in v.
func (c *Code) EncodeText(w io.Writer, v *RoleValues[string]) error {
	if c == nil || c.Matrix == nil || v == nil {
		return ErrArgs
	}
	b := bufio.NewWriter(w)
	siz := c.Size()
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; x++ {
			b.WriteString(v[c.Get(x, y).Role()][b2i(c.Black(x, y))])
		}
		b.WriteByte('\n')
	}
	return b.Flush()
}

// EncodeASCII writes the code to w with "##" for dark and two spaces
// for light modules.
func (c *Code) EncodeASCII(w io.Writer) error {
	return c.EncodeText(w, NewRoleValues("  ", "##"))
}
