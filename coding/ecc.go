// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "github.com/unixdj/qrmatrix/gf256"

// Interleave splits data into the Reed-Solomon blocks of version v
// at level l, computes the check codewords of each block and returns
// data and check codewords in transmission order: the first data
// codeword of every block, then the second, and so on, followed by
// the check codewords in the same manner.  data must hold exactly
// v.Blocks(l).DataCodewords() codewords.
func Interleave(data []byte, v Version, l Level) []byte {
	bl := v.Blocks(l)
	if len(data) != bl.DataCodewords() {
		panic("qr: wrong data length")
	}
	rs := gf256.NewRSEncoder(Field, bl.Check)
	n := bl.Count()
	blocks := make([][]byte, 0, n)
	checks := make([][]byte, 0, n)
	check := make([]byte, n*bl.Check)
	for _, g := range bl.Groups {
		for i := 0; i < g.Count; i++ {
			d, c := data[:g.Data], check[:bl.Check]
			data, check = data[g.Data:], check[bl.Check:]
			rs.ECC(d, c)
			blocks = append(blocks, d)
			checks = append(checks, c)
		}
	}

	out := make([]byte, 0, v.TotalCodewords())
	for i := 0; i < len(blocks[n-1]); i++ {
		for _, d := range blocks {
			// blocks of the first group are one codeword shorter
			if i < len(d) {
				out = append(out, d[i])
			}
		}
	}
	for i := 0; i < bl.Check; i++ {
		for _, c := range checks {
			out = append(out, c[i])
		}
	}
	if len(out) != v.TotalCodewords() {
		panic("qr: internal error")
	}
	return out
}
