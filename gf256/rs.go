// Copyright 2010 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

// An RSEncoder implements Reed-Solomon encoding
// over a given field using a given number of error correction bytes.
type RSEncoder struct {
	f   *Field
	c   int
	gen Poly
}

// Gen returns the Reed-Solomon generator polynomial of degree e,
// the product of (x - α^i) for i in [0, e).  Generators are built
// incrementally and cached in f.
func (f *Field) Gen(e int) Poly {
	if e < 0 {
		panic("gf256: negative generator degree")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.gens) == 0 {
		f.gens = append(f.gens, f.poly([]byte{1}, 0))
	}
	for d := len(f.gens); d <= e; d++ {
		last := f.gens[d-1]
		f.gens = append(f.gens, last.Multiply(f.poly([]byte{1, f.Exp(d - 1)}, 0)))
	}
	return f.gens[e]
}

// NewRSEncoder returns a new Reed-Solomon encoder
// over the given field and number of error correction bytes.
func NewRSEncoder(f *Field, c int) *RSEncoder {
	return &RSEncoder{f: f, c: c, gen: f.Gen(c)}
}

// ECC writes to check the error correcting code bytes
// for data using the given Reed-Solomon parameters.
func (rs *RSEncoder) ECC(data []byte, check []byte) {
	if len(check) < rs.c {
		panic("gf256: invalid check byte length")
	}
	check = check[:rs.c]
	clear(check)
	if rs.c == 0 || len(data) == 0 {
		return
	}
	p := rs.f.poly(data, rs.c).Mod(rs.gen)
	copy(check[rs.c-len(p.c):], p.c)
}
