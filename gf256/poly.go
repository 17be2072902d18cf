// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

import "errors"

var (
	ErrEmptyCoefficients = errors.New("gf256: empty coefficients")
	ErrNegativeDegree    = errors.New("gf256: negative degree")
)

// A Poly is a polynomial over a Field with coefficients stored most
// significant first.  The leading coefficient of a non-constant Poly
// is never zero.  Poly values are immutable: every operation returns
// a fresh Poly.
type Poly struct {
	f *Field
	c []byte
}

// NewPoly returns the polynomial with the given coefficients, most
// significant first, multiplied by x^degree.  Leading zero
// coefficients are dropped.
func (f *Field) NewPoly(coeff []byte, degree int) (Poly, error) {
	if len(coeff) == 0 {
		return Poly{}, ErrEmptyCoefficients
	}
	if degree < 0 {
		return Poly{}, ErrNegativeDegree
	}
	return f.poly(coeff, degree), nil
}

// poly is NewPoly for trusted arguments.
func (f *Field) poly(coeff []byte, degree int) Poly {
	i := 0
	for i < len(coeff) && coeff[i] == 0 {
		i++
	}
	if i == len(coeff) {
		return Poly{f, []byte{0}}
	}
	c := make([]byte, len(coeff)-i+degree)
	copy(c, coeff[i:])
	return Poly{f, c}
}

// Degree returns the degree of p.  The zero polynomial has degree 0.
func (p Poly) Degree() int { return len(p.c) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool { return p.c[0] == 0 }

// Coefficient returns the coefficient of x^degree in p.
func (p Poly) Coefficient(degree int) byte {
	if degree < 0 || degree >= len(p.c) {
		return 0
	}
	return p.c[len(p.c)-1-degree]
}

// Coefficients returns a copy of the coefficients of p, most
// significant first.
func (p Poly) Coefficients() []byte {
	return append([]byte(nil), p.c...)
}

// Multiply returns p*q.
func (p Poly) Multiply(q Poly) Poly {
	if p.IsZero() || q.IsZero() {
		return Poly{p.f, []byte{0}}
	}
	prod := make([]byte, len(p.c)+len(q.c)-1)
	for i, a := range p.c {
		for j, b := range q.c {
			prod[i+j] ^= p.f.Mul(a, b)
		}
	}
	return p.f.poly(prod, 0)
}

// Mod returns the remainder of p divided by q.  Mod panics if q is
// the zero polynomial.
func (p Poly) Mod(q Poly) Poly {
	if q.IsZero() {
		panic("gf256: division by zero polynomial")
	}
	r := append([]byte(nil), p.c...)
	for len(r) >= len(q.c) && r[0] != 0 {
		ratio := p.f.Div(r[0], q.c[0])
		for i, v := range q.c {
			r[i] ^= p.f.Mul(v, ratio)
		}
		// r[0] is now zero; drop it and any further leading zeros
		n := 1
		for n < len(r) && r[n] == 0 {
			n++
		}
		r = r[n:]
		if len(r) == 0 {
			r = []byte{0}
		}
	}
	return Poly{p.f, r}
}
