// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var qrField = NewField(0x11d, 2)

func TestField(t *testing.T) {
	f := qrField
	assert.Equal(t, byte(1), f.Exp(0))
	assert.Equal(t, byte(2), f.Exp(1))
	assert.Equal(t, byte(0x1d), f.Exp(8))
	assert.Equal(t, byte(1), f.Exp(255))
	assert.Equal(t, -1, f.Log(0))
	for x := 1; x < 256; x++ {
		b := byte(x)
		require.Equal(t, b, f.Exp(f.Log(b)), "exp(log(%d))", x)
		require.Equal(t, byte(1), f.Mul(b, f.Inv(b)), "%d * inv", x)
		require.Equal(t, b, f.Div(f.Mul(b, 7), 7), "%d * 7 / 7", x)
		require.Equal(t, byte(0), f.Mul(b, 0))
	}
	assert.Equal(t, byte(0), f.Add(0x53, 0x53))
	assert.Panics(t, func() { f.Div(1, 0) })
}

func TestNewFieldInvalid(t *testing.T) {
	assert.Panics(t, func() { NewField(0x11c, 2) }) // reducible
	assert.Panics(t, func() { NewField(0xff, 2) })
}

func TestNewPoly(t *testing.T) {
	_, err := qrField.NewPoly(nil, 0)
	assert.ErrorIs(t, err, ErrEmptyCoefficients)
	_, err = qrField.NewPoly([]byte{1}, -1)
	assert.ErrorIs(t, err, ErrNegativeDegree)

	p, err := qrField.NewPoly([]byte{0, 0, 3, 1}, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Degree())
	assert.Equal(t, []byte{3, 1, 0, 0}, p.Coefficients())
	assert.Equal(t, byte(3), p.Coefficient(3))
	assert.Equal(t, byte(0), p.Coefficient(4))

	z, err := qrField.NewPoly([]byte{0, 0}, 3)
	require.NoError(t, err)
	assert.True(t, z.IsZero())
	assert.Equal(t, 0, z.Degree())
}

func TestPolyMultiplyMod(t *testing.T) {
	f := qrField
	a, _ := f.NewPoly([]byte{1, 2}, 0)
	b, _ := f.NewPoly([]byte{1, 3}, 0)
	// (x+2)(x+3) = x² + (2^3)x + 2*3 = x² + x + 6
	prod := a.Multiply(b)
	assert.Equal(t, []byte{1, 1, 6}, prod.Coefficients())
	assert.True(t, prod.Mod(a).IsZero())
	assert.True(t, prod.Mod(b).IsZero())

	c, _ := f.NewPoly([]byte{1, 1, 7}, 0)
	assert.Equal(t, []byte{1}, c.Mod(prod).Coefficients())
	assert.Equal(t, c.Coefficients(), c.Mod(a.Multiply(prod)).Coefficients())
}

func TestGen(t *testing.T) {
	g := qrField.Gen(7)
	var logs []int
	for _, c := range g.Coefficients() {
		logs = append(logs, qrField.Log(c))
	}
	assert.Equal(t, []int{0, 87, 229, 146, 149, 238, 102, 21}, logs)
}

func TestGenCache(t *testing.T) {
	f := NewField(0x11d, 2)
	var wg sync.WaitGroup
	gens := make([]Poly, 8)
	for i := range gens {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			gens[i] = f.Gen(30 - i)
		}()
	}
	wg.Wait()
	require.Len(t, f.gens, 31)
	for i, g := range gens {
		assert.Equal(t, 30-i, g.Degree())
		assert.Equal(t, f.gens[30-i], g)
	}

	// a smaller degree is served from the cache
	g7 := f.Gen(7)
	assert.Len(t, f.gens, 31)
	assert.Equal(t, qrField.Gen(7).Coefficients(), g7.Coefficients())
	assert.Equal(t, byte(1), f.Gen(0).Coefficient(0))
	assert.Panics(t, func() { f.Gen(-1) })
}

func TestECC(t *testing.T) {
	// HELLO WORLD, version 1, level M
	data := []byte{32, 91, 11, 120, 209, 114, 220, 77, 67, 64,
		236, 17, 236, 17, 236, 17}
	check := make([]byte, 10)
	NewRSEncoder(qrField, 10).ECC(data, check)
	assert.Equal(t, []byte{196, 35, 39, 119, 235, 215, 231, 226, 93, 23},
		check)

	// check bytes make the codeword divisible by the generator
	cw, _ := qrField.NewPoly(append(append([]byte(nil), data...), check...), 0)
	assert.True(t, cw.Mod(qrField.Gen(10)).IsZero())
}
