// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Encoder holds the bit stream of a segment encoded for a version
// and level.
type Encoder struct {
	v   Version
	l   Level
	seg Segment
	b   *Bits
}

// NewEncoder encodes seg at level l in the smallest version from
// minv to maxv that fits it.  If minv equals maxv, that version is
// used.  The bit stream is terminated and padded to the data
// capacity of the version.
func NewEncoder(seg Segment, l Level, minv, maxv Version) (*Encoder, error) {
	if !l.IsValid() {
		return nil, ErrLevel
	}
	if !minv.IsValid() || !maxv.IsValid() || minv > maxv {
		return nil, ErrVersion
	}
	if !seg.IsValid() {
		return nil, SegmentError(seg)
	}
	v, err := chooseVersion(seg, l, minv, maxv)
	if err != nil {
		return nil, err
	}
	e := &Encoder{v: v, l: l, seg: seg, b: NewBits(v)}
	if err := seg.Encode(e.b, v); err != nil {
		return nil, err
	}
	if n := v.DataBits(l); e.b.Bits() > n {
		return nil, &OverflowError{e.b.Bits(), n, v, l}
	}
	e.b.pad(v.DataBits(l))
	return e, nil
}

// chooseVersion returns the smallest version from minv to maxv with
// room for seg at level l.  The first pass estimates with the
// character count width of minv, the second pass checks the exact
// length in each candidate version.
func chooseVersion(seg Segment, l Level, minv, maxv Version) (Version, error) {
	if minv == maxv {
		return minv, nil
	}
	cb, err := seg.Mode.CountBits(minv)
	if err != nil {
		return 0, err
	}
	est := 4 + cb + seg.Mode.Length(len(seg.Text))
	v := minv
	for v < maxv && est > v.DataBits(l) {
		v++
	}
	for ; v <= maxv; v++ {
		n, err := seg.EncodedLength(v)
		if err != nil {
			return 0, err
		}
		if n <= v.DataBits(l) {
			return v, nil
		}
	}
	n, _ := seg.EncodedLength(maxv)
	return 0, &OverflowError{Bits: n, Capacity: maxv.DataBits(l), Level: l}
}

// Version returns the chosen version.
func (e *Encoder) Version() Version { return e.v }

// Level returns the error correction level.
func (e *Encoder) Level() Level { return e.l }

// Segment returns the encoded segment.
func (e *Encoder) Segment() Segment { return e.seg }

// Bits returns the padded data bit stream.
func (e *Encoder) Bits() *Bits { return e.b }

// Codewords returns data and check codewords in transmission order.
func (e *Encoder) Codewords() []byte {
	return Interleave(e.b.Bytes(), e.v, e.l)
}

// Matrix returns an unmasked matrix with functional patterns and
// codewords placed.
func (e *Encoder) Matrix() *Matrix {
	m, err := NewMatrix(e.v, e.l)
	if err != nil {
		panic("qr: internal error")
	}
	m.InitFunctionalPatterns()
	m.WriteCodewords(NewBitStream(e.Codewords()))
	return m
}

// Code returns a masked matrix.  If mask is AutoMask, the mask with
// the lowest penalty is used.
func (e *Encoder) Code(mask Mask) (*Matrix, error) {
	if mask != AutoMask && !mask.IsValid() {
		return nil, ErrMask
	}
	m := e.Matrix()
	if mask == AutoMask {
		var err error
		if mask, _, err = m.BestMask(); err != nil {
			return nil, err
		}
	}
	if err := m.Mask(mask); err != nil {
		return nil, err
	}
	return m, nil
}

// Encode is a wrapper around NewEncoder and Encoder.Code.
func Encode(seg Segment, l Level, minv, maxv Version, mask Mask) (*Matrix, error) {
	e, err := NewEncoder(seg, l, minv, maxv)
	if err != nil {
		return nil, err
	}
	return e.Code(mask)
}
