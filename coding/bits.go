// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Bits is an append-only bit buffer.  Bits are stored MSB first.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns Bits with enough capacity for the codewords of
// version v.
func NewBits(v Version) *Bits {
	n := 0
	if v.IsValid() {
		n = v.TotalCodewords()
	}
	return &Bits{b: make([]byte, 0, n)}
}

// Reset empties b.
func (b *Bits) Reset() {
	b.b = b.b[:0]
	b.nbit = 0
}

// Bits returns the number of bits written to b.
func (b *Bits) Bits() int { return b.nbit }

// Bytes returns the bytes of b.  The last byte is padded with zero
// bits if b does not end on a byte boundary.
func (b *Bits) Bytes() []byte { return b.b }

// WriteBit appends one bit to b.
func (b *Bits) WriteBit(bit bool) {
	if b.nbit&7 == 0 {
		b.b = append(b.b, 0)
	}
	if bit {
		b.b[len(b.b)-1] |= 0x80 >> (b.nbit & 7)
	}
	b.nbit++
}

// Write appends the low nbit bits of v to b, most significant first.
func (b *Bits) Write(v uint32, nbit int) {
	for i := nbit - 1; i >= 0; i-- {
		b.WriteBit(v>>i&1 != 0)
	}
}

// WriteBytes appends whole bytes to b.
func (b *Bits) WriteBytes(p []byte) {
	if b.nbit&7 == 0 {
		b.b = append(b.b, p...)
		b.nbit += len(p) * 8
		return
	}
	for _, c := range p {
		b.Write(uint32(c), 8)
	}
}

// pad appends the terminator, zero bits up to the byte boundary and
// alternating pad codewords until b holds n bits.  n must be a
// multiple of 8 not less than b.Bits().
func (b *Bits) pad(n int) {
	b.Write(0, min(4, n-b.nbit))
	b.Write(0, -b.nbit&7)
	for p := uint32(0xec); b.nbit < n; p ^= 0xec ^ 0x11 {
		b.Write(p, 8)
	}
}

// BitStream reads bits from the underlying buffer.
type BitStream struct {
	b   []byte
	pos int
}

// NewBitStream returns a BitStream reading from b.
func NewBitStream(b []byte) BitStream { return BitStream{b: b} }

// Bytes returns the data underlying s.
func (s *BitStream) Bytes() []byte { return s.b }

// Next returns the next bit from s as 0 or 1.
// Past end of buffer Next returns 0.
func (s *BitStream) Next() byte {
	var b byte
	if i := s.pos >> 3; i < len(s.b) {
		b = s.b[i] >> (7 &^ s.pos) & 1
		s.pos++
	}
	return b
}
