// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"
	"strings"
)

// A Mode is a QR segment encoding mode.
type Mode int

// Encoding modes.
const (
	Numeric      Mode = iota // digits 0-9
	Alphanumeric             // 0-9 A-Z SPACE $%*+-./:
	Byte                     // any bytes
)

// modeEncoder implements a QR segment encoding.
type modeEncoder struct {
	name      string // name for error reporting
	indicator byte   // 4 bit mode indicator

	// countLength lists lengths of the character count field in the
	// three version size classes.
	countLength [3]byte

	// valid reports whether a byte may appear in the segment.
	valid func(byte) bool

	// length returns the encoded length in bits of n characters,
	// excluding the header.
	length func(n int) int

	// encode writes the characters to b.
	encode func(b *Bits, s string)
}

// Alphanumeric encoding table.
const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
func isAlpha(c byte) bool { return strings.IndexByte(alphabet, c) >= 0 }

var modes = [...]modeEncoder{
	Numeric: {
		name:        "numeric",
		indicator:   0b0001,
		countLength: [3]byte{10, 12, 14},
		valid:       isDigit,
		length: func(n int) int {
			return n/3*10 + [3]int{0, 4, 7}[n%3]
		},
		encode: func(b *Bits, s string) {
			for len(s) > 0 {
				n := min(3, len(s))
				v := uint32(0)
				for i := 0; i < n; i++ {
					v = v*10 + uint32(s[i]-'0')
				}
				b.Write(v, [4]int{0, 4, 7, 10}[n])
				s = s[n:]
			}
		},
	},
	Alphanumeric: {
		name:        "alphanumeric",
		indicator:   0b0010,
		countLength: [3]byte{9, 11, 13},
		valid:       isAlpha,
		length: func(n int) int {
			return n/2*11 + n%2*6
		},
		encode: func(b *Bits, s string) {
			for ; len(s) >= 2; s = s[2:] {
				v := strings.IndexByte(alphabet, s[0])*45 +
					strings.IndexByte(alphabet, s[1])
				b.Write(uint32(v), 11)
			}
			if len(s) == 1 {
				b.Write(uint32(strings.IndexByte(alphabet, s[0])), 6)
			}
		},
	},
	Byte: {
		name:        "byte",
		indicator:   0b0100,
		countLength: [3]byte{8, 16, 16},
		valid:       func(byte) bool { return true },
		length:      func(n int) int { return n * 8 },
		encode:      func(b *Bits, s string) { b.WriteBytes([]byte(s)) },
	},
}

func (mode Mode) encoder() *modeEncoder {
	if 0 <= mode && int(mode) < len(modes) {
		return &modes[mode]
	}
	return nil
}

func (mode Mode) String() string {
	if m := mode.encoder(); m != nil {
		return m.name
	}
	return fmt.Sprintf("Mode(%d)", int(mode))
}

// Valid reports whether s is a non-empty string encodable in mode.
func (mode Mode) Valid(s string) bool {
	m := mode.encoder()
	if m == nil || s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !m.valid(s[i]) {
			return false
		}
	}
	return true
}

// Length returns the encoded length in bits of n characters in mode,
// excluding the mode indicator and character count.
func (mode Mode) Length(n int) int {
	if m := mode.encoder(); m != nil {
		return m.length(n)
	}
	return 0
}

// CountBits returns the width of the character count indicator of
// mode in version v, or ErrVersion.
func (mode Mode) CountBits(v Version) (int, error) {
	m := mode.encoder()
	if m == nil {
		return 0, SegmentError{Mode: mode}
	}
	class, err := v.SizeClass()
	if err != nil {
		return 0, err
	}
	return int(m.countLength[class]), nil
}

// A Segment is a string encoded in a single mode.
type Segment struct {
	Text string // data to encode
	Mode Mode   // encoding mode
}

// NewSegment returns a segment of text in mode, or a SegmentError.
func NewSegment(text string, mode Mode) (Segment, error) {
	seg := Segment{text, mode}
	if !seg.IsValid() {
		return Segment{}, SegmentError(seg)
	}
	return seg, nil
}

// AutoSegment returns a segment of text in the first of Numeric,
// Alphanumeric and Byte modes that accepts it.
func AutoSegment(text string) (Segment, error) {
	for mode := Numeric; mode <= Byte; mode++ {
		if mode.Valid(text) {
			return Segment{text, mode}, nil
		}
	}
	return Segment{}, SegmentError{text, Byte}
}

// IsValid reports whether seg is encodable.
func (seg Segment) IsValid() bool { return seg.Mode.Valid(seg.Text) }

// EncodedLength returns the encoded length in bits of seg in version
// v, including the mode indicator and character count.  The segment
// is not validated.
func (seg Segment) EncodedLength(v Version) (int, error) {
	cb, err := seg.Mode.CountBits(v)
	if err != nil {
		return 0, err
	}
	return 4 + cb + seg.Mode.Length(len(seg.Text)), nil
}

// Encode writes seg encoded for version v to b.
func (seg Segment) Encode(b *Bits, v Version) error {
	if !seg.IsValid() {
		return SegmentError(seg)
	}
	cb, err := seg.Mode.CountBits(v)
	if err != nil {
		return err
	}
	m := seg.Mode.encoder()
	b.Write(uint32(m.indicator), 4)
	b.Write(uint32(len(seg.Text)), cb)
	m.encode(b, seg.Text)
	return nil
}
