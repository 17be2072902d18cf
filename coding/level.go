// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"strconv"
	"strings"
)

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // 7% recovery
	M              // 15% recovery
	Q              // 25% recovery
	H              // 30% recovery
)

// levelBits maps Level to its 2 bit format indicator.
var levelBits = [4]uint32{L: 0b01, M: 0b00, Q: 0b11, H: 0b10}

// LevelFromBits returns the Level with the 2 bit format indicator b.
func LevelFromBits(b int) (Level, error) {
	for l, v := range levelBits {
		if int(v) == b {
			return Level(l), nil
		}
	}
	return 0, ErrLevel
}

// ParseLevel parses a level name, one of L, M, Q and H in either case.
func ParseLevel(s string) (Level, error) {
	if len(s) == 1 {
		if n := strings.IndexByte("lmqhLMQH", s[0]); n >= 0 {
			return Level(n & 3), nil
		}
	}
	return 0, ErrLevel
}

// IsValid reports whether l is one of L, M, Q and H.
func (l Level) IsValid() bool { return L <= l && l <= H }

func (l Level) String() string {
	if l.IsValid() {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// Bits returns the 2 bit format indicator of l.
func (l Level) Bits() uint32 { return levelBits[l] }

// FormatPattern returns the 15 bit BCH-coded and masked format
// information for l and mask m.
func (l Level) FormatPattern(m Mask) uint16 { return ftab[l][m] }

// MaxBits returns the data capacity in bits of version v at level l.
func (l Level) MaxBits(v Version) int { return v.DataBits(l) }

// Format information, indexed by level and mask.
var ftab = [4][8]uint16{
	{0x77c4, 0x72f3, 0x7daa, 0x789d, 0x662f, 0x6318, 0x6c41, 0x6976}, // L
	{0x5412, 0x5125, 0x5e7c, 0x5b4b, 0x45f9, 0x40ce, 0x4f97, 0x4aa0}, // M
	{0x355f, 0x3068, 0x3f31, 0x3a06, 0x24b4, 0x2183, 0x2eda, 0x2bed}, // Q
	{0x1689, 0x13be, 0x1ce7, 0x19d0, 0x0762, 0x0255, 0x0d0c, 0x083b}, // H
}
