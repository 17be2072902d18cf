// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR coding details: capacity
// tables, segment encoding, error correction layout, module placement
// and masking.
package coding // import "github.com/unixdj/qrmatrix/coding"

import (
	"strconv"

	"github.com/unixdj/qrmatrix/gf256"
)

// Field is the field for QR error correction.
var Field = gf256.NewField(0x11d, 2)

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 modules on a side.
// Versions run from 1 to 40: the larger the version, the more
// information the code can store.
type Version int

const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 40 // Maximum QR version
)

// NewVersion returns v as a Version, or ErrVersion if it is out of range.
func NewVersion(v int) (Version, error) {
	if vv := Version(v); vv.IsValid() {
		return vv, nil
	}
	return 0, ErrVersion
}

// IsValid reports whether v is in the range 1 to 40.
func (v Version) IsValid() bool { return MinVersion <= v && v <= MaxVersion }

func (v Version) String() string { return strconv.Itoa(int(v)) }

// Version size classes, selecting the width of character count
// indicators.
const (
	Class0 = iota // versions 1 to 9
	Class1        // versions 10 to 26
	Class2        // versions 27 to 40
)

// sizeClass lists the last version of each size class.
var sizeClass = [3]Version{9, 26, 40}

// SizeClass returns the size class of v, as documented under Class0,
// or ErrVersion.
func (v Version) SizeClass() (int, error) {
	if !v.IsValid() {
		return 0, ErrVersion
	}
	class := 0
	for v > sizeClass[class] {
		class++
	}
	return class, nil
}

// Size returns the number of modules on a side of a code of version v.
func (v Version) Size() int { return int(v)*4 + 17 }

// Alignment returns the alignment pattern centre coordinates of v.
// The same coordinates are used for rows and columns.
func (v Version) Alignment() []int { return vtab[v].align }

// Pattern returns the 18 bit version information of v, or 0 for
// versions below 7, which have none.
func (v Version) Pattern() uint32 { return vtab[v].pattern }

// TotalCodewords returns the number of data and check codewords in v.
func (v Version) TotalCodewords() int { return vtab[v].bytes }

// A Block describes a group of Reed-Solomon blocks of the same size.
type Block struct {
	Count int // number of blocks
	Data  int // data codewords per block
}

// A Blocks describes the Reed-Solomon block layout of a version at a
// level.  Blocks of the second group, if any, carry one data codeword
// more than those of the first.
type Blocks struct {
	Check  int      // check codewords per block
	Groups [2]Block // block groups, in transmission order
}

// Count returns the total number of blocks.
func (b Blocks) Count() int { return b.Groups[0].Count + b.Groups[1].Count }

// DataCodewords returns the total number of data codewords.
func (b Blocks) DataCodewords() int {
	return b.Groups[0].Count*b.Groups[0].Data +
		b.Groups[1].Count*b.Groups[1].Data
}

// Blocks returns the Reed-Solomon block layout of v at level l.
func (v Version) Blocks(l Level) Blocks {
	lev := vtab[v].level[l]
	return Blocks{lev.check, [2]Block{{lev.n1, lev.d1}, {lev.n2, lev.d2}}}
}

// DataBits returns the number of data bits that can be
// stored in a QR code with the given version and level.
func (v Version) DataBits(l Level) int {
	return v.Blocks(l).DataCodewords() * 8
}

// A version describes metadata associated with a version.
type version struct {
	align   []int
	pattern uint32
	bytes   int
	level   [4]level
}

// A level describes the block layout at a level: check codewords per
// block, then count and data codewords of the two block groups.
type level struct {
	check  int
	n1, d1 int
	n2, d2 int
}

// Tables from ISO/IEC 18004:2015, tables 1, 9, E.1 and D.1.
var vtab = [MaxVersion + 1]version{
	1:  {nil, 0, 26, [4]level{{7, 1, 19, 0, 0}, {10, 1, 16, 0, 0}, {13, 1, 13, 0, 0}, {17, 1, 9, 0, 0}}},
	2:  {[]int{6, 18}, 0, 44, [4]level{{10, 1, 34, 0, 0}, {16, 1, 28, 0, 0}, {22, 1, 22, 0, 0}, {28, 1, 16, 0, 0}}},
	3:  {[]int{6, 22}, 0, 70, [4]level{{15, 1, 55, 0, 0}, {26, 1, 44, 0, 0}, {18, 2, 17, 0, 0}, {22, 2, 13, 0, 0}}},
	4:  {[]int{6, 26}, 0, 100, [4]level{{20, 1, 80, 0, 0}, {18, 2, 32, 0, 0}, {26, 2, 24, 0, 0}, {16, 4, 9, 0, 0}}},
	5:  {[]int{6, 30}, 0, 134, [4]level{{26, 1, 108, 0, 0}, {24, 2, 43, 0, 0}, {18, 2, 15, 2, 16}, {22, 2, 11, 2, 12}}},
	6:  {[]int{6, 34}, 0, 172, [4]level{{18, 2, 68, 0, 0}, {16, 4, 27, 0, 0}, {24, 4, 19, 0, 0}, {28, 4, 15, 0, 0}}},
	7:  {[]int{6, 22, 38}, 0x07c94, 196, [4]level{{20, 2, 78, 0, 0}, {18, 4, 31, 0, 0}, {18, 2, 14, 4, 15}, {26, 4, 13, 1, 14}}},
	8:  {[]int{6, 24, 42}, 0x085bc, 242, [4]level{{24, 2, 97, 0, 0}, {22, 2, 38, 2, 39}, {22, 4, 18, 2, 19}, {26, 4, 14, 2, 15}}},
	9:  {[]int{6, 26, 46}, 0x09a99, 292, [4]level{{30, 2, 116, 0, 0}, {22, 3, 36, 2, 37}, {20, 4, 16, 4, 17}, {24, 4, 12, 4, 13}}},
	10: {[]int{6, 28, 50}, 0x0a4d3, 346, [4]level{{18, 2, 68, 2, 69}, {26, 4, 43, 1, 44}, {24, 6, 19, 2, 20}, {28, 6, 15, 2, 16}}},
	11: {[]int{6, 30, 54}, 0x0bbf6, 404, [4]level{{20, 4, 81, 0, 0}, {30, 1, 50, 4, 51}, {28, 4, 22, 4, 23}, {24, 3, 12, 8, 13}}},
	12: {[]int{6, 32, 58}, 0x0c762, 466, [4]level{{24, 2, 92, 2, 93}, {22, 6, 36, 2, 37}, {26, 4, 20, 6, 21}, {28, 7, 14, 4, 15}}},
	13: {[]int{6, 34, 62}, 0x0d847, 532, [4]level{{26, 4, 107, 0, 0}, {22, 8, 37, 1, 38}, {24, 8, 20, 4, 21}, {22, 12, 11, 4, 12}}},
	14: {[]int{6, 26, 46, 66}, 0x0e60d, 581, [4]level{{30, 3, 115, 1, 116}, {24, 4, 40, 5, 41}, {20, 11, 16, 5, 17}, {24, 11, 12, 5, 13}}},
	15: {[]int{6, 26, 48, 70}, 0x0f928, 655, [4]level{{22, 5, 87, 1, 88}, {24, 5, 41, 5, 42}, {30, 5, 24, 7, 25}, {24, 11, 12, 7, 13}}},
	16: {[]int{6, 26, 50, 74}, 0x10b78, 733, [4]level{{24, 5, 98, 1, 99}, {28, 7, 45, 3, 46}, {24, 15, 19, 2, 20}, {30, 3, 15, 13, 16}}},
	17: {[]int{6, 30, 54, 78}, 0x1145d, 815, [4]level{{28, 1, 107, 5, 108}, {28, 10, 46, 1, 47}, {28, 1, 22, 15, 23}, {28, 2, 14, 17, 15}}},
	18: {[]int{6, 30, 56, 82}, 0x12a17, 901, [4]level{{30, 5, 120, 1, 121}, {26, 9, 43, 4, 44}, {28, 17, 22, 1, 23}, {28, 2, 14, 19, 15}}},
	19: {[]int{6, 30, 58, 86}, 0x13532, 991, [4]level{{28, 3, 113, 4, 114}, {26, 3, 44, 11, 45}, {26, 17, 21, 4, 22}, {26, 9, 13, 16, 14}}},
	20: {[]int{6, 34, 62, 90}, 0x149a6, 1085, [4]level{{28, 3, 107, 5, 108}, {26, 3, 41, 13, 42}, {30, 15, 24, 5, 25}, {28, 15, 15, 10, 16}}},
	21: {[]int{6, 28, 50, 72, 94}, 0x15683, 1156, [4]level{{28, 4, 116, 4, 117}, {26, 17, 42, 0, 0}, {28, 17, 22, 6, 23}, {30, 19, 16, 6, 17}}},
	22: {[]int{6, 26, 50, 74, 98}, 0x168c9, 1258, [4]level{{28, 2, 111, 7, 112}, {28, 17, 46, 0, 0}, {30, 7, 24, 16, 25}, {24, 34, 13, 0, 0}}},
	23: {[]int{6, 30, 54, 78, 102}, 0x177ec, 1364, [4]level{{30, 4, 121, 5, 122}, {28, 4, 47, 14, 48}, {30, 11, 24, 14, 25}, {30, 16, 15, 14, 16}}},
	24: {[]int{6, 28, 54, 80, 106}, 0x18ec4, 1474, [4]level{{30, 6, 117, 4, 118}, {28, 6, 45, 14, 46}, {30, 11, 24, 16, 25}, {30, 30, 16, 2, 17}}},
	25: {[]int{6, 32, 58, 84, 110}, 0x191e1, 1588, [4]level{{26, 8, 106, 4, 107}, {28, 8, 47, 13, 48}, {30, 7, 24, 22, 25}, {30, 22, 15, 13, 16}}},
	26: {[]int{6, 30, 58, 86, 114}, 0x1afab, 1706, [4]level{{28, 10, 114, 2, 115}, {28, 19, 46, 4, 47}, {28, 28, 22, 6, 23}, {30, 33, 16, 4, 17}}},
	27: {[]int{6, 34, 62, 90, 118}, 0x1b08e, 1828, [4]level{{30, 8, 122, 4, 123}, {28, 22, 45, 3, 46}, {30, 8, 23, 26, 24}, {30, 12, 15, 28, 16}}},
	28: {[]int{6, 26, 50, 74, 98, 122}, 0x1cc1a, 1921, [4]level{{30, 3, 117, 10, 118}, {28, 3, 45, 23, 46}, {30, 4, 24, 31, 25}, {30, 11, 15, 31, 16}}},
	29: {[]int{6, 30, 54, 78, 102, 126}, 0x1d33f, 2051, [4]level{{30, 7, 116, 7, 117}, {28, 21, 45, 7, 46}, {30, 1, 23, 37, 24}, {30, 19, 15, 26, 16}}},
	30: {[]int{6, 26, 52, 78, 104, 130}, 0x1ed75, 2185, [4]level{{30, 5, 115, 10, 116}, {28, 19, 47, 10, 48}, {30, 15, 24, 25, 25}, {30, 23, 15, 25, 16}}},
	31: {[]int{6, 30, 56, 82, 108, 134}, 0x1f250, 2323, [4]level{{30, 13, 115, 3, 116}, {28, 2, 46, 29, 47}, {30, 42, 24, 1, 25}, {30, 23, 15, 28, 16}}},
	32: {[]int{6, 34, 60, 86, 112, 138}, 0x209d5, 2465, [4]level{{30, 17, 115, 0, 0}, {28, 10, 46, 23, 47}, {30, 10, 24, 35, 25}, {30, 19, 15, 35, 16}}},
	33: {[]int{6, 30, 58, 86, 114, 142}, 0x216f0, 2611, [4]level{{30, 17, 115, 1, 116}, {28, 14, 46, 21, 47}, {30, 29, 24, 19, 25}, {30, 11, 15, 46, 16}}},
	34: {[]int{6, 34, 62, 90, 118, 146}, 0x228ba, 2761, [4]level{{30, 13, 115, 6, 116}, {28, 14, 46, 23, 47}, {30, 44, 24, 7, 25}, {30, 59, 16, 1, 17}}},
	35: {[]int{6, 30, 54, 78, 102, 126, 150}, 0x2379f, 2876, [4]level{{30, 12, 121, 7, 122}, {28, 12, 47, 26, 48}, {30, 39, 24, 14, 25}, {30, 22, 15, 41, 16}}},
	36: {[]int{6, 24, 50, 76, 102, 128, 154}, 0x24b0b, 3034, [4]level{{30, 6, 121, 14, 122}, {28, 6, 47, 34, 48}, {30, 46, 24, 10, 25}, {30, 2, 15, 64, 16}}},
	37: {[]int{6, 28, 54, 80, 106, 132, 158}, 0x2542e, 3196, [4]level{{30, 17, 122, 4, 123}, {28, 29, 46, 14, 47}, {30, 49, 24, 10, 25}, {30, 24, 15, 46, 16}}},
	38: {[]int{6, 32, 58, 84, 110, 136, 162}, 0x26a64, 3362, [4]level{{30, 4, 122, 18, 123}, {28, 13, 46, 32, 47}, {30, 48, 24, 14, 25}, {30, 42, 15, 32, 16}}},
	39: {[]int{6, 26, 54, 82, 110, 138, 166}, 0x27541, 3532, [4]level{{30, 20, 117, 4, 118}, {28, 40, 47, 7, 48}, {30, 43, 24, 22, 25}, {30, 10, 15, 67, 16}}},
	40: {[]int{6, 30, 58, 86, 114, 142, 170}, 0x28c69, 3706, [4]level{{30, 19, 118, 6, 119}, {28, 18, 47, 31, 48}, {30, 34, 24, 34, 25}, {30, 20, 15, 61, 16}}},
}
