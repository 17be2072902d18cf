// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "strconv"

// A Mask is a QR data mask pattern, 0 to 7.
type Mask int

// AutoMask requests the mask with the lowest penalty.
const AutoMask Mask = -1

// NewMask returns m as a Mask, or ErrMask if it is out of range.
func NewMask(m int) (Mask, error) {
	if mm := Mask(m); mm.IsValid() {
		return mm, nil
	}
	return 0, ErrMask
}

// IsValid reports whether m is in the range 0 to 7.
func (m Mask) IsValid() bool { return m&7 == m }

func (m Mask) String() string {
	if m == AutoMask {
		return "auto"
	}
	return strconv.Itoa(int(m))
}

// maskFunc holds the mask conditions of ISO/IEC 18004:2015 table 10,
// with x the column and y the row.  A module is flipped where the
// condition holds.
var maskFunc = [8]func(x, y int) bool{
	func(x, y int) bool { return (x+y)%2 == 0 },
	func(x, y int) bool { return y%2 == 0 },
	func(x, y int) bool { return x%3 == 0 },
	func(x, y int) bool { return (x+y)%3 == 0 },
	func(x, y int) bool { return (y/2+x/3)%2 == 0 },
	func(x, y int) bool { return x*y%6 == 0 },
	func(x, y int) bool { return x*y%6 < 3 },
	func(x, y int) bool { return (x+y+x*y%3)%2 == 0 },
}

// At reports whether mask m flips the module at column x, row y.
// Coordinates are relative to the symbol, excluding the quiet zone.
func (m Mask) At(x, y int) bool { return maskFunc[m](x, y) }

// Penalty scoring, ISO/IEC 18004:2015 section 7.8.3.1.
//
//   - RunP: for runs of n same-colour modules, n>=5 -> n-2
//   - BoxP: for possibly overlapping 2x2 boxes -> 3
//   - FindP: for 1011101 with 4 light modules on either side
//     within the symbol, in rows and columns -> 40
//   - BalP: for n% of dark modules -> 10*floor(abs(n-50)/5)
const (
	MinRun  = 5  // RunP:  minimum run length
	RunPP   = 3  // RunP:  points for a run of MinRun
	BoxPP   = 3  // BoxP:  points per box
	FindPP  = 40 // FindP: points per pattern
	BalPP   = 10 // BalP:  points for every 5% off balance
	findLen = 7  // FindP: pattern length
	findGap = 4  // FindP: light modules before or after
)

// Penalty returns the total penalty of a square grid of modules,
// true being dark.
func Penalty(grid [][]bool) int {
	return PenaltyRuns(grid) + PenaltyBoxes(grid) +
		PenaltyFinders(grid) + PenaltyBalance(grid)
}

// column returns column x of grid.
func column(grid [][]bool, x int, buf []bool) []bool {
	buf = buf[:0]
	for _, row := range grid {
		buf = append(buf, row[x])
	}
	return buf
}

// PenaltyRuns returns the penalty for runs of same-colour modules in
// rows and columns.
func PenaltyRuns(grid [][]bool) int {
	p := 0
	for _, row := range grid {
		p += penaltyRun(row)
	}
	col := make([]bool, 0, len(grid))
	for x := range grid {
		col = column(grid, x, col)
		p += penaltyRun(col)
	}
	return p
}

// penaltyRun returns the run penalty for a single line.
func penaltyRun(line []bool) int {
	p, r := 0, 0
	for i, v := range line {
		if i == 0 || v != line[i-1] {
			if r >= MinRun {
				p += RunPP + r - MinRun
			}
			r = 0
		}
		r++
	}
	if r >= MinRun {
		p += RunPP + r - MinRun
	}
	return p
}

// PenaltyBoxes returns the penalty for 2x2 boxes of the same colour.
func PenaltyBoxes(grid [][]bool) int {
	n := 0
	for y := 1; y < len(grid); y++ {
		prev, row := grid[y-1], grid[y]
		for x := 1; x < len(row); x++ {
			v := row[x]
			if v == row[x-1] && v == prev[x] && v == prev[x-1] {
				n++
			}
		}
	}
	return n * BoxPP
}

// PenaltyFinders returns the penalty for finder-like patterns in rows
// and columns.
func PenaltyFinders(grid [][]bool) int {
	n := 0
	for _, row := range grid {
		n += findPatterns(row)
	}
	col := make([]bool, 0, len(grid))
	for x := range grid {
		col = column(grid, x, col)
		n += findPatterns(col)
	}
	return n * FindPP
}

// findPattern is the 1:1:3:1:1 finder pattern.
var findPattern = [findLen]bool{true, false, true, true, true, false, true}

// findPatterns counts finder-like patterns in a line.
func findPatterns(line []bool) int {
	n := 0
	for i := 0; i+findLen <= len(line); i++ {
		if !match(line[i:i+findLen], findPattern[:]) {
			continue
		}
		if light(line, i-findGap, i) || light(line, i+findLen, i+findLen+findGap) {
			n++
		}
	}
	return n
}

func match(a, b []bool) bool {
	for i := range b {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// light reports whether line[from:to] is within the line and light.
func light(line []bool, from, to int) bool {
	if from < 0 || to > len(line) {
		return false
	}
	for _, v := range line[from:to] {
		if v {
			return false
		}
	}
	return true
}

// PenaltyBalance returns the penalty for the dark module ratio.
func PenaltyBalance(grid [][]bool) int {
	dark, total := 0, 0
	for _, row := range grid {
		total += len(row)
		for _, v := range row {
			if v {
				dark++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return abs(dark*2-total) * 10 / total * BalPP
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
