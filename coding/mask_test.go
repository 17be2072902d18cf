// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// grid parses rows of '1' (dark) and '0' (light).
func grid(rows ...string) [][]bool {
	g := make([][]bool, len(rows))
	for y, r := range rows {
		g[y] = make([]bool, len(r))
		for x := range r {
			g[y][x] = r[x] == '1'
		}
	}
	return g
}

func line(s string) []bool { return grid(s)[0] }

func TestNewMask(t *testing.T) {
	for i := 0; i < 8; i++ {
		m, err := NewMask(i)
		require.NoError(t, err)
		assert.Equal(t, Mask(i), m)
	}
	for _, i := range []int{-1, 8} {
		_, err := NewMask(i)
		assert.ErrorIs(t, err, ErrMask)
	}
	assert.Equal(t, "auto", AutoMask.String())
	assert.False(t, AutoMask.IsValid())
}

func TestMaskAt(t *testing.T) {
	var rows []string
	for y := 0; y < 6; y++ {
		var b strings.Builder
		for x := 0; x < 6; x++ {
			if Mask(0).At(x, y) {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		rows = append(rows, b.String())
	}
	assert.Equal(t, []string{
		"101010", "010101", "101010", "010101", "101010", "010101",
	}, rows)

	for _, tc := range []struct {
		m    Mask
		x, y int
		want bool
	}{
		{1, 3, 0, true}, {1, 3, 1, false},
		{2, 3, 5, true}, {2, 4, 5, false},
		{3, 1, 2, true}, {3, 1, 1, false},
		{4, 3, 0, false}, {4, 3, 2, true},
		{5, 2, 3, true}, {5, 1, 1, false},
		{6, 1, 1, true}, {6, 2, 2, false},
		{7, 0, 0, true}, {7, 0, 2, true}, {7, 1, 1, false},
	} {
		assert.Equal(t, tc.want, tc.m.At(tc.x, tc.y),
			"mask %d at %d,%d", tc.m, tc.x, tc.y)
	}
}

func TestPenaltyRuns(t *testing.T) {
	for _, tc := range []struct {
		line string
		want int
	}{
		{"1111", 0},
		{"11111", 3},
		{"111111", 4},
		{"0000011111", 6},
		{"1010101010", 0},
		{"10000001", 4},
	} {
		assert.Equal(t, tc.want, penaltyRun(line(tc.line)), tc.line)
	}
	// five dark in a row and in a column
	g := grid(
		"11111",
		"10000",
		"10101",
		"10010",
		"10100",
	)
	assert.Equal(t, 6, PenaltyRuns(g))
}

func TestPenaltyBoxes(t *testing.T) {
	assert.Equal(t, 3, PenaltyBoxes(grid("00", "00")))
	assert.Equal(t, 12, PenaltyBoxes(grid("111", "111", "111")))
	assert.Equal(t, 0, PenaltyBoxes(grid("10", "01")))
	assert.Equal(t, 3, PenaltyBoxes(grid("110", "110", "001")))
}

func TestPenaltyFinders(t *testing.T) {
	for _, tc := range []struct {
		line string
		want int
	}{
		{"00001011101", 1},
		{"10111010000", 1},
		{"0000101110100001", 1},
		{"1011101", 0},
		{"00010111010001", 0},
		{"000010111010000101110100001", 2},
		{"00001011100", 0},
	} {
		assert.Equal(t, tc.want, findPatterns(line(tc.line)), tc.line)
	}
	row := "00001011101"
	g := make([]string, len(row))
	for i := range g {
		g[i] = strings.Repeat("0", len(row))
	}
	g[0] = row
	assert.Equal(t, FindPP, PenaltyFinders(grid(g...)))
}

func TestPenaltyBalance(t *testing.T) {
	assert.Equal(t, 0, PenaltyBalance(grid("10", "01")))
	assert.Equal(t, 100, PenaltyBalance(grid("11", "11")))
	assert.Equal(t, 100, PenaltyBalance(grid("00", "00")))
	// 6 of 10 dark: 60% -> 20
	assert.Equal(t, 20, PenaltyBalance(grid("11111", "10000")))
	assert.Equal(t, 0, PenaltyBalance(nil))
}
