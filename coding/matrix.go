// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"
	"strings"
)

// A Role is the function of a module in a QR code.
type Role uint8

// Module roles.
const (
	Empty       Role = iota // not yet placed
	Data                    // data and check codewords, remainder bits
	Finder                  // finder pattern outer ring
	FinderDot               // finder pattern 3x3 centre
	Separator               // light border around finder patterns
	Alignment               // alignment pattern
	Timing                  // timing pattern
	Format                  // format information
	VersionInfo             // version information, versions 7 and up
	DarkModule              // single dark module near bottom left finder
	QuietZone               // light border around the symbol
	Logo                    // space reserved for a logo

	NumRoles = iota // number of roles
)

var roleNames = [NumRoles]string{
	"empty", "data", "finder", "finder dot", "separator", "alignment",
	"timing", "format", "version", "dark module", "quiet zone", "logo",
}

func (r Role) String() string {
	if r < NumRoles {
		return roleNames[r]
	}
	return fmt.Sprintf("Role(%d)", uint8(r))
}

// A Module is a role and a colour.
type Module uint8

const dark Module = 0x80

func module(r Role, isDark bool) Module {
	if isDark {
		return Module(r) | dark
	}
	return Module(r)
}

// Role returns the role of m.
func (m Module) Role() Role { return Role(m &^ dark) }

// IsDark reports whether m is dark.
func (m Module) IsDark() bool { return m&dark != 0 }

// Neighbour directions for Matrix.Neighbours, clockwise from top left.
const (
	NeighbourTopLeft = 1 << iota
	NeighbourTop
	NeighbourTopRight
	NeighbourRight
	NeighbourBottomRight
	NeighbourBottom
	NeighbourBottomLeft
	NeighbourLeft
)

var neighbours = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0},
}

// A Matrix is the module grid of a QR code under construction.
//
// A Matrix goes through the following states: functional patterns
// placed (InitFunctionalPatterns), codewords written (WriteCodewords),
// masked (Mask), and optionally logo space carved (SetLogoSpace) and
// quiet zone added (AddQuietZone).  Coordinates passed to Get, IsDark,
// Is and Neighbours, and the grid returned by Bools, include the
// quiet zone; those passed to SetLogoSpace do not.
type Matrix struct {
	version Version
	level   Level
	mask    Mask // applied mask if masked
	masked  bool
	dim     int // symbol size
	quiet   int // quiet zone size
	size    int // dim + 2*quiet
	m       []Module
}

// NewMatrix returns an empty Matrix for version v at level l.
func NewMatrix(v Version, l Level) (*Matrix, error) {
	if !v.IsValid() {
		return nil, ErrVersion
	}
	if !l.IsValid() {
		return nil, ErrLevel
	}
	n := v.Size()
	return &Matrix{
		version: v,
		level:   l,
		dim:     n,
		size:    n,
		m:       make([]Module, n*n),
	}, nil
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	c := *m
	c.m = append([]Module(nil), m.m...)
	return &c
}

// Version returns the version of m.
func (m *Matrix) Version() Version { return m.version }

// Level returns the error correction level of m.
func (m *Matrix) Level() Level { return m.level }

// MaskPattern returns the applied mask and whether m is masked.
func (m *Matrix) MaskPattern() (Mask, bool) { return m.mask, m.masked }

// Size returns the number of modules on a side, quiet zone included.
func (m *Matrix) Size() int { return m.size }

// QuietZone returns the size of the quiet zone.
func (m *Matrix) QuietZone() int { return m.quiet }

// Get returns the module at column x, row y.  Modules outside the
// grid are light quiet zone.
func (m *Matrix) Get(x, y int) Module {
	if x < 0 || y < 0 || x >= m.size || y >= m.size {
		return module(QuietZone, false)
	}
	return m.m[y*m.size+x]
}

// IsDark reports whether the module at column x, row y is dark.
func (m *Matrix) IsDark(x, y int) bool { return m.Get(x, y).IsDark() }

// Is reports whether the module at column x, row y has one of the
// given roles.
func (m *Matrix) Is(x, y int, roles ...Role) bool {
	r := m.Get(x, y).Role()
	for _, v := range roles {
		if r == v {
			return true
		}
	}
	return false
}

// Neighbours returns a bit set of dark modules around column x, row
// y, as documented under NeighbourTopLeft.  If roles are given, only
// neighbours of those roles are counted.
func (m *Matrix) Neighbours(x, y int, roles ...Role) int {
	bits := 0
	for i, d := range neighbours {
		nx, ny := x+d[0], y+d[1]
		if len(roles) != 0 && !m.Is(nx, ny, roles...) {
			continue
		}
		if m.IsDark(nx, ny) {
			bits |= 1 << i
		}
	}
	return bits
}

// Adjacent returns a bit set of modules of the given roles around
// column x, row y, light or dark, as documented under
// NeighbourTopLeft.
func (m *Matrix) Adjacent(x, y int, roles ...Role) int {
	bits := 0
	for i, d := range neighbours {
		if m.Is(x+d[0], y+d[1], roles...) {
			bits |= 1 << i
		}
	}
	return bits
}

// Bools returns the grid as rows of booleans, true being dark.
func (m *Matrix) Bools() [][]bool {
	return m.bools(0, m.size)
}

// bools returns the square of modules from (off, off) to (end, end).
func (m *Matrix) bools(off, end int) [][]bool {
	g := make([][]bool, end-off)
	for y := range g {
		row := make([]bool, end-off)
		for x := range row {
			row[x] = m.m[(y+off)*m.size+x+off].IsDark()
		}
		g[y] = row
	}
	return g
}

// String returns the grid drawn with "##" for dark and "  " for
// light modules, one row per line.
func (m *Matrix) String() string {
	var sb strings.Builder
	sb.Grow(m.size * (m.size*2 + 1))
	for y := 0; y < m.size; y++ {
		for x := 0; x < m.size; x++ {
			if m.IsDark(x, y) {
				sb.WriteString("##")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// at returns a pointer to the module at column x, row y of the
// symbol, excluding the quiet zone.
func (m *Matrix) at(x, y int) *Module {
	return &m.m[(y+m.quiet)*m.size+x+m.quiet]
}

// set sets the module at column x, row y of the symbol.
func (m *Matrix) set(x, y int, r Role, isDark bool) {
	*m.at(x, y) = module(r, isDark)
}

// written reports whether codewords have been written to m.  The
// bottom right module is the first in the codeword path.
func (m *Matrix) written() bool {
	return m.at(m.dim-1, m.dim-1).Role() != Empty
}

// InitFunctionalPatterns places finder, separator, alignment and
// timing patterns, the dark module, version information and a light
// format information placeholder.
func (m *Matrix) InitFunctionalPatterns() {
	m.setFinders()
	m.setSeparators()
	m.setAlignment()
	m.setTiming()
	m.set(8, m.dim-8, DarkModule, true)
	m.setVersionInfo()
	m.setFormat(0, false)
}

// setFinders draws the 7x7 finder patterns in the top left, top
// right and bottom left corners.
func (m *Matrix) setFinders() {
	for _, p := range [3][2]int{{0, 0}, {m.dim - 7, 0}, {0, m.dim - 7}} {
		for y := 0; y < 7; y++ {
			for x := 0; x < 7; x++ {
				switch {
				case x == 0 || y == 0 || x == 6 || y == 6:
					m.set(p[0]+x, p[1]+y, Finder, true)
				case x == 1 || y == 1 || x == 5 || y == 5:
					m.set(p[0]+x, p[1]+y, Finder, false)
				default:
					m.set(p[0]+x, p[1]+y, FinderDot, true)
				}
			}
		}
	}
}

// setSeparators draws the light borders inside the symbol around
// finder patterns.
func (m *Matrix) setSeparators() {
	n := m.dim
	for i := 0; i < 8; i++ {
		m.set(7, i, Separator, false)     // top left, vertical
		m.set(i, 7, Separator, false)     // top left, horizontal
		m.set(n-8, i, Separator, false)   // top right, vertical
		m.set(n-1-i, 7, Separator, false) // top right, horizontal
		m.set(7, n-1-i, Separator, false) // bottom left, vertical
		m.set(i, n-8, Separator, false)   // bottom left, horizontal
	}
}

// setAlignment draws 5x5 alignment patterns at all combinations of
// the version's centre coordinates, skipping those over finders.
func (m *Matrix) setAlignment() {
	align := m.version.Alignment()
	for _, cy := range align {
		for _, cx := range align {
			if m.at(cx, cy).Role() != Empty {
				continue
			}
			for y := -2; y <= 2; y++ {
				for x := -2; x <= 2; x++ {
					d := max(abs(x), abs(y)) != 1
					m.set(cx+x, cy+y, Alignment, d)
				}
			}
		}
	}
}

// setTiming draws the timing patterns in row and column 6.
func (m *Matrix) setTiming() {
	for i := 8; i < m.dim-8; i++ {
		if m.at(i, 6).Role() == Empty {
			m.set(i, 6, Timing, i%2 == 0)
		}
		if m.at(6, i).Role() == Empty {
			m.set(6, i, Timing, i%2 == 0)
		}
	}
}

// setVersionInfo draws the two copies of version information.
func (m *Matrix) setVersionInfo() {
	p := m.version.Pattern()
	if p == 0 {
		return
	}
	for i := 0; i < 18; i++ {
		a, b := i/3, i%3+m.dim-11
		d := p>>i&1 != 0
		m.set(a, b, VersionInfo, d) // bottom left
		m.set(b, a, VersionInfo, d) // top right
	}
}

// setFormat draws both copies of the 15 bit format information p.
// If real is false, a light placeholder is drawn.
func (m *Matrix) setFormat(p uint16, real bool) {
	n := m.dim
	for i := 0; i < 15; i++ {
		d := real && p>>i&1 != 0
		switch {
		case i < 6:
			m.set(8, i, Format, d)
		case i < 8:
			m.set(8, i+1, Format, d)
		default:
			m.set(8, n-15+i, Format, d)
		}
		switch {
		case i < 8:
			m.set(n-i-1, 8, Format, d)
		case i == 8:
			m.set(7, 8, Format, d)
		default:
			m.set(14-i, 8, Format, d)
		}
	}
}

// SetFormatInfo draws the format information for mask p and the
// level of m.
func (m *Matrix) SetFormatInfo(p Mask) error {
	if !p.IsValid() {
		return ErrMask
	}
	m.setFormat(m.level.FormatPattern(p), true)
	return nil
}

// WriteCodewords places bits from s in the data area in zigzag
// order, starting from the bottom right.  Modules left over when s is
// exhausted are light data modules.  Functional patterns must be
// placed first.
func (m *Matrix) WriteCodewords(s BitStream) {
	n := m.dim
	up := true
	for x := n - 1; x > 0; x -= 2 {
		if x == 6 { // vertical timing pattern
			x--
		}
		for i := 0; i < n; i++ {
			y := i
			if up {
				y = n - 1 - i
			}
			for c := 0; c < 2; c++ {
				if m.at(x-c, y).Role() == Empty {
					m.set(x-c, y, Data, s.Next() != 0)
				}
			}
		}
		up = !up
	}
}

// Mask applies mask p to data modules and draws the matching format
// information.  Applying the mask that is already applied removes it
// and restores the format placeholder.  Applying a different mask to
// a masked matrix returns ErrMasked.
func (m *Matrix) Mask(p Mask) error {
	if !p.IsValid() {
		return ErrMask
	}
	if !m.written() {
		return ErrNotWritten
	}
	if m.masked && m.mask != p {
		return ErrMasked
	}
	for y := 0; y < m.dim; y++ {
		for x := 0; x < m.dim; x++ {
			if mm := m.at(x, y); mm.Role() == Data && p.At(x, y) {
				*mm ^= dark
			}
		}
	}
	if m.masked {
		m.mask, m.masked = 0, false
		m.setFormat(0, false)
		return nil
	}
	m.mask, m.masked = p, true
	return m.SetFormatInfo(p)
}

// BestMask evaluates all masks on copies of m, which must be written
// and unmasked, and returns the one with the lowest penalty and the
// penalty.  Ties go to the lower mask number.
func (m *Matrix) BestMask() (Mask, int, error) {
	if !m.written() {
		return 0, 0, ErrNotWritten
	}
	if m.masked {
		return 0, 0, ErrMasked
	}
	var trial [8]*Matrix
	best, pen := Mask(0), -1
	for i := range trial {
		p := Mask(i)
		trial[i] = m.Clone()
		if err := trial[i].Mask(p); err != nil {
			return 0, 0, err
		}
		g := trial[i].bools(trial[i].quiet, trial[i].quiet+trial[i].dim)
		if n := Penalty(g); pen < 0 || n < pen {
			best, pen = p, n
		}
	}
	return best, pen, nil
}

// SetLogoSpace turns a w by h rectangle of data modules into light
// logo modules.  The rectangle starts at column x, row y of the
// symbol; if x or y is negative, it is centred on that axis and an
// even dimension on that axis is enlarged by one.  Rows and columns 0
// to 8 are never touched.  Logo space requires level H and may cover
// at most a quarter of the symbol.  A zero dimension is a no-op.
func (m *Matrix) SetLogoSpace(w, h, x, y int) error {
	if m.level != H {
		return ErrLevelRequired
	}
	n := m.dim
	if w < 0 || h < 0 || w > n || h > n {
		return &LogoError{w, h, n, ErrLogoDims}
	}
	if w == 0 || h == 0 {
		return nil
	}
	if x < 0 {
		w |= 1
		x = (n - w) / 2
	}
	if y < 0 {
		h |= 1
		y = (n - h) / 2
	}
	if limit := n * n / 4; w*h > limit {
		return &LogoError{w, h, limit, ErrLogoTooLarge}
	}
	for yy := max(y, 9); yy < min(y+h, n); yy++ {
		for xx := max(x, 9); xx < min(x+w, n); xx++ {
			if mm := m.at(xx, yy); mm.Role() == Data || mm.Role() == Empty {
				*mm = module(Logo, false)
			}
		}
	}
	return nil
}

// AddQuietZone surrounds the symbol with a light border n modules
// wide.  Codewords must be written first, and the quiet zone may be
// added only once.
func (m *Matrix) AddQuietZone(n int) error {
	if !m.written() {
		return ErrNotWritten
	}
	if m.quiet != 0 {
		return ErrQuietZone
	}
	if n <= 0 {
		return nil
	}
	size := m.dim + 2*n
	g := make([]Module, size*size)
	for i := range g {
		g[i] = module(QuietZone, false)
	}
	for y := 0; y < m.dim; y++ {
		copy(g[(y+n)*size+n:], m.m[y*m.dim:(y+1)*m.dim])
	}
	m.m, m.quiet, m.size = g, n, size
	return nil
}
