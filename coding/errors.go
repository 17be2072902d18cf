// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"errors"
	"fmt"
)

var (
	ErrVersion       = errors.New("qr: invalid version")
	ErrLevel         = errors.New("qr: invalid level")
	ErrMask          = errors.New("qr: invalid mask pattern")
	ErrOverflow      = errors.New("qr: data overflow")
	ErrSegment       = errors.New("qr: invalid segment data")
	ErrLevelRequired = errors.New("qr: level H required for logo space")
	ErrLogoTooLarge  = errors.New("qr: logo space exceeds error correction capacity")
	ErrLogoDims      = errors.New("qr: logo dimensions exceed matrix")
	ErrNotWritten    = errors.New("qr: matrix not yet written")
	ErrMasked        = errors.New("qr: matrix already masked")
	ErrQuietZone     = errors.New("qr: quiet zone already added")
)

// OverflowError reports data that does not fit a version and level.
// Version is 0 if no version in the permitted range fits.
type OverflowError struct {
	Bits     int // encoded length in bits
	Capacity int // data capacity in bits
	Version  Version
	Level    Level
}

func (e *OverflowError) Error() string {
	if e.Version == 0 {
		return fmt.Sprintf("qr: data overflow: %d bits exceed "+
			"%d-bit capacity at level %s", e.Bits, e.Capacity, e.Level)
	}
	return fmt.Sprintf("qr: data overflow: cannot encode %d bits "+
		"into %d-bit code (version %s, level %s)",
		e.Bits, e.Capacity, e.Version, e.Level)
}

func (e *OverflowError) Is(target error) bool { return target == ErrOverflow }

// SegmentError represents an invalid Segment.
type SegmentError Segment

func (e SegmentError) Error() string {
	if m := e.Mode.encoder(); m != nil {
		return fmt.Sprintf("qr: non-%s string %#q", m.name, e.Text)
	}
	return fmt.Sprintf("qr: invalid mode %d", e.Mode)
}

func (e SegmentError) Is(target error) bool { return target == ErrSegment }

// LogoError reports a rejected logo space.
type LogoError struct {
	Width, Height int   // requested dimensions after adjustment
	Limit         int   // matrix dimension or maximum area
	Err           error // ErrLogoDims or ErrLogoTooLarge
}

func (e *LogoError) Error() string {
	if e.Err == ErrLogoTooLarge {
		return fmt.Sprintf("%v: %dx%d modules, maximum %d",
			e.Err, e.Width, e.Height, e.Limit)
	}
	return fmt.Sprintf("%v: %dx%d modules in %dx%d symbol",
		e.Err, e.Width, e.Height, e.Limit, e.Limit)
}

func (e *LogoError) Unwrap() error { return e.Err }
