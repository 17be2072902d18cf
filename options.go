// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"cmp"

	"github.com/unixdj/qrmatrix/coding"
)

// AutoMode selects the first of numeric, alphanumeric and byte modes
// that accepts the text.
const AutoMode coding.Mode = -1

// Limits applied by Options.
const (
	MaxQuietZone = 75  // largest quiet zone
	MaxLogo      = 177 // largest logo dimension, the size of version 40
)

// Options configures Encode.  The zero value is not useful; start
// from DefaultOptions.
type Options struct {
	Level      coding.Level   // error correction level
	Version    coding.Version // fixed version, or 0 to choose one
	MinVersion coding.Version // smallest version to choose
	MaxVersion coding.Version // largest version to choose
	Mask       coding.Mask    // mask pattern, or coding.AutoMask
	Mode       coding.Mode    // segment mode, or AutoMode
	QuietZone  int            // quiet zone size, 0 for none
	Latin1     bool           // transcode UTF-8 text to ISO 8859-1

	// Logo space in modules.  If one dimension is 0, the space is
	// square.  If LogoX or LogoY is negative, the space is centred
	// on that axis.  Logo space requires level H.
	LogoWidth, LogoHeight int
	LogoX, LogoY          int
}

// DefaultOptions returns options for level L, the smallest fitting
// version, automatic mask and mode, and a quiet zone of 4 modules.
func DefaultOptions() *Options {
	return &Options{
		Level:      coding.L,
		MinVersion: coding.MinVersion,
		MaxVersion: coding.MaxVersion,
		Mask:       coding.AutoMask,
		Mode:       AutoMode,
		QuietZone:  4,
		LogoX:      -1,
		LogoY:      -1,
	}
}

func clamp[T cmp.Ordered](v, lo, hi T) T { return max(lo, min(v, hi)) }

// normalize returns a copy of o with out of range values clamped, or
// an error for values that cannot be clamped.
func (o *Options) normalize() (Options, error) {
	n := *o
	if !n.Level.IsValid() {
		return n, coding.ErrLevel
	}
	if n.Mask != coding.AutoMask && !n.Mask.IsValid() {
		return n, coding.ErrMask
	}
	if n.Mode != AutoMode && (n.Mode < coding.Numeric || n.Mode > coding.Byte) {
		return n, coding.SegmentError{Mode: n.Mode}
	}
	if n.Version != 0 {
		n.Version = clamp(n.Version, coding.MinVersion, coding.MaxVersion)
	}
	n.MinVersion = clamp(n.MinVersion, coding.MinVersion, coding.MaxVersion)
	n.MaxVersion = clamp(n.MaxVersion, coding.MinVersion, coding.MaxVersion)
	if n.MinVersion > n.MaxVersion {
		n.MinVersion, n.MaxVersion = n.MaxVersion, n.MinVersion
	}
	n.QuietZone = clamp(n.QuietZone, 0, MaxQuietZone)
	n.LogoWidth = clamp(n.LogoWidth, 0, MaxLogo)
	n.LogoHeight = clamp(n.LogoHeight, 0, MaxLogo)
	if n.LogoWidth == 0 {
		n.LogoWidth = n.LogoHeight
	} else if n.LogoHeight == 0 {
		n.LogoHeight = n.LogoWidth
	}
	return n, nil
}

// versions returns the range of versions to choose from.
func (o *Options) versions() (coding.Version, coding.Version) {
	if o.Version != 0 {
		return o.Version, o.Version
	}
	return o.MinVersion, o.MaxVersion
}
