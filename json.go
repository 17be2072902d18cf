// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"io"

	"github.com/francoispqt/gojay"
)

// jsonCode implements gojay.MarshalerJSONObject.
type jsonCode struct{ *Code }

func (j jsonCode) MarshalJSONObject(enc *gojay.Encoder) {
	mask, _ := j.MaskPattern()
	enc.IntKey("version", int(j.Version()))
	enc.StringKey("level", j.Level().String())
	enc.IntKey("mask", int(mask))
	enc.IntKey("size", j.Size())
	enc.IntKey("quietZone", j.QuietZone())
	enc.ArrayKey("matrix", jsonRows{j.Code})
}

func (j jsonCode) IsNil() bool { return j.Code == nil }

// jsonRows implements gojay.MarshalerJSONArray for the module rows.
type jsonRows struct{ *Code }

func (j jsonRows) MarshalJSONArray(enc *gojay.Encoder) {
	for y := 0; y < j.Size(); y++ {
		enc.Array(jsonRow{j.Code, y})
	}
}

func (j jsonRows) IsNil() bool { return j.Code == nil }

// jsonRow implements gojay.MarshalerJSONArray for a row of modules,
// true being dark.
type jsonRow struct {
	*Code
	y int
}

func (j jsonRow) MarshalJSONArray(enc *gojay.Encoder) {
	for x := 0; x < j.Size(); x++ {
		enc.Bool(j.IsDark(x, j.y))
	}
}

func (j jsonRow) IsNil() bool { return j.Code == nil }

// EncodeJSON writes the code to w as a JSON object holding the
// version, level, mask, size, quiet zone and the rows of modules as
// arrays of booleans, true being dark.
func (c *Code) EncodeJSON(w io.Writer) error {
	if c == nil || c.Matrix == nil {
		return ErrArgs
	}
	enc := gojay.NewEncoder(w)
	defer enc.Release()
	return enc.EncodeObject(jsonCode{c})
}
