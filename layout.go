// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package intcodec

import (
	"bytes"

	"github.com/cockroachdb/intcodec/internal/binfmt"
	"github.com/cockroachdb/intcodec/wideint"
)

// Layout renders an encoded stream as annotated hex, one line per field, with
// the absolute value of every field (and the raw delta for delta-encoded
// fields). Rendering stops at the first field that cannot be decoded; the
// error describing it is returned alongside the output produced so far.
func Layout(data []byte, format Format) (string, error) {
	f := binfmt.New(data)
	dec := NewDecoder(bytes.NewReader(data), format)
	for row := uint64(0); f.More(); row++ {
		f.Commentf("row %d", row)
		for i, c := range format {
			w, signed := c.RowWidth(row)
			var raw wideint.Value
			if f.Remaining() >= w.Bytes() {
				raw = wideint.DecodeLE(data[f.Offset():], w, signed)
			}
			v, err := dec.ReadField()
			if err != nil {
				if n := min(f.Remaining(), w.Bytes()); n > 0 {
					f.HexBytesln(n, "col %d %s%d: %v", i, signChar(signed), w.Bits(), err)
				} else {
					f.Commentf("col %d %s%d: %v", i, signChar(signed), w.Bits(), err)
				}
				return f.String(), err
			}
			if c.Delta != nil && row > 0 {
				f.HexBytesln(w.Bytes(), "col %d delta %s%d: %s -> %s", i, signChar(signed), w.Bits(), raw, v)
			} else {
				f.HexBytesln(w.Bytes(), "col %d %s%d: %s", i, signChar(signed), w.Bits(), v)
			}
		}
	}
	return f.String(), nil
}
