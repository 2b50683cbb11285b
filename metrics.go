// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package intcodec

import (
	"github.com/cockroachdb/crlib/crhumanize"
	"github.com/cockroachdb/redact"
)

// Metrics holds counters describing a single Encode or Decode.
type Metrics struct {
	// Rows is the number of complete rows processed.
	Rows uint64
	// Fields is the number of fields processed, including those of a final
	// row that failed partway.
	Fields uint64
	// DeltaFields is the number of fields encoded or decoded as a delta from
	// the previous row.
	DeltaFields uint64
	// BinaryBytes is the number of bytes written to (Encode) or read from
	// (Decode) the binary stream.
	BinaryBytes uint64
}

// String implements fmt.Stringer.
func (m Metrics) String() string {
	return redact.StringWithoutMarkers(m)
}

// SafeFormat implements redact.SafeFormatter.
func (m Metrics) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("%s rows, %s fields (%s delta), %s",
		crhumanize.Count(m.Rows, crhumanize.Compact),
		crhumanize.Count(m.Fields, crhumanize.Compact),
		crhumanize.Count(m.DeltaFields, crhumanize.Compact),
		crhumanize.Bytes(m.BinaryBytes, crhumanize.Compact, crhumanize.OmitI))
}
