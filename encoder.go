// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package intcodec

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/intcodec/internal/invariants"
	"github.com/cockroachdb/intcodec/wideint"
)

// Encoder writes rows of absolute values to a binary stream, one field at a
// time, delta encoding the columns whose descriptor requests it.
//
// An Encoder is not safe for concurrent use. After any error the Encoder must
// not be used again: the stream it has written so far ends partway through a
// row.
type Encoder struct {
	w      io.Writer
	format Format
	// prev holds, for every delta column, the absolute value of the column in
	// the most recently written row. It is indexed like format.
	prev []wideint.Value
	// row is the index of the row being written, col the index of the next
	// column within it.
	row uint64
	col int
	buf [wideint.MaxBytes]byte
	err error

	metrics Metrics
}

// NewEncoder returns an Encoder writing rows of the given format to w.
func NewEncoder(w io.Writer, format Format) *Encoder {
	if len(format) == 0 {
		panic(errors.AssertionFailedf("intcodec: empty format"))
	}
	return &Encoder{
		w:      w,
		format: format,
		prev:   make([]wideint.Value, len(format)),
	}
}

// WriteField encodes the next field of the current row and writes it to the
// underlying writer before returning. The value's signedness must match the
// column's.
//
// The returned error is marked with ErrArithmeticOverflow if the difference
// from the column's previous value does not fit the column's delta
// signedness, and with ErrValueOutOfRange if the value (or difference) does
// not fit the width it is encoded with.
func (e *Encoder) WriteField(v wideint.Value) error {
	if e.err != nil {
		return e.err
	}
	invariants.CheckLen("encoder state", len(e.prev), len(e.format))
	c := &e.format[e.col]
	if v.IsSigned() != c.Signed {
		panic(errors.AssertionFailedf("intcodec: %s value %s for column %d (%s)",
			errors.Safe(signChar(v.IsSigned())), v, errors.Safe(e.col), c))
	}

	out, width := v, c.Width
	if c.Delta != nil {
		if e.row > 0 {
			d, err := wideint.Sub(v, e.prev[e.col], c.Delta.Signed)
			if err != nil {
				return e.fail(errors.Wrapf(err, "delta %s", c))
			}
			out, width = d, c.Delta.Width
			e.metrics.DeltaFields++
		}
		e.prev[e.col] = v
	}

	b, err := wideint.AppendLE(e.buf[:0], out, width)
	if err != nil {
		return e.fail(err)
	}
	n, err := e.w.Write(b)
	e.metrics.BinaryBytes += uint64(n)
	if err != nil {
		return e.fail(err)
	}
	e.metrics.Fields++

	if e.col++; e.col == len(e.format) {
		e.col = 0
		e.row++
		e.metrics.Rows++
	}
	return nil
}

// WriteRow writes a complete row. It may only be called at a row boundary.
func (e *Encoder) WriteRow(row []wideint.Value) error {
	if e.col != 0 {
		panic(errors.AssertionFailedf("intcodec: WriteRow called after %d fields of row %d",
			errors.Safe(e.col), errors.Safe(e.row)))
	}
	if len(row) != len(e.format) {
		panic(errors.AssertionFailedf("intcodec: row has %d values; format has %d columns",
			errors.Safe(len(row)), errors.Safe(len(e.format))))
	}
	for _, v := range row {
		if err := e.WriteField(v); err != nil {
			return err
		}
	}
	return nil
}

// Pending returns the number of fields of the current row already written.
func (e *Encoder) Pending() int {
	return e.col
}

// Metrics returns counters describing what has been written so far.
func (e *Encoder) Metrics() Metrics {
	return e.metrics
}

func (e *Encoder) fail(err error) error {
	e.err = fieldError(err, e.row, e.col)
	return e.err
}
