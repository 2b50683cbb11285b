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

// Decoder reads rows of absolute values from a binary stream written by an
// Encoder with the same format.
//
// A Decoder is not safe for concurrent use. After any error, including
// io.EOF, the Decoder must not be used again.
type Decoder struct {
	r      io.Reader
	format Format
	// prev holds, for every delta column, the absolute value of the column in
	// the most recently read row. It is indexed like format.
	prev []wideint.Value
	row  uint64
	col  int
	buf  [wideint.MaxBytes]byte
	err  error

	metrics Metrics
}

// NewDecoder returns a Decoder reading rows of the given format from r. The
// Decoder reads exactly the bytes of each field and does not buffer r.
func NewDecoder(r io.Reader, format Format) *Decoder {
	if len(format) == 0 {
		panic(errors.AssertionFailedf("intcodec: empty format"))
	}
	return &Decoder{
		r:      r,
		format: format,
		prev:   make([]wideint.Value, len(format)),
	}
}

// ReadField reads and returns the absolute value of the next field.
//
// ReadField returns io.EOF if, and only if, the stream ends at a row boundary
// before any byte of the next row. A stream ending anywhere else returns an
// error marked with ErrTruncatedStream. Reconstructing a delta-encoded value
// that leaves the column's range returns an error marked with
// ErrArithmeticOverflow.
func (d *Decoder) ReadField() (wideint.Value, error) {
	if d.err != nil {
		return wideint.Value{}, d.err
	}
	invariants.CheckLen("decoder state", len(d.prev), len(d.format))
	c := &d.format[d.col]
	width, signed := c.RowWidth(d.row)

	n, err := io.ReadFull(d.r, d.buf[:width.Bytes()])
	d.metrics.BinaryBytes += uint64(n)
	switch {
	case err == io.EOF && d.col == 0:
		d.err = io.EOF
		return wideint.Value{}, d.err
	case err == io.EOF || err == io.ErrUnexpectedEOF:
		return wideint.Value{}, d.fail(errors.Mark(
			errors.Newf("stream ends after %d of %d bytes of a %d-bit field",
				errors.Safe(n), errors.Safe(width.Bytes()), errors.Safe(width.Bits())),
			ErrTruncatedStream))
	case err != nil:
		return wideint.Value{}, d.fail(err)
	}

	v := wideint.DecodeLE(d.buf[:], width, signed)
	if c.Delta != nil {
		if d.row > 0 {
			if v, err = wideint.AddDelta(d.prev[d.col], v); err != nil {
				return wideint.Value{}, d.fail(errors.Wrapf(err, "delta %s", c))
			}
			d.metrics.DeltaFields++
		}
		d.prev[d.col] = v
	}
	d.metrics.Fields++

	if d.col++; d.col == len(d.format) {
		d.col = 0
		d.row++
		d.metrics.Rows++
	}
	return v, nil
}

// ReadRow reads a complete row, appending its values to dst[:0]. It may only
// be called at a row boundary. It returns io.EOF when the stream ends cleanly
// before the row.
func (d *Decoder) ReadRow(dst []wideint.Value) ([]wideint.Value, error) {
	if d.col != 0 {
		panic(errors.AssertionFailedf("intcodec: ReadRow called after %d fields of row %d",
			errors.Safe(d.col), errors.Safe(d.row)))
	}
	dst = dst[:0]
	for range d.format {
		v, err := d.ReadField()
		if err != nil {
			return dst, err
		}
		dst = append(dst, v)
	}
	return dst, nil
}

// Column returns the index of the column the next ReadField returns.
func (d *Decoder) Column() int {
	return d.col
}

// Metrics returns counters describing what has been read so far.
func (d *Decoder) Metrics() Metrics {
	return d.metrics
}

func (d *Decoder) fail(err error) error {
	d.err = fieldError(err, d.row, d.col)
	return d.err
}
