// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package intcodec

import (
	"bufio"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/intcodec/wideint"
)

// Encode reads a table of whitespace-separated decimal integers from r and
// writes its binary encoding to w. Values are assigned to columns in order,
// wrapping to a new row after the last column; line breaks in the input carry
// no meaning of their own. Each value is parsed with its column's signedness.
//
// Encode stops at the first error. Bytes already encoded are flushed to w, not
// rolled back. Input ending partway through a row returns an error marked
// with ErrMalformedInput, as does a token that is not an integer of the
// column's signedness. See Encoder.WriteField for the remaining error kinds.
func Encode(w io.Writer, r io.Reader, format Format, opts *Options) (Metrics, error) {
	opts = opts.EnsureDefaults()
	bw := bufio.NewWriter(w)
	enc := NewEncoder(bw, format)
	err := ReadText(r, format, opts, enc.WriteField)
	if ferr := bw.Flush(); err == nil {
		err = ferr
	}
	m := enc.Metrics()
	if opts.Verbose {
		logSummary(opts.Logger, "encode", format, m, err)
	}
	return m, err
}

// ReadText reads a table of whitespace-separated decimal integers from r and
// calls fn with every value in order, each parsed with the signedness of its
// column. Reading stops at the first error, including one returned by fn,
// which is returned unchanged.
//
// A token that is not an integer of the column's signedness, or input ending
// partway through a row, returns an error marked with ErrMalformedInput. A
// number outside the 64-bit range of the column's signedness returns an error
// marked with ErrValueOutOfRange.
func ReadText(r io.Reader, format Format, opts *Options, fn func(wideint.Value) error) error {
	opts = opts.EnsureDefaults()
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64), opts.MaxTokenBytes)
	s.Split(bufio.ScanWords)
	var row uint64
	var col int
	for s.Scan() {
		v, err := wideint.Parse(s.Text(), format[col].Signed)
		if err != nil {
			if errors.Is(err, wideint.ErrSyntax) {
				err = errors.Mark(err, ErrMalformedInput)
			}
			return fieldError(err, row, col)
		}
		if err := fn(v); err != nil {
			return err
		}
		if col++; col == len(format) {
			col = 0
			row++
		}
	}
	if err := s.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			err = errors.Mark(errors.Wrapf(err, "token longer than %d bytes", errors.Safe(opts.MaxTokenBytes)),
				ErrMalformedInput)
		}
		return fieldError(err, row, col)
	}
	if col != 0 {
		return fieldError(errors.Mark(
			errors.Newf("input ends after %d of %d columns", errors.Safe(col), errors.Safe(len(format))),
			ErrMalformedInput), row, col)
	}
	return nil
}

// Decode reads a binary stream of the given format from r and writes it to w
// as text: one row per line, columns separated by tabs, values in decimal.
//
// Decode stops at the first error. Rows already decoded are flushed to w, not
// rolled back. A stream ending anywhere but at a row boundary returns an
// error marked with ErrTruncatedStream. See Decoder.ReadField for the
// remaining error kinds.
//
// r is read through a buffer, so Decode may consume bytes past the point
// where it stops.
func Decode(w io.Writer, r io.Reader, format Format, opts *Options) (Metrics, error) {
	opts = opts.EnsureDefaults()
	bw := bufio.NewWriter(w)
	dec := NewDecoder(bufio.NewReader(r), format)
	err := decodeText(bw, dec, len(format))
	if ferr := bw.Flush(); err == nil {
		err = ferr
	}
	m := dec.Metrics()
	if opts.Verbose {
		logSummary(opts.Logger, "decode", format, m, err)
	}
	return m, err
}

func decodeText(bw *bufio.Writer, dec *Decoder, columns int) error {
	var buf []byte
	for {
		col := dec.Column()
		v, err := dec.ReadField()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		buf = wideint.AppendText(buf[:0], v)
		if col == columns-1 {
			buf = append(buf, '\n')
		} else {
			buf = append(buf, '\t')
		}
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
}

func logSummary(logger Logger, op string, format Format, m Metrics, err error) {
	if err != nil {
		logger.Errorf("%s %s: %s: %v", op, format, m, err)
		return
	}
	logger.Infof("%s %s: %s", op, format, m)
}
