// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package intcodec

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/intcodec/wideint"
)

// Errors returned by the codec are marked with one of the following, and
// should be tested for with errors.Is.
var (
	// ErrInvalidSign is returned by ParseFormat when a sign is not 's' or 'u'.
	ErrInvalidSign = errors.New("intcodec: invalid sign")

	// ErrInvalidWidth is returned by ParseFormat when a width is not one of 8,
	// 16, 32 or 64.
	ErrInvalidWidth = errors.New("intcodec: invalid width")

	// ErrMalformedFormat is returned by ParseFormat for any other syntax error.
	ErrMalformedFormat = errors.New("intcodec: malformed format")

	// ErrTooManyColumns is returned by ParseFormat when the format declares
	// more columns than permitted.
	ErrTooManyColumns = errors.New("intcodec: too many columns")

	// ErrArithmeticOverflow is returned when the difference between
	// consecutive values of a column does not fit its delta signedness, or when
	// adding a decoded delta to the previous value leaves the column's range.
	ErrArithmeticOverflow = wideint.ErrOverflow

	// ErrValueOutOfRange is returned when an absolute or delta value does not
	// fit the width it is encoded with.
	ErrValueOutOfRange = wideint.ErrOutOfRange

	// ErrMalformedInput is returned when the text input contains a token that
	// is not an integer of the column's signedness, or ends partway through
	// a row.
	ErrMalformedInput = errors.New("intcodec: malformed input")

	// ErrTruncatedStream is returned when the binary input ends partway
	// through a row.
	ErrTruncatedStream = errors.New("intcodec: truncated stream")
)

// IsFormatError returns true if err was returned because a format descriptor
// could not be parsed.
func IsFormatError(err error) bool {
	return errors.IsAny(err, ErrInvalidSign, ErrInvalidWidth, ErrMalformedFormat, ErrTooManyColumns)
}

// fieldError annotates err with the position of the field it concerns.
func fieldError(err error, row uint64, col int) error {
	return errors.Wrapf(err, "row %d, column %d", errors.Safe(row), errors.Safe(col))
}
