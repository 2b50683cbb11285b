// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package wideint implements a signedness-tagged integer covering the full
// range of both int64 and uint64, with exact (overflow-checked) arithmetic
// and fixed-width little-endian serialization.
//
// A Value is either signed, holding a value in [-2^63, 2^63-1], or unsigned,
// holding a value in [0, 2^64-1]. Arithmetic between values never relies on
// reinterpreting the bits of one tag as the other: operands are decomposed
// into a sign and a 64-bit magnitude, combined with explicit carry and borrow
// detection, and converted back into the requested tag. Results that do not
// fit are rejected with ErrOverflow rather than wrapped.
package wideint

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

var (
	// ErrOverflow is returned when the exact result of an arithmetic operation
	// cannot be represented in the requested signedness.
	ErrOverflow = errors.New("wideint: arithmetic overflow")

	// ErrOutOfRange is returned when a value does not fit a fixed width, or
	// when decimal text describes a number outside the 64-bit range of the
	// requested signedness.
	ErrOutOfRange = errors.New("wideint: value out of range")

	// ErrSyntax is returned when decimal text is not a well-formed integer of
	// the requested signedness.
	ErrSyntax = errors.New("wideint: invalid syntax")
)

// Value is a signed or unsigned 64-bit-range integer. The zero Value is the
// unsigned zero.
type Value struct {
	// bits holds the two's-complement bit pattern for signed values and the
	// value itself for unsigned values.
	bits   uint64
	signed bool
}

// Signed returns a signed Value.
func Signed(v int64) Value {
	return Value{bits: uint64(v), signed: true}
}

// Unsigned returns an unsigned Value.
func Unsigned(v uint64) Value {
	return Value{bits: v}
}

// Zero returns the zero value with the given signedness.
func Zero(signed bool) Value {
	return Value{signed: signed}
}

// IsSigned returns true if v carries the signed tag.
func (v Value) IsSigned() bool { return v.signed }

// Int64 returns the value of a signed Value. It panics if v is unsigned.
func (v Value) Int64() int64 {
	if !v.signed {
		panic(errors.AssertionFailedf("wideint: Int64 called on unsigned value %d", v.bits))
	}
	return int64(v.bits)
}

// Uint64 returns the value of an unsigned Value. It panics if v is signed.
func (v Value) Uint64() uint64 {
	if v.signed {
		panic(errors.AssertionFailedf("wideint: Uint64 called on signed value %d", int64(v.bits)))
	}
	return v.bits
}

// IsNegative returns true if v is signed and strictly less than zero.
func (v Value) IsNegative() bool {
	return v.signed && int64(v.bits) < 0
}

// Magnitude returns the absolute value of v. The magnitude of math.MinInt64
// is 1<<63, which is representable as a uint64.
func (v Value) Magnitude() uint64 {
	_, mag := v.split()
	return mag
}

// Equal returns true if v and o carry the same tag and the same value.
func (v Value) Equal(o Value) bool {
	return v.signed == o.signed && v.bits == o.bits
}

// Compare returns -1, 0 or +1 depending on whether a is less than, equal to,
// or greater than b. Values of different tags are compared by their
// mathematical value.
func Compare(a, b Value) int {
	an, am := a.split()
	bn, bm := b.split()
	switch {
	case am == 0 && bm == 0:
		return 0
	case an != bn:
		if an {
			return -1
		}
		return +1
	}
	c := 0
	switch {
	case am < bm:
		c = -1
	case am > bm:
		c = +1
	}
	if an {
		c = -c
	}
	return c
}

// String implements fmt.Stringer.
func (v Value) String() string {
	return string(AppendText(nil, v))
}

// SafeFormat implements redact.SafeFormatter. Integers carry no user data.
func (v Value) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Print(redact.SafeString(v.String()))
}

// split decomposes v into a sign and a magnitude. Zero is never negative.
func (v Value) split() (neg bool, mag uint64) {
	if !v.signed {
		return false, v.bits
	}
	s := int64(v.bits)
	if s >= 0 {
		return false, uint64(s)
	}
	if s == math.MinInt64 {
		return true, 1 << 63
	}
	return true, uint64(-s)
}

// join builds a Value of the requested signedness from a sign and a
// magnitude, failing if the number is not representable.
func join(neg bool, mag uint64, signed bool) (Value, error) {
	if mag == 0 {
		return Zero(signed), nil
	}
	if !signed {
		if neg {
			return Value{}, errors.Mark(
				errors.Newf("-%d is negative", errors.Safe(mag)), ErrOverflow)
		}
		return Unsigned(mag), nil
	}
	if neg {
		switch {
		case mag < 1<<63:
			return Signed(-int64(mag)), nil
		case mag == 1<<63:
			return Signed(math.MinInt64), nil
		default:
			return Value{}, errors.Mark(
				errors.Newf("-%d is below %d", errors.Safe(mag), errors.Safe(int64(math.MinInt64))), ErrOverflow)
		}
	}
	if mag > math.MaxInt64 {
		return Value{}, errors.Mark(
			errors.Newf("%d is above %d", errors.Safe(mag), errors.Safe(int64(math.MaxInt64))), ErrOverflow)
	}
	return Signed(int64(mag)), nil
}

// tagName returns the single-letter tag used in format descriptors.
func tagName(signed bool) string {
	if signed {
		return "s"
	}
	return "u"
}
