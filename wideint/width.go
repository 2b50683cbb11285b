// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package wideint

import (
	"encoding/binary"
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
)

// Width is the size of a fixed-width integer, stored as the base-2 logarithm
// of its size in bytes.
type Width uint8

// The supported widths.
const (
	W8 Width = iota
	W16
	W32
	W64
	// NumWidths is the number of supported widths.
	NumWidths
)

// MaxBytes is the size in bytes of the widest supported width.
const MaxBytes = 8

// WidthForBits returns the Width holding the given number of bits. It returns
// false if bits is not one of 8, 16, 32 or 64.
func WidthForBits(bits uint64) (Width, bool) {
	switch bits {
	case 8:
		return W8, true
	case 16:
		return W16, true
	case 32:
		return W32, true
	case 64:
		return W64, true
	}
	return 0, false
}

// Bytes returns the number of bytes in the width: 1, 2, 4 or 8.
func (w Width) Bytes() int { return 1 << w }

// Bits returns the number of bits in the width.
func (w Width) Bits() int { return 8 << w }

// String returns the width in bits.
func (w Width) String() string { return strconv.Itoa(w.Bits()) }

// Valid returns true if w is a supported width.
func (w Width) Valid() bool { return w < NumWidths }

// SignedBounds returns the smallest and largest signed values representable in
// the width.
func (w Width) SignedBounds() (lo, hi int64) {
	if w == W64 {
		return math.MinInt64, math.MaxInt64
	}
	hi = 1<<(w.Bits()-1) - 1
	return -hi - 1, hi
}

// UnsignedMax returns the largest unsigned value representable in the width.
func (w Width) UnsignedMax() uint64 {
	if w == W64 {
		return math.MaxUint64
	}
	return 1<<w.Bits() - 1
}

// Fits returns true if v can be packed into the width without loss.
func (w Width) Fits(v Value) bool {
	if w == W64 {
		return true
	}
	if v.signed {
		lo, hi := w.SignedBounds()
		s := int64(v.bits)
		return s >= lo && s <= hi
	}
	return v.bits <= w.UnsignedMax()
}

// AppendLE appends the little-endian encoding of v in w.Bytes() bytes to dst.
// Signed values are written in two's complement. It returns an error marked
// with ErrOutOfRange if v does not fit the width, in which case dst is
// returned unmodified.
func AppendLE(dst []byte, v Value, w Width) ([]byte, error) {
	if !w.Valid() {
		panic(errors.AssertionFailedf("wideint: invalid width %d", w))
	}
	if !w.Fits(v) {
		return dst, errors.Mark(
			errors.Newf("%s does not fit in %s%d", v, tagName(v.signed), errors.Safe(w.Bits())),
			ErrOutOfRange)
	}
	switch w {
	case W8:
		return append(dst, byte(v.bits)), nil
	case W16:
		return binary.LittleEndian.AppendUint16(dst, uint16(v.bits)), nil
	case W32:
		return binary.LittleEndian.AppendUint32(dst, uint32(v.bits)), nil
	default:
		return binary.LittleEndian.AppendUint64(dst, v.bits), nil
	}
}

// DecodeLE decodes the first w.Bytes() bytes of b as a little-endian integer,
// sign-extending it if signed is true and zero-extending it otherwise. It
// panics if b is shorter than the width.
func DecodeLE(b []byte, w Width, signed bool) Value {
	var u uint64
	switch w {
	case W8:
		u = uint64(b[0])
		if signed {
			return Signed(int64(int8(u)))
		}
	case W16:
		u = uint64(binary.LittleEndian.Uint16(b))
		if signed {
			return Signed(int64(int16(u)))
		}
	case W32:
		u = uint64(binary.LittleEndian.Uint32(b))
		if signed {
			return Signed(int64(int32(u)))
		}
	case W64:
		u = binary.LittleEndian.Uint64(b)
		if signed {
			return Signed(int64(u))
		}
	default:
		panic(errors.AssertionFailedf("wideint: invalid width %d", w))
	}
	return Unsigned(u)
}
