// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package wideint

import (
	"math/bits"

	"github.com/cockroachdb/errors"
)

// Sub computes the exact difference minuend - subtrahend and represents it
// with the signedness requested by signed, which may differ from the tags of
// the operands. It returns an error marked with ErrOverflow if the difference
// is not representable; the result never wraps.
//
// An unsigned result can only hold non-negative differences: subtracting a
// larger value from a smaller one into an unsigned result is an overflow.
func Sub(minuend, subtrahend Value, signed bool) (Value, error) {
	mn, mm := minuend.split()
	sn, sm := subtrahend.split()
	v, err := addSignMagnitude(mn, mm, !sn, sm, signed)
	if err != nil {
		return Value{}, errors.Wrapf(err, "%s - %s into %s64", minuend, subtrahend, tagName(signed))
	}
	return v, nil
}

// AddDelta computes the exact sum prev + delta. The result carries prev's
// signedness; delta may carry either. It returns an error marked with
// ErrOverflow if the sum falls outside the range of prev's signedness.
func AddDelta(prev, delta Value) (Value, error) {
	pn, pm := prev.split()
	dn, dm := delta.split()
	v, err := addSignMagnitude(pn, pm, dn, dm, prev.signed)
	if err != nil {
		return Value{}, errors.Wrapf(err, "%s + %s into %s64", prev, delta, tagName(prev.signed))
	}
	return v, nil
}

// addSignMagnitude adds two numbers given in sign/magnitude form. Equal signs
// add magnitudes (a carry out of 64 bits is always an overflow, since no tag
// reaches 2^64); opposite signs subtract the smaller magnitude from the larger
// and take the sign of the larger.
func addSignMagnitude(an bool, am uint64, bn bool, bm uint64, signed bool) (Value, error) {
	if an == bn || am == 0 || bm == 0 {
		neg := an
		if am == 0 {
			neg = bn
		}
		mag, carry := bits.Add64(am, bm, 0)
		if carry != 0 {
			return Value{}, errors.Mark(errors.New("magnitude exceeds 64 bits"), ErrOverflow)
		}
		return join(neg, mag, signed)
	}
	if am >= bm {
		return join(an, am-bm, signed)
	}
	return join(bn, bm-am, signed)
}
