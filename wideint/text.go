// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package wideint

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

// Parse parses a base-10 integer with the given signedness. A leading '+' is
// permitted for both signednesses; a leading '-' only for signed values.
// Malformed text returns an error marked with ErrSyntax, and numbers outside
// the 64-bit range of the signedness an error marked with ErrOutOfRange.
func Parse(s string, signed bool) (Value, error) {
	if signed {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Value{}, parseError(s, signed, err)
		}
		return Signed(v), nil
	}
	digits := s
	if len(digits) > 0 && digits[0] == '+' {
		digits = digits[1:]
	}
	v, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return Value{}, parseError(s, signed, err)
	}
	return Unsigned(v), nil
}

func parseError(s string, signed bool, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return errors.Mark(errors.Newf("%q is outside the %s64 range", s, tagName(signed)), ErrOutOfRange)
	}
	return errors.Mark(errors.Newf("%q is not a valid %s64 integer", s, tagName(signed)), ErrSyntax)
}

// AppendText appends the canonical decimal form of v to dst.
func AppendText(dst []byte, v Value) []byte {
	if v.signed {
		return strconv.AppendInt(dst, int64(v.bits), 10)
	}
	return strconv.AppendUint(dst, v.bits, 10)
}
