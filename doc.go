// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package intcodec converts tables of integers between a whitespace-separated
// decimal text form and a compact binary form.
//
// The binary layout of a table is described by a Format, parsed from a
// descriptor such as "u32,s64du8". Each column has a signedness and a width of
// 8, 16, 32 or 64 bits. A column may also be delta encoded: its first row
// holds the absolute value, and every later row holds the difference from the
// column's value in the previous row, with its own signedness and width.
// Fields are written in row-major order, little-endian, with no header,
// padding or framing:
//
//	u32,s64du8  rows (7, -1), (7, 4)
//	07000000 ffffffffffffffff   first row: absolute values
//	07000000 05                 second row: 7, and 4 - (-1) as u8
//
// All arithmetic is exact. Differences and reconstructed values that do not
// fit the signedness they are represented with are reported as errors marked
// with ErrArithmeticOverflow; values that do not fit the width they are
// written with are reported with ErrValueOutOfRange. Arithmetic never wraps.
//
// Encode and Decode convert whole streams. Encoder and Decoder expose the
// same conversion one field at a time.
package intcodec
