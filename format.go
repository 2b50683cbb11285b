// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package intcodec

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/intcodec/wideint"
	"github.com/cockroachdb/redact"
)

// DefaultMaxColumns is the maximum number of columns ParseFormat accepts.
const DefaultMaxColumns = 1 << 16

const (
	signedChar   = 's'
	unsignedChar = 'u'
	deltaChar    = 'd'
	fieldSep     = ','
)

// DeltaSpec describes the representation of the difference between a column's
// value and its value in the previous row.
type DeltaSpec struct {
	Width  wideint.Width
	Signed bool
}

// Column describes the encoding of one table column. Absolute values are
// always interpreted with Signed. The first row of a column is encoded with
// Width; subsequent rows use Delta when it is non-nil.
type Column struct {
	Width  wideint.Width
	Signed bool
	Delta  *DeltaSpec
}

// RowWidth returns the width and signedness the column is encoded with in
// the given row.
func (c Column) RowWidth(row uint64) (wideint.Width, bool) {
	if c.Delta != nil && row > 0 {
		return c.Delta.Width, c.Delta.Signed
	}
	return c.Width, c.Signed
}

// String returns the column's descriptor, e.g. "s64du8".
func (c Column) String() string {
	return redact.StringWithoutMarkers(c)
}

// SafeFormat implements redact.SafeFormatter.
func (c Column) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("%s%d", redact.SafeString(signChar(c.Signed)), redact.Safe(c.Width.Bits()))
	if c.Delta != nil {
		w.Printf("d%s%d", redact.SafeString(signChar(c.Delta.Signed)), redact.Safe(c.Delta.Width.Bits()))
	}
}

func signChar(signed bool) string {
	if signed {
		return string(signedChar)
	}
	return string(unsignedChar)
}

// Format is an ordered list of column descriptors.
type Format []Column

// String returns the canonical descriptor string, e.g. "u32,s64du8".
func (f Format) String() string {
	return redact.StringWithoutMarkers(f)
}

// SafeFormat implements redact.SafeFormatter.
func (f Format) SafeFormat(w redact.SafePrinter, _ rune) {
	for i := range f {
		if i > 0 {
			w.SafeRune(fieldSep)
		}
		w.Print(f[i])
	}
}

// FirstRowBytes returns the encoded size of the first row.
func (f Format) FirstRowBytes() int {
	return f.rowBytes(0)
}

// RowBytes returns the encoded size of every row after the first.
func (f Format) RowBytes() int {
	return f.rowBytes(1)
}

func (f Format) rowBytes(row uint64) int {
	n := 0
	for _, c := range f {
		w, _ := c.RowWidth(row)
		n += w.Bytes()
	}
	return n
}

// HasDelta returns true if any column is delta encoded.
func (f Format) HasDelta() bool {
	for _, c := range f {
		if c.Delta != nil {
			return true
		}
	}
	return false
}

// ParseFormat parses a format descriptor of the form
//
//	FORMAT := FIELD (',' FIELD)*
//	FIELD  := SIGN WIDTH ['d' SIGN WIDTH]
//	SIGN   := 's' | 'u'
//	WIDTH  := 8 | 16 | 32 | 64
//
// e.g. "u32,s64du8". At most DefaultMaxColumns fields are accepted.
func ParseFormat(s string) (Format, error) {
	return ParseFormatMax(s, DefaultMaxColumns)
}

// ParseFormatMax is like ParseFormat, but accepts at most maxColumns fields.
// A non-positive maxColumns selects DefaultMaxColumns.
//
// The returned error is marked with one of ErrInvalidSign, ErrInvalidWidth,
// ErrMalformedFormat or ErrTooManyColumns. No partial result is ever
// returned.
func ParseFormatMax(s string, maxColumns int) (Format, error) {
	if maxColumns <= 0 {
		maxColumns = DefaultMaxColumns
	}
	p := formatParser{s: s}
	var f Format
	for {
		if len(f) >= maxColumns {
			return nil, errors.Mark(
				errors.Newf("format declares more than %d columns", errors.Safe(maxColumns)),
				ErrTooManyColumns)
		}
		var c Column
		var err error
		if c.Signed, c.Width, err = p.signAndWidth(); err != nil {
			return nil, err
		}
		if p.peek() == deltaChar {
			p.off++
			var d DeltaSpec
			if d.Signed, d.Width, err = p.signAndWidth(); err != nil {
				return nil, err
			}
			c.Delta = &d
		}
		f = append(f, c)

		if p.done() {
			return f, nil
		}
		if ch := p.peek(); ch != fieldSep {
			return nil, p.errorf(ErrMalformedFormat, "unexpected %q", ch)
		}
		p.off++
	}
}

type formatParser struct {
	s   string
	off int
}

func (p *formatParser) done() bool { return p.off >= len(p.s) }

// peek returns the next byte, or 0 at the end of the input.
func (p *formatParser) peek() byte {
	if p.done() {
		return 0
	}
	return p.s[p.off]
}

func (p *formatParser) errorf(mark error, format string, args ...interface{}) error {
	err := errors.Newf(format, args...)
	err = errors.Wrapf(err, "format %q at offset %d", p.s, errors.Safe(p.off))
	return errors.Mark(err, mark)
}

func (p *formatParser) signAndWidth() (signed bool, w wideint.Width, err error) {
	switch ch := p.peek(); {
	case p.done():
		return false, 0, p.errorf(ErrMalformedFormat, "unterminated field")
	case ch == signedChar:
		signed = true
	case ch == unsignedChar:
	default:
		return false, 0, p.errorf(ErrInvalidSign, "sign must be %q or %q, not %q",
			signedChar, unsignedChar, ch)
	}
	p.off++

	start := p.off
	for !p.done() && p.peek() >= '0' && p.peek() <= '9' {
		p.off++
	}
	digits := p.s[start:p.off]
	if digits == "" {
		return false, 0, p.errorf(ErrMalformedFormat, "missing width")
	}
	bits, err := strconv.ParseUint(digits, 10, 64)
	if err != nil || bits%8 != 0 {
		return false, 0, p.errorf(ErrInvalidWidth, "width %s is not one of %s", digits, widthChoices)
	}
	w, ok := wideint.WidthForBits(bits)
	if !ok {
		return false, 0, p.errorf(ErrInvalidWidth, "width %s is not one of %s", digits, widthChoices)
	}
	return signed, w, nil
}

// widthChoices lists the supported widths, e.g. "8|16|32|64".
var widthChoices = func() redact.SafeString {
	var parts []string
	for w := wideint.W8; w < wideint.NumWidths; w++ {
		parts = append(parts, w.String())
	}
	return redact.SafeString(strings.Join(parts, "|"))
}()
