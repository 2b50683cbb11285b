// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package binfmt exposes utilities for formatting binary data with descriptive
// comments.
package binfmt

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// New constructs a new binary formatter.
func New(data []byte) *Formatter {
	offsetWidth := strconv.Itoa(len(strconv.Itoa(max(len(data)-1, 0))))
	return &Formatter{
		data:            data,
		lineWidth:       40,
		offsetFormatStr: "%0" + offsetWidth + "d-%0" + offsetWidth + "d: ",
	}
}

// Formatter is a utility for formatting binary data with descriptive comments.
//
// Every formatted line consumes a run of bytes and is printed as the byte
// offsets of the run, the bytes in hexadecimal and a comment aligned to the
// right of the widest line.
type Formatter struct {
	buf   bytes.Buffer
	lines [][2]string // (binary data, comment) tuples
	data  []byte
	off   int

	// config
	lineWidth       int
	offsetFormatStr string
}

// More returns true if there is more data in the byte slice that can be formatted.
func (f *Formatter) More() bool {
	return f.off < len(f.data)
}

// Remaining returns the number of unformatted bytes remaining in the byte slice.
func (f *Formatter) Remaining() int {
	return len(f.data) - f.off
}

// Offset returns the current offset within the original data slice.
func (f *Formatter) Offset() int {
	return f.off
}

// HexBytesln formats the next n bytes in hexadecimal format, appending the
// formatted comment string to each line and ending on a newline. Runs longer
// than the line width continue on following lines.
func (f *Formatter) HexBytesln(n int, format string, args ...interface{}) int {
	if n > f.Remaining() {
		panic(fmt.Sprintf("binfmt: %d bytes requested; %d remain", n, f.Remaining()))
	}
	consumed := n
	commentLine := strings.TrimSpace(fmt.Sprintf(format, args...))
	for first := true; first || n > 0; first = false {
		bytesInLine := min(f.lineWidth/2, n)
		f.printOffsets(bytesInLine)
		f.printf("x %0"+strconv.Itoa(bytesInLine*2)+"x", f.data[f.off:f.off+bytesInLine])
		f.newline(f.buf.String(), commentLine)
		f.off += bytesInLine
		n -= bytesInLine
		commentLine = "(continued...)"
	}
	return consumed
}

// Commentf adds a line holding only a comment, consuming no data.
func (f *Formatter) Commentf(format string, args ...interface{}) {
	f.newline("", fmt.Sprintf(format, args...))
}

// String returns the current formatted output.
func (f *Formatter) String() string {
	f.buf.Reset()
	// Identify the max width of the binary data so that we can add padding to
	// align comments on the right.
	binaryLineWidth := 0
	for _, lineData := range f.lines {
		binaryLineWidth = max(binaryLineWidth, len(lineData[0]))
	}
	for _, lineData := range f.lines {
		fmt.Fprint(&f.buf, lineData[0])
		if len(lineData[1]) > 0 {
			if len(lineData[0]) == 0 {
				// There's no binary data on this line, just a comment. Print
				// the comment left-aligned.
				fmt.Fprint(&f.buf, "# ")
			} else {
				// Align the comment to the right of the binary data.
				fmt.Fprint(&f.buf, strings.Repeat(" ", binaryLineWidth-len(lineData[0])))
				fmt.Fprint(&f.buf, " # ")
			}
			fmt.Fprint(&f.buf, lineData[1])
		}
		fmt.Fprintln(&f.buf)
	}
	return f.buf.String()
}

func (f *Formatter) newline(binaryData, comment string) {
	f.lines = append(f.lines, [2]string{binaryData, comment})
	f.buf.Reset()
}

func (f *Formatter) printOffsets(n int) {
	f.printf(f.offsetFormatStr, f.off, f.off+n)
}

func (f *Formatter) printf(format string, args ...interface{}) {
	fmt.Fprintf(&f.buf, format, args...)
}
