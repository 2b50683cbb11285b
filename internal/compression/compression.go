// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package compression wraps the binary stream of the codec in one of several
// streaming compression formats.
package compression

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

// Algorithm identifies a streaming compression format.
type Algorithm uint8

const (
	None Algorithm = iota
	Snappy
	Zstd
	MinLZ

	NumAlgorithms
)

var algorithmNames = [NumAlgorithms]string{
	None:   "none",
	Snappy: "snappy",
	Zstd:   "zstd",
	MinLZ:  "minlz",
}

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	if a >= NumAlgorithms {
		return "unknown"
	}
	return algorithmNames[a]
}

// ParseAlgorithm returns the algorithm with the given name. The empty string
// selects None.
func ParseAlgorithm(s string) (Algorithm, error) {
	if s == "" {
		return None, nil
	}
	for a, name := range algorithmNames {
		if strings.EqualFold(s, name) {
			return Algorithm(a), nil
		}
	}
	return None, errors.Newf("unknown compression %q (expected one of %s)",
		s, errors.Safe(strings.Join(algorithmNames[:], ", ")))
}

// NewWriter returns a writer that compresses everything written to it with
// the given algorithm before passing it on to w. Close must be called to
// flush the final frame; it does not close w.
func NewWriter(w io.Writer, a Algorithm) (io.WriteCloser, error) {
	switch a {
	case None:
		return nopWriteCloser{w}, nil
	case Snappy:
		return newSnappyWriter(w), nil
	case Zstd:
		return newZstdWriter(w)
	case MinLZ:
		return newMinlzWriter(w), nil
	default:
		return nil, errors.AssertionFailedf("unknown compression algorithm %d", errors.Safe(a))
	}
}

// NewReader returns a reader that decompresses the stream read from r. Close
// releases the decompressor's resources; it does not close r.
func NewReader(r io.Reader, a Algorithm) (io.ReadCloser, error) {
	switch a {
	case None:
		return io.NopCloser(r), nil
	case Snappy:
		return newSnappyReader(r), nil
	case Zstd:
		return newZstdReader(r)
	case MinLZ:
		return newMinlzReader(r), nil
	default:
		return nil, errors.AssertionFailedf("unknown compression algorithm %d", errors.Safe(a))
	}
}
