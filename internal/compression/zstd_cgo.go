// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

//go:build cgo

package compression

import (
	"io"

	"github.com/DataDog/zstd"
)

const zstdLevel = 3

func newZstdWriter(w io.Writer) (io.WriteCloser, error) {
	return zstd.NewWriterLevel(w, zstdLevel), nil
}

func newZstdReader(r io.Reader) (io.ReadCloser, error) {
	return zstd.NewReader(r), nil
}
