// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package compression

import (
	"io"

	"github.com/minio/minlz"
)

func newMinlzWriter(w io.Writer) io.WriteCloser {
	return minlz.NewWriter(w)
}

func newMinlzReader(r io.Reader) io.ReadCloser {
	return io.NopCloser(minlz.NewReader(r))
}
