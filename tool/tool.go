// Copyright 2019 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"github.com/cockroachdb/intcodec"
	"github.com/spf13/cobra"
)

// Logger exports the intcodec.Logger type.
type Logger = intcodec.Logger

// T is the container for all of the codec tools.
type T struct {
	Commands []*cobra.Command
	codec    *codecT
	inspect  *inspectT
	opts     intcodec.Options
	// maxColumns bounds the number of columns of every --format flag.
	maxColumns int
}

// Option is a functional option for configuring the tools.
type Option func(*T)

// WithLogger sets the logger used for verbose output. By default verbose
// output goes to the command's error stream.
func WithLogger(l Logger) Option {
	return func(t *T) {
		t.opts.Logger = l
	}
}

// New creates a new set of codec tools.
func New(opts ...Option) *T {
	t := &T{
		maxColumns: intcodec.DefaultMaxColumns,
	}
	for _, opt := range opts {
		opt(t)
	}

	t.codec = newCodec(&t.opts, &t.maxColumns)
	t.inspect = newInspect(&t.maxColumns)
	t.Commands = []*cobra.Command{
		t.codec.Encode,
		t.codec.Decode,
		t.inspect.Describe,
		t.inspect.Layout,
		t.inspect.Stats,
	}
	for _, c := range t.Commands {
		c.Flags().IntVar(&t.maxColumns, "max-columns", t.maxColumns,
			"maximum number of columns accepted in a format")
	}
	return t
}
