// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package intcodec

import "github.com/cockroachdb/intcodec/internal/base"

// Logger defines an interface for writing log messages.
type Logger = base.Logger

// DefaultLogger logs to the Go stdlib logs.
var DefaultLogger = base.DefaultLogger

// defaultMaxTokenBytes bounds the length of a single text token. No decimal
// 64-bit integer comes close; the bound only exists so that a stream without
// whitespace cannot grow the scanner's buffer without limit.
const defaultMaxTokenBytes = 4 << 10 // 4 KB

// Options holds the optional parameters for Encode and Decode.
type Options struct {
	// Logger used to write log messages.
	//
	// The default logger uses the Go standard library log package.
	Logger Logger

	// MaxTokenBytes is the maximum length of a single whitespace-delimited
	// token in the text input of Encode. Longer tokens are rejected as
	// malformed input.
	//
	// The default value is 4 KB.
	MaxTokenBytes int

	// Verbose, if set, logs a summary of every Encode and Decode to Logger.
	Verbose bool
}

// EnsureDefaults ensures that the default values for all options are set if a
// valid value was not already specified. Returns the new options.
func (o *Options) EnsureDefaults() *Options {
	if o == nil {
		o = &Options{}
	}
	if o.Logger == nil {
		o.Logger = DefaultLogger
	}
	if o.MaxTokenBytes <= 0 {
		o.MaxTokenBytes = defaultMaxTokenBytes
	}
	return o
}
