// Copyright 2019 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/intcodec"
	"github.com/cockroachdb/intcodec/internal/compression"
	"github.com/spf13/cobra"
)

// stdioArg names standard input or output in a file argument.
const stdioArg = "-"

func parseFormat(s string, maxColumns int) (intcodec.Format, error) {
	if s == "" {
		return nil, errors.New("a format is required (e.g. --format=u32,s64du8)")
	}
	return intcodec.ParseFormatMax(s, maxColumns)
}

// openInput opens args[i] for reading, or the command's input if the argument
// is absent or "-".
func openInput(cmd *cobra.Command, args []string, i int) (io.Reader, func(), error) {
	if i >= len(args) || args[i] == stdioArg {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(args[i])
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

// createOutput creates args[i] for writing, or returns the command's output if
// the argument is absent or "-".
func createOutput(cmd *cobra.Command, args []string, i int) (io.Writer, func() error, error) {
	if i >= len(args) || args[i] == stdioArg {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(args[i])
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

// openCompressed is like openInput, but decompresses the input.
func openCompressed(
	cmd *cobra.Command, args []string, i int, alg compression.Algorithm,
) (io.Reader, func(), error) {
	in, closeIn, err := openInput(cmd, args, i)
	if err != nil {
		return nil, nil, err
	}
	r, err := compression.NewReader(in, alg)
	if err != nil {
		closeIn()
		return nil, nil, err
	}
	return r, func() {
		_ = r.Close()
		closeIn()
	}, nil
}

// writerLogger is a Logger writing one line per message to w.
type writerLogger struct {
	w io.Writer
}

var _ Logger = writerLogger{}

func (l writerLogger) Infof(format string, args ...interface{}) {
	fmt.Fprintf(l.w, format+"\n", args...)
}

func (l writerLogger) Errorf(format string, args ...interface{}) {
	fmt.Fprintf(l.w, "error: "+format+"\n", args...)
}

func (l writerLogger) Fatalf(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}
