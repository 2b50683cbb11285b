// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/intcodec"
	"github.com/cockroachdb/intcodec/internal/compression"
	"github.com/spf13/cobra"
)

// codecT implements the encode and decode commands.
type codecT struct {
	Encode *cobra.Command
	Decode *cobra.Command

	opts       *intcodec.Options
	maxColumns *int

	format      string
	compression string
	checksum    bool
	metricsFile string
	verbose     bool
}

func newCodec(opts *intcodec.Options, maxColumns *int) *codecT {
	c := &codecT{
		opts:       opts,
		maxColumns: maxColumns,
	}
	c.Encode = &cobra.Command{
		Use:   "encode --format=<format> [<text-file> [<binary-file>]]",
		Short: "encode a text table",
		Long: `
Encode a table of whitespace-separated decimal integers into the binary
representation described by the format. Input defaults to stdin and output to
stdout; "-" names either explicitly.
` + FormatHelp,
		Args:         cobra.MaximumNArgs(2),
		RunE:         c.runEncode,
		SilenceUsage: true,
	}
	c.Decode = &cobra.Command{
		Use:   "decode --format=<format> [<binary-file> [<text-file>]]",
		Short: "decode a binary stream",
		Long: `
Decode a binary stream written with the given format into text, one row per
line with columns separated by tabs. Input defaults to stdin and output to
stdout; "-" names either explicitly.
` + FormatHelp,
		Args:         cobra.MaximumNArgs(2),
		RunE:         c.runDecode,
		SilenceUsage: true,
	}

	for _, cmd := range []*cobra.Command{c.Encode, c.Decode} {
		cmd.Flags().StringVarP(&c.format, "format", "f", "", "column format, e.g. u32,s64du8")
		cmd.Flags().StringVar(&c.compression, "compression", "none",
			"compression of the binary stream: none, snappy, zstd or minlz")
		cmd.Flags().BoolVar(&c.checksum, "checksum", false,
			"print the xxhash64 digest of the uncompressed binary stream to stderr")
		cmd.Flags().StringVar(&c.metricsFile, "metrics-file", "",
			"write run counters to this file in the Prometheus text format")
		cmd.Flags().BoolVarP(&c.verbose, "verbose", "v", false, "log a summary of the run")
	}
	return c
}

// FormatHelp documents the format grammar, for use in command help.
const FormatHelp = `
A format is a comma-separated list of columns:

  FORMAT := FIELD (',' FIELD)*
  FIELD  := SIGN WIDTH ['d' SIGN WIDTH]
  SIGN   := 's' | 'u'
  WIDTH  := 8 | 16 | 32 | 64

The optional 'd' suffix delta-encodes the column: the first row holds the
absolute value and every later row the difference from the previous row.
`

func (c *codecT) options(cmd *cobra.Command) *intcodec.Options {
	o := *c.opts
	o.Verbose = c.verbose
	if o.Logger == nil {
		o.Logger = writerLogger{w: cmd.ErrOrStderr()}
	}
	return &o
}

func (c *codecT) runEncode(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(c.format, *c.maxColumns)
	if err != nil {
		return err
	}
	alg, err := compression.ParseAlgorithm(c.compression)
	if err != nil {
		return err
	}
	in, closeIn, err := openInput(cmd, args, 0)
	if err != nil {
		return err
	}
	defer closeIn()
	out, closeOut, err := createOutput(cmd, args, 1)
	if err != nil {
		return err
	}
	cw, err := compression.NewWriter(out, alg)
	if err != nil {
		return errors.CombineErrors(err, closeOut())
	}

	var digest *xxhash.Digest
	w := io.Writer(cw)
	if c.checksum {
		digest = xxhash.New()
		w = io.MultiWriter(cw, digest)
	}
	m, err := intcodec.Encode(w, in, format, c.options(cmd))
	err = errors.CombineErrors(err, cw.Close())
	err = errors.CombineErrors(err, closeOut())
	return c.finish(cmd, "encode", m, digest, err)
}

func (c *codecT) runDecode(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(c.format, *c.maxColumns)
	if err != nil {
		return err
	}
	alg, err := compression.ParseAlgorithm(c.compression)
	if err != nil {
		return err
	}
	in, closeIn, err := openCompressed(cmd, args, 0, alg)
	if err != nil {
		return err
	}
	defer closeIn()
	out, closeOut, err := createOutput(cmd, args, 1)
	if err != nil {
		return err
	}

	var digest *xxhash.Digest
	if c.checksum {
		digest = xxhash.New()
		in = io.TeeReader(in, digest)
	}
	m, err := intcodec.Decode(out, in, format, c.options(cmd))
	err = errors.CombineErrors(err, closeOut())
	return c.finish(cmd, "decode", m, digest, err)
}

// finish reports the outcome of a run through the checksum and metrics file,
// if requested, and returns the run's error.
func (c *codecT) finish(
	cmd *cobra.Command, op string, m intcodec.Metrics, digest *xxhash.Digest, err error,
) error {
	if digest != nil && err == nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "xxhash64: %016x\n", digest.Sum64())
	}
	if c.metricsFile != "" {
		if merr := writeMetricsFile(c.metricsFile, op, m, err); merr != nil {
			err = errors.CombineErrors(err, errors.Wrapf(merr, "writing %s", c.metricsFile))
		}
	}
	return err
}
