// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"fmt"
	"io"
	"strconv"

	"github.com/cockroachdb/intcodec"
	"github.com/cockroachdb/intcodec/internal/compression"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// inspectT implements the commands that describe formats and streams without
// converting them.
type inspectT struct {
	Describe *cobra.Command
	Layout   *cobra.Command
	Stats    *cobra.Command

	maxColumns *int

	format      string
	compression string
	plot        bool
	plotHeight  int
}

func newInspect(maxColumns *int) *inspectT {
	i := &inspectT{maxColumns: maxColumns}
	i.Describe = &cobra.Command{
		Use:   "describe <format>",
		Short: "describe the encoding of a format",
		Long: `
Print the width and signedness every column is encoded with, in the first row
and in the rows after it, and the resulting row sizes.
` + FormatHelp,
		Args:         cobra.ExactArgs(1),
		RunE:         i.runDescribe,
		SilenceUsage: true,
	}
	i.Layout = &cobra.Command{
		Use:   "layout --format=<format> [<binary-file>]",
		Short: "print the layout of a binary stream",
		Long: `
Print an annotated hex dump of a binary stream, one line per field, with the
absolute value of every field and the raw delta of delta-encoded fields.
`,
		Args:         cobra.MaximumNArgs(1),
		RunE:         i.runLayout,
		SilenceUsage: true,
	}
	i.Stats = &cobra.Command{
		Use:   "stats --format=<format> [<text-file>]",
		Short: "profile a text table",
		Long: `
Read a text table and report, per column, the range of its values and of the
differences between consecutive rows, the median and 99th percentile of the
absolute differences, and the narrowest format that encodes the table.
`,
		Args:         cobra.MaximumNArgs(1),
		RunE:         i.runStats,
		SilenceUsage: true,
	}

	for _, cmd := range []*cobra.Command{i.Layout, i.Stats} {
		cmd.Flags().StringVarP(&i.format, "format", "f", "", "column format, e.g. u32,s64du8")
	}
	i.Layout.Flags().StringVar(&i.compression, "compression", "none",
		"compression of the binary stream: none, snappy, zstd or minlz")
	i.Stats.Flags().BoolVar(&i.plot, "plot", false, "plot the values of every column")
	i.Stats.Flags().IntVar(&i.plotHeight, "plot-height", 10, "height of the plots, in lines")
	return i
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(header)
	tw.SetAutoFormatHeaders(false)
	tw.SetAlignment(tablewriter.ALIGN_RIGHT)
	return tw
}

func (i *inspectT) runDescribe(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(args[0], *i.maxColumns)
	if err != nil {
		return err
	}
	stdout := cmd.OutOrStdout()
	tw := newTable(stdout, []string{"col", "first row", "next rows", "first bytes", "next bytes"})
	for j, c := range format {
		fw, fs := c.RowWidth(0)
		nw, ns := c.RowWidth(1)
		next := fmt.Sprintf("%s%d", signName(ns), nw.Bits())
		if c.Delta != nil {
			next = "delta " + next
		}
		tw.Append([]string{
			strconv.Itoa(j),
			fmt.Sprintf("%s%d", signName(fs), fw.Bits()),
			next,
			strconv.Itoa(fw.Bytes()),
			strconv.Itoa(nw.Bytes()),
		})
	}
	tw.SetFooter([]string{"", "", "", strconv.Itoa(format.FirstRowBytes()), strconv.Itoa(format.RowBytes())})
	tw.Render()
	fmt.Fprintf(stdout, "%s: first row %d bytes, next rows %d bytes\n",
		format, format.FirstRowBytes(), format.RowBytes())
	return nil
}

func signName(signed bool) string {
	if signed {
		return "s"
	}
	return "u"
}

func (i *inspectT) runLayout(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(i.format, *i.maxColumns)
	if err != nil {
		return err
	}
	alg, err := compression.ParseAlgorithm(i.compression)
	if err != nil {
		return err
	}
	in, closeIn, err := openCompressed(cmd, args, 0, alg)
	if err != nil {
		return err
	}
	defer closeIn()
	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	s, err := intcodec.Layout(data, format)
	fmt.Fprint(cmd.OutOrStdout(), s)
	return err
}
