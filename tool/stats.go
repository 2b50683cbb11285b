// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"fmt"
	"io"
	"strconv"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/cockroachdb/intcodec"
	"github.com/cockroachdb/intcodec/wideint"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

// maxTrackedDelta bounds the magnitudes recorded in the delta histograms.
// Larger magnitudes are recorded as maxTrackedDelta.
const maxTrackedDelta = 1 << 62

// columnProfile accumulates statistics about the values of one column of a
// text table.
type columnProfile struct {
	col intcodec.Column

	n           uint64
	first, prev wideint.Value
	min, max    wideint.Value

	// deltas counts the differences between consecutive rows, which range
	// over [minDelta, maxDelta]. deltaOverflow is set if some difference is
	// representable in neither 64-bit signedness.
	deltas             uint64
	minDelta, maxDelta wideint.Value
	deltaOverflow      bool
	hist               *hdrhistogram.Histogram

	// values is only populated when plotting.
	values []float64
}

func newColumnProfile(c intcodec.Column, plot bool) *columnProfile {
	p := &columnProfile{
		col:  c,
		hist: hdrhistogram.New(0, maxTrackedDelta, 2),
	}
	if plot {
		p.values = make([]float64, 0, 64)
	}
	return p
}

func (p *columnProfile) add(v wideint.Value) {
	if p.values != nil {
		p.values = append(p.values, toFloat(v))
	}
	if p.n == 0 {
		p.first, p.min, p.max = v, v, v
	} else {
		if wideint.Compare(v, p.min) < 0 {
			p.min = v
		}
		if wideint.Compare(v, p.max) > 0 {
			p.max = v
		}
		p.addDelta(v)
	}
	p.prev = v
	p.n++
}

func (p *columnProfile) addDelta(v wideint.Value) {
	d, err := wideint.Sub(v, p.prev, true)
	if err != nil {
		// Differences above math.MaxInt64 are still representable unsigned.
		if d, err = wideint.Sub(v, p.prev, false); err != nil {
			p.deltaOverflow = true
			return
		}
	}
	if p.deltas == 0 {
		p.minDelta, p.maxDelta = d, d
	} else {
		if wideint.Compare(d, p.minDelta) < 0 {
			p.minDelta = d
		}
		if wideint.Compare(d, p.maxDelta) > 0 {
			p.maxDelta = d
		}
	}
	p.deltas++
	_ = p.hist.RecordValue(int64(min(d.Magnitude(), maxTrackedDelta)))
}

func toFloat(v wideint.Value) float64 {
	if v.IsSigned() {
		return float64(v.Int64())
	}
	return float64(v.Uint64())
}

// narrowestWidth returns the narrowest width that holds every value in
// [lo, hi] with the given signedness. It returns false if some value in the
// range has no representation with that signedness.
func narrowestWidth(lo, hi wideint.Value, signed bool) (wideint.Width, bool) {
	lo, err := wideint.Sub(lo, wideint.Zero(lo.IsSigned()), signed)
	if err != nil {
		return wideint.W64, false
	}
	hi, err = wideint.Sub(hi, wideint.Zero(hi.IsSigned()), signed)
	if err != nil {
		return wideint.W64, false
	}
	for w := wideint.W8; w < wideint.NumWidths; w++ {
		if w.Fits(lo) && w.Fits(hi) {
			return w, true
		}
	}
	return wideint.W64, true
}

// suggest returns the column descriptor that encodes the profiled values in
// the fewest bytes, keeping the column's signedness. A delta is only
// suggested when it saves space.
func (p *columnProfile) suggest() intcodec.Column {
	c := intcodec.Column{Signed: p.col.Signed}
	if p.n == 0 {
		return c
	}
	c.Width, _ = narrowestWidth(p.min, p.max, c.Signed)
	if p.deltas == 0 || p.deltaOverflow {
		return c
	}
	deltaSigned := p.minDelta.IsNegative()
	dw, ok := narrowestWidth(p.minDelta, p.maxDelta, deltaSigned)
	if !ok {
		return c
	}
	// With a delta the absolute width only needs to hold the first row.
	fw, _ := narrowestWidth(p.first, p.first, c.Signed)
	if uint64(fw.Bytes())+p.deltas*uint64(dw.Bytes()) < p.n*uint64(c.Width.Bytes()) {
		c.Width = fw
		c.Delta = &intcodec.DeltaSpec{Width: dw, Signed: deltaSigned}
	}
	return c
}

// tableProfile accumulates statistics about a text table.
type tableProfile struct {
	format  intcodec.Format
	columns []*columnProfile
	next    int
}

func newTableProfile(format intcodec.Format, plot bool) *tableProfile {
	t := &tableProfile{format: format}
	for _, c := range format {
		t.columns = append(t.columns, newColumnProfile(c, plot))
	}
	return t
}

func (t *tableProfile) add(v wideint.Value) error {
	t.columns[t.next].add(v)
	t.next = (t.next + 1) % len(t.columns)
	return nil
}

func (t *tableProfile) rows() uint64 {
	return t.columns[0].n
}

// encodedBytes returns the size of the table encoded with f.
func (t *tableProfile) encodedBytes(f intcodec.Format) uint64 {
	if t.rows() == 0 {
		return 0
	}
	return uint64(f.FirstRowBytes()) + (t.rows()-1)*uint64(f.RowBytes())
}

func (t *tableProfile) suggest() intcodec.Format {
	f := make(intcodec.Format, len(t.columns))
	for i, p := range t.columns {
		f[i] = p.suggest()
	}
	return f
}

func (t *tableProfile) render(w io.Writer, plotHeight int) {
	tw := newTable(w, []string{"col", "format", "min", "max", "min delta", "max delta",
		"p50 |delta|", "p99 |delta|", "suggested"})
	for i, p := range t.columns {
		row := []string{strconv.Itoa(i), p.col.String(), "-", "-", "-", "-", "-", "-", "-"}
		if p.n > 0 {
			row[2], row[3] = p.min.String(), p.max.String()
			row[8] = p.suggest().String()
		}
		switch {
		case p.deltaOverflow:
			row[4], row[5] = "overflow", "overflow"
		case p.deltas > 0:
			row[4], row[5] = p.minDelta.String(), p.maxDelta.String()
			row[6] = strconv.FormatInt(p.hist.ValueAtQuantile(50), 10)
			row[7] = strconv.FormatInt(p.hist.ValueAtQuantile(99), 10)
		}
		tw.Append(row)
	}
	tw.Render()

	if t.rows() == 0 {
		fmt.Fprintf(w, "no rows\n")
		return
	}
	suggested := t.suggest()
	fmt.Fprintf(w, "%d rows; %s encodes them in %d bytes\n", t.rows(), t.format, t.encodedBytes(t.format))
	fmt.Fprintf(w, "suggested format: %s (%d bytes)\n", suggested, t.encodedBytes(suggested))

	if plotHeight <= 0 {
		return
	}
	for i, p := range t.columns {
		if len(p.values) == 0 {
			continue
		}
		fmt.Fprintf(w, "\ncolumn %d (%s)\n", i, p.col)
		fmt.Fprintln(w, asciigraph.Plot(p.values, asciigraph.Height(plotHeight)))
	}
}

func (i *inspectT) runStats(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(i.format, *i.maxColumns)
	if err != nil {
		return err
	}
	in, closeIn, err := openInput(cmd, args, 0)
	if err != nil {
		return err
	}
	defer closeIn()

	t := newTableProfile(format, i.plot)
	if err := intcodec.ReadText(in, format, nil, t.add); err != nil {
		return err
	}
	plotHeight := 0
	if i.plot {
		plotHeight = i.plotHeight
	}
	t.render(cmd.OutOrStdout(), plotHeight)
	return nil
}
