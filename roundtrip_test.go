// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package intcodec

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/intcodec/wideint"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func randFormat(rng *rand.Rand) Format {
	f := make(Format, 1+rng.Intn(5))
	for i := range f {
		f[i] = Column{
			Width:  wideint.Width(rng.Intn(int(wideint.NumWidths))),
			Signed: rng.Intn(2) == 0,
		}
		if rng.Intn(2) == 0 {
			f[i].Delta = &DeltaSpec{
				Width:  wideint.Width(rng.Intn(int(wideint.NumWidths))),
				Signed: rng.Intn(2) == 0,
			}
		}
	}
	return f
}

// randFit returns a random value of the given signedness that fits w.
func randFit(rng *rand.Rand, w wideint.Width, signed bool) wideint.Value {
	shift := 64 - w.Bits()
	if signed {
		return wideint.Signed(int64(rng.Uint64()) >> shift)
	}
	return wideint.Unsigned(rng.Uint64() >> shift)
}

// randTable generates rows that every column of f can encode, and returns
// them in the text form Decode produces.
func randTable(rng *rand.Rand, f Format, rows int) string {
	var buf []byte
	prev := make([]wideint.Value, len(f))
	for r := 0; r < rows; r++ {
		for i, c := range f {
			var v wideint.Value
			switch {
			case r == 0 || c.Delta == nil:
				v = randFit(rng, c.Width, c.Signed)
			default:
				d := randFit(rng, c.Delta.Width, c.Delta.Signed)
				var err error
				if v, err = wideint.AddDelta(prev[i], d); err != nil {
					// The column would leave its range; repeat the previous
					// value instead.
					v = prev[i]
				}
			}
			prev[i] = v
			buf = wideint.AppendText(buf, v)
			if i == len(f)-1 {
				buf = append(buf, '\n')
			} else {
				buf = append(buf, '\t')
			}
		}
	}
	return string(buf)
}

func requireSameText(t *testing.T, expected, actual string) {
	t.Helper()
	if expected == actual {
		return
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:       difflib.SplitLines(expected),
		B:       difflib.SplitLines(actual),
		Context: 3,
	})
	require.NoError(t, err)
	t.Fatalf("decoded text differs:\n%s", diff)
}

func TestRoundTripRandomized(t *testing.T) {
	seed := uint64(time.Now().UnixNano())
	t.Logf("seed: %d", seed)
	rng := rand.New(rand.NewSource(seed))

	for i := 0; i < 500; i++ {
		f := randFormat(rng)
		rows := rng.Intn(20)
		text := randTable(rng, f, rows)

		var bin bytes.Buffer
		m, err := Encode(&bin, strings.NewReader(text), f, testOptions())
		require.NoError(t, err, "format %s", f)
		require.Equal(t, uint64(rows), m.Rows)
		if rows > 0 {
			require.Equal(t, f.FirstRowBytes()+(rows-1)*f.RowBytes(), bin.Len(), "format %s", f)
		} else {
			require.Zero(t, bin.Len())
		}

		var out bytes.Buffer
		_, err = Decode(&out, bytes.NewReader(bin.Bytes()), f, testOptions())
		require.NoError(t, err, "format %s", f)
		requireSameText(t, text, out.String())
	}
}

func TestDecodeEncodeRandomBytes(t *testing.T) {
	seed := uint64(time.Now().UnixNano())
	t.Logf("seed: %d", seed)
	rng := rand.New(rand.NewSource(seed))

	for i := 0; i < 500; i++ {
		f := randFormat(rng)
		n := f.FirstRowBytes() + rng.Intn(10)*f.RowBytes()
		data := make([]byte, n)
		for j := range data {
			data[j] = byte(rng.Uint32())
		}

		var text bytes.Buffer
		_, err := Decode(&text, bytes.NewReader(data), f, testOptions())
		if err != nil {
			// Random deltas may walk a column out of its range.
			require.True(t, errors.Is(err, ErrArithmeticOverflow), "format %s: %v", f, err)
			continue
		}
		var bin bytes.Buffer
		_, err = Encode(&bin, &text, f, testOptions())
		require.NoError(t, err, "format %s", f)
		require.Equal(t, data, bin.Bytes(), "format %s", f)
	}
}

func TestTruncationAlwaysDetected(t *testing.T) {
	f, err := ParseFormat("u16,s64ds8,u8du32")
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	text := randTable(rng, f, 4)
	var bin bytes.Buffer
	_, err = Encode(&bin, strings.NewReader(text), f, testOptions())
	require.NoError(t, err)

	boundaries := map[int]bool{0: true}
	for n := f.FirstRowBytes(); n <= bin.Len(); n += f.RowBytes() {
		boundaries[n] = true
	}
	for n := 0; n <= bin.Len(); n++ {
		var out bytes.Buffer
		_, err := Decode(&out, bytes.NewReader(bin.Bytes()[:n]), f, testOptions())
		if boundaries[n] {
			require.NoError(t, err, "%d bytes", n)
		} else {
			require.True(t, errors.Is(err, ErrTruncatedStream), "%d bytes: %v", n, err)
		}
	}
}

func TestMetricsString(t *testing.T) {
	m := Metrics{Rows: 3, Fields: 6, DeltaFields: 2}
	require.True(t, strings.HasPrefix(m.String(), "3 rows, 6 fields (2 delta), "), m.String())
}
