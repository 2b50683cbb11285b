// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/intcodec"
	"github.com/cockroachdb/intcodec/internal/base"
	"github.com/cockroachdb/intcodec/internal/compression"
	"github.com/stretchr/testify/require"
)

const sampleTable = "1000 -7\n1001 -7\n1003 -9\n1002 -4\n"

func TestCompressedFiles(t *testing.T) {
	dir := t.TempDir()
	text := filepath.Join(dir, "table.txt")
	require.NoError(t, os.WriteFile(text, []byte(sampleTable), 0644))

	for a := compression.None; a < compression.NumAlgorithms; a++ {
		t.Run(a.String(), func(t *testing.T) {
			bin := filepath.Join(dir, "table."+a.String())
			out := filepath.Join(dir, "decoded."+a.String())
			alg := "--compression=" + a.String()

			stdout, _, err := runTool(nil, "encode", "--format=u16ds8,s8", alg, text, bin)
			require.NoError(t, err)
			require.Empty(t, stdout)

			_, _, err = runTool(nil, "decode", "--format=u16ds8,s8", alg, bin, out)
			require.NoError(t, err)
			got, err := os.ReadFile(out)
			require.NoError(t, err)
			require.Equal(t, strings.ReplaceAll(sampleTable, " ", "\t"), string(got))

			stdout, _, err = runTool(nil, "layout", "--format=u16ds8,s8", alg, bin)
			require.NoError(t, err)
			require.Contains(t, stdout, "# col 0 delta s8: -1 -> 1002")
		})
	}
}

func TestChecksum(t *testing.T) {
	bin, stderr, err := runTool([]byte(sampleTable), "encode", "--format=u16,s8", "--checksum")
	require.NoError(t, err)
	require.Equal(t, fmt.Sprintf("xxhash64: %016x\n", xxhash.Sum64String(bin)), stderr)

	// The digest covers the uncompressed stream, so decoding reports the same
	// one.
	_, decodeStderr, err := runTool([]byte(bin), "decode", "--format=u16,s8", "--checksum")
	require.NoError(t, err)
	require.Equal(t, stderr, decodeStderr)
}

func TestMetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intcodec.prom")
	_, _, err := runTool([]byte(sampleTable), "encode", "--format=u16ds8,s8", "--metrics-file="+path)
	require.NoError(t, err)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	for _, line := range []string{
		"# TYPE intcodec_rows_total counter",
		`intcodec_rows_total{op="encode"} 4`,
		`intcodec_fields_total{op="encode"} 8`,
		`intcodec_delta_fields_total{op="encode"} 3`,
		`intcodec_binary_bytes_total{op="encode"} 9`,
		`intcodec_failed{op="encode"} 0`,
	} {
		require.Contains(t, string(b), line+"\n")
	}

	_, _, err = runTool([]byte("1 2 3"), "decode", "--format=u16", "--metrics-file="+path)
	require.Error(t, err)
	b, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(b), `intcodec_rows_total{op="decode"} 2`+"\n")
	require.Contains(t, string(b), `intcodec_failed{op="decode"} 1`+"\n")
}

func TestVerbose(t *testing.T) {
	_, stderr, err := runTool([]byte(sampleTable), "encode", "--format=u16ds8,s8", "-v")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stderr, "encode u16ds8,s8: 4 rows, 8 fields (3 delta), "), stderr)

	var logger base.InMemLogger
	var outBuf strings.Builder
	c := New(WithLogger(&logger)).codec.Encode
	c.SetArgs([]string{"--format=u8", "--verbose"})
	c.SetIn(strings.NewReader("1 2"))
	c.SetOut(&outBuf)
	require.NoError(t, c.Execute())
	require.True(t, strings.HasPrefix(logger.String(), "encode u8: 2 rows, 2 fields (0 delta), "), logger.String())
}

func TestDescribe(t *testing.T) {
	stdout, _, err := runTool(nil, "describe", "u32,s64du8")
	require.NoError(t, err)
	require.Contains(t, stdout, "delta u8")
	require.True(t, strings.HasSuffix(stdout, "u32,s64du8: first row 12 bytes, next rows 5 bytes\n"), stdout)
}

func TestStats(t *testing.T) {
	stdout, _, err := runTool([]byte(sampleTable), "stats", "--format=u64,s64")
	require.NoError(t, err)
	require.Contains(t, stdout, "4 rows; u64,s64 encodes them in 64 bytes\n")
	// The first column moves by small steps around 1000; the second stays
	// within a byte.
	require.Contains(t, stdout, "suggested format: u16ds8,s8 (9 bytes)\n")

	stdout, _, err = runTool([]byte(sampleTable), "stats", "--format=u64,s64", "--plot", "--plot-height=4")
	require.NoError(t, err)
	require.Contains(t, stdout, "column 0 (u64)\n")
	require.Contains(t, stdout, "column 1 (s64)\n")

	stdout, _, err = runTool(nil, "stats", "--format=u8")
	require.NoError(t, err)
	require.Contains(t, stdout, "no rows\n")
}

func TestSuggestedFormatEncodes(t *testing.T) {
	table := "0 18446744073709551615\n100 0\n50 7\n"
	f, err := intcodec.ParseFormat("s64,u64")
	require.NoError(t, err)
	p := newTableProfile(f, false)
	require.NoError(t, intcodec.ReadText(strings.NewReader(table), f, nil, p.add))
	suggested := p.suggest()
	require.Equal(t, "s8,u64", suggested.String())

	var sb strings.Builder
	m, err := intcodec.Encode(&sb, strings.NewReader(table), suggested, nil)
	require.NoError(t, err)
	require.Equal(t, p.encodedBytes(suggested), m.BinaryBytes)
}
