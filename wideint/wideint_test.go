// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package wideint

import (
	"encoding/hex"
	"fmt"
	"math"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// parseTagged parses a value written as a tag letter followed by a decimal
// number, e.g. "s-5" or "u7".
func parseTagged(t *testing.T, s string) Value {
	t.Helper()
	require.NotEmpty(t, s)
	v, err := Parse(s[1:], s[0] == 's')
	require.NoError(t, err, "parsing %q", s)
	return v
}

func formatTagged(v Value) string {
	return tagName(v.IsSigned()) + v.String()
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, ErrOverflow):
		return "overflow"
	case errors.Is(err, ErrOutOfRange):
		return "out of range"
	case errors.Is(err, ErrSyntax):
		return "syntax"
	default:
		return fmt.Sprintf("unexpected error: %v", err)
	}
}

func TestDataDriven(t *testing.T) {
	for _, name := range []string{"arith", "pack", "text"} {
		t.Run(name, func(t *testing.T) {
			datadriven.RunTest(t, "testdata/"+name, func(t *testing.T, td *datadriven.TestData) string {
				var buf strings.Builder
				for _, line := range strings.Split(strings.TrimSpace(td.Input), "\n") {
					fields := strings.Fields(line)
					switch td.Cmd {
					case "sub":
						var into string
						td.ScanArgs(t, "into", &into)
						v, err := Sub(parseTagged(t, fields[0]), parseTagged(t, fields[1]), into == "s")
						buf.WriteString(resultString(v, err))
					case "add-delta":
						v, err := AddDelta(parseTagged(t, fields[0]), parseTagged(t, fields[1]))
						buf.WriteString(resultString(v, err))
					case "pack":
						var bits int
						td.ScanArgs(t, "width", &bits)
						w, ok := WidthForBits(uint64(bits))
						require.True(t, ok)
						b, err := AppendLE(nil, parseTagged(t, fields[0]), w)
						if err != nil {
							require.Empty(t, b)
							buf.WriteString(errorKind(err))
						} else {
							require.Len(t, b, w.Bytes())
							buf.WriteString(hex.EncodeToString(b))
						}
					case "unpack":
						var bits int
						var tag string
						td.ScanArgs(t, "width", &bits)
						td.ScanArgs(t, "tag", &tag)
						w, ok := WidthForBits(uint64(bits))
						require.True(t, ok)
						b, err := hex.DecodeString(fields[0])
						require.NoError(t, err)
						require.Len(t, b, w.Bytes())
						buf.WriteString(formatTagged(DecodeLE(b, w, tag == "s")))
					case "parse":
						var tag string
						td.ScanArgs(t, "tag", &tag)
						v, err := Parse(fields[0], tag == "s")
						buf.WriteString(resultString(v, err))
					default:
						td.Fatalf(t, "unknown command %q", td.Cmd)
					}
					buf.WriteString("\n")
				}
				return buf.String()
			})
		})
	}
}

func resultString(v Value, err error) string {
	if err != nil {
		return errorKind(err)
	}
	return formatTagged(v)
}

func TestSubOverflowAtMinInt64(t *testing.T) {
	_, err := Sub(Signed(math.MinInt64), Signed(1), true)
	require.True(t, errors.Is(err, ErrOverflow), "%v", err)
}

func TestPackByteBoundary(t *testing.T) {
	_, err := AppendLE(nil, Unsigned(256), W8)
	require.True(t, errors.Is(err, ErrOutOfRange), "%v", err)

	b, err := AppendLE(nil, Unsigned(255), W8)
	require.NoError(t, err)
	require.Equal(t, []byte{0xff}, b)
}

func TestWidth(t *testing.T) {
	for _, bits := range []uint64{0, 1, 7, 9, 24, 48, 128} {
		_, ok := WidthForBits(bits)
		require.False(t, ok, "%d", bits)
	}
	for w := W8; w < NumWidths; w++ {
		got, ok := WidthForBits(uint64(w.Bits()))
		require.True(t, ok)
		require.Equal(t, w, got)
		require.Equal(t, w.Bits()/8, w.Bytes())
	}
	lo, hi := W16.SignedBounds()
	require.Equal(t, int64(math.MinInt16), lo)
	require.Equal(t, int64(math.MaxInt16), hi)
	require.Equal(t, uint64(math.MaxUint32), W32.UnsignedMax())
	require.Equal(t, "64", W64.String())
}

func TestCompare(t *testing.T) {
	ordered := []Value{
		Signed(math.MinInt64),
		Signed(-1),
		Unsigned(0),
		Signed(1),
		Unsigned(math.MaxInt64),
		Unsigned(1 << 63),
		Unsigned(math.MaxUint64),
	}
	for i := range ordered {
		for j := range ordered {
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = +1
			}
			require.Equal(t, want, Compare(ordered[i], ordered[j]), "%s vs %s", ordered[i], ordered[j])
		}
	}
	require.Equal(t, 0, Compare(Signed(0), Unsigned(0)))
	require.False(t, Signed(0).Equal(Unsigned(0)))
}

func toBig(v Value) *big.Int {
	if v.IsSigned() {
		return big.NewInt(v.Int64())
	}
	return new(big.Int).SetUint64(v.Uint64())
}

func bigFits(b *big.Int, signed bool) bool {
	if signed {
		return b.IsInt64()
	}
	return b.IsUint64()
}

// randValue favors values near the representational boundaries, where the
// arithmetic is most likely to go wrong.
func randValue(rng *rand.Rand, signed bool) Value {
	var u uint64
	switch rng.Intn(4) {
	case 0:
		u = rng.Uint64()
	case 1:
		u = uint64(rng.Intn(512)) - 256
	case 2:
		u = 1<<63 + uint64(rng.Intn(512)) - 256
	default:
		u = math.MaxUint64 - uint64(rng.Intn(256))
	}
	if signed {
		return Signed(int64(u))
	}
	return Unsigned(u)
}

func TestArithmeticRandomized(t *testing.T) {
	seed := uint64(time.Now().UnixNano())
	t.Logf("seed: %d", seed)
	rng := rand.New(rand.NewSource(seed))

	for i := 0; i < 20000; i++ {
		signed := rng.Intn(2) == 0
		a, b := randValue(rng, signed), randValue(rng, signed)
		into := rng.Intn(2) == 0

		want := new(big.Int).Sub(toBig(a), toBig(b))
		got, err := Sub(a, b, into)
		if bigFits(want, into) {
			require.NoError(t, err, "%s - %s", a, b)
			require.Equal(t, into, got.IsSigned())
			require.Equal(t, want.String(), got.String(), "%s - %s", a, b)
		} else {
			require.True(t, errors.Is(err, ErrOverflow), "%s - %s: %v", a, b, err)
		}

		d := randValue(rng, rng.Intn(2) == 0)
		want = new(big.Int).Add(toBig(a), toBig(d))
		got, err = AddDelta(a, d)
		if bigFits(want, a.IsSigned()) {
			require.NoError(t, err, "%s + %s", a, d)
			require.Equal(t, a.IsSigned(), got.IsSigned())
			require.Equal(t, want.String(), got.String(), "%s + %s", a, d)
		} else {
			require.True(t, errors.Is(err, ErrOverflow), "%s + %s: %v", a, d, err)
		}
	}
}

func TestPackRoundTripRandomized(t *testing.T) {
	seed := uint64(time.Now().UnixNano())
	t.Logf("seed: %d", seed)
	rng := rand.New(rand.NewSource(seed))

	for i := 0; i < 10000; i++ {
		signed := rng.Intn(2) == 0
		w := Width(rng.Intn(int(NumWidths)))
		v := randValue(rng, signed)
		b, err := AppendLE(nil, v, w)
		if !w.Fits(v) {
			require.True(t, errors.Is(err, ErrOutOfRange), "%s in %s: %v", v, w, err)
			continue
		}
		require.NoError(t, err)
		require.Len(t, b, w.Bytes())
		require.True(t, v.Equal(DecodeLE(b, w, signed)), "%s in %s", v, w)
	}
}

func TestAccessorsPanicOnTagMismatch(t *testing.T) {
	require.Panics(t, func() { _ = Unsigned(1).Int64() })
	require.Panics(t, func() { _ = Signed(1).Uint64() })
	require.Equal(t, uint64(1<<63), Signed(math.MinInt64).Magnitude())
	require.True(t, Signed(-1).IsNegative())
	require.False(t, Unsigned(math.MaxUint64).IsNegative())
}
