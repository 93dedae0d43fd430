package grl

import (
	"math/bits"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestDecomposeMask(t *testing.T) {
	cases := []struct {
		mask uint32
		want []uint8
	}{
		{0, []uint8{}},
		{1, []uint8{1}},
		{0b101, []uint8{1, 0, 1}},
		{0b1000, []uint8{1, 0, 0, 0}},
		{0b111111, []uint8{1, 1, 1, 1, 1, 1}},
	}
	for _, c := range cases {
		got := DecomposeMask(c.mask)
		require.NotNil(t, got)
		require.Equal(t, c.want, got, "mask %b", c.mask)
	}
	require.Len(t, DecomposeMask(1<<31), 32)
}

func TestMaskRoundTrip(t *testing.T) {
	condition := func(mask uint32) bool {
		flags := DecomposeMask(mask)
		if len(flags) != bits.Len32(mask) {
			return false
		}
		if len(flags) > 0 && flags[0] != 1 {
			return false
		}
		return ComposeMask(flags) == mask
	}
	if err := quick.Check(condition, &quick.Config{MaxCount: 2000}); err != nil {
		t.Errorf("Error: %v", err)
	}
}

func FuzzDecomposeMask(f *testing.F) {
	f.Add(uint32(0))
	f.Add(uint32(0b101))
	f.Add(^uint32(0))
	f.Fuzz(func(t *testing.T, mask uint32) {
		flags := DecomposeMask(mask)
		require.Len(t, flags, bits.Len32(mask))
		ones := 0
		for _, v := range flags {
			require.LessOrEqual(t, v, uint8(1))
			ones += int(v)
		}
		require.Equal(t, bits.OnesCount32(mask), ones)
		require.Equal(t, mask, ComposeMask(flags))
	})
}
