package common

import (
	"math"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestVarUintRoundTrip(t *testing.T) {
	f := func(x uint64) bool {
		buf := WriteVarUintTo(nil, x)
		got, n := ReadVarUint(buf)
		return got == x && n == len(buf)
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestVarUintEdges(t *testing.T) {
	require.Equal(t, []byte{0x00}, WriteVarUintTo(nil, 0))
	require.Equal(t, []byte{0x7f}, WriteVarUintTo(nil, 127))
	require.Equal(t, []byte{0x80, 0x01}, WriteVarUintTo(nil, 128))
	require.Len(t, WriteVarUintTo(nil, math.MaxUint64), MaxVarintLen)
}

func TestReadVarUintTruncated(t *testing.T) {
	_, n := ReadVarUint([]byte{0x80, 0x80})
	require.Zero(t, n)

	_, n = ReadVarUint(nil)
	require.Zero(t, n)

	overlong := make([]byte, MaxVarintLen+1)
	for i := range overlong {
		overlong[i] = 0x80
	}
	_, n = ReadVarUint(overlong)
	require.Zero(t, n)
}
