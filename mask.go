package grl

import "math/bits"

// DecomposeMask expands mask into one 0/1 entry per bit, from the highest
// set bit down to bit 0. A zero mask yields an empty slice.
func DecomposeMask(mask uint32) []uint8 {
	n := bits.Len32(mask)
	out := make([]uint8, n)
	for i := 0; i < n; i++ {
		out[i] = uint8(mask>>(n-1-i)) & 1
	}
	return out
}

// ComposeMask is the inverse of DecomposeMask. Entries past the 32nd are
// shifted out; any non-zero entry counts as set.
func ComposeMask(flags []uint8) uint32 {
	var mask uint32
	for _, f := range flags {
		mask <<= 1
		if f != 0 {
			mask |= 1
		}
	}
	return mask
}
