package decor

// hash32 is an integer avalanche mix: xor-shifts interleaved with odd
// multiplicative constants. All arithmetic wraps at 32 bits.
func hash32(seed uint32) uint32 {
	x := seed
	x ^= x >> 16
	x *= 0x7feb352d
	x ^= x >> 15
	x *= 0x846ca68b
	x ^= x >> 16
	return x
}

// random01 returns a value in [0, 1) derived only from its arguments.
func random01(levelIndex, row, col int, salt uint32) float64 {
	seed := uint32(levelIndex+1)*73856093 ^
		uint32(row+1)*19349663 ^
		uint32(col+1)*83492791 ^
		salt*2654435761
	return float64(hash32(seed)) / (1 << 32)
}
