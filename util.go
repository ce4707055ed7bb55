package huffman

import (
	mathbits "math/bits"
)

func log2int(x int) int {
	if x <= 0 {
		x = 1
	}
	return 64 - mathbits.LeadingZeros64(uint64(x))
}

// saturatingAdd returns a+b, clamped to math.MaxUint64.
func saturatingAdd(a, b uint64) uint64 {
	sum, carry := mathbits.Add64(a, b, 0)
	if carry != 0 {
		return ^uint64(0)
	}
	return sum
}

// saturatingMul returns a*b, clamped to math.MaxUint64.
func saturatingMul(a, b uint64) uint64 {
	hi, lo := mathbits.Mul64(a, b)
	if hi != 0 {
		return ^uint64(0)
	}
	return lo
}
