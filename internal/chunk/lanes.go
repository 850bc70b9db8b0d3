package chunk

import "math/bits"

const laneSize = 8

// scanLanes emulates a width-byte vector compare with width/8 little-endian
// uint64 lanes. The first lane with a non-zero XOR holds the first
// mismatching byte.
func scanLanes(a, b []byte, width int) (int, bool) {
	b = b[:len(a)]
	n := 0
	for ; n+width <= len(a); n += width {
		for off := n; off < n+width; off += laneSize {
			if diff := load64(a, off) ^ load64(b, off); diff != 0 {
				return off + bits.TrailingZeros64(diff)>>3, true
			}
		}
	}
	return n, false
}
