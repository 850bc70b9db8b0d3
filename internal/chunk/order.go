package chunk

import "cmp"

// Order returns a and b so that the first result is not greater than the
// second. Both operands share one type, so a mismatched pair fails to compile.
func Order[T cmp.Ordered](a, b T) (lo, hi T) {
	if a > b {
		return b, a
	}
	return a, b
}
