package chunk

// Tail compares a and b one byte at a time and returns the number of equal
// leading bytes, at most len(a). len(b) must be >= len(a).
func Tail(a, b []byte) int {
	b = b[:len(a)]
	for i := range a {
		if a[i] != b[i] {
			return i
		}
	}
	return len(a)
}
