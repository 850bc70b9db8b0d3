//go:build !amd64 || purego

package chunk

func (Vec16) Scan(a, b []byte) (int, bool) {
	return scanLanes(a, b, Vec16Width)
}

func (Vec16) Accelerated() bool { return false }

func (Vec32) Scan(a, b []byte) (int, bool) {
	return scanLanes(a, b, Vec32Width)
}

func (Vec32) Accelerated() bool { return false }
