//go:build amd64 && !purego

package chunk

import "golang.org/x/sys/cpu"

// SSE2 is part of the amd64 baseline, AVX2 is not.
var hasAVX2 = cpu.X86.HasAVX2

// scanSSE2 compares a and b 16 bytes at a time with PCMPEQB/PMOVMSKB and
// returns the offset of the first mismatching byte, or len(a) rounded down to
// a multiple of 16 when every whole chunk is equal. len(b) must be >= len(a).
// The implementation resides in vec_amd64.s.
//
//go:noescape
func scanSSE2(a, b []byte) int

// scanAVX2 is scanSSE2 with 32-byte VPCMPEQB/VPMOVMSKB chunks.
//
//go:noescape
func scanAVX2(a, b []byte) int

func (Vec16) Scan(a, b []byte) (int, bool) {
	full := len(a) &^ (Vec16Width - 1)
	if full == 0 {
		return 0, false
	}
	n := scanSSE2(a, b[:len(a)])
	return n, n < full
}

func (Vec16) Accelerated() bool { return true }

func (Vec32) Scan(a, b []byte) (int, bool) {
	if !hasAVX2 {
		return scanLanes(a, b, Vec32Width)
	}
	full := len(a) &^ (Vec32Width - 1)
	if full == 0 {
		return 0, false
	}
	n := scanAVX2(a, b[:len(a)])
	return n, n < full
}

func (Vec32) Accelerated() bool { return hasAVX2 }
