package chunk

import "math/bits"

const (
	// WordSize is the width of the native machine word in bytes.
	WordSize   = bits.UintSize / 8
	Vec16Width = 16
	Vec32Width = 32
)

// Scanner is the bulk phase of an LCP comparison: it walks a and b chunk by
// chunk and stops at the first chunk holding a mismatching byte.
type Scanner interface {
	// Width is the chunk size in bytes. Zero means the scanner never scans.
	Width() int
	// Scan compares whole chunks of a against b, len(b) must be >= len(a).
	// If a mismatching byte is found, its offset is returned with mismatch set.
	// Otherwise n is the number of bytes covered by equal chunks, which is
	// len(a) rounded down to a multiple of Width.
	Scan(a, b []byte) (n int, mismatch bool)
	// Accelerated reports whether Scan runs on hardware wide registers rather
	// than an emulation.
	Accelerated() bool
}

// None leaves the whole comparison to Tail.
type None struct{}

// Word compares one native machine word per step.
type Word struct{}

// Vec16 compares 16 bytes per step.
type Vec16 struct{}

// Vec32 compares 32 bytes per step.
type Vec32 struct{}

func (None) Width() int { return 0 }
func (None) Scan(_, _ []byte) (int, bool) { return 0, false }
func (None) Accelerated() bool { return false }

func (Word) Width() int { return WordSize }
// Accelerated is false when words are decoded through encoding/binary.
func (Word) Accelerated() bool { return unsafeLoads }

func (Vec16) Width() int { return Vec16Width }
func (Vec32) Width() int { return Vec32Width }

// Scan XORs the words of both sides, so zero bits mark equal bits. The lowest
// set bit lies in the first differing byte because words are read
// little-endian, hence the bit index divided by 8 is the byte offset.
func (Word) Scan(a, b []byte) (int, bool) {
	b = b[:len(a)]
	n := 0
	for ; n+WordSize <= len(a); n += WordSize {
		if diff := loadWord(a, n) ^ loadWord(b, n); diff != 0 {
			return n + bits.TrailingZeros(diff)>>3, true
		}
	}
	return n, false
}

var (
	_ Scanner = None{}
	_ Scanner = Word{}
	_ Scanner = Vec16{}
	_ Scanner = Vec32{}
)
