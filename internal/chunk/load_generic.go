//go:build !(amd64 || arm64 || 386 || ppc64le || riscv64 || loong64) || purego

package chunk

import (
	"encoding/binary"
	"math/bits"
)

const unsafeLoads = false

// Big-endian or alignment sensitive targets decode explicitly, so the lowest
// address always lands in the lowest bits and ctz>>3 still names the byte.

func loadWord(b []byte, off int) uint {
	if bits.UintSize == 64 {
		return uint(binary.LittleEndian.Uint64(b[off:]))
	}
	return uint(binary.LittleEndian.Uint32(b[off:]))
}

func load64(b []byte, off int) uint64 {
	return binary.LittleEndian.Uint64(b[off:])
}
