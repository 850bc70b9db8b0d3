//go:build (amd64 || arm64 || 386 || ppc64le || riscv64 || loong64) && !purego

package chunk

import "unsafe"

// unsafeLoads reports that loads are single unaligned machine reads.
const unsafeLoads = true

// loadWord reads a native word from b at off. There is NO bounds check, the
// caller must guarantee off+WordSize <= len(b).
func loadWord(b []byte, off int) uint {
	return *(*uint)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(b)), off))
}

// load64 reads an 8-byte lane from b at off. There is NO bounds check, the
// caller must guarantee off+8 <= len(b).
func load64(b []byte, off int) uint64 {
	return *(*uint64)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(b)), off))
}
