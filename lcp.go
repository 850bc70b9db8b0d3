package go_lcp_cmp

import "github.com/datnguyenzzz/nogodb/lib/go-lcp-cmp/internal/chunk"

// Single returns the lcp of text[pos1:] and text[pos2:].
//
// The first commonLen bytes at both positions must already be known to be
// equal, they are not compared again. The result is never less than
// commonLen. A position at or past len(text) yields commonLen.
//
// Prefer Single over Dual for positions in one text, it checks the buffer
// boundary against one position only.
func Single(text []byte, pos1, pos2, commonLen int) int {
	// only the larger position can run into the end of text
	pos1, pos2 = chunk.Order(pos1, pos2)

	remaining := len(text) - pos2 - commonLen
	if remaining <= 0 {
		return commonLen
	}

	start1, start2 := pos1+commonLen, pos2+commonLen
	return commonLen + match(text[start1:start1+remaining], text[start2:])
}

// Dual returns the lcp of text1[pos1:] and text2[pos2:].
//
// The contract on commonLen is the same as for Single. The comparison stops
// at whichever text ends first.
func Dual(text1, text2 []byte, pos1, pos2, commonLen int) int {
	remaining := min(len(text1)-pos1, len(text2)-pos2) - commonLen
	if remaining <= 0 {
		return commonLen
	}

	start1, start2 := pos1+commonLen, pos2+commonLen
	return commonLen + match(text1[start1:start1+remaining], text2[start2:])
}

// match runs the bulk phase of the active backend, then finishes with the
// byte-at-a-time tail. len(b) >= len(a).
func match(a, b []byte) int {
	var s scanner
	n, mismatch := s.Scan(a, b)
	if mismatch {
		return n
	}
	return n + chunk.Tail(a[n:], b[n:])
}

// ActiveBackend returns the backend compiled into this build.
func ActiveBackend() Backend {
	return activeBackend
}

// ChunkWidth returns the number of bytes the bulk phase compares per step,
// zero when no backend is compiled in.
func ChunkWidth() int {
	var s scanner
	return s.Width()
}

// Accelerated reports whether the bulk phase runs on hardware wide registers.
// Vector backends fall back to a portable emulation on CPUs or platforms
// without the matching instructions.
func Accelerated() bool {
	var s scanner
	return s.Accelerated()
}
