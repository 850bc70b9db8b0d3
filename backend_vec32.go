//go:build lcp_vec32 && !lcp_native && !lcp_vec16

package go_lcp_cmp

import "github.com/datnguyenzzz/nogodb/lib/go-lcp-cmp/internal/chunk"

type scanner = chunk.Vec32

const activeBackend = BackendVec32
