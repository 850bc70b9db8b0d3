//go:build lcp_vec16 && !lcp_native && !lcp_vec32

package go_lcp_cmp

import "github.com/datnguyenzzz/nogodb/lib/go-lcp-cmp/internal/chunk"

type scanner = chunk.Vec16

const activeBackend = BackendVec16
