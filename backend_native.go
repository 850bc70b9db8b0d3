//go:build lcp_native && !lcp_vec16 && !lcp_vec32

package go_lcp_cmp

import "github.com/datnguyenzzz/nogodb/lib/go-lcp-cmp/internal/chunk"

type scanner = chunk.Word

const activeBackend = BackendNative
