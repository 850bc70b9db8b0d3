//go:build (lcp_native && lcp_vec16) || (lcp_native && lcp_vec32) || (lcp_vec16 && lcp_vec32)

package go_lcp_cmp

import "github.com/datnguyenzzz/nogodb/lib/go-lcp-cmp/internal/chunk"

// Defining multiple word sizes is not allowed. The declarations below keep the
// rest of the package resolvable so the only reported error is
// "undefined: only_one_of_lcp_native_lcp_vec16_lcp_vec32_build_tags_is_allowed".

type scanner = chunk.None

const activeBackend = BackendNone

var _ = only_one_of_lcp_native_lcp_vec16_lcp_vec32_build_tags_is_allowed
