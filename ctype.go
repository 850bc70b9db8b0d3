// Package go_lcp_cmp finds the longest common prefix (lcp) of two positions
// in byte buffers, resuming from a known lower bound. It is the comparison
// primitive of suffix sorting and lcp-array construction.
//
// The bulk of the comparison runs chunk-at-a-time through one backend chosen
// at build time with the lcp_native, lcp_vec16 or lcp_vec32 tag. Without a
// tag only the byte-at-a-time scan runs.
package go_lcp_cmp

// Backend is the chunk-width strategy of the bulk comparison phase.
type Backend uint8

const (
	BackendNone Backend = iota
	BackendNative
	BackendVec16
	BackendVec32
)

func (b Backend) String() string {
	switch b {
	case BackendNone:
		return "none"
	case BackendNative:
		return "native"
	case BackendVec16:
		return "vec16"
	case BackendVec32:
		return "vec32"
	default:
		return "unknown"
	}
}
