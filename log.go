package go_lcp_cmp

import "go.uber.org/zap"

// LogConfiguration writes the compiled-in comparison backend to the global
// zap logger. Call it once at startup, after the logger is installed.
func LogConfiguration() {
	zap.L().Info("lcp comparison backend",
		zap.Stringer("backend", ActiveBackend()),
		zap.Int("chunk_width", ChunkWidth()),
		zap.Bool("accelerated", Accelerated()),
	)
}
