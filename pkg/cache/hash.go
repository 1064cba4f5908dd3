package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash computes the SHA-256 hex digest of data. Render cache keys are built
// from the hash of the DOT source plus the output format, so any change to
// the diagram content or options produces a new key.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
