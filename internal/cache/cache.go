package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Cache memoizes expensive generation calls (hosted model, image API).
// Implementations must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
}

// Key derives a stable cache key from an operation name and its parameters.
func Key(operation string, params ...string) string {
	h := sha256.New()
	h.Write([]byte(operation))
	h.Write([]byte{0})
	h.Write([]byte(strings.Join(params, "\x1f")))
	return operation + ":" + hex.EncodeToString(h.Sum(nil))[:32]
}
